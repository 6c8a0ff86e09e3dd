package finbook

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Account is a container of money in a single currency: a bank account, a
// wallet, a brokerage cash account.
//
// An account is never hard-deleted while transactions or assets reference
// it; instead it can be archived, which excludes it from active totals but
// keeps the historical record intact.
type Account struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	CategoryID     string          `json:"categoryId,omitempty"`
	Currency       string          `json:"currency"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	IsArchived     bool            `json:"isArchived,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// Validate checks the account's own fields for correctness.
func (a Account) Validate() error {
	if a.Name == "" {
		return errors.New("account name is missing")
	}
	if err := ValidateCurrency(a.Currency); err != nil {
		return fmt.Errorf("invalid account currency: %w", err)
	}
	return nil
}

// BalanceRecord is a user-entered checkpoint asserting the account's true
// balance at a specific date. It overrides all prior transaction-derived
// computation for that account as of its date, reconciling drift from an
// incomplete transaction history.
type BalanceRecord struct {
	ID         string          `json:"id"`
	AccountID  string          `json:"accountId"`
	Amount     decimal.Decimal `json:"amount"`
	Date       Date            `json:"date"`
	IsVerified bool            `json:"isVerified,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// Validate checks the balance record's own fields for correctness.
func (r BalanceRecord) Validate() error {
	if r.AccountID == "" {
		return errors.New("balance record account is missing")
	}
	if r.Date.IsZero() {
		return errors.New("balance record date is missing")
	}
	return nil
}
