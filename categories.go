package finbook

import (
	"errors"
	"fmt"
	"time"
)

// AccountCategory classifies accounts (checking, savings, cash, …).
// Default categories ship with the store and are immutable: they can be
// neither edited nor deleted.
type AccountCategory struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type,omitempty"`
	IsDefault bool      `json:"isDefault,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate checks the account category's own fields.
func (c AccountCategory) Validate() error {
	if c.Name == "" {
		return errors.New("account category name is missing")
	}
	return nil
}

// TransactionCategory classifies income and expense transactions. Like
// account categories, default entries are immutable.
type TransactionCategory struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      TxType    `json:"type"`
	IsDefault bool      `json:"isDefault,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate checks the transaction category's own fields.
func (c TransactionCategory) Validate() error {
	if c.Name == "" {
		return errors.New("transaction category name is missing")
	}
	switch c.Type {
	case Income, Expense:
		return nil
	default:
		return fmt.Errorf("transaction category type must be income or expense, got %q", c.Type)
	}
}

// Settings holds the store-wide preferences the engines depend on.
type Settings struct {
	BaseCurrency string `json:"baseCurrency"`
	Locale       string `json:"locale,omitempty"`
}

// DefaultSettings returns the settings applied to a fresh store and
// substituted for missing settings on import.
func DefaultSettings() Settings {
	return Settings{BaseCurrency: "USD", Locale: "en-US"}
}

// Validate checks the settings fields.
func (s Settings) Validate() error {
	if err := ValidateCurrency(s.BaseCurrency); err != nil {
		return fmt.Errorf("invalid base currency: %w", err)
	}
	return nil
}
