package finbook

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TxType identifies the kind of a transaction.
type TxType string

const (
	Income   TxType = "income"
	Expense  TxType = "expense"
	Transfer TxType = "transfer"
)

// ParseTxType parses a transaction type name.
func ParseTxType(s string) (TxType, error) {
	switch TxType(s) {
	case Income, Expense, Transfer:
		return TxType(s), nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// Transaction records a movement of money on a date. The amount is always a
// non-negative magnitude; the direction is carried by the type and the
// account endpoints. A nil endpoint ("") represents an external source or
// sink: income from outside, or an expense leaving the tracked world.
type Transaction struct {
	ID            string          `json:"id"`
	Type          TxType          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Date          Date            `json:"date"`
	CategoryID    string          `json:"categoryId,omitempty"`
	FromAccountID string          `json:"fromAccountId,omitempty"`
	ToAccountID   string          `json:"toAccountId,omitempty"`
	Description   string          `json:"description,omitempty"`
	Recurrence    *Recurrence     `json:"recurrence,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// Validate checks the transaction invariants:
// an expense flows out of an account, an income flows into one, and a
// transfer needs two distinct endpoints.
func (t Transaction) Validate() error {
	if t.Amount.IsNegative() {
		return fmt.Errorf("transaction amount must be a non-negative magnitude, got %s", t.Amount)
	}
	if t.Date.IsZero() {
		return errors.New("transaction date is missing")
	}
	switch t.Type {
	case Expense:
		if t.FromAccountID == "" {
			return errors.New("expense requires a source account")
		}
	case Income:
		if t.ToAccountID == "" {
			return errors.New("income requires a destination account")
		}
	case Transfer:
		if t.FromAccountID == "" || t.ToAccountID == "" {
			return errors.New("transfer requires both a source and a destination account")
		}
		if t.FromAccountID == t.ToAccountID {
			return errors.New("transfer endpoints must differ")
		}
	default:
		return fmt.Errorf("unknown transaction type %q", t.Type)
	}
	if t.Recurrence != nil {
		if err := t.Recurrence.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Touches reports whether the transaction moves money into or out of the
// given account.
func (t Transaction) Touches(accountID string) bool {
	return accountID != "" && (t.FromAccountID == accountID || t.ToAccountID == accountID)
}

// Recurrence is optional metadata marking a transaction as the template of a
// repeating series.
type Recurrence struct {
	Period  Period `json:"period"`
	EndDate *Date  `json:"endDate,omitempty"`
}

// Validate checks the recurrence fields.
func (r Recurrence) Validate() error {
	switch r.Period {
	case Daily, Weekly, Monthly, Quarterly, Yearly:
		return nil
	default:
		return fmt.Errorf("unknown recurrence period %d", r.Period)
	}
}

// NextOccurrence returns the first occurrence of the series strictly after
// 'after', given the series starts on 'start'. The second return is false
// when the series has ended by then.
func (r Recurrence) NextOccurrence(start, after Date) (Date, bool) {
	d := start
	for !d.After(after) {
		d = r.Period.Next(d)
	}
	if r.EndDate != nil && d.After(*r.EndDate) {
		return Date{}, false
	}
	return d, true
}

// ByAccount returns a predicate selecting transactions touching the account.
func ByAccount(accountID string) func(Transaction) bool {
	return func(t Transaction) bool { return t.Touches(accountID) }
}

// ByCategory returns a predicate selecting transactions in the category.
func ByCategory(categoryID string) func(Transaction) bool {
	return func(t Transaction) bool { return t.CategoryID == categoryID }
}

// ByType returns a predicate selecting transactions of the given type.
func ByType(tt TxType) func(Transaction) bool {
	return func(t Transaction) bool { return t.Type == tt }
}
