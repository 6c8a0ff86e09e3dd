package finbook

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Budget tracks spending in a set of transaction categories against a fixed
// amount over a period window. A recurring budget's window rolls forward by
// its period unit; "spent" is always derived, never stored.
type Budget struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Period      Period          `json:"period"`
	Amount      decimal.Decimal `json:"amount"`
	CategoryIDs []string        `json:"categoryIds"`
	StartDate   Date            `json:"startDate"`
	EndDate     *Date           `json:"endDate,omitempty"`
	IsRecurring bool            `json:"isRecurring,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Validate checks the budget's own fields for correctness.
func (b Budget) Validate() error {
	if b.Name == "" {
		return errors.New("budget name is missing")
	}
	switch b.Period {
	case Weekly, Monthly, Yearly:
	default:
		return fmt.Errorf("budget period must be weekly, monthly or yearly, got %s", b.Period)
	}
	if b.Amount.IsNegative() {
		return fmt.Errorf("budget amount must be non-negative, got %s", b.Amount)
	}
	if b.StartDate.IsZero() {
		return errors.New("budget start date is missing")
	}
	if b.EndDate != nil && b.EndDate.Before(b.StartDate) {
		return fmt.Errorf("budget end date %s is before start date %s", b.EndDate, b.StartDate)
	}
	return nil
}

// TracksCategory reports whether the budget tracks the given transaction
// category.
func (b Budget) TracksCategory(categoryID string) bool {
	return slices.Contains(b.CategoryIDs, categoryID)
}
