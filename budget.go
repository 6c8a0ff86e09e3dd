package finbook

import (
	"github.com/shopspring/decimal"
)

// BudgetWindow returns the budget's active window on a given day, both
// boundaries inclusive.
//
// A non-recurring budget has a single window: from its start date to its end
// date when set, otherwise open-ended up to 'now'. A recurring budget's
// window rolls forward from the start date in whole period units, so the
// window containing (or, before the start, the first window after) 'now' is
// returned.
func BudgetWindow(b Budget, now Date) Range {
	if !b.IsRecurring {
		if b.EndDate != nil {
			return Range{From: b.StartDate, To: *b.EndDate}
		}
		return Range{From: b.StartDate, To: now}
	}
	start := b.StartDate
	for start.Before(now) {
		start = b.Period.Next(start)
	}
	if start.After(b.StartDate) {
		start = b.Period.Prev(start)
	}
	return Range{From: start, To: b.Period.Next(start)}
}

// BudgetSpent sums the expense transactions falling in the budget's window
// on 'now' whose category the budget tracks. Income and transfers never
// count against a budget.
func BudgetSpent(b Budget, txs []Transaction, now Date) decimal.Decimal {
	window := BudgetWindow(b, now)
	var spent decimal.Decimal
	for _, t := range txs {
		if t.Type != Expense || !b.TracksCategory(t.CategoryID) || !window.Contains(t.Date) {
			continue
		}
		spent = spent.Add(t.Amount)
	}
	return spent
}

// BudgetRemaining returns how much of the budget is left in the current
// window, floored at zero: an overspent budget reports zero remaining, not a
// negative amount.
func BudgetRemaining(b Budget, txs []Transaction, now Date) decimal.Decimal {
	remaining := b.Amount.Sub(BudgetSpent(b, txs, now))
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// BudgetStatus is the derived state of one budget in its current window.
type BudgetStatus struct {
	Budget    Budget          `json:"budget"`
	Window    Range           `json:"window"`
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"`
}

// BudgetStatuses computes the status of every stored budget on a date.
func (s *Store) BudgetStatuses(now Date) []BudgetStatus {
	var out []BudgetStatus
	for _, b := range s.budgets {
		out = append(out, BudgetStatus{
			Budget:    b,
			Window:    BudgetWindow(b, now),
			Spent:     BudgetSpent(b, s.transactions, now),
			Remaining: BudgetRemaining(b, s.transactions, now),
		})
	}
	return out
}
