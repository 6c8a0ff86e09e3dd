package finbook

import (
	"testing"
)

func TestBudgetWindow_Recurring(t *testing.T) {
	monthly := Budget{
		Name:        "Groceries",
		Period:      Monthly,
		Amount:      d("500"),
		StartDate:   MustParseDate("2024-01-01"),
		IsRecurring: true,
	}

	tests := []struct {
		name     string
		now      string
		wantFrom string
		wantTo   string
	}{
		{"on the start date", "2024-01-01", "2024-01-01", "2024-02-01"},
		{"mid first window", "2024-01-20", "2024-01-01", "2024-02-01"},
		{"mid third window", "2024-03-15", "2024-03-01", "2024-04-01"},
		{"far in the future", "2026-07-04", "2026-07-01", "2026-08-01"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := BudgetWindow(monthly, MustParseDate(tc.now))
			if got.From != MustParseDate(tc.wantFrom) || got.To != MustParseDate(tc.wantTo) {
				t.Errorf("BudgetWindow() = [%s, %s], want [%s, %s]", got.From, got.To, tc.wantFrom, tc.wantTo)
			}
		})
	}
}

func TestBudgetWindow_NonRecurring(t *testing.T) {
	end := MustParseDate("2024-12-24")
	fixed := Budget{
		Name:      "Holiday Fund",
		Period:    Yearly,
		Amount:    d("2000"),
		StartDate: MustParseDate("2024-01-01"),
		EndDate:   &end,
	}
	got := BudgetWindow(fixed, MustParseDate("2024-06-01"))
	if got.From != fixed.StartDate || got.To != end {
		t.Errorf("BudgetWindow() = [%s, %s], want the fixed [%s, %s]", got.From, got.To, fixed.StartDate, end)
	}

	// Without an end date the window stays open and runs up to the day
	// asked about.
	open := fixed
	open.EndDate = nil
	got = BudgetWindow(open, MustParseDate("2024-06-01"))
	if got.From != open.StartDate || got.To != MustParseDate("2024-06-01") {
		t.Errorf("BudgetWindow() = [%s, %s], want [%s, 2024-06-01]", got.From, got.To, open.StartDate)
	}
}

func TestBudgetSpent_OpenEndedBudget(t *testing.T) {
	s := newTestStore()
	a := checking(s, "Checking", "USD")
	groceries, _ := s.TransactionCategoryByName("Groceries")

	// An expense several periods after the start still counts: a
	// non-recurring budget with no end date covers everything since its
	// start.
	s.AddTransaction(Transaction{Type: Expense, Amount: d("100"), Date: MustParseDate("2024-03-05"), FromAccountID: a.ID, CategoryID: groceries.ID})

	open := Budget{
		Name:        "Since January",
		Period:      Monthly,
		Amount:      d("1000"),
		CategoryIDs: []string{groceries.ID},
		StartDate:   MustParseDate("2024-01-01"),
	}
	now := MustParseDate("2024-06-01")
	if got := BudgetWindow(open, now); got.To != now {
		t.Errorf("BudgetWindow().To = %s, want %s", got.To, now)
	}
	if spent := BudgetSpent(open, s.Transactions(), now); !spent.Equal(d("100")) {
		t.Errorf("BudgetSpent() = %s, want 100", spent)
	}
}

func TestBudgetSpentAndRemaining(t *testing.T) {
	s := newTestStore()
	a := checking(s, "Checking", "USD")
	groceries, _ := s.TransactionCategoryByName("Groceries")
	leisure, _ := s.TransactionCategoryByName("Leisure")

	// One expense in the current window, one in the previous, one in another
	// category, one income in the tracked category's name.
	s.AddTransaction(Transaction{Type: Expense, Amount: d("100"), Date: MustParseDate("2024-03-05"), FromAccountID: a.ID, CategoryID: groceries.ID})
	s.AddTransaction(Transaction{Type: Expense, Amount: d("50"), Date: MustParseDate("2024-02-05"), FromAccountID: a.ID, CategoryID: groceries.ID})
	s.AddTransaction(Transaction{Type: Expense, Amount: d("30"), Date: MustParseDate("2024-03-06"), FromAccountID: a.ID, CategoryID: leisure.ID})
	s.AddTransaction(Transaction{Type: Income, Amount: d("400"), Date: MustParseDate("2024-03-07"), ToAccountID: a.ID, CategoryID: groceries.ID})

	b, ok := s.AddBudget(Budget{
		Name:        "Groceries",
		Period:      Monthly,
		Amount:      d("500"),
		CategoryIDs: []string{groceries.ID},
		StartDate:   MustParseDate("2024-01-01"),
		IsRecurring: true,
	})
	if !ok {
		t.Fatal("AddBudget() rejected a valid budget")
	}

	now := MustParseDate("2024-03-15")
	if spent := BudgetSpent(b, s.Transactions(), now); !spent.Equal(d("100")) {
		t.Errorf("BudgetSpent() = %s, want 100", spent)
	}
	if rem := BudgetRemaining(b, s.Transactions(), now); !rem.Equal(d("400")) {
		t.Errorf("BudgetRemaining() = %s, want 400", rem)
	}
}

func TestBudgetRemaining_FlooredAtZero(t *testing.T) {
	s := newTestStore()
	a := checking(s, "Checking", "USD")
	groceries, _ := s.TransactionCategoryByName("Groceries")
	s.AddTransaction(Transaction{Type: Expense, Amount: d("999"), Date: MustParseDate("2024-03-05"), FromAccountID: a.ID, CategoryID: groceries.ID})

	b := Budget{
		Name: "Tight", Period: Monthly, Amount: d("100"),
		CategoryIDs: []string{groceries.ID},
		StartDate:   MustParseDate("2024-03-01"), IsRecurring: true,
	}
	if rem := BudgetRemaining(b, s.Transactions(), MustParseDate("2024-03-15")); !rem.IsZero() {
		t.Errorf("BudgetRemaining() = %s, want 0 when overspent", rem)
	}
}
