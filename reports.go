package finbook

// AccountLine is one account row of a summary report.
type AccountLine struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Balance  Money  `json:"balance"`
	Assets   int    `json:"assets,omitempty"`
}

// BudgetLine is one budget row of a summary report.
type BudgetLine struct {
	Name      string `json:"name"`
	Window    Range  `json:"window"`
	Amount    Money  `json:"amount"`
	Spent     Money  `json:"spent"`
	Remaining Money  `json:"remaining"`
}

// Summary is the everything-at-a-glance report for one day: net worth, per
// account balances and budget consumption, all in the base currency where
// aggregation is involved.
type Summary struct {
	Date         Date          `json:"date"`
	BaseCurrency string        `json:"baseCurrency"`
	NetWorth     Money         `json:"netWorth"`
	Accounts     []AccountLine `json:"accounts"`
	Budgets      []BudgetLine  `json:"budgets"`
}

// NewSummary builds the summary report for a day. Archived accounts are left
// out, matching the net worth they contribute nothing to.
func (s *Store) NewSummary(on Date, convert ConvertFunc) *Summary {
	base := s.settings.BaseCurrency
	sum := &Summary{
		Date:         on,
		BaseCurrency: base,
		NetWorth:     s.NetWorth(convert, on),
	}
	categories := make(map[string]string, len(s.accountCategories))
	for _, c := range s.accountCategories {
		categories[c.ID] = c.Name
	}
	for _, a := range s.ActiveAccounts() {
		balance, _ := s.AccountBalance(a.ID, on)
		sum.Accounts = append(sum.Accounts, AccountLine{
			Name:     a.Name,
			Category: categories[a.CategoryID],
			Balance:  balance,
			Assets:   len(s.AssetsOf(a.ID)),
		})
	}
	for _, st := range s.BudgetStatuses(on) {
		sum.Budgets = append(sum.Budgets, BudgetLine{
			Name:      st.Budget.Name,
			Window:    st.Window,
			Amount:    M(st.Budget.Amount, base),
			Spent:     M(st.Spent, base),
			Remaining: M(st.Remaining, base),
		})
	}
	return sum
}

// HistoryReport is a sampled net worth series over a range.
type HistoryReport struct {
	BaseCurrency string          `json:"baseCurrency"`
	Interval     Period          `json:"interval"`
	Points       []NetWorthPoint `json:"points"`
}

// NewHistoryReport samples the net worth over the range at the given
// interval.
func (s *Store) NewHistoryReport(r Range, interval Period, convert ConvertFunc) *HistoryReport {
	return &HistoryReport{
		BaseCurrency: s.settings.BaseCurrency,
		Interval:     interval,
		Points:       s.NetWorthHistory(convert, r, interval),
	}
}
