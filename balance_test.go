package finbook

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestBalanceAsOf_NoRecords(t *testing.T) {
	s := newTestStore()
	a := checking(s, "Checking", "EUR")
	b := checking(s, "Savings", "EUR")

	s.AddTransaction(Transaction{Type: Income, Amount: d("1000"), Date: MustParseDate("2024-01-05"), ToAccountID: a.ID})
	s.AddTransaction(Transaction{Type: Expense, Amount: d("200"), Date: MustParseDate("2024-01-10"), FromAccountID: a.ID})
	s.AddTransaction(Transaction{Type: Transfer, Amount: d("300"), Date: MustParseDate("2024-01-20"), FromAccountID: a.ID, ToAccountID: b.ID})

	tests := []struct {
		name string
		asOf Date
		want string
	}{
		{"before anything", MustParseDate("2024-01-01"), "0"},
		{"on the income day", MustParseDate("2024-01-05"), "1000"},
		{"after the expense", MustParseDate("2024-01-15"), "800"},
		{"after the transfer out", MustParseDate("2024-01-31"), "500"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := BalanceAsOf(a, s.BalanceRecords(), s.Transactions(), tc.asOf)
			if !got.Equal(d(tc.want)) {
				t.Errorf("BalanceAsOf() = %s, want %s", got, tc.want)
			}
		})
	}

	// The transfer destination got the other side.
	got := BalanceAsOf(b, s.BalanceRecords(), s.Transactions(), MustParseDate("2024-01-31"))
	if !got.Equal(d("300")) {
		t.Errorf("transfer destination balance = %s, want 300", got)
	}
}

func TestBalanceAsOf_InitialBalance(t *testing.T) {
	s := newTestStore()
	a, _ := s.AddAccount(Account{Name: "Seeded", Currency: "USD", InitialBalance: d("250")})
	s.AddTransaction(Transaction{Type: Expense, Amount: d("50"), Date: MustParseDate("2024-02-01"), FromAccountID: a.ID})

	got := BalanceAsOf(a, nil, s.Transactions(), MustParseDate("2024-02-02"))
	if !got.Equal(d("200")) {
		t.Errorf("BalanceAsOf() = %s, want 200", got)
	}
}

func TestBalanceAsOf_RecordOverrides(t *testing.T) {
	s := newTestStore()
	a := checking(s, "Checking", "EUR")

	// Transactions around the checkpoint date.
	s.AddTransaction(Transaction{Type: Income, Amount: d("1000"), Date: MustParseDate("2024-03-01"), ToAccountID: a.ID})
	s.AddTransaction(Transaction{Type: Expense, Amount: d("40"), Date: MustParseDate("2024-03-10"), FromAccountID: a.ID})
	s.AddTransaction(Transaction{Type: Expense, Amount: d("60"), Date: MustParseDate("2024-03-15"), FromAccountID: a.ID})

	// The bank says 500 on the 10th, overriding whatever we computed.
	s.AddBalanceRecord(BalanceRecord{AccountID: a.ID, Amount: d("500"), Date: MustParseDate("2024-03-10")})

	tests := []struct {
		name string
		asOf Date
		want string
	}{
		// Before the record it does not apply yet.
		{"before the record", MustParseDate("2024-03-05"), "1000"},
		// On the record date the checkpoint is authoritative; the same-day
		// expense is considered already reflected in it.
		{"on the record date", MustParseDate("2024-03-10"), "500"},
		// Only strictly later transactions are replayed on top.
		{"after the record", MustParseDate("2024-03-20"), "440"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := BalanceAsOf(a, s.BalanceRecords(), s.Transactions(), tc.asOf)
			if !got.Equal(d(tc.want)) {
				t.Errorf("BalanceAsOf() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestBalanceAsOf_LatestRecordWins(t *testing.T) {
	s := newTestStore()
	a := checking(s, "Checking", "EUR")

	s.AddBalanceRecord(BalanceRecord{AccountID: a.ID, Amount: d("100"), Date: MustParseDate("2024-01-10")})
	s.AddBalanceRecord(BalanceRecord{AccountID: a.ID, Amount: d("300"), Date: MustParseDate("2024-02-10")})

	got := BalanceAsOf(a, s.BalanceRecords(), nil, MustParseDate("2024-03-01"))
	if !got.Equal(d("300")) {
		t.Errorf("BalanceAsOf() = %s, want the later record 300", got)
	}
	got = BalanceAsOf(a, s.BalanceRecords(), nil, MustParseDate("2024-01-31"))
	if !got.Equal(d("100")) {
		t.Errorf("BalanceAsOf() = %s, want the earlier record 100", got)
	}
}

func TestBalanceAsOf_SameDayRecordTieBreak(t *testing.T) {
	s := newTestStore()
	a := checking(s, "Checking", "EUR")

	// Two checkpoints on the same day: the one recorded last supersedes.
	base := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	s.Now = func() time.Time { return base }
	s.AddBalanceRecord(BalanceRecord{AccountID: a.ID, Amount: d("100"), Date: MustParseDate("2024-04-01")})
	s.Now = func() time.Time { return base.Add(time.Hour) }
	s.AddBalanceRecord(BalanceRecord{AccountID: a.ID, Amount: d("150"), Date: MustParseDate("2024-04-01")})

	got := BalanceAsOf(a, s.BalanceRecords(), nil, MustParseDate("2024-04-02"))
	if !got.Equal(d("150")) {
		t.Errorf("BalanceAsOf() = %s, want the re-recorded 150", got)
	}
}

func TestBalanceAsOf_IgnoresOtherAccounts(t *testing.T) {
	s := newTestStore()
	a := checking(s, "Mine", "EUR")
	b := checking(s, "Other", "EUR")

	s.AddTransaction(Transaction{Type: Income, Amount: d("999"), Date: MustParseDate("2024-01-02"), ToAccountID: b.ID})
	s.AddBalanceRecord(BalanceRecord{AccountID: b.ID, Amount: d("42"), Date: MustParseDate("2024-01-03")})

	got := BalanceAsOf(a, s.BalanceRecords(), s.Transactions(), MustParseDate("2024-01-31"))
	if !got.IsZero() {
		t.Errorf("BalanceAsOf() = %s, want 0 for an untouched account", got)
	}
}
