package finbook

import (
	"bytes"
	"strings"
	"testing"
)

func TestExportImport_RoundTrip(t *testing.T) {
	s := newTestStore()
	a := checking(s, "Checking", "EUR")
	groceries, _ := s.TransactionCategoryByName("Groceries")
	s.AddTransaction(Transaction{Type: Expense, Amount: d("12.5"), Date: MustParseDate("2024-03-05"), FromAccountID: a.ID, CategoryID: groceries.ID})
	s.AddBalanceRecord(BalanceRecord{AccountID: a.ID, Amount: d("87.5"), Date: MustParseDate("2024-03-10"), IsVerified: true})
	s.AddBudget(Budget{Name: "Food", Period: Monthly, Amount: d("500"), CategoryIDs: []string{groceries.ID}, StartDate: MustParseDate("2024-01-01"), IsRecurring: true})
	s.AddAsset(Asset{Name: "ACME", Kind: StandardKind(AssetStock), AccountID: a.ID, Quantity: d("3"), CurrentPrice: d("10")})

	var buf bytes.Buffer
	if err := s.ExportData(&buf); err != nil {
		t.Fatalf("ExportData() error = %v", err)
	}

	restored := newTestStore()
	if err := restored.ImportData(&buf); err != nil {
		t.Fatalf("ImportData() error = %v", err)
	}

	if len(restored.Accounts()) != 1 || len(restored.Transactions()) != 1 ||
		len(restored.BalanceRecords()) != 1 || len(restored.Budgets()) != 1 || len(restored.Assets()) != 1 {
		t.Fatal("restored store is missing collections")
	}
	balance, ok := restored.AccountBalance(a.ID, MustParseDate("2024-03-31"))
	if !ok {
		t.Fatal("restored store lost the account")
	}
	if !balance.Amount().Equal(d("87.5")) {
		t.Errorf("restored balance = %s, want 87.5 from the checkpoint", balance.Amount())
	}
}

func TestImport_LegacyFlatForm(t *testing.T) {
	doc := `{
	  "settings": {"baseCurrency": "EUR"},
	  "accounts": [{"id": "acc-1", "name": "Checking", "currency": "EUR", "initialBalance": 100,
	    "createdAt": "2024-01-01T00:00:00Z", "updatedAt": "2024-01-01T00:00:00Z"}],
	  "transactions": [{"id": "tx-1", "type": "expense", "amount": 25, "date": "2024-02-01",
	    "fromAccountId": "acc-1", "createdAt": "2024-02-01T00:00:00Z", "updatedAt": "2024-02-01T00:00:00Z"}]
	}`
	s := newTestStore()
	if err := s.ImportData(strings.NewReader(doc)); err != nil {
		t.Fatalf("ImportData() error = %v", err)
	}
	if s.Settings().BaseCurrency != "EUR" {
		t.Errorf("base currency = %s, want EUR", s.Settings().BaseCurrency)
	}
	balance, _ := s.AccountBalance("acc-1", MustParseDate("2024-02-02"))
	if !balance.Amount().Equal(d("75")) {
		t.Errorf("balance = %s, want 100 - 25 = 75", balance.Amount())
	}
}

func TestImport_AllOrNothing(t *testing.T) {
	s := newTestStore()
	before := checking(s, "Keep Me", "EUR")

	bad := []string{
		// Transaction referencing a missing account.
		`{"accounts": [], "transactions": [{"id": "tx-1", "type": "expense", "amount": 1, "date": "2024-01-01", "fromAccountId": "ghost"}]}`,
		// Duplicate ids across collections.
		`{"accounts": [{"id": "x", "name": "A", "currency": "EUR"}],
		  "budgets": [{"id": "x", "name": "B", "period": "monthly", "amount": 1, "categoryIds": [], "startDate": "2024-01-01"}]}`,
		// Transaction referencing a missing category.
		`{"accounts": [{"id": "a1", "name": "A", "currency": "EUR"}],
		  "transactions": [{"id": "tx-1", "type": "expense", "amount": 1, "date": "2024-01-01", "fromAccountId": "a1", "categoryId": "ghost"}]}`,
		// Budget referencing a missing category.
		`{"budgets": [{"id": "b1", "name": "B", "period": "monthly", "amount": 1, "categoryIds": ["ghost"], "startDate": "2024-01-01"}]}`,
		// Invalid entity.
		`{"accounts": [{"id": "a1", "name": "", "currency": "EUR"}]}`,
		// Not even JSON.
		`{"accounts": [`,
	}
	for _, doc := range bad {
		if err := s.ImportData(strings.NewReader(doc)); err == nil {
			t.Errorf("ImportData() accepted invalid document %q", doc)
		}
		if _, ok := s.Account(before.ID); !ok {
			t.Fatal("a failed import must leave the store untouched")
		}
	}
}

func TestImport_MissingSettingsGetDefaults(t *testing.T) {
	s := newTestStore()
	if err := s.ImportData(strings.NewReader(`{"accounts": []}`)); err != nil {
		t.Fatalf("ImportData() error = %v", err)
	}
	if s.Settings() != DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", s.Settings())
	}
}
