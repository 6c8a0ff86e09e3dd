package finbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SeedsDefaultCategories(t *testing.T) {
	s := newTestStore()
	require.NotEmpty(t, s.AccountCategories())
	require.NotEmpty(t, s.TransactionCategories())
	for _, c := range s.AccountCategories() {
		assert.True(t, c.IsDefault, "seeded category %q should be default", c.Name)
	}
	_, ok := s.TransactionCategoryByName("Groceries")
	assert.True(t, ok, "Groceries should be seeded")
}

func TestStore_DeleteAccountGuards(t *testing.T) {
	s := newTestStore()
	a := checking(s, "Checking", "EUR")
	b := checking(s, "Savings", "EUR")

	_, ok := s.AddTransaction(Transaction{Type: Expense, Amount: d("10"), Date: MustParseDate("2024-01-01"), FromAccountID: a.ID})
	require.True(t, ok)

	assert.False(t, s.DeleteAccount(a.ID), "account with transactions must not be deletable")
	_, stillThere := s.Account(a.ID)
	assert.True(t, stillThere)

	_, ok = s.AddAsset(Asset{Name: "Gold", Kind: StandardKind(AssetOther), AccountID: b.ID, Quantity: d("1"), CurrentPrice: d("100")})
	require.True(t, ok)
	assert.False(t, s.DeleteAccount(b.ID), "account with assets must not be deletable")

	c := checking(s, "Empty", "EUR")
	assert.True(t, s.DeleteAccount(c.ID))
	_, gone := s.Account(c.ID)
	assert.False(t, gone)
}

func TestStore_DefaultCategoriesAreImmutable(t *testing.T) {
	s := newTestStore()
	groceries, ok := s.TransactionCategoryByName("Groceries")
	require.True(t, ok)

	groceries.Name = "Renamed"
	assert.False(t, s.UpdateTransactionCategory(groceries), "default category must not be editable")
	assert.False(t, s.DeleteTransactionCategory(groceries.ID), "default category must not be deletable")

	// A user category can be renamed and deleted.
	custom, ok := s.AddTransactionCategory(TransactionCategory{Name: "Pets", Type: Expense})
	require.True(t, ok)
	custom.Name = "Animals"
	assert.True(t, s.UpdateTransactionCategory(custom))
	assert.True(t, s.DeleteTransactionCategory(custom.ID))
}

func TestStore_DeleteCategoryInUse(t *testing.T) {
	s := newTestStore()
	a := checking(s, "Checking", "EUR")
	custom, ok := s.AddTransactionCategory(TransactionCategory{Name: "Pets", Type: Expense})
	require.True(t, ok)

	tx, ok := s.AddTransaction(Transaction{Type: Expense, Amount: d("5"), Date: MustParseDate("2024-01-01"), FromAccountID: a.ID, CategoryID: custom.ID})
	require.True(t, ok)

	assert.False(t, s.DeleteTransactionCategory(custom.ID), "referenced category must not be deletable")
	require.True(t, s.DeleteTransaction(tx.ID))
	assert.True(t, s.DeleteTransactionCategory(custom.ID), "unreferenced category should be deletable")
}

func TestStore_DeleteCustomAssetTypeInUse(t *testing.T) {
	s := newTestStore()
	a := checking(s, "Vault", "EUR")
	watches, ok := s.AddCustomAssetType(CustomAssetType{Name: "Watches"})
	require.True(t, ok)

	asset, ok := s.AddAsset(Asset{Name: "Chrono", Kind: CustomKind(watches.ID), AccountID: a.ID, Quantity: d("1"), CurrentPrice: d("900")})
	require.True(t, ok)

	assert.False(t, s.DeleteCustomAssetType(watches.ID))
	require.True(t, s.DeleteAsset(asset.ID))
	assert.True(t, s.DeleteCustomAssetType(watches.ID))
}

func TestStore_RejectsUnknownReferences(t *testing.T) {
	s := newTestStore()
	a := checking(s, "Checking", "EUR")

	_, ok := s.AddTransaction(Transaction{Type: Expense, Amount: d("10"), Date: MustParseDate("2024-01-01"), FromAccountID: "nope"})
	assert.False(t, ok, "transaction to an unknown account must be rejected")

	_, ok = s.AddBalanceRecord(BalanceRecord{AccountID: "nope", Amount: d("10"), Date: MustParseDate("2024-01-01")})
	assert.False(t, ok, "balance record for an unknown account must be rejected")

	_, ok = s.AddAsset(Asset{Name: "X", Kind: CustomKind("nope"), AccountID: a.ID, Quantity: d("1"), CurrentPrice: d("1")})
	assert.False(t, ok, "asset with an unknown custom type must be rejected")
}

func TestStore_UpdateUnknownIsRejected(t *testing.T) {
	s := newTestStore()
	assert.False(t, s.UpdateAccount(Account{ID: "ghost", Name: "X", Currency: "EUR"}))
	assert.False(t, s.UpdateTransaction(Transaction{ID: "ghost", Type: Income, Amount: d("1"), Date: MustParseDate("2024-01-01"), ToAccountID: "ghost"}))
	assert.False(t, s.DeleteBudget("ghost"))
}

func TestStore_UpdatePreservesCreatedAt(t *testing.T) {
	s := newTestStore()
	a := checking(s, "Checking", "EUR")

	a.Name = "Main Checking"
	require.True(t, s.UpdateAccount(a))
	got, ok := s.Account(a.ID)
	require.True(t, ok)
	assert.Equal(t, "Main Checking", got.Name)
	assert.Equal(t, a.CreatedAt, got.CreatedAt)
}

func TestStore_IDsAreUniqueAcrossCollections(t *testing.T) {
	s := newTestStore()
	a := checking(s, "Checking", "EUR")
	tx, ok := s.AddTransaction(Transaction{Type: Income, Amount: d("1"), Date: MustParseDate("2024-01-01"), ToAccountID: a.ID})
	require.True(t, ok)
	b, ok := s.AddBudget(Budget{Name: "B", Period: Monthly, Amount: d("1"), StartDate: MustParseDate("2024-01-01")})
	require.True(t, ok)

	seen := map[string]bool{}
	for _, id := range []string{a.ID, tx.ID, b.ID} {
		assert.False(t, seen[id], "id %s issued twice", id)
		seen[id] = true
	}
}

func TestStore_Notifications(t *testing.T) {
	s := newTestStore()
	var changes []Change
	s.Subscribe(func(c Change) { changes = append(changes, c) })

	a := checking(s, "Checking", "EUR")
	require.True(t, s.SetAccountArchived(a.ID, true))

	require.Len(t, changes, 2)
	assert.Equal(t, Change{OpAdd, "accounts", a.ID}, changes[0])
	assert.Equal(t, Change{OpUpdate, "accounts", a.ID}, changes[1])

	// A rejected mutation must not notify.
	before := len(changes)
	_, ok := s.AddAccount(Account{Name: "", Currency: "EUR"})
	require.False(t, ok)
	assert.Len(t, changes, before)
}

func TestStore_QueriesReturnCopies(t *testing.T) {
	s := newTestStore()
	checking(s, "Checking", "EUR")

	list := s.Accounts()
	list[0].Name = "Mutated"
	got, _ := s.Account(list[0].ID)
	assert.NotEqual(t, "Mutated", got.Name, "mutating a query result must not touch the store")
}
