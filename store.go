package finbook

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// ChangeOp identifies the kind of mutation a Change describes.
type ChangeOp string

const (
	OpAdd     ChangeOp = "add"
	OpUpdate  ChangeOp = "update"
	OpDelete  ChangeOp = "delete"
	OpReplace ChangeOp = "replace" // whole-store swap, e.g. after an import
)

// Change describes a successful store mutation, delivered synchronously to
// subscribers so reactive consumers can re-query.
type Change struct {
	Op         ChangeOp
	Collection string
	ID         string // empty for OpReplace
}

// Store owns every entity collection of the tracker. It is the single
// state-changing component; the engines are pure functions reading the
// snapshots it hands out.
//
// Mutators validate their input and report rejection with a false return,
// never a panic: unknown ids, referential-integrity violations and immutable
// default categories are all expected outcomes the caller checks.
//
// The clock and the id generator are injectable so tests run deterministic.
type Store struct {
	// Now supplies timestamps for CreatedAt/UpdatedAt. Defaults to time.Now.
	Now func() time.Time
	// NewID supplies fresh entity ids. Defaults to uuid.NewString.
	NewID func() string

	settings              Settings
	accounts              []Account
	accountCategories     []AccountCategory
	transactions          []Transaction
	transactionCategories []TransactionCategory
	assets                []Asset
	customAssetTypes      []CustomAssetType
	balanceRecords        []BalanceRecord
	budgets               []Budget

	ids         map[string]struct{} // every id ever issued, across all collections
	subscribers []func(Change)
}

// NewStore creates an empty store seeded with the default category sets.
func NewStore() *Store {
	s := &Store{
		Now:      time.Now,
		NewID:    uuid.NewString,
		settings: DefaultSettings(),
		ids:      make(map[string]struct{}),
	}
	s.seedDefaults()
	return s
}

func (s *Store) seedDefaults() {
	now := s.Now()
	for _, name := range []string{"Checking", "Savings", "Cash", "Credit Card", "Investment"} {
		s.accountCategories = append(s.accountCategories, AccountCategory{
			ID: s.freshID(), Name: name, IsDefault: true, CreatedAt: now, UpdatedAt: now,
		})
	}
	defaults := []TransactionCategory{
		{Name: "Salary", Type: Income},
		{Name: "Other Income", Type: Income},
		{Name: "Groceries", Type: Expense},
		{Name: "Housing", Type: Expense},
		{Name: "Transport", Type: Expense},
		{Name: "Leisure", Type: Expense},
		{Name: "Other", Type: Expense},
	}
	for _, c := range defaults {
		c.ID, c.IsDefault, c.CreatedAt, c.UpdatedAt = s.freshID(), true, now, now
		s.transactionCategories = append(s.transactionCategories, c)
	}
}

// freshID issues an id that is unique across every collection of the store,
// not just within one.
func (s *Store) freshID() string {
	for {
		id := s.NewID()
		if _, taken := s.ids[id]; !taken {
			s.ids[id] = struct{}{}
			return id
		}
	}
}

// Subscribe registers a callback invoked synchronously after every
// successful mutation.
func (s *Store) Subscribe(fn func(Change)) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) notify(c Change) {
	for _, fn := range s.subscribers {
		fn(c)
	}
}

// --- settings ---

// Settings returns the current store settings.
func (s *Store) Settings() Settings { return s.settings }

// UpdateSettings replaces the settings. Returns false when they do not
// validate.
func (s *Store) UpdateSettings(settings Settings) bool {
	if settings.Validate() != nil {
		return false
	}
	s.settings = settings
	s.notify(Change{OpUpdate, "settings", ""})
	return true
}

// --- accounts ---

// AddAccount validates and stores a new account, assigning a fresh id and
// timestamps. Returns the stored account, or false on rejection.
func (s *Store) AddAccount(a Account) (Account, bool) {
	if a.Validate() != nil {
		return Account{}, false
	}
	if a.CategoryID != "" && !s.hasAccountCategory(a.CategoryID) {
		return Account{}, false
	}
	now := s.Now()
	a.ID, a.CreatedAt, a.UpdatedAt = s.freshID(), now, now
	s.accounts = append(s.accounts, a)
	s.notify(Change{OpAdd, "accounts", a.ID})
	return a, true
}

// UpdateAccount replaces the account with the same id. Returns false when
// the id is unknown or the new state does not validate. CreatedAt is
// preserved, UpdatedAt refreshed.
func (s *Store) UpdateAccount(a Account) bool {
	i := indexByID(s.accounts, a.ID, func(x Account) string { return x.ID })
	if i < 0 || a.Validate() != nil {
		return false
	}
	if a.CategoryID != "" && !s.hasAccountCategory(a.CategoryID) {
		return false
	}
	a.CreatedAt = s.accounts[i].CreatedAt
	a.UpdatedAt = s.Now()
	s.accounts[i] = a
	s.notify(Change{OpUpdate, "accounts", a.ID})
	return true
}

// SetAccountArchived flips the archived flag, soft-disabling the account
// without touching its history.
func (s *Store) SetAccountArchived(id string, archived bool) bool {
	i := indexByID(s.accounts, id, func(x Account) string { return x.ID })
	if i < 0 {
		return false
	}
	s.accounts[i].IsArchived = archived
	s.accounts[i].UpdatedAt = s.Now()
	s.notify(Change{OpUpdate, "accounts", id})
	return true
}

// DeleteAccount removes the account, unless any transaction or asset still
// references it.
func (s *Store) DeleteAccount(id string) bool {
	i := indexByID(s.accounts, id, func(x Account) string { return x.ID })
	if i < 0 {
		return false
	}
	for _, t := range s.transactions {
		if t.Touches(id) {
			return false
		}
	}
	for _, a := range s.assets {
		if a.AccountID == id {
			return false
		}
	}
	s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
	delete(s.ids, id)
	s.notify(Change{OpDelete, "accounts", id})
	return true
}

// Account returns a copy of the account with the given id.
func (s *Store) Account(id string) (Account, bool) {
	i := indexByID(s.accounts, id, func(x Account) string { return x.ID })
	if i < 0 {
		return Account{}, false
	}
	return s.accounts[i], true
}

// Accounts returns a copy of all accounts in creation order.
func (s *Store) Accounts() []Account { return append([]Account(nil), s.accounts...) }

// ActiveAccounts returns a copy of all non-archived accounts.
func (s *Store) ActiveAccounts() []Account {
	var active []Account
	for _, a := range s.accounts {
		if !a.IsArchived {
			active = append(active, a)
		}
	}
	return active
}

// --- transactions ---

// AddTransaction validates and stores a new transaction. Both referenced
// accounts, when set, must exist. The collection stays sorted by date; the
// sort is stable, so same-day transactions keep their insertion order.
func (s *Store) AddTransaction(t Transaction) (Transaction, bool) {
	if t.Validate() != nil || !s.hasEndpoints(t) {
		return Transaction{}, false
	}
	now := s.Now()
	t.ID, t.CreatedAt, t.UpdatedAt = s.freshID(), now, now
	s.transactions = append(s.transactions, t)
	s.sortTransactions()
	s.notify(Change{OpAdd, "transactions", t.ID})
	return t, true
}

// UpdateTransaction replaces the transaction with the same id.
func (s *Store) UpdateTransaction(t Transaction) bool {
	i := indexByID(s.transactions, t.ID, func(x Transaction) string { return x.ID })
	if i < 0 || t.Validate() != nil || !s.hasEndpoints(t) {
		return false
	}
	t.CreatedAt = s.transactions[i].CreatedAt
	t.UpdatedAt = s.Now()
	s.transactions[i] = t
	s.sortTransactions()
	s.notify(Change{OpUpdate, "transactions", t.ID})
	return true
}

// DeleteTransaction removes the transaction with the given id.
func (s *Store) DeleteTransaction(id string) bool {
	i := indexByID(s.transactions, id, func(x Transaction) string { return x.ID })
	if i < 0 {
		return false
	}
	s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
	delete(s.ids, id)
	s.notify(Change{OpDelete, "transactions", id})
	return true
}

// Transactions returns a copy of all transactions in chronological order.
func (s *Store) Transactions() []Transaction { return append([]Transaction(nil), s.transactions...) }

// TransactionsWhere returns the transactions matching all predicates, in
// chronological order.
func (s *Store) TransactionsWhere(preds ...func(Transaction) bool) []Transaction {
	var out []Transaction
next:
	for _, t := range s.transactions {
		for _, p := range preds {
			if !p(t) {
				continue next
			}
		}
		out = append(out, t)
	}
	return out
}

func (s *Store) hasEndpoints(t Transaction) bool {
	for _, id := range []string{t.FromAccountID, t.ToAccountID} {
		if id == "" {
			continue
		}
		if _, ok := s.Account(id); !ok {
			return false
		}
	}
	return true
}

func (s *Store) sortTransactions() {
	sort.SliceStable(s.transactions, func(i, j int) bool {
		return s.transactions[i].Date.Before(s.transactions[j].Date)
	})
}

// --- balance records ---

// AddBalanceRecord validates and stores a new balance checkpoint. The
// account must exist.
func (s *Store) AddBalanceRecord(r BalanceRecord) (BalanceRecord, bool) {
	if r.Validate() != nil {
		return BalanceRecord{}, false
	}
	if _, ok := s.Account(r.AccountID); !ok {
		return BalanceRecord{}, false
	}
	now := s.Now()
	r.ID, r.CreatedAt, r.UpdatedAt = s.freshID(), now, now
	s.balanceRecords = append(s.balanceRecords, r)
	s.notify(Change{OpAdd, "balanceRecords", r.ID})
	return r, true
}

// UpdateBalanceRecord replaces the balance record with the same id.
func (s *Store) UpdateBalanceRecord(r BalanceRecord) bool {
	i := indexByID(s.balanceRecords, r.ID, func(x BalanceRecord) string { return x.ID })
	if i < 0 || r.Validate() != nil {
		return false
	}
	if _, ok := s.Account(r.AccountID); !ok {
		return false
	}
	r.CreatedAt = s.balanceRecords[i].CreatedAt
	r.UpdatedAt = s.Now()
	s.balanceRecords[i] = r
	s.notify(Change{OpUpdate, "balanceRecords", r.ID})
	return true
}

// DeleteBalanceRecord removes the balance record with the given id.
func (s *Store) DeleteBalanceRecord(id string) bool {
	i := indexByID(s.balanceRecords, id, func(x BalanceRecord) string { return x.ID })
	if i < 0 {
		return false
	}
	s.balanceRecords = append(s.balanceRecords[:i], s.balanceRecords[i+1:]...)
	delete(s.ids, id)
	s.notify(Change{OpDelete, "balanceRecords", id})
	return true
}

// BalanceRecords returns a copy of all balance records.
func (s *Store) BalanceRecords() []BalanceRecord {
	return append([]BalanceRecord(nil), s.balanceRecords...)
}

// --- assets ---

// AddAsset validates and stores a new asset. The owning account must exist,
// and a custom kind must reference a known custom asset type.
func (s *Store) AddAsset(a Asset) (Asset, bool) {
	if !s.assetOK(a) {
		return Asset{}, false
	}
	now := s.Now()
	a.ID, a.CreatedAt, a.UpdatedAt = s.freshID(), now, now
	s.assets = append(s.assets, a)
	s.notify(Change{OpAdd, "assets", a.ID})
	return a, true
}

// UpdateAsset replaces the asset with the same id.
func (s *Store) UpdateAsset(a Asset) bool {
	i := indexByID(s.assets, a.ID, func(x Asset) string { return x.ID })
	if i < 0 || !s.assetOK(a) {
		return false
	}
	a.CreatedAt = s.assets[i].CreatedAt
	a.UpdatedAt = s.Now()
	s.assets[i] = a
	s.notify(Change{OpUpdate, "assets", a.ID})
	return true
}

// DeleteAsset removes the asset with the given id.
func (s *Store) DeleteAsset(id string) bool {
	i := indexByID(s.assets, id, func(x Asset) string { return x.ID })
	if i < 0 {
		return false
	}
	s.assets = append(s.assets[:i], s.assets[i+1:]...)
	delete(s.ids, id)
	s.notify(Change{OpDelete, "assets", id})
	return true
}

// Assets returns a copy of all assets.
func (s *Store) Assets() []Asset { return append([]Asset(nil), s.assets...) }

// AssetsOf returns the assets tracked in the given account.
func (s *Store) AssetsOf(accountID string) []Asset {
	var out []Asset
	for _, a := range s.assets {
		if a.AccountID == accountID {
			out = append(out, a)
		}
	}
	return out
}

func (s *Store) assetOK(a Asset) bool {
	if a.Validate() != nil {
		return false
	}
	if _, ok := s.Account(a.AccountID); !ok {
		return false
	}
	if customID, isCustom := a.Kind.CustomTypeID(); isCustom {
		if i := indexByID(s.customAssetTypes, customID, func(x CustomAssetType) string { return x.ID }); i < 0 {
			return false
		}
	}
	return true
}

// --- custom asset types ---

// AddCustomAssetType validates and stores a new custom asset type.
func (s *Store) AddCustomAssetType(t CustomAssetType) (CustomAssetType, bool) {
	if t.Validate() != nil {
		return CustomAssetType{}, false
	}
	now := s.Now()
	t.ID, t.CreatedAt, t.UpdatedAt = s.freshID(), now, now
	s.customAssetTypes = append(s.customAssetTypes, t)
	s.notify(Change{OpAdd, "customAssetTypes", t.ID})
	return t, true
}

// UpdateCustomAssetType replaces the custom asset type with the same id.
func (s *Store) UpdateCustomAssetType(t CustomAssetType) bool {
	i := indexByID(s.customAssetTypes, t.ID, func(x CustomAssetType) string { return x.ID })
	if i < 0 || t.Validate() != nil {
		return false
	}
	t.CreatedAt = s.customAssetTypes[i].CreatedAt
	t.UpdatedAt = s.Now()
	s.customAssetTypes[i] = t
	s.notify(Change{OpUpdate, "customAssetTypes", t.ID})
	return true
}

// DeleteCustomAssetType removes the custom asset type, unless an asset still
// references it.
func (s *Store) DeleteCustomAssetType(id string) bool {
	i := indexByID(s.customAssetTypes, id, func(x CustomAssetType) string { return x.ID })
	if i < 0 {
		return false
	}
	for _, a := range s.assets {
		if customID, isCustom := a.Kind.CustomTypeID(); isCustom && customID == id {
			return false
		}
	}
	s.customAssetTypes = append(s.customAssetTypes[:i], s.customAssetTypes[i+1:]...)
	delete(s.ids, id)
	s.notify(Change{OpDelete, "customAssetTypes", id})
	return true
}

// CustomAssetTypes returns a copy of all custom asset types.
func (s *Store) CustomAssetTypes() []CustomAssetType {
	return append([]CustomAssetType(nil), s.customAssetTypes...)
}

// --- budgets ---

// AddBudget validates and stores a new budget.
func (s *Store) AddBudget(b Budget) (Budget, bool) {
	if b.Validate() != nil {
		return Budget{}, false
	}
	now := s.Now()
	b.ID, b.CreatedAt, b.UpdatedAt = s.freshID(), now, now
	b.CategoryIDs = append([]string(nil), b.CategoryIDs...)
	s.budgets = append(s.budgets, b)
	s.notify(Change{OpAdd, "budgets", b.ID})
	return b, true
}

// UpdateBudget replaces the budget with the same id.
func (s *Store) UpdateBudget(b Budget) bool {
	i := indexByID(s.budgets, b.ID, func(x Budget) string { return x.ID })
	if i < 0 || b.Validate() != nil {
		return false
	}
	b.CreatedAt = s.budgets[i].CreatedAt
	b.UpdatedAt = s.Now()
	b.CategoryIDs = append([]string(nil), b.CategoryIDs...)
	s.budgets[i] = b
	s.notify(Change{OpUpdate, "budgets", b.ID})
	return true
}

// DeleteBudget removes the budget with the given id.
func (s *Store) DeleteBudget(id string) bool {
	i := indexByID(s.budgets, id, func(x Budget) string { return x.ID })
	if i < 0 {
		return false
	}
	s.budgets = append(s.budgets[:i], s.budgets[i+1:]...)
	delete(s.ids, id)
	s.notify(Change{OpDelete, "budgets", id})
	return true
}

// Budgets returns a copy of all budgets.
func (s *Store) Budgets() []Budget { return append([]Budget(nil), s.budgets...) }

// --- categories ---

// AddAccountCategory validates and stores a new account category. Categories
// created through the store are never default ones.
func (s *Store) AddAccountCategory(c AccountCategory) (AccountCategory, bool) {
	if c.Validate() != nil {
		return AccountCategory{}, false
	}
	now := s.Now()
	c.ID, c.IsDefault, c.CreatedAt, c.UpdatedAt = s.freshID(), false, now, now
	s.accountCategories = append(s.accountCategories, c)
	s.notify(Change{OpAdd, "accountCategories", c.ID})
	return c, true
}

// UpdateAccountCategory replaces the category with the same id. Default
// categories are immutable: updating one returns false.
func (s *Store) UpdateAccountCategory(c AccountCategory) bool {
	i := indexByID(s.accountCategories, c.ID, func(x AccountCategory) string { return x.ID })
	if i < 0 || s.accountCategories[i].IsDefault || c.Validate() != nil {
		return false
	}
	c.IsDefault = false
	c.CreatedAt = s.accountCategories[i].CreatedAt
	c.UpdatedAt = s.Now()
	s.accountCategories[i] = c
	s.notify(Change{OpUpdate, "accountCategories", c.ID})
	return true
}

// DeleteAccountCategory removes the category, unless it is a default one or
// an account still references it.
func (s *Store) DeleteAccountCategory(id string) bool {
	i := indexByID(s.accountCategories, id, func(x AccountCategory) string { return x.ID })
	if i < 0 || s.accountCategories[i].IsDefault {
		return false
	}
	for _, a := range s.accounts {
		if a.CategoryID == id {
			return false
		}
	}
	s.accountCategories = append(s.accountCategories[:i], s.accountCategories[i+1:]...)
	delete(s.ids, id)
	s.notify(Change{OpDelete, "accountCategories", id})
	return true
}

// AccountCategories returns a copy of all account categories.
func (s *Store) AccountCategories() []AccountCategory {
	return append([]AccountCategory(nil), s.accountCategories...)
}

func (s *Store) hasAccountCategory(id string) bool {
	return indexByID(s.accountCategories, id, func(x AccountCategory) string { return x.ID }) >= 0
}

// AddTransactionCategory validates and stores a new transaction category.
func (s *Store) AddTransactionCategory(c TransactionCategory) (TransactionCategory, bool) {
	if c.Validate() != nil {
		return TransactionCategory{}, false
	}
	now := s.Now()
	c.ID, c.IsDefault, c.CreatedAt, c.UpdatedAt = s.freshID(), false, now, now
	s.transactionCategories = append(s.transactionCategories, c)
	s.notify(Change{OpAdd, "transactionCategories", c.ID})
	return c, true
}

// UpdateTransactionCategory replaces the category with the same id. Default
// categories are immutable: updating one returns false.
func (s *Store) UpdateTransactionCategory(c TransactionCategory) bool {
	i := indexByID(s.transactionCategories, c.ID, func(x TransactionCategory) string { return x.ID })
	if i < 0 || s.transactionCategories[i].IsDefault || c.Validate() != nil {
		return false
	}
	c.IsDefault = false
	c.CreatedAt = s.transactionCategories[i].CreatedAt
	c.UpdatedAt = s.Now()
	s.transactionCategories[i] = c
	s.notify(Change{OpUpdate, "transactionCategories", c.ID})
	return true
}

// DeleteTransactionCategory removes the category, unless it is a default one
// or a transaction still references it.
func (s *Store) DeleteTransactionCategory(id string) bool {
	i := indexByID(s.transactionCategories, id, func(x TransactionCategory) string { return x.ID })
	if i < 0 || s.transactionCategories[i].IsDefault {
		return false
	}
	for _, t := range s.transactions {
		if t.CategoryID == id {
			return false
		}
	}
	s.transactionCategories = append(s.transactionCategories[:i], s.transactionCategories[i+1:]...)
	delete(s.ids, id)
	s.notify(Change{OpDelete, "transactionCategories", id})
	return true
}

// TransactionCategories returns a copy of all transaction categories.
func (s *Store) TransactionCategories() []TransactionCategory {
	return append([]TransactionCategory(nil), s.transactionCategories...)
}

// TransactionCategoryByName finds a category by its display name.
func (s *Store) TransactionCategoryByName(name string) (TransactionCategory, bool) {
	for _, c := range s.transactionCategories {
		if c.Name == name {
			return c, true
		}
	}
	return TransactionCategory{}, false
}

// indexByID is a linear scan; collections are small and recomputed-per-call
// access is the contract here.
func indexByID[T any](items []T, id string, key func(T) string) int {
	if id == "" {
		return -1
	}
	for i, item := range items {
		if key(item) == id {
			return i
		}
	}
	return -1
}
