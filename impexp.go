package finbook

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts serialize as plain JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// appVersion is stamped into exports; imports accept any version.
const appVersion = "1.0.0"

// storeData is the flat serialized form of every collection in the store.
type storeData struct {
	Settings              Settings              `json:"settings"`
	AccountCategories     []AccountCategory     `json:"accountCategories"`
	Accounts              []Account             `json:"accounts"`
	TransactionCategories []TransactionCategory `json:"transactionCategories"`
	Transactions          []Transaction         `json:"transactions"`
	CustomAssetTypes      []CustomAssetType     `json:"customAssetTypes"`
	Assets                []Asset               `json:"assets"`
	BalanceRecords        []BalanceRecord       `json:"balanceRecords"`
	Budgets               []Budget              `json:"budgets"`
}

// exportEnvelope wraps a data snapshot with provenance metadata.
type exportEnvelope struct {
	AppVersion string    `json:"appVersion"`
	ExportDate Date      `json:"exportDate"`
	Data       storeData `json:"data"`
}

func (s *Store) snapshot() storeData {
	return storeData{
		Settings:              s.settings,
		AccountCategories:     s.AccountCategories(),
		Accounts:              s.Accounts(),
		TransactionCategories: s.TransactionCategories(),
		Transactions:          s.Transactions(),
		CustomAssetTypes:      s.CustomAssetTypes(),
		Assets:                s.Assets(),
		BalanceRecords:        s.BalanceRecords(),
		Budgets:               s.Budgets(),
	}
}

// ExportData writes the whole store as a single JSON document wrapped in a
// versioned envelope.
func (s *Store) ExportData(w io.Writer) error {
	env := exportEnvelope{
		AppVersion: appVersion,
		ExportDate: DateOf(s.Now()),
		Data:       s.snapshot(),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("exporting store: %w", err)
	}
	return nil
}

// ImportData replaces the whole store with the snapshot read from r. Both
// the versioned envelope and the bare flat form are accepted.
//
// The import is all-or-nothing: the incoming data is fully validated before
// anything is touched, and on any error the store is left exactly as it
// was.
func (s *Store) ImportData(r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading import: %w", err)
	}
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return fmt.Errorf("parsing import: %w", err)
	}
	payload := raw
	if wrapped, ok := top["data"]; ok {
		payload = wrapped
	}
	var d storeData
	if err := json.Unmarshal(payload, &d); err != nil {
		return fmt.Errorf("parsing import data: %w", err)
	}
	if (d.Settings == Settings{}) {
		d.Settings = DefaultSettings()
	}
	ids, err := validateData(d)
	if err != nil {
		return fmt.Errorf("invalid import data: %w", err)
	}
	s.replaceAll(d, ids)
	return nil
}

// validateData checks every entity and every cross-reference of an incoming
// snapshot, returning the set of all ids when it is coherent.
func validateData(d storeData) (map[string]struct{}, error) {
	ids := make(map[string]struct{})
	claim := func(id, what string) error {
		if id == "" {
			return fmt.Errorf("%s has no id", what)
		}
		if _, dup := ids[id]; dup {
			return fmt.Errorf("duplicate id %s on %s", id, what)
		}
		ids[id] = struct{}{}
		return nil
	}

	if err := d.Settings.Validate(); err != nil {
		return nil, err
	}
	accountCategories := make(map[string]bool)
	for _, c := range d.AccountCategories {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if err := claim(c.ID, "account category"); err != nil {
			return nil, err
		}
		accountCategories[c.ID] = true
	}
	accounts := make(map[string]bool)
	for _, a := range d.Accounts {
		if err := a.Validate(); err != nil {
			return nil, err
		}
		if err := claim(a.ID, "account"); err != nil {
			return nil, err
		}
		if a.CategoryID != "" && !accountCategories[a.CategoryID] {
			return nil, fmt.Errorf("account %s references unknown category %s", a.ID, a.CategoryID)
		}
		accounts[a.ID] = true
	}
	txCategories := make(map[string]bool)
	for _, c := range d.TransactionCategories {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if err := claim(c.ID, "transaction category"); err != nil {
			return nil, err
		}
		txCategories[c.ID] = true
	}
	for _, t := range d.Transactions {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if err := claim(t.ID, "transaction"); err != nil {
			return nil, err
		}
		for _, ref := range []string{t.FromAccountID, t.ToAccountID} {
			if ref != "" && !accounts[ref] {
				return nil, fmt.Errorf("transaction %s references unknown account %s", t.ID, ref)
			}
		}
		if t.CategoryID != "" && !txCategories[t.CategoryID] {
			return nil, fmt.Errorf("transaction %s references unknown category %s", t.ID, t.CategoryID)
		}
	}
	customTypes := make(map[string]bool)
	for _, t := range d.CustomAssetTypes {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if err := claim(t.ID, "custom asset type"); err != nil {
			return nil, err
		}
		customTypes[t.ID] = true
	}
	for _, a := range d.Assets {
		if err := a.Validate(); err != nil {
			return nil, err
		}
		if err := claim(a.ID, "asset"); err != nil {
			return nil, err
		}
		if !accounts[a.AccountID] {
			return nil, fmt.Errorf("asset %s references unknown account %s", a.ID, a.AccountID)
		}
		if customID, isCustom := a.Kind.CustomTypeID(); isCustom && !customTypes[customID] {
			return nil, fmt.Errorf("asset %s references unknown custom type %s", a.ID, customID)
		}
	}
	for _, r := range d.BalanceRecords {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if err := claim(r.ID, "balance record"); err != nil {
			return nil, err
		}
		if !accounts[r.AccountID] {
			return nil, fmt.Errorf("balance record %s references unknown account %s", r.ID, r.AccountID)
		}
	}
	for _, b := range d.Budgets {
		if err := b.Validate(); err != nil {
			return nil, err
		}
		if err := claim(b.ID, "budget"); err != nil {
			return nil, err
		}
		for _, cid := range b.CategoryIDs {
			if !txCategories[cid] {
				return nil, fmt.Errorf("budget %s references unknown category %s", b.ID, cid)
			}
		}
	}
	return ids, nil
}

func (s *Store) replaceAll(d storeData, ids map[string]struct{}) {
	s.settings = d.Settings
	s.accountCategories = d.AccountCategories
	s.accounts = d.Accounts
	s.transactionCategories = d.TransactionCategories
	s.transactions = d.Transactions
	s.customAssetTypes = d.CustomAssetTypes
	s.assets = d.Assets
	s.balanceRecords = d.BalanceRecords
	s.budgets = d.Budgets
	s.ids = ids
	s.sortTransactions()
	s.notify(Change{Op: OpReplace})
}
