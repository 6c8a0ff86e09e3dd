// Package cmd implements the CLI application to manage a finbook store.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/finbook/finbook"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() to install them, and Execute() on the
// user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addAccountCmd{}, "accounts")
	c.Register(&archiveAccountCmd{}, "accounts")
	c.Register(&accountsCmd{}, "accounts")

	c.Register(&incomeCmd{}, "transactions")
	c.Register(&expenseCmd{}, "transactions")
	c.Register(&transferCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")

	c.Register(&recordBalanceCmd{}, "balances")
	c.Register(&balanceCmd{}, "balances")

	c.Register(&addAssetCmd{}, "assets")

	c.Register(&addBudgetCmd{}, "budgets")
	c.Register(&budgetsCmd{}, "budgets")

	c.Register(&networthCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")

	c.Register(&exportCmd{}, "data")
	c.Register(&importCmd{}, "data")
}

// As a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables for the app-wide flags.

var storeFile = flag.String("file", finbook.DefaultStoreFile, "Path to the store file (JSON)")
var ratesFile = flag.String("rates", "", "Path to an exchange-rate snapshot file (JSON); face-value rates when unset")

// LoadStore loads the app store file.
func LoadStore() (*finbook.Store, error) {
	return finbook.LoadStore(*storeFile)
}

// SaveStore writes the app store file back.
func SaveStore(s *finbook.Store) error {
	return finbook.SaveStore(*storeFile, s)
}

// Converter builds the currency converter for a base currency, from the
// configured rate snapshot when there is one.
func Converter(base string) (finbook.ConvertFunc, error) {
	if *ratesFile == "" {
		return finbook.DefaultRates(base).Convert, nil
	}
	f, err := os.Open(*ratesFile)
	if err != nil {
		return nil, fmt.Errorf("opening rates file %q: %w", *ratesFile, err)
	}
	defer f.Close()
	rt, err := finbook.LoadRateTable(f)
	if err != nil {
		return nil, err
	}
	return rt.Convert, nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer cannot be set up (e.g. no TTY detection data).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// findAccount resolves an account by id or, failing that, by exact name.
func findAccount(s *finbook.Store, ref string) (finbook.Account, bool) {
	if a, ok := s.Account(ref); ok {
		return a, true
	}
	for _, a := range s.Accounts() {
		if a.Name == ref {
			return a, true
		}
	}
	return finbook.Account{}, false
}

// findTxCategory resolves a transaction category by id or by exact name.
func findTxCategory(s *finbook.Store, ref string) (finbook.TransactionCategory, bool) {
	for _, c := range s.TransactionCategories() {
		if c.ID == ref {
			return c, true
		}
	}
	return s.TransactionCategoryByName(ref)
}
