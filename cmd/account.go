package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finbook/finbook"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addAccountCmd struct {
	name     string
	currency string
	category string
	initial  string
	notes    string
}

func (*addAccountCmd) Name() string     { return "add-account" }
func (*addAccountCmd) Synopsis() string { return "create a new account" }
func (*addAccountCmd) Usage() string {
	return `fbk add-account -name <name> -c <currency> [-category <name>] [-initial <amount>] [-notes <text>]

  Creates an account. The currency is an ISO 4217 code; the optional initial
  balance seeds the account's computed balance before any transaction.
`
}

func (c *addAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Account name.")
	f.StringVar(&c.currency, "c", "", "ISO 4217 currency code, e.g. EUR.")
	f.StringVar(&c.category, "category", "", "Account category name or id.")
	f.StringVar(&c.initial, "initial", "0", "Initial balance in the account currency.")
	f.StringVar(&c.notes, "notes", "", "Free-form notes.")
}

func (c *addAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	initial, err := finbook.ParseDecimal(c.initial)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing initial balance: %v\n", err)
		return subcommands.ExitUsageError
	}
	a := finbook.Account{
		Name:           c.name,
		Currency:       c.currency,
		InitialBalance: initial,
		Notes:          c.notes,
	}
	if c.category != "" {
		for _, cat := range s.AccountCategories() {
			if cat.ID == c.category || cat.Name == c.category {
				a.CategoryID = cat.ID
				break
			}
		}
		if a.CategoryID == "" {
			fmt.Fprintf(os.Stderr, "Error: unknown account category %q\n", c.category)
			return subcommands.ExitUsageError
		}
	}
	stored, ok := s.AddAccount(a)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: account rejected: %v\n", a.Validate())
		return subcommands.ExitUsageError
	}
	if err := SaveStore(s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created account %q (%s)\n", stored.Name, stored.ID)
	return subcommands.ExitSuccess
}

type archiveAccountCmd struct {
	restore bool
}

func (*archiveAccountCmd) Name() string { return "archive-account" }
func (*archiveAccountCmd) Synopsis() string {
	return "archive (or restore) an account, keeping its history"
}
func (*archiveAccountCmd) Usage() string {
	return `fbk archive-account [-restore] <account>

  Archives the account: it drops out of listings and net worth, but its
  transactions and balance records stay untouched. With -restore the account
  is brought back.
`
}

func (c *archiveAccountCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.restore, "restore", false, "Restore the account instead of archiving it.")
}

func (c *archiveAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one account name or id.")
		return subcommands.ExitUsageError
	}
	s, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	a, ok := findAccount(s, f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown account %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}
	if !s.SetAccountArchived(a.ID, !c.restore) {
		fmt.Fprintf(os.Stderr, "Error: could not update account %q\n", a.Name)
		return subcommands.ExitFailure
	}
	if err := SaveStore(s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.restore {
		fmt.Printf("Restored account %q\n", a.Name)
	} else {
		fmt.Printf("Archived account %q\n", a.Name)
	}
	return subcommands.ExitSuccess
}

type accountsCmd struct {
	all  bool
	date string
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list accounts with their balances" }
func (*accountsCmd) Usage() string {
	return `fbk accounts [-all] [-d <date>]

  Lists accounts and their balances on the given date (today by default).
  Archived accounts appear only with -all.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "Include archived accounts.")
	f.StringVar(&c.date, "d", finbook.Today().String(), "Date for the balances.")
}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := finbook.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	s, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	accounts := s.ActiveAccounts()
	if c.all {
		accounts = s.Accounts()
	}
	for _, a := range accounts {
		balance := finbook.BalanceAsOf(a, s.BalanceRecords(), s.Transactions(), on)
		marker := ""
		if a.IsArchived {
			marker = " (archived)"
		}
		fmt.Printf("%-30s %14s%s\n", a.Name, format(balance, a.Currency), marker)
	}
	return subcommands.ExitSuccess
}

func format(d decimal.Decimal, cur string) string {
	return finbook.M(d, cur).String()
}
