package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finbook/finbook"
	"github.com/google/subcommands"
)

type recordBalanceCmd struct {
	account  string
	amount   string
	date     string
	verified bool
}

func (*recordBalanceCmd) Name() string { return "record-balance" }
func (*recordBalanceCmd) Synopsis() string {
	return "record an authoritative balance checkpoint for an account"
}
func (*recordBalanceCmd) Usage() string {
	return `fbk record-balance -account <account> -a <amount> [-d <date>] [-verified]

  Records the account's actual balance on a date, e.g. from a bank statement.
  The checkpoint overrides the computed balance: from that date on, only
  later transactions are replayed on top of the recorded amount.
`
}

func (c *recordBalanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account name or id.")
	f.StringVar(&c.amount, "a", "", "Recorded balance, in the account currency.")
	f.StringVar(&c.date, "d", finbook.Today().String(), "Checkpoint date.")
	f.BoolVar(&c.verified, "verified", false, "Mark the checkpoint as verified against a statement.")
}

func (c *recordBalanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	a, ok := findAccount(s, c.account)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown account %q\n", c.account)
		return subcommands.ExitUsageError
	}
	amount, err := finbook.ParseDecimal(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	date, err := finbook.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	r := finbook.BalanceRecord{
		AccountID:  a.ID,
		Amount:     amount,
		Date:       date,
		IsVerified: c.verified,
	}
	if _, ok := s.AddBalanceRecord(r); !ok {
		fmt.Fprintf(os.Stderr, "Error: balance record rejected: %v\n", r.Validate())
		return subcommands.ExitUsageError
	}
	if err := SaveStore(s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded balance %s for %q on %s\n", format(amount, a.Currency), a.Name, date)
	return subcommands.ExitSuccess
}

type balanceCmd struct {
	date string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show an account's balance on a date" }
func (*balanceCmd) Usage() string {
	return `fbk balance [-d <date>] <account>

  Computes the account's balance on the given date (today by default),
  honoring the latest balance checkpoint on or before that date.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", finbook.Today().String(), "Date for the balance.")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one account name or id.")
		return subcommands.ExitUsageError
	}
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
	a, ok := findAccount(s, f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown account %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}
	balance, _ := s.AccountBalance(a.ID, on)
	fmt.Printf("%s: %s on %s\n", a.Name, balance, on)
	return subcommands.ExitSuccess
}
