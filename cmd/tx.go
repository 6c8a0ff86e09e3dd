package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finbook/finbook"
	"github.com/finbook/finbook/renderer"
	"github.com/google/subcommands"
)

// txFlags are the flags shared by the income, expense and transfer commands.
type txFlags struct {
	amount      string
	date        string
	category    string
	description string
}

func (c *txFlags) set(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "Amount, a non-negative number.")
	f.StringVar(&c.date, "d", finbook.Today().String(), "Transaction date.")
	f.StringVar(&c.category, "category", "", "Transaction category name or id.")
	f.StringVar(&c.description, "m", "", "Description.")
}

// build fills the shared fields of a transaction from the flags.
func (c *txFlags) build(s *finbook.Store, t *finbook.Transaction) error {
	amount, err := finbook.ParseDecimal(c.amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", c.amount, err)
	}
	date, err := finbook.ParseDate(c.date)
	if err != nil {
		return fmt.Errorf("invalid date: %w", err)
	}
	t.Amount = amount
	t.Date = date
	t.Description = c.description
	if c.category != "" {
		cat, ok := findTxCategory(s, c.category)
		if !ok {
			return fmt.Errorf("unknown category %q", c.category)
		}
		t.CategoryID = cat.ID
	}
	return nil
}

// record adds the transaction and saves the store.
func record(s *finbook.Store, t finbook.Transaction) subcommands.ExitStatus {
	stored, ok := s.AddTransaction(t)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: transaction rejected: %v\n", t.Validate())
		return subcommands.ExitUsageError
	}
	if err := SaveStore(s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s of %s on %s\n", stored.Type, stored.Amount, stored.Date)
	return subcommands.ExitSuccess
}

type incomeCmd struct {
	txFlags
	to string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record money flowing into an account" }
func (*incomeCmd) Usage() string {
	return `fbk income -a <amount> -to <account> [-d <date>] [-category <name>] [-m <description>]

  Records an income into the destination account.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	c.set(f)
	f.StringVar(&c.to, "to", "", "Destination account name or id.")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	to, ok := findAccount(s, c.to)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown account %q\n", c.to)
		return subcommands.ExitUsageError
	}
	t := finbook.Transaction{Type: finbook.Income, ToAccountID: to.ID}
	if err := c.build(s, &t); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return record(s, t)
}

type expenseCmd struct {
	txFlags
	from string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record money flowing out of an account" }
func (*expenseCmd) Usage() string {
	return `fbk expense -a <amount> -from <account> [-d <date>] [-category <name>] [-m <description>]

  Records an expense out of the source account.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	c.set(f)
	f.StringVar(&c.from, "from", "", "Source account name or id.")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	from, ok := findAccount(s, c.from)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown account %q\n", c.from)
		return subcommands.ExitUsageError
	}
	t := finbook.Transaction{Type: finbook.Expense, FromAccountID: from.ID}
	if err := c.build(s, &t); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return record(s, t)
}

type transferCmd struct {
	txFlags
	from string
	to   string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "record money moving between two accounts" }
func (*transferCmd) Usage() string {
	return `fbk transfer -a <amount> -from <account> -to <account> [-d <date>] [-m <description>]

  Records a transfer between two distinct accounts. The amount is interpreted
  in each account's own currency; no conversion is applied.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	c.set(f)
	f.StringVar(&c.from, "from", "", "Source account name or id.")
	f.StringVar(&c.to, "to", "", "Destination account name or id.")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	from, ok := findAccount(s, c.from)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown account %q\n", c.from)
		return subcommands.ExitUsageError
	}
	to, ok := findAccount(s, c.to)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown account %q\n", c.to)
		return subcommands.ExitUsageError
	}
	t := finbook.Transaction{Type: finbook.Transfer, FromAccountID: from.ID, ToAccountID: to.ID}
	if err := c.build(s, &t); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return record(s, t)
}

type txCmd struct {
	period  string
	start   string
	date    string
	account string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions" }
func (*txCmd) Usage() string {
	return `fbk tx [-p <period> | -s <start_date>] [-d <end_date>] [-account <account>]

  Lists transactions, optionally filtered to a date range or an account.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Predefined period (day, week, month, quarter, year).")
	f.StringVar(&c.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&c.date, "d", "", "The end date for the range.")
	f.StringVar(&c.account, "account", "", "Only transactions touching this account.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var preds []func(finbook.Transaction) bool

	useFullRange := c.start == "" && c.date == "" && c.period == ""
	if !useFullRange {
		endStr := c.date
		if endStr == "" {
			endStr = finbook.Today().String()
		}
		end, err := finbook.ParseDate(endStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitUsageError
		}
		var r finbook.Range
		if c.start != "" {
			start, err := finbook.ParseDate(c.start)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
				return subcommands.ExitUsageError
			}
			r = finbook.NewRange(start, end)
		} else {
			period, err := finbook.ParsePeriod(c.period)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
				return subcommands.ExitUsageError
			}
			r = period.Range(end)
		}
		preds = append(preds, func(t finbook.Transaction) bool { return r.Contains(t.Date) })
	}
	if c.account != "" {
		a, ok := findAccount(s, c.account)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown account %q\n", c.account)
			return subcommands.ExitUsageError
		}
		preds = append(preds, finbook.ByAccount(a.ID))
	}

	accountNames := make(map[string]string)
	for _, a := range s.Accounts() {
		accountNames[a.ID] = a.Name
	}
	categoryNames := make(map[string]string)
	for _, cat := range s.TransactionCategories() {
		categoryNames[cat.ID] = cat.Name
	}

	md := renderer.TransactionsMarkdown(s.TransactionsWhere(preds...),
		func(id string) string { return accountNames[id] },
		func(id string) string { return categoryNames[id] })
	printMarkdown(md)
	return subcommands.ExitSuccess
}
