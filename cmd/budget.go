package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/finbook/finbook"
	"github.com/finbook/finbook/renderer"
	"github.com/google/subcommands"
)

type addBudgetCmd struct {
	name       string
	amount     string
	period     string
	categories string
	start      string
	end        string
	once       bool
}

func (*addBudgetCmd) Name() string     { return "add-budget" }
func (*addBudgetCmd) Synopsis() string { return "create a spending budget over categories" }
func (*addBudgetCmd) Usage() string {
	return `fbk add-budget -name <name> -a <amount> -p <period> -categories <c1,c2,...> [-s <start>] [-e <end>] [-once]

  Creates a budget tracking expenses in the given categories. The period is
  weekly, monthly or yearly; the budget recurs every period unless -once is
  given.
`
}

func (c *addBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Budget name.")
	f.StringVar(&c.amount, "a", "", "Budget amount per window, in the base currency.")
	f.StringVar(&c.period, "p", "monthly", "Budget period (weekly, monthly, yearly).")
	f.StringVar(&c.categories, "categories", "", "Comma-separated transaction category names or ids.")
	f.StringVar(&c.start, "s", finbook.Today().String(), "Start date of the first window.")
	f.StringVar(&c.end, "e", "", "Optional end date; the budget stops after it.")
	f.BoolVar(&c.once, "once", false, "One-shot budget covering a single window.")
}

func (c *addBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	amount, err := finbook.ParseDecimal(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	period, err := finbook.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	start, err := finbook.ParseDate(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}

	var categoryIDs []string
	for _, ref := range strings.Split(c.categories, ",") {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			continue
		}
		cat, ok := findTxCategory(s, ref)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown category %q\n", ref)
			return subcommands.ExitUsageError
		}
		categoryIDs = append(categoryIDs, cat.ID)
	}

	b := finbook.Budget{
		Name:        c.name,
		Period:      period,
		Amount:      amount,
		CategoryIDs: categoryIDs,
		StartDate:   start,
		IsRecurring: !c.once,
	}
	if c.end != "" {
		end, err := finbook.ParseDate(c.end)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitUsageError
		}
		b.EndDate = &end
	}
	stored, ok := s.AddBudget(b)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: budget rejected: %v\n", b.Validate())
		return subcommands.ExitUsageError
	}
	if err := SaveStore(s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created %s budget %q of %s\n", stored.Period, stored.Name, stored.Amount)
	return subcommands.ExitSuccess
}

type budgetsCmd struct {
	date string
}

func (*budgetsCmd) Name() string     { return "budgets" }
func (*budgetsCmd) Synopsis() string { return "show budget consumption for the current windows" }
func (*budgetsCmd) Usage() string {
	return `fbk budgets [-d <date>]

  Shows every budget's active window, spent and remaining amounts on the
  given date (today by default).
`
}

func (c *budgetsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", finbook.Today().String(), "Date the windows are computed for.")
}

func (c *budgetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	base := s.Settings().BaseCurrency
	var lines []finbook.BudgetLine
	for _, st := range s.BudgetStatuses(on) {
		lines = append(lines, finbook.BudgetLine{
			Name:      st.Budget.Name,
			Window:    st.Window,
			Amount:    finbook.M(st.Budget.Amount, base),
			Spent:     finbook.M(st.Spent, base),
			Remaining: finbook.M(st.Remaining, base),
		})
	}
	printMarkdown(renderer.BudgetsMarkdown(on, lines))
	return subcommands.ExitSuccess
}
