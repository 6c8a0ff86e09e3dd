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

type networthCmd struct {
	date string
}

func (*networthCmd) Name() string     { return "networth" }
func (*networthCmd) Synopsis() string { return "compute the total net worth on a date" }
func (*networthCmd) Usage() string {
	return `fbk networth [-d <date>]

  Sums all active account balances and asset values on the given date,
  converted into the base currency.
`
}

func (c *networthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", finbook.Today().String(), "Date for the computation.")
}

func (c *networthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	convert, err := Converter(s.Settings().BaseCurrency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Net worth on %s: %s\n", on, s.NetWorth(convert, on))
	return subcommands.ExitSuccess
}

type historyCmd struct {
	start    string
	end      string
	interval string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show the net worth series over a date range" }
func (*historyCmd) Usage() string {
	return `fbk history -s <start> [-e <end>] [-i <interval>]

  Samples the net worth from the start date to the end date (today by
  default), one point per interval (day, week, month, quarter, year).
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "Start date of the series.")
	f.StringVar(&c.end, "e", finbook.Today().String(), "End date of the series.")
	f.StringVar(&c.interval, "i", "month", "Sampling interval.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, err := finbook.ParseDate(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}
	end, err := finbook.ParseDate(c.end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
		return subcommands.ExitUsageError
	}
	interval, err := finbook.ParsePeriod(c.interval)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	s, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	convert, err := Converter(s.Settings().BaseCurrency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	report := s.NewHistoryReport(finbook.NewRange(start, end), interval, convert)
	printMarkdown(renderer.HistoryMarkdown(report))
	return subcommands.ExitSuccess
}

type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display net worth, accounts and budgets at a glance" }
func (*summaryCmd) Usage() string {
	return `fbk summary [-d <date>]

  Displays the full picture on a date: net worth, per-account balances and
  budget consumption.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", finbook.Today().String(), "Date for the summary.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	convert, err := Converter(s.Settings().BaseCurrency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SummaryMarkdown(s.NewSummary(on, convert)))
	return subcommands.ExitSuccess
}
