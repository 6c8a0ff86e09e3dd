// Package renderer turns finbook reports into markdown documents, ready for
// a terminal pager or a plain file.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/finbook/finbook"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the daily summary report.
func SummaryMarkdown(s *finbook.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Summary on %s", s.Date))
	doc.PlainTextf("Net worth: **%s**", s.NetWorth)
	doc.LF()

	if len(s.Accounts) > 0 {
		doc.H2("Accounts")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Account", "Category", "Balance", "Assets"},
			Rows:   [][]string{},
		}
		for _, a := range s.Accounts {
			assets := ""
			if a.Assets > 0 {
				assets = fmt.Sprintf("%d", a.Assets)
			}
			table.Rows = append(table.Rows, []string{a.Name, a.Category, a.Balance.String(), assets})
		}
		doc.Table(table)
	}

	if len(s.Budgets) > 0 {
		doc.H2("Budgets")
		doc.Table(budgetTable(s.Budgets))
	}

	return doc.String()
}

// BudgetsMarkdown renders the budget rows on their own.
func BudgetsMarkdown(on finbook.Date, lines []finbook.BudgetLine) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Budgets on %s", on))
	if len(lines) == 0 {
		doc.PlainText("No budgets defined.")
		return doc.String()
	}
	doc.Table(budgetTable(lines))
	return doc.String()
}

func budgetTable(lines []finbook.BudgetLine) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Budget", "Window", "Amount", "Spent", "Remaining"},
		Rows:   [][]string{},
	}
	for _, b := range lines {
		window := fmt.Sprintf("%s to %s", b.Window.From, b.Window.To)
		table.Rows = append(table.Rows, []string{
			b.Name, window, b.Amount.String(), b.Spent.String(), b.Remaining.String(),
		})
	}
	return table
}
