package renderer

import (
	"bytes"

	"github.com/finbook/finbook"
	md "github.com/nao1215/markdown"
)

// TransactionsMarkdown renders a transaction log. The two lookup functions
// resolve account and category ids to display names; they get the empty
// string for external endpoints and uncategorized transactions.
func TransactionsMarkdown(txs []finbook.Transaction, accountName, categoryName func(id string) string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	if len(txs) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"Date", "Type", "Amount", "From", "To", "Category", "Description"},
		Rows:   [][]string{},
	}
	for _, t := range txs {
		table.Rows = append(table.Rows, []string{
			t.Date.String(),
			string(t.Type),
			t.Amount.String(),
			accountName(t.FromAccountID),
			accountName(t.ToAccountID),
			categoryName(t.CategoryID),
			t.Description,
		})
	}
	doc.Table(table)

	return doc.String()
}
