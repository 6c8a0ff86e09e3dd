package renderer

import (
	"bytes"
	"fmt"

	"github.com/finbook/finbook"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders a net worth series.
func HistoryMarkdown(r *finbook.HistoryReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Net Worth History (%s)", r.BaseCurrency))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Net Worth"},
		Rows:   [][]string{},
	}
	for _, p := range r.Points {
		table.Rows = append(table.Rows, []string{
			p.Date.String(),
			finbook.M(p.Value, r.BaseCurrency).String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
