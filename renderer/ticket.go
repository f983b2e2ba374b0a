package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/till"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// TicketMarkdown renders the receipt of a committed sale.
func TicketMarkdown(s till.Sale, cur string) string {
	var b strings.Builder
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Sale ticket")
	doc.PlainText(fmt.Sprintf("Date: %s  \nTicket: %s", s.Timestamp, s.Ticket))
	b.WriteString(doc.String())

	ConditionalBlock(&b, func(w io.Writer) bool {
		if s.CustomerName == "" {
			return false
		}
		fmt.Fprintf(w, "\nCustomer: %s", s.CustomerName)
		if s.NextVisitDate != "" {
			fmt.Fprintf(w, " (next visit: %s)", s.NextVisitDate)
		}
		fmt.Fprintln(w)
		return true
	})

	b.WriteString("\n")
	buf.Reset()
	doc = md.NewMarkdown(&buf)
	doc.Table(linesTable(s.Lines, s.Total, cur))
	b.WriteString(doc.String())
	return b.String()
}

// CartMarkdown renders the lines of a sale being composed.
func CartMarkdown(lines []till.CartLine, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Cart")
	if len(lines) == 0 {
		doc.PlainText("The cart is empty.")
		return doc.String()
	}
	doc.Table(linesTable(lines, till.Sale{Lines: lines}.LinesTotal(), cur))
	return doc.String()
}

func linesTable(lines []till.CartLine, total decimal.Decimal, cur string) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignRight},
		Header:    []string{"Qty", "Product", "Subtotal"},
		Rows:      [][]string{},
	}
	for _, l := range lines {
		table.Rows = append(table.Rows, []string{strconv.Itoa(l.Quantity), l.Name, amount(l.Subtotal, cur)})
	}
	table.Rows = append(table.Rows, []string{"", md.Bold("Total"), md.Bold(amount(total, cur))})
	return table
}
