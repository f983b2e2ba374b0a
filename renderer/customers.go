package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/till"
	md "github.com/nao1215/markdown"
)

// CustomersMarkdown renders the registered customers, numbered from 1.
func CustomersMarkdown(customers []till.Customer) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Customers")
	if len(customers) == 0 {
		doc.PlainText("No customer registered.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignLeft},
		Header:    []string{"#", "Name", "Next visit"},
		Rows:      [][]string{},
	}
	for i, c := range customers {
		table.Rows = append(table.Rows, []string{strconv.Itoa(i + 1), c.Name, c.NextVisitDate})
	}
	doc.Table(table)
	return doc.String()
}

// VisitsMarkdown renders the upcoming visits.
func VisitsMarkdown(customers []till.Customer) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Upcoming visits")
	if len(customers) == 0 {
		doc.PlainText("No visit planned.")
		return doc.String()
	}
	items := make([]string, len(customers))
	for i, c := range customers {
		items[i] = fmt.Sprintf("%s will come back on %s", c.Name, c.NextVisitDate)
	}
	doc.BulletList(items...)
	return doc.String()
}
