package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/till"
	md "github.com/nao1215/markdown"
)

// CatalogMarkdown renders the products as a table.
func CatalogMarkdown(products []till.Product, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Catalog")
	if len(products) == 0 {
		doc.PlainText("The catalog is empty.")
		return doc.String()
	}
	doc.Table(productTable(products, cur))
	return doc.String()
}

func productTable(products []till.Product, cur string) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"ID", "Name", "Price", "Stock"},
		Rows:      [][]string{},
	}
	for _, p := range products {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(p.ID),
			p.Name,
			amount(p.UnitPrice, cur),
			strconv.Itoa(p.Stock),
		})
	}
	return table
}

// LowStockMarkdown renders the products whose stock is under threshold.
func LowStockMarkdown(products []till.Product, threshold int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Stock under %d", threshold))
	if len(products) == 0 {
		doc.PlainText("Every product is well stocked.")
		return doc.String()
	}
	items := make([]string, len(products))
	for i, p := range products {
		items[i] = fmt.Sprintf("%s (stock: %d)", p.Name, p.Stock)
	}
	doc.BulletList(items...)
	return doc.String()
}

// NeverSoldMarkdown renders the names of the products never sold.
func NeverSoldMarkdown(names []string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Products never sold")
	if len(names) == 0 {
		doc.PlainText("Every product has been sold at least once.")
		return doc.String()
	}
	doc.BulletList(names...)
	return doc.String()
}
