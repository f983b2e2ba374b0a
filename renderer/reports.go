package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/till"
	"github.com/etnz/till/date"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// SummaryMarkdown renders the general sales report of a day.
func SummaryMarkdown(s till.Summary, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Sales summary on %s", s.Day))

	mostSold := "none"
	if s.HasMostSold {
		mostSold = fmt.Sprintf("%s (%d units)", s.MostSold.Name, s.MostSold.Quantity)
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", "Value"},
		Rows: [][]string{
			{"Opening balance", amount(s.OpeningBalance, cur)},
			{"Total revenue", amount(s.Revenue, cur)},
			{md.Bold("Closing balance"), md.Bold(amount(s.ClosingBalance(), cur))},
			{"Sales", strconv.Itoa(s.Sales)},
			{"Most sold product", mostSold},
		},
	})
	if !s.Opened {
		doc.PlainText("No opening balance was declared for this day.")
	}
	return doc.String()
}

// DatesMarkdown lists the days with sales.
func DatesMarkdown(days []date.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Days with sales")
	if len(days) == 0 {
		doc.PlainText("No sales recorded.")
		return doc.String()
	}
	items := make([]string, len(days))
	for i, d := range days {
		items[i] = d.String()
	}
	doc.BulletList(items...)
	return doc.String()
}

// RangeMarkdown renders the sales made from start to end.
func RangeMarkdown(start, end date.Date, sales []till.Sale, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Sales from %s to %s", start, end))
	if len(sales) == 0 {
		doc.PlainText("No sales in this range.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Customer", "Total"},
		Rows:      [][]string{},
	}
	total := decimal.Zero
	for _, s := range sales {
		table.Rows = append(table.Rows, []string{s.Timestamp.String(), s.CustomerName, amount(s.Total, cur)})
		total = total.Add(s.Total)
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total"), "", md.Bold(amount(total, cur))})
	doc.Table(table)
	return doc.String()
}

// ProductHistoryMarkdown renders every sale line of a product.
func ProductHistoryMarkdown(h till.ProductHistory, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("History for %s", h.Name))
	if len(h.Entries) == 0 {
		doc.PlainText("This product was never sold.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Date", "Quantity", "Subtotal"},
		Rows:      [][]string{},
	}
	for _, e := range h.Entries {
		table.Rows = append(table.Rows, []string{e.Timestamp.String(), strconv.Itoa(e.Quantity), amount(e.Subtotal, cur)})
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total"), md.Bold(strconv.Itoa(h.Quantity)), md.Bold(amount(h.Revenue, cur))})
	doc.Table(table)
	return doc.String()
}

// BucketsMarkdown renders the revenue by period.
func BucketsMarkdown(p date.Period, buckets []till.Bucket, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Revenue by %s", p))
	if len(buckets) == 0 {
		doc.PlainText("No sales recorded.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Period", "Revenue"},
		Rows:      [][]string{},
	}
	for _, b := range buckets {
		table.Rows = append(table.Rows, []string{b.Key, amount(b.Total, cur)})
	}
	doc.Table(table)
	return doc.String()
}

// CashMarkdown renders the state of the cash drawer.
func CashMarkdown(s till.Summary, closing decimal.Decimal, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Cash drawer on %s", s.Day))
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", "Amount"},
		Rows: [][]string{
			{"Opening balance", amount(s.OpeningBalance, cur)},
			{"Sales", amount(s.Revenue, cur)},
			{md.Bold("Expected in drawer"), md.Bold(amount(closing, cur))},
		},
	})
	return doc.String()
}
