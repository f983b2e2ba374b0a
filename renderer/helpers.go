package renderer

import (
	"bytes"
	"io"

	"github.com/etnz/till"
	"github.com/shopspring/decimal"
)

// ConditionalBlock buffers what block writes and copies it to w only when
// block returns true, like the optional customer lines of a ticket.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	var buf bytes.Buffer
	if block(&buf) {
		buf.WriteTo(w)
	}
}

// amount formats v in currency cur.
func amount(v decimal.Decimal, cur string) string {
	return till.M(v, cur).String()
}
