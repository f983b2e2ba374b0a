package date

import (
	"fmt"
	"strings"
)

// Period is the granularity used to bucket sales.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "day"
	case Weekly:
		return "week"
	case Monthly:
		return "month"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// ParsePeriod accepts the english names and the spanish ones typed in the
// first version of the till.
func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "daily", "day", "dia", "día":
		return Daily, nil
	case "weekly", "week", "semana":
		return Weekly, nil
	case "monthly", "month", "mes":
		return Monthly, nil
	default:
		return Daily, fmt.Errorf("unknown period %q", p)
	}
}

// Key returns the bucket key of d for the period p: "2006-01-02" for days,
// "2006-W01" (ISO year and week) for weeks and "2006-01" for months.
// Keys of the same period sort chronologically.
func (p Period) Key(d Date) string {
	switch p {
	case Daily:
		return d.String()
	case Weekly:
		year, week := d.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case Monthly:
		return d.Format("2006-01")
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}
