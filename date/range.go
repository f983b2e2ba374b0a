package date

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange returns the range between two dates.
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// PeriodRange returns the period p that contains d.
func PeriodRange(d Date, p Period) Range {
	return Range{From: d.StartOf(p), To: d.EndOf(p)}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return (!date.Before(r.From) && !date.After(r.To)) }

// Valid reports whether From is not after To.
func (r Range) Valid() bool { return !r.From.After(r.To) }
