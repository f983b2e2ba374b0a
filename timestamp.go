package till

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/etnz/till/date"
)

// Timestamp is a local wall-clock time with second precision, persisted as
// "2006-01-02 15:04:05".
type Timestamp struct{ t time.Time }

// Now returns the current Timestamp.
func Now() Timestamp { return NewTimestamp(date.Now()) }

// NewTimestamp truncates t to the second.
func NewTimestamp(t time.Time) Timestamp { return Timestamp{t.Truncate(time.Second)} }

// ParseTimestamp parses a "2006-01-02 15:04:05" value in local time.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.ParseInLocation(date.TimestampFormat, s, time.Local)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q want format %q: %w", s, date.TimestampFormat, err)
	}
	return Timestamp{t}, nil
}

// Day returns the calendar day of the timestamp.
func (ts Timestamp) Day() date.Date { return date.Of(ts.t) }

func (ts Timestamp) Time() time.Time { return ts.t }
func (ts Timestamp) String() string  { return ts.t.Format(date.TimestampFormat) }

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.String())
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*ts = v
	return nil
}

// ParseDay parses a calendar day typed by the operator, reporting
// ErrValidation when it is malformed.
func ParseDay(s string) (date.Date, error) {
	d, err := date.Parse(s)
	if err != nil {
		return date.Date{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return d, nil
}
