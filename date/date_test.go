package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	if got, want := New(2024, time.February, 30), New(2024, time.March, 1); got != want {
		t.Errorf("New(2024, 2, 30) = %v, want %v", got, want)
	}
}

func TestParse(t *testing.T) {
	t.Setenv(EnvTestingNow, "2024-03-15 10:00:00")
	today := New(2024, time.March, 15)

	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", New(2025, time.January, 15), false},
		{"2025-7-1", New(2025, time.July, 1), false},
		{" 2024-12-31 ", New(2024, time.December, 31), false},
		{"0d", today, false},
		{"-1d", today.Add(-1), false},
		{"+2w", today.Add(14), false},
		{"-1m", New(2024, time.February, 15), false},
		{"1d", Date{}, true},
		{"invalid-date", Date{}, true},
		{"2024-13-01", Date{}, true},
		{"2024/01/01", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDate_JSON(t *testing.T) {
	d := New(2024, time.January, 5)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2024-01-05"` {
		t.Errorf("Marshal() = %s, want %q", data, "2024-01-05")
	}
	var back Date
	if err := json.Unmarshal([]byte(`"2024-1-5"`), &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != d {
		t.Errorf("Unmarshal() = %v, want %v", back, d)
	}
	if err := json.Unmarshal([]byte(`"yesterday"`), &back); err == nil {
		t.Error("Unmarshal(yesterday) expected an error")
	}
}

func TestStartEndOf(t *testing.T) {
	wed := New(2025, time.September, 10)
	testCases := []struct {
		period     Period
		start, end Date
	}{
		{Daily, wed, wed},
		{Weekly, New(2025, time.September, 8), New(2025, time.September, 14)},
		{Monthly, New(2025, time.September, 1), New(2025, time.September, 30)},
	}
	for _, tc := range testCases {
		t.Run(tc.period.String(), func(t *testing.T) {
			if got := wed.StartOf(tc.period); got != tc.start {
				t.Errorf("StartOf(%v) = %v, want %v", tc.period, got, tc.start)
			}
			if got := wed.EndOf(tc.period); got != tc.end {
				t.Errorf("EndOf(%v) = %v, want %v", tc.period, got, tc.end)
			}
			r := PeriodRange(wed, tc.period)
			if !r.Contains(tc.start) || !r.Contains(tc.end) || r.Contains(tc.end.Add(1)) {
				t.Errorf("PeriodRange(%v) = %v does not match its boundaries", tc.period, r)
			}
		})
	}
}

func TestNowHonorsTestingEnv(t *testing.T) {
	t.Setenv(EnvTestingNow, "2006-01-02 15:04:05")
	if got := Now().Format(TimestampFormat); got != "2006-01-02 15:04:05" {
		t.Errorf("Now() = %s, want the frozen time", got)
	}
	if got := Today(); got != New(2006, time.January, 2) {
		t.Errorf("Today() = %v", got)
	}
}
