package date

import (
	"os"
	"time"
)

// EnvTestingNow freezes the clock when set to a "2006-01-02 15:04:05" value.
const EnvTestingNow = "TILL_TESTING_NOW"

// TimestampFormat is the layout of sale and audit timestamps.
const TimestampFormat = "2006-01-02 15:04:05"

// Now returns the current local time, or the frozen time from EnvTestingNow.
func Now() time.Time {
	if v := os.Getenv(EnvTestingNow); v != "" {
		if t, err := time.ParseInLocation(TimestampFormat, v, time.Local); err == nil {
			return t
		}
	}
	return time.Now()
}
