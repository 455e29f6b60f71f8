package budget

import "time"

// Clock is the source of the current time used to stamp new entries.
type Clock interface {
	Now() time.Time
}

// SystemClock is the Clock reading the local wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant, mostly for tests.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// Timestamp formats t the way entry dates are persisted: "2006-01-02 15:04:05.000000",
// the fractional part being omitted when it is zero.
func Timestamp(t time.Time) string {
	if t.Nanosecond()/1000 == 0 {
		return t.Format("2006-01-02 15:04:05")
	}
	return t.Format("2006-01-02 15:04:05.000000")
}
