package reservation

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidDateRange = errors.New("start date must not be after end date")

// DateRange is a closed interval of calendar days, [start, end], stored as
// UTC-midnight timestamps. Both endpoints are occupied days: a range ending
// on day N conflicts with a range starting on day N, while N and N+1 are
// adjacent and do not conflict.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	s := Midnight(start)
	e := Midnight(end)
	if s.After(e) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: s, end: e}, nil
}

// Midnight truncates t to its UTC calendar date. Every date entering the
// engine passes through here so time-of-day components never affect
// comparisons.
func Midnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

// Overlaps reports whether the two closed intervals share at least one day.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !r.end.Before(other.start)
}

// ActiveOn reports whether ref's calendar date falls inside the range.
func (r DateRange) ActiveOn(ref time.Time) bool {
	d := Midnight(ref)
	return !r.start.After(d) && !r.end.Before(d)
}

func (r DateRange) Days() int {
	return int(r.end.Sub(r.start).Hours()/24) + 1
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s,%s]", r.start.Format(time.DateOnly), r.end.Format(time.DateOnly))
}
