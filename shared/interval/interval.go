package interval

import (
	"errors"
	"time"
)

// ErrInvalidInterval is returned when an interval would be empty or inverted.
var ErrInvalidInterval = errors.New("interval end must be after start")

// Interval is a half-open time range [Start, End). Reservations and blocks are
// compared through this type, never through raw timestamp pairs.
type Interval struct {
	Start time.Time
	End   time.Time
}

// New builds an Interval and rejects zero-length or inverted ranges. Callers
// must not feed invalid ranges to Overlaps; validation happens here, up front.
func New(start, end time.Time) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, ErrInvalidInterval
	}

	return Interval{Start: start, End: end}, nil
}

// Overlaps reports whether two half-open intervals share any instant.
// [a.Start, a.End) conflicts with [b.Start, b.End) iff a.Start < b.End and
// b.Start < a.End. Intervals that only touch at a boundary do not overlap,
// which is what allows back-to-back bookings in the same hall.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// Overlaps is the method form of the package-level predicate.
func (i Interval) Overlaps(other Interval) bool {
	return Overlaps(i, other)
}

// Duration returns the length of the interval.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// WidenToDays expands the interval to the UTC day boundaries surrounding it.
// The conflict store queries with this widened window; it may be wider than
// the proposed interval but never narrower, so no candidate is missed.
func (i Interval) WidenToDays() Interval {
	start := i.Start.UTC()
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	end := i.End.UTC()
	dayStart := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	if dayStart.Before(end) {
		dayStart = dayStart.AddDate(0, 0, 1)
	}

	return Interval{Start: start, End: dayStart}
}
