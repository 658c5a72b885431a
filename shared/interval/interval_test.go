package interval_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"manege/shared/interval"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 1, 6, hour, min, 0, 0, time.UTC)
}

func mustNew(t *testing.T, start, end time.Time) interval.Interval {
	t.Helper()

	iv, err := interval.New(start, end)
	assert.NoError(t, err)

	return iv
}

func TestNewRejectsInvalidIntervals(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{"inverted", at(10, 0), at(9, 0)},
		{"zero length", at(9, 0), at(9, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := interval.New(tt.start, tt.end)
			assert.ErrorIs(t, err, interval.ErrInvalidInterval)
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    interval.Interval
		b    interval.Interval
		want bool
	}{
		{
			name: "touching boundaries do not conflict",
			a:    interval.Interval{Start: at(9, 0), End: at(10, 0)},
			b:    interval.Interval{Start: at(10, 0), End: at(11, 0)},
			want: false,
		},
		{
			name: "strict overlap",
			a:    interval.Interval{Start: at(9, 0), End: at(10, 0)},
			b:    interval.Interval{Start: at(9, 30), End: at(10, 30)},
			want: true,
		},
		{
			name: "containment",
			a:    interval.Interval{Start: at(8, 0), End: at(12, 0)},
			b:    interval.Interval{Start: at(9, 0), End: at(10, 0)},
			want: true,
		},
		{
			name: "identical intervals",
			a:    interval.Interval{Start: at(9, 0), End: at(10, 0)},
			b:    interval.Interval{Start: at(9, 0), End: at(10, 0)},
			want: true,
		},
		{
			name: "fully disjoint",
			a:    interval.Interval{Start: at(8, 0), End: at(9, 0)},
			b:    interval.Interval{Start: at(14, 0), End: at(15, 0)},
			want: false,
		},
		{
			name: "overlap by a single minute",
			a:    interval.Interval{Start: at(9, 0), End: at(10, 1)},
			b:    interval.Interval{Start: at(10, 0), End: at(11, 0)},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, interval.Overlaps(tt.a, tt.b))

			// The predicate is symmetric for every pair.
			assert.Equal(t, interval.Overlaps(tt.a, tt.b), interval.Overlaps(tt.b, tt.a))

			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
		})
	}
}

func TestWidenToDays(t *testing.T) {
	iv := mustNew(t, at(9, 30), at(10, 30))
	window := iv.WidenToDays()

	assert.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC), window.End)

	// The window always contains the original interval.
	assert.False(t, window.Start.After(iv.Start))
	assert.False(t, window.End.Before(iv.End))
}

func TestWidenToDaysOnMidnightBoundary(t *testing.T) {
	iv := mustNew(t, time.Date(2025, 1, 6, 22, 0, 0, 0, time.UTC), time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC))
	window := iv.WidenToDays()

	assert.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC), window.End)
}

func TestWidenToDaysCrossingDays(t *testing.T) {
	iv := mustNew(t, time.Date(2025, 1, 6, 23, 0, 0, 0, time.UTC), time.Date(2025, 1, 7, 1, 0, 0, 0, time.UTC))
	window := iv.WidenToDays()

	assert.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC), window.End)
}

func TestDuration(t *testing.T) {
	iv := mustNew(t, at(9, 0), at(10, 30))

	assert.Equal(t, 90*time.Minute, iv.Duration())
}
