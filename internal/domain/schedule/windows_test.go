//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"cleaning-scheduler/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpIntervals = cmp.Comparer(func(a, b schedule.Interval) bool {
	return a.Start().Equal(b.Start()) && a.End().Equal(b.End())
})

const buffer = 30 * time.Minute

func workday() schedule.Interval {
	return iv(8, 0, 22, 0)
}

func TestFreeWindows(t *testing.T) {
	t.Run("no bookings yields the whole workday", func(t *testing.T) {
		got := schedule.FreeWindows(workday(), nil, buffer)
		want := []schedule.Interval{workday()}
		if diff := cmp.Diff(want, got, cmpIntervals); diff != "" {
			t.Errorf("windows mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("single booking splits the day, break only after", func(t *testing.T) {
		got := schedule.FreeWindows(workday(), []schedule.Interval{iv(10, 0, 12, 0)}, buffer)
		want := []schedule.Interval{iv(8, 0, 10, 0), iv(12, 30, 22, 0)}
		if diff := cmp.Diff(want, got, cmpIntervals); diff != "" {
			t.Errorf("windows mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("back to back bookings leave no gap between them", func(t *testing.T) {
		booked := []schedule.Interval{iv(8, 0, 10, 0), iv(10, 30, 12, 30)}
		got := schedule.FreeWindows(workday(), booked, buffer)
		want := []schedule.Interval{iv(13, 0, 22, 0)}
		if diff := cmp.Diff(want, got, cmpIntervals); diff != "" {
			t.Errorf("windows mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unsorted input is handled", func(t *testing.T) {
		booked := []schedule.Interval{iv(16, 0, 18, 0), iv(9, 0, 11, 0)}
		got := schedule.FreeWindows(workday(), booked, buffer)
		want := []schedule.Interval{iv(8, 0, 9, 0), iv(11, 30, 16, 0), iv(18, 30, 22, 0)}
		if diff := cmp.Diff(want, got, cmpIntervals); diff != "" {
			t.Errorf("windows mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("contained booking never moves the cursor backwards", func(t *testing.T) {
		booked := []schedule.Interval{iv(9, 0, 15, 0), iv(10, 0, 11, 0)}
		got := schedule.FreeWindows(workday(), booked, buffer)
		want := []schedule.Interval{iv(8, 0, 9, 0), iv(15, 30, 22, 0)}
		if diff := cmp.Diff(want, got, cmpIntervals); diff != "" {
			t.Errorf("windows mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("booking outside the workday is ignored", func(t *testing.T) {
		outside := schedule.MustInterval(at(6, 0), at(7, 0))
		got := schedule.FreeWindows(workday(), []schedule.Interval{outside}, buffer)
		want := []schedule.Interval{workday()}
		if diff := cmp.Diff(want, got, cmpIntervals); diff != "" {
			t.Errorf("windows mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("booking overhanging the workday edge is clamped", func(t *testing.T) {
		overhang := schedule.MustInterval(at(7, 0), at(9, 0))
		got := schedule.FreeWindows(workday(), []schedule.Interval{overhang}, buffer)
		want := []schedule.Interval{iv(9, 30, 22, 0)}
		if diff := cmp.Diff(want, got, cmpIntervals); diff != "" {
			t.Errorf("windows mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("fully booked day yields nothing", func(t *testing.T) {
		got := schedule.FreeWindows(workday(), []schedule.Interval{workday()}, buffer)
		assert.Empty(t, got)
	})
}

func TestFreeWindowsProperties(t *testing.T) {
	booked := []schedule.Interval{iv(18, 0, 20, 0), iv(9, 0, 11, 0), iv(13, 0, 15, 0)}

	got := schedule.FreeWindows(workday(), booked, buffer)
	require.NotEmpty(t, got)

	t.Run("sorted and non overlapping", func(t *testing.T) {
		for i := 1; i < len(got); i++ {
			assert.True(t, got[i-1].End().Before(got[i].Start()) || got[i-1].End().Equal(got[i].Start()))
		}
	})

	t.Run("windows never leave the workday", func(t *testing.T) {
		for _, w := range got {
			assert.False(t, w.Start().Before(workday().Start()))
			assert.False(t, w.End().After(workday().End()))
		}
	})

	t.Run("no window touches a booking or its trailing break", func(t *testing.T) {
		for _, w := range got {
			for _, b := range booked {
				widened := schedule.MustInterval(b.Start(), b.End().Add(buffer))
				_, intersects := w.Clamp(widened)
				assert.False(t, intersects, "window %s intersects booked %s", w, b)
			}
		}
	})

	t.Run("computation is idempotent", func(t *testing.T) {
		again := schedule.FreeWindows(workday(), booked, buffer)
		if diff := cmp.Diff(got, again, cmpIntervals); diff != "" {
			t.Errorf("windows not stable (-first +second):\n%s", diff)
		}
	})
}

// The window before a booking runs right up to its start, while a request
// ending at that same instant is rejected by the availability rule because
// the rule guards the buffer on both sides. Both behaviors are load-bearing.
func TestWindowEdgeVersusAvailabilityRule(t *testing.T) {
	booked := iv(12, 0, 14, 0)

	windows := schedule.FreeWindows(workday(), []schedule.Interval{booked}, buffer)
	require.Len(t, windows, 2)
	assert.True(t, windows[0].End().Equal(booked.Start()), "leading window runs up to the booking start")

	request := iv(10, 0, 12, 0)
	free := schedule.IsAvailable(request, []schedule.BookedInterval{{Slot: booked}}, buffer)
	assert.False(t, free, "the same span is still not bookable")
}
