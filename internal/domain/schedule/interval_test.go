//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"cleaning-scheduler/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, time.September, 7, hour, minute, 0, 0, time.UTC)
}

func iv(startHour, startMin, endHour, endMin int) schedule.Interval {
	return schedule.MustInterval(at(startHour, startMin), at(endHour, endMin))
}

func TestNewInterval(t *testing.T) {
	t.Run("start before end OK", func(t *testing.T) {
		got, err := schedule.NewInterval(at(10, 0), at(12, 0))
		require.NoError(t, err)
		assert.Equal(t, at(10, 0), got.Start())
		assert.Equal(t, at(12, 0), got.End())
	})

	t.Run("equal endpoints NG", func(t *testing.T) {
		_, err := schedule.NewInterval(at(10, 0), at(10, 0))
		require.ErrorIs(t, err, schedule.ErrInvalidInterval)
	})

	t.Run("reversed endpoints NG", func(t *testing.T) {
		_, err := schedule.NewInterval(at(12, 0), at(10, 0))
		require.ErrorIs(t, err, schedule.ErrInvalidInterval)
	})
}

func TestIntervalHours(t *testing.T) {
	assert.Equal(t, 2, iv(10, 0, 12, 0).Hours())
	assert.Equal(t, 4, iv(8, 0, 12, 0).Hours())
	// fractions truncate
	assert.Equal(t, 2, iv(10, 0, 12, 30).Hours())
}

func TestOverlapsWithBuffer(t *testing.T) {
	existing := iv(12, 0, 14, 0)
	buffer := 30 * time.Minute

	cases := []struct {
		name      string
		candidate schedule.Interval
		overlaps  bool
	}{
		{name: "same slot", candidate: iv(12, 0, 14, 0), overlaps: true},
		{name: "contained", candidate: iv(12, 30, 13, 30), overlaps: true},
		{name: "starts inside buffer after end", candidate: iv(14, 0, 16, 0), overlaps: true},
		{name: "starts exactly at buffered end", candidate: iv(14, 30, 16, 30), overlaps: false},
		{name: "ends inside buffer before start", candidate: iv(10, 0, 12, 0), overlaps: true},
		{name: "ends exactly at buffered start", candidate: iv(9, 30, 11, 30), overlaps: false},
		{name: "well before", candidate: iv(8, 0, 10, 0), overlaps: false},
		{name: "well after", candidate: iv(16, 0, 18, 0), overlaps: false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.overlaps, c.candidate.OverlapsWithBuffer(existing, buffer))
		})
	}
}

func TestOverlapsWithZeroBuffer(t *testing.T) {
	existing := iv(12, 0, 14, 0)

	// back to back slots touch but do not overlap
	assert.False(t, iv(14, 0, 16, 0).OverlapsWithBuffer(existing, 0))
	assert.False(t, iv(10, 0, 12, 0).OverlapsWithBuffer(existing, 0))
	assert.True(t, iv(13, 59, 16, 0).OverlapsWithBuffer(existing, 0))
}

func TestClamp(t *testing.T) {
	bound := iv(8, 0, 22, 0)

	t.Run("inside stays", func(t *testing.T) {
		got, ok := iv(10, 0, 12, 0).Clamp(bound)
		require.True(t, ok)
		assert.Equal(t, iv(10, 0, 12, 0), got)
	})

	t.Run("overhang is cut on both sides", func(t *testing.T) {
		got, ok := schedule.MustInterval(at(7, 0), at(23, 0)).Clamp(bound)
		require.True(t, ok)
		assert.Equal(t, bound, got)
	})

	t.Run("disjoint before", func(t *testing.T) {
		_, ok := schedule.MustInterval(at(5, 0), at(7, 0)).Clamp(bound)
		assert.False(t, ok)
	})

	t.Run("touching edge collapses to nothing", func(t *testing.T) {
		_, ok := schedule.MustInterval(at(6, 0), at(8, 0)).Clamp(bound)
		assert.False(t, ok)
	})
}

func TestContains(t *testing.T) {
	span := iv(10, 0, 12, 0)
	assert.True(t, span.Contains(at(10, 0)))
	assert.True(t, span.Contains(at(11, 59)))
	assert.False(t, span.Contains(at(12, 0)))
	assert.False(t, span.Contains(at(9, 59)))
}
