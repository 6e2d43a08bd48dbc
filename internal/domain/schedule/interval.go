package schedule

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidInterval = errors.New("interval start must be before end")

// Interval is a half-open time span [start, end). All engine arithmetic
// (overlap tests, clamping, window sweeps) is built on this one type.
type Interval struct {
	start time.Time
	end   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{start: start, end: end}, nil
}

// MustInterval is for literals in tests and seed code where the ordering
// is known to hold.
func MustInterval(start, end time.Time) Interval {
	iv, err := NewInterval(start, end)
	if err != nil {
		panic(fmt.Sprintf("schedule: invalid interval %s..%s", start, end))
	}
	return iv
}

func (iv Interval) Start() time.Time { return iv.start }
func (iv Interval) End() time.Time   { return iv.end }

func (iv Interval) Duration() time.Duration {
	return iv.end.Sub(iv.start)
}

// Hours returns the whole-hour duration, truncating any fraction.
func (iv Interval) Hours() int {
	return int(iv.Duration() / time.Hour)
}

// OverlapsWithBuffer reports whether iv collides with existing once the
// existing span is widened by buffer on both sides. The comparison is
// strict, so an interval that exactly touches the widened edge does not
// collide: a 12:00-14:00 booking with a 30m buffer blocks everything
// that starts before 14:30 and ends after 11:30, nothing more.
func (iv Interval) OverlapsWithBuffer(existing Interval, buffer time.Duration) bool {
	blockedFrom := existing.start.Add(-buffer)
	blockedUntil := existing.end.Add(buffer)
	return iv.start.Before(blockedUntil) && iv.end.After(blockedFrom)
}

// Clamp restricts iv to bound. The second return is false when the two
// spans are disjoint; a result that collapses to a single instant is
// reported as disjoint as well.
func (iv Interval) Clamp(bound Interval) (Interval, bool) {
	if !iv.end.After(bound.start) || !iv.start.Before(bound.end) {
		return Interval{}, false
	}
	out := iv
	if out.start.Before(bound.start) {
		out.start = bound.start
	}
	if out.end.After(bound.end) {
		out.end = bound.end
	}
	return out, true
}

func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.start) && t.Before(iv.end)
}

func (iv Interval) String() string {
	return fmt.Sprintf("%s..%s", iv.start.Format(time.RFC3339), iv.end.Format(time.RFC3339))
}
