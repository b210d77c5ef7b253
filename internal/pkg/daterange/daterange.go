// Package daterange provides a closed, day-granularity date range and the
// interval predicates the scheduling logic is built on. Both endpoints are
// part of the range, so touching ranges count as overlapping.
package daterange

import (
	"fmt"
	"iter"
	"sort"
	"time"
)

// Layout is the wire format for dates accepted and emitted by the API.
const Layout = "2006-01-02"

// Range is an inclusive [Start, End] span of calendar days.
// Both endpoints are normalized to midnight UTC.
type Range struct {
	Start time.Time
	End   time.Time
}

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// New builds a Range from start and end, normalizing both to day
// granularity. It fails if end is before start.
func New(start, end time.Time) (Range, error) {
	s, e := Day(start), Day(end)
	if e.Before(s) {
		return Range{}, fmt.Errorf("invalid range: end %s before start %s", e.Format(Layout), s.Format(Layout))
	}
	return Range{Start: s, End: e}, nil
}

// MustNew is New for hand-written literals; it panics on an invalid range.
func MustNew(start, end time.Time) Range {
	r, err := New(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

// Parse builds a Range from two Layout-formatted strings.
func Parse(start, end string) (Range, error) {
	s, err := time.Parse(Layout, start)
	if err != nil {
		return Range{}, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	e, err := time.Parse(Layout, end)
	if err != nil {
		return Range{}, fmt.Errorf("invalid end date %q: %w", end, err)
	}
	return New(s, e)
}

// Overlaps reports whether r and o share at least one day.
func (r Range) Overlaps(o Range) bool {
	return !(r.End.Before(o.Start) || r.Start.After(o.End))
}

// Contains reports whether o lies entirely within r.
func (r Range) Contains(o Range) bool {
	return !o.Start.Before(r.Start) && !o.End.After(r.End)
}

// ContainsDay reports whether day d falls inside r, endpoints included.
func (r Range) ContainsDay(d time.Time) bool {
	d = Day(d)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Days returns a lazy, restartable sequence of every calendar day in r,
// from Start to End inclusive.
func (r Range) Days() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

// DayCount returns the number of calendar days in r.
func (r Range) DayCount() int {
	return int(r.End.Sub(r.Start)/(24*time.Hour)) + 1
}

func (r Range) String() string {
	return r.Start.Format(Layout) + ".." + r.End.Format(Layout)
}

// Merge returns the union of the given ranges as a sorted list of disjoint
// ranges. Overlapping and day-adjacent ranges are coalesced, so [1..5] and
// [6..10] merge into [1..10]. The input slice is not modified.
func Merge(ranges []Range) []Range {
	if len(ranges) == 0 {
		return nil
	}

	sorted := make([]Range, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := []Range{sorted[0]}
	for _, r := range sorted[1:] {
		last := &merged[len(merged)-1]
		// Coalesce if r starts no later than the day after last ends.
		if !r.Start.After(last.End.AddDate(0, 0, 1)) {
			if r.End.After(last.End) {
				last.End = r.End
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// UnionContains reports whether r is fully covered by the union of the given
// ranges. This is the single containment definition used both when a booking
// is created and when reservations are reconciled against edited windows.
func UnionContains(ranges []Range, r Range) bool {
	for _, m := range Merge(ranges) {
		if m.Contains(r) {
			return true
		}
	}
	return false
}

// AnyContainsDay reports whether any of the given ranges contains day d.
func AnyContainsDay(ranges []Range, d time.Time) bool {
	for _, r := range ranges {
		if r.ContainsDay(d) {
			return true
		}
	}
	return false
}
