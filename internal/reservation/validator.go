package reservation

import (
	"github.com/emreyalim/stayhub-backend/internal/pkg/daterange"
)

// RangeAvailable decides whether the requested range may become a new
// reservation on a property whose availability windows and active
// (pending or approved) reservation ranges are given.
//
// The range must be fully covered by the merged union of the windows and
// must not touch any active reservation. Overlap is inclusive: sharing a
// single day is a conflict. A false result is a normal outcome, not an
// error.
func RangeAvailable(windows, active []daterange.Range, requested daterange.Range) bool {
	if !daterange.UnionContains(windows, requested) {
		return false
	}
	for _, a := range active {
		if a.Overlaps(requested) {
			return false
		}
	}
	return true
}
