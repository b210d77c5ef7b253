package availability

import (
	"github.com/emreyalim/stayhub-backend/internal/pkg/daterange"
)

// ReservedRange pairs a reservation with its booked dates for
// reconciliation against an edited window set.
type ReservedRange struct {
	ReservationID string
	Range         daterange.Range
}

// Orphaned returns the IDs of active reservations that an availability edit
// has invalidated. With no windows left, every active reservation is
// orphaned. Otherwise a reservation survives only if its range is fully
// covered by the merged union of the new windows, the same containment rule
// the booking validator applies at creation time.
func Orphaned(windows []daterange.Range, active []ReservedRange) []string {
	var orphaned []string

	if len(windows) == 0 {
		for _, res := range active {
			orphaned = append(orphaned, res.ReservationID)
		}
		return orphaned
	}

	merged := daterange.Merge(windows)
	for _, res := range active {
		covered := false
		for _, w := range merged {
			if w.Contains(res.Range) {
				covered = true
				break
			}
		}
		if !covered {
			orphaned = append(orphaned, res.ReservationID)
		}
	}
	return orphaned
}
