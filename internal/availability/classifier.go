package availability

import (
	"github.com/emreyalim/stayhub-backend/internal/pkg/daterange"
)

// MarkerColor derives a property's display color from its future
// availability windows and the date ranges of its pending and approved
// reservations.
//
// Every calendar day of every future window is classified into exactly one
// bucket: free when no active reservation covers it, otherwise pending or
// approved by reservation status. A day covered by both a pending and an
// approved reservation counts as pending: the pending hold may still be
// rejected, so the property is in flux rather than definitively taken.
//
// Aggregation: any free day wins (green). With no free days, pending-only
// is yellow, approved-only is red, and a mix of both is yellow.
//
// Days shared by overlapping windows are swept once per window. That
// inflates the bucket counts but never changes which buckets are non-zero,
// so the color is unaffected.
func MarkerColor(futureWindows, pending, approved []daterange.Range) Color {
	if len(futureWindows) == 0 {
		return ColorRed
	}

	var freeDays, pendingDays, approvedDays int

	for _, w := range futureWindows {
		for day := range w.Days() {
			isPending := daterange.AnyContainsDay(pending, day)
			isApproved := daterange.AnyContainsDay(approved, day)

			switch {
			case !isPending && !isApproved:
				freeDays++
			case isPending:
				pendingDays++
			default:
				approvedDays++
			}
		}
	}

	switch {
	case freeDays > 0:
		return ColorGreen
	case pendingDays > 0 && approvedDays == 0:
		return ColorYellow
	case approvedDays > 0 && pendingDays == 0:
		return ColorRed
	default:
		return ColorYellow
	}
}
