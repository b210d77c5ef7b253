// Package clock abstracts "today" so availability classification and
// booking validation stay deterministic under test.
package clock

import (
	"time"

	"github.com/emreyalim/stayhub-backend/internal/pkg/daterange"
)

// Clock supplies the current calendar day.
type Clock interface {
	Today() time.Time
}

// System is a Clock backed by the wall clock (UTC, day granularity).
type System struct{}

func (System) Today() time.Time {
	return daterange.Day(time.Now())
}

// Fixed is a Clock pinned to a single day, for tests.
type Fixed struct {
	Day time.Time
}

func (f Fixed) Today() time.Time {
	return daterange.Day(f.Day)
}
