package availability

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emreyalim/stayhub-backend/internal/pkg/daterange"
)

func TestOrphaned(t *testing.T) {
	tests := []struct {
		name    string
		windows []daterange.Range
		active  []ReservedRange
		want    []string
	}{
		{
			name:    "no windows cancels everything",
			windows: nil,
			active: []ReservedRange{
				{ReservationID: "a", Range: rng(d(2024, 7, 1), d(2024, 7, 5))},
				{ReservationID: "b", Range: rng(d(2024, 7, 8), d(2024, 7, 9))},
			},
			want: []string{"a", "b"},
		},
		{
			name:    "covered reservation survives",
			windows: []daterange.Range{rng(d(2024, 7, 1), d(2024, 7, 10))},
			active: []ReservedRange{
				{ReservationID: "a", Range: rng(d(2024, 7, 1), d(2024, 7, 5))},
			},
			want: nil,
		},
		{
			name:    "windows moved away entirely",
			windows: []daterange.Range{rng(d(2024, 8, 1), d(2024, 8, 10))},
			active: []ReservedRange{
				{ReservationID: "a", Range: rng(d(2024, 7, 1), d(2024, 7, 5))},
			},
			want: []string{"a"},
		},
		{
			name:    "partial overlap is not enough",
			windows: []daterange.Range{rng(d(2024, 7, 3), d(2024, 7, 10))},
			active: []ReservedRange{
				{ReservationID: "a", Range: rng(d(2024, 7, 1), d(2024, 7, 5))},
			},
			want: []string{"a"},
		},
		{
			name: "union of adjacent windows covers the reservation",
			windows: []daterange.Range{
				rng(d(2024, 7, 1), d(2024, 7, 5)),
				rng(d(2024, 7, 6), d(2024, 7, 10)),
			},
			active: []ReservedRange{
				{ReservationID: "a", Range: rng(d(2024, 7, 4), d(2024, 7, 8))},
			},
			want: nil,
		},
		{
			name: "gap between windows orphans the spanning reservation",
			windows: []daterange.Range{
				rng(d(2024, 7, 1), d(2024, 7, 3)),
				rng(d(2024, 7, 8), d(2024, 7, 10)),
			},
			active: []ReservedRange{
				{ReservationID: "a", Range: rng(d(2024, 7, 2), d(2024, 7, 9))},
				{ReservationID: "b", Range: rng(d(2024, 7, 8), d(2024, 7, 10))},
			},
			want: []string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Orphaned(tt.windows, tt.active))
		})
	}
}
