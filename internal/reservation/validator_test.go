package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/emreyalim/stayhub-backend/internal/pkg/daterange"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func rng(s, e time.Time) daterange.Range {
	return daterange.MustNew(s, e)
}

func TestRangeAvailable(t *testing.T) {
	window := rng(d(2024, 6, 1), d(2024, 6, 10))

	tests := []struct {
		name      string
		windows   []daterange.Range
		active    []daterange.Range
		requested daterange.Range
		want      bool
	}{
		{
			name:      "inside open window",
			windows:   []daterange.Range{window},
			requested: rng(d(2024, 6, 3), d(2024, 6, 5)),
			want:      true,
		},
		{
			name:      "no windows at all",
			requested: rng(d(2024, 6, 3), d(2024, 6, 5)),
			want:      false,
		},
		{
			name:      "extends past the window",
			windows:   []daterange.Range{window},
			requested: rng(d(2024, 6, 8), d(2024, 6, 12)),
			want:      false,
		},
		{
			name:      "conflicts with an active reservation",
			windows:   []daterange.Range{window},
			active:    []daterange.Range{rng(d(2024, 6, 1), d(2024, 6, 10))},
			requested: rng(d(2024, 6, 2), d(2024, 6, 4)),
			want:      false,
		},
		{
			name:      "touching an active reservation by one day conflicts",
			windows:   []daterange.Range{window},
			active:    []daterange.Range{rng(d(2024, 6, 1), d(2024, 6, 5))},
			requested: rng(d(2024, 6, 5), d(2024, 6, 8)),
			want:      false, // inclusive overlap on the 5th
		},
		{
			name:      "fits between reservations",
			windows:   []daterange.Range{window},
			active:    []daterange.Range{rng(d(2024, 6, 1), d(2024, 6, 3)), rng(d(2024, 6, 8), d(2024, 6, 10))},
			requested: rng(d(2024, 6, 4), d(2024, 6, 7)),
			want:      true,
		},
		{
			name: "covered by union of adjacent windows",
			windows: []daterange.Range{
				rng(d(2024, 6, 1), d(2024, 6, 5)),
				rng(d(2024, 6, 6), d(2024, 6, 10)),
			},
			requested: rng(d(2024, 6, 4), d(2024, 6, 8)),
			want:      true,
		},
		{
			name: "gap in windows breaks coverage",
			windows: []daterange.Range{
				rng(d(2024, 6, 1), d(2024, 6, 4)),
				rng(d(2024, 6, 7), d(2024, 6, 10)),
			},
			requested: rng(d(2024, 6, 3), d(2024, 6, 8)),
			want:      false,
		},
		{
			name:      "conflict wins even with full window coverage",
			windows:   []daterange.Range{window},
			active:    []daterange.Range{rng(d(2024, 6, 4), d(2024, 6, 4))},
			requested: rng(d(2024, 6, 1), d(2024, 6, 10)),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, RangeAvailable(tt.windows, tt.active, tt.requested))
		})
	}
}
