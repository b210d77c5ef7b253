package availability

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

func TestMarkerColor(t *testing.T) {
	june := func(day int) time.Time { return d(2024, 6, day) }

	tests := []struct {
		name     string
		windows  []daterange.Range
		pending  []daterange.Range
		approved []daterange.Range
		want     Color
	}{
		{
			name: "no future windows is red",
			want: ColorRed,
		},
		{
			name:    "open window with no reservations is green",
			windows: []daterange.Range{rng(june(1), june(10))},
			want:    ColorGreen,
		},
		{
			name:     "fully approved window is red",
			windows:  []daterange.Range{rng(june(1), june(10))},
			approved: []daterange.Range{rng(june(1), june(10))},
			want:     ColorRed,
		},
		{
			name:    "fully pending window is yellow",
			windows: []daterange.Range{rng(june(1), june(10))},
			pending: []daterange.Range{rng(june(1), june(10))},
			want:    ColorYellow,
		},
		{
			name:     "pending and approved split with no free day is yellow",
			windows:  []daterange.Range{rng(june(1), june(10))},
			pending:  []daterange.Range{rng(june(1), june(5))},
			approved: []daterange.Range{rng(june(6), june(10))},
			want:     ColorYellow,
		},
		{
			name:     "single free day wins over full approval elsewhere",
			windows:  []daterange.Range{rng(june(1), june(10))},
			approved: []daterange.Range{rng(june(1), june(9))},
			want:     ColorGreen,
		},
		{
			name:     "day held by both statuses counts as pending",
			windows:  []daterange.Range{rng(june(1), june(3))},
			pending:  []daterange.Range{rng(june(1), june(3))},
			approved: []daterange.Range{rng(june(1), june(3))},
			want:     ColorYellow,
		},
		{
			name:     "overlapping windows do not change the color",
			windows:  []daterange.Range{rng(june(1), june(10)), rng(june(5), june(10))},
			approved: []daterange.Range{rng(june(1), june(10))},
			want:     ColorRed,
		},
		{
			name:     "single-day window ending today still counts",
			windows:  []daterange.Range{rng(june(1), june(1))},
			approved: []daterange.Range{rng(june(1), june(1))},
			want:     ColorRed,
		},
		{
			name:     "reservations outside all windows leave it green",
			windows:  []daterange.Range{rng(june(1), june(10))},
			approved: []daterange.Range{rng(d(2024, 7, 1), d(2024, 7, 10))},
			want:     ColorGreen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MarkerColor(tt.windows, tt.pending, tt.approved)
			require.Equal(t, tt.want, got)

			// Same inputs, same answer.
			require.Equal(t, got, MarkerColor(tt.windows, tt.pending, tt.approved))
		})
	}
}
