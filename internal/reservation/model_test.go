package reservation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusCanceled, true},
		{StatusApproved, StatusCanceled, true},

		// Nothing is reversible.
		{StatusApproved, StatusPending, false},
		{StatusApproved, StatusRejected, false},
		{StatusRejected, StatusApproved, false},
		{StatusRejected, StatusPending, false},
		{StatusRejected, StatusCanceled, false},
		{StatusCanceled, StatusPending, false},
		{StatusCanceled, StatusApproved, false},
		{StatusPending, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			require.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusApproved, StatusRejected, StatusCanceled} {
		require.True(t, s.Valid())
	}
	require.False(t, Status("confirmed").Valid())
	require.False(t, Status("").Valid())
}

func TestStatusActive(t *testing.T) {
	require.True(t, StatusPending.Active())
	require.True(t, StatusApproved.Active())
	require.False(t, StatusRejected.Active())
	require.False(t, StatusCanceled.Active())
}
