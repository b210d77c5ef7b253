package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/emreyalim/stayhub-backend/internal/pkg/clock"
	"github.com/emreyalim/stayhub-backend/internal/pkg/daterange"
)

// fakeRepo is an in-memory Repository for exercising the service's
// authorization and state machine logic without a database.
type fakeRepo struct {
	byID    map[string]*Reservation
	created []*Reservation
	// responses for CreateValidated
	createErr error
}

func newFakeRepo(reservations ...*Reservation) *fakeRepo {
	r := &fakeRepo{byID: make(map[string]*Reservation)}
	for _, res := range reservations {
		r.byID[res.ID] = res
	}
	return r
}

func (f *fakeRepo) CreateValidated(ctx context.Context, res *Reservation) error {
	if f.createErr != nil {
		return f.createErr
	}
	res.ID = "new-id"
	res.Status = StatusPending
	res.CreatedAt = time.Now()
	f.created = append(f.created, res)
	f.byID[res.ID] = res
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*Reservation, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *res
	return &cp, nil
}

func (f *fakeRepo) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	return nil, 0, nil
}

func (f *fakeRepo) ActiveIntervals(ctx context.Context, propertyID string, status Status) ([]daterange.Range, error) {
	return nil, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id string, expected, next Status, reason *string) error {
	res, ok := f.byID[id]
	if !ok {
		return ErrNotFound
	}
	if res.Status != expected {
		return ErrInvalidTransition
	}
	res.Status = next
	if reason != nil {
		res.CancelReason = reason
	}
	return nil
}

var testToday = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func newTestService(repo Repository) Service {
	return NewService(repo, clock.Fixed{Day: testToday})
}

func pendingReservation() *Reservation {
	return &Reservation{
		ID:         "res-1",
		PropertyID: "prop-1",
		HostID:     "host-1",
		UserID:     "guest-1",
		Range:      rng(d(2024, 6, 1), d(2024, 6, 5)),
		Status:     StatusPending,
	}
}

func TestServiceCreate(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	res, err := svc.Create(context.Background(), CreateRequest{
		UserID:     "guest-1",
		PropertyID: "prop-1",
		Range:      rng(d(2024, 6, 1), d(2024, 6, 5)),
	})
	require.NoError(t, err)
	require.Equal(t, StatusPending, res.Status)
	require.Len(t, repo.created, 1)
}

func TestServiceCreateRejectsPastStart(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), CreateRequest{
		UserID:     "guest-1",
		PropertyID: "prop-1",
		Range:      rng(d(2024, 4, 1), d(2024, 6, 5)),
	})
	require.ErrorIs(t, err, ErrStartInPast)
	require.Empty(t, repo.created)
}

func TestServiceCreateNotAvailable(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = ErrNotAvailable
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), CreateRequest{
		UserID:     "guest-1",
		PropertyID: "prop-1",
		Range:      rng(d(2024, 6, 1), d(2024, 6, 5)),
	})
	require.ErrorIs(t, err, ErrNotAvailable)
}

func TestServiceApprove(t *testing.T) {
	res := pendingReservation()
	repo := newFakeRepo(res)
	svc := newTestService(repo)

	require.NoError(t, svc.Approve(context.Background(), "res-1", "host-1"))
	require.Equal(t, StatusApproved, repo.byID["res-1"].Status)
}

func TestServiceApproveDeniedForNonHost(t *testing.T) {
	res := pendingReservation()
	repo := newFakeRepo(res)
	svc := newTestService(repo)

	err := svc.Approve(context.Background(), "res-1", "someone-else")
	require.ErrorIs(t, err, ErrPermissionDenied)
	require.Equal(t, StatusPending, repo.byID["res-1"].Status)
}

func TestServiceApproveRejectedFails(t *testing.T) {
	res := pendingReservation()
	res.Status = StatusRejected
	repo := newFakeRepo(res)
	svc := newTestService(repo)

	err := svc.Approve(context.Background(), "res-1", "host-1")
	require.ErrorIs(t, err, ErrInvalidTransition)
	require.Equal(t, StatusRejected, repo.byID["res-1"].Status)
}

func TestServiceReject(t *testing.T) {
	res := pendingReservation()
	repo := newFakeRepo(res)
	svc := newTestService(repo)

	require.NoError(t, svc.Reject(context.Background(), "res-1", "host-1"))
	require.Equal(t, StatusRejected, repo.byID["res-1"].Status)
}

func TestServiceCancel(t *testing.T) {
	t.Run("guest cancels own pending", func(t *testing.T) {
		repo := newFakeRepo(pendingReservation())
		svc := newTestService(repo)

		require.NoError(t, svc.Cancel(context.Background(), "res-1", "guest-1"))
		got := repo.byID["res-1"]
		require.Equal(t, StatusCanceled, got.Status)
		require.NotNil(t, got.CancelReason)
		require.Equal(t, CancelReasonUser, *got.CancelReason)
	})

	t.Run("guest cancels approved", func(t *testing.T) {
		res := pendingReservation()
		res.Status = StatusApproved
		repo := newFakeRepo(res)
		svc := newTestService(repo)

		require.NoError(t, svc.Cancel(context.Background(), "res-1", "guest-1"))
		require.Equal(t, StatusCanceled, repo.byID["res-1"].Status)
	})

	t.Run("host cannot cancel for the guest", func(t *testing.T) {
		repo := newFakeRepo(pendingReservation())
		svc := newTestService(repo)

		err := svc.Cancel(context.Background(), "res-1", "host-1")
		require.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("canceling twice fails", func(t *testing.T) {
		res := pendingReservation()
		res.Status = StatusCanceled
		repo := newFakeRepo(res)
		svc := newTestService(repo)

		err := svc.Cancel(context.Background(), "res-1", "guest-1")
		require.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestServiceGetByID(t *testing.T) {
	repo := newFakeRepo(pendingReservation())
	svc := newTestService(repo)

	_, err := svc.GetByID(context.Background(), "res-1", "guest-1")
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), "res-1", "host-1")
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), "res-1", "stranger")
	require.ErrorIs(t, err, ErrPermissionDenied)

	_, err = svc.GetByID(context.Background(), "missing", "guest-1")
	require.ErrorIs(t, err, ErrNotFound)
}
