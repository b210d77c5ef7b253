package reservation

import (
	"context"

	"github.com/emreyalim/stayhub-backend/internal/pkg/clock"
	"github.com/emreyalim/stayhub-backend/internal/pkg/daterange"
)

type CreateRequest struct {
	UserID     string
	PropertyID string
	Range      daterange.Range
}

type Service interface {
	// Create validates and inserts a new pending reservation.
	Create(ctx context.Context, req CreateRequest) (*Reservation, error)

	GetByID(ctx context.Context, id string, actorID string) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, int, error)

	// Approve and Reject are host actions on pending reservations for the
	// host's own properties.
	Approve(ctx context.Context, id string, actorID string) error
	Reject(ctx context.Context, id string, actorID string) error

	// Cancel is a guest action on the guest's own pending or approved
	// reservation.
	Cancel(ctx context.Context, id string, actorID string) error
}

type service struct {
	repo  Repository
	clock clock.Clock
}

func NewService(repo Repository, clk clock.Clock) Service {
	return &service{repo: repo, clock: clk}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Reservation, error) {
	if req.Range.Start.Before(s.clock.Today()) {
		return nil, ErrStartInPast
	}

	res := &Reservation{
		PropertyID: req.PropertyID,
		UserID:     req.UserID,
		Range:      req.Range,
	}

	// Availability and conflict checks happen inside the repository
	// transaction, under the property row lock.
	if err := s.repo.CreateValidated(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string, actorID string) (*Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Visible to the guest who booked and to the host of the property.
	if res.UserID != actorID && res.HostID != actorID {
		return nil, ErrPermissionDenied
	}
	return res, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Approve(ctx context.Context, id string, actorID string) error {
	return s.hostTransition(ctx, id, actorID, StatusApproved)
}

func (s *service) Reject(ctx context.Context, id string, actorID string) error {
	return s.hostTransition(ctx, id, actorID, StatusRejected)
}

func (s *service) hostTransition(ctx context.Context, id string, actorID string, next Status) error {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if res.HostID != actorID {
		return ErrPermissionDenied
	}
	if !res.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	return s.repo.UpdateStatus(ctx, id, res.Status, next, nil)
}

func (s *service) Cancel(ctx context.Context, id string, actorID string) error {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if res.UserID != actorID {
		return ErrPermissionDenied
	}
	if !res.Status.CanTransitionTo(StatusCanceled) {
		return ErrInvalidTransition
	}
	reason := CancelReasonUser
	return s.repo.UpdateStatus(ctx, id, res.Status, StatusCanceled, &reason)
}
