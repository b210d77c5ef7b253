package availability

import (
	"context"

	"github.com/emreyalim/stayhub-backend/internal/pkg/clock"
	"github.com/emreyalim/stayhub-backend/internal/pkg/daterange"
	"github.com/emreyalim/stayhub-backend/internal/property"
	"github.com/emreyalim/stayhub-backend/internal/reservation"
)

type Service interface {
	// Replace swaps the property's availability for the given ranges and
	// cancels reservations the edit invalidates, as one atomic operation.
	// Only the owning host may call it. Returns canceled reservation IDs.
	Replace(ctx context.Context, propertyID string, hostID string, ranges []daterange.Range) ([]string, error)

	// Windows returns all stored windows for the property, past included.
	Windows(ctx context.Context, propertyID string) ([]Window, error)

	// ReservedRanges returns the date ranges currently held by pending or
	// approved reservations on the property.
	ReservedRanges(ctx context.Context, propertyID string) ([]daterange.Range, error)

	// MarkerColorFor classifies the property's bookability as of today.
	MarkerColorFor(ctx context.Context, propertyID string) (Color, error)
}

type service struct {
	repo        Repository
	resRepo     reservation.Repository
	propService property.Service
	clock       clock.Clock
}

func NewService(repo Repository, resRepo reservation.Repository, propService property.Service, clk clock.Clock) Service {
	return &service{
		repo:        repo,
		resRepo:     resRepo,
		propService: propService,
		clock:       clk,
	}
}

func (s *service) Replace(ctx context.Context, propertyID string, hostID string, ranges []daterange.Range) ([]string, error) {
	p, err := s.propService.GetByID(ctx, propertyID)
	if err != nil {
		return nil, ErrPropertyNotFound
	}
	if p.HostID != hostID {
		return nil, ErrPermissionDenied
	}

	// Ranges were built via daterange.New, so start <= end already holds;
	// the repository call below is the replace+reconcile transaction.
	return s.repo.Replace(ctx, propertyID, ranges)
}

func (s *service) Windows(ctx context.Context, propertyID string) ([]Window, error) {
	if _, err := s.propService.GetByID(ctx, propertyID); err != nil {
		return nil, ErrPropertyNotFound
	}
	return s.repo.ListByProperty(ctx, propertyID)
}

func (s *service) ReservedRanges(ctx context.Context, propertyID string) ([]daterange.Range, error) {
	pending, err := s.resRepo.ActiveIntervals(ctx, propertyID, reservation.StatusPending)
	if err != nil {
		return nil, err
	}
	approved, err := s.resRepo.ActiveIntervals(ctx, propertyID, reservation.StatusApproved)
	if err != nil {
		return nil, err
	}
	return append(pending, approved...), nil
}

func (s *service) MarkerColorFor(ctx context.Context, propertyID string) (Color, error) {
	today := s.clock.Today()

	windows, err := s.repo.FutureWindows(ctx, propertyID, today)
	if err != nil {
		return "", err
	}

	future := make([]daterange.Range, len(windows))
	for i, w := range windows {
		future[i] = w.Range
	}

	pending, err := s.resRepo.ActiveIntervals(ctx, propertyID, reservation.StatusPending)
	if err != nil {
		return "", err
	}
	approved, err := s.resRepo.ActiveIntervals(ctx, propertyID, reservation.StatusApproved)
	if err != nil {
		return "", err
	}

	return MarkerColor(future, pending, approved), nil
}
