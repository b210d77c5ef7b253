package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emreyalim/stayhub-backend/internal/pkg/daterange"
	"github.com/emreyalim/stayhub-backend/internal/reservation"
)

type Repository interface {
	ListByProperty(ctx context.Context, propertyID string) ([]Window, error)

	// FutureWindows returns windows whose end date is today or later. Past
	// windows stay stored as history but are invisible to classification.
	FutureWindows(ctx context.Context, propertyID string, today time.Time) ([]Window, error)

	// Replace swaps the property's window set for the given ranges and
	// reconciles active reservations in the same transaction, canceling
	// those no longer covered. It returns the IDs of the reservations it
	// canceled.
	Replace(ctx context.Context, propertyID string, ranges []daterange.Range) ([]string, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) ListByProperty(ctx context.Context, propertyID string) ([]Window, error) {
	const query = `
		SELECT id, property_id, start_date, end_date
		FROM public.availability_windows
		WHERE property_id = $1
		ORDER BY start_date
	`
	rows, err := r.pool.Query(ctx, query, propertyID)
	if err != nil {
		return nil, fmt.Errorf("list availability windows failed: %w", err)
	}
	defer rows.Close()

	return scanWindows(rows)
}

func (r *pgxRepository) FutureWindows(ctx context.Context, propertyID string, today time.Time) ([]Window, error) {
	const query = `
		SELECT id, property_id, start_date, end_date
		FROM public.availability_windows
		WHERE property_id = $1 AND end_date >= $2
		ORDER BY start_date
	`
	rows, err := r.pool.Query(ctx, query, propertyID, daterange.Day(today))
	if err != nil {
		return nil, fmt.Errorf("list future windows failed: %w", err)
	}
	defer rows.Close()

	return scanWindows(rows)
}

func scanWindows(rows pgx.Rows) ([]Window, error) {
	var windows []Window
	for rows.Next() {
		var w Window
		if err := rows.Scan(&w.ID, &w.PropertyID, &w.Range.Start, &w.Range.End); err != nil {
			return nil, fmt.Errorf("scan window failed: %w", err)
		}
		w.Range.Start = daterange.Day(w.Range.Start)
		w.Range.End = daterange.Day(w.Range.End)
		windows = append(windows, w)
	}
	return windows, rows.Err()
}

// Replace runs the whole edit as one transaction under the property row
// lock, so a concurrent booking on the same property can never interleave
// with the delete-insert-reconcile sequence.
func (r *pgxRepository) Replace(ctx context.Context, propertyID string, ranges []daterange.Range) (canceled []string, err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin replace availability tx failed: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var lockedID string
	err = tx.QueryRow(ctx,
		`SELECT id FROM public.properties WHERE id = $1 FOR UPDATE`,
		propertyID,
	).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("lock property row failed: %w", err)
	}

	if _, err = tx.Exec(ctx,
		`DELETE FROM public.availability_windows WHERE property_id = $1`,
		propertyID,
	); err != nil {
		return nil, fmt.Errorf("delete availability windows failed: %w", err)
	}

	for _, rng := range ranges {
		if _, err = tx.Exec(ctx,
			`INSERT INTO public.availability_windows (property_id, start_date, end_date)
			 VALUES ($1, $2, $3)`,
			propertyID, rng.Start, rng.End,
		); err != nil {
			return nil, fmt.Errorf("insert availability window failed: %w", err)
		}
	}

	active, err := activeReservations(ctx, tx, propertyID)
	if err != nil {
		return nil, err
	}

	reason := reservation.CancelReasonAvailabilityChanged
	if len(ranges) == 0 {
		reason = reservation.CancelReasonAvailabilityRemoved
	}

	for _, id := range Orphaned(ranges, active) {
		if _, err = tx.Exec(ctx,
			`UPDATE public.reservations SET status = $1, cancel_reason = $2 WHERE id = $3`,
			reservation.StatusCanceled, reason, id,
		); err != nil {
			return nil, fmt.Errorf("cancel orphaned reservation failed: %w", err)
		}
		canceled = append(canceled, id)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit replace availability tx failed: %w", err)
	}
	return canceled, nil
}

func activeReservations(ctx context.Context, tx pgx.Tx, propertyID string) ([]ReservedRange, error) {
	rows, err := tx.Query(ctx,
		`SELECT id, start_date, end_date FROM public.reservations
		 WHERE property_id = $1 AND status IN ($2, $3) AND start_date IS NOT NULL`,
		propertyID, reservation.StatusPending, reservation.StatusApproved,
	)
	if err != nil {
		return nil, fmt.Errorf("query active reservations failed: %w", err)
	}
	defer rows.Close()

	var active []ReservedRange
	for rows.Next() {
		var res ReservedRange
		if err := rows.Scan(&res.ReservationID, &res.Range.Start, &res.Range.End); err != nil {
			return nil, fmt.Errorf("scan active reservation failed: %w", err)
		}
		res.Range.Start = daterange.Day(res.Range.Start)
		res.Range.End = daterange.Day(res.Range.End)
		active = append(active, res)
	}
	return active, rows.Err()
}
