package reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emreyalim/stayhub-backend/internal/pkg/daterange"
)

type Repository interface {
	// CreateValidated inserts a new pending reservation after checking, inside
	// one transaction holding the property row lock, that the requested range
	// is covered by the availability windows and free of active reservations.
	CreateValidated(ctx context.Context, res *Reservation) error

	GetByID(ctx context.Context, id string) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, int, error)

	// ActiveIntervals returns the date ranges of reservations in the given
	// status (pending or approved) on the property.
	ActiveIntervals(ctx context.Context, propertyID string, status Status) ([]daterange.Range, error)

	// UpdateStatus moves a reservation from expected to next, writing the
	// cancel reason when one is given. It fails with ErrInvalidTransition if
	// the stored status no longer matches expected.
	UpdateStatus(ctx context.Context, id string, expected, next Status, reason *string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// CreateValidated serializes the check-then-insert against other bookings and
// against availability edits on the same property via SELECT ... FOR UPDATE
// on the property row. Bookings on different properties do not contend.
func (r *pgxRepository) CreateValidated(ctx context.Context, res *Reservation) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create reservation tx failed: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	// Lock the property row. This also confirms the property exists.
	var propertyID string
	err = tx.QueryRow(ctx,
		`SELECT id FROM public.properties WHERE id = $1 FOR UPDATE`,
		res.PropertyID,
	).Scan(&propertyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrPropertyNotFound
		}
		return fmt.Errorf("lock property row failed: %w", err)
	}

	windows, err := windowRanges(ctx, tx, res.PropertyID)
	if err != nil {
		return err
	}

	active, err := activeRanges(ctx, tx, res.PropertyID)
	if err != nil {
		return err
	}

	if !RangeAvailable(windows, active, res.Range) {
		return ErrNotAvailable
	}

	res.Status = StatusPending
	err = tx.QueryRow(ctx,
		`INSERT INTO public.reservations (property_id, user_id, start_date, end_date, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		res.PropertyID, res.UserID, res.Range.Start, res.Range.End, res.Status,
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert reservation failed: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create reservation tx failed: %w", err)
	}
	return nil
}

func windowRanges(ctx context.Context, tx pgx.Tx, propertyID string) ([]daterange.Range, error) {
	rows, err := tx.Query(ctx,
		`SELECT start_date, end_date FROM public.availability_windows WHERE property_id = $1`,
		propertyID,
	)
	if err != nil {
		return nil, fmt.Errorf("query availability windows failed: %w", err)
	}
	defer rows.Close()

	return scanRanges(rows)
}

func activeRanges(ctx context.Context, tx pgx.Tx, propertyID string) ([]daterange.Range, error) {
	rows, err := tx.Query(ctx,
		`SELECT start_date, end_date FROM public.reservations
		 WHERE property_id = $1 AND status IN ($2, $3) AND start_date IS NOT NULL`,
		propertyID, StatusPending, StatusApproved,
	)
	if err != nil {
		return nil, fmt.Errorf("query active reservations failed: %w", err)
	}
	defer rows.Close()

	return scanRanges(rows)
}

func scanRanges(rows pgx.Rows) ([]daterange.Range, error) {
	var ranges []daterange.Range
	for rows.Next() {
		var rng daterange.Range
		if err := rows.Scan(&rng.Start, &rng.End); err != nil {
			return nil, fmt.Errorf("scan date range failed: %w", err)
		}
		rng.Start = daterange.Day(rng.Start)
		rng.End = daterange.Day(rng.End)
		ranges = append(ranges, rng)
	}
	return ranges, rows.Err()
}

const reservationColumns = `
	r.id, r.property_id, p.title, p.host_id, r.user_id, u.username,
	r.start_date, r.end_date, r.status, r.cancel_reason, r.created_at
`

func scanReservation(row pgx.Row, res *Reservation) error {
	return row.Scan(
		&res.ID, &res.PropertyID, &res.PropertyTitle, &res.HostID, &res.UserID, &res.UserName,
		&res.Range.Start, &res.Range.End, &res.Status, &res.CancelReason, &res.CreatedAt,
	)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM public.reservations r
		JOIN public.properties p ON r.property_id = p.id
		JOIN public.users u ON r.user_id = u.id
		WHERE r.id = $1
	`
	var res Reservation
	if err := scanReservation(r.pool.QueryRow(ctx, query, id), &res); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get reservation failed: %w", err)
	}
	return &res, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"r.id", "r.property_id", "p.title", "p.host_id", "r.user_id", "u.username",
		"r.start_date", "r.end_date", "r.status", "r.cancel_reason", "r.created_at",
		"count(*) OVER() as total_count",
	).
		From("public.reservations r").
		Join("public.properties p ON r.property_id = p.id").
		Join("public.users u ON r.user_id = u.id")

	if filter.PropertyID != "" {
		query = query.Where(squirrel.Eq{"r.property_id": filter.PropertyID})
	}
	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"r.user_id": filter.UserID})
	}
	if filter.HostID != "" {
		query = query.Where(squirrel.Eq{"p.host_id": filter.HostID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"r.status": filter.Status})
	}

	query = query.OrderBy("r.created_at DESC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list reservations query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reservations failed: %w", err)
	}
	defer rows.Close()

	var reservations []*Reservation
	var total int

	for rows.Next() {
		var res Reservation
		if err := rows.Scan(
			&res.ID, &res.PropertyID, &res.PropertyTitle, &res.HostID, &res.UserID, &res.UserName,
			&res.Range.Start, &res.Range.End, &res.Status, &res.CancelReason, &res.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan reservation failed: %w", err)
		}
		reservations = append(reservations, &res)
	}

	return reservations, total, nil
}

func (r *pgxRepository) ActiveIntervals(ctx context.Context, propertyID string, status Status) ([]daterange.Range, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT start_date, end_date FROM public.reservations
		 WHERE property_id = $1 AND status = $2 AND start_date IS NOT NULL`,
		propertyID, status,
	)
	if err != nil {
		return nil, fmt.Errorf("query %s intervals failed: %w", status, err)
	}
	defer rows.Close()

	return scanRanges(rows)
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, expected, next Status, reason *string) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE public.reservations
		 SET status = $1, cancel_reason = COALESCE($2, cancel_reason)
		 WHERE id = $3 AND status = $4`,
		next, reason, id, expected,
	)
	if err != nil {
		return fmt.Errorf("update reservation status failed: %w", err)
	}
	// Zero rows means the reservation is gone or its status moved under us.
	if ct.RowsAffected() == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return ErrInvalidTransition
	}
	return nil
}
