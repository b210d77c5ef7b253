package property

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, p *Property) error
	GetByID(ctx context.Context, id string) (*Property, error)
	List(ctx context.Context, filter Filter) ([]*Property, int, error)
	Update(ctx context.Context, p *Property) error

	// Delete removes the property together with its availability windows,
	// reservations and photos in a single transaction.
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, p *Property) error {
	const query = `
		INSERT INTO public.properties (host_id, title, description, location, price, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query,
		p.HostID, p.Title, p.Description, p.Location, p.Price, p.Latitude, p.Longitude,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("create property failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Property, error) {
	const query = `
		SELECT p.id, p.host_id, u.username, p.title, p.description, p.location,
		       p.price, p.latitude, p.longitude, p.created_at
		FROM public.properties p
		JOIN public.users u ON p.host_id = u.id
		WHERE p.id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var p Property
	if err := row.Scan(
		&p.ID, &p.HostID, &p.HostName, &p.Title, &p.Description, &p.Location,
		&p.Price, &p.Latitude, &p.Longitude, &p.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get property failed: %w", err)
	}
	return &p, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Property, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"p.id", "p.host_id", "u.username", "p.title", "p.description", "p.location",
		"p.price", "p.latitude", "p.longitude", "p.created_at",
		"count(*) OVER() as total_count",
	).
		From("public.properties p").
		Join("public.users u ON p.host_id = u.id")

	if filter.HostID != "" {
		query = query.Where(squirrel.Eq{"p.host_id": filter.HostID})
	}
	if filter.Location != "" {
		query = query.Where(squirrel.ILike{"p.location": "%" + filter.Location + "%"})
	}

	query = query.OrderBy("p.created_at DESC")

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
		return nil, 0, fmt.Errorf("build list properties query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list properties failed: %w", err)
	}
	defer rows.Close()

	var properties []*Property
	var total int

	for rows.Next() {
		var p Property
		if err := rows.Scan(
			&p.ID, &p.HostID, &p.HostName, &p.Title, &p.Description, &p.Location,
			&p.Price, &p.Latitude, &p.Longitude, &p.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan property failed: %w", err)
		}
		properties = append(properties, &p)
	}

	return properties, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, p *Property) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.properties").
		Set("title", p.Title).
		Set("description", p.Description).
		Set("location", p.Location).
		Set("price", p.Price).
		Set("latitude", p.Latitude).
		Set("longitude", p.Longitude).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update property query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update property failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete property tx failed: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	// Owned rows go first so the property row never leaves orphans behind.
	owned := []string{
		`DELETE FROM public.property_photos WHERE property_id = $1`,
		`DELETE FROM public.reservations WHERE property_id = $1`,
		`DELETE FROM public.availability_windows WHERE property_id = $1`,
	}
	for _, q := range owned {
		if _, err = tx.Exec(ctx, q, id); err != nil {
			return fmt.Errorf("delete owned rows failed: %w", err)
		}
	}

	ct, err := tx.Exec(ctx, `DELETE FROM public.properties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete property failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		err = ErrNotFound
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete property tx failed: %w", err)
	}
	return nil
}
