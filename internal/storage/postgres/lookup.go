package postgres

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mariomediam/maps-backend/internal/domain"
	"github.com/mariomediam/maps-backend/pkg/e"
)

type LookupStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewLookupStore(pool *pgxpool.Pool, logger *slog.Logger) *LookupStore {
	return &LookupStore{pool: pool, logger: logger}
}

// ListCategories filters on is_active only when isActive is set.
func (s *LookupStore) ListCategories(ctx context.Context, isActive *bool) ([]domain.Category, error) {
	const op = "postgres.Category.List"

	const query = `
		SELECT id_category, description, is_active
		FROM incident_category
		WHERE ($1::boolean IS NULL OR is_active = $1)
		ORDER BY id_category
	`

	rows, err := s.pool.Query(ctx, query, isActive)
	if err != nil {
		s.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make([]domain.Category, 0, 16)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Description, &c.IsActive); err != nil {
			s.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return out, nil
}

func (s *LookupStore) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	const op = "postgres.Category.Get"

	var c domain.Category
	err := s.pool.QueryRow(ctx,
		`SELECT id_category, description, is_active FROM incident_category WHERE id_category = $1`, id,
	).Scan(&c.ID, &c.Description, &c.IsActive)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return &c, nil
}

func (s *LookupStore) ListPriorities(ctx context.Context) ([]domain.Priority, error) {
	const op = "postgres.Priority.List"

	rows, err := s.pool.Query(ctx, `SELECT id_priority, description FROM incident_priority ORDER BY id_priority`)
	if err != nil {
		s.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make([]domain.Priority, 0, 8)
	for rows.Next() {
		var p domain.Priority
		if err := rows.Scan(&p.ID, &p.Description); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return out, nil
}

func (s *LookupStore) ListClosureTypes(ctx context.Context) ([]domain.ClosureType, error) {
	const op = "postgres.ClosureType.List"

	rows, err := s.pool.Query(ctx, `SELECT id_closure_type, description FROM incident_closure_type ORDER BY id_closure_type`)
	if err != nil {
		s.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make([]domain.ClosureType, 0, 8)
	for rows.Next() {
		var c domain.ClosureType
		if err := rows.Scan(&c.ID, &c.Description); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return out, nil
}
