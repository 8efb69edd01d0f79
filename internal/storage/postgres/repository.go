package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/mariomediam/maps-backend/internal/domain"
)

type IncidentRepository interface {
	CreateWithPhotographs(ctx context.Context, inc *domain.Incident, ingest func(ctx context.Context, incidentID int64) ([]*domain.Photograph, error)) error
	Get(ctx context.Context, id int64) (*domain.Incident, error)
	FindByFilters(ctx context.Context, f domain.IncidentFilter) ([]*domain.Incident, error)
	Update(ctx context.Context, inc *domain.Incident) error
	GetPhotograph(ctx context.Context, id int64) (*domain.Photograph, error)
	CategoryExists(ctx context.Context, id int64) (bool, error)
	UserByUsername(ctx context.Context, username string) (*domain.User, error)
}

type LookupRepository interface {
	ListCategories(ctx context.Context, isActive *bool) ([]domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	ListPriorities(ctx context.Context) ([]domain.Priority, error)
	ListClosureTypes(ctx context.Context) ([]domain.ClosureType, error)
}

func (p *Postgres) IncidentRepo() IncidentRepository { return p.Incidents }
func (p *Postgres) LookupRepo() LookupRepository     { return p.Lookups }

func isNoRows(err error) bool { return errors.Is(err, pgx.ErrNoRows) }
