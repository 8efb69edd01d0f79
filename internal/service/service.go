package service

import (
	"context"
	"time"

	geojson "github.com/paulmach/go.geojson"

	"github.com/mariomediam/maps-backend/internal/domain"
	"github.com/mariomediam/maps-backend/internal/imaging"
	"github.com/mariomediam/maps-backend/internal/storage/objectstore"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type IncidentService interface {
	Create(ctx context.Context, sub domain.Submission) (*domain.AnnotatedIncident, error)
	UpdatePartial(ctx context.Context, id int64, patch domain.IncidentPatch, actingUser string) (*domain.AnnotatedIncident, error)
	Get(ctx context.Context, id int64) (*domain.AnnotatedIncident, error)
	List(ctx context.Context, f domain.IncidentFilter) ([]*domain.AnnotatedIncident, error)
	MapFeed(ctx context.Context, f domain.IncidentFilter) (*geojson.FeatureCollection, error)
	Photograph(ctx context.Context, id int64) (*domain.PhotographView, error)
	MiniatureURL(ctx context.Context, incidentID int64) (*string, error)
}

type LookupService interface {
	Categories(ctx context.Context, isActive *bool) ([]domain.Category, error)
	Category(ctx context.Context, id int64) (*domain.Category, error)
	Priorities(ctx context.Context) ([]domain.Priority, error)
	ClosureTypes(ctx context.Context) ([]domain.ClosureType, error)
	States() []domain.State
}

type IncidentRepository interface {
	// CreateWithPhotographs inserts inc and the photographs returned by
	// ingest in one transaction. ingest runs only after the row exists.
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

type ObjectStore interface {
	Upload(ctx context.Context, data []byte, incidentID int64, contentType, ext, keyOverride string) objectstore.UploadResult
	Delete(ctx context.Context, key string) objectstore.Result
	SignedURL(ctx context.Context, key string, ttl time.Duration) *string
	Exists(ctx context.Context, key string) bool
}

type ImageNormalizer interface {
	Normalize(data []byte, contentType string, opts imaging.Options) imaging.Result
}

type EventQueue interface {
	Enqueue(ctx context.Context, ev domain.IncidentEvent) error
}

type LookupCache interface {
	Get(ctx context.Context, name string, dst any) (bool, error)
	Set(ctx context.Context, name string, value any) error
}

type Service struct {
	Incidents IncidentService
	Lookups   LookupService
}

func NewService(incidents IncidentService, lookups LookupService) *Service {
	return &Service{
		Incidents: incidents,
		Lookups:   lookups,
	}
}
