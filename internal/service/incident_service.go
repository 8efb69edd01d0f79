package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/mariomediam/maps-backend/internal/domain"
	"github.com/mariomediam/maps-backend/internal/imaging"
	"github.com/mariomediam/maps-backend/internal/metrics"
	"github.com/mariomediam/maps-backend/internal/storage/objectstore"
	"github.com/mariomediam/maps-backend/pkg/e"
	"github.com/mariomediam/maps-backend/pkg/validator"
)

type incidentService struct {
	repo       IncidentRepository
	store      ObjectStore
	normalizer ImageNormalizer
	events     EventQueue
	metrics    *metrics.Metrics
	logger     *slog.Logger
	now        func() time.Time
}

// NewIncidentService wires the lifecycle service. events may be nil, in which
// case no lifecycle events are published.
func NewIncidentService(
	repo IncidentRepository,
	store ObjectStore,
	normalizer ImageNormalizer,
	events EventQueue,
	m *metrics.Metrics,
	logger *slog.Logger,
) IncidentService {
	return &incidentService{
		repo:       repo,
		store:      store,
		normalizer: normalizer,
		events:     events,
		metrics:    m,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *incidentService) Create(ctx context.Context, sub domain.Submission) (*domain.AnnotatedIncident, error) {
	const op = "service.Incident.Create"

	if err := validateSubmission(sub); err != nil {
		return nil, err
	}

	exists, err := s.repo.CategoryExists(ctx, sub.CategoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%s: category %d: %w", op, sub.CategoryID, e.ErrNotFound)
	}

	inc := &domain.Incident{
		CategoryID: sub.CategoryID,
		Latitude:   sub.Latitude,
		Longitude:  sub.Longitude,
		Summary:    strings.TrimSpace(sub.Summary),
		Reference:  strings.TrimSpace(sub.Reference),
		UserType:   sub.Submitter.Kind(),
	}

	var actor string
	switch who := sub.Submitter.(type) {
	case domain.InspectorSubmitter:
		user, err := s.repo.UserByUsername(ctx, who.Username)
		if err != nil {
			return nil, fmt.Errorf("%s: inspector %q: %w", op, who.Username, err)
		}
		inc.InspectorID = &user.ID
		actor = user.Username
	case domain.CitizenSubmitter:
		inc.CitizenName = trimmedOrNil(&who.Name)
		inc.CitizenLastname = trimmedOrNil(who.Lastname)
		inc.CitizenPhone = trimmedOrNil(who.Phone)
		inc.CitizenEmail = trimmedOrNil(who.Email)
	}

	inc.EnforceInvariants()

	// The row and its photographs commit together once every blob, the
	// miniature included, is stored. Blobs cannot join the transaction, so
	// they are removed here when it does not commit.
	var uploaded []string
	ingested := false
	err = s.repo.CreateWithPhotographs(ctx, inc, func(ctx context.Context, incidentID int64) ([]*domain.Photograph, error) {
		ingested = true
		photos, keys, err := s.ingestPhotos(ctx, incidentID, sub.Photos)
		uploaded = keys
		return photos, err
	})
	if err != nil {
		if ingested {
			s.logger.Error("incident creation failed, rolling back",
				slog.String("op", op),
				slog.Int64("incident_id", inc.ID),
				slog.Any("error", err),
			)
			s.rollbackCreate(ctx, inc.ID, uploaded)
		}
		return nil, err
	}

	s.logger.Info("incident created",
		slog.String("op", op),
		slog.Int64("incident_id", inc.ID),
		slog.String("user_type", string(inc.UserType)),
		slog.Int("photos", len(sub.Photos)),
	)

	out, err := s.Get(ctx, inc.ID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, domain.EventIncidentCreated, &out.Incident, actor)
	return out, nil
}

// ingestPhotos uploads every photo in input order and then the miniature. It
// returns the photograph rows to insert and the keys uploaded so far, also on
// failure.
func (s *incidentService) ingestPhotos(ctx context.Context, incidentID int64, photos []domain.PhotoUpload) ([]*domain.Photograph, []string, error) {
	rows := make([]*domain.Photograph, 0, len(photos))
	uploaded := make([]string, 0, len(photos)+1)

	for _, p := range photos {
		rendition := s.normalizer.Normalize(p.Data, p.ContentType, imaging.FullSize)

		res := s.store.Upload(ctx, rendition.Data, incidentID, rendition.ContentType, rendition.Extension(p.Filename), "")
		s.metrics.PhotoUploaded("photo", res.Success)
		if !res.Success {
			return rows, uploaded, &e.UploadError{Key: res.Key, Reason: res.Error}
		}
		uploaded = append(uploaded, res.Key)

		rows = append(rows, &domain.Photograph{
			IncidentID:  incidentID,
			Name:        p.Filename,
			ContentType: rendition.ContentType,
			FileSize:    int64(len(rendition.Data)),
			R2Key:       res.Key,
		})
	}

	if len(photos) == 0 {
		return rows, uploaded, nil
	}

	// The miniature always comes from the first photo. When it cannot be
	// decoded the normalizer hands back the original bytes, which are stored
	// as they are.
	thumb := s.normalizer.Normalize(photos[0].Data, photos[0].ContentType, imaging.Thumbnail)
	res := s.store.Upload(ctx, thumb.Data, incidentID, thumb.ContentType, ".jpg", objectstore.MiniatureKey(incidentID))
	s.metrics.PhotoUploaded("miniature", res.Success)
	if !res.Success {
		return rows, uploaded, &e.UploadError{Key: res.Key, Reason: res.Error}
	}
	uploaded = append(uploaded, res.Key)

	return rows, uploaded, nil
}

// rollbackCreate removes the blobs of an incident whose transaction did not
// commit. Failures are logged, never returned.
func (s *incidentService) rollbackCreate(ctx context.Context, incidentID int64, uploaded []string) {
	// Cleanup has to run even if the request context is already done.
	ctx = context.WithoutCancel(ctx)
	log := s.logger.With(slog.String("op", "service.Incident.rollbackCreate"), slog.Int64("incident_id", incidentID))

	for _, key := range uploaded {
		if res := s.store.Delete(ctx, key); !res.Success {
			log.Warn("blob cleanup failed", slog.String("key", key), slog.String("error", res.Error))
		}
	}

	s.metrics.CreateRolledBack()
	log.Info("incident creation rolled back", slog.Int("blobs", len(uploaded)))
}

func (s *incidentService) UpdatePartial(ctx context.Context, id int64, patch domain.IncidentPatch, actingUser string) (*domain.AnnotatedIncident, error) {
	const op = "service.Incident.UpdatePartial"

	changes, err := decodePatch(patch)
	if err != nil {
		return nil, err
	}

	inc, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.UserByUsername(ctx, actingUser)
	if err != nil {
		return nil, fmt.Errorf("%s: acting user %q: %w", op, actingUser, err)
	}

	closedNow := changes.apply(inc, user, s.now().UTC())
	inc.EnforceInvariants()

	if err := s.repo.Update(ctx, inc); err != nil {
		return nil, err
	}

	s.logger.Info("incident updated",
		slog.String("op", op),
		slog.Int64("incident_id", id),
		slog.String("user", user.Username),
		slog.Any("fields", lo.Keys(patch)),
	)

	out, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, domain.EventIncidentUpdated, &out.Incident, user.Username)
	if closedNow {
		s.publish(ctx, domain.EventIncidentClosed, &out.Incident, user.Username)
	}
	return out, nil
}

func (s *incidentService) Get(ctx context.Context, id int64) (*domain.AnnotatedIncident, error) {
	inc, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return domain.Annotate(inc), nil
}

func (s *incidentService) List(ctx context.Context, f domain.IncidentFilter) ([]*domain.AnnotatedIncident, error) {
	incidents, err := s.repo.FindByFilters(ctx, f)
	if err != nil {
		return nil, err
	}
	return lo.Map(incidents, func(inc *domain.Incident, _ int) *domain.AnnotatedIncident {
		return domain.Annotate(inc)
	}), nil
}

func (s *incidentService) Photograph(ctx context.Context, id int64) (*domain.PhotographView, error) {
	p, err := s.repo.GetPhotograph(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.PhotographView{
		Photograph: *p,
		URL:        s.store.SignedURL(ctx, p.R2Key, 0),
	}, nil
}

// MiniatureURL is nil when the incident has no miniature.
func (s *incidentService) MiniatureURL(ctx context.Context, incidentID int64) (*string, error) {
	key := objectstore.MiniatureKey(incidentID)
	if !s.store.Exists(ctx, key) {
		return nil, nil
	}
	return s.store.SignedURL(ctx, key, 0), nil
}

func (s *incidentService) publish(ctx context.Context, t domain.EventType, inc *domain.Incident, actor string) {
	if s.events == nil {
		return
	}
	ev := domain.NewIncidentEvent(t, inc, actor)
	if err := s.events.Enqueue(ctx, ev); err != nil {
		s.logger.Warn("enqueue event failed",
			slog.String("type", string(t)),
			slog.Int64("incident_id", inc.ID),
			slog.Any("error", err),
		)
		return
	}
	s.logger.Debug("event enqueued", slog.String("type", string(t)), slog.Int64("incident_id", inc.ID))
}

func validateSubmission(sub domain.Submission) error {
	if err := validator.ValidateStruct(sub); err != nil {
		return e.NewValidationError("invalid submission", validator.FailedFields(err)...)
	}
	if sub.Submitter == nil {
		return e.NewValidationError("submitter required")
	}
	if err := validator.ValidateStruct(sub.Submitter); err != nil {
		return e.NewValidationError("invalid submitter", validator.FailedFields(err)...)
	}
	return nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
