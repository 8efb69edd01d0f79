package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/mariomediam/maps-backend/internal/domain"
	"github.com/mariomediam/maps-backend/pkg/e"
)

type IncidentStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewIncidentStore(pool *pgxpool.Pool, logger *slog.Logger) *IncidentStore {
	return &IncidentStore{pool: pool, logger: logger}
}

// CreateWithPhotographs inserts inc, hands its id to ingest and inserts the
// photographs ingest returns, all in one transaction. Nothing is visible to
// other readers before the commit. ingest is not called when the incident
// insert fails, and its error is returned unwrapped after the rollback.
func (s *IncidentStore) CreateWithPhotographs(
	ctx context.Context,
	inc *domain.Incident,
	ingest func(ctx context.Context, incidentID int64) ([]*domain.Photograph, error),
) error {
	const op = "postgres.Incident.CreateWithPhotographs"

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		s.logger.Error("db begin failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	// No-op once committed.
	defer func() { _ = tx.Rollback(context.WithoutCancel(ctx)) }()

	if err := insertIncident(ctx, tx, inc); err != nil {
		s.logger.Error("db insert failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	var photos []*domain.Photograph
	if ingest != nil {
		photos, err = ingest(ctx, inc.ID)
		if err != nil {
			return err
		}
	}

	for _, p := range photos {
		p.IncidentID = inc.ID
		if err := insertPhotograph(ctx, tx, p); err != nil {
			s.logger.Error("db insert failed", slog.String("op", op), slog.Any("error", err), slog.Int64("incident_id", inc.ID))
			return e.WrapError(ctx, op, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		s.logger.Error("db commit failed", slog.String("op", op), slog.Any("error", err), slog.Int64("incident_id", inc.ID))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func insertIncident(ctx context.Context, tx pgx.Tx, inc *domain.Incident) error {
	// Coordinates travel as text so numeric(10,8) keeps every digit.
	const query = `
		INSERT INTO incident (
			id_category, latitude, longitude, summary, reference,
			show_on_map, user_type, is_closed, inspector_id,
			citizen_name, citizen_lastname, citizen_phone, citizen_email
		)
		VALUES ($1, $2::text::numeric, $3::text::numeric, $4, $5, $6, $7, false, $8, $9, $10, $11, $12)
		RETURNING id_incident, registration_date
	`

	err := tx.QueryRow(ctx, query,
		inc.CategoryID,
		inc.Latitude.String(),
		inc.Longitude.String(),
		inc.Summary,
		inc.Reference,
		inc.ShowOnMap,
		string(inc.UserType),
		inc.InspectorID,
		inc.CitizenName,
		inc.CitizenLastname,
		inc.CitizenPhone,
		inc.CitizenEmail,
	).Scan(&inc.ID, &inc.RegistrationDate)
	if err != nil {
		return err
	}
	inc.IsClosed = false

	return nil
}

func insertPhotograph(ctx context.Context, tx pgx.Tx, p *domain.Photograph) error {
	const query = `
		INSERT INTO photography (id_incident, name, content_type, file_size, r2_key)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_photography, upload_date
	`

	return tx.QueryRow(ctx, query, p.IncidentID, p.Name, p.ContentType, p.FileSize, p.R2Key).
		Scan(&p.ID, &p.UploadDate)
}

// Get returns the incident with its display names, photographs and
// attachments.
func (s *IncidentStore) Get(ctx context.Context, id int64) (*domain.Incident, error) {
	const op = "postgres.Incident.Get"

	query := "SELECT" + incidentColumns + incidentFrom + "\nWHERE i.id_incident = $1"

	inc, err := scanIncident(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if !isNoRows(err) {
			s.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.Int64("id", id))
		}
		return nil, e.WrapError(ctx, op, err)
	}

	byID := map[int64]*domain.Incident{inc.ID: inc}
	if err := s.attachPhotographs(ctx, byID); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	if err := s.attachAttachments(ctx, byID); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return inc, nil
}

// FindByFilters runs one joined query plus one batch query for photographs,
// whatever the number of rows.
func (s *IncidentStore) FindByFilters(ctx context.Context, f domain.IncidentFilter) ([]*domain.Incident, error) {
	const op = "postgres.Incident.FindByFilters"

	where, args, err := buildIncidentFilter(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	query := "SELECT" + incidentColumns + incidentFrom + where + incidentOrder

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		s.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	incidents := make([]*domain.Incident, 0, 16)
	for rows.Next() {
		inc, err := scanIncident(rows)
		if err != nil {
			s.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		incidents = append(incidents, inc)
	}
	if err := rows.Err(); err != nil {
		s.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	if len(incidents) == 0 {
		return incidents, nil
	}

	byID := lo.KeyBy(incidents, func(inc *domain.Incident) int64 { return inc.ID })
	if err := s.attachPhotographs(ctx, byID); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return incidents, nil
}

// Update writes the fields a partial update may touch. Identity, location and
// submitter columns never change after creation.
func (s *IncidentStore) Update(ctx context.Context, inc *domain.Incident) error {
	const op = "postgres.Incident.Update"

	const query = `
		UPDATE incident
		SET show_on_map         = $2,
			is_closed           = $3,
			id_priority         = $4,
			derivation_document = $5,
			id_closure_type     = $6,
			closure_description = $7,
			closure_date        = $8,
			closure_user_id     = $9
		WHERE id_incident = $1
	`

	cmd, err := s.pool.Exec(ctx, query,
		inc.ID,
		inc.ShowOnMap,
		inc.IsClosed,
		inc.PriorityID,
		inc.DerivationDocument,
		inc.ClosureTypeID,
		inc.ClosureDescription,
		inc.ClosureDate,
		inc.ClosureUserID,
	)
	if err != nil {
		s.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.Int64("id", inc.ID))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (s *IncidentStore) GetPhotograph(ctx context.Context, id int64) (*domain.Photograph, error) {
	const op = "postgres.Photograph.Get"

	const query = `
		SELECT id_photography, id_incident, name, content_type, file_size, r2_key, upload_date
		FROM photography
		WHERE id_photography = $1
	`

	var p domain.Photograph
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.IncidentID, &p.Name, &p.ContentType, &p.FileSize, &p.R2Key, &p.UploadDate,
	)
	if err != nil {
		if !isNoRows(err) {
			s.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.Int64("id", id))
		}
		return nil, e.WrapError(ctx, op, err)
	}

	return &p, nil
}

func (s *IncidentStore) CategoryExists(ctx context.Context, id int64) (bool, error) {
	const op = "postgres.Category.Exists"

	var exists bool
	err := s.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM incident_category WHERE id_category = $1)`, id).Scan(&exists)
	if err != nil {
		s.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return false, e.WrapError(ctx, op, err)
	}

	return exists, nil
}

func (s *IncidentStore) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	const op = "postgres.User.ByUsername"

	var u domain.User
	err := s.pool.QueryRow(ctx, `SELECT id, username FROM auth_user WHERE username = $1`, username).
		Scan(&u.ID, &u.Username)
	if err != nil {
		if !isNoRows(err) {
			s.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		}
		return nil, e.WrapError(ctx, op, err)
	}

	return &u, nil
}

func (s *IncidentStore) attachPhotographs(ctx context.Context, byID map[int64]*domain.Incident) error {
	const op = "postgres.Photograph.ListByIncidents"

	const query = `
		SELECT id_photography, id_incident, name, content_type, file_size, r2_key, upload_date
		FROM photography
		WHERE id_incident = ANY($1)
		ORDER BY id_incident, id_photography
	`

	rows, err := s.pool.Query(ctx, query, lo.Keys(byID))
	if err != nil {
		s.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.Photograph
		if err := rows.Scan(&p.ID, &p.IncidentID, &p.Name, &p.ContentType, &p.FileSize, &p.R2Key, &p.UploadDate); err != nil {
			s.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return err
		}
		if inc, ok := byID[p.IncidentID]; ok {
			inc.Photographs = append(inc.Photographs, p)
		}
	}
	if err := rows.Err(); err != nil {
		s.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return err
	}

	for _, inc := range byID {
		if inc.Photographs == nil {
			inc.Photographs = []domain.Photograph{}
		}
	}
	return nil
}

func (s *IncidentStore) attachAttachments(ctx context.Context, byID map[int64]*domain.Incident) error {
	const op = "postgres.Attachment.ListByIncidents"

	const query = `
		SELECT id_attachment, id_incident, COALESCE(description, ''), url, upload_date, upload_user_id
		FROM attachment
		WHERE id_incident = ANY($1)
		ORDER BY id_incident, id_attachment
	`

	rows, err := s.pool.Query(ctx, query, lo.Keys(byID))
	if err != nil {
		s.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var a domain.Attachment
		if err := rows.Scan(&a.ID, &a.IncidentID, &a.Description, &a.URL, &a.UploadDate, &a.UploadUserID); err != nil {
			s.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return err
		}
		if inc, ok := byID[a.IncidentID]; ok {
			inc.Attachments = append(inc.Attachments, a)
		}
	}
	if err := rows.Err(); err != nil {
		s.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return err
	}

	for _, inc := range byID {
		if inc.Attachments == nil {
			inc.Attachments = []domain.Attachment{}
		}
	}
	return nil
}

func scanIncident(row pgx.Row) (*domain.Incident, error) {
	var (
		inc      domain.Incident
		lat, lng string
		userType string
	)

	err := row.Scan(
		&inc.ID, &inc.RegistrationDate, &inc.CategoryID, &inc.CategoryName,
		&lat, &lng, &inc.Summary, &inc.Reference,
		&inc.ShowOnMap, &userType, &inc.IsClosed,
		&inc.InspectorID, &inc.InspectorUsername,
		&inc.CitizenName, &inc.CitizenLastname, &inc.CitizenPhone, &inc.CitizenEmail,
		&inc.PriorityID, &inc.PriorityName, &inc.DerivationDocument,
		&inc.ClosureTypeID, &inc.ClosureTypeName, &inc.ClosureDescription, &inc.ClosureDate,
		&inc.ClosureUserID, &inc.ClosureUsername,
	)
	if err != nil {
		return nil, err
	}

	if inc.Latitude, err = decimal.NewFromString(lat); err != nil {
		return nil, fmt.Errorf("latitude %q: %w", lat, err)
	}
	if inc.Longitude, err = decimal.NewFromString(lng); err != nil {
		return nil, fmt.Errorf("longitude %q: %w", lng, err)
	}
	inc.UserType = domain.SubmitterKind(userType)

	return &inc, nil
}
