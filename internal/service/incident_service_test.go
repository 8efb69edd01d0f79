package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"

	"github.com/mariomediam/maps-backend/internal/domain"
	"github.com/mariomediam/maps-backend/internal/imaging"
	"github.com/mariomediam/maps-backend/internal/storage/objectstore"
	"github.com/mariomediam/maps-backend/pkg/e"
)

func citizenSubmission(photos ...domain.PhotoUpload) domain.Submission {
	return domain.Submission{
		CategoryID: 1,
		Latitude:   decimal.RequireFromString("12.04"),
		Longitude:  decimal.RequireFromString("-77.03"),
		Summary:    "Broken light",
		Reference:  "5th ave",
		Submitter:  domain.CitizenSubmitter{Name: "Ana"},
		Photos:     photos,
	}
}

func TestCreate_CitizenEndToEnd(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.svc.normalizer = imaging.NewNormalizer(discardLogger())
	ctx := context.Background()

	h.repo.EXPECT().CategoryExists(gomock.Any(), int64(1)).Return(true, nil)
	call := h.expectCreate(10, nil)
	var stored []byte
	h.store.EXPECT().Upload(gomock.Any(), gomock.Any(), int64(10), "image/jpeg", ".jpg", "").
		DoAndReturn(func(_ context.Context, data []byte, _ int64, _, _, _ string) objectstore.UploadResult {
			stored = data
			return objectstore.UploadResult{Success: true, Key: "incidents/10/20240501_103000_000000.jpg"}
		})
	h.store.EXPECT().Upload(gomock.Any(), gomock.Any(), int64(10), "image/jpeg", ".jpg", "incidents/10/miniature.jpg").
		Return(objectstore.UploadResult{Success: true, Key: "incidents/10/miniature.jpg"})
	h.repo.EXPECT().Get(gomock.Any(), int64(10)).
		DoAndReturn(func(context.Context, int64) (*domain.Incident, error) {
			row := *call.incident
			row.CategoryName = "Lighting"
			row.Photographs = []domain.Photograph{*call.photos[0]}
			return &row, nil
		})
	h.events.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev domain.IncidentEvent) error {
			if ev.Type != domain.EventIncidentCreated || ev.IncidentID != 10 || ev.StateID != domain.StateReported {
				t.Fatalf("unexpected event %+v", ev)
			}
			return nil
		})

	sub := citizenSubmission(domain.PhotoUpload{
		Filename:    "img1.png",
		ContentType: "image/png",
		Data:        pngPhoto(t, 2048, 1024),
	})

	got, err := h.svc.Create(ctx, sub)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if got.IsClosed || got.PriorityID != nil || got.ShowOnMap {
		t.Fatalf("unexpected flags: closed=%v priority=%v show=%v", got.IsClosed, got.PriorityID, got.ShowOnMap)
	}
	if got.IDState != domain.StateReported || got.DescriptionState != "Reported" {
		t.Fatalf("expected state 1 Reported, got %d %q", got.IDState, got.DescriptionState)
	}
	if len(got.Photographs) != 1 {
		t.Fatalf("expected one photograph, got %d", len(got.Photographs))
	}
	photo := call.photos[0]
	if photo.Name != "img1.png" || photo.ContentType != "image/jpeg" || photo.FileSize == 0 || photo.IncidentID != 10 {
		t.Fatalf("unexpected photograph row %+v", photo)
	}
	// FileSize is the size of the stored rendition, not of the upload.
	if photo.FileSize != int64(len(stored)) || photo.FileSize == int64(len(sub.Photos[0].Data)) {
		t.Fatalf("file size %d must match the stored rendition (%d bytes), not the upload (%d bytes)",
			photo.FileSize, len(stored), len(sub.Photos[0].Data))
	}
	if photo.R2Key != "incidents/10/20240501_103000_000000.jpg" {
		t.Fatalf("photograph must carry the uploaded key, got %q", photo.R2Key)
	}
	if got.CitizenFullName == nil || *got.CitizenFullName != "Ana" {
		t.Fatalf("expected citizen full name, got %v", got.CitizenFullName)
	}
	if call.incident.UserType != domain.SubmitterCitizen || call.incident.InspectorID != nil {
		t.Fatalf("unexpected submitter fields %+v", call.incident)
	}
}

func TestCreate_InspectorIsShownOnMap_NoPhotosNoMiniature(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()

	h.repo.EXPECT().CategoryExists(gomock.Any(), int64(1)).Return(true, nil)
	h.repo.EXPECT().UserByUsername(gomock.Any(), "inspector1").Return(&domain.User{ID: 7, Username: "inspector1"}, nil)
	call := h.expectCreate(11, nil)
	h.repo.EXPECT().Get(gomock.Any(), int64(11)).
		DoAndReturn(func(context.Context, int64) (*domain.Incident, error) {
			cp := *call.incident
			return &cp, nil
		})
	h.events.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)
	// No Upload expectation: any call to the object store fails the test.

	sub := citizenSubmission()
	sub.Submitter = domain.InspectorSubmitter{Username: "inspector1"}

	got, err := h.svc.Create(ctx, sub)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	created := call.incident
	if !created.ShowOnMap || !got.ShowOnMap {
		t.Fatalf("inspector incidents must be shown on the map")
	}
	if created.InspectorID == nil || *created.InspectorID != 7 {
		t.Fatalf("expected inspector id 7, got %v", created.InspectorID)
	}
	if created.CitizenName != nil {
		t.Fatalf("citizen fields must be empty for inspectors")
	}
	if len(call.photos) != 0 {
		t.Fatalf("expected no photograph rows, got %d", len(call.photos))
	}
	if len(got.Photographs) != 0 || got.Photographs == nil {
		t.Fatalf("expected an empty photograph list, got %v", got.Photographs)
	}
}

func TestCreate_RollbackOnIngestionFailure(t *testing.T) {
	t.Parallel()

	const photos = 3
	cases := []struct {
		name   string
		failAt int // 1-based upload call that fails; photos+1 is the miniature
	}{
		{"first photo", 1},
		{"last photo", photos},
		{"miniature", photos + 1},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t)
			h.passThroughNormalizer()

			h.repo.EXPECT().CategoryExists(gomock.Any(), int64(1)).Return(true, nil)
			call := h.expectCreate(10, nil)

			calls := 0
			h.store.EXPECT().Upload(gomock.Any(), gomock.Any(), int64(10), gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ []byte, _ int64, _, _, override string) objectstore.UploadResult {
					calls++
					key := fmt.Sprintf("incidents/10/photo%d.jpg", calls)
					if override != "" {
						key = override
					}
					if calls == c.failAt {
						return objectstore.UploadResult{Success: false, Key: key, Error: "access denied"}
					}
					return objectstore.UploadResult{Success: true, Key: key}
				}).
				Times(c.failAt)

			for i := 1; i < c.failAt; i++ {
				h.store.EXPECT().Delete(gomock.Any(), fmt.Sprintf("incidents/10/photo%d.jpg", i)).
					Return(objectstore.Result{Success: true})
			}
			// No Get or Enqueue: a failed creation returns before reading back.

			var uploads []domain.PhotoUpload
			for i := 0; i < photos; i++ {
				uploads = append(uploads, domain.PhotoUpload{Filename: fmt.Sprintf("p%d.jpg", i), ContentType: "image/jpeg", Data: []byte{byte(i)}})
			}

			_, err := h.svc.Create(context.Background(), citizenSubmission(uploads...))
			if !errors.Is(err, e.ErrUpload) {
				t.Fatalf("expected ErrUpload, got %v", err)
			}
			var ue *e.UploadError
			if !errors.As(err, &ue) || ue.Reason != "access denied" {
				t.Fatalf("expected UploadError with reason, got %v", err)
			}
			if call.photos != nil {
				t.Fatalf("no photograph rows may be committed, got %d", len(call.photos))
			}
		})
	}
}

func TestCreate_IncidentInsertFailure_NothingToClean(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.repo.EXPECT().CategoryExists(gomock.Any(), int64(1)).Return(true, nil)
	insertErr := fmt.Errorf("postgres.Incident.CreateWithPhotographs: %w", e.ErrInternal)
	h.repo.EXPECT().CreateWithPhotographs(gomock.Any(), gomock.Any(), gomock.Any()).Return(insertErr).Times(1)
	// No Upload, Delete, Get or Enqueue expectations: the controller fails the
	// test on any of them.

	sub := citizenSubmission(domain.PhotoUpload{Filename: "a.jpg", ContentType: "image/jpeg", Data: []byte("a")})
	_, err := h.svc.Create(context.Background(), sub)
	if !errors.Is(err, e.ErrInternal) {
		t.Fatalf("expected the insert error, got %v", err)
	}
}

func TestCreate_PhotographInsertFailure_RemovesBlobs(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.passThroughNormalizer()

	h.repo.EXPECT().CategoryExists(gomock.Any(), int64(1)).Return(true, nil)
	commitErr := fmt.Errorf("postgres.Incident.CreateWithPhotographs: %w", e.ErrInvalidInput)
	call := h.expectCreate(10, commitErr)
	gomock.InOrder(
		h.store.EXPECT().Upload(gomock.Any(), []byte("a"), int64(10), "image/jpeg", gomock.Any(), "").
			Return(objectstore.UploadResult{Success: true, Key: "incidents/10/a.jpg"}),
		h.store.EXPECT().Upload(gomock.Any(), []byte("a"), int64(10), "image/jpeg", ".jpg", objectstore.MiniatureKey(10)).
			Return(objectstore.UploadResult{Success: true, Key: objectstore.MiniatureKey(10)}),
	)
	h.store.EXPECT().Delete(gomock.Any(), "incidents/10/a.jpg").Return(objectstore.Result{Success: true}).Times(1)
	h.store.EXPECT().Delete(gomock.Any(), objectstore.MiniatureKey(10)).Return(objectstore.Result{Success: true}).Times(1)

	sub := citizenSubmission(domain.PhotoUpload{Filename: "a.jpg", ContentType: "image/jpeg", Data: []byte("a")})
	_, err := h.svc.Create(context.Background(), sub)
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected the photograph insert error, got %v", err)
	}
	if !call.ingested || call.photos != nil {
		t.Fatalf("expected ingestion without a commit, got %+v", call)
	}
}

func TestCreate_RollbackSurvivesCleanupFailures(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.passThroughNormalizer()

	h.repo.EXPECT().CategoryExists(gomock.Any(), int64(1)).Return(true, nil)
	h.expectCreate(10, nil)
	gomock.InOrder(
		h.store.EXPECT().Upload(gomock.Any(), gomock.Any(), int64(10), gomock.Any(), gomock.Any(), "").
			Return(objectstore.UploadResult{Success: true, Key: "incidents/10/a.jpg"}),
		h.store.EXPECT().Upload(gomock.Any(), gomock.Any(), int64(10), gomock.Any(), gomock.Any(), "").
			Return(objectstore.UploadResult{Success: false, Key: "incidents/10/b.jpg", Error: "timeout"}),
	)
	h.store.EXPECT().Delete(gomock.Any(), "incidents/10/a.jpg").Return(objectstore.Result{Success: false, Error: "gone"})

	sub := citizenSubmission(
		domain.PhotoUpload{Filename: "a.jpg", ContentType: "image/jpeg", Data: []byte("a")},
		domain.PhotoUpload{Filename: "b.jpg", ContentType: "image/jpeg", Data: []byte("b")},
	)
	_, err := h.svc.Create(context.Background(), sub)
	if !errors.Is(err, e.ErrUpload) {
		t.Fatalf("expected the upload error to win, got %v", err)
	}
}

func TestCreate_MiniatureFromFirstPhotoOnly(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		first     domain.PhotoUpload
		thumbType string
	}{
		{
			name:      "undecodable image",
			first:     domain.PhotoUpload{Filename: "broken.jpg", ContentType: "image/jpeg", Data: []byte("not a jpeg")},
			thumbType: "image/jpeg",
		},
		{
			name:      "not an image",
			first:     domain.PhotoUpload{Filename: "doc.pdf", ContentType: "application/pdf", Data: []byte("%PDF")},
			thumbType: "application/pdf",
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t)
			h.svc.normalizer = imaging.NewNormalizer(discardLogger())
			second := domain.PhotoUpload{Filename: "img.png", ContentType: "image/png", Data: pngPhoto(t, 300, 200)}

			h.repo.EXPECT().CategoryExists(gomock.Any(), int64(1)).Return(true, nil)
			call := h.expectCreate(12, nil)
			h.store.EXPECT().Upload(gomock.Any(), c.first.Data, int64(12), c.thumbType, gomock.Any(), "").
				Return(objectstore.UploadResult{Success: true, Key: "incidents/12/first"})
			h.store.EXPECT().Upload(gomock.Any(), gomock.Any(), int64(12), "image/jpeg", ".jpg", "").
				Return(objectstore.UploadResult{Success: true, Key: "incidents/12/img.jpg"})
			// The normalizer falls back to the original bytes, so the miniature
			// is exactly the first upload's data.
			h.store.EXPECT().Upload(gomock.Any(), c.first.Data, int64(12), c.thumbType, ".jpg", objectstore.MiniatureKey(12)).
				Return(objectstore.UploadResult{Success: true, Key: objectstore.MiniatureKey(12)}).
				Times(1)
			h.repo.EXPECT().Get(gomock.Any(), int64(12)).Return(&domain.Incident{ID: 12, UserType: domain.SubmitterCitizen}, nil)
			h.events.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)

			if _, err := h.svc.Create(context.Background(), citizenSubmission(c.first, second)); err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if len(call.photos) != 2 {
				t.Fatalf("expected two photograph rows, got %d", len(call.photos))
			}
		})
	}
}

func TestCreate_EventQueueFailureDoesNotFail(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.repo.EXPECT().CategoryExists(gomock.Any(), int64(1)).Return(true, nil)
	h.expectCreate(13, nil)
	h.repo.EXPECT().Get(gomock.Any(), int64(13)).Return(&domain.Incident{ID: 13}, nil)
	h.events.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	if _, err := h.svc.Create(context.Background(), citizenSubmission()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestCreate_Validation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(s *domain.Submission)
		field  string
	}{
		{"blank citizen name", func(s *domain.Submission) { s.Submitter = domain.CitizenSubmitter{Name: "   "} }, "citizen_name"},
		{"latitude out of range", func(s *domain.Submission) { s.Latitude = decimal.NewFromInt(91) }, "latitude"},
		{"longitude out of range", func(s *domain.Submission) { s.Longitude = decimal.NewFromInt(-181) }, "longitude"},
		{"blank summary", func(s *domain.Submission) { s.Summary = "" }, "summary"},
		{"missing category", func(s *domain.Submission) { s.CategoryID = 0 }, "category_id"},
		{"bad email", func(s *domain.Submission) {
			s.Submitter = domain.CitizenSubmitter{Name: "Ana", Email: strptr("not-an-email")}
		}, "citizen_email"},
		{"blank inspector", func(s *domain.Submission) { s.Submitter = domain.InspectorSubmitter{} }, "username"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t)
			sub := citizenSubmission()
			c.mutate(&sub)

			_, err := h.svc.Create(context.Background(), sub)
			var ve *e.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			found := false
			for _, f := range ve.Fields {
				if f == c.field {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected field %q in %v", c.field, ve.Fields)
			}
		})
	}
}

func TestCreate_MissingSubmitter(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	sub := citizenSubmission()
	sub.Submitter = nil

	_, err := h.svc.Create(context.Background(), sub)
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreate_UnknownCategoryOrInspector(t *testing.T) {
	t.Parallel()

	t.Run("category", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		h.repo.EXPECT().CategoryExists(gomock.Any(), int64(1)).Return(false, nil)

		_, err := h.svc.Create(context.Background(), citizenSubmission())
		if !errors.Is(err, e.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("inspector", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		h.repo.EXPECT().CategoryExists(gomock.Any(), int64(1)).Return(true, nil)
		h.repo.EXPECT().UserByUsername(gomock.Any(), "ghost").Return(nil, fmt.Errorf("postgres.User.ByUsername: %w", e.ErrNotFound))

		sub := citizenSubmission()
		sub.Submitter = domain.InspectorSubmitter{Username: "ghost"}
		_, err := h.svc.Create(context.Background(), sub)
		if !errors.Is(err, e.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestList_AnnotatesDerivedState(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	state := domain.StateInProcess
	filter := domain.IncidentFilter{StateID: &state}

	h.repo.EXPECT().FindByFilters(gomock.Any(), filter).Return([]*domain.Incident{
		{ID: 2, PriorityID: i64ptr(1)},
		{ID: 1, IsClosed: true},
	}, nil)

	got, err := h.svc.List(context.Background(), filter)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 incidents, got %d", len(got))
	}
	if got[0].IDState != domain.StateInProcess || got[0].ColorState != "#F9A825" {
		t.Fatalf("unexpected state for first incident: %+v", got[0])
	}
	if got[1].IDState != domain.StateResolved {
		t.Fatalf("unexpected state for second incident: %+v", got[1])
	}
}

func TestMapFeed_ForcesPublicIncidents(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.repo.EXPECT().FindByFilters(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f domain.IncidentFilter) ([]*domain.Incident, error) {
			if f.ShowOnMap == nil || !*f.ShowOnMap {
				t.Fatalf("map feed must filter on show_on_map=true, got %v", f.ShowOnMap)
			}
			return []*domain.Incident{{
				ID:        4,
				Latitude:  decimal.RequireFromString("-5.19449"),
				Longitude: decimal.RequireFromString("-80.63282"),
				ShowOnMap: true,
			}}, nil
		})

	hidden := false
	fc, err := h.svc.MapFeed(context.Background(), domain.IncidentFilter{ShowOnMap: &hidden})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(fc.Features) != 1 {
		t.Fatalf("expected one feature, got %d", len(fc.Features))
	}
	coords := fc.Features[0].Geometry.Point
	if coords[0] != -80.63282 || coords[1] != -5.19449 {
		t.Fatalf("expected [lng, lat], got %v", coords)
	}
	if fc.Features[0].Properties["id_state"] != domain.StateReported {
		t.Fatalf("expected derived state property, got %v", fc.Features[0].Properties["id_state"])
	}
}

func TestPhotograph_SignsURL(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.repo.EXPECT().GetPhotograph(gomock.Any(), int64(5)).
		Return(&domain.Photograph{ID: 5, IncidentID: 1, R2Key: "incidents/1/a.jpg"}, nil)
	h.store.EXPECT().SignedURL(gomock.Any(), "incidents/1/a.jpg", gomock.Any()).Return(nil)

	got, err := h.svc.Photograph(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.URL != nil {
		t.Fatalf("expected null url when signing fails")
	}
}

func TestMiniatureURL(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.store.EXPECT().Exists(gomock.Any(), "incidents/1/miniature.jpg").Return(true)
	h.store.EXPECT().SignedURL(gomock.Any(), "incidents/1/miniature.jpg", gomock.Any()).Return(strptr("https://r2/m?sig"))
	h.store.EXPECT().Exists(gomock.Any(), "incidents/2/miniature.jpg").Return(false)

	url, err := h.svc.MiniatureURL(context.Background(), 1)
	if err != nil || url == nil || *url != "https://r2/m?sig" {
		t.Fatalf("unexpected url=%v err=%v", url, err)
	}

	url, err = h.svc.MiniatureURL(context.Background(), 2)
	if err != nil || url != nil {
		t.Fatalf("expected nil url for a missing miniature, got %v %v", url, err)
	}
}
