package service

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/mariomediam/maps-backend/internal/domain"
	"github.com/mariomediam/maps-backend/internal/imaging"
	mock_service "github.com/mariomediam/maps-backend/internal/service/mocks"
)

var fixedNow = time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)

type harness struct {
	repo   *mock_service.MockIncidentRepository
	store  *mock_service.MockObjectStore
	norm   *mock_service.MockImageNormalizer
	events *mock_service.MockEventQueue
	svc    *incidentService
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		repo:   mock_service.NewMockIncidentRepository(ctrl),
		store:  mock_service.NewMockObjectStore(ctrl),
		norm:   mock_service.NewMockImageNormalizer(ctrl),
		events: mock_service.NewMockEventQueue(ctrl),
	}
	h.svc = NewIncidentService(h.repo, h.store, h.norm, h.events, nil, discardLogger()).(*incidentService)
	h.svc.now = func() time.Time { return fixedNow }
	return h
}

// passThroughNormalizer pretends every input is an image.
func (h *harness) passThroughNormalizer() {
	h.norm.EXPECT().
		Normalize(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(data []byte, _ string, _ imaging.Options) imaging.Result {
			return imaging.Result{Data: data, ContentType: "image/jpeg", Optimized: true}
		}).
		AnyTimes()
}

// createCall records what the repository saw inside the creation transaction.
type createCall struct {
	incident *domain.Incident
	photos   []*domain.Photograph
	ingested bool
}

// expectCreate makes CreateWithPhotographs assign id, run ingest and then
// return commitErr, the way the store fails a photograph insert or commit.
func (h *harness) expectCreate(id int64, commitErr error) *createCall {
	call := &createCall{}
	h.repo.EXPECT().CreateWithPhotographs(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, inc *domain.Incident, ingest func(context.Context, int64) ([]*domain.Photograph, error)) error {
			inc.ID = id
			call.incident = inc
			call.ingested = true
			photos, err := ingest(ctx, id)
			if err != nil {
				return err
			}
			if commitErr != nil {
				return commitErr
			}
			for i, p := range photos {
				p.ID = id*100 + int64(i) + 1
			}
			call.photos = photos
			return nil
		}).
		Times(1)
	return call
}

func pngPhoto(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 180, G: 40, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func strptr(s string) *string { return &s }
func i64ptr(v int64) *int64   { return &v }
