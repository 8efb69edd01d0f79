package service

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/mariomediam/maps-backend/internal/domain"
	"github.com/mariomediam/maps-backend/pkg/e"
)

func patchOf(t *testing.T, body string) domain.IncidentPatch {
	t.Helper()
	var p domain.IncidentPatch
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatalf("bad patch fixture: %v", err)
	}
	return p
}

func TestDecodePatch_RejectsUnknownFieldsFirst(t *testing.T) {
	t.Parallel()

	// derivation_document is also invalid, but the whitelist wins.
	_, err := decodePatch(domain.IncidentPatch{
		"summary":             json.RawMessage(`"x"`),
		"category":            json.RawMessage(`2`),
		"is_closed":           json.RawMessage(`true`),
		"derivation_document": json.RawMessage(`"123456789"`),
	})

	var ve *e.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !reflect.DeepEqual(ve.Fields, []string{"category", "summary"}) {
		t.Fatalf("expected [category summary], got %v", ve.Fields)
	}
}

func TestDecodePatch_InvalidValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"derivation document too long", `{"derivation_document":"123456789"}`, "derivation_document"},
		{"is_closed not a bool", `{"is_closed":"yes"}`, "is_closed"},
		{"is_closed null", `{"is_closed":null}`, "is_closed"},
		{"show_on_map not a bool", `{"show_on_map":1}`, "show_on_map"},
		{"priority not a number", `{"priority":"high"}`, "priority"},
		{"priority zero", `{"priority":0}`, "priority"},
		{"closure type negative", `{"closure_type":-3}`, "closure_type"},
		{"closure description object", `{"closure_description":{"a":1}}`, "closure_description"},
		{"closure description true", `{"closure_description":true}`, "closure_description"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			_, err := decodePatch(patchOf(t, c.body))
			var ve *e.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if !reflect.DeepEqual(ve.Fields, []string{c.field}) {
				t.Fatalf("expected [%s], got %v", c.field, ve.Fields)
			}
		})
	}
}

func TestDecodePatch_FalsyTextClears(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{`null`, `""`, `false`, `0`} {
		c, err := decodePatch(domain.IncidentPatch{domain.PatchClosureDescription: json.RawMessage(raw)})
		if err != nil {
			t.Fatalf("%s: unexpected err: %v", raw, err)
		}
		if !c.closureDescription.present || c.closureDescription.value != nil {
			t.Fatalf("%s: expected a present NULL, got %+v", raw, c.closureDescription)
		}
	}

	c, err := decodePatch(patchOf(t, `{"derivation_document":"OF-12345"}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.derivationDocument.value == nil || *c.derivationDocument.value != "OF-12345" {
		t.Fatalf("expected derivation document to be set, got %+v", c.derivationDocument)
	}
}

func TestApply_ClosureStamping(t *testing.T) {
	t.Parallel()

	actor := &domain.User{ID: 7, Username: "inspector1"}
	earlier := fixedNow.Add(-48 * time.Hour)
	closer := int64(3)

	t.Run("first close stamps", func(t *testing.T) {
		inc := &domain.Incident{ID: 1}
		c, _ := decodePatch(patchOf(t, `{"is_closed":true}`))

		if !c.apply(inc, actor, fixedNow) {
			t.Fatalf("expected the first close to be reported")
		}
		if !inc.IsClosed || inc.ClosureDate == nil || !inc.ClosureDate.Equal(fixedNow) {
			t.Fatalf("expected closure stamp at %v, got %+v", fixedNow, inc.ClosureDate)
		}
		if inc.ClosureUserID == nil || *inc.ClosureUserID != 7 {
			t.Fatalf("expected closure user 7, got %v", inc.ClosureUserID)
		}
	})

	t.Run("re-close keeps stamp", func(t *testing.T) {
		inc := &domain.Incident{ID: 1, IsClosed: true, ClosureDate: &earlier, ClosureUserID: &closer}
		c, _ := decodePatch(patchOf(t, `{"is_closed":true}`))

		if c.apply(inc, actor, fixedNow) {
			t.Fatalf("re-close must not be reported as a new close")
		}
		if !inc.ClosureDate.Equal(earlier) || *inc.ClosureUserID != 3 {
			t.Fatalf("closure stamp changed: %v %v", inc.ClosureDate, *inc.ClosureUserID)
		}
	})

	t.Run("reopen only clears the flag", func(t *testing.T) {
		inc := &domain.Incident{ID: 1, IsClosed: true, ClosureDate: &earlier, ClosureUserID: &closer}
		c, _ := decodePatch(patchOf(t, `{"is_closed":false}`))

		c.apply(inc, actor, fixedNow)
		if inc.IsClosed {
			t.Fatalf("expected incident to be reopened")
		}
		if inc.ClosureDate == nil || inc.ClosureUserID == nil {
			t.Fatalf("reopen must keep the historical stamp")
		}
	})

	t.Run("absent keys untouched", func(t *testing.T) {
		prio := int64(2)
		doc := "OF-1"
		inc := &domain.Incident{ID: 1, PriorityID: &prio, DerivationDocument: &doc}
		c, _ := decodePatch(patchOf(t, `{"closure_type":4}`))

		c.apply(inc, actor, fixedNow)
		if inc.PriorityID != &prio || inc.DerivationDocument != &doc {
			t.Fatalf("absent keys must not be touched")
		}
		if inc.ClosureTypeID == nil || *inc.ClosureTypeID != 4 {
			t.Fatalf("expected closure type 4, got %v", inc.ClosureTypeID)
		}
	})
}

func TestUpdatePartial_CloseEmitsEvents(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()

	stored := &domain.Incident{ID: 5, UserType: domain.SubmitterCitizen}
	var saved domain.Incident

	h.repo.EXPECT().Get(gomock.Any(), int64(5)).Return(stored, nil)
	h.repo.EXPECT().UserByUsername(gomock.Any(), "inspector1").Return(&domain.User{ID: 7, Username: "inspector1"}, nil)
	h.repo.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *domain.Incident) error {
			saved = *inc
			return nil
		})
	h.repo.EXPECT().Get(gomock.Any(), int64(5)).
		DoAndReturn(func(context.Context, int64) (*domain.Incident, error) {
			cp := saved
			return &cp, nil
		})

	var types []domain.EventType
	h.events.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev domain.IncidentEvent) error {
			types = append(types, ev.Type)
			if ev.Actor != "inspector1" {
				t.Fatalf("expected actor inspector1, got %q", ev.Actor)
			}
			return nil
		}).
		Times(2)

	got, err := h.svc.UpdatePartial(ctx, 5, patchOf(t, `{"is_closed":true,"priority":null,"show_on_map":true,"closure_description":"Fixed"}`), "inspector1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if !reflect.DeepEqual(types, []domain.EventType{domain.EventIncidentUpdated, domain.EventIncidentClosed}) {
		t.Fatalf("unexpected events %v", types)
	}
	if got.IDState != domain.StateResolved {
		t.Fatalf("expected resolved, got %d", got.IDState)
	}
	if saved.ShowOnMap {
		t.Fatalf("show_on_map must follow the citizen user_type")
	}
	if saved.ClosureDate == nil || !saved.ClosureDate.Equal(fixedNow) {
		t.Fatalf("expected closure date %v, got %v", fixedNow, saved.ClosureDate)
	}
	if saved.ClosureDescription == nil || *saved.ClosureDescription != "Fixed" {
		t.Fatalf("expected closure description, got %v", saved.ClosureDescription)
	}
}

func TestUpdatePartial_PriorityMovesToInProcess(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.svc.events = nil

	stored := &domain.Incident{ID: 6, UserType: domain.SubmitterInspector}
	h.repo.EXPECT().Get(gomock.Any(), int64(6)).Return(stored, nil).Times(2)
	h.repo.EXPECT().UserByUsername(gomock.Any(), "inspector1").Return(&domain.User{ID: 7, Username: "inspector1"}, nil)
	h.repo.EXPECT().Update(gomock.Any(), stored).Return(nil)

	got, err := h.svc.UpdatePartial(context.Background(), 6, patchOf(t, `{"priority":2}`), "inspector1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.IDState != domain.StateInProcess {
		t.Fatalf("expected in process, got %d", got.IDState)
	}
	if !got.ShowOnMap {
		t.Fatalf("inspector incidents stay on the map")
	}
}

func TestUpdatePartial_RejectsBeforeTouchingStorage(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	// No repo expectations: any storage call fails the test.

	_, err := h.svc.UpdatePartial(context.Background(), 5, patchOf(t, `{"summary":"x"}`), "inspector1")
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	_, err = h.svc.UpdatePartial(context.Background(), 5, patchOf(t, `{"derivation_document":"123456789"}`), "inspector1")
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdatePartial_NotFound(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.repo.EXPECT().Get(gomock.Any(), int64(99)).Return(nil, e.WrapError(context.Background(), "postgres.Incident.Get", pgxNoRows))

	_, err := h.svc.UpdatePartial(context.Background(), 99, patchOf(t, `{"is_closed":true}`), "inspector1")
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
