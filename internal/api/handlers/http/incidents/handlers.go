package incidents

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/mariomediam/maps-backend/internal/domain"
	"github.com/mariomediam/maps-backend/internal/middleware"
	"github.com/mariomediam/maps-backend/internal/render"
	"github.com/mariomediam/maps-backend/internal/service"
	"github.com/mariomediam/maps-backend/pkg/params"
)

type Handler struct {
	logger         *slog.Logger
	Incidents      service.IncidentService
	maxUploadBytes int64
}

func NewHandler(logger *slog.Logger, incidents service.IncidentService, maxUploadBytes int64) *Handler {
	return &Handler{
		logger:         logger,
		Incidents:      incidents,
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// IncidentCreate takes a multipart submission. A valid bearer token makes the
// submitter an inspector; otherwise the citizen_* fields are used.
func (h *Handler) IncidentCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("IncidentCreate", slog.String("remote", r.RemoteAddr))

	sub, err := h.parseSubmission(w, r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("creating incident",
		slog.Int64("category_id", sub.CategoryID),
		slog.String("latitude", sub.Latitude.String()),
		slog.String("longitude", sub.Longitude.String()),
		slog.String("user_type", string(sub.Submitter.Kind())),
		slog.Int("photos", len(sub.Photos)),
	)

	inc, err := h.Incidents.Create(r.Context(), sub)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("incident created", slog.Int64("id", inc.ID))
	render.Content(w, http.StatusCreated, "Incident added successfully", inc)
}

func (h *Handler) IncidentList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("IncidentList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	incidents, err := h.Incidents.List(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("incidents listed", slog.Int("count", len(incidents)))
	render.Content(w, http.StatusOK, "Incidents retrieved successfully", incidents)
}

func (h *Handler) IncidentGet(w http.ResponseWriter, r *http.Request) {
	h.log(r).Debug("IncidentGet", slog.String("remote", r.RemoteAddr))

	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	inc, err := h.Incidents.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	render.Content(w, http.StatusOK, fmt.Sprintf("Incident with ID %d", id), inc)
}

func (h *Handler) IncidentUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("IncidentUpdate", slog.String("remote", r.RemoteAddr))

	username, ok := middleware.Username(r.Context())
	if !ok {
		render.Error(w, http.StatusUnauthorized, "unauthorized", "Authentication credentials were not provided or are invalid")
		return
	}

	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var patch domain.IncidentPatch
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&patch); err != nil || patch == nil {
		l.Warn("invalid JSON", slog.Any("error", err))
		render.Error(w, http.StatusBadRequest, "invalid JSON", "Request body must be a JSON object")
		return
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		render.Error(w, http.StatusBadRequest, "invalid JSON", "Request body must contain a single JSON object")
		return
	}

	inc, err := h.Incidents.UpdatePartial(r.Context(), id, patch, username)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("incident updated", slog.Int64("id", id), slog.String("user", username))
	render.Content(w, http.StatusOK, "Incident updated successfully", inc)
}

func (h *Handler) PhotographGet(w http.ResponseWriter, r *http.Request) {
	h.log(r).Debug("PhotographGet", slog.String("remote", r.RemoteAddr))

	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	photo, err := h.Incidents.Photograph(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	render.Content(w, http.StatusOK, fmt.Sprintf("Photography with ID %d", id), photo)
}

func (h *Handler) MiniatureGet(w http.ResponseWriter, r *http.Request) {
	h.log(r).Debug("MiniatureGet", slog.String("remote", r.RemoteAddr))

	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	url, err := h.Incidents.MiniatureURL(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, map[string]*string{"url": url})
}

// IncidentMap serves a GeoJSON FeatureCollection of the public incidents and
// honours the same filters as IncidentList.
func (h *Handler) IncidentMap(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("IncidentMap", slog.String("query", r.URL.RawQuery))

	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	fc, err := h.Incidents.MapFeed(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(fc); err != nil {
		l.Error("geojson encode failed", slog.Any("error", err))
	}
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, key string) (int64, bool) {
	raw := chi.URLParam(r, key)
	id, ok := params.ParseID(raw)
	if !ok {
		h.log(r).Warn("invalid id", slog.String("id", raw))
		render.Error(w, http.StatusBadRequest, "invalid id", "Identifier must be a positive integer")
	}
	return id, ok
}
