package lookups

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/mariomediam/maps-backend/internal/render"
	"github.com/mariomediam/maps-backend/internal/service"
	"github.com/mariomediam/maps-backend/pkg/e"
	"github.com/mariomediam/maps-backend/pkg/params"
)

type Handler struct {
	logger  *slog.Logger
	Lookups service.LookupService
}

func NewHandler(logger *slog.Logger, lookups service.LookupService) *Handler {
	return &Handler{logger: logger, Lookups: lookups}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// CategoryList filters on is_active when it parses as a flexible boolean;
// any other value lists every category.
func (h *Handler) CategoryList(w http.ResponseWriter, r *http.Request) {
	var isActive *bool
	message := "All categories"
	if v, ok := params.ParseBool(r.URL.Query().Get("is_active")); ok {
		isActive = &v
		message = fmt.Sprintf("Categories filtered by is_active=%t", v)
	}

	categories, err := h.Lookups.Categories(r.Context(), isActive)
	if err != nil {
		h.handleError(w, r, err, "Failed to retrieve categories")
		return
	}
	render.Content(w, http.StatusOK, message, categories)
}

func (h *Handler) CategoryGet(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, ok := params.ParseID(raw)
	if !ok {
		h.log(r).Warn("invalid id", slog.String("id", raw))
		render.Error(w, http.StatusBadRequest, "invalid id", "Identifier must be a positive integer")
		return
	}

	category, err := h.Lookups.Category(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err, "Failed to retrieve category")
		return
	}
	render.Content(w, http.StatusOK, fmt.Sprintf("Category with ID %d", id), category)
}

func (h *Handler) PriorityList(w http.ResponseWriter, r *http.Request) {
	priorities, err := h.Lookups.Priorities(r.Context())
	if err != nil {
		h.handleError(w, r, err, "Failed to retrieve priorities")
		return
	}
	render.Content(w, http.StatusOK, "All priorities", priorities)
}

func (h *Handler) ClosureTypeList(w http.ResponseWriter, r *http.Request) {
	types, err := h.Lookups.ClosureTypes(r.Context())
	if err != nil {
		h.handleError(w, r, err, "Failed to retrieve closure types")
		return
	}
	render.Content(w, http.StatusOK, "All closure types", types)
}

func (h *Handler) StateList(w http.ResponseWriter, r *http.Request) {
	render.Content(w, http.StatusOK, "All states", h.Lookups.States())
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error, message string) {
	if errors.Is(err, e.ErrNotFound) {
		render.Error(w, http.StatusNotFound, "not found", "Resource not found")
		return
	}
	h.log(r).Error("handler error", slog.String("path", r.URL.Path), slog.Any("error", err))
	render.Error(w, http.StatusInternalServerError, "internal error", message)
}
