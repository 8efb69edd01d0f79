package incidents

import (
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mariomediam/maps-backend/internal/domain"
	"github.com/mariomediam/maps-backend/internal/middleware"
	"github.com/mariomediam/maps-backend/internal/render"
	"github.com/mariomediam/maps-backend/pkg/e"
	"github.com/mariomediam/maps-backend/pkg/params"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	var ve *e.ValidationError
	switch {
	case errors.Is(err, errBodyTooLarge):
		l.Warn("request body too large", slog.Int64("limit", h.maxUploadBytes))
		render.Error(w, http.StatusRequestEntityTooLarge, "request too large", "Uploaded files exceed the size limit")
		return
	case errors.As(err, &ve):
		l.Warn("validation failed", slog.String("path", r.URL.Path), slog.Any("error", err))
		render.Error(w, http.StatusBadRequest, "invalid input", ve.Reason, ve.Fields...)
		return
	case errors.Is(err, e.ErrInvalidInput):
		l.Warn("invalid input", slog.String("path", r.URL.Path), slog.Any("error", err))
		render.Error(w, http.StatusBadRequest, "invalid input", "Request references unknown or invalid data")
		return
	case errors.Is(err, e.ErrNotFound):
		l.Info("not found", slog.String("path", r.URL.Path), slog.Any("error", err))
		render.Error(w, http.StatusNotFound, "not found", "Resource not found")
		return
	case errors.Is(err, e.ErrUnauthorized):
		render.Error(w, http.StatusUnauthorized, "unauthorized", "Authentication credentials were not provided or are invalid")
		return
	}

	l.Error("handler error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	if errors.Is(err, e.ErrUpload) {
		render.Error(w, http.StatusInternalServerError, "upload failed", "Failed to store the incident photos")
		return
	}
	render.Error(w, http.StatusInternalServerError, "internal error", "Internal server error")
}

var fileFields = []string{"files", "files[]"}

var errBodyTooLarge = errors.New("request body too large")

func (h *Handler) parseSubmission(w http.ResponseWriter, r *http.Request) (domain.Submission, error) {
	var sub domain.Submission

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		// multipart does not always wrap the reader error.
		if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
			return sub, errBodyTooLarge
		}
		if !errors.Is(err, http.ErrNotMultipart) {
			return sub, e.NewValidationError("invalid multipart form")
		}
		if err := r.ParseForm(); err != nil {
			return sub, e.NewValidationError("invalid form")
		}
	}

	var invalid []string
	form := r.PostForm

	if id, ok := params.ParseID(form.Get("category_id")); ok {
		sub.CategoryID = id
	} else {
		invalid = append(invalid, "category_id")
	}
	if lat, err := decimal.NewFromString(strings.TrimSpace(form.Get("latitude"))); err == nil {
		sub.Latitude = lat
	} else {
		invalid = append(invalid, "latitude")
	}
	if lng, err := decimal.NewFromString(strings.TrimSpace(form.Get("longitude"))); err == nil {
		sub.Longitude = lng
	} else {
		invalid = append(invalid, "longitude")
	}
	if len(invalid) > 0 {
		return sub, e.NewValidationError("missing or malformed fields", invalid...)
	}

	sub.Summary = form.Get("summary")
	sub.Reference = form.Get("reference")

	if username, ok := middleware.Username(r.Context()); ok {
		sub.Submitter = domain.InspectorSubmitter{Username: username}
	} else {
		sub.Submitter = domain.CitizenSubmitter{
			Name:     form.Get("citizen_name"),
			Lastname: formValue(form, "citizen_lastname"),
			Phone:    formValue(form, "citizen_phone"),
			Email:    formValue(form, "citizen_email"),
		}
	}

	if r.MultipartForm != nil {
		for _, field := range fileFields {
			for _, fh := range r.MultipartForm.File[field] {
				photo, err := readPhoto(fh)
				if err != nil {
					return sub, e.NewValidationError("unreadable file", field)
				}
				sub.Photos = append(sub.Photos, photo)
			}
		}
	}

	return sub, nil
}

func readPhoto(fh *multipart.FileHeader) (domain.PhotoUpload, error) {
	f, err := fh.Open()
	if err != nil {
		return domain.PhotoUpload{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return domain.PhotoUpload{}, err
	}

	ct := fh.Header.Get("Content-Type")
	if ct == "" || ct == "application/octet-stream" {
		ct = http.DetectContentType(data)
	}
	return domain.PhotoUpload{Filename: fh.Filename, ContentType: ct, Data: data}, nil
}

// formValue is nil for absent or blank values.
func formValue(form url.Values, key string) *string {
	v := strings.TrimSpace(form.Get(key))
	if v == "" {
		return nil
	}
	return &v
}

func parseFilter(q url.Values) (domain.IncidentFilter, error) {
	var (
		f       domain.IncidentFilter
		invalid []string
	)

	if v := q.Get("id_category"); v != "" {
		if id, ok := params.ParseID(v); ok {
			f.CategoryID = &id
		} else {
			invalid = append(invalid, "id_category")
		}
	}
	if v := q.Get("id_state"); v != "" {
		if id, ok := params.ParseID(v); ok {
			state := int(id)
			f.StateID = &state
		} else {
			invalid = append(invalid, "id_state")
		}
	}
	if v := q.Get("show_on_map"); v != "" {
		if b, ok := params.ParseBool(v); ok {
			f.ShowOnMap = &b
		} else {
			invalid = append(invalid, "show_on_map")
		}
	}
	if v := q.Get("id_incident"); v != "" {
		if id, ok := params.ParseID(v); ok {
			f.IncidentID = &id
		} else {
			invalid = append(invalid, "id_incident")
		}
	}
	if v := q.Get("from_date"); v != "" {
		if t, ok := params.ParseDate(v, false); ok {
			f.From = &t
		} else {
			invalid = append(invalid, "from_date")
		}
	}
	if v := q.Get("to_date"); v != "" {
		if t, ok := params.ParseDate(v, true); ok {
			f.To = &t
		} else {
			invalid = append(invalid, "to_date")
		}
	}
	f.TextSearch = strings.TrimSpace(q.Get("text_search"))

	if len(invalid) > 0 {
		return f, e.NewValidationError("invalid filters", invalid...)
	}
	return f, nil
}
