package configs

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/agent-adapters/internal/adapters"
	"github.com/JaimeStill/agent-adapters/pkg/handlers"
	"github.com/JaimeStill/agent-adapters/pkg/pagination"
	"github.com/JaimeStill/agent-adapters/pkg/routes"
	"github.com/google/uuid"
)

// Handler provides HTTP handlers for config CRUD and conversion endpoints.
type Handler struct {
	svc        *Service
	logger     *slog.Logger
	pagination pagination.Config
}

func NewHandler(svc *Service, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		svc:        svc,
		logger:     logger.With("handler", "configs"),
		pagination: pagination,
	}
}

// Routes returns the route groups served by the handler. Prefixes are
// relative to the API base path.
func (h *Handler) Routes() []routes.Group {
	return []routes.Group{
		{
			Prefix:      "/configs",
			Tags:        []string{"Configs"},
			Description: "Stored agent configurations",
			Routes: []routes.Route{
				{Method: "GET", Pattern: "", Handler: h.List},
				{Method: "POST", Pattern: "", Handler: h.Create},
				{Method: "GET", Pattern: "/{id}", Handler: h.Find},
				{Method: "PUT", Pattern: "/{id}", Handler: h.Update},
				{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete},
			},
			Children: []routes.Group{
				{
					Prefix:      "/{id}/conversions",
					Tags:        []string{"Conversions"},
					Description: "Stored configs rendered in other formats",
					Routes: []routes.Route{
						{Method: "GET", Pattern: "", Handler: h.Conversions},
						{Method: "GET", Pattern: "/{format}", Handler: h.Conversion},
					},
				},
			},
		},
		{
			Prefix:      "/convert",
			Tags:        []string{"Conversions"},
			Description: "Ad-hoc conversion of unsaved text",
			Routes: []routes.Route{
				{Method: "POST", Pattern: "", Handler: h.ConvertText},
			},
		},
		{
			Prefix:      "/formats",
			Tags:        []string{"Formats"},
			Description: "Known formats and supported conversions",
			Routes: []routes.Route{
				{Method: "GET", Pattern: "", Handler: h.Formats},
			},
		},
	}
}

// List handles GET /configs.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.svc.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find handles GET /configs/{id}.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	result, err := h.svc.Find(r.Context(), id)
	if !h.found(w, result != nil, id, err) {
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create handles POST /configs.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.svc.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update handles PUT /configs/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var cmd UpdateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.svc.Update(r.Context(), id, cmd)
	if !h.found(w, result != nil, id, err) {
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete handles DELETE /configs/{id}. Unknown ids are not an error.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Conversions handles GET /configs/{id}/conversions.
func (h *Handler) Conversions(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	result, err := h.svc.FindWithConversions(r.Context(), id)
	if !h.found(w, result != nil, id, err) {
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Conversion handles GET /configs/{id}/conversions/{format} and writes the
// converted document as the response body.
func (h *Handler) Conversion(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	format, err := adapters.ParseFormat(r.PathValue("format"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	cfg, err := h.svc.Find(r.Context(), id)
	if !h.found(w, cfg != nil, id, err) {
		return
	}

	out, err := h.svc.Convert(r.Context(), cfg, format)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondText(w, http.StatusOK, format.ContentType(), out)
}

// ConvertText handles POST /convert.
func (h *Handler) ConvertText(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.svc.ConvertText(req)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Formats handles GET /formats.
func (h *Handler) Formats(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.svc.Capabilities())
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: id: %v", ErrInvalidConfig, err))
		return uuid.Nil, false
	}
	return id, true
}

// found writes an error response when err is set or the lookup came back empty.
func (h *Handler) found(w http.ResponseWriter, present bool, id uuid.UUID, err error) bool {
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return false
	}
	if !present {
		handlers.RespondError(w, h.logger, http.StatusNotFound, fmt.Errorf("%w: %s", ErrNotFound, id))
		return false
	}
	return true
}
