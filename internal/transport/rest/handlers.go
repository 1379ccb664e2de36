package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sandevgo/tuskmem/internal/core"
	"github.com/sandevgo/tuskmem/internal/service/memory"
	"github.com/sandevgo/tuskmem/pkg/humantime"
	"github.com/sandevgo/tuskmem/pkg/log"
)

const maxBodyBytes = 64 << 10

type handlers struct {
	browser   Browser
	actions   core.DashboardActions
	formatter *humantime.Formatter
}

type filterRequest struct {
	Search   string `json:"search" validate:"max=1000"`
	Category string `json:"category" validate:"omitempty,oneof=all personal work learning project insight"`
}

type memoriesResponse struct {
	Memories  []memory.Entry `json:"memories"`
	Total     int            `json:"total"`
	Timestamp time.Time      `json:"timestamp"`
}

type healthResponse struct {
	Status    string          `json:"status"`
	Timestamp time.Time       `json:"timestamp"`
	Services  map[string]bool `json:"services"`
}

type actionResponse struct {
	Action      core.Action `json:"action"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Error       string      `json:"error,omitempty"`
}

func (h *handlers) now() time.Time {
	if h.formatter.Now != nil {
		return h.formatter.Now().UTC()
	}
	return time.Now().UTC()
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	sourceOK := true
	if err := h.browser.Ping(r.Context()); err != nil {
		log.FromCtx(r.Context()).Warn().Err(err).Msg("health check: source unavailable")
		sourceOK = false
	}

	status := "healthy"
	if !sourceOK {
		status = "degraded"
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:    status,
		Timestamp: h.now(),
		Services:  map[string]bool{"source": sourceOK},
	})
}

func (h *handlers) listMemories(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.serveFiltered(w, r, filterRequest{
		Search:   q.Get("search"),
		Category: q.Get("category"),
	})
}

func (h *handlers) searchMemories(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.serveFiltered(w, r, req)
}

func (h *handlers) serveFiltered(w http.ResponseWriter, r *http.Request, req filterRequest) {
	if err := ValidateStruct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	state, err := core.NewFilterState(req.Search, req.Category)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	memories, err := h.browser.List(r.Context(), state)
	if err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Msg("failed to list memories")
		if errors.Is(err, core.ErrSourceUnavailable) {
			writeError(w, http.StatusServiceUnavailable, core.ErrSourceUnavailable.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, memoriesResponse{
		Memories:  memory.Entries(memories, h.formatter),
		Total:     len(memories),
		Timestamp: h.now(),
	})
}

func (h *handlers) triggerAction(w http.ResponseWriter, r *http.Request) {
	action, err := core.ParseAction(chi.URLParam(r, "action"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	resp := actionResponse{
		Action:      action,
		Title:       action.Title(),
		Description: action.Description(),
	}

	err = core.RunAction(r.Context(), h.actions, action)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, resp)
	case errors.Is(err, core.ErrNotImplemented):
		resp.Error = core.ErrNotImplemented.Error()
		writeJSON(w, http.StatusNotImplemented, resp)
	default:
		log.FromCtx(r.Context()).Error().Err(err).Str("action", string(action)).Msg("action failed")
		resp.Error = err.Error()
		writeJSON(w, http.StatusInternalServerError, resp)
	}
}
