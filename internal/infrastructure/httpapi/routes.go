package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/ersonp/regnal/internal/application/handlers"
	"github.com/ersonp/regnal/internal/domain/entities"
)

type api struct {
	h   Handlers
	log *slog.Logger
}

func (a *api) health(w http.ResponseWriter, _ *http.Request) {
	OK(w, map[string]string{"status": "ok"})
}

// GET /api/v1/rulers?q=&era=&religion=&group_by=&sort_by=&order=
func (a *api) listRulers(w http.ResponseWriter, r *http.Request) {
	params, err := parseViewParams(r.URL.Query(), a.h.DefaultView)
	if err != nil {
		Error(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	result, err := a.h.View.Handle(r.Context(), params)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	OK(w, result)
}

// GET /api/v1/rulers/{id}
func (a *api) getRuler(w http.ResponseWriter, r *http.Request) {
	profile, err := a.h.Detail.Handle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	OK(w, profile)
}

// GET /api/v1/dynasties
func (a *api) listDynasties(w http.ResponseWriter, r *http.Request) {
	dynasties, err := a.h.Timeline.HandleDynasties(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	OK(w, dynasties)
}

// GET /api/v1/timeline
func (a *api) timeline(w http.ResponseWriter, r *http.Request) {
	result, err := a.h.Timeline.Handle(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	OK(w, result.Timeline)
}

// GET /api/v1/stats
func (a *api) stats(w http.ResponseWriter, r *http.Request) {
	result, err := a.h.Stats.Handle(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	OK(w, result)
}

// writeError maps handler errors onto HTTP statuses.
func (a *api) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, handlers.ErrRulerNotFound):
		Error(w, http.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, handlers.ErrInvalidParams):
		Error(w, http.StatusBadRequest, CodeBadRequest, err.Error())
	default:
		a.log.ErrorContext(r.Context(), "request failed",
			slog.String("request_id", RequestIDFromContext(r.Context())),
			slog.Any("error", err),
		)
		Error(w, http.StatusInternalServerError, CodeInternal, "internal error")
	}
}

// parseViewParams overlays query values on defaults. Absent keys keep the default.
func parseViewParams(q url.Values, defaults entities.ViewParams) (entities.ViewParams, error) {
	params := defaults
	var err error

	if q.Has("q") {
		params.Search = q.Get("q")
	}
	if q.Has("era") {
		if params.Era, err = entities.ParseEraFilter(q.Get("era")); err != nil {
			return params, err
		}
	}
	if q.Has("religion") {
		if params.Religion, err = entities.ParseReligionFilter(q.Get("religion")); err != nil {
			return params, err
		}
	}
	if q.Has("group_by") {
		if params.GroupBy, err = entities.ParseGroupBy(q.Get("group_by")); err != nil {
			return params, err
		}
	}
	if q.Has("sort_by") {
		if params.SortBy, err = entities.ParseSortBy(q.Get("sort_by")); err != nil {
			return params, err
		}
	}
	if q.Has("order") {
		if params.SortOrder, err = entities.ParseSortOrder(q.Get("order")); err != nil {
			return params, err
		}
	}
	return params, nil
}
