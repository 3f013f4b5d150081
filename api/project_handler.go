package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/studioflow/portfolio-backend/appwrite"
	"github.com/studioflow/portfolio-backend/config"
	"github.com/studioflow/portfolio-backend/content"
	"github.com/studioflow/portfolio-backend/errs"
	"github.com/studioflow/portfolio-backend/models"
)

type projectHandler struct {
	responder  Responder
	logger     zerolog.Logger
	projects   *content.ProjectService
	skills     *content.SkillService
	store      *appwrite.Client
	collection string
}

func newProjectHandler(projects *content.ProjectService, skills *content.SkillService, store *appwrite.Client, cfg config.Appwrite) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		projects:   projects,
		skills:     skills,
		store:      store,
		collection: cfg.ProjectsCollection,
	}
}

// listProjects serves the public project listing. Store failures degrade to
// an empty listing inside the resolution service, so this always responds 200.
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filter := content.ProjectFilter{
			Featured: query.Get("featured") == "true",
			Tech:     query.Get("tech"),
		}
		if limit, err := strconv.Atoi(query.Get("limit")); err == nil && limit > 0 {
			filter.Limit = limit
		}
		if offset, err := strconv.Atoi(query.Get("offset")); err == nil && offset > 0 {
			filter.Offset = offset
		}

		listing := h.projects.ListProjects(r.Context(), filter)
		h.responder.WriteJSON(w, listing)
	}
}

// getProjectBySlug serves the public project detail view with linked skills
// joined in.
func (h projectHandler) getProjectBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		view := h.projects.GetProjectBySlug(r.Context(), slug)
		if view == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		if len(view.Skills) > 0 {
			view.LinkedSkills = h.skills.ResolveLinkedSkills(r.Context(), view.Skills)
		}

		h.responder.WriteJSON(w, view)
	}
}

// listSlugs enumerates all project slugs for static path generation.
func (h projectHandler) listSlugs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slugs := h.projects.ListSlugs(r.Context())
		h.responder.WriteJSON(w, map[string]any{"slugs": slugs})
	}
}

// listAllProjects is the administrative listing; unlike the public one it
// includes unpublished documents.
func (h projectHandler) listAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listing := h.projects.ListProjects(r.Context(), content.ProjectFilter{IncludeUnpublished: true})
		h.responder.WriteJSON(w, listing)
	}
}

// createProject creates a new project document
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.ProjectInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if input.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if input.Slug == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("slug"))
			return
		}

		if input.Date == "" {
			input.Date = time.Now().UTC().Format(time.RFC3339)
		}

		doc, err := h.store.CreateDocument(r.Context(), h.collection, input)
		if err != nil {
			h.responder.WriteError(w, wrapStoreError("create", "project", err))
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
		if _, err := w.Write(doc); err != nil {
			h.logger.Error().Err(err).Msg("error writing response")
		}
	}
}

// updateProject patches an existing project; the target ID comes from the
// `id` query parameter. System-managed fields in the payload are stripped
// before the update is forwarded.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		if id == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("project ID is required"))
			return
		}

		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		payload = models.StripSystemFields(payload)

		doc, err := h.store.UpdateDocument(r.Context(), h.collection, id, payload)
		if err != nil {
			h.responder.WriteError(w, wrapStoreError("update", "project", err))
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if _, err := w.Write(doc); err != nil {
			h.logger.Error().Err(err).Msg("error writing response")
		}
	}
}

// deleteProject removes a project document by the `id` query parameter.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		if id == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("project ID is required"))
			return
		}

		if err := h.store.DeleteDocument(r.Context(), h.collection, id); err != nil {
			h.responder.WriteError(w, wrapStoreError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"success": true})
	}
}
