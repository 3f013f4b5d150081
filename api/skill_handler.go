package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/studioflow/portfolio-backend/appwrite"
	"github.com/studioflow/portfolio-backend/config"
	"github.com/studioflow/portfolio-backend/content"
	"github.com/studioflow/portfolio-backend/errs"
	"github.com/studioflow/portfolio-backend/models"
)

type skillHandler struct {
	responder  Responder
	logger     zerolog.Logger
	skills     *content.SkillService
	store      *appwrite.Client
	collection string
}

func newSkillHandler(skills *content.SkillService, store *appwrite.Client, cfg config.Appwrite) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		skills:     skills,
		store:      store,
		collection: cfg.SkillsCollection,
	}
}

// listSkills serves the public skill listing, optionally filtered by category
// and featured flag, and grouped by category when `grouped=true`.
func (h skillHandler) listSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filter := content.SkillFilter{
			Category: models.SkillCategory(query.Get("category")),
			Featured: query.Get("featured") == "true",
		}
		if limit, err := strconv.Atoi(query.Get("limit")); err == nil && limit > 0 {
			filter.Limit = limit
		}

		var listing content.SkillListing
		if filter.Category == "" && !filter.Featured && filter.Limit == 0 {
			listing = h.skills.ListAllSkills(r.Context())
		} else {
			listing = h.skills.ListSkills(r.Context(), filter)
		}

		if query.Get("grouped") == "true" {
			h.responder.WriteJSON(w, map[string]any{
				"groups": content.GroupByCategory(listing.Skills),
				"total":  listing.Total,
			})
			return
		}

		h.responder.WriteJSON(w, listing)
	}
}

// createSkill creates a new skill document
func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.SkillInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode skill request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if input.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if input.Slug == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("slug"))
			return
		}

		doc, err := h.store.CreateDocument(r.Context(), h.collection, input)
		if err != nil {
			h.responder.WriteError(w, wrapStoreError("create", "skill", err))
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
		if _, err := w.Write(doc); err != nil {
			h.logger.Error().Err(err).Msg("error writing response")
		}
	}
}

// updateSkill patches an existing skill; the target ID comes from the `id`
// query parameter.
func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		if id == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("skill ID is required"))
			return
		}

		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode skill request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		payload = models.StripSystemFields(payload)

		doc, err := h.store.UpdateDocument(r.Context(), h.collection, id, payload)
		if err != nil {
			h.responder.WriteError(w, wrapStoreError("update", "skill", err))
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if _, err := w.Write(doc); err != nil {
			h.logger.Error().Err(err).Msg("error writing response")
		}
	}
}

// deleteSkill removes a skill document by the `id` query parameter. Projects
// referencing the skill keep their dangling reference; the cross-reference
// joiner tolerates it on read.
func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		if id == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("skill ID is required"))
			return
		}

		if err := h.store.DeleteDocument(r.Context(), h.collection, id); err != nil {
			h.responder.WriteError(w, wrapStoreError("delete", "skill", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"success": true})
	}
}
