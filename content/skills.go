package content

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/studioflow/portfolio-backend/appwrite"
	"github.com/studioflow/portfolio-backend/config"
	"github.com/studioflow/portfolio-backend/models"
)

// allSkillsLimit is generous for the expected corpus; no cursor loop is
// needed until the skill count approaches it.
const allSkillsLimit = 100

// SkillFilter narrows a skill listing.
type SkillFilter struct {
	Category models.SkillCategory
	Featured bool
	Limit    int
}

// SkillService resolves persisted skill documents into view models, with the
// same fail-soft policy as the project service.
type SkillService struct {
	store      *appwrite.Client
	collection string
	images     *ImageResolver
	logger     zerolog.Logger
}

func NewSkillService(store *appwrite.Client, cfg config.Appwrite, images *ImageResolver) *SkillService {
	logger := log.With().Str("serviceName", "skillService").Logger()

	return &SkillService{
		store:      store,
		collection: cfg.SkillsCollection,
		images:     images,
		logger:     logger,
	}
}

// ListSkills returns skills ordered ascending by their display order.
func (s *SkillService) ListSkills(ctx context.Context, filter SkillFilter) SkillListing {
	queries := []appwrite.Query{
		appwrite.OrderAsc("order"),
	}

	if filter.Category != "" {
		queries = append(queries, appwrite.Equal("category", string(filter.Category)))
	}
	if filter.Featured {
		queries = append(queries, appwrite.Equal("featured", true))
	}
	if filter.Limit > 0 {
		queries = append(queries, appwrite.Limit(filter.Limit))
	}

	list, err := s.store.ListDocuments(ctx, s.collection, queries...)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to list skills, returning empty result")
		return SkillListing{Skills: []SkillView{}, Total: 0}
	}

	views := make([]SkillView, 0, len(list.Documents))
	for _, doc := range list.Documents {
		skill, err := models.SkillFromDocument(doc)
		if err != nil {
			s.logger.Warn().Err(err).Msg("Skipping malformed skill document")
			continue
		}
		views = append(views, s.resolveView(skill))
	}

	return SkillListing{Skills: views, Total: list.Total}
}

// ListAllSkills fetches the full skill corpus under a fixed generous limit.
func (s *SkillService) ListAllSkills(ctx context.Context) SkillListing {
	return s.ListSkills(ctx, SkillFilter{Limit: allSkillsLimit})
}

func (s *SkillService) resolveView(skill models.Skill) SkillView {
	view := SkillView{Skill: skill}
	if skill.IconFileID != "" {
		view.IconURL = s.images.ResolveImageURL(skill.IconFileID)
	}
	return view
}

// GroupByCategory buckets skills into category sections using the fixed
// display order. Skills in categories outside the fixed list are collected
// into trailing sections in order of first appearance.
func GroupByCategory(skills []SkillView) []SkillGroup {
	buckets := make(map[models.SkillCategory][]SkillView)
	var extraOrder []models.SkillCategory

	known := make(map[models.SkillCategory]bool, len(models.CategoryDisplayOrder))
	for _, category := range models.CategoryDisplayOrder {
		known[category] = true
	}

	for _, skill := range skills {
		category := skill.Category
		if !known[category] && len(buckets[category]) == 0 {
			extraOrder = append(extraOrder, category)
		}
		buckets[category] = append(buckets[category], skill)
	}

	groups := make([]SkillGroup, 0, len(buckets))
	for _, category := range models.CategoryDisplayOrder {
		if bucket := buckets[category]; len(bucket) > 0 {
			groups = append(groups, SkillGroup{Category: category, Skills: bucket})
		}
	}
	for _, category := range extraOrder {
		groups = append(groups, SkillGroup{Category: category, Skills: buckets[category]})
	}
	return groups
}
