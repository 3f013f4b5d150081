package content

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/studioflow/portfolio-backend/appwrite"
	"github.com/studioflow/portfolio-backend/config"
	"github.com/studioflow/portfolio-backend/models"
)

// slugLookupLimit fetches one extra document on slug lookups so duplicate
// slugs (a data-integrity violation) are detected instead of silently taking
// whatever the store returns first.
const slugLookupLimit = 2

// maxSlugEnumeration bounds ListSlugs; the corpus is expected to stay well
// under this.
const maxSlugEnumeration = 100

// ProjectFilter narrows a project listing. Public paths always restrict to
// published documents; only administrative listings set IncludeUnpublished.
type ProjectFilter struct {
	IncludeUnpublished bool
	Featured           bool
	Tech               string
	Limit              int
	Offset             int
}

// ProjectService resolves persisted project documents into view models.
// All read paths are fail-soft: store errors are logged and degrade to empty
// results rather than propagating, since the public pages prefer an empty
// state over an error page.
type ProjectService struct {
	store      *appwrite.Client
	collection string
	images     *ImageResolver
	logger     zerolog.Logger
}

func NewProjectService(store *appwrite.Client, cfg config.Appwrite, images *ImageResolver) *ProjectService {
	logger := log.With().Str("serviceName", "projectService").Logger()

	return &ProjectService{
		store:      store,
		collection: cfg.ProjectsCollection,
		images:     images,
		logger:     logger,
	}
}

// ListProjects returns resolved projects ordered most recent first.
func (s *ProjectService) ListProjects(ctx context.Context, filter ProjectFilter) ProjectListing {
	queries := []appwrite.Query{
		appwrite.OrderDesc("date"),
	}

	if !filter.IncludeUnpublished {
		queries = append(queries, appwrite.Equal("published", true))
	}
	if filter.Featured {
		queries = append(queries, appwrite.Equal("featured", true))
	}
	if filter.Tech != "" {
		queries = append(queries, appwrite.Search("techStack", filter.Tech))
	}
	if filter.Limit > 0 {
		queries = append(queries, appwrite.Limit(filter.Limit))
	}
	if filter.Offset > 0 {
		queries = append(queries, appwrite.Offset(filter.Offset))
	}

	list, err := s.store.ListDocuments(ctx, s.collection, queries...)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to list projects, returning empty result")
		return ProjectListing{Projects: []ProjectView{}, Total: 0}
	}

	views := make([]ProjectView, 0, len(list.Documents))
	for _, doc := range list.Documents {
		project, err := models.ProjectFromDocument(doc)
		if err != nil {
			s.logger.Warn().Err(err).Msg("Skipping malformed project document")
			continue
		}
		views = append(views, s.resolveView(project))
	}

	return ProjectListing{Projects: views, Total: list.Total}
}

// GetProjectBySlug returns the resolved project for a slug, or nil when no
// project matches or the store is unreachable.
func (s *ProjectService) GetProjectBySlug(ctx context.Context, slug string) *ProjectView {
	list, err := s.store.ListDocuments(ctx, s.collection,
		appwrite.Equal("slug", slug),
		appwrite.Limit(slugLookupLimit),
	)
	if err != nil {
		s.logger.Warn().Err(err).Str("slug", slug).Msg("Failed to fetch project by slug")
		return nil
	}
	if len(list.Documents) == 0 {
		return nil
	}

	project, err := models.ProjectFromDocument(list.Documents[0])
	if err != nil {
		s.logger.Warn().Err(err).Str("slug", slug).Msg("Malformed project document")
		return nil
	}

	// Slug uniqueness is enforced by a store index; more than one match means
	// the index is missing or the data drifted. Pick the most recently
	// updated document deterministically instead of trusting store order.
	if len(list.Documents) > 1 {
		s.logger.Warn().Str("slug", slug).Int("matches", list.Total).
			Msg("Duplicate slug detected, picking most recently updated")
		for _, doc := range list.Documents[1:] {
			candidate, err := models.ProjectFromDocument(doc)
			if err != nil {
				continue
			}
			// ISO 8601 timestamps compare correctly as strings.
			if candidate.UpdatedAt > project.UpdatedAt {
				project = candidate
			}
		}
	}

	view := s.resolveView(project)
	return &view
}

// ListSlugs enumerates all known project slugs, for static path generation.
func (s *ProjectService) ListSlugs(ctx context.Context) []string {
	list, err := s.store.ListDocuments(ctx, s.collection,
		appwrite.Select("slug"),
		appwrite.Limit(maxSlugEnumeration),
	)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to list project slugs")
		return []string{}
	}

	slugs := make([]string, 0, len(list.Documents))
	for _, doc := range list.Documents {
		var partial struct {
			Slug string `json:"slug"`
		}
		if err := json.Unmarshal(doc, &partial); err != nil || partial.Slug == "" {
			continue
		}
		slugs = append(slugs, partial.Slug)
	}
	return slugs
}

// resolveView turns a persisted project into its presentation form: image
// references become URLs and any per-slug override is merged on top.
func (s *ProjectService) resolveView(project models.Project) ProjectView {
	heroRef := project.HeroFileID
	if project.HeroImage != "" {
		heroRef = project.HeroImage
	}

	view := ProjectView{
		Project:     project,
		HeroURL:     s.images.ResolveImageURL(heroRef),
		ThumbURL:    s.images.ResolveImageURL(heroRef),
		GalleryURLs: s.images.ResolveGalleryURLs(project.GalleryFileIDs),
	}
	s.applyOverride(&view)
	return view
}
