package content

import "github.com/studioflow/portfolio-backend/models"

// ProjectOverride supplies curated view-model fields for one specific slug.
// Overrides take precedence over persisted values; empty fields leave the
// persisted value untouched.
type ProjectOverride struct {
	Thumbnail      string
	Gallery        []string
	TechCategories []models.TechCategory
	RepoURL        string
	LiveURL        string
}

// projectOverrides is the escape hatch for showcasing flagship work with
// richer content than the generic schema captures. It is data, not logic:
// adding an entry must never require touching resolution control flow.
var projectOverrides = map[string]ProjectOverride{
	"studioflow": {
		Thumbnail: "/images/projects/studioflow/thumb.webp",
		Gallery: []string{
			"/images/projects/studioflow/dashboard.webp",
			"/images/projects/studioflow/editor.webp",
			"/images/projects/studioflow/mobile.webp",
		},
		TechCategories: []models.TechCategory{
			{Category: "Frontend", Items: []string{"Next.js", "React", "Tailwind CSS", "GSAP"}},
			{Category: "Backend", Items: []string{"Appwrite", "Node.js"}},
			{Category: "Infrastructure", Items: []string{"Vercel", "Appwrite Cloud"}},
		},
		LiveURL: "https://studioflow.dev",
		RepoURL: "https://github.com/studioflow/studioflow",
	},
}

// applyOverride merges any per-slug override into the view. Gallery and
// thumbnail entries run through the image resolver so overrides may use
// either local paths or bucket file IDs.
func (s *ProjectService) applyOverride(view *ProjectView) {
	override, ok := projectOverrides[view.Slug]
	if !ok {
		return
	}

	if override.Thumbnail != "" {
		view.ThumbURL = s.images.ResolveImageURL(override.Thumbnail)
	}
	if len(override.Gallery) > 0 {
		view.GalleryURLs = s.images.ResolveGalleryURLs(override.Gallery)
	}
	if len(override.TechCategories) > 0 {
		view.TechCategories = override.TechCategories
	}
	if override.RepoURL != "" {
		view.RepoURL = override.RepoURL
	}
	if override.LiveURL != "" {
		view.LiveURL = override.LiveURL
	}
}
