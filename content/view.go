package content

import "github.com/studioflow/portfolio-backend/models"

// ProjectView is the presentation-ready form of a project: persisted fields
// plus resolved image URLs, override-supplied enrichments, and (for detail
// views) the linked skills joined in.
type ProjectView struct {
	models.Project

	HeroURL     string   `json:"heroUrl"`
	ThumbURL    string   `json:"thumbUrl"`
	GalleryURLs []string `json:"galleryUrls"`

	// TechCategories is only ever populated from the per-slug override table;
	// when present it takes precedence over the flat TechStack for display.
	TechCategories []models.TechCategory `json:"techCategories,omitempty"`

	LinkedSkills []SkillView `json:"linkedSkills,omitempty"`
}

// ProjectListing is a page of resolved projects plus the unpaginated total.
type ProjectListing struct {
	Projects []ProjectView `json:"projects"`
	Total    int           `json:"total"`
}

// SkillView is the presentation-ready form of a skill.
type SkillView struct {
	models.Skill

	IconURL string `json:"iconUrl,omitempty"`
}

// SkillListing is a resolved skill list plus the unpaginated total.
type SkillListing struct {
	Skills []SkillView `json:"skills"`
	Total  int         `json:"total"`
}

// SkillGroup is one category section in the grouped skills view.
type SkillGroup struct {
	Category models.SkillCategory `json:"category"`
	Skills   []SkillView          `json:"skills"`
}
