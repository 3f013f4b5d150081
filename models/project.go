package models

import (
	"encoding/json"
	"fmt"
)

// Project represents one portfolio case study as persisted in the record
// store. System-managed fields carry the store's `$`-prefixed names.
type Project struct {
	ID        string `json:"$id"`
	CreatedAt string `json:"$createdAt,omitempty"`
	UpdatedAt string `json:"$updatedAt,omitempty"`

	Title            string   `json:"title"`
	Slug             string   `json:"slug"`
	ShortDescription string   `json:"shortDescription"`
	Content          string   `json:"content,omitempty"`
	HeroFileID       string   `json:"heroFileId,omitempty"`
	HeroImage        string   `json:"heroImage,omitempty"` // local static path, wins over heroFileId
	GalleryFileIDs   []string `json:"galleryFileIds,omitempty"`
	TechStack        []string `json:"techStack,omitempty"`
	Skills           []string `json:"skills,omitempty"` // linked skill IDs, weak references
	RepoURL          string   `json:"repoUrl,omitempty"`
	LiveURL          string   `json:"liveUrl,omitempty"`
	Published        bool     `json:"published"`
	Featured         bool     `json:"featured"`
	Date             string   `json:"date,omitempty"` // ISO 8601
}

// TechCategory is a structured tech breakdown for display. It is an optional
// enrichment layered on top of the flat TechStack list and takes precedence
// for display when present.
type TechCategory struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// ProjectFromDocument decodes a raw store document into a Project, rejecting
// documents without the identity fields the resolution layer relies on.
func ProjectFromDocument(doc json.RawMessage) (Project, error) {
	var project Project
	if err := json.Unmarshal(doc, &project); err != nil {
		return Project{}, fmt.Errorf("failed to decode project document: %w", err)
	}
	if project.ID == "" {
		return Project{}, fmt.Errorf("project document missing $id")
	}
	if project.Slug == "" {
		return Project{}, fmt.Errorf("project document %s missing slug", project.ID)
	}
	return project, nil
}

// ProjectInput is the admin-facing payload for creating a project. It carries
// no system-managed fields.
type ProjectInput struct {
	Title            string   `json:"title"`
	Slug             string   `json:"slug"`
	ShortDescription string   `json:"shortDescription"`
	Content          string   `json:"content,omitempty"`
	HeroFileID       string   `json:"heroFileId,omitempty"`
	HeroImage        string   `json:"heroImage,omitempty"`
	GalleryFileIDs   []string `json:"galleryFileIds,omitempty"`
	TechStack        []string `json:"techStack,omitempty"`
	Skills           []string `json:"skills,omitempty"`
	RepoURL          string   `json:"repoUrl,omitempty"`
	LiveURL          string   `json:"liveUrl,omitempty"`
	Published        bool     `json:"published"`
	Featured         bool     `json:"featured"`
	Date             string   `json:"date,omitempty"`
}
