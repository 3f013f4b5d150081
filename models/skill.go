package models

import (
	"encoding/json"
	"fmt"
)

// SkillCategory is the fixed set of skill groupings.
type SkillCategory string

const (
	CategoryFrontend SkillCategory = "Frontend"
	CategoryBackend  SkillCategory = "Backend"
	CategoryMobile   SkillCategory = "Mobile"
	CategoryDevOps   SkillCategory = "DevOps"
	CategoryDatabase SkillCategory = "Database"
	CategoryTools    SkillCategory = "Tools"
)

// CategoryDisplayOrder is the fixed presentation order for skill categories.
// Categories not listed here sort after all listed ones.
var CategoryDisplayOrder = []SkillCategory{
	CategoryFrontend,
	CategoryBackend,
	CategoryDatabase,
	CategoryDevOps,
	CategoryMobile,
	CategoryTools,
}

func (c SkillCategory) Valid() bool {
	switch c {
	case CategoryFrontend, CategoryBackend, CategoryMobile, CategoryDevOps, CategoryDatabase, CategoryTools:
		return true
	}
	return false
}

// SkillLevel is the proficiency scale for a skill.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

func (l SkillLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert:
		return true
	}
	return false
}

// Skill represents one technology/competency entry.
type Skill struct {
	ID        string `json:"$id"`
	CreatedAt string `json:"$createdAt,omitempty"`
	UpdatedAt string `json:"$updatedAt,omitempty"`

	Name       string        `json:"name"`
	Slug       string        `json:"slug"`
	Category   SkillCategory `json:"category"`
	Level      SkillLevel    `json:"level"`
	IconFileID string        `json:"iconFileId,omitempty"`
	Featured   bool          `json:"featured"`
	Order      int           `json:"order"`
}

// SkillFromDocument decodes a raw store document into a Skill. Unknown
// category/level values are kept as-is rather than rejected: historical data
// drift is tolerated, and grouping sorts unknown categories last anyway.
func SkillFromDocument(doc json.RawMessage) (Skill, error) {
	var skill Skill
	if err := json.Unmarshal(doc, &skill); err != nil {
		return Skill{}, fmt.Errorf("failed to decode skill document: %w", err)
	}
	if skill.ID == "" {
		return Skill{}, fmt.Errorf("skill document missing $id")
	}
	if skill.Name == "" {
		return Skill{}, fmt.Errorf("skill document %s missing name", skill.ID)
	}
	return skill, nil
}

// SkillInput is the admin-facing payload for creating a skill.
type SkillInput struct {
	Name       string        `json:"name"`
	Slug       string        `json:"slug"`
	Category   SkillCategory `json:"category"`
	Level      SkillLevel    `json:"level"`
	IconFileID string        `json:"iconFileId,omitempty"`
	Featured   bool          `json:"featured"`
	Order      int           `json:"order"`
}
