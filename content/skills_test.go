package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studioflow/portfolio-backend/models"
)

func newSkillServiceForTest(t *testing.T, store *fakeStore) *SkillService {
	t.Helper()
	cfg := store.config()
	return NewSkillService(store.client(), cfg, NewImageResolver(cfg))
}

func skillDoc(id, name string, category models.SkillCategory, featured bool, order int) map[string]any {
	return map[string]any{
		"$id":      id,
		"name":     name,
		"slug":     name,
		"category": string(category),
		"level":    "Advanced",
		"featured": featured,
		"order":    order,
	}
}

func TestListSkills(t *testing.T) {
	store := newFakeStore(t)
	store.collections["skills"] = []map[string]any{
		skillDoc("s1", "react", models.CategoryFrontend, true, 1),
		skillDoc("s2", "go", models.CategoryBackend, false, 2),
	}

	listing := newSkillServiceForTest(t, store).ListSkills(context.Background(), SkillFilter{})

	assert.Equal(t, 2, listing.Total)
	require.Len(t, listing.Skills, 2)
}

func TestListSkillsCategoryFilter(t *testing.T) {
	store := newFakeStore(t)
	store.collections["skills"] = []map[string]any{
		skillDoc("s1", "react", models.CategoryFrontend, true, 1),
		skillDoc("s2", "go", models.CategoryBackend, false, 2),
	}

	listing := newSkillServiceForTest(t, store).ListSkills(context.Background(), SkillFilter{Category: models.CategoryBackend})

	require.Len(t, listing.Skills, 1)
	assert.Equal(t, "go", listing.Skills[0].Name)
}

func TestListSkillsFeaturedFilter(t *testing.T) {
	store := newFakeStore(t)
	store.collections["skills"] = []map[string]any{
		skillDoc("s1", "react", models.CategoryFrontend, true, 1),
		skillDoc("s2", "go", models.CategoryBackend, false, 2),
	}

	listing := newSkillServiceForTest(t, store).ListSkills(context.Background(), SkillFilter{Featured: true})

	require.Len(t, listing.Skills, 1)
	assert.True(t, listing.Skills[0].Featured)
}

func TestListSkillsStoreFailure(t *testing.T) {
	store := newFakeStore(t)
	store.failAll = true

	listing := newSkillServiceForTest(t, store).ListSkills(context.Background(), SkillFilter{})

	assert.Equal(t, 0, listing.Total)
	assert.Empty(t, listing.Skills)
	assert.NotNil(t, listing.Skills)
}

func TestListSkillsResolvesIconURL(t *testing.T) {
	store := newFakeStore(t)
	doc := skillDoc("s1", "react", models.CategoryFrontend, true, 1)
	doc["iconFileId"] = "icon789"
	store.collections["skills"] = []map[string]any{doc}

	listing := newSkillServiceForTest(t, store).ListSkills(context.Background(), SkillFilter{})

	require.Len(t, listing.Skills, 1)
	assert.Contains(t, listing.Skills[0].IconURL, "icon789")
}

func TestGroupByCategoryFixedOrder(t *testing.T) {
	skills := []SkillView{
		{Skill: models.Skill{ID: "s1", Name: "docker", Category: models.CategoryTools}},
		{Skill: models.Skill{ID: "s2", Name: "react", Category: models.CategoryFrontend}},
		{Skill: models.Skill{ID: "s3", Name: "go", Category: models.CategoryBackend}},
	}

	groups := GroupByCategory(skills)

	require.Len(t, groups, 3)
	assert.Equal(t, models.CategoryFrontend, groups[0].Category)
	assert.Equal(t, models.CategoryBackend, groups[1].Category)
	assert.Equal(t, models.CategoryTools, groups[2].Category)
}

func TestGroupByCategoryUnknownCategoriesLast(t *testing.T) {
	skills := []SkillView{
		{Skill: models.Skill{ID: "s1", Name: "figma", Category: "Design"}},
		{Skill: models.Skill{ID: "s2", Name: "react", Category: models.CategoryFrontend}},
	}

	groups := GroupByCategory(skills)

	require.Len(t, groups, 2)
	assert.Equal(t, models.CategoryFrontend, groups[0].Category)
	assert.Equal(t, models.SkillCategory("Design"), groups[1].Category)
}

func TestGroupByCategoryEmpty(t *testing.T) {
	assert.Empty(t, GroupByCategory(nil))
}
