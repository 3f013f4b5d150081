package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProjectServiceForTest(t *testing.T, store *fakeStore) *ProjectService {
	t.Helper()
	cfg := store.config()
	return NewProjectService(store.client(), cfg, NewImageResolver(cfg))
}

func projectDoc(id, slug string, published, featured bool, tech ...string) map[string]any {
	stack := make([]any, len(tech))
	for i, item := range tech {
		stack[i] = item
	}
	return map[string]any{
		"$id":              id,
		"$updatedAt":       "2025-01-01T00:00:00.000+00:00",
		"title":            "Project " + id,
		"slug":             slug,
		"shortDescription": "A project",
		"published":        published,
		"featured":         featured,
		"techStack":        stack,
		"date":             "2024-06-01T00:00:00Z",
	}
}

func TestListProjectsPublishedOnly(t *testing.T) {
	store := newFakeStore(t)
	store.collections["projects"] = []map[string]any{
		projectDoc("p1", "alpha", true, false),
		projectDoc("p2", "beta", false, false),
		projectDoc("p3", "gamma", true, true),
	}

	listing := newProjectServiceForTest(t, store).ListProjects(context.Background(), ProjectFilter{})

	require.Len(t, listing.Projects, 2)
	for _, project := range listing.Projects {
		assert.True(t, project.Published)
	}
}

func TestListProjectsFeaturedFilter(t *testing.T) {
	store := newFakeStore(t)
	store.collections["projects"] = []map[string]any{
		projectDoc("p1", "alpha", true, false),
		projectDoc("p2", "beta", true, true),
	}

	listing := newProjectServiceForTest(t, store).ListProjects(context.Background(), ProjectFilter{Featured: true})

	require.Len(t, listing.Projects, 1)
	assert.True(t, listing.Projects[0].Featured)
	assert.Equal(t, "beta", listing.Projects[0].Slug)
}

func TestListProjectsTechSearch(t *testing.T) {
	store := newFakeStore(t)
	store.collections["projects"] = []map[string]any{
		projectDoc("p1", "demo", true, false, "React", "Go"),
		projectDoc("p2", "other", true, false, "Vue"),
	}
	service := newProjectServiceForTest(t, store)

	matched := service.ListProjects(context.Background(), ProjectFilter{Tech: "Go"})
	require.Len(t, matched.Projects, 1)
	assert.Equal(t, "demo", matched.Projects[0].Slug)

	missed := service.ListProjects(context.Background(), ProjectFilter{Tech: "Rust"})
	assert.Empty(t, missed.Projects)
}

func TestListProjectsPagination(t *testing.T) {
	store := newFakeStore(t)
	store.collections["projects"] = []map[string]any{
		projectDoc("p1", "one", true, false),
		projectDoc("p2", "two", true, false),
		projectDoc("p3", "three", true, false),
	}

	listing := newProjectServiceForTest(t, store).ListProjects(context.Background(), ProjectFilter{Limit: 1, Offset: 1})

	require.Len(t, listing.Projects, 1)
	assert.Equal(t, "two", listing.Projects[0].Slug)
}

func TestListProjectsStoreFailure(t *testing.T) {
	store := newFakeStore(t)
	store.failAll = true

	listing := newProjectServiceForTest(t, store).ListProjects(context.Background(), ProjectFilter{})

	assert.Equal(t, 0, listing.Total)
	assert.Empty(t, listing.Projects)
	assert.NotNil(t, listing.Projects)
}

func TestGetProjectBySlug(t *testing.T) {
	store := newFakeStore(t)
	doc := projectDoc("p1", "alpha", true, false)
	doc["heroFileId"] = "hero123"
	doc["galleryFileIds"] = []any{"/local/shot.webp", "remote456"}
	store.collections["projects"] = []map[string]any{doc}

	view := newProjectServiceForTest(t, store).GetProjectBySlug(context.Background(), "alpha")

	require.NotNil(t, view)
	assert.Equal(t, "alpha", view.Slug)
	assert.Contains(t, view.HeroURL, "hero123")
	require.Len(t, view.GalleryURLs, 2)
	assert.Equal(t, "/local/shot.webp", view.GalleryURLs[0])
	assert.Contains(t, view.GalleryURLs[1], "remote456")
}

func TestGetProjectBySlugLocalHeroWinsOverFileID(t *testing.T) {
	store := newFakeStore(t)
	doc := projectDoc("p1", "alpha", true, false)
	doc["heroFileId"] = "hero123"
	doc["heroImage"] = "/images/projects/alpha/hero.webp"
	store.collections["projects"] = []map[string]any{doc}

	view := newProjectServiceForTest(t, store).GetProjectBySlug(context.Background(), "alpha")

	require.NotNil(t, view)
	assert.Equal(t, "/images/projects/alpha/hero.webp", view.HeroURL)
	assert.Equal(t, "/images/projects/alpha/hero.webp", view.ThumbURL)
}

func TestGetProjectBySlugNotFound(t *testing.T) {
	store := newFakeStore(t)

	view := newProjectServiceForTest(t, store).GetProjectBySlug(context.Background(), "nonexistent")
	assert.Nil(t, view)
}

func TestGetProjectBySlugStoreFailure(t *testing.T) {
	store := newFakeStore(t)
	store.failAll = true

	view := newProjectServiceForTest(t, store).GetProjectBySlug(context.Background(), "alpha")
	assert.Nil(t, view)
}

func TestGetProjectBySlugDuplicatePicksMostRecentlyUpdated(t *testing.T) {
	store := newFakeStore(t)
	stale := projectDoc("p1", "dup", true, false)
	stale["$updatedAt"] = "2024-01-01T00:00:00.000+00:00"
	fresh := projectDoc("p2", "dup", true, false)
	fresh["$updatedAt"] = "2025-06-01T00:00:00.000+00:00"
	store.collections["projects"] = []map[string]any{stale, fresh}

	view := newProjectServiceForTest(t, store).GetProjectBySlug(context.Background(), "dup")

	require.NotNil(t, view)
	assert.Equal(t, "p2", view.ID)
}

func TestGetProjectBySlugAppliesOverride(t *testing.T) {
	store := newFakeStore(t)
	doc := projectDoc("p1", "studioflow", true, true)
	doc["liveUrl"] = "https://old.example.com"
	store.collections["projects"] = []map[string]any{doc}

	view := newProjectServiceForTest(t, store).GetProjectBySlug(context.Background(), "studioflow")

	require.NotNil(t, view)
	assert.Equal(t, "/images/projects/studioflow/thumb.webp", view.ThumbURL)
	assert.NotEmpty(t, view.TechCategories)
	assert.NotEmpty(t, view.GalleryURLs)
	assert.Equal(t, "https://studioflow.dev", view.LiveURL)
}

func TestListSlugs(t *testing.T) {
	store := newFakeStore(t)
	store.collections["projects"] = []map[string]any{
		projectDoc("p1", "alpha", true, false),
		projectDoc("p2", "beta", false, false),
	}

	slugs := newProjectServiceForTest(t, store).ListSlugs(context.Background())
	assert.ElementsMatch(t, []string{"alpha", "beta"}, slugs)
}

func TestListSlugsStoreFailure(t *testing.T) {
	store := newFakeStore(t)
	store.failAll = true

	slugs := newProjectServiceForTest(t, store).ListSlugs(context.Background())
	assert.Empty(t, slugs)
	assert.NotNil(t, slugs)
}
