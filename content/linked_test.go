package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studioflow/portfolio-backend/models"
)

func TestResolveLinkedSkillsPartialFailure(t *testing.T) {
	store := newFakeStore(t)
	store.collections["skills"] = []map[string]any{
		skillDoc("idA", "react", models.CategoryFrontend, false, 1),
	}

	// idB was deleted; its dangling reference must not blank the batch.
	skills := newSkillServiceForTest(t, store).ResolveLinkedSkills(context.Background(), []string{"idA", "idB"})

	require.Len(t, skills, 1)
	assert.Equal(t, "idA", skills[0].ID)
}

func TestResolveLinkedSkillsFiltersMalformedIDs(t *testing.T) {
	store := newFakeStore(t)
	store.collections["skills"] = []map[string]any{
		skillDoc("validId123", "go", models.CategoryBackend, false, 1),
	}

	skills := newSkillServiceForTest(t, store).ResolveLinkedSkills(context.Background(), []string{"; DROP TABLE", "validId123"})

	require.Len(t, skills, 1)
	assert.Equal(t, "validId123", skills[0].ID)
	// The malformed entry must never reach the store.
	assert.Equal(t, []string{"validId123"}, store.requested)
}

func TestResolveLinkedSkillsPreservesOrder(t *testing.T) {
	store := newFakeStore(t)
	store.collections["skills"] = []map[string]any{
		skillDoc("s1", "react", models.CategoryFrontend, false, 1),
		skillDoc("s2", "go", models.CategoryBackend, false, 2),
		skillDoc("s3", "postgres", models.CategoryDatabase, false, 3),
	}

	skills := newSkillServiceForTest(t, store).ResolveLinkedSkills(context.Background(), []string{"s3", "s1", "s2"})

	require.Len(t, skills, 3)
	assert.Equal(t, "s3", skills[0].ID)
	assert.Equal(t, "s1", skills[1].ID)
	assert.Equal(t, "s2", skills[2].ID)
}

func TestResolveLinkedSkillsEmptyInput(t *testing.T) {
	store := newFakeStore(t)

	skills := newSkillServiceForTest(t, store).ResolveLinkedSkills(context.Background(), nil)

	assert.Empty(t, skills)
	assert.NotNil(t, skills)
	assert.Empty(t, store.requested)
}

func TestResolveLinkedSkillsAllMalformed(t *testing.T) {
	store := newFakeStore(t)

	skills := newSkillServiceForTest(t, store).ResolveLinkedSkills(context.Background(), []string{"", "_leading", "has spaces", "way-too-long-identifier-exceeding-thirty-six-chars"})

	assert.Empty(t, skills)
	assert.Empty(t, store.requested)
}
