package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecofuture-uz/content-service/internal/domain"
)

func TestCovers(t *testing.T) {
	t.Run("exact match", func(t *testing.T) {
		assert.True(t, Covers("Ashurov Javohir", "Ashurov Javohir"))
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.True(t, Covers("ASHUROV JAVOHIR", "ashurov javohir"))
	})

	t.Run("substring in either direction", func(t *testing.T) {
		assert.True(t, Covers("Barotova Shaxrizoda Yòldosh qizi", "Barotova Shaxrizoda"))
		assert.True(t, Covers("Barotova Shaxrizoda", "Barotova Shaxrizoda Yòldosh qizi"))
	})

	t.Run("apostrophe variants do not cover each other", func(t *testing.T) {
		assert.False(t, Covers("Madiyev Sardor Kenja oʻgʻli", "Madiev Sardor Kenja o'g'li"))
	})

	t.Run("unrelated names", func(t *testing.T) {
		assert.False(t, Covers("Ashurov Javohir", "Nurbek Salomov Choriyevich"))
	})
}

func TestBuildRoster(t *testing.T) {
	res := testResolver()
	seeds := DefaultSeeds()
	roster := BuildRoster(res, seeds)

	t.Run("curated members come first in authored order", func(t *testing.T) {
		require.GreaterOrEqual(t, len(roster), len(seeds))
		for i, seed := range seeds {
			assert.Equal(t, seed.Name, roster[i].Name)
			assert.Equal(t, seed.Role, roster[i].Role)
			assert.Equal(t, seed.Category, roster[i].Category)
		}
	})

	t.Run("ids are sequential from one", func(t *testing.T) {
		for i, member := range roster {
			assert.Equal(t, i+1, member.ID)
		}
	})

	t.Run("seeds without a photo get the fallback", func(t *testing.T) {
		byName := make(map[string]domain.TeamMember, len(roster))
		for _, member := range roster {
			byName[member.Name] = member
		}
		assert.Equal(t, res.Fallback(), byName["Sanjar"].Image)
		assert.Equal(t, res.Fallback(), byName["Madiyev Sardor Kenja oʻgʻli"].Image)
		assert.Equal(t, "/images/team/Farhodova Fozila Uygunovna.jpg", byName["Farhodova Fozila Uygunovna"].Image)
	})

	t.Run("uncovered inventory photos surface as synthesized members", func(t *testing.T) {
		var synthesized []domain.TeamMember
		for _, member := range roster[len(seeds):] {
			synthesized = append(synthesized, member)
		}
		require.NotEmpty(t, synthesized)
		for _, member := range synthesized {
			assert.Equal(t, "Team Member", member.Role)
			assert.Equal(t, "Team Members", member.Category)
			assert.Contains(t, member.Bio, member.Name)
			assert.NotEqual(t, res.Fallback(), member.Image)
		}
	})

	t.Run("every inventory photo is covered after the sweep", func(t *testing.T) {
		for _, entry := range res.Entries() {
			assert.True(t, coveredByAny(roster, entry.Name), "inventory entry %q left uncovered", entry.Name)
		}
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		again := BuildRoster(testResolver(), DefaultSeeds())
		assert.Equal(t, roster, again)
	})
}

func TestBuildRoster_EmptySeeds(t *testing.T) {
	res := NewResolver("/images/team", "/logo.png", Inventory{
		{Name: "Ashurov Javohir", File: "Ashurov Javohir.JPG"},
	})
	roster := BuildRoster(res, nil)
	require.Len(t, roster, 1)
	assert.Equal(t, 1, roster[0].ID)
	assert.Equal(t, "Ashurov Javohir", roster[0].Name)
	assert.Equal(t, "Team Member", roster[0].Role)
}
