package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecofuture-uz/content-service/internal/domain"
)

func viewFixture() []domain.TeamMember {
	return []domain.TeamMember{
		{ID: 1, Name: "Farhodova Fozila Uygunovna", Role: "Founder", Bio: "Fozila is one of the founding members.", Image: "/images/team/Farhodova Fozila Uygunovna.jpg", Category: "Founders"},
		{ID: 2, Name: "Ashurov Javohir", Role: "Volunteer", Bio: "Javohir volunteers for our programs.", Image: "/images/team/Ashurov Javohir.JPG", Category: "Volunteers"},
		{ID: 3, Name: "Sanjar", Role: "Finance Manager", Bio: "Sanjar manages the finances.", Image: "/logo.png", Category: "Finance Managers"},
		{ID: 4, Name: "Nurbek Salomov Choriyevich", Role: "Content Maker", Bio: "Nurbek produces content.", Image: "/images/team/Nurbek Salomov Choriyevich.jpg", Category: "Content Makers"},
	}
}

func names(members []domain.TeamMember) []string {
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = m.Name
	}
	return out
}

func TestProject_Filtering(t *testing.T) {
	members := viewFixture()

	t.Run("All category with empty search returns the full roster in order", func(t *testing.T) {
		view := Project(members, ViewOptions{Category: CategoryAll})
		assert.Equal(t, members, view)
	})

	t.Run("empty category behaves like All", func(t *testing.T) {
		view := Project(members, ViewOptions{})
		assert.Equal(t, members, view)
	})

	t.Run("category filter is exact", func(t *testing.T) {
		view := Project(members, ViewOptions{Category: "Volunteers"})
		require.Len(t, view, 1)
		assert.Equal(t, "Ashurov Javohir", view[0].Name)
	})

	t.Run("unknown category yields an empty view", func(t *testing.T) {
		view := Project(members, ViewOptions{Category: "Board of Directors"})
		assert.Empty(t, view)
	})

	t.Run("search covers name role and bio", func(t *testing.T) {
		assert.Equal(t, []string{"Sanjar"}, names(Project(members, ViewOptions{Search: "sanjar"})))
		assert.Equal(t, []string{"Sanjar"}, names(Project(members, ViewOptions{Search: "Finance"})))
		assert.Equal(t, []string{"Farhodova Fozila Uygunovna"}, names(Project(members, ViewOptions{Search: "founding"})))
	})

	t.Run("search trims whitespace and ignores case", func(t *testing.T) {
		view := Project(members, ViewOptions{Search: "  JAVOHIR  "})
		assert.Equal(t, []string{"Ashurov Javohir"}, names(view))
	})

	t.Run("category and search compose", func(t *testing.T) {
		view := Project(members, ViewOptions{Category: "Volunteers", Search: "finance"})
		assert.Empty(t, view)
	})

	t.Run("input slice is never modified", func(t *testing.T) {
		original := viewFixture()
		_ = Project(members, ViewOptions{SortBy: SortByName, Direction: Descending})
		assert.Equal(t, original, members)
	})
}

func TestProject_Sorting(t *testing.T) {
	members := viewFixture()

	t.Run("name ascending", func(t *testing.T) {
		view := Project(members, ViewOptions{SortBy: SortByName, Direction: Ascending})
		assert.Equal(t, []string{
			"Ashurov Javohir",
			"Farhodova Fozila Uygunovna",
			"Nurbek Salomov Choriyevich",
			"Sanjar",
		}, names(view))
	})

	t.Run("descending is the exact reverse of ascending", func(t *testing.T) {
		asc := Project(members, ViewOptions{SortBy: SortByName, Direction: Ascending})
		desc := Project(members, ViewOptions{SortBy: SortByName, Direction: Descending})
		require.Len(t, desc, len(asc))
		for i := range asc {
			assert.Equal(t, asc[i], desc[len(desc)-1-i])
		}
	})

	t.Run("sort by role", func(t *testing.T) {
		view := Project(members, ViewOptions{SortBy: SortByRole, Direction: Ascending})
		assert.Equal(t, []string{
			"Nurbek Salomov Choriyevich",
			"Sanjar",
			"Farhodova Fozila Uygunovna",
			"Ashurov Javohir",
		}, names(view))
	})

	t.Run("sort by category", func(t *testing.T) {
		view := Project(members, ViewOptions{SortBy: SortByCategory, Direction: Ascending})
		assert.Equal(t, []string{
			"Nurbek Salomov Choriyevich",
			"Sanjar",
			"Farhodova Fozila Uygunovna",
			"Ashurov Javohir",
		}, names(view))
	})

	t.Run("empty sort key keeps canonical order", func(t *testing.T) {
		view := Project(members, ViewOptions{})
		assert.Equal(t, names(members), names(view))
	})
}

func TestCategories(t *testing.T) {
	t.Run("distinct labels in roster order behind the All sentinel", func(t *testing.T) {
		members := []domain.TeamMember{
			{ID: 1, Category: "Founders"},
			{ID: 2, Category: "Volunteers"},
			{ID: 3, Category: "Founders"},
			{ID: 4, Category: "Content Makers"},
		}
		assert.Equal(t, []string{"All", "Founders", "Volunteers", "Content Makers"}, Categories(members))
	})

	t.Run("empty roster still offers All", func(t *testing.T) {
		assert.Equal(t, []string{"All"}, Categories(nil))
	})
}
