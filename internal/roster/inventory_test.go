package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResolver() *Resolver {
	return NewResolver("/images/team", "/logo.png", DefaultInventory())
}

func TestResolver_Resolve(t *testing.T) {
	res := testResolver()

	t.Run("known name resolves to its inventory file", func(t *testing.T) {
		assert.Equal(t, "/images/team/Ashurov Javohir.JPG", res.Resolve("Ashurov Javohir"))
		assert.Equal(t, "/images/team/Barotova Shaxrizoda.jpg", res.Resolve("Barotova Shaxrizoda"))
	})

	t.Run("matching ignores case and surrounding whitespace", func(t *testing.T) {
		got := res.Resolve("  MADIEV SARDOR KENJA O'G'LI  ")
		assert.Equal(t, "/images/team/Madiev Sardor Kenja o'g'li.JPG", got)
	})

	t.Run("matching is sensitive to apostrophe variants", func(t *testing.T) {
		// The inventory spells this name with a plain ASCII apostrophe;
		// the modifier-letter variant is a different key entirely.
		assert.Equal(t, res.Fallback(), res.Resolve("Madiyev Sardor Kenja oʻgʻli"))
	})

	t.Run("unknown name falls back to the logo", func(t *testing.T) {
		assert.Equal(t, "/logo.png", res.Resolve("Sanjar"))
		assert.Equal(t, "/logo.png", res.Resolve(""))
	})

	t.Run("mixed extensions survive untouched", func(t *testing.T) {
		assert.Equal(t, "/images/team/Rizvonbek Hamroqulov Firo'z o'g'li.png",
			res.Resolve("Rizvonbek Hamroqulov Firo'z o'g'li"))
	})
}

func TestNewResolver_FirstEntryWins(t *testing.T) {
	res := NewResolver("/images/team", "/logo.png", Inventory{
		{Name: "Aziza Karimova", File: "Aziza Karimova.jpg"},
		{Name: "aziza karimova", File: "duplicate.jpg"},
	})
	assert.Equal(t, "/images/team/Aziza Karimova.jpg", res.Resolve("Aziza Karimova"))
	assert.Equal(t, "/images/team/Aziza Karimova.jpg", res.Resolve("aziza karimova"))
}

func TestResolver_LogoEntryBypassesRoot(t *testing.T) {
	res := NewResolver("/images/team", "/logo.png", Inventory{
		{Name: "Placeholder Person", File: "logo.png"},
	})
	assert.Equal(t, "/logo.png", res.Resolve("Placeholder Person"))
}

func TestDefaultInventory(t *testing.T) {
	inv := DefaultInventory()
	require.Len(t, inv, 22)
	for _, entry := range inv {
		assert.NotEmpty(t, entry.Name)
		assert.NotEmpty(t, entry.File)
	}
}
