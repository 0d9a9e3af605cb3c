package roster

import (
	"path"
	"strings"
)

// InventoryEntry maps a canonical person name to the photo filename stored
// under the team image root. Keys are case and diacritic sensitive, so
// near-duplicate spellings of the same name can exist as separate entries.
// That is a property of the asset inventory, not something the resolver
// tries to repair.
type InventoryEntry struct {
	Name string
	File string
}

// Inventory is the ordered photo inventory consulted when building the roster.
type Inventory []InventoryEntry

// Resolver maps display names to image references.
type Resolver struct {
	root     string
	fallback string
	entries  Inventory
	index    map[string]string
}

// NewResolver builds a resolver over the given inventory. root is the
// directory public image paths are rooted at and fallback is the logo
// reference returned for names without a photo.
func NewResolver(root, fallback string, inventory Inventory) *Resolver {
	index := make(map[string]string, len(inventory))
	for _, entry := range inventory {
		key := strings.ToLower(entry.Name)
		if _, exists := index[key]; !exists {
			index[key] = entry.File
		}
	}
	return &Resolver{
		root:     strings.TrimRight(root, "/"),
		fallback: fallback,
		entries:  inventory,
		index:    index,
	}
}

// Resolve returns the image reference for name, or the fallback logo when no
// inventory entry matches. Matching trims surrounding whitespace and ignores
// case but not diacritics: visually identical names written with different
// apostrophe characters stay distinct keys.
func (r *Resolver) Resolve(name string) string {
	file, ok := r.index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return r.fallback
	}
	if file == path.Base(r.fallback) {
		// The inventory can point a name straight at the logo asset;
		// that reference lives outside the image root.
		return r.fallback
	}
	return r.root + "/" + file
}

// Fallback returns the logo reference used for unmatched names.
func (r *Resolver) Fallback() string {
	return r.fallback
}

// Entries returns the inventory in authored order.
func (r *Resolver) Entries() Inventory {
	return r.entries
}
