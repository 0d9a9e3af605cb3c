package roster

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ecofuture-uz/content-service/internal/domain"
)

// SortKey selects the field used when ordering a roster view.
type SortKey string

const (
	SortByName     SortKey = "name"
	SortByRole     SortKey = "role"
	SortByCategory SortKey = "category"
)

// Direction selects ascending or descending order.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll = "All"

// ViewOptions parameterize a roster projection.
type ViewOptions struct {
	Category  string
	Search    string
	SortBy    SortKey
	Direction Direction
}

// Project derives a filtered, sorted view of the roster. The input slice is
// never modified and every call recomputes the view from scratch. An empty
// SortBy keeps the canonical roster order.
func Project(members []domain.TeamMember, opts ViewOptions) []domain.TeamMember {
	query := strings.ToLower(strings.TrimSpace(opts.Search))

	view := make([]domain.TeamMember, 0, len(members))
	for _, member := range members {
		if opts.Category != "" && opts.Category != CategoryAll && member.Category != opts.Category {
			continue
		}
		if query != "" && !matchesQuery(member, query) {
			continue
		}
		view = append(view, member)
	}

	if opts.SortBy != "" {
		sortView(view, opts.SortBy, opts.Direction)
	}
	return view
}

// Categories lists the distinct category labels in roster order, prefixed
// with the CategoryAll sentinel.
func Categories(members []domain.TeamMember) []string {
	out := []string{CategoryAll}
	seen := make(map[string]struct{}, len(members))
	for _, member := range members {
		if _, ok := seen[member.Category]; ok {
			continue
		}
		seen[member.Category] = struct{}{}
		out = append(out, member.Category)
	}
	return out
}

func matchesQuery(member domain.TeamMember, query string) bool {
	return strings.Contains(strings.ToLower(member.Name), query) ||
		strings.Contains(strings.ToLower(member.Role), query) ||
		strings.Contains(strings.ToLower(member.Bio), query)
}

func sortView(view []domain.TeamMember, key SortKey, dir Direction) {
	coll := collate.New(language.Und)
	field := func(m domain.TeamMember) string {
		switch key {
		case SortByRole:
			return m.Role
		case SortByCategory:
			return m.Category
		default:
			return m.Name
		}
	}
	sort.SliceStable(view, func(i, j int) bool {
		a, b := field(view[i]), field(view[j])
		if dir == Descending {
			a, b = b, a
		}
		return coll.CompareString(a, b) < 0
	})
}
