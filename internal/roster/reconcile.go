package roster

import (
	"fmt"
	"strings"

	"github.com/ecofuture-uz/content-service/internal/domain"
)

// BuildRoster computes the default roster: curated members in authored
// order, then one synthesized member for every inventory photo no curated
// member accounts for. Ids are assigned sequentially from 1 and the result
// is identical across runs for the same seeds and inventory.
func BuildRoster(res *Resolver, curated []Seed) []domain.TeamMember {
	members := make([]domain.TeamMember, 0, len(curated))
	nextID := 1

	for _, seed := range curated {
		members = append(members, domain.TeamMember{
			ID:       nextID,
			Name:     seed.Name,
			Role:     seed.Role,
			Bio:      seed.Bio,
			Image:    res.Resolve(seed.Name),
			Category: seed.Category,
		})
		nextID++
	}

	for _, entry := range res.Entries() {
		if coveredByAny(members, entry.Name) {
			continue
		}
		members = append(members, domain.TeamMember{
			ID:       nextID,
			Name:     entry.Name,
			Role:     "Team Member",
			Bio:      fmt.Sprintf("%s is part of the EcoFuture team.", entry.Name),
			Image:    res.Resolve(entry.Name),
			Category: "Team Members",
		})
		nextID++
	}

	return members
}

// Covers reports whether a curated member name accounts for an inventory
// key. The check is a deliberate heuristic: lowercased substring containment
// in either direction. It can claim coverage when an unrelated name happens
// to contain the key; the first matching member wins and no ambiguity is
// reported.
func Covers(memberName, inventoryName string) bool {
	member := strings.ToLower(memberName)
	key := strings.ToLower(inventoryName)
	return strings.Contains(member, key) || strings.Contains(key, member)
}

func coveredByAny(members []domain.TeamMember, inventoryName string) bool {
	for _, member := range members {
		if Covers(member.Name, inventoryName) {
			return true
		}
	}
	return false
}
