package dto

import "github.com/ecofuture-uz/content-service/internal/domain"

// TeamMemberResponse is one roster entry as served to clients.
type TeamMemberResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
	Category string `json:"category"`
}

// TeamViewResponse is the filtered roster plus selectable categories.
type TeamViewResponse struct {
	Members    []TeamMemberResponse `json:"members"`
	Categories []string             `json:"categories"`
	Total      int                  `json:"total"`
}

// UpdatePhotoRequest records a new image reference for a member.
type UpdatePhotoRequest struct {
	Image string `json:"image"`
}

// UploadPhotoRequest records an uploaded file for a member. The service
// derives the public reference from the original filename.
type UploadPhotoRequest struct {
	FileName string `json:"file_name"`
}

// TeamMemberFromDomain maps a domain member to its response shape.
func TeamMemberFromDomain(member domain.TeamMember) TeamMemberResponse {
	return TeamMemberResponse{
		ID:       member.ID,
		Name:     member.Name,
		Role:     member.Role,
		Bio:      member.Bio,
		Image:    member.Image,
		Category: member.Category,
	}
}

// TeamMembersFromDomain maps a roster slice.
func TeamMembersFromDomain(members []domain.TeamMember) []TeamMemberResponse {
	out := make([]TeamMemberResponse, 0, len(members))
	for _, member := range members {
		out = append(out, TeamMemberFromDomain(member))
	}
	return out
}
