package dto

import (
	"time"

	"github.com/ecofuture-uz/content-service/internal/domain"
)

// VolunteerSubmitRequest payload for the public get-involved form.
type VolunteerSubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// VolunteerReviewRequest payload for admin review.
type VolunteerReviewRequest struct {
	Status domain.VolunteerStatus `json:"status"`
}

// VolunteerResponse response shape.
type VolunteerResponse struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Email     string                 `json:"email"`
	Phone     string                 `json:"phone"`
	Message   string                 `json:"message"`
	Status    domain.VolunteerStatus `json:"status"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// VolunteerFromDomain maps a submission to its response shape.
func VolunteerFromDomain(submission *domain.VolunteerSubmission) VolunteerResponse {
	return VolunteerResponse{
		ID:        submission.ID,
		Name:      submission.Name,
		Email:     submission.Email,
		Phone:     submission.Phone,
		Message:   submission.Message,
		Status:    submission.Status,
		CreatedAt: submission.CreatedAt,
		UpdatedAt: submission.UpdatedAt,
	}
}
