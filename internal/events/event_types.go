package events

import (
	"time"

	"github.com/ecofuture-uz/content-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTeamPhotoUpdated   EventType = "team_photo_updated"
	EventVolunteerSubmitted EventType = "volunteer_submitted"
	EventVolunteerReviewed  EventType = "volunteer_reviewed"
	EventPostPublished      EventType = "post_published"
	EventProjectCreated     EventType = "project_created"
)

// Actor records who triggered an event; AdminID is empty for public actions.
type Actor struct {
	AdminID string `json:"admin_id,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  string      `json:"entity_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TeamPhotoUpdatedPayload payload.
type TeamPhotoUpdatedPayload struct {
	MemberID int    `json:"member_id"`
	Image    string `json:"image"`
}

// VolunteerSubmittedPayload payload.
type VolunteerSubmittedPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// VolunteerReviewedPayload payload.
type VolunteerReviewedPayload struct {
	Status domain.VolunteerStatus `json:"status"`
}

// PostPublishedPayload payload.
type PostPublishedPayload struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// ProjectCreatedPayload payload.
type ProjectCreatedPayload struct {
	Title string `json:"title"`
}
