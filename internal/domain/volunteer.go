package domain

import "time"

// VolunteerStatus tracks review progress of a submission.
type VolunteerStatus string

const (
	VolunteerStatusNew      VolunteerStatus = "NEW"
	VolunteerStatusReviewed VolunteerStatus = "REVIEWED"
	VolunteerStatusAccepted VolunteerStatus = "ACCEPTED"
	VolunteerStatusDeclined VolunteerStatus = "DECLINED"
)

// VolunteerSubmission is a signup sent through the get-involved form.
type VolunteerSubmission struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Message   string
	Status    VolunteerStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
