package domain

import "time"

// ProjectStatus enumerates lifecycle states shown on the projects page.
type ProjectStatus string

const (
	ProjectStatusPlanned   ProjectStatus = "PLANNED"
	ProjectStatusOngoing   ProjectStatus = "ONGOING"
	ProjectStatusCompleted ProjectStatus = "COMPLETED"
)

// Project models an environmental initiative presented on the site.
type Project struct {
	ID          string
	Title       string
	Summary     string
	Description string
	Location    string
	Image       string
	Status      ProjectStatus
	StartedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
