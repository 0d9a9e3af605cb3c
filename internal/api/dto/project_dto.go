package dto

import (
	"time"

	"github.com/ecofuture-uz/content-service/internal/domain"
)

// ProjectRequest payload for create/update.
type ProjectRequest struct {
	Title       string               `json:"title"`
	Summary     string               `json:"summary"`
	Description string               `json:"description"`
	Location    string               `json:"location"`
	Image       string               `json:"image"`
	Status      domain.ProjectStatus `json:"status"`
	StartedAt   *time.Time           `json:"started_at"`
}

// ProjectResponse response shape.
type ProjectResponse struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Summary     string               `json:"summary"`
	Description string               `json:"description,omitempty"`
	Location    string               `json:"location"`
	Image       string               `json:"image"`
	Status      domain.ProjectStatus `json:"status"`
	StartedAt   *time.Time           `json:"started_at"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// ProjectFromDomain maps a project, optionally including the description.
func ProjectFromDomain(project *domain.Project, includeDescription bool) ProjectResponse {
	resp := ProjectResponse{
		ID:        project.ID,
		Title:     project.Title,
		Summary:   project.Summary,
		Location:  project.Location,
		Image:     project.Image,
		Status:    project.Status,
		StartedAt: project.StartedAt,
		CreatedAt: project.CreatedAt,
		UpdatedAt: project.UpdatedAt,
	}
	if includeDescription {
		resp.Description = project.Description
	}
	return resp
}
