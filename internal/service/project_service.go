package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ecofuture-uz/content-service/internal/domain"
	"github.com/ecofuture-uz/content-service/internal/events"
	"github.com/ecofuture-uz/content-service/internal/repository"
)

// ProjectService coordinates project workflows.
type ProjectService struct {
	projects   repository.ProjectRepository
	dispatcher events.Dispatcher
}

// ProjectInput describes create/update payloads.
type ProjectInput struct {
	Title       string
	Summary     string
	Description string
	Location    string
	Image       string
	Status      domain.ProjectStatus
	StartedAt   *time.Time
}

// NewProjectService builds the service.
func NewProjectService(projects repository.ProjectRepository, dispatcher events.Dispatcher) *ProjectService {
	return &ProjectService{projects: projects, dispatcher: dispatcher}
}

// List returns projects, optionally narrowed by status.
func (s *ProjectService) List(ctx context.Context, status *domain.ProjectStatus) ([]domain.Project, error) {
	return s.projects.List(ctx, status)
}

// Get returns one project.
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

// Create stores a new project.
func (s *ProjectService) Create(ctx context.Context, adminID string, input ProjectInput) (*domain.Project, error) {
	status := input.Status
	if status == "" {
		status = domain.ProjectStatusPlanned
	}
	project := &domain.Project{
		Title:       input.Title,
		Summary:     input.Summary,
		Description: input.Description,
		Location:    input.Location,
		Image:       input.Image,
		Status:      status,
		StartedAt:   input.StartedAt,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventProjectCreated,
		EntityID: project.ID,
		Actor:    events.Actor{AdminID: adminID},
		Payload:  events.ProjectCreatedPayload{Title: project.Title},
	})
	return project, nil
}

// Update replaces editable fields of a project.
func (s *ProjectService) Update(ctx context.Context, id string, input ProjectInput) (*domain.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	project.Title = input.Title
	project.Summary = input.Summary
	project.Description = input.Description
	project.Location = input.Location
	project.Image = input.Image
	if input.Status != "" {
		project.Status = input.Status
	}
	project.StartedAt = input.StartedAt
	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes a project.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.projects.Delete(ctx, id)
}

func (s *ProjectService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
