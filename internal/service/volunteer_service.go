package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ecofuture-uz/content-service/internal/domain"
	"github.com/ecofuture-uz/content-service/internal/events"
	"github.com/ecofuture-uz/content-service/internal/repository"
)

// VolunteerService coordinates volunteer signups and their review.
type VolunteerService struct {
	submissions repository.VolunteerRepository
	dispatcher  events.Dispatcher
}

// VolunteerInput describes the public signup payload.
type VolunteerInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// NewVolunteerService builds the service.
func NewVolunteerService(submissions repository.VolunteerRepository, dispatcher events.Dispatcher) *VolunteerService {
	return &VolunteerService{submissions: submissions, dispatcher: dispatcher}
}

// Submit records a new volunteer signup from the public form.
func (s *VolunteerService) Submit(ctx context.Context, input VolunteerInput) (*domain.VolunteerSubmission, error) {
	submission := &domain.VolunteerSubmission{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Message: input.Message,
		Status:  domain.VolunteerStatusNew,
	}
	if err := s.submissions.Create(ctx, submission); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventVolunteerSubmitted,
		EntityID: submission.ID,
		Payload:  events.VolunteerSubmittedPayload{Name: submission.Name, Email: submission.Email},
	})
	return submission, nil
}

// List returns submissions for the admin area.
func (s *VolunteerService) List(ctx context.Context, status *domain.VolunteerStatus, limit, offset int) ([]domain.VolunteerSubmission, error) {
	return s.submissions.List(ctx, status, limit, offset)
}

// Review updates the review status of one submission.
func (s *VolunteerService) Review(ctx context.Context, adminID, id string, status domain.VolunteerStatus) (*domain.VolunteerSubmission, error) {
	if err := s.submissions.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	submission, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventVolunteerReviewed,
		EntityID: submission.ID,
		Actor:    events.Actor{AdminID: adminID},
		Payload:  events.VolunteerReviewedPayload{Status: submission.Status},
	})
	return submission, nil
}

func (s *VolunteerService) publishEvent(ctx context.Context, event events.Event) {
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
