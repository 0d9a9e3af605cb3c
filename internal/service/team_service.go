package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ecofuture-uz/content-service/internal/domain"
	"github.com/ecofuture-uz/content-service/internal/events"
	"github.com/ecofuture-uz/content-service/internal/roster"
)

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9.]`)

// TeamService exposes the team roster to handlers and routes photo changes
// through the override store.
type TeamService struct {
	store      *roster.Store
	imageRoot  string
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewTeamService builds the service.
func NewTeamService(store *roster.Store, imageRoot string, dispatcher events.Dispatcher, logger *zap.Logger) *TeamService {
	return &TeamService{
		store:      store,
		imageRoot:  strings.TrimRight(imageRoot, "/"),
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Init loads the roster: persisted snapshot if one exists, computed default
// otherwise.
func (s *TeamService) Init(ctx context.Context) error {
	members, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	s.logger.Info("team roster loaded", zap.Int("members", len(members)))
	return nil
}

// Roster returns the roster in canonical order.
func (s *TeamService) Roster() []domain.TeamMember {
	return s.store.Members()
}

// View projects the roster through the given filter and sort options.
func (s *TeamService) View(opts roster.ViewOptions) []domain.TeamMember {
	return roster.Project(s.store.Members(), opts)
}

// Categories lists selectable category labels, "All" first.
func (s *TeamService) Categories() []string {
	return roster.Categories(s.store.Members())
}

// UpdatePhoto records a new image reference for the member with the given
// id. An unknown id is a silent no-op against the roster; no event is
// emitted for it.
func (s *TeamService) UpdatePhoto(ctx context.Context, adminID string, memberID int, image string) []domain.TeamMember {
	known := false
	for _, member := range s.store.Members() {
		if member.ID == memberID {
			known = true
			break
		}
	}

	members := s.store.UpdatePhoto(ctx, memberID, image)
	if known {
		s.publishEvent(ctx, events.Event{
			Type:     events.EventTeamPhotoUpdated,
			EntityID: fmt.Sprintf("%d", memberID),
			Actor:    events.Actor{AdminID: adminID},
			Payload: events.TeamPhotoUpdatedPayload{
				MemberID: memberID,
				Image:    image,
			},
		})
	}
	return members
}

// AttachUpload records an uploaded photo for a member. The service performs
// no image processing; it only derives the public reference the uploaded
// file will be served under and writes that through the override store.
func (s *TeamService) AttachUpload(ctx context.Context, adminID string, memberID int, fileName string) (string, []domain.TeamMember) {
	ref := s.imageRoot + "/" + sanitizeFileName(fileName)
	members := s.UpdatePhoto(ctx, adminID, memberID, ref)
	return ref, members
}

// sanitizeFileName prefixes a timestamp to keep uploads unique and replaces
// anything outside [a-zA-Z0-9.] so the name is safe as a URL path segment.
func sanitizeFileName(name string) string {
	cleaned := unsafeFileChars.ReplaceAllString(name, "_")
	return fmt.Sprintf("%d_%s", time.Now().UnixMilli(), cleaned)
}

func (s *TeamService) publishEvent(ctx context.Context, event events.Event) {
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
