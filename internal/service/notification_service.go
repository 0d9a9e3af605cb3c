package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/ecofuture-uz/content-service/internal/config"
	"github.com/ecofuture-uz/content-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotifyConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotifyConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventVolunteerSubmitted, n.handleVolunteerSubmitted)
	n.dispatcher.Subscribe(events.EventVolunteerReviewed, n.handleVolunteerReviewed)
	n.dispatcher.Subscribe(events.EventTeamPhotoUpdated, n.handleTeamPhotoUpdated)
	n.dispatcher.Subscribe(events.EventPostPublished, n.handlePostPublished)
}

func (n *NotificationService) handleVolunteerSubmitted(ctx context.Context, event events.Event) error {
	n.logger.Info("VolunteerSubmitted", zap.String("submission_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleVolunteerReviewed(ctx context.Context, event events.Event) error {
	n.logger.Info("VolunteerReviewed", zap.String("submission_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleTeamPhotoUpdated(ctx context.Context, event events.Event) error {
	n.logger.Info("TeamPhotoUpdated", zap.String("member_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handlePostPublished(ctx context.Context, event events.Event) error {
	n.logger.Info("PostPublished", zap.String("post_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("entity_id", event.EntityID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("entity_id", event.EntityID),
		zap.String("event_type", string(event.Type)))
}
