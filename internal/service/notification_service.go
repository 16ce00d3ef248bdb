package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/trip-board/internal/config"
	"github.com/spec-kit/trip-board/internal/events"
)

// NotificationService handles emitting notifications for trip events.
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
	n.dispatcher.Subscribe(events.EventTripCreated, n.handleTripCreated)
	n.dispatcher.Subscribe(events.EventTripClosed, n.handleTripClosed)
}

func (n *NotificationService) handleTripCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("TripCreated", zap.Int64("trip_id", event.TripID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleTripClosed(ctx context.Context, event events.Event) error {
	n.logger.Info("TripClosed", zap.Int64("trip_id", event.TripID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.Int64("trip_id", event.TripID),
		zap.String("event_type", string(event.Type)))
}
