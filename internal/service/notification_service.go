package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/stagedoor/stagedoor-api/internal/events"
)

// NotificationService reacts to booking lifecycle events. Delivery is a
// stub; the log line is the notification for now.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventBookingRequested, n.handleBookingRequested)
	n.dispatcher.Subscribe(events.EventBookingConfirmed, n.handleBookingResolved)
	n.dispatcher.Subscribe(events.EventBookingDeclined, n.handleBookingResolved)
	n.dispatcher.Subscribe(events.EventBookingCancelled, n.handleBookingResolved)
}

func (n *NotificationService) handleBookingRequested(_ context.Context, event events.Event) error {
	n.logger.Info("BookingRequested",
		zap.String("booking_id", event.BookingID),
		zap.String("actor_id", event.Actor.UserID),
		zap.Any("payload", event.Payload),
	)
	return nil
}

func (n *NotificationService) handleBookingResolved(_ context.Context, event events.Event) error {
	n.logger.Info(string(event.Type),
		zap.String("booking_id", event.BookingID),
		zap.String("actor_id", event.Actor.UserID),
		zap.Any("payload", event.Payload),
	)
	return nil
}
