package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/stagedoor/stagedoor-api/internal/domain"
	"github.com/stagedoor/stagedoor-api/internal/events"
	"github.com/stagedoor/stagedoor-api/internal/repository"
	apperrors "github.com/stagedoor/stagedoor-api/pkg/util"
)

// BookingService coordinates dancer booking requests and stylist responses.
type BookingService struct {
	bookings   repository.BookingRepository
	eventsRepo repository.EventRepository
	profiles   repository.ProfileRepository
	dispatcher events.Dispatcher
}

// NewBookingService builds the service.
func NewBookingService(bookings repository.BookingRepository, eventsRepo repository.EventRepository, profiles repository.ProfileRepository, dispatcher events.Dispatcher) *BookingService {
	return &BookingService{
		bookings:   bookings,
		eventsRepo: eventsRepo,
		profiles:   profiles,
		dispatcher: dispatcher,
	}
}

// Request creates a booking from a dancer against a stylist for an event.
func (s *BookingService) Request(ctx context.Context, dancerID, eventID, stylistUserID, note string) (*domain.Booking, error) {
	event, err := s.eventsRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("event", map[string]any{"event_id": eventID})
		}
		return nil, err
	}
	if event.Status != domain.EventStatusPublished {
		return nil, apperrors.NewConflict("event not open for booking", nil)
	}

	stylist, err := s.profiles.GetStylistByUserID(ctx, stylistUserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("stylist", map[string]any{"stylist_id": stylistUserID})
		}
		return nil, err
	}

	booking := &domain.Booking{
		EventID:    event.ID,
		DancerID:   dancerID,
		StylistID:  stylist.UserID,
		Status:     domain.BookingStatusRequested,
		Note:       note,
		PriceCents: stylist.HourlyRateCents,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventBookingRequested, booking.ID, events.Actor{Role: domain.RoleDancer, UserID: dancerID},
		events.BookingRequestedPayload{EventID: event.ID, StylistID: stylist.UserID, Note: note})
	return booking, nil
}

// Respond lets the owning stylist confirm or decline a requested booking.
func (s *BookingService) Respond(ctx context.Context, stylistUserID, bookingID string, accept bool) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("booking", map[string]any{"booking_id": bookingID})
		}
		return nil, err
	}
	if booking.StylistID != stylistUserID {
		return nil, apperrors.NewForbidden("booking belongs to another stylist")
	}
	if booking.Status != domain.BookingStatusRequested {
		return nil, apperrors.NewConflict("booking already resolved", map[string]any{"status": booking.Status})
	}

	newStatus := domain.BookingStatusDeclined
	eventType := events.EventBookingDeclined
	if accept {
		newStatus = domain.BookingStatusConfirmed
		eventType = events.EventBookingConfirmed
	}
	if err := s.bookings.UpdateStatus(ctx, booking.ID, newStatus); err != nil {
		return nil, err
	}

	s.publish(ctx, eventType, booking.ID, events.Actor{Role: domain.RoleStylist, UserID: stylistUserID},
		events.BookingStatusPayload{OldStatus: booking.Status, NewStatus: newStatus})
	booking.Status = newStatus
	return booking, nil
}

// Cancel lets the requesting dancer withdraw an unresolved booking.
func (s *BookingService) Cancel(ctx context.Context, dancerID, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("booking", map[string]any{"booking_id": bookingID})
		}
		return nil, err
	}
	if booking.DancerID != dancerID {
		return nil, apperrors.NewForbidden("booking belongs to another dancer")
	}
	if booking.Status == domain.BookingStatusCancelled || booking.Status == domain.BookingStatusDeclined {
		return nil, apperrors.NewConflict("booking already closed", map[string]any{"status": booking.Status})
	}

	if err := s.bookings.UpdateStatus(ctx, booking.ID, domain.BookingStatusCancelled); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventBookingCancelled, booking.ID, events.Actor{Role: domain.RoleDancer, UserID: dancerID},
		events.BookingStatusPayload{OldStatus: booking.Status, NewStatus: domain.BookingStatusCancelled})
	booking.Status = domain.BookingStatusCancelled
	return booking, nil
}

// ListForDancer returns the dancer's bookings, newest first.
func (s *BookingService) ListForDancer(ctx context.Context, dancerID string, limit, offset int) ([]*domain.Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.bookings.ListByDancer(ctx, dancerID, limit, offset)
}

// ListForStylist returns the stylist's inbox, newest first.
func (s *BookingService) ListForStylist(ctx context.Context, stylistUserID string, limit, offset int) ([]*domain.Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.bookings.ListByStylist(ctx, stylistUserID, limit, offset)
}

func (s *BookingService) publish(ctx context.Context, eventType events.EventType, bookingID string, actor events.Actor, payload any) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		BookingID: bookingID,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
