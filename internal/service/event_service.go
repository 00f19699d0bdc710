package service

import (
	"context"
	"time"

	"github.com/stagedoor/stagedoor-api/internal/domain"
	"github.com/stagedoor/stagedoor-api/internal/repository"
	apperrors "github.com/stagedoor/stagedoor-api/pkg/util"
)

// EventService coordinates the public event listing and admin curation.
type EventService struct {
	events repository.EventRepository
}

// NewEventService builds the service.
func NewEventService(events repository.EventRepository) *EventService {
	return &EventService{events: events}
}

// CreateEventInput is the admin payload for publishing an event.
type CreateEventInput struct {
	Name        string
	Description string
	Venue       string
	City        string
	StartsAt    time.Time
	EndsAt      time.Time
	Publish     bool
}

// Create records a new event owned by the acting admin.
func (s *EventService) Create(ctx context.Context, createdBy string, input CreateEventInput) (*domain.Event, error) {
	if input.Name == "" || input.StartsAt.IsZero() {
		return nil, apperrors.NewValidationError("name and starts_at required", nil)
	}
	if !input.EndsAt.IsZero() && input.EndsAt.Before(input.StartsAt) {
		return nil, apperrors.NewValidationError("ends_at precedes starts_at", nil)
	}

	status := domain.EventStatusDraft
	if input.Publish {
		status = domain.EventStatusPublished
	}
	event := &domain.Event{
		Name:        input.Name,
		Description: input.Description,
		Venue:       input.Venue,
		City:        input.City,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		Status:      status,
		CreatedBy:   createdBy,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// ListUpcoming returns published future events.
func (s *EventService) ListUpcoming(ctx context.Context, limit, offset int) ([]*domain.Event, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.events.ListUpcoming(ctx, limit, offset)
}

// Get returns a single event.
func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	return s.events.GetByID(ctx, id)
}
