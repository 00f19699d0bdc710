package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/stagedoor/stagedoor-api/internal/events"
)

func TestPublishInvokesSubscribers(t *testing.T) {
	d := events.NewInMemoryDispatcher(zap.NewNop())

	var seen []string
	d.Subscribe(events.EventBookingRequested, func(_ context.Context, e events.Event) error {
		seen = append(seen, e.BookingID)
		return nil
	})
	d.Subscribe(events.EventBookingConfirmed, func(_ context.Context, e events.Event) error {
		seen = append(seen, "confirmed:"+e.BookingID)
		return nil
	})

	err := d.Publish(context.Background(), events.Event{
		ID:        "evt-1",
		Type:      events.EventBookingRequested,
		BookingID: "booking-1",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"booking-1"}, seen)
}

func TestPublishLogsHandlerFailureAndContinues(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	d := events.NewInMemoryDispatcher(zap.New(core))

	delivered := 0
	d.Subscribe(events.EventBookingRequested, func(context.Context, events.Event) error {
		return errors.New("mail relay down")
	})
	d.Subscribe(events.EventBookingRequested, func(context.Context, events.Event) error {
		delivered++
		return nil
	})

	err := d.Publish(context.Background(), events.Event{
		ID:        "evt-2",
		Type:      events.EventBookingRequested,
		BookingID: "booking-2",
	})
	require.NoError(t, err)

	// The failing handler must not block the next one, and the failure
	// must show up in the log.
	assert.Equal(t, 1, delivered)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "booking event handler failed", entry.Message)
	assert.Equal(t, "booking-2", entry.ContextMap()["booking_id"])
}
