package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestPublish_FailingHandlerIsLoggedAndSkipped(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.WarnLevel)
	d := NewInMemoryDispatcher(zap.New(core))

	var calls []string
	d.Subscribe(EventMessageSent, func(context.Context, Event) error {
		calls = append(calls, "first")
		return errors.New("webhook down")
	})
	d.Subscribe(EventMessageSent, func(context.Context, Event) error {
		calls = append(calls, "second")
		return nil
	})

	err := d.Publish(context.Background(), Event{ID: "evt-1", Type: EventMessageSent})
	require.NoError(t, err)
	require.Equal(t, []string{"first", "second"}, calls)

	entries := logs.FilterMessage("event handler failed").All()
	require.Len(t, entries, 1)
	require.Equal(t, "evt-1", entries[0].ContextMap()["event_id"])
}

func TestPublish_NoListeners(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher(nil)
	require.NoError(t, d.Publish(context.Background(), Event{Type: EventStoryPosted}))
}
