package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToAllHandlers(t *testing.T) {
	d := NewInMemoryDispatcher(nil)

	var got []string
	d.Subscribe(EventContactMessageReceived, func(ctx context.Context, e Event) error {
		got = append(got, "first:"+e.ID)
		return errors.New("ignored")
	})
	d.Subscribe(EventContactMessageReceived, func(ctx context.Context, e Event) error {
		got = append(got, "second:"+e.ID)
		return nil
	})

	err := d.Publish(context.Background(), Event{ID: "evt-1", Type: EventContactMessageReceived})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ignored")
	assert.Equal(t, []string{"first:evt-1", "second:evt-1"}, got)
}

func TestDispatcherIgnoresUnsubscribedTypes(t *testing.T) {
	d := NewInMemoryDispatcher(nil)
	require.NoError(t, d.Publish(context.Background(), Event{Type: "unknown"}))
}

func TestDispatcherRecoversHandlerPanic(t *testing.T) {
	d := NewInMemoryDispatcher(nil)

	called := false
	d.Subscribe(EventContactMessageReceived, func(context.Context, Event) error {
		panic("boom")
	})
	d.Subscribe(EventContactMessageReceived, func(context.Context, Event) error {
		called = true
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventContactMessageReceived})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.True(t, called)
}
