package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryDispatcher(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers to all subscribers of the type", func(t *testing.T) {
		d := NewInMemoryDispatcher()
		var got []string
		d.Subscribe(EventTeamPhotoUpdated, func(_ context.Context, e Event) error {
			got = append(got, "first:"+e.EntityID)
			return nil
		})
		d.Subscribe(EventTeamPhotoUpdated, func(_ context.Context, e Event) error {
			got = append(got, "second:"+e.EntityID)
			return nil
		})
		d.Subscribe(EventPostPublished, func(_ context.Context, _ Event) error {
			got = append(got, "unrelated")
			return nil
		})

		err := d.Publish(ctx, Event{
			ID:        "evt-1",
			Type:      EventTeamPhotoUpdated,
			EntityID:  "7",
			Timestamp: time.Now(),
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"first:7", "second:7"}, got)
	})

	t.Run("failing handler does not stop the rest", func(t *testing.T) {
		d := NewInMemoryDispatcher()
		reached := false
		d.Subscribe(EventVolunteerSubmitted, func(_ context.Context, _ Event) error {
			return errors.New("handler down")
		})
		d.Subscribe(EventVolunteerSubmitted, func(_ context.Context, _ Event) error {
			reached = true
			return nil
		})

		err := d.Publish(ctx, Event{Type: EventVolunteerSubmitted})

		require.NoError(t, err)
		assert.True(t, reached)
	})

	t.Run("publish with no subscribers is a no-op", func(t *testing.T) {
		d := NewInMemoryDispatcher()
		assert.NoError(t, d.Publish(ctx, Event{Type: EventProjectCreated}))
	})
}
