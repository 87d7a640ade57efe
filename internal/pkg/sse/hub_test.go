package sse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesSubscriber(t *testing.T) {
	t.Parallel()
	hub := NewHub()
	ch, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	hub.Publish("user-1", Event{UserID: "user-1", Event: "notification", Data: "hello"})

	select {
	case event := <-ch:
		assert.Equal(t, "notification", event.Event)
		assert.Equal(t, "hello", event.Data)
	case <-time.After(time.Second):
		t.Fatal("expected an event")
	}
}

func TestHub_PublishToOtherUserNotReceived(t *testing.T) {
	t.Parallel()
	hub := NewHub()
	ch, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	hub.Publish("user-2", Event{UserID: "user-2", Event: "notification"})

	select {
	case event := <-ch:
		t.Fatalf("unexpected event: %+v", event)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_MultipleSubscribersSameUser(t *testing.T) {
	t.Parallel()
	hub := NewHub()
	ch1, cleanup1 := hub.Subscribe("user-1")
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe("user-1")
	defer cleanup2()

	require.Equal(t, 2, hub.SubscriberCount("user-1"))

	hub.Publish("user-1", Event{UserID: "user-1", Event: "notification"})

	for _, ch := range []chan Event{ch1, ch2} {
		select {
		case event := <-ch:
			assert.Equal(t, "notification", event.Event)
		case <-time.After(time.Second):
			t.Fatal("expected every subscriber to receive the event")
		}
	}
}

func TestHub_CleanupRemovesSubscription(t *testing.T) {
	t.Parallel()
	hub := NewHub()
	ch, cleanup := hub.Subscribe("user-1")

	cleanup()

	assert.Equal(t, 0, hub.SubscriberCount("user-1"))
	_, open := <-ch
	assert.False(t, open)
}

func TestHub_CleanupIsIdempotent(t *testing.T) {
	t.Parallel()
	hub := NewHub()
	_, cleanup := hub.Subscribe("user-1")

	cleanup()
	assert.NotPanics(t, cleanup)
}

func TestHub_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	t.Parallel()
	hub := NewHub()
	_, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			hub.Publish("user-1", Event{UserID: "user-1", Event: "notification"})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber buffer")
	}
}

func TestHub_PublishToMany(t *testing.T) {
	t.Parallel()
	hub := NewHub()
	ch1, cleanup1 := hub.Subscribe("user-1")
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe("user-2")
	defer cleanup2()

	hub.PublishToMany([]string{"user-1", "user-2"}, Event{Event: "notification"})

	event1 := <-ch1
	assert.Equal(t, "user-1", event1.UserID)
	event2 := <-ch2
	assert.Equal(t, "user-2", event2.UserID)
}
