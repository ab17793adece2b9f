package pubsub

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBrokerPublishSubscribe(t *testing.T) {
	t.Parallel()

	b := NewBroker[string]()
	t.Cleanup(b.Shutdown)

	ch := b.Subscribe(t.Context())
	b.Publish(CreatedEvent, "hello")

	select {
	case ev := <-ch:
		require.Equal(t, CreatedEvent, ev.Type)
		require.Equal(t, "hello", ev.Payload)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestBrokerSubscriberCount(t *testing.T) {
	t.Parallel()

	b := NewBroker[int]()
	t.Cleanup(b.Shutdown)

	require.Equal(t, 0, b.GetSubscriberCount())
	b.Subscribe(t.Context())
	b.Subscribe(t.Context())
	require.Equal(t, 2, b.GetSubscriberCount())
}

func TestBrokerShutdownClosesSubscribers(t *testing.T) {
	t.Parallel()

	b := NewBroker[int]()
	ch := b.Subscribe(t.Context())
	b.Shutdown()

	_, ok := <-ch
	require.False(t, ok)

	// Publishing after shutdown is a no-op.
	b.Publish(CreatedEvent, 1)
}

func TestBrokerSubscribeAfterShutdown(t *testing.T) {
	t.Parallel()

	b := NewBroker[int]()
	b.Shutdown()

	ch := b.Subscribe(t.Context())
	_, ok := <-ch
	require.False(t, ok)
}

func TestBrokerSlowSubscriberDoesNotBlock(t *testing.T) {
	t.Parallel()

	b := NewBroker[int]()
	t.Cleanup(b.Shutdown)

	b.Subscribe(t.Context())
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := range bufferSize * 2 {
			b.Publish(UpdatedEvent, i)
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("publisher blocked on a slow subscriber")
	}
}
