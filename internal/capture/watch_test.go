package capture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/charmbracelet/taste/internal/flavor"
	"github.com/charmbracelet/taste/internal/pubsub"
)

func TestWatchPublishesOnChange(t *testing.T) {
	t.Parallel()

	b := &fakeBackend{name: "fake"}
	s := NewService(b)
	s.interval = 5 * time.Millisecond
	t.Cleanup(s.Shutdown)

	// Prime the change detector with the empty clipboard so the first
	// event is the change below, not the starting state.
	s.Snapshot()

	events := s.Subscribe(t.Context())
	go s.Watch(t.Context())

	b.setEntries([]Entry{TextEntry(flavor.TypePlain, "one")})

	select {
	case ev := <-events:
		require.Equal(t, pubsub.CreatedEvent, ev.Type)
		require.Len(t, ev.Payload.Items, 1)
		require.Equal(t, "one", ev.Payload.Items[0].Data)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change event")
	}

	// Unchanged contents stay quiet.
	select {
	case ev := <-events:
		t.Fatalf("unexpected event: %#v", ev)
	case <-time.After(50 * time.Millisecond):
	}

	b.setEntries([]Entry{TextEntry(flavor.TypePlain, "two")})
	select {
	case ev := <-events:
		require.Equal(t, "two", ev.Payload.Items[0].Data)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for second change event")
	}
}

func TestSnapshotPrimesChangeDetection(t *testing.T) {
	t.Parallel()

	b := &fakeBackend{name: "fake", entries: []Entry{TextEntry(flavor.TypePlain, "seen")}}
	s := NewService(b)
	s.interval = 5 * time.Millisecond
	t.Cleanup(s.Shutdown)

	snap := s.Snapshot()
	require.Len(t, snap.Items, 1)

	events := s.Subscribe(t.Context())
	go s.Watch(t.Context())

	// The watcher has already seen these contents via Snapshot.
	select {
	case ev := <-events:
		t.Fatalf("unexpected event for primed contents: %#v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestChecksumIgnoresTimeAndSource(t *testing.T) {
	t.Parallel()

	items := []flavor.Item{{Type: flavor.TypePlain, Data: "x", File: []byte{1}}}
	a := Snapshot{Items: items, Source: "a", Taken: time.Now()}
	b := Snapshot{Items: items, Source: "b", Taken: time.Now().Add(time.Hour)}
	require.Equal(t, checksum(a), checksum(b))

	c := Snapshot{Items: []flavor.Item{{Type: flavor.TypePlain, Data: "y"}}}
	require.NotEqual(t, checksum(a), checksum(c))
}
