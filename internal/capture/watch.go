package capture

import (
	"context"
	"io"
	"time"

	"github.com/zeebo/xxh3"

	"github.com/charmbracelet/taste/internal/csync"
	"github.com/charmbracelet/taste/internal/pubsub"
)

const defaultPollInterval = 250 * time.Millisecond

// Service owns clipboard reads for the app and broadcasts snapshots to
// subscribers.
type Service struct {
	*pubsub.Broker[Snapshot]

	backend  Backend
	interval time.Duration
	lastSum  *csync.Value[uint64]
}

var (
	_ pubsub.Subscriber[Snapshot] = (*Service)(nil)
	_ pubsub.Publisher[Snapshot]  = (*Service)(nil)
)

// NewService creates a service reading through the given backend.
func NewService(backend Backend) *Service {
	return &Service{
		Broker:   pubsub.NewBroker[Snapshot](),
		backend:  backend,
		interval: defaultPollInterval,
		lastSum:  csync.NewValue(uint64(0)),
	}
}

// Backend returns the backend the service reads through.
func (s *Service) Backend() Backend {
	return s.backend
}

// Snapshot reads the clipboard once. The read also primes the watcher's
// change detector so watching does not immediately republish contents
// that are already on screen.
func (s *Service) Snapshot() Snapshot {
	snap := Take(s.backend)
	s.lastSum.Set(checksum(snap))
	return snap
}

// Watch polls the clipboard until the context is canceled, publishing a
// snapshot every time the contents change.
func (s *Service) Watch(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap := Take(s.backend)
			sum := checksum(snap)
			if sum == s.lastSum.Get() {
				continue
			}
			s.lastSum.Set(sum)
			s.Publish(pubsub.CreatedEvent, snap)
		}
	}
}

// checksum fingerprints a snapshot's contents for change detection. The
// source and timestamp are excluded so identical contents compare equal
// across reads.
func checksum(snap Snapshot) uint64 {
	h := xxh3.New()
	for _, item := range snap.Items {
		_, _ = io.WriteString(h, item.Type)
		_, _ = h.Write([]byte{0})
		_, _ = io.WriteString(h, item.Data)
		_, _ = h.Write([]byte{0})
		_, _ = h.Write(item.File)
		_, _ = h.Write([]byte{0xff})
	}
	return h.Sum64()
}
