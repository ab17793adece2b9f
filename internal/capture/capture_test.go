package capture

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/charmbracelet/taste/internal/flavor"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeBackend struct {
	name    string
	mu      sync.Mutex
	entries []Entry
	err     error
}

func (f *fakeBackend) Name() string { return f.name }

func (f *fakeBackend) Available() bool { return true }

func (f *fakeBackend) Entries() ([]Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.entries, f.err
}

func (f *fakeBackend) setEntries(entries []Entry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = entries
}

func TestTakePreservesCountAndOrder(t *testing.T) {
	t.Parallel()

	b := &fakeBackend{name: "fake", entries: []Entry{
		TextEntry(flavor.TypeHTML, "<b>hi</b>"),
		TextEntry(flavor.TypePlain, "hi"),
		BinaryEntry(flavor.TypePNG, []byte{1, 2, 3}),
	}}

	snap := Take(b)
	require.Len(t, snap.Items, 3)
	require.Equal(t, flavor.TypeHTML, snap.Items[0].Type)
	require.Equal(t, flavor.TypePlain, snap.Items[1].Type)
	require.Equal(t, flavor.TypePNG, snap.Items[2].Type)
	require.Equal(t, "fake", snap.Source)
	for _, item := range snap.Items {
		require.NotEmpty(t, item.Type)
	}
}

func TestTakeFillsMissingType(t *testing.T) {
	t.Parallel()

	b := &fakeBackend{name: "fake", entries: []Entry{TextEntry("", "mystery")}}
	snap := Take(b)
	require.Len(t, snap.Items, 1)
	require.Equal(t, fallbackType, snap.Items[0].Type)
	require.Equal(t, "mystery", snap.Items[0].Data)
}

func TestTakeReadFailureYieldsEmptySnapshot(t *testing.T) {
	t.Parallel()

	b := &fakeBackend{name: "fake", err: errors.New("boom")}
	snap := Take(b)
	require.NotNil(t, snap.Items)
	require.Empty(t, snap.Items)
}

func TestTakeBinaryPayload(t *testing.T) {
	t.Parallel()

	blob := []byte{0x89, 0x50, 0x4e, 0x47}
	b := &fakeBackend{name: "fake", entries: []Entry{BinaryEntry(flavor.TypePNG, blob)}}
	snap := Take(b)
	require.Len(t, snap.Items, 1)
	require.Equal(t, blob, snap.Items[0].File)
	require.Empty(t, snap.Items[0].Data)
}

func TestNormalizeTargets(t *testing.T) {
	t.Parallel()

	t.Run("protocol targets dropped", func(t *testing.T) {
		t.Parallel()
		got := normalizeTargets([]string{
			"TIMESTAMP", "TARGETS", "MULTIPLE", "SAVE_TARGETS",
			"text/html", "text/plain",
		})
		require.Equal(t, []string{"text/html", "text/plain"}, got)
	})

	t.Run("utf8 string maps to plain when nothing else does", func(t *testing.T) {
		t.Parallel()
		got := normalizeTargets([]string{"UTF8_STRING", "STRING", "image/png"})
		require.Equal(t, []string{"text/plain", "image/png"}, got)
	})

	t.Run("utf8 string dropped when plain exists", func(t *testing.T) {
		t.Parallel()
		got := normalizeTargets([]string{"UTF8_STRING", "text/plain;charset=utf-8"})
		require.Equal(t, []string{"text/plain;charset=utf-8"}, got)
	})

	t.Run("exact duplicates collapse", func(t *testing.T) {
		t.Parallel()
		got := normalizeTargets([]string{"text/html", "text/html", "text/plain"})
		require.Equal(t, []string{"text/html", "text/plain"}, got)
	})

	t.Run("parameterized types kept distinct", func(t *testing.T) {
		t.Parallel()
		got := normalizeTargets([]string{"text/plain", "text/plain;charset=utf-8"})
		require.Equal(t, []string{"text/plain", "text/plain;charset=utf-8"}, got)
	})
}

func TestReadsBinary(t *testing.T) {
	t.Parallel()

	require.True(t, readsBinary("image/png"))
	require.True(t, readsBinary("image/jpeg"))
	require.True(t, readsBinary("text/vcard"))
	require.False(t, readsBinary("text/plain"))
	require.False(t, readsBinary("text/html"))
}

func TestDetectHonorsOverride(t *testing.T) {
	t.Parallel()

	b := Detect("basic")
	require.Equal(t, "basic", b.Name())
}

func TestDetectUnknownNameFallsThrough(t *testing.T) {
	t.Parallel()

	require.NotNil(t, Detect("no-such-backend"))
}
