package fsext

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupFindsTargetsUpward(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(root, "taste.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "taste.json"), []byte("{}"), 0o644))

	found, err := Lookup(nested, "taste.json")
	require.NoError(t, err)
	require.Contains(t, found, filepath.Join(nested, "taste.json"))
	require.Contains(t, found, filepath.Join(root, "taste.json"))

	// Deeper matches come first.
	require.Equal(t, filepath.Join(nested, "taste.json"), found[0])
}

func TestLookupNoTargets(t *testing.T) {
	t.Parallel()

	found, err := Lookup(t.TempDir())
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestOwner(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := Owner(dir)
	require.NoError(t, err)

	_, err = Owner(filepath.Join(dir, "missing"))
	require.Error(t, err)
}
