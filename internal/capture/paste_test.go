package capture

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charmbracelet/taste/internal/flavor"
)

func TestFromPastePlainText(t *testing.T) {
	t.Parallel()

	snap := FromPaste("hello from the terminal")
	require.Len(t, snap.Items, 1)
	require.Equal(t, flavor.TypePlain, snap.Items[0].Type)
	require.Equal(t, "hello from the terminal", snap.Items[0].Data)
	require.Equal(t, "paste", snap.Source)
}

func TestFromPasteKeepsCarriageReturns(t *testing.T) {
	t.Parallel()

	// Normalization is the renderer's job; the model keeps data verbatim.
	snap := FromPaste("hi\r\nthere")
	require.Len(t, snap.Items, 1)
	require.Equal(t, "hi\r\nthere", snap.Items[0].Data)
}

func TestFromPasteSniffsHTML(t *testing.T) {
	t.Parallel()

	body := "<!DOCTYPE html><p>The <b>letter</b>.</p>"
	snap := FromPaste(body)
	require.Len(t, snap.Items, 2)
	require.Equal(t, flavor.TypeHTML, snap.Items[0].Type)
	require.Equal(t, body, snap.Items[0].Data)
	require.Equal(t, flavor.TypePlain, snap.Items[1].Type)
	require.Equal(t, body, snap.Items[1].Data)
}

func TestFromPasteEmpty(t *testing.T) {
	t.Parallel()

	snap := FromPaste("")
	require.NotNil(t, snap.Items)
	require.Empty(t, snap.Items)
}

func TestFromPasteFilePaths(t *testing.T) {
	dir := t.TempDir()
	one := filepath.Join(dir, "one.txt")
	two := filepath.Join(dir, "two.txt")
	require.NoError(t, os.WriteFile(one, []byte("1"), 0o600))
	require.NoError(t, os.WriteFile(two, []byte("2"), 0o600))

	snap := FromPaste(one + "\n" + two)
	require.GreaterOrEqual(t, len(snap.Items), 2)
	require.Equal(t, flavor.TypeURIList, snap.Items[0].Type)

	uris := strings.Split(snap.Items[0].Data, "\n")
	require.Len(t, uris, 2)
	require.True(t, strings.HasPrefix(uris[0], "file://"))
	require.Contains(t, uris[0], "one.txt")
	require.Contains(t, uris[1], "two.txt")

	last := snap.Items[len(snap.Items)-1]
	require.Equal(t, flavor.TypePlain, last.Type)
}

func TestParsePastedPathsRejectsProse(t *testing.T) {
	t.Parallel()

	require.Nil(t, parsePastedPaths("just some words"))
	require.Nil(t, parsePastedPaths("one\ntwo\nthree"))
}

func TestUnixPathsEscapes(t *testing.T) {
	t.Parallel()

	got := unixPaths(`/tmp/with\ space/file.txt /tmp/plain.txt`)
	require.Equal(t, []string{"/tmp/with space/file.txt", "/tmp/plain.txt"}, got)
}

func TestWindowsTerminalPaths(t *testing.T) {
	t.Parallel()

	got := windowsTerminalPaths(`"C:\one.txt" "C:\two and space.txt"`)
	require.Equal(t, []string{`C:\one.txt`, `C:\two and space.txt`}, got)

	require.Nil(t, windowsTerminalPaths(`"C:\unclosed`))
	require.Nil(t, windowsTerminalPaths(`stray "C:\x.txt"`))
}
