package ansiext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEscape(t *testing.T) {
	t.Parallel()

	require.Equal(t, "plain", Escape("plain"))
	require.Equal(t, "␛[31mred", Escape("\x1b[31mred"))
	require.Equal(t, "a␀b", Escape("a\x00b"))
	require.Equal(t, "del␡", Escape("del\x7f"))

	// Newlines and tabs carry layout and stay as-is.
	require.Equal(t, "two\nlines\tok", Escape("two\nlines\tok"))
}
