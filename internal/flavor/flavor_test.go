package flavor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMediaType(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		typ  string
		want string
	}{
		"bare":       {"text/plain", "text/plain"},
		"params":     {"text/plain; charset=utf-8", "text/plain"},
		"case":       {"Text/HTML", "text/html"},
		"whitespace": {"  image/png ", "image/png"},
		"custom":     {"application/x-custom", "application/x-custom"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Item{Type: tc.typ}.MediaType())
		})
	}
}

func TestSubtype(t *testing.T) {
	t.Parallel()

	require.Equal(t, "png", Item{Type: "image/png"}.Subtype())
	require.Equal(t, "jpeg", Item{Type: "image/jpeg; foo=bar"}.Subtype())
	require.Equal(t, "weird", Item{Type: "weird"}.Subtype())
}

func TestIsImage(t *testing.T) {
	t.Parallel()

	require.True(t, Item{Type: TypePNG}.IsImage())
	require.True(t, Item{Type: "image/webp"}.IsImage())
	require.False(t, Item{Type: TypePlain}.IsImage())
}

func TestHasFile(t *testing.T) {
	t.Parallel()

	require.False(t, Item{}.HasFile())
	require.False(t, Item{Data: "x"}.HasFile())
	require.True(t, Item{File: []byte{}}.HasFile())
	require.True(t, Item{File: []byte{1}}.HasFile())
}
