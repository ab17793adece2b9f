package home

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShort(t *testing.T) {
	t.Parallel()

	if homedir == "" {
		t.Skip("no home directory available")
	}

	require.Equal(t, "~", Short(homedir))
	require.Equal(
		t,
		filepath.Join("~", "foo", "bar"),
		Short(filepath.Join(homedir, "foo", "bar")),
	)
	require.Equal(t, "/somewhere/else", Short("/somewhere/else"))
}

func TestLong(t *testing.T) {
	t.Parallel()

	if homedir == "" {
		t.Skip("no home directory available")
	}

	require.Equal(t, homedir, Long("~"))
	require.Equal(t, filepath.Join(homedir, "foo"), Long(filepath.ToSlash(filepath.Join("~", "foo"))))
	require.Equal(t, "/no/tilde", Long("/no/tilde"))
}

func TestShortLongRoundTrip(t *testing.T) {
	t.Parallel()

	if homedir == "" {
		t.Skip("no home directory available")
	}

	p := filepath.Join(homedir, "taste", "logs")
	require.Equal(t, p, Long(Short(p)))
}
