package stringext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeNewlines(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		in   string
		want string
	}{
		"crlf":     {"hi\r\nthere", "hi\nthere"},
		"bare cr":  {"hi\rthere", "hi\nthere"},
		"mixed":    {"a\r\nb\rc\nd", "a\nb\nc\nd"},
		"plain":    {"untouched", "untouched"},
		"empty":    {"", ""},
		"trailing": {"line\r\n", "line\n"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, NormalizeNewlines(tc.in))
		})
	}
}

func TestFirstLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, "one", FirstLine("one\ntwo"))
	require.Equal(t, "solo", FirstLine("solo"))
	require.Equal(t, "", FirstLine("\nrest"))
}
