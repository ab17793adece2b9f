package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTMLToMarkdown(t *testing.T) {
	t.Parallel()

	got, err := HTMLToMarkdown(`<h1>Hello</h1><p>There is <b>bold</b> text here.</p>`)
	require.NoError(t, err)
	require.Contains(t, got, "# Hello")
	require.Contains(t, got, "**bold**")
}

func TestHTMLToMarkdownStripsNoise(t *testing.T) {
	t.Parallel()

	got, err := HTMLToMarkdown(`<style>p { color: red }</style><script>alert(1)</script><p>kept</p>`)
	require.NoError(t, err)
	require.Contains(t, got, "kept")
	require.NotContains(t, got, "alert")
	require.NotContains(t, got, "color: red")
}

func TestHTMLToText(t *testing.T) {
	t.Parallel()

	got, err := HTMLToText("<div>hello\n\t  <span>there</span></div>")
	require.NoError(t, err)
	require.Equal(t, "hello there", got)
}
