package results

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/taste/internal/flavor"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

const htmlFixture = `<p>Hello <b>world</b></p>`

func TestHTMLRendersInterpretedByDefault(t *testing.T) {
	t.Parallel()

	sty := testStyles(t)
	item := NewItem(sty, 1, flavor.Item{Type: flavor.TypeHTML, Data: htmlFixture})

	rendered := ansi.Strip(item.Render(80))
	require.Contains(t, rendered, "Hello")
	require.Contains(t, rendered, "world")
	require.NotContains(t, rendered, "<p>")
}

func TestHTMLShowCodeShowsLiteralSource(t *testing.T) {
	t.Parallel()

	sty := testStyles(t)
	item := NewItem(sty, 1, flavor.Item{Type: flavor.TypeHTML, Data: htmlFixture}).(*HTMLItem)

	handled, cmd := item.HandleKeyEvent(tea.KeyPressMsg{Code: 'c', Text: "c"})
	require.True(t, handled)
	require.NotNil(t, cmd)
	require.Equal(t, ControlChangedMsg{}, cmd())
	require.True(t, item.ShowCode())

	rendered := ansi.Strip(item.Render(80))
	require.Contains(t, rendered, "<p>")
	require.Contains(t, rendered, "</b>")
}

func TestHTMLToggleRoundTrip(t *testing.T) {
	t.Parallel()

	sty := testStyles(t)
	item := NewItem(sty, 1, flavor.Item{Type: flavor.TypeHTML, Data: htmlFixture}).(*HTMLItem)

	before := item.Render(80)

	press := tea.KeyPressMsg{Code: 'c', Text: "c"}
	item.HandleKeyEvent(press)
	require.NotEqual(t, before, item.Render(80))

	item.HandleKeyEvent(press)
	require.Equal(t, before, item.Render(80))
	require.Equal(t, htmlFixture, item.item.Data)
}

func TestHTMLFallsBackToTextOnBrokenMarkup(t *testing.T) {
	t.Parallel()

	sty := testStyles(t)
	// net/html parses almost anything, so the interpreted path still
	// produces the text content here.
	item := NewItem(sty, 1, flavor.Item{Type: flavor.TypeHTML, Data: "<div<div>broken</span>"})
	rendered := ansi.Strip(item.Render(80))
	require.Contains(t, rendered, "broken")
}
