package results

import (
	"testing"

	"github.com/charmbracelet/taste/internal/flavor"
	"github.com/charmbracelet/taste/internal/ui/styles"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func testStyles(t *testing.T) *styles.Styles {
	t.Helper()
	sty := styles.DefaultStyles()
	return &sty
}

func TestNewItemBindsByMediaType(t *testing.T) {
	t.Parallel()

	sty := testStyles(t)

	tests := []struct {
		typ  string
		name string
	}{
		{flavor.TypePlain, "Plain Text"},
		{flavor.TypeHTML, "HTML"},
		{flavor.TypeRTF, "Rich Text Format"},
		{flavor.TypeURIList, "URI List"},
		{flavor.TypeVCard, "vCard"},
		{flavor.TypePNG, "PNG image"},
		{flavor.TypeJPEG, "JPEG image"},
	}
	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			t.Parallel()
			item := NewItem(sty, 1, flavor.Item{Type: tt.typ, Data: "x"})
			require.Equal(t, tt.name, item.DisplayName())
		})
	}
}

func TestNewItemFallsBackToDefault(t *testing.T) {
	t.Parallel()

	sty := testStyles(t)
	item := NewItem(sty, 1, flavor.Item{Type: "application/x-custom", Data: "raw bytes"})
	require.IsType(t, &DefaultItem{}, item)
	require.Equal(t, "application/x-custom", item.DisplayName())

	rendered := ansi.Strip(item.Render(80))
	require.Contains(t, rendered, "application/x-custom")
	require.Contains(t, rendered, "raw bytes")
}

func TestNewItemNormalizesTypeParameters(t *testing.T) {
	t.Parallel()

	sty := testStyles(t)
	item := NewItem(sty, 1, flavor.Item{Type: "TEXT/PLAIN; charset=utf-8", Data: "x"})
	require.Equal(t, "Plain Text", item.DisplayName())
}

func TestItemsForNumbersPositionsFromOne(t *testing.T) {
	t.Parallel()

	sty := testStyles(t)
	items := ItemsFor(sty, []flavor.Item{
		{Type: flavor.TypeHTML, Data: "<b>hi</b>"},
		{Type: flavor.TypePlain, Data: "hi"},
	})
	require.Len(t, items, 2)
	require.Contains(t, ansi.Strip(items[0].Render(80)), "1. HTML")
	require.Contains(t, ansi.Strip(items[1].Render(80)), "2. Plain Text")
}

func TestItemsForAssignsUniqueIDs(t *testing.T) {
	t.Parallel()

	sty := testStyles(t)
	items := ItemsFor(sty, []flavor.Item{
		{Type: flavor.TypePlain, Data: "a"},
		{Type: flavor.TypePlain, Data: "a"},
	})
	require.NotEmpty(t, items[0].ID())
	require.NotEmpty(t, items[1].ID())
	require.NotEqual(t, items[0].ID(), items[1].ID())
}

func TestRenderIdempotent(t *testing.T) {
	t.Parallel()

	sty := testStyles(t)
	for _, itm := range []flavor.Item{
		{Type: flavor.TypePlain, Data: "hello there"},
		{Type: flavor.TypeHTML, Data: "<p>hello</p>"},
		{Type: flavor.TypeRTF, Data: `{\rtf1 hello}`},
		{Type: flavor.TypeURIList, Data: "https://charm.land\n"},
		{Type: "application/x-custom", Data: "zzz"},
	} {
		item := NewItem(sty, 1, itm)
		first := item.Render(72)
		require.Equal(t, first, item.Render(72), "type %s", itm.Type)
	}
}

func TestHeadingShowsMediaTypeTag(t *testing.T) {
	t.Parallel()

	sty := testStyles(t)
	item := NewItem(sty, 3, flavor.Item{Type: flavor.TypeURIList, Data: "https://charm.land"})
	rendered := ansi.Strip(item.Render(80))
	require.Contains(t, rendered, "3. URI List")
	require.Contains(t, rendered, "text/uri-list")
}
