package results

import (
	"os"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/taste/internal/flavor"
	"github.com/charmbracelet/taste/internal/ui/util"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

var vcardFixture = []byte("BEGIN:VCARD\r\nVERSION:3.0\r\nFN:Ada Lovelace\r\nEND:VCARD\r\n")

func TestVCardDecodeFlow(t *testing.T) {
	t.Parallel()

	sty := testStyles(t)
	item := NewItem(sty, 1, flavor.Item{Type: flavor.TypeVCard, File: vcardFixture}).(*VCardItem)

	rendered := ansi.Strip(item.Render(80))
	require.Contains(t, rendered, "decoding vcard")

	cmd := item.Decode()
	require.NotNil(t, cmd)
	msg, ok := cmd().(VCardDecodedMsg)
	require.True(t, ok)
	require.Equal(t, item.ID(), msg.ID)
	require.NoError(t, msg.Err)

	item.ApplyDecode(msg)
	rendered = ansi.Strip(item.Render(80))
	require.NotContains(t, rendered, "decoding vcard")
	require.Contains(t, rendered, "FN:Ada Lovelace")
	require.NotContains(t, rendered, "\r")
}

func TestVCardDecodeStripsByteOrderMark(t *testing.T) {
	t.Parallel()

	payload := append([]byte{0xEF, 0xBB, 0xBF}, "BEGIN:VCARD"...)
	text, err := decodeVCardText(payload)
	require.NoError(t, err)
	require.Equal(t, "BEGIN:VCARD", text)
}

func TestVCardDecodeHandlesUTF16(t *testing.T) {
	t.Parallel()

	payload := []byte{0xFF, 0xFE, 'B', 0, 'E', 0, 'G', 0, 'I', 0, 'N', 0}
	text, err := decodeVCardText(payload)
	require.NoError(t, err)
	require.Equal(t, "BEGIN", text)
}

func TestVCardWithoutPayloadDegrades(t *testing.T) {
	t.Parallel()

	sty := testStyles(t)
	item := NewItem(sty, 1, flavor.Item{Type: flavor.TypeVCard, Data: "vcard"}).(*VCardItem)

	require.Nil(t, item.Decode())
	rendered := ansi.Strip(item.Render(80))
	require.Contains(t, rendered, "no vcard payload")
	require.NotContains(t, rendered, "save "+VCardFileName)
}

func TestVCardSaveWritesWorkingDirFile(t *testing.T) {
	t.Chdir(t.TempDir())

	sty := testStyles(t)
	item := NewItem(sty, 1, flavor.Item{Type: flavor.TypeVCard, File: vcardFixture}).(*VCardItem)

	rendered := ansi.Strip(item.Render(80))
	require.Contains(t, rendered, "save "+VCardFileName)

	handled, cmd := item.HandleKeyEvent(tea.KeyPressMsg{Code: 's', Text: "s"})
	require.True(t, handled)
	require.NotNil(t, cmd)
	require.Equal(t, util.NewInfoMsg("saved "+VCardFileName), cmd())

	data, err := os.ReadFile(VCardFileName)
	require.NoError(t, err)
	require.Equal(t, vcardFixture, data)
}
