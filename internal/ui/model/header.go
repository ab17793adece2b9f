package model

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/charmbracelet/taste/internal/capture"
	"github.com/charmbracelet/taste/internal/fsext"
	"github.com/charmbracelet/taste/internal/ui/common"
	"github.com/charmbracelet/taste/internal/ui/logo"
	"github.com/charmbracelet/taste/internal/ui/styles"
	"github.com/charmbracelet/taste/internal/version"
)

const (
	headerDiag     = "╱"
	minHeaderDiags = 3
	leftPadding    = 1
	rightPadding   = 1
)

// header draws the wordmark, either as the full landing logo or as a
// single compact line with capture details.
type header struct {
	// Cached logo and compact logo.
	logo        string
	compactLogo string

	com     *common.Common
	width   int
	compact bool
}

func newHeader(com *common.Common) *header {
	h := &header{
		com: com,
	}
	t := com.Styles
	h.compactLogo = t.Header.Charm.Render("Charm™") + " " +
		styles.ApplyBoldForegroundGrad(t, "TASTE", t.Secondary, t.Primary) + " "
	return h
}

func (h *header) drawHeader(
	scr uv.Screen,
	area uv.Rectangle,
	snap *capture.Snapshot,
	compact bool,
	width int,
) {
	t := h.com.Styles
	if width != h.width || compact != h.compact {
		h.logo = renderLogo(h.com.Styles, compact, width)
	}

	h.width = width
	h.compact = compact

	if !compact || snap == nil {
		uv.NewStyledString(h.logo).Draw(scr, area)
		return
	}

	var b strings.Builder
	b.WriteString(h.compactLogo)

	availDetailWidth := width - leftPadding - rightPadding - lipgloss.Width(b.String()) - minHeaderDiags
	details := renderHeaderDetails(h.com, snap, availDetailWidth)

	remainingWidth := width -
		lipgloss.Width(b.String()) -
		lipgloss.Width(details) -
		leftPadding -
		rightPadding

	if remainingWidth > 0 {
		b.WriteString(t.Header.Diagonals.Render(
			strings.Repeat(headerDiag, max(minHeaderDiags, remainingWidth)),
		))
		b.WriteString(" ")
	}

	b.WriteString(details)

	view := uv.NewStyledString(
		t.Base.Padding(0, rightPadding, 0, leftPadding).Render(b.String()))
	view.Draw(scr, area)
}

// renderHeaderDetails renders the capture metadata shown on the right
// side of the compact header.
func renderHeaderDetails(
	com *common.Common,
	snap *capture.Snapshot,
	availWidth int,
) string {
	t := com.Styles

	var parts []string

	if n := len(snap.Items); n == 1 {
		parts = append(parts, t.Header.ItemCount.Render("1 flavor"))
	} else {
		parts = append(parts, t.Header.ItemCount.Render(fmt.Sprintf("%d flavors", n)))
	}

	if size := payloadSize(snap); size > 0 {
		parts = append(parts, t.Header.ItemCount.Render(humanize.Bytes(uint64(size))))
	}

	const keystroke = "ctrl+r"
	parts = append(parts, t.Header.Keystroke.Render(keystroke)+t.Header.KeystrokeTip.Render(" capture"))

	dot := t.Header.Separator.Render(" • ")
	metadata := strings.Join(parts, dot)
	metadata = dot + metadata

	const dirTrimLimit = 4
	cfg := com.Config()
	cwd := fsext.DirTrim(fsext.PrettyPath(cfg.WorkingDir()), dirTrimLimit)
	cwd = ansi.Truncate(cwd, max(0, availWidth-lipgloss.Width(metadata)), "…")
	cwd = t.Header.WorkingDir.Render(cwd)

	return cwd + metadata
}

// payloadSize totals the bytes a snapshot carries, counting each flavor's
// binary payload when present and its textual form otherwise.
func payloadSize(snap *capture.Snapshot) int {
	var size int
	for _, item := range snap.Items {
		if item.HasFile() {
			size += len(item.File)
			continue
		}
		size += len(item.Data)
	}
	return size
}

// renderLogo renders the Taste logo with the given styles and dimensions.
func renderLogo(t *styles.Styles, compact bool, width int) string {
	return logo.Render(t, version.Version, compact, logo.Opts{
		FieldColor:   t.LogoFieldColor,
		TitleColorA:  t.LogoTitleColorA,
		TitleColorB:  t.LogoTitleColorB,
		CharmColor:   t.LogoCharmColor,
		VersionColor: t.LogoVersionColor,
		Width:        width,
	})
}
