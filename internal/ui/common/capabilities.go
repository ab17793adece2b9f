package common

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	xstrings "github.com/charmbracelet/x/exp/strings"

	"github.com/charmbracelet/taste/internal/config"
)

// Capabilities tracks the terminal capabilities reported to the program.
type Capabilities struct {
	// Profile is the terminal color profile used to determine how colors
	// are rendered.
	Profile colorprofile.Profile
	// Columns is the number of character columns in the terminal.
	Columns int
	// Rows is the number of character rows in the terminal.
	Rows int
	// PixelX is the width of the terminal in pixels.
	PixelX int
	// PixelY is the height of the terminal in pixels.
	PixelY int
	// KittyGraphics indicates whether the terminal supports the Kitty
	// graphics protocol.
	KittyGraphics bool
	// Env is the terminal environment.
	Env uv.Environ
	// TerminalVersion is the terminal version string.
	TerminalVersion string
	// ImagesMode forces an image rendering protocol instead of relying
	// on detection. Values match the config images option.
	ImagesMode string
}

// Update updates the capabilities based on the given message.
func (c *Capabilities) Update(msg any) {
	switch m := msg.(type) {
	case tea.EnvMsg:
		c.Env = uv.Environ(m)
	case tea.ColorProfileMsg:
		c.Profile = m.Profile
	case tea.WindowSizeMsg:
		c.Columns = m.Width
		c.Rows = m.Height
	case uv.PixelSizeEvent:
		c.PixelX = m.Width
		c.PixelY = m.Height
	case uv.KittyGraphicsEvent:
		c.KittyGraphics = true
	case tea.TerminalVersionMsg:
		c.TerminalVersion = m.Name
	}
}

// QueryCmd returns a [tea.Cmd] that queries the terminal for its
// capabilities.
func QueryCmd(env uv.Environ) tea.Cmd {
	var sb strings.Builder
	sb.WriteString(ansi.RequestPrimaryDeviceAttributes)

	// Queries that should only go to terminals known to answer them.
	if shouldQueryCapabilities(env) {
		sb.WriteString(ansi.RequestNameVersion)
		sb.WriteString(ansi.WindowOp(14)) // window size in pixels
		kittyReq := ansi.KittyGraphics([]byte("AAAA"), "i=31", "s=1", "v=1", "a=q", "t=d", "f=24")
		if _, isTmux := env.LookupEnv("TMUX"); isTmux {
			kittyReq = ansi.TmuxPassthrough(kittyReq)
		}
		sb.WriteString(kittyReq)
	}

	return tea.Raw(sb.String())
}

// SupportsTrueColor returns true if the terminal supports true color.
func (c Capabilities) SupportsTrueColor() bool {
	return c.Profile == colorprofile.TrueColor
}

// SupportsKittyGraphics returns true if the terminal supports Kitty
// graphics, honoring a forced images mode over detection.
func (c Capabilities) SupportsKittyGraphics() bool {
	switch c.ImagesMode {
	case config.ImagesKitty:
		return true
	case config.ImagesBlocks:
		return false
	}
	return c.KittyGraphics
}

// IsTmux returns true if the terminal is running inside tmux.
func (c Capabilities) IsTmux() bool {
	_, ok := c.Env.LookupEnv("TMUX")
	return ok
}

// CellSize returns the pixel size of a single terminal cell.
func (c Capabilities) CellSize() (width, height int) {
	if c.Columns == 0 || c.Rows == 0 {
		return 0, 0
	}
	return c.PixelX / c.Columns, c.PixelY / c.Rows
}

// kittyTerminals lists terminals known to answer capability queries.
var kittyTerminals = []string{"alacritty", "ghostty", "kitty", "rio", "wezterm"}

func shouldQueryCapabilities(env uv.Environ) bool {
	const osVendorTypeApple = "Apple"
	termType := env.Getenv("TERM")
	termProg, okTermProg := env.LookupEnv("TERM_PROGRAM")
	_, okSSHTTY := env.LookupEnv("SSH_TTY")
	if okTermProg && strings.Contains(termProg, osVendorTypeApple) {
		return false
	}
	return (!okTermProg && !okSSHTTY) ||
		(!strings.Contains(termProg, osVendorTypeApple) && !okSSHTTY) ||
		xstrings.ContainsAnyOf(termType, kittyTerminals...)
}
