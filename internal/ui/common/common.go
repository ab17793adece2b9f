// Package common provides shared state and rendering helpers for UI
// components.
package common

import (
	"github.com/charmbracelet/taste/internal/app"
	"github.com/charmbracelet/taste/internal/config"
	"github.com/charmbracelet/taste/internal/ui/styles"
)

// Common carries app-wide UI options and configuration.
type Common struct {
	App    *app.App
	Styles *styles.Styles

	// ImagesMode is the configured image rendering protocol.
	ImagesMode string
}

// Config returns the configuration associated with this [Common].
func (c *Common) Config() *config.Config {
	return c.App.Config()
}

// DefaultCommon returns the default common UI configuration.
func DefaultCommon(app *app.App) *Common {
	s := styles.DefaultStyles()
	return &Common{
		App:        app,
		Styles:     &s,
		ImagesMode: app.Config().Options.Images,
	}
}
