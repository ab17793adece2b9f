// Package config loads and persists the application configuration.
// Config files are plain JSON, merged from the global location, the data
// directory, and the project tree.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/charmbracelet/taste/internal/filepathext"
)

const (
	appName              = "taste"
	defaultDataDirectory = ".taste"
)

// Image rendering protocols.
const (
	ImagesAuto   = "auto"
	ImagesKitty  = "kitty"
	ImagesBlocks = "blocks"
)

// Options are the user-tunable settings.
type Options struct {
	// Backend forces a specific clipboard backend instead of autodetection.
	Backend string `json:"backend,omitempty" jsonschema:"description=Clipboard backend to read through instead of autodetecting,example=wl-clipboard,example=xclip,example=native,example=display,example=basic"`
	// Watch captures automatically whenever the clipboard changes.
	Watch bool `json:"watch,omitempty" jsonschema:"description=Capture automatically whenever the clipboard changes"`
	// Images selects how image flavors are drawn.
	Images string `json:"images,omitempty" jsonschema:"description=Image rendering protocol,enum=auto,enum=kitty,enum=blocks,default=auto"`
	// Debug enables debug logging.
	Debug bool `json:"debug,omitempty" jsonschema:"description=Enable debug logging"`
	// DataDirectory holds logs and saved artifacts, relative to the
	// working directory unless absolute.
	DataDirectory string `json:"data_directory,omitempty" jsonschema:"description=Directory for logs and saved artifacts,default=.taste"`
}

// Config is the merged application configuration.
type Config struct {
	Schema  string  `json:"$schema,omitempty" jsonschema:"description=JSON schema reference for configuration validation"`
	Options Options `json:"options,omitempty" jsonschema:"description=Application options"`

	workingDir    string
	dataConfigDir string
}

// WorkingDir returns the directory the application was started in.
func (c *Config) WorkingDir() string {
	return c.workingDir
}

func (c *Config) setDefaults(workingDir, dataDir string) {
	c.workingDir = workingDir
	if dataDir != "" {
		c.Options.DataDirectory = dataDir
	} else if c.Options.DataDirectory == "" {
		c.Options.DataDirectory = defaultDataDirectory
	}
	c.Options.DataDirectory = filepathext.SmartJoin(workingDir, c.Options.DataDirectory)
	if c.Options.Images == "" {
		c.Options.Images = ImagesAuto
	}
}

// HasConfigField reports whether the data config file has the given key.
func (c *Config) HasConfigField(key string) bool {
	data, err := os.ReadFile(c.dataConfigDir)
	if err != nil {
		return false
	}
	return gjson.Get(string(data), key).Exists()
}

// SetConfigField persists a single field into the data config file,
// creating it if needed.
func (c *Config) SetConfigField(key string, value any) error {
	data, err := os.ReadFile(c.dataConfigDir)
	if err != nil {
		if os.IsNotExist(err) {
			data = []byte("{}")
		} else {
			return fmt.Errorf("reading config file: %w", err)
		}
	}

	newValue, err := sjson.Set(string(data), key, value)
	if err != nil {
		return fmt.Errorf("setting config field %s: %w", key, err)
	}
	if err := os.MkdirAll(filepath.Dir(c.dataConfigDir), 0o755); err != nil {
		return fmt.Errorf("creating config directory %q: %w", c.dataConfigDir, err)
	}
	if err := os.WriteFile(c.dataConfigDir, []byte(newValue), 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// SetImagesMode persists the image rendering protocol into the data
// config file.
func (c *Config) SetImagesMode(mode string) error {
	c.Options.Images = mode
	return c.SetConfigField("options.images", mode)
}

// RemoveConfigField deletes a single field from the data config file.
func (c *Config) RemoveConfigField(key string) error {
	data, err := os.ReadFile(c.dataConfigDir)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	newValue, err := sjson.Delete(string(data), key)
	if err != nil {
		return fmt.Errorf("removing config field %s: %w", key, err)
	}
	if err := os.MkdirAll(filepath.Dir(c.dataConfigDir), 0o755); err != nil {
		return fmt.Errorf("creating config directory %q: %w", c.dataConfigDir, err)
	}
	if err := os.WriteFile(c.dataConfigDir, []byte(newValue), 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
