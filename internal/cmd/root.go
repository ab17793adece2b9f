package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/fang"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/exp/charmtone"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/charmbracelet/taste/internal/app"
	"github.com/charmbracelet/taste/internal/config"
	"github.com/charmbracelet/taste/internal/ui/common"
	ui "github.com/charmbracelet/taste/internal/ui/model"
	"github.com/charmbracelet/taste/internal/version"
)

func init() {
	rootCmd.PersistentFlags().StringP("cwd", "c", "", "current working directory")
	rootCmd.PersistentFlags().StringP("data-dir", "D", "", "custom taste data directory")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "debug")
	rootCmd.PersistentFlags().StringP("backend", "b", "", "clipboard backend to read through instead of autodetecting")
	rootCmd.Flags().BoolP("help", "h", false, "help")
	rootCmd.Flags().BoolP("watch", "w", false, "capture automatically whenever the clipboard changes")
	rootCmd.Flags().String("images", "", "image rendering protocol: auto, kitty, or blocks")

	rootCmd.AddCommand(
		dumpCmd,
		dirsCmd,
		logsCmd,
		schemaCmd,
	)
}

var rootCmd = &cobra.Command{
	Use:   "taste",
	Short: "See what's really on your clipboard",
	Long:  "Inspect the clipboard: every flavor it carries, typed, decoded, and rendered in your terminal",
	Example: `
# Run in interactive mode
taste

# Run with debug logging
taste -d

# Capture automatically whenever the clipboard changes
taste -w

# Read through a specific clipboard backend
taste -b wl-clipboard

# Print the version
taste -v

# Capture once and print the result
taste dump
  `,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setupApp(cmd)
		if err != nil {
			return err
		}
		defer app.Shutdown()

		// Set up the TUI.
		var env uv.Environ = os.Environ()

		com := common.DefaultCommon(app)
		model := ui.New(com)

		program := tea.NewProgram(
			model,
			tea.WithEnvironment(env),
			tea.WithContext(cmd.Context()),
			tea.WithFilter(ui.MouseEventFilter), // Filter mouse events based on focus state
		)
		go app.Subscribe(program)

		if _, err := program.Run(); err != nil {
			slog.Error("TUI run error", "error", err)
			return errors.New("taste crashed. If you'd like to report it, please copy the stack trace above and open an issue at https://github.com/charmbracelet/taste/issues/new")
		}
		return nil
	},
}

var clipbit = lipgloss.NewStyle().Foreground(charmtone.Dolly).SetString(`
        ▄▄▄▄▄▄
  ▄▄▄▄▄██▀▀██▄▄▄▄▄
  ██▀▀▀▀▀▀▀▀▀▀▀▀██
  ██ ▄▄▄▄▄▄▄▄▄▄ ██
  ██ ▄▄▄▄▄▄     ██
  ██ ▄▄▄▄▄▄▄▄   ██
  ██            ██
  ██▄▄▄▄▄▄▄▄▄▄▄▄██
`)

// copied from cobra:
const defaultVersionTemplate = `{{with .DisplayName}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
`

func Execute() {
	// Cobra offers no hook for printing the version ourselves, and
	// PreRunE runs after the version has already been handled, so the
	// colored mark is prepended to the version template instead: write
	// it through a colorprofile writer forwarding into a buffer, then
	// prefix the template with the result.
	if term.IsTerminal(os.Stdout.Fd()) {
		var b bytes.Buffer
		w := colorprofile.NewWriter(os.Stdout, os.Environ())
		w.Forward = &b
		_, _ = w.WriteString(clipbit.String())
		rootCmd.SetVersionTemplate(b.String() + "\n" + defaultVersionTemplate)
	}
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version.Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// setupApp handles the common setup logic shared by the interactive and
// non-interactive modes.
func setupApp(cmd *cobra.Command) (*app.App, error) {
	debug, _ := cmd.Flags().GetBool("debug")
	dataDir, _ := cmd.Flags().GetString("data-dir")
	backend, _ := cmd.Flags().GetString("backend")
	watch, _ := cmd.Flags().GetBool("watch")
	images, _ := cmd.Flags().GetString("images")
	ctx := cmd.Context()

	cwd, err := ResolveCwd(cmd)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(cwd, dataDir, debug)
	if err != nil {
		return nil, err
	}

	// Flags win over config files.
	if backend != "" {
		cfg.Options.Backend = backend
	}
	if watch {
		cfg.Options.Watch = true
	}
	if images != "" {
		switch images {
		case config.ImagesAuto, config.ImagesKitty, config.ImagesBlocks:
			cfg.Options.Images = images
		default:
			return nil, fmt.Errorf("unknown images mode %q", images)
		}
	}

	if err := createDataDir(cfg.Options.DataDirectory); err != nil {
		return nil, err
	}

	appInstance, err := app.New(ctx, cfg)
	if err != nil {
		slog.Error("Failed to create app instance", "error", err)
		return nil, err
	}

	return appInstance, nil
}

func ResolveCwd(cmd *cobra.Command) (string, error) {
	cwd, _ := cmd.Flags().GetString("cwd")
	if cwd != "" {
		err := os.Chdir(cwd)
		if err != nil {
			return "", fmt.Errorf("failed to change directory: %v", err)
		}
		return cwd, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %v", err)
	}
	return cwd, nil
}

func createDataDir(dir string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create data directory: %q %w", dir, err)
	}

	gitIgnorePath := filepath.Join(dir, ".gitignore")
	if _, err := os.Stat(gitIgnorePath); os.IsNotExist(err) {
		if err := os.WriteFile(gitIgnorePath, []byte("*\n"), 0o644); err != nil {
			return fmt.Errorf("failed to create .gitignore file: %q %w", gitIgnorePath, err)
		}
	}

	return nil
}
