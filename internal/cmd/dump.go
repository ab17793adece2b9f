package cmd

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"

	"github.com/charmbracelet/x/term"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/charmbracelet/taste/internal/capture"
	"github.com/charmbracelet/taste/internal/format"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Capture the clipboard once and print it",
	Long: `Capture the clipboard once, print every flavor it carries, and exit.
Text flavors print their content; binary flavors print their type and size.`,
	Example: `
# Capture and print
taste dump

# Print as JSON, with binary payloads base64-encoded
taste dump --json

# Pick out the plain text flavor with jq
taste dump -j | jq -r '.items[] | select(.type == "text/plain") | .data'

# Read through a specific clipboard backend
taste dump -b xclip
  `,
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		quiet, _ := cmd.Flags().GetBool("quiet")

		// Cancel on SIGINT or SIGTERM.
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
		defer cancel()

		app, err := setupApp(cmd)
		if err != nil {
			return err
		}
		defer app.Shutdown()

		// The read may shell out to clipboard tools, which can take a
		// moment on some backends.
		var spinner *format.Spinner
		if !quiet && term.IsTerminal(os.Stderr.Fd()) {
			spinner = format.NewSpinner(ctx, cancel, "Reading the clipboard")
			spinner.Start()
		}
		snap := app.Clipboard.Snapshot()
		if spinner != nil {
			spinner.Stop()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(snap)
		}

		printSnapshot(cmd, snap)
		return nil
	},
}

func init() {
	dumpCmd.Flags().BoolP("json", "j", false, "print the snapshot as JSON")
	dumpCmd.Flags().BoolP("quiet", "q", false, "hide the spinner")
}

func printSnapshot(cmd *cobra.Command, snap capture.Snapshot) {
	if len(snap.Items) == 0 {
		cmd.Println("nothing on clipboard")
		return
	}
	for i, item := range snap.Items {
		if i > 0 {
			cmd.Println()
		}
		if item.HasFile() {
			cmd.Printf("%d. %s (%s)\n", i+1, item.MediaType(), humanize.Bytes(uint64(len(item.File))))
			continue
		}
		cmd.Printf("%d. %s\n", i+1, item.MediaType())
		cmd.Println(item.Data)
	}
}
