package main

import (
	"log/slog"

	"github.com/charmbracelet/taste/internal/cmd"
	"github.com/charmbracelet/taste/internal/log"
)

func main() {
	defer log.RecoverPanic("main", func() {
		slog.Error("Application terminated due to unhandled panic")
	})

	cmd.Execute()
}
