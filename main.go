// ./main.go
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/janmitra/mitra-cli/cmd"
	"github.com/janmitra/mitra-cli/internal/observability"
)

// osExit allows mocking os.Exit in tests.
var osExit = os.Exit

// main is the entry point for the Mitra CLI application.
func main() {
	// Set up a context that listens for interrupt signals (SIGINT, SIGTERM)
	// so a session winds down with a farewell instead of dying mid-sentence.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := cmd.Execute(ctx)
	observability.Sync()
	if err != nil {
		// cmd.Execute already reported the failure; only the exit code is
		// decided here. An interrupt is a clean exit, not an error.
		if errors.Is(err, context.Canceled) {
			osExit(0)
			return
		}
		osExit(1)
	}
}
