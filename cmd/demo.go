// cmd/demo.go
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/janmitra/mitra-cli/internal/session"
)

// newDemoCmd creates the `demo` command. It replays a scripted five-turn
// conversation in the configured language and prints a phase-by-phase trace,
// so the whole pipeline can be watched without a microphone or a live LLM.
func newDemoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Replay a scripted conversation with a full trace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := session.Demo(cmd.Context(), opts.cfg, cmd.OutOrStdout(), opts.logger)
			return err
		},
	}
}
