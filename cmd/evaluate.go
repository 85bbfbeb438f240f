// cmd/evaluate.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/janmitra/mitra-cli/internal/session"
)

// newEvaluateCmd creates the `evaluate` command. It runs the built-in
// scenario suite, each scenario against a fresh agent, and fails the process
// when any scenario misses an expected response fragment.
func newEvaluateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate",
		Short: "Run the built-in evaluation scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := session.Evaluate(cmd.Context(), opts.cfg, cmd.OutOrStdout(), opts.logger)
			if err != nil {
				return err
			}
			if report.Failed > 0 {
				return fmt.Errorf("%d of %d scenarios failed", report.Failed, len(report.Results))
			}
			return nil
		},
	}
}
