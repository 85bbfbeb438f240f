// cmd/interactive.go
package cmd

import (
	"github.com/spf13/cobra"
)

// newInteractiveCmd creates the `interactive` command, a free-form text loop
// where every line runs one full agent cycle. Unlike the guided voice flow
// the user steers: they can name a scheme to get its guidance directly,
// inspect agent state with `status`, or review memory with `memory`.
func newInteractiveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Run a free-form interactive text session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := assembleSession(opts, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return sess.Interactive(cmd.Context())
		},
	}
}
