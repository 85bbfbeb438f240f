// cmd/voice.go
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/janmitra/mitra-cli/internal/agent"
	"github.com/janmitra/mitra-cli/internal/llm"
	"github.com/janmitra/mitra-cli/internal/session"
	"github.com/janmitra/mitra-cli/internal/tools"
	"github.com/janmitra/mitra-cli/internal/voice"
)

// newVoiceCmd creates the `voice` command, the guided spoken conversation.
// Running the binary with no subcommand lands here too.
func newVoiceCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "voice",
		Short: "Run the guided voice conversation",
		Long: `Voice runs the guided conversation: Mitra detects the caller's language,
collects age, income, and social category, matches welfare schemes from the
catalog, and walks through documents and application steps for the chosen
scheme. The console backend stands in for a microphone and speaker, reading
typed lines and printing spoken ones.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVoice(cmd, opts)
		},
	}
}

// runVoice assembles a session against the configured backends and hands it
// the command context, so an interrupt lands a short farewell instead of
// cutting the caller off silently.
func runVoice(cmd *cobra.Command, opts *options) error {
	sess, err := assembleSession(opts, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return sess.Voice(cmd.Context())
}

// assembleSession wires the tool registry, LLM provider, voice backend, and
// agent behind one session. The voice and interactive commands share this
// assembly; only the conversation loop differs.
func assembleSession(opts *options, in io.Reader, out io.Writer) (*session.Session, error) {
	registry, err := tools.NewDefaultRegistry(opts.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build tool registry: %w", err)
	}

	provider, err := llm.NewProvider(opts.cfg.LLM, opts.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build LLM provider: %w", err)
	}

	backend, err := voice.NewBackend(opts.cfg.Voice, in, out, opts.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build voice backend: %w", err)
	}

	ag := agent.New(opts.cfg.Agent, registry, provider, opts.logger)
	return session.New(opts.cfg.Agent, ag, backend, registry, out, opts.logger), nil
}
