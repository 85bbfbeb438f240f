// cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/janmitra/mitra-cli/internal/config"
	"github.com/janmitra/mitra-cli/internal/observability"
)

// options carries the state one command run builds up in PersistentPreRunE:
// the config file path from the flag, the resolved configuration, and the
// initialized logger. Subcommands read from it instead of reaching for
// globals, so every NewRootCommand instance is independent.
type options struct {
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
}

// flagBindings maps configuration keys to the persistent flags that override
// them. A flag left at its empty default falls through to the environment,
// the config file, and finally the baked-in defaults.
var flagBindings = map[string]string{
	"agent.default_language": "language",
	"llm.provider":           "provider",
	"voice.backend":          "voice-backend",
}

// NewRootCommand builds a fresh root command with all subcommands attached.
// Each instance owns its flag and config state, which keeps repeated
// executions (tests, interactive shells) from leaking flags into each other.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "mitra",
		Short: "Mitra is a multilingual voice agent for Indian welfare schemes.",
		// Version is dynamically set at build time. See cmd/version.go.
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Runs before any command, setting up config and logging.
			return opts.initialize(cmd)
		},
		// A bare invocation starts the guided voice conversation.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVoice(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringP("language", "l", "", "conversation language code (te, ta, mr, bn, or, en)")
	rootCmd.PersistentFlags().String("provider", "", "LLM provider (gemini, openai, anthropic, mock)")
	rootCmd.PersistentFlags().String("voice-backend", "", "voice backend (console, scripted)")
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	rootCmd.AddCommand(
		newVoiceCmd(opts),
		newInteractiveCmd(opts),
		newDemoCmd(opts),
		newEvaluateCmd(opts),
	)
	return rootCmd
}

// Execute runs a fresh root command under ctx and logs any failure on the
// way out. The caller maps the returned error to a process exit code.
func Execute(ctx context.Context) error {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		observability.GetLogger().Error("Command execution failed", zap.Error(err))
		return err
	}
	return nil
}

// initialize loads the optional .env file, resolves configuration from
// flags, environment variables, and the optional config file, and installs
// the global logger. Precedence: changed flags, then MITRA_* environment
// variables, then the config file, then defaults.
func (o *options) initialize(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}

	v := viper.New()
	config.SetDefaults(v)

	if o.cfgFile != "" {
		v.SetConfigFile(o.cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("MITRA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; proceed with defaults and env vars.
	}

	flags := cmd.Root().PersistentFlags()
	for key, name := range flagBindings {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", name, err)
		}
	}

	cfg, err := config.NewConfigFromViper(v)
	if err != nil {
		// Initialize a fallback logger so the failure still gets reported.
		observability.InitializeLogger(config.LoggerConfig{Level: "info", Format: "console", ServiceName: "mitra"})
		return fmt.Errorf("failed to load config: %w", err)
	}

	observability.InitializeLogger(cfg.Logger)

	o.cfg = cfg
	o.logger = observability.GetLogger()
	o.logger.Info("Starting Mitra",
		zap.String("version", Version),
		zap.String("language", cfg.Agent.DefaultLanguage),
		zap.String("llm_provider", cfg.LLM.Provider),
		zap.String("voice_backend", cfg.Voice.Backend),
	)
	return nil
}
