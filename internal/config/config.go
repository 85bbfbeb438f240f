// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/janmitra/mitra-cli/internal/locale"
)

// LLM provider identifiers accepted by the llm factory.
const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderMock      = "mock"
)

// Voice backend identifiers accepted by the voice factory.
const (
	VoiceConsole  = "console"
	VoiceScripted = "scripted"
)

// Config holds the entire application configuration.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Agent  AgentConfig  `mapstructure:"agent" yaml:"agent"`
	LLM    LLMConfig    `mapstructure:"llm" yaml:"llm"`
	Voice  VoiceConfig  `mapstructure:"voice" yaml:"voice"`
}

// LoggerConfig controls the global zap logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// AgentConfig controls the dialogue orchestrator and conversation memory.
type AgentConfig struct {
	// DefaultLanguage is used when detection fails and the user never picks one.
	DefaultLanguage string `mapstructure:"default_language" yaml:"default_language"`
	// MaxHistory bounds the conversation turn buffer (FIFO eviction).
	MaxHistory int `mapstructure:"max_history" yaml:"max_history"`
	// ContextTurns is how many recent turns a context snapshot carries.
	ContextTurns int `mapstructure:"context_turns" yaml:"context_turns"`
	// MaxPromptRetries caps every ask-and-parse loop before the documented
	// default is taken.
	MaxPromptRetries int `mapstructure:"max_prompt_retries" yaml:"max_prompt_retries"`
}

// LLMConfig selects and tunes the language-model provider.
type LLMConfig struct {
	Provider    string        `mapstructure:"provider" yaml:"provider"`
	Model       string        `mapstructure:"model" yaml:"model"`
	APIKey      string        `mapstructure:"api_key" yaml:"api_key"`
	Endpoint    string        `mapstructure:"endpoint" yaml:"endpoint"`
	APITimeout  time.Duration `mapstructure:"api_timeout" yaml:"api_timeout"`
	Temperature float64       `mapstructure:"temperature" yaml:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens" yaml:"max_tokens"`
	// RateRPS/RateBurst feed the shared rate.Limiter in front of every provider.
	RateRPS   float64 `mapstructure:"rate_rps" yaml:"rate_rps"`
	RateBurst int     `mapstructure:"rate_burst" yaml:"rate_burst"`
}

// VoiceConfig selects the speech backend.
type VoiceConfig struct {
	Backend string `mapstructure:"backend" yaml:"backend"`
}

// SetDefaults initializes default values for all configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "mitra")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 50)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 14)
	v.SetDefault("logger.compress", true)

	// -- Agent --
	v.SetDefault("agent.default_language", "en")
	v.SetDefault("agent.max_history", 20)
	v.SetDefault("agent.context_turns", 5)
	v.SetDefault("agent.max_prompt_retries", 3)

	// -- LLM --
	v.SetDefault("llm.provider", ProviderMock)
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.api_timeout", 30*time.Second)
	v.SetDefault("llm.temperature", 0.4)
	v.SetDefault("llm.max_tokens", 1024)
	v.SetDefault("llm.rate_rps", 1.0)
	v.SetDefault("llm.rate_burst", 3)

	// -- Voice --
	v.SetDefault("voice.backend", VoiceConsole)
}

// NewDefaultConfig creates a configuration struct populated with defaults.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// Unreachable with defaults only.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// NewConfigFromViper builds and validates a configuration from a viper
// instance that has already read flags, files, and the environment.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	// API keys come from the environment, not the config file. The
	// provider-specific variable wins over the generic one.
	if cfg.LLM.APIKey == "" {
		for _, name := range apiKeyEnvVars(cfg.LLM.Provider) {
			if val := os.Getenv(name); val != "" {
				cfg.LLM.APIKey = val
				break
			}
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// apiKeyEnvVars lists the environment variables consulted for the LLM
// credential, most specific first.
func apiKeyEnvVars(provider string) []string {
	switch provider {
	case ProviderGemini:
		return []string{"MITRA_GEMINI_API_KEY", "MITRA_LLM_API_KEY"}
	case ProviderOpenAI:
		return []string{"MITRA_OPENAI_API_KEY", "MITRA_LLM_API_KEY"}
	case ProviderAnthropic:
		return []string{"MITRA_ANTHROPIC_API_KEY", "MITRA_LLM_API_KEY"}
	default:
		return []string{"MITRA_LLM_API_KEY"}
	}
}

// LoadDotEnv loads a local .env file into the process environment when one
// exists, so MITRA_* variables can live next to the binary during development.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("expanding env file path: %w", err)
	}
	if _, err := os.Stat(expanded); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(expanded); err != nil {
		return fmt.Errorf("loading %s: %w", expanded, err)
	}
	return nil
}

// Validate checks the configuration for required fields and sane values.
func (c *Config) Validate() error {
	if c.Agent.MaxHistory <= 0 {
		return fmt.Errorf("agent.max_history must be a positive integer")
	}
	if c.Agent.ContextTurns <= 0 {
		return fmt.Errorf("agent.context_turns must be a positive integer")
	}
	if c.Agent.MaxPromptRetries <= 0 {
		return fmt.Errorf("agent.max_prompt_retries must be a positive integer")
	}
	if !locale.IsSupported(c.Agent.DefaultLanguage) {
		return fmt.Errorf("agent.default_language %q is not one of %v", c.Agent.DefaultLanguage, locale.Supported())
	}
	switch c.LLM.Provider {
	case ProviderGemini, ProviderOpenAI, ProviderAnthropic, ProviderMock:
	default:
		return fmt.Errorf("llm.provider %q is unknown (valid: %s, %s, %s, %s)",
			c.LLM.Provider, ProviderGemini, ProviderOpenAI, ProviderAnthropic, ProviderMock)
	}
	switch c.Voice.Backend {
	case VoiceConsole, VoiceScripted:
	default:
		return fmt.Errorf("voice.backend %q is unknown (valid: %s, %s)",
			c.Voice.Backend, VoiceConsole, VoiceScripted)
	}
	return nil
}
