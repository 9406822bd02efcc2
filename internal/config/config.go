package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config contains all configuration for the ttyline command
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Prompt PromptConfig `mapstructure:"prompt"`

	v *viper.Viper
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Debug  bool   `mapstructure:"debug"`
}

// PromptConfig configures the line editor behind the prompt commands
type PromptConfig struct {
	KeySeqTimeout   time.Duration `mapstructure:"keyseq_timeout"`
	EscapeCancels   bool          `mapstructure:"escape_cancels"`
	Color           string        `mapstructure:"color"`
	InterruptPrompt string        `mapstructure:"interrupt_prompt"`
	EOFPrompt       string        `mapstructure:"eof_prompt"`
}

// Load reads configFile, or config.yaml from the usual places when it is
// empty, with TTYLINE_* environment variables taking precedence.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.ttyline")
		v.AddConfigPath("/etc/ttyline/")
	}

	v.SetEnvPrefix("TTYLINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.debug", false)
	v.SetDefault("prompt.keyseq_timeout", "1ms")
	v.SetDefault("prompt.escape_cancels", true)
	v.SetDefault("prompt.color", "")
	v.SetDefault("prompt.interrupt_prompt", "^C")
	v.SetDefault("prompt.eof_prompt", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := Config{v: v}
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if config.Prompt.KeySeqTimeout <= 0 {
		return nil, fmt.Errorf("prompt.keyseq_timeout must be positive, got %s", config.Prompt.KeySeqTimeout)
	}
	return &config, nil
}

// ConfigFileUsed is the path of the config file read, empty if none was found.
func (c *Config) ConfigFileUsed() string {
	if c.v == nil {
		return ""
	}
	return c.v.ConfigFileUsed()
}

// YAML renders the effective settings, defaults and environment included.
func (c *Config) YAML() ([]byte, error) {
	var settings map[string]any
	if c.v != nil {
		settings = c.v.AllSettings()
	}
	return yaml.Marshal(settings)
}

// ConfigureZerolog configures zerolog based on the log configuration
func (c *LogConfig) ConfigureZerolog() {
	level := zerolog.InfoLevel
	if c.Debug {
		level = zerolog.DebugLevel
	} else {
		switch strings.ToLower(c.Level) {
		case "trace":
			level = zerolog.TraceLevel
		case "debug":
			level = zerolog.DebugLevel
		case "info":
			level = zerolog.InfoLevel
		case "warn", "warning":
			level = zerolog.WarnLevel
		case "error":
			level = zerolog.ErrorLevel
		case "disabled", "off":
			level = zerolog.Disabled
		}
	}
	zerolog.SetGlobalLevel(level)
}

// Logger returns a logger writing to w, stderr if nil, in the configured
// format.
func (c *LogConfig) Logger(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	if strings.ToLower(c.Format) == "json" {
		return zerolog.New(w).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).With().Timestamp().Logger()
}
