// Package config loads tmdbot configuration from an optional YAML file and the
// environment, applies defaults and validates the result.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-telegram/bot/models"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides for any key, e.g. TMDBOT_LOGGER_LEVEL.
const EnvPrefix = "TMDBOT"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the complete application configuration.
type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	TMDB      TMDBConfig      `mapstructure:"tmdb"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Messages  MessagesConfig  `mapstructure:"messages"`
}

type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// TelegramConfig configures the bot API connection. BotInfo is filled at
// startup from getMe and is never read from configuration.
type TelegramConfig struct {
	Token           string       `mapstructure:"token"             validate:"required"`
	InlineCacheTime int          `mapstructure:"inline_cache_time" validate:"min=0"`
	BotInfo         *models.User `mapstructure:"-"`
}

type TMDBConfig struct {
	Token    string        `mapstructure:"token"    validate:"required"`
	BaseURL  string        `mapstructure:"base_url" validate:"required,url"`
	Language string        `mapstructure:"language" validate:"omitempty,bcp47_language_tag"`
	Timeout  time.Duration `mapstructure:"timeout"  validate:"min=1s,max=2m"`
}

// MetricsConfig enables the /metrics endpoint when Addr is set.
type MetricsConfig struct {
	Addr string `mapstructure:"addr" validate:"omitempty,hostname_port"`
}

type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks" validate:"dive"`
}

// TaskConfig enables a registered task on a cron schedule with seconds.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule" validate:"required_if=Enabled true"`
}

type MessagesConfig struct {
	Welcome string `mapstructure:"welcome" validate:"required"`
	Help    string `mapstructure:"help"    validate:"required"`
}

// LoadConfig reads path (a missing file is not an error), overlays the
// environment and validates. Fields named in except, such as "Telegram.Token",
// are not validated.
func LoadConfig(path string, except ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("telegram.token", "TELEGRAM_TOKEN", EnvPrefix+"_TELEGRAM_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind telegram token env: %w", err)
	}
	if err := v.BindEnv("tmdb.token", "TMD_TOKEN", EnvPrefix+"_TMDB_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind tmdb token env: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(except...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cfg against its validation tags, skipping the fields in except.
func (c *Config) Validate(except ...string) error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	var err error
	if len(except) > 0 {
		err = validate.StructExcept(c, except...)
	} else {
		err = validate.Struct(c)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
