// Package config loads and validates the application configuration.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Study    StudyConfig    `mapstructure:"study"`
	Decks    DecksConfig    `mapstructure:"decks"`
	Database DatabaseConfig `mapstructure:"database"`
	Audio    AudioConfig    `mapstructure:"audio"`
	Server   ServerConfig   `mapstructure:"server"`
}

// StudyConfig holds the daily quotas the scheduler reads. The scheduler
// never re-validates these values; they are checked here once.
type StudyConfig struct {
	NewCardsPerDay   int `mapstructure:"new_cards_per_day" validate:"min=0"`
	MaxReviewsPerDay int `mapstructure:"max_reviews_per_day" validate:"min=0"`
}

type DecksConfig struct {
	Directory string `mapstructure:"directory" validate:"omitempty,deckdir"`
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Database        string `mapstructure:"database"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime_seconds"`
}

type AudioConfig struct {
	BaseURL       string `mapstructure:"base_url" validate:"omitempty,url"`
	APIKey        string `mapstructure:"api_key"`
	RetryAttempts uint   `mapstructure:"retry_attempts"`
}

type ServerConfig struct {
	Port int `mapstructure:"port" validate:"min=1,max=65535"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/tango")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("study.new_cards_per_day", 10)
	v.SetDefault("study.max_reviews_per_day", 100)
	v.SetDefault("decks.directory", "decks")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "tango")
	v.SetDefault("database.username", "tango")
	v.SetDefault("audio.retry_attempts", 3)
	v.SetDefault("server.port", 8080)

	// Secrets come from the environment only, never the config file.
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("audio.api_key", "AUDIO_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind AUDIO_API_KEY environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

// Load reads the configuration from the given file, or the default search
// paths when the path is empty.
func Load(configFile string) (*Config, error) {
	loader, err := NewConfigLoader(configFile)
	if err != nil {
		return nil, err
	}
	return loader.Load()
}

// DeckPath resolves a deck file name against the configured deck directory.
func (cfg *Config) DeckPath(name string) string {
	return filepath.Join(cfg.Decks.Directory, name)
}
