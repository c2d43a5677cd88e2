// Package config loads application configuration and initializes logging.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Provider ProviderConfig `yaml:"provider" mapstructure:"provider"`
	Collect  CollectConfig  `yaml:"collect" mapstructure:"collect"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Store    StoreConfig    `yaml:"store" mapstructure:"store"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// ProviderConfig selects and configures the search provider.
type ProviderConfig struct {
	Name   string       `yaml:"name" mapstructure:"name"`
	Brave  BraveConfig  `yaml:"brave" mapstructure:"brave"`
	Google GoogleConfig `yaml:"google" mapstructure:"google"`
}

// BraveConfig holds Brave Search API credentials.
type BraveConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// GoogleConfig holds Google Custom Search credentials.
type GoogleConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	CX      string `yaml:"cx" mapstructure:"cx"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// CollectConfig configures the collection engine.
type CollectConfig struct {
	CategoryTarget int    `yaml:"category_target" mapstructure:"category_target"`
	TargetCap      int    `yaml:"target_cap" mapstructure:"target_cap"`
	MaxPageIndex   int    `yaml:"max_page_index" mapstructure:"max_page_index"`
	PageDelaySecs  int    `yaml:"page_delay_secs" mapstructure:"page_delay_secs"`
	Site           string `yaml:"site" mapstructure:"site"`
	Scope          string `yaml:"scope" mapstructure:"scope"`
	CatalogPath    string `yaml:"catalog_path" mapstructure:"catalog_path"`
}

// OutputConfig configures the CSV destination.
type OutputConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// StoreConfig configures the database backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// ServerConfig configures the status server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("SCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults. Credentials default to empty so the env vars bind through
	// AutomaticEnv without an explicit BindEnv per key.
	v.SetDefault("provider.name", "brave")
	v.SetDefault("provider.brave.key", "")
	v.SetDefault("provider.brave.base_url", "https://api.search.brave.com/res/v1")
	v.SetDefault("provider.google.key", "")
	v.SetDefault("provider.google.cx", "")
	v.SetDefault("provider.google.base_url", "https://www.googleapis.com/customsearch/v1")
	v.SetDefault("collect.category_target", 40)
	v.SetDefault("collect.target_cap", 10)
	v.SetDefault("collect.max_page_index", 9)
	v.SetDefault("collect.page_delay_secs", 1)
	v.SetDefault("collect.site", "linkedin.com/in")
	v.SetDefault("collect.scope", "")
	v.SetDefault("collect.catalog_path", "")
	v.SetDefault("output.path", "raw_links.csv")
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
