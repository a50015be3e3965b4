package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Google   GoogleConfig   `yaml:"google" mapstructure:"google"`
	Pipeline PipelineConfig `yaml:"pipeline" mapstructure:"pipeline"`
	Delays   DelayConfig    `yaml:"delays" mapstructure:"delays"`
	Store    StoreConfig    `yaml:"store" mapstructure:"store"`
	Export   ExportConfig   `yaml:"export" mapstructure:"export"`
	Presets  PresetsConfig  `yaml:"presets" mapstructure:"presets"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// GoogleConfig holds Places API credentials and client tuning. The API key
// comes from config or the LEADGEN_GOOGLE_API_KEY environment variable,
// never from code.
type GoogleConfig struct {
	APIKey    string  `yaml:"api_key" mapstructure:"api_key"`
	BaseURL   string  `yaml:"base_url" mapstructure:"base_url"`
	RateLimit float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
}

// PipelineConfig holds pipeline defaults; per-run flags override them.
type PipelineConfig struct {
	MaxResults  int `yaml:"max_results" mapstructure:"max_results"`
	BatchSize   int `yaml:"batch_size" mapstructure:"batch_size"`
	MaxAttempts int `yaml:"max_attempts" mapstructure:"max_attempts"`
}

// DelayConfig holds the rate-limit compliance delays.
type DelayConfig struct {
	Pagination time.Duration `yaml:"pagination" mapstructure:"pagination"`
	RateLimit  time.Duration `yaml:"rate_limit" mapstructure:"rate_limit"`
	Retry      time.Duration `yaml:"retry" mapstructure:"retry"`
	Batch      time.Duration `yaml:"batch" mapstructure:"batch"`
}

// StoreConfig configures the optional run/lead store.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// ExportConfig configures the output sink.
type ExportConfig struct {
	Format string `yaml:"format" mapstructure:"format"`
	Dir    string `yaml:"dir" mapstructure:"dir"`
}

// PresetsConfig points at the optional user preset file.
type PresetsConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
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
	v.SetEnvPrefix("LEADGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults. api_key and base_url get empty defaults so the matching
	// environment variables are visible to Unmarshal.
	v.SetDefault("google.api_key", "")
	v.SetDefault("google.base_url", "")
	v.SetDefault("store.database_url", "")
	v.SetDefault("presets.path", "")
	v.SetDefault("google.rate_limit", 10.0)
	v.SetDefault("pipeline.max_results", 60)
	v.SetDefault("pipeline.batch_size", 10)
	v.SetDefault("pipeline.max_attempts", 3)
	v.SetDefault("delays.pagination", "2s")
	v.SetDefault("delays.rate_limit", "2s")
	v.SetDefault("delays.retry", "1s")
	v.SetDefault("delays.batch", "1s")
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("export.format", "csv")
	v.SetDefault("export.dir", ".")
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
