package config

import (
	"fmt"
	"strings"

	"github.com/solatis/fieldgate/internal/types"
	"github.com/spf13/viper"
)

// Load reads configuration with viper.
// Precedence: environment > config file > defaults. CLI flags override the
// result at the command layer.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults matching Default()
	v.SetDefault("database_url", "")
	v.SetDefault("data_dir", "./data")
	v.SetDefault("monitor_events", false)
	v.SetDefault("max_batch_size", 256)
	v.SetDefault("request_timeout", "30s")

	// Bind environment variables with FG_ prefix (FG_DATABASE_URL, ...)
	v.SetEnvPrefix("FG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		DatabaseURL:    v.GetString("database_url"),
		DataDir:        v.GetString("data_dir"),
		MonitorEvents:  v.GetBool("monitor_events"),
		MaxBatchSize:   v.GetInt("max_batch_size"),
		RequestTimeout: v.GetDuration("request_timeout"),
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks batch size bounds, timeout, and data dir presence when the
// monitoring sink is enabled.
func validate(cfg *Config) error {
	if cfg.MaxBatchSize <= 0 {
		return fmt.Errorf("max_batch_size must be positive, got %d", cfg.MaxBatchSize)
	}
	if cfg.MaxBatchSize > types.MaxChangedPathsPerCycle {
		return fmt.Errorf("max_batch_size must not exceed %d, got %d",
			types.MaxChangedPathsPerCycle, cfg.MaxBatchSize)
	}
	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %v", cfg.RequestTimeout)
	}
	if cfg.MonitorEvents && cfg.DataDir == "" {
		return fmt.Errorf("data_dir required when monitor_events is enabled")
	}
	return nil
}
