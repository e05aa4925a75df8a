// Package config provides configuration management for fieldgate tooling.
package config

import (
	"time"
)

// Config holds settings for the fieldgate CLI and embedding hosts.
type Config struct {
	// DatabaseURL selects the form-state backend (sqlite:// or postgres://).
	DatabaseURL string

	// DataDir is where the JSONL monitoring sink writes its daily files.
	DataDir string

	// MonitorEvents toggles the JSONL sink; off means events are discarded.
	MonitorEvents bool

	// MaxBatchSize caps changed data paths accepted per update cycle.
	MaxBatchSize int

	// RequestTimeout bounds store operations issued by the CLI.
	RequestTimeout time.Duration
}

// Default returns configuration with default values.
func Default() *Config {
	return &Config{
		DatabaseURL:    "",
		DataDir:        "./data",
		MonitorEvents:  false,
		MaxBatchSize:   256,
		RequestTimeout: 30 * time.Second,
	}
}
