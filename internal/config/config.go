// Package config loads the monitor settings from defaults, an optional YAML
// file, the environment and command line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	reader "meminfo/internal/memory"
)

// Default values applied when a setting is not given anywhere.
const (
	DefaultInterval  = 2 * time.Second
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config is the runtime configuration. The poll interval is fixed for the
// life of the process.
type Config struct {
	// Source is the meminfo formatted file to poll.
	Source string `yaml:"source"`

	// Interval is the time between two poll cycles.
	Interval time.Duration `yaml:"interval"`

	// LogLevel is one of: debug | info | warn | error.
	LogLevel string `yaml:"log_level"`

	// LogFormat is one of: text | json.
	LogFormat string `yaml:"log_format"`

	// LogFile receives diagnostics. Empty means the caller picks a default.
	LogFile string `yaml:"log_file"`
}

func defaults() *Config {
	return &Config{
		Source:    reader.DefaultSourcePath,
		Interval:  DefaultInterval,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Load builds a Config from the command line arguments (without the program
// name). A --config flag names a YAML file applied before the environment.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("meminfo", pflag.ContinueOnError)
	configPath := fs.String("config", "", "path to a YAML config file")
	source := fs.String("source", "", "meminfo file to poll (default "+reader.DefaultSourcePath+")")
	interval := fs.Duration("interval", 0, "time between polls (default 2s)")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn or error")
	logFormat := fs.String("log-format", "", "log format: text or json")
	logFile := fs.String("log-file", "", "file to write diagnostics to")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("config: parse flags: %w", err)
	}

	cfg := defaults()
	if *configPath != "" {
		if err := loadFile(*configPath, cfg); err != nil {
			return nil, err
		}
	}

	// A missing .env file is fine, the process environment still applies.
	_ = godotenv.Load()
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if *source != "" {
		cfg.Source = *source
	}
	if fs.Changed("interval") {
		cfg.Interval = *interval
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *logFormat != "" {
		cfg.LogFormat = *logFormat
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse yaml: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("MEMINFO_SOURCE"); v != "" {
		cfg.Source = v
	}
	if raw := os.Getenv("MEMINFO_INTERVAL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("config: MEMINFO_INTERVAL: %w", err)
		}
		cfg.Interval = d
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	return nil
}

func validate(cfg *Config) error {
	if cfg.Source == "" {
		return errors.New("source is required")
	}
	if cfg.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", cfg.Interval)
	}
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}
	switch strings.ToLower(cfg.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log_format %q", cfg.LogFormat)
	}
	return nil
}
