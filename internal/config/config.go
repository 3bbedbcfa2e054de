// Package config loads engine configuration: defaults, then an optional
// config.yaml in the data directory, then TERMOLOG_* environment
// overrides.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration values.
type Config struct {
	// DataDir holds journal.db, config.yaml and the log file.
	DataDir string `yaml:"data_dir"`

	// Storage bounds (§ persistence store).
	SoftLimitBytes int `yaml:"soft_limit_bytes"`
	EvictionKeep   int `yaml:"eviction_keep"`

	// WeatherWindow is how many recent records feed the emotional
	// weather classification.
	WeatherWindow int `yaml:"weather_window"`

	// AnonymizeNotes is the notes policy for anonymized exports:
	// "keep-notes" or "redact-notes".
	AnonymizeNotes string `yaml:"anonymize_notes"`

	// Logging
	LogFile  string     `yaml:"log_file"`
	LogLevel slog.Level `yaml:"-"`

	// RawLogLevel is the unparsed level string from file/env.
	RawLogLevel string `yaml:"log_level"`
}

// configFile is the optional per-user override file inside DataDir.
const configFile = "config.yaml"

// Default returns the stock configuration rooted at ~/.termolog.
func Default() Config {
	home, _ := os.UserHomeDir()
	dataDir := filepath.Join(home, ".termolog")
	return Config{
		DataDir:        dataDir,
		SoftLimitBytes: 4_500_000,
		EvictionKeep:   100,
		WeatherWindow:  10,
		AnonymizeNotes: "keep-notes",
		LogFile:        filepath.Join(dataDir, "termolog.log"),
		RawLogLevel:    "INFO",
		LogLevel:       slog.LevelInfo,
	}
}

// Load resolves the effective configuration. The data directory itself
// can only come from the environment (it decides where the file lives).
func Load() Config {
	cfg := Default()
	if dir := os.Getenv("TERMOLOG_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
		cfg.LogFile = filepath.Join(dir, "termolog.log")
	}

	cfg.applyFile(filepath.Join(cfg.DataDir, configFile))
	cfg.applyEnv()
	cfg.LogLevel = parseLogLevel(cfg.RawLogLevel)
	return cfg
}

// applyFile merges a YAML override file if present. A malformed file is
// ignored — configuration falls back to defaults rather than blocking
// startup.
func (c *Config) applyFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return
	}
	if file.SoftLimitBytes > 0 {
		c.SoftLimitBytes = file.SoftLimitBytes
	}
	if file.EvictionKeep > 0 {
		c.EvictionKeep = file.EvictionKeep
	}
	if file.WeatherWindow > 0 {
		c.WeatherWindow = file.WeatherWindow
	}
	if file.AnonymizeNotes != "" {
		c.AnonymizeNotes = file.AnonymizeNotes
	}
	if file.LogFile != "" {
		c.LogFile = file.LogFile
	}
	if file.RawLogLevel != "" {
		c.RawLogLevel = file.RawLogLevel
	}
}

// applyEnv merges TERMOLOG_* environment overrides.
func (c *Config) applyEnv() {
	if v := getEnvInt("TERMOLOG_SOFT_LIMIT_BYTES"); v > 0 {
		c.SoftLimitBytes = v
	}
	if v := getEnvInt("TERMOLOG_EVICTION_KEEP"); v > 0 {
		c.EvictionKeep = v
	}
	if v := getEnvInt("TERMOLOG_WEATHER_WINDOW"); v > 0 {
		c.WeatherWindow = v
	}
	if v := os.Getenv("TERMOLOG_ANONYMIZE_NOTES"); v != "" {
		c.AnonymizeNotes = v
	}
	if v := os.Getenv("TERMOLOG_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("TERMOLOG_LOG_LEVEL"); v != "" {
		c.RawLogLevel = v
	}
}

func getEnvInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
