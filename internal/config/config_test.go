package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.SoftLimitBytes != 4_500_000 {
		t.Errorf("SoftLimitBytes = %d, want 4500000", cfg.SoftLimitBytes)
	}
	if cfg.EvictionKeep != 100 {
		t.Errorf("EvictionKeep = %d, want 100", cfg.EvictionKeep)
	}
	if cfg.WeatherWindow != 10 {
		t.Errorf("WeatherWindow = %d, want 10", cfg.WeatherWindow)
	}
	if cfg.AnonymizeNotes != "keep-notes" {
		t.Errorf("AnonymizeNotes = %q, want keep-notes", cfg.AnonymizeNotes)
	}
	if filepath.Base(cfg.DataDir) != ".termolog" {
		t.Errorf("DataDir = %q, want a ~/.termolog path", cfg.DataDir)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TERMOLOG_DATA_DIR", t.TempDir())
	t.Setenv("TERMOLOG_SOFT_LIMIT_BYTES", "1000")
	t.Setenv("TERMOLOG_EVICTION_KEEP", "5")
	t.Setenv("TERMOLOG_WEATHER_WINDOW", "3")
	t.Setenv("TERMOLOG_LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.SoftLimitBytes != 1000 {
		t.Errorf("SoftLimitBytes = %d, want 1000", cfg.SoftLimitBytes)
	}
	if cfg.EvictionKeep != 5 {
		t.Errorf("EvictionKeep = %d, want 5", cfg.EvictionKeep)
	}
	if cfg.WeatherWindow != 3 {
		t.Errorf("WeatherWindow = %d, want 3", cfg.WeatherWindow)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TERMOLOG_DATA_DIR", dir)

	yaml := "soft_limit_bytes: 2000\nweather_window: 7\nanonymize_notes: redact-notes\nlog_level: WARN\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := Load()

	if cfg.SoftLimitBytes != 2000 {
		t.Errorf("SoftLimitBytes = %d, want 2000", cfg.SoftLimitBytes)
	}
	if cfg.WeatherWindow != 7 {
		t.Errorf("WeatherWindow = %d, want 7", cfg.WeatherWindow)
	}
	if cfg.AnonymizeNotes != "redact-notes" {
		t.Errorf("AnonymizeNotes = %q, want redact-notes", cfg.AnonymizeNotes)
	}
	if cfg.LogLevel != slog.LevelWarn {
		t.Errorf("LogLevel = %v, want warn", cfg.LogLevel)
	}
}

func TestLoadEnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TERMOLOG_DATA_DIR", dir)
	t.Setenv("TERMOLOG_WEATHER_WINDOW", "4")

	yaml := "weather_window: 7\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if cfg := Load(); cfg.WeatherWindow != 4 {
		t.Errorf("WeatherWindow = %d, want the env override", cfg.WeatherWindow)
	}
}

func TestLoadMalformedFileIgnored(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TERMOLOG_DATA_DIR", dir)

	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{not yaml"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if cfg := Load(); cfg.SoftLimitBytes != 4_500_000 {
		t.Errorf("malformed file should leave defaults intact, got %d", cfg.SoftLimitBytes)
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"Warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"ERROR":   slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLogLevel(in); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSetupLoggerWithWriters(t *testing.T) {
	var stderr, file nopWriter
	logger := SetupLoggerWithWriters(&stderr, &file, slog.LevelInfo)
	if logger == nil {
		t.Fatal("expected a logger")
	}
	logger.Info("hello")
	if !stderr.wrote || !file.wrote {
		t.Error("both writers should receive the record")
	}
}

type nopWriter struct{ wrote bool }

func (w *nopWriter) Write(p []byte) (int, error) {
	w.wrote = true
	return len(p), nil
}
