package logging_test

import (
	"log/slog"
	"testing"

	"github.com/agentbridge/agentbridge/pkg/logging"
)

func TestLevelValidate(t *testing.T) {
	tests := []struct {
		name    string
		level   logging.Level
		wantErr bool
	}{
		{"debug", logging.LevelDebug, false},
		{"info", logging.LevelInfo, false},
		{"warn", logging.LevelWarn, false},
		{"error", logging.LevelError, false},
		{"invalid", logging.Level("verbose"), true},
		{"empty", logging.Level(""), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.level.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestToSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		level logging.Level
		want  slog.Level
	}{
		{"debug", logging.LevelDebug, slog.LevelDebug},
		{"info", logging.LevelInfo, slog.LevelInfo},
		{"warn", logging.LevelWarn, slog.LevelWarn},
		{"error", logging.LevelError, slog.LevelError},
		{"unknown defaults to info", logging.Level("bogus"), slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.level.ToSlogLevel(); got != tt.want {
				t.Errorf("ToSlogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatValidate(t *testing.T) {
	if err := logging.FormatText.Validate(); err != nil {
		t.Errorf("Validate(text) error = %v", err)
	}
	if err := logging.FormatJSON.Validate(); err != nil {
		t.Errorf("Validate(json) error = %v", err)
	}
	if err := logging.Format("xml").Validate(); err == nil {
		t.Error("Validate(xml) expected error")
	}
}

func TestConfigFinalizeDefaults(t *testing.T) {
	cfg := &logging.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if cfg.Level != logging.LevelInfo {
		t.Errorf("Level = %q, want info", cfg.Level)
	}
	if cfg.Format != logging.FormatText {
		t.Errorf("Format = %q, want text", cfg.Format)
	}
}

func TestConfigFinalizeEnv(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "debug")
	t.Setenv("TEST_LOG_FORMAT", "json")

	cfg := &logging.Config{}
	env := &logging.Env{Level: "TEST_LOG_LEVEL", Format: "TEST_LOG_FORMAT"}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if cfg.Level != logging.LevelDebug {
		t.Errorf("Level = %q, want debug", cfg.Level)
	}
	if cfg.Format != logging.FormatJSON {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
}

func TestConfigFinalizeInvalidEnv(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "verbose")

	cfg := &logging.Config{}
	env := &logging.Env{Level: "TEST_LOG_LEVEL", Format: "TEST_LOG_FORMAT"}
	if err := cfg.Finalize(env); err == nil {
		t.Fatal("Finalize() expected error for invalid env level")
	}
}
