package config

import (
	"log/slog"
	"os"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid sqlite backend config",
			config: Config{
				Port:            "8081",
				DataBackend:     "sqlite",
				SQLiteDBPath:    "./test.db",
				LogLevel:        "info",
				ShutdownTimeout: 30 * time.Second,
			},
			wantErr: false,
		},
		{
			name: "valid memory backend config",
			config: Config{
				Port:            "9000",
				DataBackend:     "memory",
				LogLevel:        "debug",
				ShutdownTimeout: 10 * time.Second,
			},
			wantErr: false,
		},
		{
			name: "invalid port - non-numeric",
			config: Config{
				Port:            "abc",
				DataBackend:     "sqlite",
				SQLiteDBPath:    "./test.db",
				LogLevel:        "info",
				ShutdownTimeout: 30 * time.Second,
			},
			wantErr: true,
		},
		{
			name: "invalid port - out of range",
			config: Config{
				Port:            "70000",
				DataBackend:     "sqlite",
				SQLiteDBPath:    "./test.db",
				LogLevel:        "info",
				ShutdownTimeout: 30 * time.Second,
			},
			wantErr: true,
		},
		{
			name: "invalid backend",
			config: Config{
				Port:            "8081",
				DataBackend:     "sheets",
				LogLevel:        "info",
				ShutdownTimeout: 30 * time.Second,
			},
			wantErr: true,
		},
		{
			name: "sqlite backend without path",
			config: Config{
				Port:            "8081",
				DataBackend:     "sqlite",
				SQLiteDBPath:    "",
				LogLevel:        "info",
				ShutdownTimeout: 30 * time.Second,
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			config: Config{
				Port:            "8081",
				DataBackend:     "memory",
				LogLevel:        "verbose",
				ShutdownTimeout: 30 * time.Second,
			},
			wantErr: true,
		},
		{
			name: "shutdown timeout too small",
			config: Config{
				Port:            "8081",
				DataBackend:     "memory",
				LogLevel:        "info",
				ShutdownTimeout: 100 * time.Millisecond,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATA_BACKEND", "SQLITE_DB_PATH", "LOG_LEVEL", "SHUTDOWN_TIMEOUT"} {
		os.Unsetenv(key)
	}

	cfg := Load()
	if cfg.Port != "8081" {
		t.Fatalf("Port = %q", cfg.Port)
	}
	if cfg.DataBackend != "sqlite" {
		t.Fatalf("DataBackend = %q", cfg.DataBackend)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Fatalf("ShutdownTimeout = %v", cfg.ShutdownTimeout)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DATA_BACKEND", "memory")
	t.Setenv("SHUTDOWN_TIMEOUT", "10s")

	cfg := Load()
	if cfg.Port != "9999" {
		t.Fatalf("Port = %q", cfg.Port)
	}
	if cfg.DataBackend != "memory" {
		t.Fatalf("DataBackend = %q", cfg.DataBackend)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("ShutdownTimeout = %v", cfg.ShutdownTimeout)
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"WARN", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"trace", slog.LevelInfo, true},
	}
	for _, tc := range cases {
		got, err := ParseLogLevel(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("%q: err = %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("%q: level = %v, want %v", tc.in, got, tc.want)
		}
	}
}
