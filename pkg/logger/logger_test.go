package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/huynhanx03/go-fixedqueue/pkg/settings"
)

func TestNewLogger(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.log")
	cfg := settings.Logger{
		LogLevel:    "debug",
		FileLogName: file,
		MaxSize:     1,
		MaxBackups:  1,
		MaxAge:      1,
	}

	log, err := NewLogger(cfg)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	log.Info("hello")
	_ = log.Sync() // stdout may not support sync

	if _, err := os.Stat(file); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{"debug", false},
		{"info", false},
		{"warn", false},
		{"error", false},
		{"verbose", true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := settings.Logger{
				LogLevel:    tt.level,
				FileLogName: filepath.Join(t.TempDir(), "test.log"),
			}
			_, err := NewLogger(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewLogger(%q) error = %v, wantErr %v", tt.level, err, tt.wantErr)
			}
		})
	}
}
