package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/pgn-replay-go/internal/config"
	pgnerrors "github.com/lgbarn/pgn-replay-go/internal/errors"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		" INFO ":  zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"chatty":  zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := NewWithWriter(config.LogConfig{Level: "info", Format: "json"}, &buf)
	if err != nil {
		t.Fatalf("NewWithWriter: %v", err)
	}
	defer closeFn()

	logger.Debug("hidden")
	logger.Info("applied", zap.Int("ply", 3), zap.String("token", "Nf3"))
	_ = logger.Sync()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1:\n%s", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("entry is not JSON: %v", err)
	}
	if entry["msg"] != "applied" || entry["token"] != "Nf3" || entry["level"] != "info" {
		t.Errorf("entry = %v", entry)
	}
}

func TestNewWithWriter_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "replay.log")
	var buf bytes.Buffer
	logger, closeFn, err := NewWithWriter(config.LogConfig{Level: "warn", Format: "console", File: path}, &buf)
	if err != nil {
		t.Fatalf("NewWithWriter: %v", err)
	}

	logger.Warn("ambiguous move", zap.String("token", "Nd7"))
	_ = logger.Sync()
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	for name, out := range map[string]string{"console": buf.String(), "file": string(data)} {
		if !strings.Contains(out, "WARN") || !strings.Contains(out, "ambiguous move") {
			t.Errorf("%s sink = %q", name, out)
		}
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	_, _, err := New(config.LogConfig{Level: "loud", Format: "console"})
	if !errors.Is(err, pgnerrors.ErrInvalidConfig) {
		t.Errorf("New() error = %v, want ErrInvalidConfig", err)
	}
}
