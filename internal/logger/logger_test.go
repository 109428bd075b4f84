package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"ERR", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"something", zerolog.InfoLevel},
	}
	for _, c := range cases {
		if got := parseLevel(c.in); got != c.want {
			t.Fatalf("parseLevel(%q)=%v, want %v", c.in, got, c.want)
		}
	}
}

func TestGetenv(t *testing.T) {
	t.Setenv("X", "val")
	if v := getenv("X", "def"); v != "val" {
		t.Fatalf("getenv returned %q, want 'val'", v)
	}
	if v := getenv("Y", "def"); v != "def" {
		t.Fatalf("getenv returned %q, want 'def'", v)
	}
}

func TestInitAndL(t *testing.T) {
	// Info by default
	_ = os.Unsetenv("LOG_LEVEL")
	_ = os.Unsetenv("LOG_PRETTY")
	Init()
	if L() == nil {
		t.Fatalf("L() returned nil")
	}

	// Set debug level and pretty
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_PRETTY", "true")
	Init()
	if L().GetLevel() != zerolog.DebugLevel {
		t.Fatalf("expected debug level, got %v", L().GetLevel())
	}
}

// Ensure L() never returns nil and initializes level if not set
func TestLoggerAccessor_NotNil(t *testing.T) {
	// Reset base to zero value to force Init path
	base = zerolog.Logger{}
	lg := L()
	if lg == nil {
		t.Fatalf("logger is nil")
	}
	// After calling L(), the level should not be NoLevel
	if lg.GetLevel() == zerolog.NoLevel {
		t.Fatalf("logger level not initialized")
	}
}

func TestInit_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stockprice.log")
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_PRETTY", "false")
	t.Setenv("LOG_FILE", path)
	t.Setenv("LOG_FILE_MAX_MB", "not-a-number")
	Init()
	t.Cleanup(func() {
		_ = os.Unsetenv("LOG_FILE")
		Init()
	})

	L().Info().Str("symbol", "TCS").Msg("written to file")

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(b), `"symbol":"TCS"`) {
		t.Fatalf("log file missing entry: %s", b)
	}
}

func TestFileWriter_Defaults(t *testing.T) {
	t.Setenv("LOG_FILE_MAX_MB", "")
	if w := fileWriter("x.log"); w.MaxSize != 10 || w.Filename != "x.log" {
		t.Fatalf("unexpected writer: %+v", w)
	}
	t.Setenv("LOG_FILE_MAX_MB", "25")
	if w := fileWriter("x.log"); w.MaxSize != 25 {
		t.Fatalf("want MaxSize 25, got %d", w.MaxSize)
	}
}
