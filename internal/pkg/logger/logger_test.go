package logger

import (
	"sync"
	"testing"

	"go.uber.org/zap/zapcore"
)

func reset() {
	base = nil
	once = sync.Once{}
}

func TestInit(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		want    zapcore.Level
		wantErr bool
	}{
		{"json info", "info", "json", zapcore.InfoLevel, false},
		{"console debug", "debug", "console", zapcore.DebugLevel, false},
		{"json error", "error", "json", zapcore.ErrorLevel, false},
		{"unknown level", "loud", "json", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reset()
			err := Init(tt.level, tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Init(%q, %q) error = %v, wantErr %v", tt.level, tt.format, err, tt.wantErr)
			}
			if !tt.wantErr && Level() != tt.want {
				t.Errorf("Level() = %v, want %v", Level(), tt.want)
			}
		})
	}
}

func TestInitIsIdempotent(t *testing.T) {
	reset()
	if err := Init("info", "json"); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	first := L()
	if err := Init("debug", "console"); err != nil {
		t.Fatalf("second Init() error = %v", err)
	}
	if L() != first {
		t.Error("second Init() replaced the logger")
	}
	if Level() != zapcore.InfoLevel {
		t.Errorf("Level() = %v after repeat Init, want info", Level())
	}
}

func TestSetLevel(t *testing.T) {
	reset()
	if err := Init("info", "json"); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if err := SetLevel("debug"); err != nil {
		t.Fatalf("SetLevel(debug) error = %v", err)
	}
	if Level() != zapcore.DebugLevel {
		t.Errorf("Level() = %v, want debug", Level())
	}
	if err := SetLevel("bogus"); err == nil {
		t.Error("SetLevel(bogus) should fail")
	}
	if Level() != zapcore.DebugLevel {
		t.Errorf("failed SetLevel changed the level to %v", Level())
	}
}

func TestLPanicsWithoutInit(t *testing.T) {
	reset()
	defer func() {
		if recover() == nil {
			t.Error("L() should panic before Init()")
		}
	}()
	L()
}

func TestHelpersAndSync(t *testing.T) {
	reset()

	// Sync before Init is a no-op.
	if err := Sync(); err != nil {
		t.Errorf("Sync() before Init error = %v", err)
	}

	if err := Init("debug", "json"); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	Debug("debug line")
	Info("info line")
	Warn("warn line")
	Error("error line")

	if With() == nil {
		t.Error("With() returned nil")
	}

	// Syncing stderr can fail on some platforms, only check for panics.
	_ = Sync()
}
