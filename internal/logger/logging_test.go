package logger

import (
	"testing"

	"github.com/charmbracelet/log"
)

func TestNew(t *testing.T) {
	l := New("ipc")
	if got := l.GetPrefix(); got != "ipc" {
		t.Errorf("prefix: want %q, got %q", "ipc", got)
	}
	if got := l.GetLevel(); got != log.GetLevel() {
		t.Errorf("level: want the package default %v, got %v", log.GetLevel(), got)
	}
}

func TestNewWithConfig(t *testing.T) {
	l := NewWithConfig("srv", log.DebugLevel, false, false, log.TextFormatter)
	if got := l.GetPrefix(); got != "srv" {
		t.Errorf("prefix: want %q, got %q", "srv", got)
	}
	if got := l.GetLevel(); got != log.DebugLevel {
		t.Errorf("level: want %v, got %v", log.DebugLevel, got)
	}
}
