package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "starfighter.log")

	logger, closer, err := New(path, "debug")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Debug("ship destroyed", "lives", 2)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "ship destroyed") || !strings.Contains(out, "lives=2") {
		t.Errorf("log file = %q, expected the debug entry", out)
	}
}

func TestNewLevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starfighter.log")

	logger, closer, err := New(path, "warn")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	closer.Close()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") {
		t.Error("info entry should be filtered at warn level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("warn entry should be written")
	}
}

func TestNewWithoutPathDiscards(t *testing.T) {
	logger, closer, err := New("", "")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if logger.GetLevel() != log.InfoLevel {
		t.Errorf("level = %v, expected info", logger.GetLevel())
	}
	logger.Info("nowhere")
	if err := closer.Close(); err != nil {
		t.Errorf("Close = %v, expected nil", err)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, _, err := New("", "loud"); err == nil {
		t.Error("expected an error for an unknown level")
	}
}
