package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/registry"
)

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{
		"starfighter",
		"starfighter_control",
		"starfighter_weaponry",
		"starfighter_collisions",
	} {
		if !registry.Exists(id) {
			t.Errorf("mode %q not registered", id)
		}
	}
}

func TestPort(t *testing.T) {
	tests := []struct {
		addr, want string
	}{
		{":23234", "23234"},
		{"0.0.0.0:2222", "2222"},
		{"[::1]:22", "22"},
		{"nonsense", "nonsense"},
	}
	for _, tt := range tests {
		if got := port(tt.addr); got != tt.want {
			t.Errorf("port(%q) = %q, expected %q", tt.addr, got, tt.want)
		}
	}
}

func TestApplyGameFlagsRejectsUnknownDifficulty(t *testing.T) {
	flagDifficulty = "impossible"
	defer func() { flagDifficulty = "" }()

	if err := applyGameFlags(); err == nil {
		t.Error("expected an error for an unknown difficulty")
	}
}

func TestSubcommands(t *testing.T) {
	want := map[string]bool{"list": false, "play": false, "menu": false, "serve": false, "scores": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q missing", name)
		}
	}
}

func TestApplyEnv(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	db := flags.String("db", "default.db", "")
	level := flags.String("log-level", "info", "")
	fps := flags.Int("fps", 60, "")
	if err := flags.Parse([]string{"--fps", "30"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("STARFIGHTER_DB=from-file.db\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	t.Setenv("STARFIGHTER_LOG_LEVEL", "debug")
	t.Setenv("STARFIGHTER_FPS", "120")
	// godotenv.Load never overrides variables already set
	t.Setenv("STARFIGHTER_DB", "")
	os.Unsetenv("STARFIGHTER_DB")

	if err := applyEnv(flags, envFile); err != nil {
		t.Fatalf("applyEnv failed: %v", err)
	}

	if *db != "from-file.db" {
		t.Errorf("db = %q, expected %q", *db, "from-file.db")
	}
	if *level != "debug" {
		t.Errorf("log-level = %q, expected %q", *level, "debug")
	}
	if *fps != 30 {
		t.Errorf("fps = %d, expected 30 (command line wins)", *fps)
	}
}

func TestApplyEnvMissingFile(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := applyEnv(flags, filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}

func TestApplyEnvBadValue(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("fps", 60, "")
	t.Setenv("STARFIGHTER_FPS", "fast")

	if err := applyEnv(flags, filepath.Join(t.TempDir(), "absent.env")); err == nil {
		t.Error("expected an error for a non-numeric STARFIGHTER_FPS")
	}
}
