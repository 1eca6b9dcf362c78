package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/audio"
	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/core"
	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/games/starfighter"
	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/logging"
	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/platform/tui"
	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/storage"
)

var (
	logger    = log.New(io.Discard)
	logCloser io.Closer
)

const envPrefix = "STARFIGHTER_"

// setup runs before every command: environment overrides first, then logging.
func setup(cmd *cobra.Command, _ []string) error {
	if err := applyEnv(cmd.Flags(), ".env"); err != nil {
		return err
	}
	return setupLogging()
}

// applyEnv loads envFile if present and fills every flag the user did not
// set on the command line from STARFIGHTER_<FLAG> (e.g. STARFIGHTER_LOG_LEVEL).
func applyEnv(flags *pflag.FlagSet, envFile string) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("env: %w", err)
	}

	var errs []error
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}
		name := envPrefix + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		if v, ok := os.LookupEnv(name); ok {
			if err := flags.Set(f.Name, v); err != nil {
				errs = append(errs, fmt.Errorf("env: %s: %w", name, err))
			}
		}
	})
	return errors.Join(errs...)
}

// setupLogging builds the logger from the global flags and hands it to
// the packages that log.
func setupLogging() error {
	l, closer, err := logging.New(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	logger = l
	logCloser = closer
	starfighter.SetLogger(l.WithPrefix("game"))
	tui.SetLogger(l.WithPrefix("tui"))
	return nil
}

func closeLogging() {
	if logCloser != nil {
		logCloser.Close()
	}
}

// runtimeConfig sizes the playfield to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// openAudio starts the sound engine, falling back to silence when the
// sound device is unavailable or --mute is set. The returned func
// releases the device.
func openAudio(music bool) (audio.Player, func()) {
	if flagMute {
		return audio.Silent{}, func() {}
	}

	engine := audio.NewEngine()
	if err := engine.Init(music); err != nil {
		logger.Warn("sound disabled", "error", err)
		return audio.Silent{}, func() {}
	}
	return engine, engine.Close
}
