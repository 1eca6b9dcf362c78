package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/config"
	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/core"
	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/games/starfighter"
	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/platform/tui"
	"github.com/masonhale/Starfighter-Gosu-Tutorial/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMusic      bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode, or the full game when none is given.

Controls:
  Arrows/WASD  - Move
  Space        - Fire
  X            - Double shot
  Z            - Super shot
  N            - Nuke (needs a full energy gauge)
  Tab          - Shield (hold)
  M            - Toggle music
  P            - Pause
  Enter/R      - New game (after game over)
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

While paused, Tab toggles unlimited energy and Z toggles rapid fire.
In the lessons R toggles rapid fire.

Difficulty options:
  easy   - 5 lives, fewer stars
  normal - 3 lives
  hard   - 2 lives, more and faster stars
  fixed  - Stars never speed up with the level

Without --difficulty the full game asks before starting.

Examples:
  starfighter play
  starfighter play --difficulty hard
  starfighter play starfighter_weaponry
  starfighter play --config ./my-starfighter.toml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMusic, "music", false, "Start with background music playing")

	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().BoolVar(&flagMusic, "music", false, "Start with background music playing")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := starfighter.ModeStarfighter.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'starfighter list' to see available modes.")
		os.Exit(1)
	}

	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	ok, err := chooseDifficulty(game, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		// User pressed back or quit
		return
	}

	store := openStore()
	player, closeAudio := openAudio(flagMusic)

	logger.Info("starting game", "mode", gameID, "fps", cfg.TickRate, "seed", cfg.Seed)
	runErr := tui.Run(game, store, cfg, player)

	// Release resources before potential exit
	closeAudio()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// applyGameFlags validates --config and --difficulty and passes them to
// the game package.
func applyGameFlags() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagConfig != "" {
		if _, err := config.LoadStarfighter(flagConfig); err != nil {
			return err
		}
	}

	starfighter.SetConfigPath(flagConfig)
	starfighter.SetDifficultyPreset(flagDifficulty)
	return nil
}

// chooseDifficulty asks for a preset when the mode has one and none was
// given on the command line. It returns false when the user backed out.
func chooseDifficulty(game registry.Game, cfg core.RuntimeConfig) (bool, error) {
	sf, ok := game.(*starfighter.Game)
	if !ok || !sf.HasDifficulty() || flagDifficulty != "" {
		return true, nil
	}

	preset, err := tui.RunDifficultySelector(cfg)
	if err != nil {
		return false, err
	}
	if preset == "" {
		return false, nil
	}
	sf.SetDifficulty(string(preset))
	return true, nil
}
