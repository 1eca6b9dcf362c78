// starfighter is a terminal rendition of the Starfighter arcade shooter.
//
// Usage:
//
//	starfighter list              - List the game and its lessons
//	starfighter play [mode]       - Play a mode (default: starfighter)
//	starfighter menu              - Start menu to pick modes interactively
//	starfighter serve             - Start SSH server for remote play
//	starfighter scores [mode]     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.starfighter/scores.db)
//	--log-file <path>   - Write logs to a file (default: no logging)
//	--log-level <level> - debug, info, warn or error (default: info)
//	--mute              - Disable sound
//
// Any flag can also be set through the environment or a .env file in the
// working directory as STARFIGHTER_<FLAG>, e.g. STARFIGHTER_DB=./scores.db.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/masonhale/Starfighter-Gosu-Tutorial/internal/games/starfighter"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starfighter",
	Short: "Starfighter - shoot down falling stars in your terminal",
	Long: `Starfighter is a vertical shooter played in the terminal. Steer your
ship, blast falling stars with four kinds of weapons and raise your
shield when things get tight.

The tutorial lessons that build up to the full game are playable as
separate modes.

Available commands:
  list     - Show the game and its lessons
  play     - Play a mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  starfighter play
  starfighter play starfighter_collisions
  starfighter menu
  starfighter serve --ssh :2222
  starfighter scores`,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		closeLogging()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.starfighter/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
