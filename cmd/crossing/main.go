// crossing is a terminal lane-crossing game: hop the player across
// procedurally generated roads, rivers and rail lines.
//
// Usage:
//
//	crossing list            - List available games
//	crossing play [game]     - Play a game (default: crossing)
//	crossing serve           - Start SSH server for remote play
//	crossing scores [game]   - Show high scores and recent runs
//	crossing board [game]    - Interactive scoreboard
//	crossing sim             - Run a headless simulation
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/registry"

	// Import games to register them
	_ "github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

const defaultGameID = "crossing"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossing",
	Short: "Lane Crossing - hop across roads, rivers and rails in your terminal",
	Long: `Lane Crossing is an endless terminal game. Move the player forward
across grass, road, river and rail lanes without getting hit or drowned.

Available commands:
  list     - Show all available games
  play     - Play a game directly
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  board    - Interactive scoreboard
  sim      - Run a headless, reproducible simulation

Examples:
  crossing play
  crossing play --seed 42 --difficulty hard
  crossing serve --ssh :2222
  crossing sim --seed 7 --ticks 600 --moves UUULUU`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(simCmd)
}

// gameArg returns the game named on the command line, or the default.
// Unknown games exit with an error.
func gameArg(args []string) string {
	gameID := defaultGameID
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'crossing list' to see available games.")
		os.Exit(1)
	}
	return gameID
}
