package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crossing/internal/platform/tui"
	"github.com/vovakirdan/tui-crossing/internal/registry"
	"github.com/vovakirdan/tui-crossing/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board [game]",
	Short: "Browse high scores and recent runs interactively",
	Long: `Open the interactive scoreboard. Tab switches between the top
scores and the recent runs view.

Examples:
  crossing board
  crossing board --db ./scores.db`,
	Args: cobra.MaximumNArgs(1),
	Run:  runBoard,
}

func runBoard(cmd *cobra.Command, args []string) {
	gameID := gameArg(args)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.RunScoreboard(store, gameID, game.Title(), width, height)
	store.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", runErr)
		os.Exit(1)
	}
}
