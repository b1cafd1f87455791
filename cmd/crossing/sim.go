package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing/world"
	"github.com/vovakirdan/tui-crossing/internal/storage"
)

var (
	flagSimTicks   int
	flagSimMoves   string
	flagSimEvery   int
	flagSimRestart bool
	flagSimVerbose bool
	flagSimRecord  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a terminal and print the final state.

Moves are letters applied one at a time, every --every ticks:
  U - hop forward   D - hop back
  L - step left     R - step right
  X - restart (only takes effect after death)

The same --seed, --moves and config always produce the same fingerprint,
so a recorded run can be checked by replaying it.

Examples:
  crossing sim --seed 42 --ticks 600
  crossing sim --seed 7 --moves UUUULUUR --every 15 -v
  crossing sim --seed 7 --moves UUUU --restart --record`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 300, "Number of ticks to simulate")
	simCmd.Flags().StringVar(&flagSimMoves, "moves", "", "Move script, e.g. UUL")
	simCmd.Flags().IntVar(&flagSimEvery, "every", 10, "Ticks between scripted moves")
	simCmd.Flags().BoolVar(&flagSimRestart, "restart", false, "Restart after each death instead of stopping")
	simCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Log world events")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save the final run to the scores database")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// simOptions drives a single headless run.
type simOptions struct {
	Seed    int64
	Ticks   int
	Moves   []world.Move
	Every   int
	Restart bool
}

// simResult summarizes a headless run.
type simResult struct {
	Ticks       uint64
	Score       int
	HighScore   int
	Deaths      int
	Alive       bool
	Cause       string
	Fingerprint uint64
}

// parseMoves turns a move script into moves. Whitespace is ignored.
func parseMoves(script string) ([]world.Move, error) {
	var moves []world.Move
	for i, r := range script {
		switch r {
		case ' ', '\t', '\n', ',':
			continue
		}
		m, ok := world.ParseMove(r)
		if !ok {
			return nil, fmt.Errorf("invalid move %q at position %d", r, i)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// simulate runs cfg headless according to opts.
func simulate(cfg config.CrossingConfig, opts simOptions, observer world.Observer) (simResult, error) {
	worldOpts := []world.Option{}
	if observer != nil {
		worldOpts = append(worldOpts, world.WithObserver(observer))
	}
	w, err := world.NewWithSeed(cfg, opts.Seed, worldOpts...)
	if err != nil {
		return simResult{}, err
	}

	every := max(1, opts.Every)
	next := 0
	deaths := 0
	for i := 0; i < opts.Ticks; i++ {
		if !w.Alive() {
			if !opts.Restart {
				break
			}
			w.Restart()
		}
		if i%every == 0 && next < len(opts.Moves) {
			w.HandleMove(opts.Moves[next])
			next++
		}
		w.Tick()
		if !w.Alive() {
			deaths++
		}
	}

	p := w.Player()
	cause := "running"
	if !p.Alive {
		cause = p.Cause.String()
	}
	return simResult{
		Ticks:       w.Ticks(),
		Score:       p.Score,
		HighScore:   p.HighScore,
		Deaths:      deaths,
		Alive:       p.Alive,
		Cause:       cause,
		Fingerprint: w.Fingerprint(),
	}, nil
}

// eventLogger reports world events through a structured logger.
type eventLogger struct {
	logger *log.Logger
}

func (e eventLogger) LaneGenerated(l world.Lane) {
	e.logger.Debug("lane generated", "index", l.Index, "kind", l.Kind, "obstacles", len(l.Obstacles))
}

func (e eventLogger) LaneEvicted(index int) {
	e.logger.Debug("lane evicted", "index", index)
}

func (e eventLogger) TrainSpawned(index int) {
	e.logger.Info("train spawned", "lane", index)
}

func (e eventLogger) TrainCleared(index int) {
	e.logger.Debug("train cleared", "lane", index)
}

func (e eventLogger) PlayerDied(p world.PlayerState) {
	e.logger.Info("player died", "row", p.Row, "column", p.Column, "cause", p.Cause, "score", p.Score)
}

func runSim(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "sim"})
	if flagSimVerbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	moves, err := parseMoves(flagSimMoves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadCrossing(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.ApplyCrossingPreset(&cfg, config.ParsePreset(flagDifficulty))

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	res, err := simulate(cfg, simOptions{
		Seed:    seed,
		Ticks:   flagSimTicks,
		Moves:   moves,
		Every:   flagSimEvery,
		Restart: flagSimRestart,
	}, eventLogger{logger: logger})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seed:        %d\n", seed)
	fmt.Printf("Ticks:       %d\n", res.Ticks)
	fmt.Printf("Score:       %d\n", res.Score)
	fmt.Printf("Best:        %d\n", res.HighScore)
	fmt.Printf("Deaths:      %d\n", res.Deaths)
	fmt.Printf("State:       %s\n", res.Cause)
	fmt.Printf("Fingerprint: %016x\n", res.Fingerprint)

	if !flagSimRecord {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	id, err := store.SaveRun(storage.RunRecord{
		GameID:      defaultGameID,
		Player:      "sim",
		Seed:        seed,
		Score:       res.Score,
		Ticks:       res.Ticks,
		Cause:       res.Cause,
		Fingerprint: res.Fingerprint,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving run: %v\n", err)
		return
	}
	logger.Info("run recorded", "id", id)
}
