// Package crossing implements an endless lane-crossing game. The player hops
// up through grass, roads, rivers and railway crossings; every row reached
// counts as a point.
package crossing

import (
	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing/world"
	"github.com/vovakirdan/tui-crossing/internal/registry"
)

// Game adapts a world.World to the arcade platform.
type Game struct {
	world      *world.World
	cfg        config.CrossingConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	paused     bool
	highScore  int // Best score seeded by the platform before the first Reset
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a new Lane Crossing game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "crossing"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Lane Crossing"
}

// loadConfig reads the game config, falling back to defaults on error.
func loadConfig() config.CrossingConfig {
	cfg, err := config.LoadCrossing(configPath)
	if err != nil {
		cfg = config.DefaultCrossingConfig()
	}
	if difficultyPreset != "" {
		config.ApplyCrossingPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Reset builds a fresh world seeded from runtime.Seed.
// The best score survives.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false

	cfg := loadConfig()
	w, err := world.NewWithSeed(cfg, runtime.Seed, world.WithPrior(g.world), world.WithHighScore(g.highScore))
	if err != nil {
		cfg = config.DefaultCrossingConfig()
		w, _ = world.NewWithSeed(cfg, runtime.Seed, world.WithPrior(g.world), world.WithHighScore(g.highScore))
	}

	g.cfg = cfg
	g.world = w
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
}

// SeedHighScore implements registry.HighScoreSeeder.
func (g *Game) SeedHighScore(score int) {
	if score > g.highScore {
		g.highScore = score
	}
	if g.world != nil {
		g.world.SeedHighScore(score)
	}
}

// Step advances the game by one tick.
// Moves from the frame are applied in arrival order before the tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.world.Alive() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions() {
		if m, ok := moveFor(a); ok {
			g.world.HandleMove(m)
		}
	}
	g.world.Tick()

	return core.StepResult{State: g.State()}
}

// moveFor maps a platform action to a player move.
func moveFor(a core.Action) (world.Move, bool) {
	switch a {
	case core.ActionUp:
		return world.MoveUp, true
	case core.ActionDown:
		return world.MoveDown, true
	case core.ActionLeft:
		return world.MoveLeft, true
	case core.ActionRight:
		return world.MoveRight, true
	case core.ActionRestart:
		return world.MoveRestart, true
	default:
		return 0, false
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{HighScore: g.highScore}
	}
	return core.GameState{
		Score:     g.world.Score(),
		HighScore: g.world.HighScore(),
		GameOver:  !g.world.Alive(),
		Paused:    g.paused,
	}
}

// RunInfo implements registry.RunReporter.
func (g *Game) RunInfo() registry.RunInfo {
	p := g.world.Player()
	cause := "running"
	if !p.Alive {
		cause = p.Cause.String()
	}
	return registry.RunInfo{
		Seed:        g.runtime.Seed,
		Ticks:       g.world.Ticks(),
		Cause:       cause,
		Fingerprint: g.world.Fingerprint(),
	}
}

// Snapshot returns the world snapshot for determinism verification.
func (g *Game) Snapshot() world.Snapshot {
	return g.world.Snapshot()
}

// Register the game with the registry
func init() {
	registry.Register("crossing", func() registry.Game {
		return New()
	})
}
