// Package world is the deterministic simulation of the lane-crossing game:
// lane generation, obstacle motion, rail signals, collisions, player moves
// and camera smoothing. It has no terminal or storage dependencies; a
// single goroutine owns a World and serializes Tick and HandleMove calls.
package world

import (
	"fmt"

	"github.com/vovakirdan/tui-crossing/internal/config"
)

// Observer receives simulation events synchronously from Tick and HandleMove.
type Observer interface {
	LaneGenerated(l Lane)
	LaneEvicted(index int)
	TrainSpawned(index int)
	TrainCleared(index int)
	PlayerDied(p PlayerState)
}

// Option configures a World at construction.
type Option func(*World)

// WithObserver attaches an event observer.
func WithObserver(o Observer) Option {
	return func(w *World) {
		w.observer = o
	}
}

// WithPrior carries the best score of a previous world over.
func WithPrior(prior *World) Option {
	return func(w *World) {
		if prior != nil && prior.player.HighScore > w.seedHigh {
			w.seedHigh = prior.player.HighScore
		}
	}
}

// WithHighScore starts the world with a known best score.
func WithHighScore(score int) Option {
	return func(w *World) {
		if score > w.seedHigh {
			w.seedHigh = score
		}
	}
}

// World is the whole simulation state.
type World struct {
	cfg      config.CrossingConfig
	rng      RandomSource
	gen      *Generator
	bounds   Bounds
	lanes    *Buffer
	player   PlayerState
	camera   Camera
	tick     uint64
	observer Observer
	seedHigh int
}

// New builds a world for cfg drawing randomness from rng. It fails when
// the configuration is invalid or no random source is given; once built,
// no operation on the world fails.
func New(cfg config.CrossingConfig, rng RandomSource, opts ...Option) (*World, error) {
	if rng == nil {
		return nil, ErrNoRandomSource
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}

	w := &World{
		cfg:    cfg,
		rng:    rng,
		gen:    NewGenerator(cfg, rng),
		bounds: NewBounds(cfg.Grid.Columns, cfg.Window.WrapMargin),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.reset(w.seedHigh)
	return w, nil
}

// NewWithSeed builds a world backed by a math/rand source for seed.
func NewWithSeed(cfg config.CrossingConfig, seed int64, opts ...Option) (*World, error) {
	return New(cfg, NewSeeded(seed), opts...)
}

// reset rebuilds the initial lane window and places a fresh player.
func (w *World) reset(highScore int) {
	g := w.cfg.Grid
	w.lanes = NewBuffer(w.cfg.Window.BehindMargin, w.cfg.Window.AheadMargin)
	for i := g.InitialMinRow; i < g.InitialMaxRow; i++ {
		w.lanes.Insert(w.generate(i))
	}
	w.player = newPlayer(g.StartRow, g.StartColumn, highScore)
	w.camera = NewCamera(w.cfg.Camera, g.StartRow)
	w.tick = 0
}

func (w *World) generate(index int) Lane {
	l := w.gen.Generate(index)
	if w.observer != nil {
		w.observer.LaneGenerated(l)
	}
	return l
}

// Restart reinitializes the world in place, keeping the best score.
// Randomness continues from the current source state.
func (w *World) Restart() {
	w.reset(w.player.HighScore)
}

// Tick advances the simulation by one step: window resize, obstacle
// motion, rail signals, collision and camera. It does nothing once the
// player is dead.
func (w *World) Tick() {
	if !w.player.Alive {
		return
	}
	w.tick++

	evicted := w.lanes.Resize(w.player.Row, w.generate)
	if w.observer != nil {
		for _, idx := range evicted {
			w.observer.LaneEvicted(idx)
		}
	}

	lanes := w.lanes.lanes
	for i := range lanes {
		l := &lanes[i]
		switch l.Kind {
		case LaneRoad, LaneRiver:
			Advance(l, w.bounds)
		case LaneRail:
			ev := AdvanceSignal(l, w.cfg.Rail, w.cfg.Grid.Columns, w.rng)
			w.notifySignal(l.Index, ev)
		}
	}

	outcome := Resolve(&w.player, w.lanes.At(w.player.Row), w.cfg.Player, w.cfg.Grid.Columns)
	if outcome.Fatal() && w.observer != nil {
		w.observer.PlayerDied(w.player)
	}

	w.camera.Update(w.player.Row)
}

func (w *World) notifySignal(index int, ev SignalEvent) {
	if w.observer == nil {
		return
	}
	switch ev {
	case SignalSpawned:
		w.observer.TrainSpawned(index)
	case SignalCleared:
		w.observer.TrainCleared(index)
	}
}

// HandleMove applies a player command and reports whether it changed
// anything. Moves into a tree are ignored. While the player is dead only
// MoveRestart has an effect.
func (w *World) HandleMove(m Move) bool {
	if m == MoveRestart {
		if w.player.Alive {
			return false
		}
		w.Restart()
		return true
	}
	if !w.player.Alive {
		return false
	}

	row, column := target(w.player, m)
	if blocked(w.lanes.At(row), column) {
		return false
	}
	w.player.commit(row, column)
	return true
}

// SeedHighScore raises the best score to at least score.
func (w *World) SeedHighScore(score int) {
	if score > w.player.HighScore {
		w.player.HighScore = score
	}
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.CrossingConfig {
	return w.cfg
}

// Lanes returns the active lanes in ascending index order.
// The slice is owned by the world and must not be modified.
func (w *World) Lanes() []Lane {
	return w.lanes.Lanes()
}

// VisibleLanes returns the active lanes with lo <= index <= hi.
// The slice is owned by the world and must not be modified.
func (w *World) VisibleLanes(lo, hi int) []Lane {
	return w.lanes.Range(lo, hi)
}

// LaneAt returns a copy of the lane at index, if active.
func (w *World) LaneAt(index int) (Lane, bool) {
	l := w.lanes.At(index)
	if l == nil {
		return Lane{}, false
	}
	return l.Clone(), true
}

// Player returns a copy of the player state.
func (w *World) Player() PlayerState {
	return w.player
}

// ScrollOffset returns the smoothed camera offset.
func (w *World) ScrollOffset() float64 {
	return w.camera.Offset
}

// Alive reports whether the player is still running.
func (w *World) Alive() bool {
	return w.player.Alive
}

// Drowning reports whether the run ended in the river.
func (w *World) Drowning() bool {
	return w.player.Drowning
}

// Score returns the highest row reached this run.
func (w *World) Score() int {
	return w.player.Score
}

// HighScore returns the best score across restarts.
func (w *World) HighScore() int {
	return w.player.HighScore
}

// Ticks returns the number of ticks since the last (re)start.
func (w *World) Ticks() uint64 {
	return w.tick
}
