package world

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/config"
)

func newTestWorld(t *testing.T, seed int64, opts ...Option) *World {
	t.Helper()
	w, err := NewWithSeed(config.DefaultCrossingConfig(), seed, opts...)
	if err != nil {
		t.Fatalf("NewWithSeed: %v", err)
	}
	return w
}

// movePattern is a fixed input script: one entry per tick, ' ' for no move.
const movePattern = "U  U R UL  D U  RRU  L U U   LLU D R"

func drive(w *World, ticks int) {
	for i := 0; i < ticks; i++ {
		if m, ok := ParseMove(rune(movePattern[i%len(movePattern)])); ok {
			w.HandleMove(m)
		}
		if !w.Alive() {
			w.HandleMove(MoveRestart)
		}
		w.Tick()
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(config.DefaultCrossingConfig(), nil); !errors.Is(err, ErrNoRandomSource) {
		t.Errorf("nil source error = %v, want ErrNoRandomSource", err)
	}

	cfg := config.DefaultCrossingConfig()
	cfg.Camera.Smoothing = 2
	if _, err := New(cfg, NewSeeded(1)); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("invalid config error = %v, want ErrInvalidConfig", err)
	}
}

func TestNewInitialState(t *testing.T) {
	w := newTestWorld(t, 1)
	cfg := w.Config()

	lanes := w.Lanes()
	if len(lanes) != cfg.Grid.InitialMaxRow-cfg.Grid.InitialMinRow {
		t.Fatalf("lanes = %d, want %d", len(lanes), cfg.Grid.InitialMaxRow-cfg.Grid.InitialMinRow)
	}
	if lanes[0].Index != -5 || lanes[len(lanes)-1].Index != 14 {
		t.Errorf("lane range = %d..%d, want -5..14", lanes[0].Index, lanes[len(lanes)-1].Index)
	}

	p := w.Player()
	if p.Row != 3 || p.Column != 5 || !p.Alive || p.Score != 0 {
		t.Errorf("player = %+v", p)
	}
	if w.ScrollOffset() != -7 {
		t.Errorf("scroll offset = %v, want -7", w.ScrollOffset())
	}
	if w.Ticks() != 0 {
		t.Errorf("ticks = %d", w.Ticks())
	}
}

func TestWorldDeterminism(t *testing.T) {
	w1 := newTestWorld(t, 12345)
	w2 := newTestWorld(t, 12345)

	for i := 0; i < 1500; i++ {
		drive(w1, 1)
		drive(w2, 1)
		if w1.Fingerprint() != w2.Fingerprint() {
			t.Fatalf("tick %d: fingerprints differ", i)
		}
	}
	if w1.Score() != w2.Score() || w1.HighScore() != w2.HighScore() {
		t.Errorf("scores differ: %d/%d vs %d/%d", w1.Score(), w1.HighScore(), w2.Score(), w2.HighScore())
	}

	other := newTestWorld(t, 54321)
	drive(other, 1500)
	if other.Fingerprint() == w1.Fingerprint() {
		t.Error("different seeds should give different worlds")
	}
}

func TestWorldWindowInvariants(t *testing.T) {
	w := newTestWorld(t, 7)
	cfg := w.Config()

	for i := 0; i < 3000; i++ {
		drive(w, 1)

		lanes := w.Lanes()
		for j := 1; j < len(lanes); j++ {
			if lanes[j].Index <= lanes[j-1].Index {
				t.Fatalf("tick %d: lanes not strictly ascending at %d", i, j)
			}
		}
		row := w.Player().Row
		if lanes[0].Index < row-cfg.Window.BehindMargin {
			t.Fatalf("tick %d: lane %d behind window of row %d", i, lanes[0].Index, row)
		}
		if lanes[len(lanes)-1].Index-row < cfg.Window.AheadMargin-1 {
			t.Fatalf("tick %d: highest lane %d too close to row %d", i, lanes[len(lanes)-1].Index, row)
		}
	}
}

func TestWorldScoreMonotonic(t *testing.T) {
	w := newTestWorld(t, 99)

	prevScore, prevHigh := 0, 0
	for i := 0; i < 3000; i++ {
		restarted := false
		if m, ok := ParseMove(rune(movePattern[i%len(movePattern)])); ok {
			w.HandleMove(m)
		}
		if !w.Alive() {
			restarted = w.HandleMove(MoveRestart)
		}
		w.Tick()

		if !restarted && w.Score() < prevScore {
			t.Fatalf("tick %d: score fell from %d to %d", i, prevScore, w.Score())
		}
		if w.HighScore() < prevHigh {
			t.Fatalf("tick %d: high score fell from %d to %d", i, prevHigh, w.HighScore())
		}
		if w.HighScore() < w.Score() {
			t.Fatalf("tick %d: high score %d below score %d", i, w.HighScore(), w.Score())
		}
		prevScore, prevHigh = w.Score(), w.HighScore()
	}
}

func TestWorldRoadCollision(t *testing.T) {
	w := newTestWorld(t, 1)
	w.lanes.Insert(Lane{
		Index:     3,
		Kind:      LaneRoad,
		Direction: 1,
		Speed:     0.05,
		Obstacles: []Obstacle{{Kind: ObstacleCar, Position: 0, Width: 1}},
	})
	w.player.Column = 0.5

	w.Tick()
	if w.Alive() {
		t.Error("car overlap should kill the player")
	}
	if w.Drowning() {
		t.Error("a car hit is not drowning")
	}
}

func TestWorldLilypadStaysPut(t *testing.T) {
	w := newTestWorld(t, 1)
	w.lanes.Insert(Lane{
		Index:     3,
		Kind:      LaneRiver,
		Direction: 1,
		Speed:     0,
		Obstacles: []Obstacle{{Kind: ObstacleLilypad, Position: 2, Width: 1}},
	})
	w.player.Column = 2.5

	w.Tick()
	if !w.Alive() {
		t.Fatal("player on a lilypad should survive")
	}
	if w.Player().Column != 2.5 {
		t.Errorf("column = %v, want 2.5", w.Player().Column)
	}
}

func TestWorldLogCarries(t *testing.T) {
	w := newTestWorld(t, 1)
	w.lanes.Insert(Lane{
		Index:     3,
		Kind:      LaneRiver,
		Direction: 1,
		Speed:     0.1,
		Obstacles: []Obstacle{{Kind: ObstacleLog, Position: 2, Width: 1}},
	})
	w.player.Column = 2.5

	w.Tick()
	if !w.Alive() {
		t.Fatal("player on a log should survive")
	}
	if got := w.Player().Column; math.Abs(got-2.6) > 1e-9 {
		t.Errorf("column = %v, want 2.6", got)
	}
}

func TestWorldTrainSpawns(t *testing.T) {
	w := newTestWorld(t, 1)
	w.lanes.Insert(Lane{
		Index:     3,
		Kind:      LaneRail,
		Direction: 1,
		Speed:     0.625,
		Signal:    &RailSignal{Timer: 1},
	})

	w.Tick()
	l, ok := w.LaneAt(3)
	if !ok {
		t.Fatal("lane 3 missing")
	}
	if !l.Signal.Active {
		t.Error("signal should be active")
	}
	trains := 0
	for _, o := range l.Obstacles {
		if o.Kind == ObstacleTrain {
			trains++
		}
	}
	if trains != 1 {
		t.Errorf("trains = %d, want 1", trains)
	}
	if !w.Alive() {
		t.Error("a train spawning off screen must not hit the player")
	}
}

func TestWorldTreeBlocksMove(t *testing.T) {
	w := newTestWorld(t, 1)
	w.lanes.Insert(Lane{
		Index:     4,
		Kind:      LaneGrass,
		Obstacles: []Obstacle{{Kind: ObstacleTree, Position: 5, Width: 1}},
	})
	before := w.Player()

	if w.HandleMove(MoveUp) {
		t.Error("move into a tree should be rejected")
	}
	if w.Player() != before {
		t.Errorf("player changed: %+v -> %+v", before, w.Player())
	}
}

func TestWorldMoves(t *testing.T) {
	w := newTestWorld(t, 1)
	w.lanes.Insert(Lane{Index: 4, Kind: LaneGrass})
	w.lanes.Insert(Lane{Index: 5, Kind: LaneGrass})
	w.player.Column = 4.75

	if !w.HandleMove(MoveUp) {
		t.Fatal("move up should succeed")
	}
	p := w.Player()
	if p.Row != 4 || p.Column != 5 {
		t.Errorf("after up: row %d column %v, want 4, 5", p.Row, p.Column)
	}
	if p.Score != 4 || p.HighScore != 4 {
		t.Errorf("after up: score %d high %d", p.Score, p.HighScore)
	}

	w.player.Column = 5.25
	w.HandleMove(MoveLeft)
	if got := w.Player().Column; got != 4.25 {
		t.Errorf("left keeps drift: column = %v, want 4.25", got)
	}
	w.HandleMove(MoveRight)
	if got := w.Player().Column; got != 5.25 {
		t.Errorf("right keeps drift: column = %v, want 5.25", got)
	}

	w.HandleMove(MoveDown)
	p = w.Player()
	if p.Row != 3 || p.Column != 5 {
		t.Errorf("after down: row %d column %v", p.Row, p.Column)
	}
	if p.Score != 4 {
		t.Errorf("moving down must not lower the score, got %d", p.Score)
	}
}

func TestWorldRestart(t *testing.T) {
	w := newTestWorld(t, 1)
	w.lanes.Insert(Lane{Index: 4, Kind: LaneGrass})
	w.HandleMove(MoveUp)

	if w.HandleMove(MoveRestart) {
		t.Error("restart while alive should be ignored")
	}

	w.lanes.Insert(Lane{
		Index:     4,
		Kind:      LaneRoad,
		Obstacles: []Obstacle{{Kind: ObstacleCar, Position: 5, Width: 1}},
	})
	w.Tick()
	if w.Alive() {
		t.Fatal("player should be dead")
	}

	frozen := w.Fingerprint()
	w.Tick()
	if w.HandleMove(MoveUp) {
		t.Error("moves while dead should be ignored")
	}
	if w.Fingerprint() != frozen {
		t.Error("a dead world must not change")
	}

	if !w.HandleMove(MoveRestart) {
		t.Fatal("restart should succeed when dead")
	}
	p := w.Player()
	if !p.Alive || p.Row != 3 || p.Score != 0 {
		t.Errorf("after restart: %+v", p)
	}
	if p.HighScore != 4 {
		t.Errorf("high score = %d, want 4 carried over", p.HighScore)
	}
	if w.Ticks() != 0 || len(w.Lanes()) != 20 {
		t.Errorf("restart should rebuild the window, ticks=%d lanes=%d", w.Ticks(), len(w.Lanes()))
	}
}

func TestWorldHighScoreOptions(t *testing.T) {
	prior := newTestWorld(t, 1, WithHighScore(12))
	if prior.HighScore() != 12 {
		t.Errorf("WithHighScore: %d", prior.HighScore())
	}

	next := newTestWorld(t, 2, WithPrior(prior))
	if next.HighScore() != 12 || next.Score() != 0 {
		t.Errorf("WithPrior: score %d high %d", next.Score(), next.HighScore())
	}

	next.SeedHighScore(5)
	if next.HighScore() != 12 {
		t.Error("SeedHighScore must not lower the best score")
	}
	next.SeedHighScore(40)
	if next.HighScore() != 40 {
		t.Errorf("SeedHighScore: %d", next.HighScore())
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	w := newTestWorld(t, 3)
	drive(w, 50)

	snap := w.Snapshot()
	fp := snap.Fingerprint()
	if fp != w.Fingerprint() {
		t.Error("snapshot fingerprint should match the world")
	}

	drive(w, 50)
	if snap.Fingerprint() != fp {
		t.Error("snapshot changed after further ticks")
	}
	if w.Fingerprint() == fp {
		t.Error("world should have moved on")
	}
}

type recorder struct {
	generated, evicted, spawned, cleared, died int
}

func (r *recorder) LaneGenerated(Lane)     { r.generated++ }
func (r *recorder) LaneEvicted(int)        { r.evicted++ }
func (r *recorder) TrainSpawned(int)       { r.spawned++ }
func (r *recorder) TrainCleared(int)       { r.cleared++ }
func (r *recorder) PlayerDied(PlayerState) { r.died++ }

func TestObserver(t *testing.T) {
	rec := &recorder{}
	w := newTestWorld(t, 1, WithObserver(rec))
	if rec.generated != 20 {
		t.Errorf("generated = %d, want 20 initial lanes", rec.generated)
	}

	w.Tick()
	if rec.generated != 24 {
		t.Errorf("generated = %d, want 24 after filling the window", rec.generated)
	}

	w.lanes.Insert(Lane{Index: 3, Kind: LaneRail, Direction: 1, Speed: 0.625, Signal: &RailSignal{Timer: 1}})
	w.Tick()
	if rec.spawned < 1 {
		t.Error("expected a train spawn event")
	}

	w.lanes.Insert(Lane{Index: 3, Kind: LaneRiver, Direction: 1, Speed: 0.1})
	w.Tick()
	if rec.died != 1 {
		t.Errorf("died = %d, want 1", rec.died)
	}
}
