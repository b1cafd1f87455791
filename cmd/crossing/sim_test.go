package main

import (
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing/world"
)

func TestParseMoves(t *testing.T) {
	tests := []struct {
		script string
		want   []world.Move
	}{
		{"", nil},
		{"U", []world.Move{world.MoveUp}},
		{"udlr", []world.Move{world.MoveUp, world.MoveDown, world.MoveLeft, world.MoveRight}},
		{"U U,\tX", []world.Move{world.MoveUp, world.MoveUp, world.MoveRestart}},
	}
	for _, tt := range tests {
		got, err := parseMoves(tt.script)
		if err != nil {
			t.Errorf("parseMoves(%q) error: %v", tt.script, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("parseMoves(%q) = %v, want %v", tt.script, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseMoves(%q)[%d] = %v, want %v", tt.script, i, got[i], tt.want[i])
			}
		}
	}
}

func TestParseMovesRejectsUnknown(t *testing.T) {
	if _, err := parseMoves("UUQ"); err == nil {
		t.Error("expected error for unknown move letter")
	}
}

func TestSimulateDeterministic(t *testing.T) {
	moves, _ := parseMoves("UUUULUURUUDU")
	opts := simOptions{Seed: 99, Ticks: 400, Moves: moves, Every: 7, Restart: true}

	a, err := simulate(config.DefaultCrossingConfig(), opts, nil)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	b, err := simulate(config.DefaultCrossingConfig(), opts, nil)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if a != b {
		t.Errorf("same inputs diverged: %+v vs %+v", a, b)
	}
}

func TestSimulateStopsOnDeath(t *testing.T) {
	moves, _ := parseMoves("LLLLLL")
	res, err := simulate(config.DefaultCrossingConfig(), simOptions{Seed: 1, Ticks: 100, Moves: moves, Every: 1}, nil)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if res.Alive {
		t.Fatal("walking off the grid should kill the player")
	}
	if res.Cause != "off-grid" {
		t.Errorf("cause = %q, want off-grid", res.Cause)
	}
	if res.Deaths != 1 {
		t.Errorf("deaths = %d, want 1", res.Deaths)
	}
	if res.Ticks >= 100 {
		t.Errorf("run should stop at death, ran %d ticks", res.Ticks)
	}
}

func TestSimulateRestart(t *testing.T) {
	moves, _ := parseMoves("LLLLLL")
	res, err := simulate(config.DefaultCrossingConfig(), simOptions{Seed: 1, Ticks: 50, Moves: moves, Every: 1, Restart: true}, nil)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if res.Deaths != 1 {
		t.Errorf("deaths = %d, want 1", res.Deaths)
	}
	if !res.Alive {
		t.Error("player should be alive after restarting")
	}
	if res.Cause != "running" {
		t.Errorf("cause = %q, want running", res.Cause)
	}
}

func TestSimulateInvalidConfig(t *testing.T) {
	cfg := config.DefaultCrossingConfig()
	cfg.Grid.Columns = 0
	if _, err := simulate(cfg, simOptions{Seed: 1, Ticks: 10}, nil); err == nil {
		t.Error("expected error for invalid config")
	}
}
