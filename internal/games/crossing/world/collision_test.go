package world

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/config"
)

func TestResolve(t *testing.T) {
	cfg := config.DefaultCrossingConfig()

	tests := []struct {
		name     string
		lane     *Lane
		column   float64
		want     Outcome
		alive    bool
		drowning bool
		column2  float64
	}{
		{
			name:   "car overlaps",
			lane:   &Lane{Kind: LaneRoad, Direction: 1, Speed: 0.1, Obstacles: []Obstacle{{Kind: ObstacleCar, Position: 0, Width: 1}}},
			column: 0.5, want: OutcomeHit, alive: false, column2: 0.5,
		},
		{
			name:   "car touches footprint edge",
			lane:   &Lane{Kind: LaneRoad, Direction: 1, Speed: 0.1, Obstacles: []Obstacle{{Kind: ObstacleCar, Position: 3.875, Width: 1}}},
			column: 3, want: OutcomeSafe, alive: true, column2: 3,
		},
		{
			name:   "empty road",
			lane:   &Lane{Kind: LaneRoad, Direction: -1, Speed: 0.1},
			column: 4, want: OutcomeSafe, alive: true, column2: 4,
		},
		{
			name:   "train overlaps",
			lane:   &Lane{Kind: LaneRail, Direction: 1, Speed: 0.625, Signal: &RailSignal{Active: true}, Obstacles: []Obstacle{{Kind: ObstacleTrain, Position: -10, Width: 15}}},
			column: 2, want: OutcomeHit, alive: false, column2: 2,
		},
		{
			name:   "lilypad holds still",
			lane:   &Lane{Kind: LaneRiver, Direction: 1, Obstacles: []Obstacle{{Kind: ObstacleLilypad, Position: 2, Width: 1}}},
			column: 2.5, want: OutcomeCarried, alive: true, column2: 2.5,
		},
		{
			name:   "log carries",
			lane:   &Lane{Kind: LaneRiver, Direction: 1, Speed: 0.1, Obstacles: []Obstacle{{Kind: ObstacleLog, Position: 2, Width: 1}}},
			column: 2.5, want: OutcomeCarried, alive: true, column2: 2.6,
		},
		{
			name:   "log edge tolerance",
			lane:   &Lane{Kind: LaneRiver, Direction: -1, Speed: 0.25, Obstacles: []Obstacle{{Kind: ObstacleLog, Position: 4, Width: 2}}},
			column: 5.75, want: OutcomeCarried, alive: true, column2: 5.5,
		},
		{
			name:   "open water",
			lane:   &Lane{Kind: LaneRiver, Direction: 1, Speed: 0.1, Obstacles: []Obstacle{{Kind: ObstacleLog, Position: 6, Width: 2}}},
			column: 2, want: OutcomeDrowned, alive: false, drowning: true, column2: 2,
		},
		{
			name:   "carried off the edge",
			lane:   &Lane{Kind: LaneRiver, Direction: 1, Speed: 0.25, Obstacles: []Obstacle{{Kind: ObstacleLog, Position: 9, Width: 3}}},
			column: 9.375, want: OutcomeOffGrid, alive: false, column2: 9.625,
		},
		{
			name:   "left edge tolerance",
			lane:   &Lane{Kind: LaneGrass},
			column: -0.5, want: OutcomeSafe, alive: true, column2: -0.5,
		},
		{
			name:   "past left edge",
			lane:   &Lane{Kind: LaneGrass},
			column: -0.625, want: OutcomeOffGrid, alive: false, column2: -0.625,
		},
		{
			name:   "no lane past right edge",
			lane:   nil,
			column: 9.75, want: OutcomeOffGrid, alive: false, column2: 9.75,
		},
		{
			name:   "no lane",
			lane:   nil,
			column: 4, want: OutcomeSafe, alive: true, column2: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPlayer(3, 0, 0)
			p.Column = tt.column

			got := Resolve(&p, tt.lane, cfg.Player, cfg.Grid.Columns)
			if got != tt.want {
				t.Errorf("outcome = %v, want %v", got, tt.want)
			}
			if p.Alive != tt.alive {
				t.Errorf("alive = %v, want %v", p.Alive, tt.alive)
			}
			if p.Drowning != tt.drowning {
				t.Errorf("drowning = %v, want %v", p.Drowning, tt.drowning)
			}
			if math.Abs(p.Column-tt.column2) > 1e-9 {
				t.Errorf("column = %v, want %v", p.Column, tt.column2)
			}
			if !tt.alive && p.Cause != tt.want {
				t.Errorf("cause = %v, want %v", p.Cause, tt.want)
			}
		})
	}
}

func TestResolveFirstMatchWins(t *testing.T) {
	cfg := config.DefaultCrossingConfig()
	l := &Lane{
		Kind:      LaneRiver,
		Direction: 1,
		Speed:     0.1,
		Obstacles: []Obstacle{
			{Kind: ObstacleLog, Position: 1, Width: 2, Speed: 0.25, HasSpeed: true},
			{Kind: ObstacleLog, Position: 3, Width: 2},
		},
	}
	p := newPlayer(3, 2, 0)
	p.Column = 2.5

	Resolve(&p, l, cfg.Player, cfg.Grid.Columns)
	if p.Column != 2.75 {
		t.Errorf("column = %v, want 2.75 from the first log", p.Column)
	}
}
