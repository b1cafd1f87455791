package world

import (
	"github.com/vovakirdan/tui-crossing/internal/core"
)

// LaneKind is the hazard type of a lane.
type LaneKind int

const (
	LaneGrass LaneKind = iota
	LaneRoad
	LaneRiver
	LaneRail
)

// String returns the lane kind's name.
func (k LaneKind) String() string {
	switch k {
	case LaneGrass:
		return "grass"
	case LaneRoad:
		return "road"
	case LaneRiver:
		return "river"
	case LaneRail:
		return "rail"
	default:
		return "unknown"
	}
}

// ObstacleKind is the type of a lane obstacle.
type ObstacleKind int

const (
	ObstacleTree ObstacleKind = iota
	ObstacleCar
	ObstacleLog
	ObstacleLilypad
	ObstacleTrain
)

// String returns the obstacle kind's name.
func (k ObstacleKind) String() string {
	switch k {
	case ObstacleTree:
		return "tree"
	case ObstacleCar:
		return "car"
	case ObstacleLog:
		return "log"
	case ObstacleLilypad:
		return "lilypad"
	case ObstacleTrain:
		return "train"
	default:
		return "unknown"
	}
}

// Obstacle is a positioned hazard or prop within a lane.
// Position is the left edge in grid columns.
type Obstacle struct {
	Kind     ObstacleKind
	Position float64
	Width    float64
	Speed    float64 // Used only when HasSpeed is set
	HasSpeed bool
	Tint     uint8 // Cosmetic variant, e.g. car paint
}

// Span returns the obstacle's footprint.
func (o Obstacle) Span() core.Span {
	return core.NewSpan(o.Position, o.Width)
}

// SpeedIn returns the obstacle's effective speed in the given lane.
// Trees and lilypads never move; everything else inherits the lane speed
// unless it carries its own.
func (o Obstacle) SpeedIn(l *Lane) float64 {
	switch o.Kind {
	case ObstacleTree, ObstacleLilypad:
		return 0
	default:
		if o.HasSpeed {
			return o.Speed
		}
		return l.Speed
	}
}

// RailSignal is the crossing signal state carried by rail lanes.
type RailSignal struct {
	Timer  int  // Ticks until the next train; negative while a train runs
	Active bool // A train has spawned and not yet left
}

// SignalPhase is the observable phase of a rail crossing.
type SignalPhase int

const (
	SignalIdle SignalPhase = iota
	SignalWarning
	SignalActive
)

// String returns the phase name.
func (p SignalPhase) String() string {
	switch p {
	case SignalIdle:
		return "idle"
	case SignalWarning:
		return "warning"
	case SignalActive:
		return "active"
	default:
		return "unknown"
	}
}

// Lane is one row of the world.
type Lane struct {
	Index     int
	Kind      LaneKind
	Direction int     // +1 moves right, -1 moves left
	Speed     float64 // Lane-wide obstacle speed in columns per tick
	Obstacles []Obstacle
	Signal    *RailSignal // Non-nil only for rail lanes
}

// Clone returns a deep copy of the lane.
func (l Lane) Clone() Lane {
	c := l
	if l.Obstacles != nil {
		c.Obstacles = make([]Obstacle, len(l.Obstacles))
		copy(c.Obstacles, l.Obstacles)
	}
	if l.Signal != nil {
		sig := *l.Signal
		c.Signal = &sig
	}
	return c
}

// HasTreeAt reports whether a tree occupies the given column.
func (l *Lane) HasTreeAt(col int) bool {
	for _, o := range l.Obstacles {
		if o.Kind == ObstacleTree && core.RoundToInt(o.Position) == col {
			return true
		}
	}
	return false
}

// Train returns the lane's live train, if any.
func (l *Lane) Train() (*Obstacle, bool) {
	for i := range l.Obstacles {
		if l.Obstacles[i].Kind == ObstacleTrain {
			return &l.Obstacles[i], true
		}
	}
	return nil, false
}

// Phase returns the rail signal phase for a warning window of warningTicks.
// Non-rail lanes are always idle.
func (l *Lane) Phase(warningTicks int) SignalPhase {
	if l.Signal == nil {
		return SignalIdle
	}
	switch {
	case l.Signal.Active || l.Signal.Timer <= 0:
		return SignalActive
	case l.Signal.Timer <= warningTicks:
		return SignalWarning
	default:
		return SignalIdle
	}
}

// SignalLit reports whether the warning light is on: it flashes with a
// five-tick cadence during the warning phase.
func (l *Lane) SignalLit(warningTicks int) bool {
	if l.Phase(warningTicks) != SignalWarning {
		return false
	}
	return (l.Signal.Timer/5)%2 == 0
}
