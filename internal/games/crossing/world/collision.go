package world

import (
	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Outcome is the result of resolving the player against its lane.
type Outcome int

const (
	OutcomeSafe Outcome = iota
	OutcomeCarried
	OutcomeHit
	OutcomeDrowned
	OutcomeOffGrid
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeSafe:
		return "safe"
	case OutcomeCarried:
		return "carried"
	case OutcomeHit:
		return "hit"
	case OutcomeDrowned:
		return "drowned"
	case OutcomeOffGrid:
		return "off-grid"
	default:
		return "unknown"
	}
}

// Fatal reports whether the outcome ends the run.
func (o Outcome) Fatal() bool {
	return o == OutcomeHit || o == OutcomeDrowned || o == OutcomeOffGrid
}

// Resolve checks the player against the lane it stands on and against the
// grid edges, updating p in place. A nil lane skips the lane checks.
func Resolve(p *PlayerState, l *Lane, cfg config.PlayerConfig, columns int) Outcome {
	outcome := OutcomeSafe
	if l != nil {
		switch l.Kind {
		case LaneRoad, LaneRail:
			if hitAny(p, l, cfg) {
				outcome = OutcomeHit
			}
		case LaneRiver:
			outcome = ride(p, l, cfg)
		}
	}

	if !outcome.Fatal() && offGrid(p.Column, cfg, columns) {
		outcome = OutcomeOffGrid
	}

	if outcome.Fatal() {
		p.Alive = false
		p.Drowning = outcome == OutcomeDrowned
		p.Cause = outcome
	}
	return outcome
}

// footprint is the player's hitbox for road and rail lanes.
func footprint(p *PlayerState, cfg config.PlayerConfig) core.Span {
	return core.Span{Lo: p.Column + cfg.MarginLeft, Hi: p.Column + cfg.MarginRight}
}

func hitAny(p *PlayerState, l *Lane, cfg config.PlayerConfig) bool {
	fp := footprint(p, cfg)
	for _, o := range l.Obstacles {
		if fp.Overlaps(o.Span()) {
			return true
		}
	}
	return false
}

// ride finds the first obstacle under the player's centre and drifts the
// player with it. Obstacles are scanned in lane order.
func ride(p *PlayerState, l *Lane, cfg config.PlayerConfig) Outcome {
	center := p.Column + 0.5
	for _, o := range l.Obstacles {
		if o.Span().Expand(cfg.RiverTolerance).Contains(center) {
			p.Column += o.SpeedIn(l) * float64(l.Direction)
			return OutcomeCarried
		}
	}
	return OutcomeDrowned
}

func offGrid(column float64, cfg config.PlayerConfig, columns int) bool {
	return column < -cfg.EdgeTolerance || column > float64(columns-1)+cfg.EdgeTolerance
}
