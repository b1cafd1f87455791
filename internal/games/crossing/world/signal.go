package world

import (
	"github.com/vovakirdan/tui-crossing/internal/config"
)

// SignalEvent reports what a rail lane did during one tick.
type SignalEvent int

const (
	SignalNone SignalEvent = iota
	SignalSpawned
	SignalCleared
)

// AdvanceSignal runs one tick of a rail crossing. The timer counts down
// every tick; at zero a single train spawns beyond the visible edge it
// travels from and is driven at lane speed until it passes the opposite
// spawn line, after which the lane is cleared and re-armed.
func AdvanceSignal(l *Lane, cfg config.RailConfig, columns int, rng RandomSource) SignalEvent {
	if l.Kind != LaneRail || l.Signal == nil {
		return SignalNone
	}
	sig := l.Signal
	sig.Timer--
	if sig.Timer > 0 {
		return SignalNone
	}

	event := SignalNone
	sig.Active = true
	train, ok := l.Train()
	if !ok {
		l.Obstacles = append(l.Obstacles[:0], Obstacle{
			Kind:     ObstacleTrain,
			Position: trainSpawn(l.Direction, cfg, columns),
			Width:    cfg.TrainWidth,
		})
		train = &l.Obstacles[0]
		event = SignalSpawned
	}

	train.Position += train.SpeedIn(l) * float64(l.Direction)

	if trainGone(train, l.Direction, cfg, columns) {
		l.Obstacles = l.Obstacles[:0]
		sig.Timer = rng.IntRange(cfg.ResetTimerMin, cfg.ResetTimerMax)
		sig.Active = false
		event = SignalCleared
	}
	return event
}

// trainSpawn returns the left edge of a new train. Trains heading right
// start SpawnOffset columns left of the screen, trains heading left start
// SpawnOffset columns past the right edge.
func trainSpawn(direction int, cfg config.RailConfig, columns int) float64 {
	if direction > 0 {
		return -cfg.SpawnOffset
	}
	return float64(columns) + cfg.SpawnOffset
}

func trainGone(t *Obstacle, direction int, cfg config.RailConfig, columns int) bool {
	if direction > 0 {
		return t.Position > float64(columns)+cfg.SpawnOffset
	}
	return t.Position < -cfg.SpawnOffset
}
