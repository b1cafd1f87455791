package world

import (
	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Move is a discrete player command.
type Move int

const (
	MoveUp Move = iota
	MoveDown
	MoveLeft
	MoveRight
	MoveRestart
)

// String returns the move name.
func (m Move) String() string {
	switch m {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MoveRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// ParseMove maps the letters U, D, L, R and X (restart) to moves.
func ParseMove(r rune) (Move, bool) {
	switch r {
	case 'U', 'u':
		return MoveUp, true
	case 'D', 'd':
		return MoveDown, true
	case 'L', 'l':
		return MoveLeft, true
	case 'R', 'r':
		return MoveRight, true
	case 'X', 'x':
		return MoveRestart, true
	default:
		return 0, false
	}
}

// PlayerState is the player token.
type PlayerState struct {
	Row       int
	Column    float64 // Left edge of the player tile; fractional while riding
	Alive     bool
	Drowning  bool
	Cause     Outcome // Why the run ended; OutcomeSafe while alive
	Score     int     // Highest row reached this run
	HighScore int     // Best score across restarts
}

// newPlayer places a fresh player at the start tile.
func newPlayer(row, column, highScore int) PlayerState {
	return PlayerState{
		Row:       row,
		Column:    float64(column),
		Alive:     true,
		HighScore: highScore,
	}
}

// target computes where a move would put the player. Vertical hops land
// on the nearest whole column; sideways steps keep any drift.
func target(p PlayerState, m Move) (row int, column float64) {
	row, column = p.Row, p.Column
	switch m {
	case MoveUp:
		row++
		column = float64(core.RoundToInt(column))
	case MoveDown:
		row--
		column = float64(core.RoundToInt(column))
	case MoveLeft:
		column--
	case MoveRight:
		column++
	}
	return row, column
}

// blocked reports whether a tree stands on the landing tile.
func blocked(l *Lane, column float64) bool {
	return l != nil && l.Kind == LaneGrass && l.HasTreeAt(core.RoundToInt(column))
}

// commit moves the player and raises the scores.
func (p *PlayerState) commit(row int, column float64) {
	p.Row = row
	p.Column = column
	if p.Row > p.Score {
		p.Score = p.Row
		if p.Score > p.HighScore {
			p.HighScore = p.Score
		}
	}
}
