package world

// Bounds is the travel ring for moving obstacles: the visible columns plus
// a hidden margin on each side. An obstacle leaving one end of the ring
// re-enters at the other, so traffic appears endless.
type Bounds struct {
	Near float64 // Left end of the ring
	Far  float64 // Right end of the ring
}

// NewBounds builds the ring for a grid of the given width with margin hidden
// columns beyond each edge.
func NewBounds(columns int, margin float64) Bounds {
	return Bounds{Near: -margin, Far: float64(columns) + margin}
}

// Span returns the total travel distance of one loop.
func (b Bounds) Span() float64 {
	return b.Far - b.Near
}

// Advance moves every moving obstacle of a road or river lane by one tick
// and wraps those that left the ring. Other lane kinds are left alone;
// trains are driven by the rail signal.
func Advance(l *Lane, b Bounds) {
	if l.Kind != LaneRoad && l.Kind != LaneRiver {
		return
	}
	for i := range l.Obstacles {
		o := &l.Obstacles[i]
		speed := o.SpeedIn(l)
		if speed == 0 {
			continue
		}
		o.Position += speed * float64(l.Direction)
		wrap(o, l.Direction, b)
	}
}

// wrap relocates an obstacle whose trailing edge passed the far end of the
// ring in its travel direction. The jump is exactly one ring span.
func wrap(o *Obstacle, direction int, b Bounds) bool {
	switch {
	case direction > 0 && o.Position > b.Far:
		o.Position -= b.Span()
		return true
	case direction < 0 && o.Position+o.Width < b.Near:
		o.Position += b.Span()
		return true
	}
	return false
}
