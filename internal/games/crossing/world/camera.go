package world

import (
	"github.com/vovakirdan/tui-crossing/internal/config"
)

// Camera smooths the vertical scroll offset towards the player's row.
// It is presentation state only; nothing in the simulation reads it.
type Camera struct {
	Offset float64
	cfg    config.CameraConfig
}

// NewCamera creates a camera already settled on row.
func NewCamera(cfg config.CameraConfig, row int) Camera {
	c := Camera{cfg: cfg}
	c.Offset = c.Target(row)
	return c
}

// Target returns the offset that centres row in the viewport.
func (c Camera) Target(row int) float64 {
	return float64(row)*c.cfg.TileSize - c.cfg.ViewportHeight/2
}

// Update moves the offset a fixed fraction of the way to the target.
func (c *Camera) Update(row int) {
	c.Offset += (c.Target(row) - c.Offset) * c.cfg.Smoothing
}
