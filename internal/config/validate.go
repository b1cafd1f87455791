package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the relative guarantees the simulation depends on:
// passable road gaps, invisible wrap-around and off-screen train spawns.
func (c CrossingConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	g := c.Grid
	check(g.Columns > 0, "grid.columns must be positive, got %d", g.Columns)
	check(g.StartColumn >= 0 && g.StartColumn < g.Columns, "grid.start_column %d outside [0,%d)", g.StartColumn, g.Columns)
	check(g.StartRow <= g.SafeRows, "grid.start_row %d must be inside the safe rows (<= %d)", g.StartRow, g.SafeRows)
	check(g.InitialMinRow <= g.StartRow && g.StartRow < g.InitialMaxRow,
		"grid.start_row %d outside initial rows [%d,%d)", g.StartRow, g.InitialMinRow, g.InitialMaxRow)

	w := c.Window
	check(w.BehindMargin > 0, "window.behind_margin must be positive")
	check(w.AheadMargin > 0, "window.ahead_margin must be positive")
	check(w.WrapMargin >= float64(g.Columns), "window.wrap_margin %.2f must be at least one screen width (%d)", w.WrapMargin, g.Columns)

	l := c.Lanes
	check(0 < l.Road && l.Road <= l.River && l.River <= l.Rail && l.Rail <= 1,
		"lanes thresholds must ascend within (0,1], got %.2f/%.2f/%.2f", l.Road, l.River, l.Rail)

	r := c.Road
	check(len(r.Speeds) > 0, "road.speeds must not be empty")
	check(allPositive(r.Speeds), "road.speeds must be positive")
	check(len(r.CarWidths) > 0 && allPositive(r.CarWidths), "road.car_widths must be non-empty and positive")
	check(len(r.CarWeights) == 0 || len(r.CarWeights) == len(r.CarWidths), "road.car_weights must match road.car_widths")
	check(len(r.CarWeights) == 0 || weightsUsable(r.CarWeights), "road.car_weights must be non-negative with a positive sum")
	check(r.MinCars >= 0 && r.MinCars <= r.MaxCars, "road car count range [%d,%d] invalid", r.MinCars, r.MaxCars)
	check(r.MinGap >= 1+c.Player.MarginRight-c.Player.MarginLeft,
		"road.min_gap %.2f must leave room for the player footprint", r.MinGap)
	check(r.MaxExtraGap >= 0, "road.max_extra_gap must not be negative")
	check(maxOf(r.CarWidths) < w.WrapMargin, "road car widths must be narrower than window.wrap_margin")

	rv := c.River
	check(len(rv.Speeds) > 0 && allPositive(rv.Speeds), "river.speeds must be non-empty and positive")
	check(maxOf(rv.Speeds) <= maxOf(r.Speeds), "river speeds must not exceed road speeds")
	check(rv.LilypadChance >= 0 && rv.LilypadChance <= 1, "river.lilypad_chance must be within [0,1]")
	check(len(rv.LogWidths) > 0 && allPositive(rv.LogWidths), "river.log_widths must be non-empty and positive")
	check(maxOf(rv.LogWidths) < w.WrapMargin, "river log widths must be narrower than window.wrap_margin")
	check(rv.LilypadWidth > 0, "river.lilypad_width must be positive")
	check(0 < rv.LogMinGap && rv.LogMinGap <= rv.LogMaxGap && rv.LogMaxGap < float64(g.Columns),
		"river log gap range [%.2f,%.2f] must be positive and narrower than the grid", rv.LogMinGap, rv.LogMaxGap)
	check(0 < rv.LilypadMinGap && rv.LilypadMinGap <= rv.LilypadMaxGap && rv.LilypadMaxGap < float64(g.Columns),
		"river lilypad gap range [%.2f,%.2f] must be positive and narrower than the grid", rv.LilypadMinGap, rv.LilypadMaxGap)

	rl := c.Rail
	check(rl.Speed > 0, "rail.speed must be positive")
	check(rl.Speed >= maxOf(r.Speeds), "rail.speed must not be slower than road traffic")
	check(0 < rl.InitialTimerMin && rl.InitialTimerMin <= rl.InitialTimerMax, "rail initial timer range invalid")
	check(0 < rl.ResetTimerMin && rl.ResetTimerMin <= rl.ResetTimerMax, "rail reset timer range invalid")
	check(rl.WarningTicks > 0, "rail.warning_ticks must be positive")
	check(rl.TrainWidth > 0, "rail.train_width must be positive")
	check(rl.SpawnOffset >= rl.TrainWidth, "rail.spawn_offset %.2f must hide a train of width %.2f", rl.SpawnOffset, rl.TrainWidth)

	check(c.Grass.TreeChance >= 0 && c.Grass.TreeChance <= 1, "grass.tree_chance must be within [0,1]")

	p := c.Player
	check(0 <= p.MarginLeft && p.MarginLeft < p.MarginRight && p.MarginRight <= 1, "player margins must satisfy 0 <= left < right <= 1")
	check(p.RiverTolerance >= 0, "player.river_tolerance must not be negative")
	check(p.EdgeTolerance >= 0 && p.EdgeTolerance < 1, "player.edge_tolerance must be within [0,1)")

	cam := c.Camera
	check(cam.TileSize > 0, "camera.tile_size must be positive")
	check(cam.ViewportHeight >= 0, "camera.viewport_height must not be negative")
	check(cam.Smoothing > 0 && cam.Smoothing < 1, "camera.smoothing must be within (0,1)")

	return errors.Join(errs...)
}

func allPositive(xs []float64) bool {
	for _, x := range xs {
		if x <= 0 {
			return false
		}
	}
	return true
}

func weightsUsable(ws []float64) bool {
	sum := 0.0
	for _, w := range ws {
		if w < 0 {
			return false
		}
		sum += w
	}
	return sum > 0
}

func maxOf(xs []float64) float64 {
	best := 0.0
	for _, x := range xs {
		if x > best {
			best = x
		}
	}
	return best
}
