package config

// DifficultyManager scales lane speeds with how far the player has come.
// Progress is measured in rows ("score" progression, which for lane
// generation is the lane index) or in ticks ("time" progression).
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clamp01(cfg.InitialLevel),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clamp01(level)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// progress returns how far along the progression curve rows/ticks are,
// in [0,1]. ok is false for unknown progression types.
func (d *DifficultyManager) progress(rows, ticks int) (p float64, ok bool) {
	maxAt := float64(max(d.cfg.Progression.MaxAt, 1))
	switch d.cfg.Progression.Type {
	case "score":
		return clamp01(float64(rows) / maxAt), true
	case "time":
		return clamp01(float64(ticks) / maxAt), true
	default:
		return 0, false
	}
}

// Level returns the difficulty level (0.0 to 1.0) at rows forward and
// ticks elapsed. It rises linearly from the initial level to 1.0.
func (d *DifficultyManager) Level(rows, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}
	p, ok := d.progress(rows, ticks)
	if !ok {
		return d.initialLevel
	}
	return d.initialLevel + p*(1.0-d.initialLevel)
}

// Speed scales baseSpeed by the level: from base at level 0 up to
// base*(1+speed_multiplier) at level 1. A disabled manager returns
// baseSpeed unchanged; negative rows count as the start.
func (d *DifficultyManager) Speed(baseSpeed float64, rows, ticks int) float64 {
	if !d.cfg.Enabled {
		return baseSpeed
	}
	level := d.Level(max(rows, 0), ticks)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
