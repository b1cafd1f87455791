// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// CrossingConfig contains all configuration for the lane-crossing game.
// Distances are in grid columns, speeds in columns per tick and timers in ticks.
type CrossingConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Window     WindowConfig     `yaml:"window"`
	Lanes      LaneMixConfig    `yaml:"lanes"`
	Road       RoadConfig       `yaml:"road"`
	River      RiverConfig      `yaml:"river"`
	Rail       RailConfig       `yaml:"rail"`
	Grass      GrassConfig      `yaml:"grass"`
	Player     PlayerConfig     `yaml:"player"`
	Camera     CameraConfig     `yaml:"camera"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the playfield width and the start position.
type GridConfig struct {
	Columns       int `yaml:"columns"`
	StartRow      int `yaml:"start_row"`
	StartColumn   int `yaml:"start_column"`
	SafeRows      int `yaml:"safe_rows"`       // Lanes with index <= SafeRows are always grass
	InitialMinRow int `yaml:"initial_min_row"` // First lane generated at start (inclusive)
	InitialMaxRow int `yaml:"initial_max_row"` // Last lane generated at start (exclusive)
}

// WindowConfig defines the sliding window of active lanes and the
// off-screen margin used for obstacle wrap-around.
type WindowConfig struct {
	BehindMargin int     `yaml:"behind_margin"`
	AheadMargin  int     `yaml:"ahead_margin"`
	WrapMargin   float64 `yaml:"wrap_margin"` // Distance beyond each visible edge
}

// LaneMixConfig partitions a uniform draw into lane kinds.
// Road is [0, Road), River [Road, River), Rail [River, Rail), Grass the rest.
type LaneMixConfig struct {
	Road  float64 `yaml:"road"`
	River float64 `yaml:"river"`
	Rail  float64 `yaml:"rail"`
}

// RoadConfig defines car placement on road lanes.
type RoadConfig struct {
	Speeds      []float64 `yaml:"speeds"`
	MinCars     int       `yaml:"min_cars"`
	MaxCars     int       `yaml:"max_cars"`
	CarWidths   []float64 `yaml:"car_widths"`
	CarWeights  []float64 `yaml:"car_weights"`
	MinGap      float64   `yaml:"min_gap"`
	MaxExtraGap float64   `yaml:"max_extra_gap"`
}

// RiverConfig defines log and lilypad tiling on river lanes.
type RiverConfig struct {
	Speeds        []float64 `yaml:"speeds"`
	LilypadChance float64   `yaml:"lilypad_chance"`
	LogWidths     []float64 `yaml:"log_widths"`
	LogMinGap     float64   `yaml:"log_min_gap"`
	LogMaxGap     float64   `yaml:"log_max_gap"`
	LilypadWidth  float64   `yaml:"lilypad_width"`
	LilypadMinGap float64   `yaml:"lilypad_min_gap"`
	LilypadMaxGap float64   `yaml:"lilypad_max_gap"`
}

// RailConfig defines train timing and geometry.
type RailConfig struct {
	Speed           float64 `yaml:"speed"`
	InitialTimerMin int     `yaml:"initial_timer_min"`
	InitialTimerMax int     `yaml:"initial_timer_max"`
	ResetTimerMin   int     `yaml:"reset_timer_min"`
	ResetTimerMax   int     `yaml:"reset_timer_max"`
	WarningTicks    int     `yaml:"warning_ticks"`
	TrainWidth      float64 `yaml:"train_width"`
	SpawnOffset     float64 `yaml:"spawn_offset"` // Distance beyond the visible edge where trains appear and vanish
}

// GrassConfig defines tree scattering on grass lanes.
type GrassConfig struct {
	TreeChance float64 `yaml:"tree_chance"`
}

// PlayerConfig defines the player's hitbox relative to its column.
type PlayerConfig struct {
	MarginLeft     float64 `yaml:"margin_left"`
	MarginRight    float64 `yaml:"margin_right"`
	RiverTolerance float64 `yaml:"river_tolerance"`
	EdgeTolerance  float64 `yaml:"edge_tolerance"`
}

// CameraConfig defines scroll smoothing.
type CameraConfig struct {
	TileSize       float64 `yaml:"tile_size"`
	ViewportHeight float64 `yaml:"viewport_height"`
	Smoothing      float64 `yaml:"smoothing"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
