package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the built-in lane-crossing configuration.
// Tile-relative values follow a 40 pixel tile: a 2 px/tick car is 0.05 columns per tick.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Grid: GridConfig{
			Columns:       10,
			StartRow:      3,
			StartColumn:   5,
			SafeRows:      3,
			InitialMinRow: -5,
			InitialMaxRow: 15,
		},
		Window: WindowConfig{
			BehindMargin: 20,
			AheadMargin:  15,
			WrapMargin:   10,
		},
		Lanes: LaneMixConfig{
			Road:  0.4,
			River: 0.7,
			Rail:  0.85,
		},
		Road: RoadConfig{
			Speeds:      []float64{0.05, 0.075, 0.1, 0.125, 0.15},
			MinCars:     1,
			MaxCars:     3,
			CarWidths:   []float64{1.0, 1.5},
			CarWeights:  []float64{0.7, 0.3},
			MinGap:      3,
			MaxExtraGap: 6,
		},
		River: RiverConfig{
			Speeds:        []float64{0.05, 0.075, 0.1},
			LilypadChance: 0.2,
			LogWidths:     []float64{2, 3, 4},
			LogMinGap:     1.5,
			LogMaxGap:     3.75,
			LilypadWidth:  0.8,
			LilypadMinGap: 1.0,
			LilypadMaxGap: 1.5,
		},
		Rail: RailConfig{
			Speed:           0.625,
			InitialTimerMin: 100,
			InitialTimerMax: 300,
			ResetTimerMin:   200,
			ResetTimerMax:   400,
			WarningTicks:    60,
			TrainWidth:      15,
			SpawnOffset:     25,
		},
		Grass: GrassConfig{
			TreeChance: 0.2,
		},
		Player: PlayerConfig{
			MarginLeft:     0.125,
			MarginRight:    0.875,
			RiverTolerance: 0.25,
			EdgeTolerance:  0.5,
		},
		Camera: CameraConfig{
			TileSize:       1,
			ViewportHeight: 20,
			Smoothing:      0.1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 300,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.6,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "crossing":
		return defaultCrossingYAML
	default:
		return nil
	}
}
