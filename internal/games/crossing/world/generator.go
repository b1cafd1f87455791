package world

import (
	"github.com/vovakirdan/tui-crossing/internal/config"
)

// CarTints is the number of cosmetic car variants.
const CarTints = 4

// Generator produces fully populated lanes for a lane index.
// Each call consumes randomness, so the same index generated twice differs.
type Generator struct {
	cfg        config.CrossingConfig
	rng        RandomSource
	difficulty *config.DifficultyManager
	bounds     Bounds
}

// NewGenerator creates a lane generator for cfg drawing from rng.
func NewGenerator(cfg config.CrossingConfig, rng RandomSource) *Generator {
	return &Generator{
		cfg:        cfg,
		rng:        rng,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		bounds:     NewBounds(cfg.Grid.Columns, cfg.Window.WrapMargin),
	}
}

// Generate builds the lane at index.
func (g *Generator) Generate(index int) Lane {
	lane := Lane{
		Index: index,
		Kind:  g.kindFor(index),
	}
	lane.Direction = sign(g.rng)

	switch lane.Kind {
	case LaneRoad:
		lane.Speed = g.scaled(pick(g.rng, g.cfg.Road.Speeds), index)
		lane.Obstacles = g.populateRoad()
	case LaneRiver:
		lilypads := g.rng.Float64() < g.cfg.River.LilypadChance
		if !lilypads {
			lane.Speed = g.scaled(pick(g.rng, g.cfg.River.Speeds), index)
		}
		lane.Obstacles = g.populateRiver(lilypads)
	case LaneRail:
		lane.Speed = g.scaled(g.cfg.Rail.Speed, index)
		lane.Signal = &RailSignal{
			Timer: g.rng.IntRange(g.cfg.Rail.InitialTimerMin, g.cfg.Rail.InitialTimerMax),
		}
	case LaneGrass:
		if index > g.cfg.Grid.SafeRows {
			lane.Obstacles = g.populateGrass()
		}
	}
	return lane
}

// kindFor picks the lane kind; the start zone is always grass.
func (g *Generator) kindFor(index int) LaneKind {
	if index <= g.cfg.Grid.SafeRows {
		return LaneGrass
	}
	r := g.rng.Float64()
	mix := g.cfg.Lanes
	switch {
	case r < mix.Road:
		return LaneRoad
	case r < mix.River:
		return LaneRiver
	case r < mix.Rail:
		return LaneRail
	default:
		return LaneGrass
	}
}

// scaled applies difficulty progression, using distance travelled as score.
func (g *Generator) scaled(base float64, index int) float64 {
	return g.difficulty.Speed(base, index, 0)
}

// populateRoad scatters cars around the travel ring. Every pair of
// neighbouring cars, including the pair across the ring seam, is at least
// MinGap apart, so some column of the lane is always passable.
func (g *Generator) populateRoad() []Obstacle {
	road := g.cfg.Road
	count := g.rng.IntRange(road.MinCars, road.MaxCars)
	cars := make([]Obstacle, 0, count)

	cursor := g.bounds.Near + uniform(g.rng, 0, road.MaxExtraGap)
	for i := 0; i < count; i++ {
		width := g.carWidth()
		if cursor+width+road.MinGap > g.bounds.Far {
			break
		}
		cars = append(cars, Obstacle{
			Kind:     ObstacleCar,
			Position: cursor,
			Width:    width,
			Tint:     uint8(g.rng.IntRange(0, CarTints-1)),
		})
		cursor += width + road.MinGap + uniform(g.rng, 0, road.MaxExtraGap)
	}
	return cars
}

func (g *Generator) carWidth() float64 {
	road := g.cfg.Road
	if len(road.CarWeights) == len(road.CarWidths) {
		return road.CarWidths[g.rng.Choice(road.CarWeights)]
	}
	return pick(g.rng, road.CarWidths)
}

// populateRiver tiles the travel ring with logs or lilypads separated by
// random gaps. The first piece always lands, and an oversized seam gap is
// split by one extra minimum-width piece, so no gap reaches a screen width.
func (g *Generator) populateRiver(lilypads bool) []Obstacle {
	river := g.cfg.River
	kind := ObstacleLog
	minWidth := minOf(river.LogWidths)
	minGap, maxGap := river.LogMinGap, river.LogMaxGap
	if lilypads {
		kind = ObstacleLilypad
		minWidth = river.LilypadWidth
		minGap, maxGap = river.LilypadMinGap, river.LilypadMaxGap
	}

	var pieces []Obstacle
	cursor := g.bounds.Near
	for cursor < g.bounds.Far {
		width := river.LilypadWidth
		if !lilypads {
			width = pick(g.rng, river.LogWidths)
		}
		gap := uniform(g.rng, minGap, maxGap)
		if len(pieces) > 0 && cursor+width+gap > g.bounds.Far {
			break
		}
		pieces = append(pieces, Obstacle{Kind: kind, Position: cursor, Width: width})
		cursor += width + gap
	}

	last := pieces[len(pieces)-1]
	seam := g.bounds.Far - (last.Position + last.Width)
	if seam > maxGap && seam >= minWidth+2*minGap {
		pos := last.Position + last.Width + (seam-minWidth)/2
		pieces = append(pieces, Obstacle{Kind: kind, Position: pos, Width: minWidth})
	}
	return pieces
}

// populateGrass plants trees column by column. The start column stays clear.
func (g *Generator) populateGrass() []Obstacle {
	var trees []Obstacle
	for col := 0; col < g.cfg.Grid.Columns; col++ {
		roll := g.rng.Float64()
		if col == g.cfg.Grid.StartColumn {
			continue
		}
		if roll < g.cfg.Grass.TreeChance {
			trees = append(trees, Obstacle{Kind: ObstacleTree, Position: float64(col), Width: 1})
		}
	}
	return trees
}

func minOf(xs []float64) float64 {
	best := xs[0]
	for _, x := range xs[1:] {
		if x < best {
			best = x
		}
	}
	return best
}
