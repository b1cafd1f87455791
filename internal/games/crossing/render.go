package crossing

import (
	"fmt"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing/world"
)

// Visual characters for rendering
const (
	GrassChar   = '·'
	RoadChar    = ' '
	StripeChar  = '-'
	WaterChar   = '~'
	TrackChar   = '═'
	TreeChar    = '♣'
	CarChar     = '█'
	LogChar     = '▓'
	LilypadChar = 'o'
	TrainChar   = '▒'
	PlayerChar  = '@'
	DeadChar    = 'X'
	SignalChar  = '●'
)

var carColors = [world.CarTints]core.Color{
	core.ColorRed,
	core.ColorYellow,
	core.ColorMagenta,
	core.ColorCyan,
}

// view maps world coordinates onto the screen.
type view struct {
	tileW   int // Screen cells per grid column
	left    int // Screen x of grid column 0
	top     int // First playfield row
	height  int // Playfield rows
	columns int
	bottom  int // Lane index drawn on the last playfield row
}

func (g *Game) newView(dst *core.Screen) view {
	columns := g.cfg.Grid.Columns
	tileW := max(1, dst.Width()/columns)
	height := max(1, dst.Height()-1)

	// The camera offset puts the player half a viewport above the bottom
	// edge; centre that point in whatever height the terminal has.
	lanes := g.world.ScrollOffset()/g.cfg.Camera.TileSize + g.cfg.Camera.ViewportHeight/2
	bottom := core.RoundToInt(lanes) - height/2

	return view{
		tileW:   tileW,
		left:    (dst.Width() - tileW*columns) / 2,
		top:     1,
		height:  height,
		columns: columns,
		bottom:  bottom,
	}
}

// y returns the screen row of a lane and whether it is on screen.
func (v view) y(index int) (int, bool) {
	y := v.top + v.height - 1 - (index - v.bottom)
	return y, y >= v.top && y < v.top+v.height
}

// span returns the screen columns covered by a grid interval, clipped to the grid.
func (v view) span(pos, width float64) (x0, x1 int) {
	x0 = v.left + core.RoundToInt(pos*float64(v.tileW))
	x1 = v.left + core.RoundToInt((pos+width)*float64(v.tileW))
	lo, hi := v.left, v.left+v.tileW*v.columns
	return core.Clamp(x0, lo, hi), core.Clamp(x1, lo, hi)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	v := g.newView(dst)
	for _, l := range g.world.VisibleLanes(v.bottom, v.bottom+v.height-1) {
		g.drawLane(dst, v, l)
	}
	g.drawPlayer(dst, v)
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if !g.world.Alive() {
		cause := "SPLAT"
		if g.world.Drowning() {
			cause = "SPLASH"
		}
		g.drawCenteredMessage(dst, "GAME OVER: "+cause, fmt.Sprintf("Score: %d  |  Press R to restart", g.world.Score()))
	}
}

func (g *Game) drawLane(dst *core.Screen, v view, l world.Lane) {
	y, ok := v.y(l.Index)
	if !ok {
		return
	}
	x0, x1 := v.left, v.left+v.tileW*v.columns

	switch l.Kind {
	case world.LaneGrass:
		dst.DrawHLine(x0, y, x1-x0, GrassChar, core.ColorGreen)
	case world.LaneRoad:
		dst.DrawHLine(x0, y, x1-x0, RoadChar, core.ColorDefault)
		for x := x0; x < x1; x += 4 {
			dst.SetColored(x, y, StripeChar, core.ColorGray)
		}
	case world.LaneRiver:
		dst.DrawHLine(x0, y, x1-x0, WaterChar, core.ColorBlue)
	case world.LaneRail:
		track := core.ColorGray
		if l.SignalLit(g.cfg.Rail.WarningTicks) {
			track = core.ColorBrightRed
		}
		dst.DrawHLine(x0, y, x1-x0, TrackChar, track)
		if l.Phase(g.cfg.Rail.WarningTicks) != world.SignalIdle && x0 > 0 {
			dst.SetColored(x0-1, y, SignalChar, core.ColorBrightRed)
		}
	}

	for _, o := range l.Obstacles {
		r, c := obstacleLook(o)
		a, b := v.span(o.Position, o.Width)
		for x := a; x < b; x++ {
			dst.SetColored(x, y, r, c)
		}
	}
}

func obstacleLook(o world.Obstacle) (rune, core.Color) {
	switch o.Kind {
	case world.ObstacleTree:
		return TreeChar, core.ColorBrightGreen
	case world.ObstacleCar:
		return CarChar, carColors[int(o.Tint)%len(carColors)]
	case world.ObstacleLog:
		return LogChar, core.ColorBrown
	case world.ObstacleLilypad:
		return LilypadChar, core.ColorBrightGreen
	case world.ObstacleTrain:
		return TrainChar, core.ColorBrightWhite
	default:
		return '?', core.ColorDefault
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v view) {
	p := g.world.Player()
	y, ok := v.y(p.Row)
	if !ok {
		return
	}
	r, c := PlayerChar, core.ColorBrightYellow
	if !p.Alive {
		r, c = DeadChar, core.ColorBrightRed
	}
	a, b := v.span(p.Column, 1)
	for x := a; x < b; x++ {
		dst.SetColored(x, y, r, c)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf(" Score: %d  Best: %d ", g.world.Score(), g.world.HighScore())
	dst.DrawText(2, 0, scoreText)

	// Show difficulty level if progression is enabled
	if g.difficulty.IsEnabled() {
		speed := g.difficulty.Speed(1, g.world.Score(), 0)
		levelText := fmt.Sprintf(" Spd: x%.2f ", speed)
		dst.DrawText(dst.Width()-len(levelText)-2, 0, levelText)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
