// Package render draws scene snapshots into a tcell screen
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp/v2"

	"github.com/abey79/rusteroid/engine"
	"github.com/abey79/rusteroid/vmath"
)

// HUD carries the status line content
type HUD struct {
	Asteroids int
	Kills     int
	Heading   float64 // Turret heading in radians
	Message   string
}

// Renderer maps the field onto the whole screen except the bottom status row
// World space is y-up with the origin at the field center
type Renderer struct {
	screen tcell.Screen
	width  int
	height int
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen}
	r.Resize()
	return r
}

// Resize re-reads the screen size
func (r *Renderer) Resize() {
	r.width, r.height = r.screen.Size()
}

// RenderFrame clears the screen, draws the scene and the HUD, then shows the result
func (r *Renderer) RenderFrame(scene engine.Scene, hud HUD) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	for _, item := range scene.Items {
		style := defaultStyle.Foreground(itemColor(item))
		for _, seg := range item.Segments {
			r.drawSegment(scene, seg, style)
		}
	}

	r.drawTurret(scene, hud.Heading, defaultStyle.Foreground(RgbTurret))
	r.drawStatusBar(hud, defaultStyle)
	r.screen.Show()
}

// toCell maps a world point to a screen cell
func (r *Renderer) toCell(scene engine.Scene, p cp.Vector) (int, int) {
	rows := r.height - 1
	if scene.Width <= 0 || scene.Height <= 0 || r.width <= 0 || rows <= 0 {
		return 0, 0
	}
	x := (p.X + scene.Width/2) / scene.Width * float64(r.width)
	y := (scene.Height/2 - p.Y) / scene.Height * float64(rows)
	return int(math.Floor(x)), int(math.Floor(y))
}

func (r *Renderer) drawSegment(scene engine.Scene, seg vmath.Segment, style tcell.Style) {
	x0, y0 := r.toCell(scene, seg.A)
	x1, y1 := r.toCell(scene, seg.B)
	ch := glyphFor(x1-x0, y1-y0)
	Line(x0, y0, x1, y1, func(x, y int) {
		if x < 0 || y < 0 || x >= r.width || y >= r.height-1 {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
	})
}

// drawTurret marks the field center and a short barrel along the heading
func (r *Renderer) drawTurret(scene engine.Scene, heading float64, style tcell.Style) {
	barrel := cp.ForAngle(heading + math.Pi/2).Mult(math.Min(scene.Width, scene.Height) * 0.04)
	r.drawSegment(scene, vmath.Segment{A: cp.Vector{}, B: barrel}, style)
	cx, cy := r.toCell(scene, cp.Vector{})
	if cx >= 0 && cy >= 0 && cx < r.width && cy < r.height-1 {
		r.screen.SetContent(cx, cy, 'O', nil, style)
	}
}

func (r *Renderer) drawStatusBar(hud HUD, defaultStyle tcell.Style) {
	statusY := r.height - 1
	if statusY < 0 {
		return
	}
	style := defaultStyle.Foreground(RgbStatusText).Background(RgbStatusBg)
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, statusY, ' ', nil, style)
	}

	text := fmt.Sprintf(" asteroids %d  kills %d  heading %4.0f°  %s",
		hud.Asteroids, hud.Kills, headingDegrees(hud.Heading), hud.Message)
	x := 0
	for _, ch := range text {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, statusY, ch, nil, style)
		x++
	}
}

func itemColor(item engine.SceneItem) tcell.Color {
	switch item.Kind {
	case engine.EntityAsteroid:
		return asteroidColor(item.Category)
	case engine.EntityMissile:
		return RgbMissile
	default:
		return RgbOther
	}
}

// headingDegrees converts radians to degrees in [0, 360)
func headingDegrees(rad float64) float64 {
	d := math.Mod(rad*180/math.Pi, 360)
	if d < 0 {
		d += 360
	}
	return d
}
