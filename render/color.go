package render

import "github.com/gdamore/tcell/v2"

// Palette
var (
	RgbBackground = tcell.NewRGBColor(8, 10, 18)
	RgbStatusText = tcell.NewRGBColor(200, 200, 200)
	RgbStatusBg   = tcell.NewRGBColor(30, 34, 50)
	RgbMissile    = tcell.NewRGBColor(255, 220, 90)
	RgbTurret     = tcell.NewRGBColor(120, 220, 255)
	RgbOther      = tcell.NewRGBColor(160, 160, 160)

	// RgbAsteroid is indexed by category, clamped to the last entry
	RgbAsteroid = []tcell.Color{
		tcell.NewRGBColor(150, 150, 150),
		tcell.NewRGBColor(200, 170, 130),
		tcell.NewRGBColor(220, 140, 90),
		tcell.NewRGBColor(230, 100, 80),
	}
)

func asteroidColor(category int) tcell.Color {
	i := min(max(category, 0), len(RgbAsteroid)-1)
	return RgbAsteroid[i]
}
