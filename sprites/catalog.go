package sprites

import (
	"image/color"

	"github.com/pkg/errors"

	"badc0de.net/pkg/spritegen/raster"
)

// Direction is a facing of the player character.
type Direction struct {
	Name string
	// MouthAngle is the direction the mouth opens toward, in degrees
	// clockwise from the right.
	MouthAngle float64
	// Eye is the bounding box of the eye.
	Eye raster.Box
}

// Directions are the character facings, in output order.
var Directions = []Direction{
	{Name: "right", MouthAngle: 0, Eye: raster.B(8, 8, 12, 12)},
	{Name: "left", MouthAngle: 180, Eye: raster.B(raster.Size-12, 8, raster.Size-8, 12)},
	{Name: "up", MouthAngle: 270, Eye: raster.B(8, 18, 12, 22)},
	{Name: "down", MouthAngle: 90, Eye: raster.B(8, 8, 12, 12)},
}

// MouthFrame is one step of the eating animation.
type MouthFrame struct {
	Frame Frame
	// HalfGap is the angle between the mouth axis and either lip. Zero
	// draws the closed character as a full circle.
	HalfGap float64
}

// MouthFrames are the eating animation steps, in output order.
var MouthFrames = []MouthFrame{
	{Frame: Closed, HalfGap: 0},
	{Frame: SlightlyOpen, HalfGap: 7},
	{Frame: WideOpen, HalfGap: 22},
}

// Span returns the angle covered by the body in this frame.
func (m MouthFrame) Span() float64 {
	return 360 - 2*m.HalfGap
}

// GhostColor is one of the ghosts.
type GhostColor struct {
	Name  string
	Color color.RGBA
}

// GhostColors are the ghosts, in output order.
var GhostColors = []GhostColor{
	{Name: "red", Color: color.RGBA{255, 0, 0, 255}},       // Blinky
	{Name: "pink", Color: color.RGBA{255, 184, 255, 255}},  // Pinky
	{Name: "cyan", Color: color.RGBA{0, 255, 255, 255}},    // Inky
	{Name: "orange", Color: color.RGBA{255, 184, 82, 255}}, // Clyde
}

// FruitColor is one of the bonus fruits.
type FruitColor struct {
	Name  string
	Color color.RGBA
}

// FruitColors are the fruits, in output order. The shape of each fruit is
// looked up by name in Recipes.
var FruitColors = []FruitColor{
	{Name: "cherry", Color: color.RGBA{255, 0, 0, 255}},
	{Name: "strawberry", Color: color.RGBA{255, 50, 50, 255}},
	{Name: "orange", Color: color.RGBA{255, 165, 0, 255}},
	{Name: "apple", Color: color.RGBA{0, 200, 0, 255}},
	{Name: "melon", Color: color.RGBA{0, 150, 0, 255}},
	{Name: "banana", Color: color.RGBA{255, 255, 0, 255}},
	{Name: "grape", Color: color.RGBA{128, 0, 128, 255}},
}

// Recipe paints a fruit shape in the passed fill color.
type Recipe func(c *raster.Canvas, fill color.Color)

// Recipes maps fruit names to their shape.
var Recipes = map[string]Recipe{
	"cherry":     pairedCircles,
	"strawberry": heart,
	"orange":     quarteredCircle,
	"apple":      stemmedCircle,
	"melon":      stemmedCircle,
	"banana":     curvedDoubleArc,
	"grape":      grapeGrid,
}

// checkRecipes reports the first fruit in FruitColors that has no recipe.
func checkRecipes() error {
	for _, f := range FruitColors {
		if _, ok := Recipes[f.Name]; !ok {
			return errors.Errorf("no recipe for fruit %q", f.Name)
		}
	}
	return nil
}
