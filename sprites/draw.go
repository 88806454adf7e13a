package sprites

import (
	"image"
	"image/color"

	"github.com/bradfitz/iter"
	"golang.org/x/image/colornames"

	"badc0de.net/pkg/spritegen/raster"
)

var (
	pacmanYellow = color.RGBA{255, 255, 0, 255}
	stemColor    = color.RGBA{100, 100, 0, 255}
	segmentColor = color.RGBA{200, 120, 0, 255}

	pacmanBody = raster.B(2, 2, raster.Size-2, raster.Size-2)
)

func drawCharacter(c *raster.Canvas, d Direction, m MouthFrame) {
	if m.HalfGap == 0 {
		c.Ellipse(pacmanBody, pacmanYellow)
	} else {
		c.PieSlice(pacmanBody, d.MouthAngle+m.HalfGap, d.MouthAngle+360-m.HalfGap, pacmanYellow)
	}
	c.Ellipse(d.Eye, colornames.Black)
}

func drawGhost(c *raster.Canvas, g GhostColor) {
	const size = raster.Size

	// Rounded top.
	c.Rectangle(raster.B(4, 4, size-4, 20), g.Color)
	c.Ellipse(raster.B(4, 2, size-4, 18), g.Color)

	// Wavy skirt.
	for i := range iter.N(4) {
		x := 6 + i*6
		c.Ellipse(raster.B(x, 18, x+6, 26), g.Color)
	}

	c.Ellipse(raster.B(8, 10, 12, 14), colornames.White)
	c.Ellipse(raster.B(9, 11, 11, 13), colornames.Black)

	c.Ellipse(raster.B(size-12, 10, size-8, 14), colornames.White)
	c.Ellipse(raster.B(size-11, 11, size-9, 13), colornames.Black)
}

func pairedCircles(c *raster.Canvas, fill color.Color) {
	c.Ellipse(raster.B(6, 6, 14, 14), fill)
	c.Ellipse(raster.B(14, 6, 22, 14), fill)
	c.Line(image.Pt(10, 6), image.Pt(18, 6), stemColor, 2)
}

func heart(c *raster.Canvas, fill color.Color) {
	c.Ellipse(raster.B(8, 12, 24, 28), fill)
	c.Ellipse(raster.B(8, 8, 14, 14), fill)
	c.Ellipse(raster.B(18, 8, 24, 14), fill)
}

func quarteredCircle(c *raster.Canvas, fill color.Color) {
	c.Ellipse(raster.B(6, 6, 26, 26), fill)
	c.Line(image.Pt(16, 6), image.Pt(16, 26), segmentColor, 1)
	c.Line(image.Pt(6, 16), image.Pt(26, 16), segmentColor, 1)
}

func stemmedCircle(c *raster.Canvas, fill color.Color) {
	c.Ellipse(raster.B(6, 8, 26, 28), fill)
	c.Rectangle(raster.B(15, 2, 17, 8), stemColor)
}

func curvedDoubleArc(c *raster.Canvas, fill color.Color) {
	c.Arc(raster.B(4, 10, 24, 30), 0, 180, fill, 8)
	c.Ellipse(raster.B(6, 12, 10, 28), fill)
	c.Ellipse(raster.B(22, 12, 26, 28), fill)
}

func grapeGrid(c *raster.Canvas, fill color.Color) {
	for i := range iter.N(3) {
		for j := range iter.N(3) {
			c.Ellipse(raster.B(6+i*8, 6+j*8, 12+i*8, 12+j*8), fill)
		}
	}
}
