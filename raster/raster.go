// Package raster implements a small aliased drawing surface for pixel art.
//
// Coordinates follow the PIL ImageDraw conventions, so sprite layouts can
// be expressed as the same bounding boxes artists hand out: a box is
// [x0, y0, x1, y1] with both ends inclusive, and angles are in degrees,
// clockwise from 3 o'clock (the y axis points down).
//
// Every primitive overwrites the pixels it covers with an opaque color.
// Nothing is blended or anti-aliased, which keeps the output exactly
// reproducible and lets callers reason about individual pixels.
package raster

import (
	"image"
	"image/color"
	"math"
)

// Size is the edge length of a sprite canvas.
const Size = 32

// Canvas is a transparent RGBA surface that shapes are painted on.
type Canvas struct {
	img *image.RGBA
}

// New returns a fresh Size x Size transparent canvas.
func New() *Canvas {
	return NewSize(Size, Size)
}

// NewSize returns a fresh transparent canvas of the passed dimensions.
func NewSize(w, h int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image returns the underlying image. It is not copied.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Box is an inclusive bounding box, matching [x0, y0, x1, y1] in PIL.
type Box struct {
	X0, Y0, X1, Y1 int
}

// B is shorthand for Box{x0, y0, x1, y1}.
func B(x0, y0, x1, y1 int) Box {
	return Box{x0, y0, x1, y1}
}

// Rect converts the inclusive box to a half-open image.Rectangle.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.X0, b.Y0, b.X1+1, b.Y1+1)
}

// Inset shrinks the box by d pixels on every side.
func (b Box) Inset(d int) Box {
	return Box{b.X0 + d, b.Y0 + d, b.X1 - d, b.Y1 - d}
}

func opaque(col color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: 0xFF}
}

// each calls fn for every canvas pixel inside r, with the coordinates of
// the pixel center.
func (c *Canvas) each(r image.Rectangle, fn func(x, y int, px, py float64) bool, col color.RGBA) {
	r = r.Intersect(c.img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if fn(x, y, float64(x)+0.5, float64(y)+0.5) {
				c.img.SetRGBA(x, y, col)
			}
		}
	}
}

// ellipse describes the ellipse inscribed in a box.
type ellipse struct {
	cx, cy, rx, ry float64
}

func inscribed(b Box) ellipse {
	return ellipse{
		cx: float64(b.X0+b.X1+1) / 2,
		cy: float64(b.Y0+b.Y1+1) / 2,
		rx: float64(b.X1-b.X0+1) / 2,
		ry: float64(b.Y1-b.Y0+1) / 2,
	}
}

func (e ellipse) contains(px, py float64) bool {
	if e.rx <= 0 || e.ry <= 0 {
		return false
	}
	dx := (px - e.cx) / e.rx
	dy := (py - e.cy) / e.ry
	return dx*dx+dy*dy <= 1
}

// angle returns the clockwise angle of (px, py) around the ellipse center,
// in [0, 360).
func (e ellipse) angle(px, py float64) float64 {
	return Normalize(math.Atan2(py-e.cy, px-e.cx) * 180 / math.Pi)
}

// Normalize reduces an angle in degrees into [0, 360).
func Normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// sweep is a clockwise angular range.
type sweep struct {
	start, span float64
}

func newSweep(start, end float64) sweep {
	if end-start >= 360 {
		return sweep{start: 0, span: 360}
	}
	s := Normalize(start)
	span := Normalize(end) - s
	if span < 0 {
		span += 360
	}
	return sweep{start: s, span: span}
}

func (s sweep) contains(deg float64) bool {
	if s.span >= 360 {
		return true
	}
	d := deg - s.start
	if d < 0 {
		d += 360
	}
	return d <= s.span
}

// Ellipse fills the ellipse inscribed in box.
func (c *Canvas) Ellipse(box Box, col color.Color) {
	e := inscribed(box)
	c.each(box.Rect(), func(_, _ int, px, py float64) bool {
		return e.contains(px, py)
	}, opaque(col))
}

// PieSlice fills the sector of the ellipse inscribed in box that sweeps
// clockwise from start to end degrees. Angles wrap modulo 360; a sweep of
// 360 degrees or more fills the whole ellipse.
func (c *Canvas) PieSlice(box Box, start, end float64, col color.Color) {
	e := inscribed(box)
	s := newSweep(start, end)
	c.each(box.Rect(), func(_, _ int, px, py float64) bool {
		if !e.contains(px, py) {
			return false
		}
		if px == e.cx && py == e.cy {
			return true
		}
		return s.contains(e.angle(px, py))
	}, opaque(col))
}

// Rectangle fills box.
func (c *Canvas) Rectangle(box Box, col color.Color) {
	c.each(box.Rect(), func(_, _ int, _, _ float64) bool {
		return true
	}, opaque(col))
}

// Arc paints a band of the passed width along the outline of the ellipse
// inscribed in box, between start and end degrees.
func (c *Canvas) Arc(box Box, start, end float64, col color.Color, width int) {
	if width < 1 {
		width = 1
	}
	outer := inscribed(box)
	inner := inscribed(box.Inset(width))
	s := newSweep(start, end)
	c.each(box.Rect(), func(_, _ int, px, py float64) bool {
		if !outer.contains(px, py) || inner.contains(px, py) {
			return false
		}
		return s.contains(outer.angle(px, py))
	}, opaque(col))
}

// Line paints a straight stroke between the centers of pixels p0 and p1.
func (c *Canvas) Line(p0, p1 image.Point, col color.Color, width int) {
	if width < 1 {
		width = 1
	}
	rgba := opaque(col)
	if p0 == p1 {
		if p0.In(c.img.Bounds()) {
			c.img.SetRGBA(p0.X, p0.Y, rgba)
		}
		return
	}

	ax, ay := float64(p0.X)+0.5, float64(p0.Y)+0.5
	dx, dy := float64(p1.X-p0.X), float64(p1.Y-p0.Y)
	length := math.Hypot(dx, dy)
	ux, uy := dx/length, dy/length
	half := float64(width) / 2

	const eps = 1e-9
	bounds := image.Rect(p0.X, p0.Y, p1.X+1, p1.Y+1).Inset(-width)
	c.each(bounds, func(_, _ int, px, py float64) bool {
		rx, ry := px-ax, py-ay
		t := rx*ux + ry*uy
		if t < -eps || t > length+eps {
			return false
		}
		// Signed distance; positive is to the left of the direction of travel.
		n := ry*ux - rx*uy
		return n >= -half-eps && n < half-eps
	}, rgba)
}
