package raster

import (
	"image"
	"image/color"
	"testing"

	"badc0de.net/pkg/spritegen/ttesting"
)

var yellow = color.RGBA{255, 255, 0, 255}

func countOpaque(img *image.RGBA) int {
	n := 0
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			if img.RGBAAt(x, y).A != 0 {
				n++
			}
		}
	}
	return n
}

func TestNewIsTransparent(t *testing.T) {
	c := New()
	ttesting.AssertEqualInt(t, "width", c.Image().Bounds().Dx(), Size)
	ttesting.AssertEqualInt(t, "height", c.Image().Bounds().Dy(), Size)
	ttesting.AssertEqualInt(t, "opaque pixels", countOpaque(c.Image()), 0)
}

func TestRectangleIsInclusive(t *testing.T) {
	c := New()
	c.Rectangle(B(15, 2, 17, 8), yellow)
	ttesting.AssertEqualInt(t, "opaque pixels", countOpaque(c.Image()), 3*7)
	ttesting.AssertColor(t, "top left", c.Image().At(15, 2), yellow)
	ttesting.AssertColor(t, "bottom right", c.Image().At(17, 8), yellow)
	ttesting.AssertTransparent(t, "outside", c.Image().At(18, 8))
}

func TestRectangleClips(t *testing.T) {
	c := New()
	c.Rectangle(B(-10, -10, 100, 100), yellow)
	ttesting.AssertEqualInt(t, "opaque pixels", countOpaque(c.Image()), Size*Size)
}

func TestEllipse(t *testing.T) {
	c := New()
	c.Ellipse(B(2, 2, 30, 30), yellow)
	img := c.Image()

	ttesting.AssertColor(t, "center", img.At(16, 16), yellow)
	ttesting.AssertColor(t, "left edge", img.At(2, 16), yellow)
	ttesting.AssertColor(t, "right edge", img.At(30, 16), yellow)
	ttesting.AssertTransparent(t, "corner", img.At(2, 2))
	ttesting.AssertTransparent(t, "outside box", img.At(31, 16))

	// Symmetric around the box center.
	for y := 2; y <= 30; y++ {
		for x := 2; x <= 30; x++ {
			if img.RGBAAt(x, y) != img.RGBAAt(32-x, y) || img.RGBAAt(x, y) != img.RGBAAt(x, 32-y) {
				t.Fatalf("ellipse not symmetric at %d,%d", x, y)
			}
		}
	}
}

func TestSmallEllipseFillsBox(t *testing.T) {
	c := New()
	c.Ellipse(B(9, 11, 11, 13), color.Black)
	ttesting.AssertEqualInt(t, "opaque pixels", countOpaque(c.Image()), 9)
	ttesting.AssertColor(t, "center", c.Image().At(10, 12), color.RGBA{0, 0, 0, 255})
}

func TestFillIsOpaqueOverwrite(t *testing.T) {
	c := New()
	c.Rectangle(B(0, 0, 3, 3), yellow)
	c.Rectangle(B(1, 1, 2, 2), color.NRGBA{255, 0, 0, 10})
	ttesting.AssertColor(t, "overwritten", c.Image().At(1, 1), color.RGBA{255, 0, 0, 255})
	ttesting.AssertColor(t, "untouched", c.Image().At(0, 0), yellow)
}

func TestNormalize(t *testing.T) {
	for _, tc := range []struct {
		in, want float64
	}{
		{0, 0},
		{7, 7},
		{360, 0},
		{367, 7},
		{623, 263},
		{-90, 270},
		{-720, 0},
	} {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%g) = %g; want %g", tc.in, got, tc.want)
		}
	}
}

func TestPieSliceGap(t *testing.T) {
	box := B(2, 2, 30, 30)
	for _, tc := range []struct {
		name       string
		start, end float64
		gap, fill  image.Point
	}{
		// Mouth to the right: gap around 0 degrees.
		{"right", 22, 338, image.Pt(26, 16), image.Pt(6, 16)},
		// Wrapping past 360 must behave the same as the reduced angles.
		{"up", 270 + 22, 270 + 338, image.Pt(16, 5), image.Pt(16, 27)},
		{"left", 180 + 22, 180 + 338, image.Pt(6, 16), image.Pt(26, 16)},
		{"down", 90 + 22, 90 + 338, image.Pt(16, 27), image.Pt(16, 5)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := New()
			c.PieSlice(box, tc.start, tc.end, yellow)
			ttesting.AssertTransparent(t, "gap", c.Image().At(tc.gap.X, tc.gap.Y))
			ttesting.AssertColor(t, "fill", c.Image().At(tc.fill.X, tc.fill.Y), yellow)
			ttesting.AssertColor(t, "center", c.Image().At(16, 16), yellow)
		})
	}
}

func TestPieSliceFullSweepEqualsEllipse(t *testing.T) {
	box := B(2, 2, 30, 30)
	pie := New()
	pie.PieSlice(box, 45, 45+360, yellow)
	ell := New()
	ell.Ellipse(box, yellow)
	ttesting.AssertSamePixels(t, "full sweep", pie.Image(), ell.Image())
}

func TestArcLeavesHole(t *testing.T) {
	c := New()
	c.Arc(B(4, 10, 24, 30), 0, 180, yellow, 8)
	img := c.Image()

	ttesting.AssertColor(t, "bottom of band", img.At(14, 28), yellow)
	ttesting.AssertTransparent(t, "inside band", img.At(14, 20))
	ttesting.AssertTransparent(t, "upper half", img.At(14, 11))
}

func TestLine(t *testing.T) {
	t.Run("horizontal width 2", func(t *testing.T) {
		c := New()
		c.Line(image.Pt(10, 6), image.Pt(18, 6), yellow, 2)
		ttesting.AssertEqualInt(t, "opaque pixels", countOpaque(c.Image()), 9*2)
		ttesting.AssertColor(t, "start", c.Image().At(10, 6), yellow)
		ttesting.AssertColor(t, "end", c.Image().At(18, 5), yellow)
	})
	t.Run("vertical width 1", func(t *testing.T) {
		c := New()
		c.Line(image.Pt(16, 6), image.Pt(16, 26), yellow, 1)
		ttesting.AssertEqualInt(t, "opaque pixels", countOpaque(c.Image()), 21)
	})
	t.Run("reversed", func(t *testing.T) {
		a := New()
		a.Line(image.Pt(6, 16), image.Pt(26, 16), yellow, 1)
		b := New()
		b.Line(image.Pt(26, 16), image.Pt(6, 16), yellow, 1)
		ttesting.AssertEqualInt(t, "opaque pixels", countOpaque(b.Image()), countOpaque(a.Image()))
	})
	t.Run("point", func(t *testing.T) {
		c := New()
		c.Line(image.Pt(3, 3), image.Pt(3, 3), yellow, 4)
		ttesting.AssertEqualInt(t, "opaque pixels", countOpaque(c.Image()), 1)
	})
}
