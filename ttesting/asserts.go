// Package ttesting contains assertions shared by the tests of spritegen
// packages.
package ttesting

import (
	"fmt"
	"image"
	"image/color"
	"testing"
)

func AssertEqualInt(t *testing.T, name string, got, want int) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

func AssertEqualString(t *testing.T, name string, got, want string) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %q; want %q", got, want)
		}
	})
}

func rgba(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// AssertColor compares two colors after converting both to 8-bit RGBA.
func AssertColor(t *testing.T, name string, got, want color.Color) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if g, w := rgba(got), rgba(want); g != w {
			t.Errorf("got %v; want %v", g, w)
		}
	})
}

// AssertTransparent checks that a pixel has zero alpha.
func AssertTransparent(t *testing.T, name string, got color.Color) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if g := rgba(got); g.A != 0 {
			t.Errorf("got %v; want transparent", g)
		}
	})
}

// AssertSize checks the dimensions of an image.
func AssertSize(t *testing.T, name string, img image.Image, w, h int) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if sz := img.Bounds().Size(); sz.X != w || sz.Y != h {
			t.Errorf("got %dx%d; want %dx%d", sz.X, sz.Y, w, h)
		}
	})
}

// AssertSamePixels compares two images pixel by pixel.
func AssertSamePixels(t *testing.T, name string, got, want image.Image) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if err := diff(got, want); err != nil {
			t.Error(err)
		}
	})
}

func diff(got, want image.Image) error {
	if got.Bounds() != want.Bounds() {
		return fmt.Errorf("bounds %v; want %v", got.Bounds(), want.Bounds())
	}
	b := got.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if g, w := rgba(got.At(x, y)), rgba(want.At(x, y)); g != w {
				return fmt.Errorf("pixel %d,%d is %v; want %v", x, y, g, w)
			}
		}
	}
	return nil
}
