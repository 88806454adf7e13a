package sprites

import (
	"image"
	"image/color"
	"math"
	"testing"

	"badc0de.net/pkg/spritegen/raster"
	"badc0de.net/pkg/spritegen/ttesting"
)

func find(t *testing.T, list []Sprite, name string, frame Frame) Sprite {
	t.Helper()
	for _, s := range list {
		if s.Name == name && s.Frame == frame {
			return s
		}
	}
	t.Fatalf("no sprite %q frame %d", name, frame)
	return Sprite{}
}

func opaqueCount(img *image.RGBA) int {
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			n++
		}
	}
	return n
}

// onMouthAxis returns the pixel r pixels from the body center, off degrees
// clockwise from the mouth axis of d.
func onMouthAxis(d Direction, off, r float64) image.Point {
	const c = float64(raster.Size)/2 + 0.5
	a := (d.MouthAngle + off) * math.Pi / 180
	return image.Pt(int(math.Floor(c+r*math.Cos(a))), int(math.Floor(c+r*math.Sin(a))))
}

func TestMouthGrowsWithFrame(t *testing.T) {
	chars := Characters()
	for _, d := range Directions {
		t.Run(d.Name, func(t *testing.T) {
			closed := find(t, chars, d.Name, Closed).Render()
			slightly := find(t, chars, d.Name, SlightlyOpen).Render()
			wide := find(t, chars, d.Name, WideOpen).Render()

			// On the axis the mouth is open in both open frames.
			axis := onMouthAxis(d, 0, 10)
			ttesting.AssertColor(t, "axis closed", closed.At(axis.X, axis.Y), pacmanYellow)
			ttesting.AssertTransparent(t, "axis slightly", slightly.At(axis.X, axis.Y))
			ttesting.AssertTransparent(t, "axis wide", wide.At(axis.X, axis.Y))

			// Between the two lips only the wide frame is open.
			lip := onMouthAxis(d, 15, 10)
			ttesting.AssertColor(t, "lip closed", closed.At(lip.X, lip.Y), pacmanYellow)
			ttesting.AssertColor(t, "lip slightly", slightly.At(lip.X, lip.Y), pacmanYellow)
			ttesting.AssertTransparent(t, "lip wide", wide.At(lip.X, lip.Y))

			// Away from the mouth every frame is filled.
			back := onMouthAxis(d, 180, 10)
			ttesting.AssertColor(t, "back slightly", slightly.At(back.X, back.Y), pacmanYellow)
			ttesting.AssertColor(t, "back wide", wide.At(back.X, back.Y), pacmanYellow)

			c, s, w := opaqueCount(closed), opaqueCount(slightly), opaqueCount(wide)
			if !(c > s && s > w) {
				t.Errorf("opaque pixels closed=%d slightly=%d wide=%d; want strictly decreasing", c, s, w)
			}
		})
	}
}

func TestMouthSpans(t *testing.T) {
	ttesting.AssertEqualInt(t, "closed", int(MouthFrames[0].Span()), 360)
	ttesting.AssertEqualInt(t, "slightly", int(MouthFrames[1].Span()), 346)
	ttesting.AssertEqualInt(t, "wide", int(MouthFrames[2].Span()), 316)
}

func TestCharacterEye(t *testing.T) {
	chars := Characters()
	for _, d := range Directions {
		for _, m := range MouthFrames {
			img := find(t, chars, d.Name, m.Frame).Render()
			cx, cy := (d.Eye.X0+d.Eye.X1)/2, (d.Eye.Y0+d.Eye.Y1)/2
			ttesting.AssertColor(t, d.Name+" eye", img.At(cx, cy), color.RGBA{0, 0, 0, 255})
		}
	}
}

func TestLegacyMatchesClosed(t *testing.T) {
	chars := Characters()
	for _, d := range Directions {
		ttesting.AssertSamePixels(t, d.Name,
			find(t, chars, d.Name, Unframed).Render(),
			find(t, chars, d.Name, Closed).Render())
	}
}

func TestGhostColors(t *testing.T) {
	ghosts := Ghosts()
	for _, g := range GhostColors {
		t.Run(g.Name, func(t *testing.T) {
			img := find(t, ghosts, g.Name, Unframed).Render()
			ttesting.AssertColor(t, "body center", img.At(16, 10), g.Color)
			ttesting.AssertColor(t, "skirt", img.At(16, 24), g.Color)
			ttesting.AssertColor(t, "left eye white", img.At(8, 12), color.RGBA{255, 255, 255, 255})
			ttesting.AssertColor(t, "left pupil", img.At(10, 12), color.RGBA{0, 0, 0, 255})
			ttesting.AssertColor(t, "right pupil", img.At(22, 12), color.RGBA{0, 0, 0, 255})
			ttesting.AssertTransparent(t, "below skirt", img.At(16, 30))
			ttesting.AssertTransparent(t, "left of body", img.At(2, 16))
		})
	}
}

func TestRedGhostExactPixels(t *testing.T) {
	img := find(t, Ghosts(), "red", Unframed).Render()
	ttesting.AssertColor(t, "body", img.RGBAAt(16, 10), color.RGBA{255, 0, 0, 255})
	ttesting.AssertColor(t, "pupil", img.RGBAAt(10, 12), color.RGBA{0, 0, 0, 255})
}

func TestEveryFruitHasRecipe(t *testing.T) {
	for _, f := range FruitColors {
		if _, ok := Recipes[f.Name]; !ok {
			t.Errorf("fruit %q has no recipe", f.Name)
		}
	}
	ttesting.AssertEqualInt(t, "recipes", len(Recipes), len(FruitColors))
}

func TestFruitShapes(t *testing.T) {
	fruits := Fruits()
	render := func(name string) *image.RGBA {
		return find(t, fruits, name, Unframed).Render()
	}

	t.Run("banana top is open", func(t *testing.T) {
		img := render("banana")
		for y := 0; y < 10; y++ {
			ttesting.AssertTransparent(t, "top center", img.At(16, y))
		}
		ttesting.AssertColor(t, "bottom of curve", img.At(15, 28), color.RGBA{255, 255, 0, 255})
	})
	t.Run("apple stem", func(t *testing.T) {
		img := render("apple")
		ttesting.AssertColor(t, "stem", img.At(16, 4), stemColor)
		ttesting.AssertColor(t, "body", img.At(16, 18), color.RGBA{0, 200, 0, 255})
	})
	t.Run("melon stem", func(t *testing.T) {
		img := render("melon")
		ttesting.AssertColor(t, "stem", img.At(16, 4), stemColor)
		ttesting.AssertColor(t, "body", img.At(16, 18), color.RGBA{0, 150, 0, 255})
	})
	t.Run("cherry", func(t *testing.T) {
		img := render("cherry")
		ttesting.AssertColor(t, "stem", img.At(14, 6), stemColor)
		ttesting.AssertColor(t, "left cherry", img.At(10, 10), color.RGBA{255, 0, 0, 255})
		ttesting.AssertColor(t, "right cherry", img.At(18, 10), color.RGBA{255, 0, 0, 255})
	})
	t.Run("orange segments", func(t *testing.T) {
		img := render("orange")
		ttesting.AssertColor(t, "vertical", img.At(16, 10), segmentColor)
		ttesting.AssertColor(t, "horizontal", img.At(10, 16), segmentColor)
		ttesting.AssertColor(t, "flesh", img.At(12, 12), color.RGBA{255, 165, 0, 255})
	})
	t.Run("strawberry", func(t *testing.T) {
		img := render("strawberry")
		ttesting.AssertColor(t, "body", img.At(16, 20), color.RGBA{255, 50, 50, 255})
		ttesting.AssertTransparent(t, "notch", img.At(16, 8))
	})
	t.Run("grape grid", func(t *testing.T) {
		img := render("grape")
		purple := color.RGBA{128, 0, 128, 255}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				ttesting.AssertColor(t, "grape", img.At(9+i*8, 9+j*8), purple)
			}
		}
		ttesting.AssertTransparent(t, "gap", img.At(13, 9))
	})
}

func TestAllSpritesAreCanvasSized(t *testing.T) {
	for _, s := range Plan() {
		img := s.Render()
		ttesting.AssertSize(t, s.String(), img, raster.Size, raster.Size)
		ttesting.AssertTransparent(t, s.String()+" corner", img.At(0, 0))
		if opaqueCount(img) == 0 {
			t.Errorf("%v is blank", s)
		}
	}
}
