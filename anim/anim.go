// Package anim assembles the character's eating frames into animated
// previews, one APNG and one GIF per facing direction.
//
// The game loads the individual frames; these strips exist so the frames
// can be reviewed in a browser or image viewer.
package anim

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"path/filepath"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/setanarut/apng"

	"badc0de.net/pkg/spritegen/paths"
	"badc0de.net/pkg/spritegen/sprites"
)

// Cycle is the order frames are shown in: the mouth opens and closes again.
var Cycle = []sprites.Frame{sprites.Closed, sprites.SlightlyOpen, sprites.WideOpen, sprites.SlightlyOpen}

// frameDelay is the time each frame is shown, in hundredths of a second.
const frameDelay = 8

// Frames renders the Cycle for the passed direction.
func Frames(direction string) ([]image.Image, error) {
	var out []image.Image
	for _, f := range Cycle {
		s, ok := sprites.Character(direction, f)
		if !ok {
			return nil, errors.Errorf("no character sprite for direction %q frame %d", direction, f)
		}
		out = append(out, s.Render())
	}
	return out, nil
}

// Palette builds a GIF palette for frames. Index 0 is transparent.
func Palette(frames []image.Image) color.Palette {
	if len(frames) == 0 {
		return color.Palette{color.Transparent}
	}
	b := frames[0].Bounds()
	sheet := image.NewRGBA(image.Rect(0, 0, b.Dx()*len(frames), b.Dy()))
	for i, fr := range frames {
		draw.Draw(sheet, fr.Bounds().Sub(fr.Bounds().Min).Add(image.Pt(i*b.Dx(), 0)), fr, fr.Bounds().Min, draw.Src)
	}

	p := make(color.Palette, 0, 256)
	p = append(p, color.Transparent)
	return quantize.MedianCutQuantizer{}.Quantize(p, sheet)
}

// EncodeGIF writes frames as a looping animated GIF.
func EncodeGIF(w io.Writer, frames []image.Image) error {
	pal := Palette(frames)
	g := &gif.GIF{}
	for _, fr := range frames {
		pm := image.NewPaletted(fr.Bounds(), pal)
		draw.Draw(pm, fr.Bounds(), fr, fr.Bounds().Min, draw.Src)
		g.Image = append(g.Image, pm)
		g.Delay = append(g.Delay, frameDelay)
		g.Disposal = append(g.Disposal, gif.DisposalBackground)
	}
	return gif.EncodeAll(w, g)
}

// WriteGIF writes frames to a GIF file at path.
func WriteGIF(path string, frames []image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %q", path)
	}
	if err := EncodeGIF(f, frames); err != nil {
		f.Close()
		return errors.Wrapf(err, "encoding %q", path)
	}
	return errors.Wrapf(f.Close(), "closing %q", path)
}

// EncodeAPNG writes frames as a looping animated PNG.
func EncodeAPNG(w io.Writer, frames []image.Image) error {
	a := &apng.APNG{Images: frames}
	for range frames {
		a.Delays = append(a.Delays, frameDelay)
	}
	return apng.EncodeAll(w, a)
}

// WriteAPNG writes frames to an animated PNG file at path.
func WriteAPNG(path string, frames []image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %q", path)
	}
	if err := EncodeAPNG(f, frames); err != nil {
		f.Close()
		return errors.Wrapf(err, "encoding %q", path)
	}
	return errors.Wrapf(f.Close(), "closing %q", path)
}

// WriteAll writes pacman_{direction}_anim.apng and .gif for every
// direction into the character directory under outputDir.
func WriteAll(outputDir string) error {
	dir := paths.Join(outputDir, string(sprites.CategoryPacman))
	if err := paths.Ensure(dir); err != nil {
		return err
	}
	for _, d := range sprites.Directions {
		frames, err := Frames(d.Name)
		if err != nil {
			return err
		}
		base := filepath.Join(dir, "pacman_"+d.Name+"_anim")
		if err := WriteAPNG(base+".apng", frames); err != nil {
			return err
		}
		if err := WriteGIF(base+".gif", frames); err != nil {
			return err
		}
		glog.V(1).Infof("wrote %s.{apng,gif}", base)
	}
	glog.Infoln("✓ Pacman animation previews created")
	return nil
}
