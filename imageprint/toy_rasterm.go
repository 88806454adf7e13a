//go:build go1.13 && !windows
// +build go1.13,!windows

package imageprint

import (
	"fmt"
	"image"
	"io"

	"github.com/BourgeoisBear/rasterm"
	"github.com/andybons/gogif"
	"github.com/pkg/errors"
)

// PrintRasTerm draws an image using the RasTerm library.
//
// This should enable drawing in Kitty, iTerm/WezTerm and sixel capable
// terminals. Other terminals get nothing.
func PrintRasTerm(w io.Writer, i image.Image) error {
	var err error
	switch {
	case rasterm.IsTermKitty():
		err = rasterm.Settings{}.KittyWriteImage(w, i)
	case rasterm.IsTermItermWez():
		err = rasterm.Settings{}.ItermWriteImage(w, i)
	default:
		capable, cerr := rasterm.IsSixelCapable()
		if cerr != nil || !capable {
			return nil
		}
		palettedImage := image.NewPaletted(i.Bounds(), nil)
		quantizer := gogif.MedianCutQuantizer{NumColor: 64}
		quantizer.Quantize(palettedImage, i.Bounds(), i, image.Point{})

		err = rasterm.Settings{}.SixelWriteImage(w, palettedImage)
	}
	if err != nil {
		return errors.Wrap(err, "rasterm")
	}
	fmt.Fprintf(w, "\n")
	return nil
}
