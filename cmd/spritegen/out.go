package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/golang/glog"

	"badc0de.net/pkg/spritegen/imageprint"
	"badc0de.net/pkg/spritegen/sprites"
)

var (
	preview  = flag.Bool("preview", false, "print every sprite to the terminal as it is written")
	col      = flag.Bool("col", true, "whether to use color at all when previewing")
	col256   = flag.Bool("col256", false, "whether to use 256 col instead of 24 bit")
	iterm    = flag.Bool("iterm", false, "whether to print with iterm escape code instead of 24 bit")
	rasterm  = flag.Bool("rasterm", false, "whether to print with rasterm (kitty, iterm, sixel) instead of 24 bit")
	blanks   = flag.Bool("blanks", true, "whether to just use colored blanks instead of some bad ascii art")
	scale    = flag.Int("scale", 1, "integer upscaling factor applied before printing")
	downsize = flag.Bool("downsize", false, "shrink previews to fit the terminal")
	mode     = flag.String("preview_mode", "", "preview renderer: 24bit, 256, nocolor, iterm or rasterm; overrides -col, -col256, -iterm and -rasterm")
)

func previewMode() (imageprint.Mode, error) {
	if *mode != "" {
		return imageprint.ParseMode(*mode)
	}
	switch {
	case *rasterm:
		return imageprint.ModeRasTerm, nil
	case !*col:
		return imageprint.ModeNoColor, nil
	case *iterm:
		return imageprint.ModeITerm, nil
	case *col256:
		return imageprint.Mode256Color, nil
	}
	return imageprint.Mode24bit, nil
}

// startPreview prints the banner and returns the per-sprite printer.
func startPreview() (func(sprites.Written), error) {
	m, err := previewMode()
	if err != nil {
		return nil, err
	}
	glog.V(1).Infof("previewing in %v mode", m)
	imageprint.Banner(os.Stdout, "spritegen")
	return func(w sprites.Written) { out(w, m) }, nil
}

func out(w sprites.Written, m imageprint.Mode) {
	var img image.Image = w.Image
	img = imageprint.Scale(img, *scale)

	if *downsize {
		termSize, err := getTermSize()
		if err == nil {
			if termSize.XPixel != 0 && termSize.YPixel != 0 && (*rasterm || *iterm) {
				// Pixel-capable renderers get the native size where it fits.
				img = imageprint.Fit(img, termSize.XPixel/2, termSize.YPixel/2)
			} else {
				// Each cell is two characters wide.
				img = imageprint.Fit(img, termSize.Cols/2, termSize.Rows)
			}
		} else {
			glog.V(1).Infof("not downsizing preview: %v", err)
		}
	}

	fmt.Printf("%s\n", w.Path)
	if err := imageprint.Print(os.Stdout, img, w.Sprite.FileName()+".png", m, *blanks); err != nil {
		glog.Warningf("printing %s: %v", w.Path, err)
	}
}
