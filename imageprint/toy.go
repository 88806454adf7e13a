// Package imageprint prints images on terminal. UNSUPPORTED debug package.
//
// This package has an API with no stability guarantees.
package imageprint

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	ic "image/color"
	"image/png"
	"io"

	figure "github.com/common-nighthawk/go-figure"
	"github.com/gookit/color"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// Mode selects how pixels are rendered.
type Mode int

const (
	Mode24bit Mode = iota
	Mode256Color
	ModeNoColor
	ModeITerm
	ModeRasTerm
)

var modeNames = map[string]Mode{
	"24bit":   Mode24bit,
	"256":     Mode256Color,
	"nocolor": ModeNoColor,
	"iterm":   ModeITerm,
	"rasterm": ModeRasTerm,
}

// ParseMode converts a mode name ("24bit", "256", "nocolor", "iterm",
// "rasterm") to a Mode.
func ParseMode(s string) (Mode, error) {
	m, ok := modeNames[s]
	if !ok {
		return 0, errors.Errorf("unknown print mode %q", s)
	}
	return m, nil
}

func (m Mode) String() string {
	for n, v := range modeNames {
		if v == m {
			return n
		}
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func shade(w io.Writer, col ic.Color, escapesTrueColor, blanks, noColor bool) {
	cR, cG, cB, cA := col.RGBA()
	if cA == 0 {
		if noColor {
			fmt.Fprintf(w, "  ")
		} else {
			fmt.Fprintf(w, "\x1b[0m  ")
		}
		return
	}

	cell := "  "
	if !blanks {
		a := ((cR + cG + cB) / 3) >> 8
		switch {
		case a < 32:
			cell = ".."
		case a < 64:
			cell = "--"
		case a < 128:
			cell = "=="
		default:
			cell = "##"
		}
	}

	switch {
	case noColor:
		fmt.Fprint(w, cell)
	case escapesTrueColor:
		fmt.Fprintf(w, "\x1b[48;2;%d;%d;%dm%s\x1b[0m", uint8(cR>>8), uint8(cG>>8), uint8(cB>>8), cell)
	default:
		fmt.Fprint(w, color.RGB(uint8(cR>>8), uint8(cG>>8), uint8(cB>>8), true).Sprint(cell))
	}
}

func printCells(w io.Writer, i image.Image, escapesTrueColor, blanks, noColor bool) {
	for y := i.Bounds().Min.Y; y < i.Bounds().Max.Y; y++ {
		for x := i.Bounds().Min.X; x < i.Bounds().Max.X; x++ {
			shade(w, i.At(x, y), escapesTrueColor, blanks, noColor)
		}
		if !noColor {
			fmt.Fprintf(w, "\x1b[0m")
		}
		fmt.Fprintf(w, "\n")
	}
}

// Print256Color draws an image using 256color'd ascii art.
func Print256Color(w io.Writer, i image.Image, blanks bool) {
	printCells(w, i, false, blanks, false)
}

// Print24bit draws an image using 24bit color escape sequences by changing background.
func Print24bit(w io.Writer, i image.Image, blanks bool) {
	printCells(w, i, true, blanks, false)
}

// PrintNoColor draws an image without using color escape sequences. Only makes sense with blanks=false.
func PrintNoColor(w io.Writer, i image.Image, blanks bool) {
	printCells(w, i, false, blanks, true)
}

// PrintITerm draws an image using iTerm2's escape sequences.
//
// https://www.iterm2.com/documentation-images.html
func PrintITerm(w io.Writer, i image.Image, fn string) error {
	name := base64.StdEncoding.EncodeToString([]byte(fn))
	b := &bytes.Buffer{}
	bEnc := base64.NewEncoder(base64.StdEncoding, b)
	if err := png.Encode(bEnc, i); err != nil {
		return errors.Wrap(err, "encoding png for iterm")
	}
	bEnc.Close()
	_, err := fmt.Fprintf(w, "\n\033]1337;File=name=%s;inline=1;size=%d;width=%dpx;height=%dpx:%s\a\n", name, b.Len(), i.Bounds().Size().X, i.Bounds().Size().Y, b.String())
	return err
}

// Print renders i in the passed mode. The name is shown by terminals that
// support inline files.
func Print(w io.Writer, i image.Image, name string, mode Mode, blanks bool) error {
	switch mode {
	case Mode256Color:
		Print256Color(w, i, blanks)
	case ModeNoColor:
		PrintNoColor(w, i, blanks)
	case ModeITerm:
		return PrintITerm(w, i, name)
	case ModeRasTerm:
		return PrintRasTerm(w, i)
	default:
		Print24bit(w, i, blanks)
	}
	return nil
}

// Scale enlarges i by an integer factor without smoothing, so pixel art
// keeps its hard edges.
func Scale(i image.Image, factor int) image.Image {
	if factor <= 1 {
		return i
	}
	sz := i.Bounds().Size()
	return resize.Resize(uint(sz.X*factor), uint(sz.Y*factor), i, resize.NearestNeighbor)
}

// Fit shrinks i, keeping its aspect ratio, so it is at most maxW x maxH.
// Images that already fit are returned unchanged.
func Fit(i image.Image, maxW, maxH uint) image.Image {
	sz := i.Bounds().Size()
	if maxW == 0 || maxH == 0 || (uint(sz.X) <= maxW && uint(sz.Y) <= maxH) {
		return i
	}
	return resize.Thumbnail(maxW, maxH, i, resize.NearestNeighbor)
}

// Banner prints text in large ASCII letters.
func Banner(w io.Writer, text string) {
	fmt.Fprintln(w, figure.NewFigure(text, "", true).String())
}
