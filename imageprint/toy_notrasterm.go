//go:build !go1.13 || windows
// +build !go1.13 windows

package imageprint

import (
	"fmt"
	"image"
	"io"
)

func PrintRasTerm(w io.Writer, i image.Image) error {
	fmt.Fprintf(w, "rasterm not supported below Go 1.13 or on windows\n")
	return nil
}
