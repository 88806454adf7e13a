//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package main

import (
	"os"

	"golang.org/x/crypto/ssh/terminal"
)

type termSize struct {
	Cols, Rows     uint
	XPixel, YPixel uint
}

func getTermSize() (termSize, error) {
	w, h, err := terminal.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return termSize{}, err
	}
	return termSize{Cols: uint(w), Rows: uint(h)}, nil
}
