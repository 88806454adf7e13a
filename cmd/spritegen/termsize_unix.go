//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package main

import (
	"os"

	"golang.org/x/crypto/ssh/terminal"
	"golang.org/x/sys/unix"
)

// termSize is the size of the controlling terminal, in cells and, where
// the terminal reports it, in pixels.
type termSize struct {
	Cols, Rows     uint
	XPixel, YPixel uint
}

func getTermSize() (termSize, error) {
	f, err := os.OpenFile("/dev/tty", unix.O_NOCTTY|unix.O_CLOEXEC|unix.O_NDELAY|unix.O_RDWR, 0666)
	if err == nil {
		defer f.Close()
		var sz *unix.Winsize
		if sz, err = unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ); err == nil {
			return termSize{Cols: uint(sz.Col), Rows: uint(sz.Row), XPixel: uint(sz.Xpixel), YPixel: uint(sz.Ypixel)}, nil
		}
	}
	w, h, err := terminal.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return termSize{}, err
	}
	return termSize{Cols: uint(w), Rows: uint(h)}, nil
}
