// Package sprites describes the game's sprite set and renders it to disk.
//
// Every variant (a facing direction, a ghost color, a fruit) is a static
// record in one of the tables in this package. Each record expands into
// one or more Sprites, and a Generator turns those into image files laid
// out the way the game's content loader expects:
//
//	Pacman/pacman_{direction}_{0,1,2}.png
//	Pacman/pacman_{direction}.png
//	Ghosts/ghost_{color}.png
//	Fruits/{fruit}.png
package sprites

import (
	"fmt"
	"image"
	"path"

	"badc0de.net/pkg/spritegen/raster"
)

// Category groups sprites that share an output directory.
type Category string

const (
	CategoryPacman Category = "Pacman"
	CategoryGhosts Category = "Ghosts"
	CategoryFruits Category = "Fruits"
)

func (c Category) filePrefix() string {
	switch c {
	case CategoryPacman:
		return "pacman_"
	case CategoryGhosts:
		return "ghost_"
	}
	return ""
}

// Frame is an animation state of a variant.
type Frame int

const (
	// Unframed sprites carry no frame suffix in their file name. All
	// ghosts and fruits are unframed, as is the legacy single-frame
	// character file kept for consumers that predate animation.
	Unframed Frame = -1

	Closed       Frame = 0
	SlightlyOpen Frame = 1
	WideOpen     Frame = 2
)

// Sprite is one output image.
type Sprite struct {
	Category Category
	Name     string
	Frame    Frame

	// Draw paints the sprite on a fresh canvas.
	Draw func(c *raster.Canvas)
}

// FileName is the base name of the sprite's file, without extension.
func (s Sprite) FileName() string {
	n := s.Category.filePrefix() + s.Name
	if s.Frame != Unframed {
		n = fmt.Sprintf("%s_%d", n, s.Frame)
	}
	return n
}

// Path is the slash-separated path of the sprite relative to the output
// directory.
func (s Sprite) Path(ext string) string {
	return path.Join(string(s.Category), s.FileName()+"."+ext)
}

// Render draws the sprite on a new canvas and returns the image.
func (s Sprite) Render() *image.RGBA {
	c := raster.New()
	s.Draw(c)
	return c.Image()
}

func (s Sprite) String() string {
	return s.Path("*")
}
