package sprites

import (
	"bytes"
	"context"
	"image"
	"os"
	"sync"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"badc0de.net/pkg/spritegen/imgfmt"
	"badc0de.net/pkg/spritegen/paths"
	"badc0de.net/pkg/spritegen/raster"
)

// Characters returns the player character sprites: for every direction the
// closed, slightly open and wide open frames, followed by the unframed
// legacy copy of the closed frame.
func Characters() []Sprite {
	var out []Sprite
	for _, d := range Directions {
		for _, m := range MouthFrames {
			out = append(out, Sprite{
				Category: CategoryPacman,
				Name:     d.Name,
				Frame:    m.Frame,
				Draw:     func(c *raster.Canvas) { drawCharacter(c, d, m) },
			})
		}
		closed := MouthFrames[0]
		out = append(out, Sprite{
			Category: CategoryPacman,
			Name:     d.Name,
			Frame:    Unframed,
			Draw:     func(c *raster.Canvas) { drawCharacter(c, d, closed) },
		})
	}
	return out
}

// Character returns the character sprite facing direction in frame f.
func Character(direction string, f Frame) (Sprite, bool) {
	for _, s := range Characters() {
		if s.Name == direction && s.Frame == f {
			return s, true
		}
	}
	return Sprite{}, false
}

// Ghosts returns one sprite per ghost color.
func Ghosts() []Sprite {
	var out []Sprite
	for _, g := range GhostColors {
		out = append(out, Sprite{
			Category: CategoryGhosts,
			Name:     g.Name,
			Frame:    Unframed,
			Draw:     func(c *raster.Canvas) { drawGhost(c, g) },
		})
	}
	return out
}

// Fruits returns one sprite per fruit, drawn with the fruit's recipe.
// Every entry of FruitColors must have one; New refuses to run otherwise.
func Fruits() []Sprite {
	var out []Sprite
	for _, f := range FruitColors {
		recipe := Recipes[f.Name]
		out = append(out, Sprite{
			Category: CategoryFruits,
			Name:     f.Name,
			Frame:    Unframed,
			Draw:     func(c *raster.Canvas) { recipe(c, f.Color) },
		})
	}
	return out
}

type category struct {
	Category
	sprites func() []Sprite
	done    string
}

var categories = []category{
	{CategoryPacman, Characters, "✓ Pacman sprites created with animation frames"},
	{CategoryGhosts, Ghosts, "✓ Ghost sprites created"},
	{CategoryFruits, Fruits, "✓ Fruit sprites created"},
}

// Plan returns every sprite a run writes, in the order they are written.
func Plan() []Sprite {
	var out []Sprite
	for _, c := range categories {
		out = append(out, c.sprites()...)
	}
	return out
}

// Written describes a sprite file that has been flushed to disk.
type Written struct {
	Sprite Sprite
	// Path is the file's path, including the output directory.
	Path  string
	Image *image.RGBA
}

// Options configure a Generator.
type Options struct {
	// OutputDir is the root of the sprite tree. Empty means
	// paths.DefaultOutputDir.
	OutputDir string
	// Format names the imgfmt encoder. Empty means "png".
	Format string
	// Parallelism bounds the number of sprites rendered at once. Values
	// below 2 render strictly one after another.
	Parallelism int
	// OnWrite, if set, is called after each file is written. Calls are
	// never concurrent.
	OnWrite func(Written)
}

// Generator writes the sprite tree.
type Generator struct {
	opts Options
	enc  imgfmt.Encoder

	mu sync.Mutex
}

// New returns a Generator, or a MissingDependency error if the format has
// no encoder or a fruit has no recipe.
func New(opts Options) (*Generator, error) {
	if err := checkRecipes(); err != nil {
		return nil, &Error{Kind: MissingDependency, Err: err}
	}
	if opts.Format == "" {
		opts.Format = "png"
	}
	enc, err := imgfmt.Lookup(opts.Format)
	if err != nil {
		return nil, &Error{Kind: MissingDependency, Err: err}
	}
	return &Generator{opts: opts, enc: enc}, nil
}

// Ext is the extension of the files the generator writes.
func (g *Generator) Ext() string {
	return g.enc.Ext()
}

// PathOf returns where s is written.
func (g *Generator) PathOf(s Sprite) string {
	return paths.Join(g.opts.OutputDir, s.Path(g.enc.Ext()))
}

// Run writes every sprite, one category after another. The first failure
// stops the run; files already written are left in place.
func (g *Generator) Run(ctx context.Context) error {
	for _, c := range categories {
		if err := g.generate(ctx, c); err != nil {
			return err
		}
		glog.Infoln(c.done)
	}
	return nil
}

func (g *Generator) generate(ctx context.Context, c category) error {
	dir := paths.Join(g.opts.OutputDir, string(c.Category))
	if err := paths.Ensure(dir); err != nil {
		return &Error{Kind: IOFailure, Path: dir, Err: err}
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(1, g.opts.Parallelism))
	for _, s := range c.sprites() {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return g.write(s)
		})
	}
	return eg.Wait()
}

func (g *Generator) write(s Sprite) error {
	img := s.Render()
	p := g.PathOf(s)

	buf := &bytes.Buffer{}
	if err := g.enc.Encode(buf, img); err != nil {
		return &Error{Kind: IOFailure, Path: p, Err: errors.Wrap(err, "encoding")}
	}
	if err := os.WriteFile(p, buf.Bytes(), 0644); err != nil {
		return &Error{Kind: IOFailure, Path: p, Err: errors.Wrap(err, "writing")}
	}
	glog.V(2).Infof("wrote %s (%d bytes)", p, buf.Len())

	if g.opts.OnWrite != nil {
		g.mu.Lock()
		defer g.mu.Unlock()
		g.opts.OnWrite(Written{Sprite: s, Path: p, Image: img})
	}
	return nil
}
