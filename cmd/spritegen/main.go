// Command spritegen draws the game's pixel-art sprites and writes them
// under Content/Sprites.
//
// Run it with no arguments from the game's project directory. Re-running
// overwrites the previous output with identical files.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"

	"badc0de.net/pkg/spritegen/anim"
	"badc0de.net/pkg/spritegen/gallery"
	"badc0de.net/pkg/spritegen/paths"
	"badc0de.net/pkg/spritegen/sprites"
)

var (
	format      = flag.String("format", "png", "image format of the sprite files (png or tiff)")
	parallelism = flag.Int("parallelism", 1, "number of sprites rendered at once")
	animations  = flag.Bool("animations", false, "also write animated APNG and GIF previews of the character frames")
	htmlGallery = flag.Bool("gallery", false, "also write an index.html contact sheet of all sprites")

	outputDir string
)

func run(ctx context.Context) error {
	opts := sprites.Options{
		OutputDir:   outputDir,
		Format:      *format,
		Parallelism: *parallelism,
	}
	if *preview {
		onWrite, err := startPreview()
		if err != nil {
			return err
		}
		opts.OnWrite = onWrite
	}

	g, err := sprites.New(opts)
	if err != nil {
		return err
	}
	if err := g.Run(ctx); err != nil {
		return err
	}

	if *animations {
		if err := anim.WriteAll(outputDir); err != nil {
			return &sprites.Error{Kind: sprites.IOFailure, Err: err}
		}
	}
	if *htmlGallery {
		if err := gallery.Write(outputDir, g.Ext()); err != nil {
			return &sprites.Error{Kind: sprites.IOFailure, Err: err}
		}
	}
	return nil
}

func main() {
	paths.SetupOutputDirFlag("output_dir", &outputDir)
	flagutil.Parse()
	flag.Set("logtostderr", "true")
	defer glog.Flush()

	if err := run(context.Background()); err != nil {
		glog.Errorf("Error creating sprites: %v", err)
		glog.Flush()
		os.Exit(1)
	}

	fmt.Println("\n✅ All sprites created successfully!")
	fmt.Printf("Sprites saved to %s/\n", outputDir)
}
