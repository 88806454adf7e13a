// Package imgfmt maps output format names to image encoders.
//
// Only lossless formats that keep the alpha channel are offered.
package imgfmt

import (
	"image"
	"image/png"
	"io"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/image/tiff"
)

// ErrUnknownFormat is returned by Lookup for formats with no encoder.
var ErrUnknownFormat = errors.New("no encoder for format")

// Encoder writes an image in one file format.
type Encoder interface {
	Encode(w io.Writer, m image.Image) error
	// Ext is the file extension, without the dot.
	Ext() string
}

type pngEncoder struct {
	enc png.Encoder
}

func (e *pngEncoder) Encode(w io.Writer, m image.Image) error {
	return e.enc.Encode(w, m)
}

func (*pngEncoder) Ext() string { return "png" }

type tiffEncoder struct{}

func (tiffEncoder) Encode(w io.Writer, m image.Image) error {
	return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
}

func (tiffEncoder) Ext() string { return "tiff" }

var encoders = map[string]func() Encoder{
	"png":  func() Encoder { return &pngEncoder{enc: png.Encoder{CompressionLevel: png.BestCompression}} },
	"tiff": func() Encoder { return tiffEncoder{} },
}

// Lookup returns the encoder registered for format.
func Lookup(format string) (Encoder, error) {
	mk, ok := encoders[format]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownFormat, "imgfmt.Lookup(%q)", format)
	}
	return mk(), nil
}

// Names lists the registered formats in sorted order.
func Names() []string {
	var names []string
	for n := range encoders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
