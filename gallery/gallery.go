// Package gallery writes a self-contained HTML contact sheet of the sprite
// set, for reviewing artwork without the game.
package gallery

import (
	"bytes"
	"html/template"
	"image/png"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/vincent-petithory/dataurl"

	"badc0de.net/pkg/spritegen/paths"
	"badc0de.net/pkg/spritegen/sprites"
)

// FileName is the name of the contact sheet inside the output directory.
const FileName = "index.html"

var page = template.Must(template.New("gallery").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Sprites</title>
<style>
body { background: #222; color: #ddd; font-family: sans-serif; }
img { width: {{.Scale}}px; height: {{.Scale}}px; image-rendering: pixelated; background: #000; }
figure { display: inline-block; margin: 8px; text-align: center; }
figcaption { font-size: 11px; }
</style>
</head>
<body>
{{range .Rows}}<h2>{{.Category}}</h2>
<div>
{{range .Items}}<figure><img src="{{.Src}}" alt="{{.Path}}"><figcaption>{{.Path}}</figcaption></figure>
{{end}}</div>
{{end}}</body>
</html>
`))

type item struct {
	Path string
	Src  template.URL
}

type row struct {
	Category sprites.Category
	Items    []item
}

// Scale is the edge length, in CSS pixels, each sprite is shown at.
const Scale = 128

// Render writes the contact sheet for list to w. Sprites are grouped by
// category in the order they first appear. Captions name the files as
// written with extension ext; the embedded previews are always PNG.
func Render(w io.Writer, list []sprites.Sprite, ext string) error {
	var rows []*row
	byCat := make(map[sprites.Category]*row)
	for _, s := range list {
		src, err := dataURL(s)
		if err != nil {
			return errors.Wrapf(err, "embedding %v", s)
		}
		r, ok := byCat[s.Category]
		if !ok {
			r = &row{Category: s.Category}
			byCat[s.Category] = r
			rows = append(rows, r)
		}
		r.Items = append(r.Items, item{Path: s.Path(ext), Src: src})
	}
	return page.Execute(w, struct {
		Scale int
		Rows  []*row
	}{Scale, rows})
}

func dataURL(s sprites.Sprite) (template.URL, error) {
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, s.Render()); err != nil {
		return "", err
	}
	byt, err := dataurl.New(buf.Bytes(), "image/png").MarshalText()
	if err != nil {
		return "", err
	}
	return template.URL(byt), nil
}

// Write renders the contact sheet of the full sprite plan into
// outputDir/index.html, captioned with the sprite files' extension ext.
func Write(outputDir, ext string) error {
	if err := paths.Ensure(paths.Join(outputDir)); err != nil {
		return err
	}
	p := paths.Join(outputDir, FileName)
	buf := &bytes.Buffer{}
	if err := Render(buf, sprites.Plan(), ext); err != nil {
		return err
	}
	if err := os.WriteFile(p, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "writing %q", p)
	}
	glog.Infof("✓ Sprite gallery written to %s", p)
	return nil
}
