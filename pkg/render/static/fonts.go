package static

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/jefffranzen/capviz/pkg/errors"
)

var (
	fontOnce    sync.Once
	regularFont *sfnt.Font
	boldFont    *sfnt.Font
	fontErr     error
)

// loadFonts parses the embedded Go fonts once per process.
func loadFonts() error {
	fontOnce.Do(func() {
		regularFont, fontErr = opentype.Parse(goregular.TTF)
		if fontErr != nil {
			return
		}
		boldFont, fontErr = opentype.Parse(gobold.TTF)
	})
	if fontErr != nil {
		return errors.Wrap(errors.ErrCodeRenderResource, fontErr, "parse embedded fonts")
	}
	return nil
}

// faces holds the font faces used across a single render, all sized in
// device pixels (logical size times the render scale).
type faces struct {
	title    font.Face
	subtitle font.Face
	label    font.Face
	bold     font.Face
	tick     font.Face
	center   font.Face
}

// loadFaces builds the face set for one render at the given scale.
func loadFaces(scale float64) (*faces, error) {
	if err := loadFonts(); err != nil {
		return nil, err
	}
	f := &faces{}
	specs := []struct {
		dst  *font.Face
		src  *sfnt.Font
		size float64
	}{
		{&f.title, boldFont, 26},
		{&f.subtitle, regularFont, 15},
		{&f.label, regularFont, 12},
		{&f.bold, boldFont, 12},
		{&f.tick, regularFont, 11},
		{&f.center, boldFont, 20},
	}
	for _, s := range specs {
		face, err := opentype.NewFace(s.src, &opentype.FaceOptions{
			Size:    s.size * scale,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderResource, err, "build font face")
		}
		*s.dst = face
	}
	return f, nil
}
