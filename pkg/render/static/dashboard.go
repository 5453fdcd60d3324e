package static

import (
	"bytes"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/jefffranzen/capviz/pkg/chart"
	"github.com/jefffranzen/capviz/pkg/errors"
)

// RenderDashboard composes every chart of a batch into one PNG: a brand
// banner on top, charts below in a two-column grid in spec order.
func RenderDashboard(title, subtitle string, specs []chart.Spec, opts ...Option) ([]byte, error) {
	if len(specs) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidSpec, "dashboard requires at least one chart")
	}

	o := options{scale: chart.RenderScale}
	for _, opt := range opts {
		opt(&o)
	}
	scale := o.scale

	cells := make([]image.Image, 0, len(specs))
	cellW, cellH := 0, 0
	for _, spec := range specs {
		data, err := Render(spec, WithScale(scale))
		if err != nil {
			return nil, err
		}
		img, err := imaging.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderResource, err, "decode %s.png for dashboard", spec.ID)
		}
		b := img.Bounds()
		if b.Dx() > cellW {
			cellW = b.Dx()
		}
		if b.Dy() > cellH {
			cellH = b.Dy()
		}
		cells = append(cells, img)
	}

	const cols = 2
	rows := (len(cells) + cols - 1) / cols
	margin := 24 * scale
	bannerH := 140 * scale
	width := cols*cellW + (cols+1)*margin
	height := bannerH + rows*(cellH+margin) + margin

	canvas := imaging.New(width, height, color.White)

	banner, err := renderBanner(title, subtitle, width, bannerH, float64(scale))
	if err != nil {
		return nil, err
	}
	canvas = imaging.Paste(canvas, banner, image.Pt(0, 0))

	for i, img := range cells {
		b := img.Bounds()
		if b.Dx() > cellW || b.Dy() > cellH {
			img = imaging.Fit(img, cellW, cellH, imaging.Lanczos)
			b = img.Bounds()
		}
		col := i % cols
		row := i / cols
		x := margin + col*(cellW+margin) + (cellW-b.Dx())/2
		y := bannerH + margin + row*(cellH+margin) + (cellH-b.Dy())/2
		canvas = imaging.Paste(canvas, img, image.Pt(x, y))
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.PNG); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderResource, err, "encode dashboard png")
	}
	return buf.Bytes(), nil
}

// renderBanner paints the dashboard header band.
func renderBanner(title, subtitle string, width, height int, s float64) (image.Image, error) {
	if err := loadFonts(); err != nil {
		return nil, err
	}
	titleFace, err := opentype.NewFace(boldFont, &opentype.FaceOptions{
		Size: 17 * s, DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderResource, err, "build banner font face")
	}
	subFace, err := opentype.NewFace(regularFont, &opentype.FaceOptions{
		Size: 8 * s, DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderResource, err, "build banner font face")
	}

	dc := gg.NewContext(width, height)
	dc.SetHexColor(chart.ColorPrimary)
	dc.Clear()

	w := float64(width)
	h := float64(height)
	dc.SetFontFace(titleFace)
	dc.SetHexColor(chart.ColorBackground)
	if subtitle == "" {
		dc.DrawStringAnchored(title, w/2, h/2, 0.5, 0.35)
	} else {
		dc.DrawStringAnchored(title, w/2, h*0.40, 0.5, 0.35)
		dc.SetFontFace(subFace)
		dc.DrawStringAnchored(subtitle, w/2, h*0.72, 0.5, 0.35)
	}
	return dc.Image(), nil
}
