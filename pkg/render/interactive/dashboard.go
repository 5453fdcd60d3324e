package interactive

import (
	"bytes"

	"github.com/go-echarts/go-echarts/v2/components"

	"github.com/jefffranzen/capviz/pkg/chart"
	"github.com/jefffranzen/capviz/pkg/errors"
)

// RenderDashboard produces a single HTML document laying out every chart
// of a batch on one page. Specs are rendered in the order given.
func RenderDashboard(title string, specs []chart.Spec) ([]byte, error) {
	if len(specs) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidSpec, "dashboard requires at least one chart")
	}

	page := components.NewPage()
	page.PageTitle = title
	page.SetLayout(components.PageFlexLayout)

	for _, spec := range specs {
		if err := spec.Validate(); err != nil {
			return nil, err
		}
		c, err := build(spec.WithDefaults())
		if err != nil {
			return nil, err
		}
		page.AddCharts(c)
	}

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderResource, err, "render dashboard html")
	}
	return buf.Bytes(), nil
}
