// Package manifest loads chart catalogs from TOML files.
//
// A manifest lets report authors render their own data through the same
// pipeline as the built-in catalog:
//
//	[[charts]]
//	id = "roi_disaster_type"
//	kind = "horizontal_bar"
//	title = "Return on Investment by Disaster Type"
//	x_axis_title = "Return on Investment (%)"
//	value_suffix = "%"
//	points = [
//	  { label = "Hurricane", value = 37.3 },
//	  { label = "Flooding", value = 25.53 },
//	]
//
// Seriated kinds use labels plus series tables:
//
//	[[charts]]
//	id = "volunteer_trends"
//	kind = "multi_line"
//	title = "Volunteer Engagement"
//	labels = ["FY20", "FY21"]
//	series = [
//	  { name = "National Average", values = [100.0, 102.0] },
//	  { name = "CAP Jurisdictions", values = [100.0, 103.0] },
//	]
//
// Every chart is validated on load; the first invalid chart aborts the
// whole manifest so partial catalogs never reach the renderer.
package manifest

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/jefffranzen/capviz/pkg/chart"
	"github.com/jefffranzen/capviz/pkg/errors"
)

// Manifest is a named collection of chart specifications.
type Manifest struct {
	Title    string       `toml:"title"`
	Subtitle string       `toml:"subtitle"`
	Charts   []chart.Spec `toml:"charts"`
}

// Read decodes a TOML manifest from r and validates every chart.
func Read(r io.Reader) (*Manifest, error) {
	var m Manifest
	if _, err := toml.NewDecoder(r).Decode(&m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode manifest")
	}

	if len(m.Charts) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "manifest defines no charts")
	}

	seen := make(map[string]bool, len(m.Charts))
	for _, spec := range m.Charts {
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("manifest chart %q: %w", spec.ID, err)
		}
		if seen[spec.ID] {
			return nil, errors.New(errors.ErrCodeInvalidManifest, "duplicate chart id %q", spec.ID)
		}
		seen[spec.ID] = true
	}

	return &m, nil
}

// Load reads and validates the manifest file at path.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
