package chart

// Official American Red Cross brand colors. The primary/secondary pair is
// fixed across every chart in a catalog; the remaining accents are used in
// the order listed when a chart needs more than two colors.
const (
	ColorPrimary    = "#CC0000" // American Red Cross Red
	ColorSecondary  = "#6B7C93" // Professional Gray
	ColorAccentDark = "#2C5282" // Dark Blue
	ColorSuccess    = "#059669" // Green
	ColorWarning    = "#D97706" // Orange

	ColorBackground = "#FFFFFF"
	ColorText       = "#000000"
)

// Palette returns the brand color cycle used by both renderers. Index 0 is
// always the primary and index 1 the secondary brand color.
func Palette() []string {
	return []string{
		ColorPrimary,
		ColorSecondary,
		ColorAccentDark,
		ColorSuccess,
		ColorWarning,
	}
}

// PaletteColor returns the i-th color of the brand cycle, wrapping around
// when a chart has more entries than the palette.
func PaletteColor(i int) string {
	p := Palette()
	return p[((i%len(p))+len(p))%len(p)]
}
