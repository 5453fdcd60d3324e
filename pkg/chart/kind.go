package chart

import "github.com/jefffranzen/capviz/pkg/errors"

// Kind identifies the visual form of a chart.
type Kind string

// Supported chart kinds.
const (
	// KindHorizontalBar draws one horizontal bar per data point.
	KindHorizontalBar Kind = "horizontal_bar"

	// KindRankedBar draws vertical bars in the order the points appear,
	// typically sorted from best to worst performer.
	KindRankedBar Kind = "ranked_bar"

	// KindDonut draws a pie chart with a hole and an optional center caption.
	KindDonut Kind = "donut"

	// KindGroupedBar draws side-by-side vertical bars, one group per
	// category label and one bar per series.
	KindGroupedBar Kind = "grouped_bar"

	// KindAnnotatedBar is a horizontal bar chart with a framed note
	// calling out the key finding.
	KindAnnotatedBar Kind = "annotated_bar"

	// KindMultiLine draws one polyline per series over shared category labels.
	KindMultiLine Kind = "multi_line"

	// KindBubbleScatterLog draws sized markers on a log-scale value axis,
	// used when values span several orders of magnitude.
	KindBubbleScatterLog Kind = "bubble_scatter_log"

	// KindRadar draws one filled polygon per series over shared axes.
	KindRadar Kind = "radar"
)

// kinds is the set of recognized chart kinds.
var kinds = map[Kind]bool{
	KindHorizontalBar:    true,
	KindRankedBar:        true,
	KindDonut:            true,
	KindGroupedBar:       true,
	KindAnnotatedBar:     true,
	KindMultiLine:        true,
	KindBubbleScatterLog: true,
	KindRadar:            true,
}

// Kinds returns all recognized chart kinds in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindHorizontalBar,
		KindRankedBar,
		KindDonut,
		KindGroupedBar,
		KindAnnotatedBar,
		KindMultiLine,
		KindBubbleScatterLog,
		KindRadar,
	}
}

// ParseKind converts a string into a Kind.
// It returns an INVALID_KIND error for unrecognized values.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !kinds[k] {
		return "", errors.New(errors.ErrCodeInvalidKind, "unrecognized chart kind: %q", s)
	}
	return k, nil
}

// Valid reports whether k is a recognized chart kind.
func (k Kind) Valid() bool {
	return kinds[k]
}

// Seriated reports whether the kind is driven by named series over shared
// category labels (grouped_bar, multi_line, radar) rather than a flat
// sequence of data points.
func (k Kind) Seriated() bool {
	switch k {
	case KindGroupedBar, KindMultiLine, KindRadar:
		return true
	}
	return false
}
