package chart

import (
	"fmt"
	"math"
	"strings"
)

// FormatValue renders a data value with the spec's prefix and suffix, the
// way the original report printed bar labels ("37.3%", "+1367%", "4 days").
// Whole numbers drop the decimal; everything else keeps one decimal place.
func (s Spec) FormatValue(v float64) string {
	var num string
	if v == math.Trunc(v) {
		num = fmt.Sprintf("%.0f", v)
	} else {
		num = fmt.Sprintf("%.1f", v)
	}
	return s.ValuePrefix + num + s.ValueSuffix
}

// FormatShare renders a point's share of the spec total as a percentage,
// used by donut labels ("Feeding Assistance: 41.7%").
func (s Spec) FormatShare(v float64) string {
	var total float64
	for _, p := range s.Points {
		total += p.Value
	}
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", v/total*100)
}

// TruncateLabel shortens a label to n runes for constrained layouts,
// appending an ellipsis when truncation happens.
func TruncateLabel(label string, n int) string {
	if n <= 1 {
		return label
	}
	runes := []rune(label)
	if len(runes) <= n {
		return label
	}
	return strings.TrimSpace(string(runes[:n-1])) + "…"
}
