package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// chartIDRegex matches valid chart identifiers: lowercase snake_case,
// starting with a letter (e.g. "roi_disaster_type").
var chartIDRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidateChartID validates a chart identifier.
// IDs double as output file basenames, so the rules are conservative:
// lowercase snake_case, no path separators, maximum 64 characters.
func ValidateChartID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidSpec, "chart id cannot be empty")
	}

	if len(id) > 64 {
		return New(ErrCodeInvalidSpec, "chart id too long (max 64 characters)")
	}

	if !chartIDRegex.MatchString(id) {
		return New(ErrCodeInvalidSpec, "invalid chart id: %q (must be lowercase snake_case)", id)
	}

	return nil
}

// ValidateLabel validates a data point label for safety and correctness.
// Labels appear verbatim in tooltips and drawn text, so control characters
// and null bytes are rejected.
func ValidateLabel(label string) error {
	if label == "" {
		return New(ErrCodeInvalidSpec, "data point label cannot be empty")
	}

	if len(label) > 128 {
		return New(ErrCodeInvalidSpec, "data point label too long (max 128 characters)")
	}

	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidSpec, "label %q contains control characters", label)
		}
	}

	return nil
}

// ValidateManifestFilename validates a manifest filename for safety.
// It ensures the filename is a simple basename without path components.
func ValidateManifestFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidManifest, "manifest filename cannot be empty")
	}

	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidManifest, "manifest filename cannot contain path separators")
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidManifest, "manifest filename cannot be a hidden file")
	}

	return nil
}

// ValidateOutputPath validates an output file path within the output
// directory. It prevents path traversal and ensures reasonable length.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}
