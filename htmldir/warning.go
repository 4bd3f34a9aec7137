package htmldir

import (
	"strings"
)

// WarningCode identifies a class of non-fatal annotation issue.
type WarningCode string

const (
	// WarnDirMismatch means an element's explicit dir attribute
	// disagrees with its detected content direction.
	WarnDirMismatch WarningCode = "dir-mismatch"
)

// Warning is a non-fatal issue found while annotating. Annotation
// succeeded, but the output may not be what the author intended.
type Warning struct {
	Code    WarningCode
	Message string
}

// String returns the warning formatted for display.
func (w Warning) String() string {
	return string(w.Code) + ": " + w.Message
}

// FormatWarnings joins warnings into a single display string.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
