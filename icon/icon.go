package icon

import (
	"github.com/tsawler/rtlkit/direction"
	"github.com/tsawler/rtlkit/style"
)

// Kind classifies an icon for mirroring purposes.
type Kind int

const (
	// Directional icons point somewhere (arrows, chevrons, back
	// buttons) and must mirror under RTL.
	Directional Kind = iota
	// Neutral icons (search, settings, user) read the same in both
	// directions and never mirror.
	Neutral
	// Text icons depict written content (document, list, compose) and
	// mirror with the writing direction.
	Text
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Directional:
		return "directional"
	case Neutral:
		return "neutral"
	case Text:
		return "text"
	default:
		return "unknown"
	}
}

// ScaleX is a single horizontal-scale transform entry.
type ScaleX struct {
	ScaleX float64 `json:"scaleX"`
}

// Transform describes whether and how an icon should be mirrored.
type Transform struct {
	ShouldFlip bool     `json:"shouldFlip"`
	Transform  []ScaleX `json:"transform,omitempty"`
}

// ShouldFlip reports whether an icon of kind k mirrors under d.
// Directional and Text icons flip under RTL; Neutral icons never flip.
func ShouldFlip(k Kind, d direction.Direction) bool {
	if !d.IsRTL() {
		return false
	}
	return k == Directional || k == Text
}

// GetTransform returns the mirroring decision for an icon of kind k
// under d. The transform list is present iff the icon should flip.
func GetTransform(k Kind, d direction.Direction) Transform {
	if !ShouldFlip(k, d) {
		return Transform{}
	}
	return Transform{
		ShouldFlip: true,
		Transform:  []ScaleX{{ScaleX: -1}},
	}
}

// Style merges base with a horizontal-flip transform when an icon of
// kind k mirrors under d. The base style is returned unchanged (as a
// copy) otherwise.
func Style(k Kind, base style.PhysicalStyle, d direction.Direction) style.PhysicalStyle {
	if !ShouldFlip(k, d) {
		return style.Merge(base, nil)
	}
	return style.Merge(base, style.PhysicalStyle{
		"transform": []ScaleX{{ScaleX: -1}},
	})
}
