package style

import (
	"github.com/tsawler/rtlkit/direction"
)

// LogicalStyle is a style object that may contain logical
// (direction-independent) property keys such as "paddingStart" or
// "marginEnd" alongside already-physical keys. Values are opaque to
// this package and carried through unchanged.
type LogicalStyle map[string]any

// PhysicalStyle is a style object containing only physical property
// keys ("paddingLeft", "marginRight", ...). It is the output of
// [Resolve] and the input to [Merge].
type PhysicalStyle map[string]any

// sideProps maps each logical side property to its physical key under
// LTR and RTL respectively.
var sideProps = map[string][2]string{
	"start":            {"left", "right"},
	"end":              {"right", "left"},
	"positionStart":    {"left", "right"},
	"positionEnd":      {"right", "left"},
	"paddingStart":     {"paddingLeft", "paddingRight"},
	"paddingEnd":       {"paddingRight", "paddingLeft"},
	"marginStart":      {"marginLeft", "marginRight"},
	"marginEnd":        {"marginRight", "marginLeft"},
	"borderStartWidth": {"borderLeftWidth", "borderRightWidth"},
	"borderEndWidth":   {"borderRightWidth", "borderLeftWidth"},
	"borderStartColor": {"borderLeftColor", "borderRightColor"},
	"borderEndColor":   {"borderRightColor", "borderLeftColor"},
}

// physicalSideKey returns the physical key for a logical side property
// under d, and whether the property is a known logical side property.
func physicalSideKey(logical string, d direction.Direction) (string, bool) {
	phys, ok := sideProps[logical]
	if !ok {
		return "", false
	}
	if d.IsRTL() {
		return phys[1], true
	}
	return phys[0], true
}

// Resolve translates every logical key in the input into its physical
// equivalent under d and returns the flattened physical style.
//
// Resolve is total: keys it does not recognize as logical (including
// keys that are already physical) pass through unchanged, so resolving
// an already-resolved style is a no-op for side and alignment
// properties. The one exception is "flexDirection", whose logical and
// physical vocabularies overlap: "row" and "row-reverse" are swapped on
// every RTL resolution, matching the per-property rule of
// [FlexDirection].
//
// The input is not modified.
func Resolve(logical LogicalStyle, d direction.Direction) PhysicalStyle {
	resolved := make(PhysicalStyle, len(logical))
	for key, value := range logical {
		switch key {
		case "textAlign":
			if s, ok := value.(string); ok {
				resolved[key] = TextAlign(s, d)
			} else {
				resolved[key] = value
			}
		case "writingDirection":
			if s, ok := value.(string); ok {
				resolved[key] = writingDirection(s, d)
			} else {
				resolved[key] = value
			}
		case "flexDirection":
			if s, ok := value.(string); ok {
				resolved[key] = FlexDirection(s, d)
			} else {
				resolved[key] = value
			}
		default:
			if physKey, ok := physicalSideKey(key, d); ok {
				resolved[physKey] = value
			} else {
				resolved[key] = value
			}
		}
	}
	return resolved
}

// Merge returns a shallow merge of base and override, with override
// winning on key collision. Neither input is modified; nil inputs are
// treated as empty.
func Merge(base, override PhysicalStyle) PhysicalStyle {
	merged := make(PhysicalStyle, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}

// TextAlign resolves a logical text alignment. "start" and "end" mirror
// with direction; "center", "justify", "left", and "right" (and any
// unrecognized value) pass through unchanged.
func TextAlign(logical string, d direction.Direction) string {
	switch logical {
	case "start":
		if d.IsRTL() {
			return "right"
		}
		return "left"
	case "end":
		if d.IsRTL() {
			return "left"
		}
		return "right"
	default:
		return logical
	}
}

// writingDirection resolves the logical value "auto" to the concrete
// direction; "ltr" and "rtl" pass through.
func writingDirection(logical string, d direction.Direction) string {
	if logical == "auto" {
		return d.String()
	}
	return logical
}

// FlexDirection resolves a logical flex direction. "row" and
// "row-reverse" are swapped under RTL; "column" and "column-reverse"
// are fixed points, as is any unrecognized value.
func FlexDirection(logical string, d direction.Direction) string {
	if !d.IsRTL() {
		return logical
	}
	switch logical {
	case "row":
		return "row-reverse"
	case "row-reverse":
		return "row"
	default:
		return logical
	}
}

// PaddingStart returns a style with the physical padding key for the
// leading edge under d.
func PaddingStart(v any, d direction.Direction) PhysicalStyle {
	return side("paddingStart", v, d)
}

// PaddingEnd returns a style with the physical padding key for the
// trailing edge under d.
func PaddingEnd(v any, d direction.Direction) PhysicalStyle {
	return side("paddingEnd", v, d)
}

// MarginStart returns a style with the physical margin key for the
// leading edge under d.
func MarginStart(v any, d direction.Direction) PhysicalStyle {
	return side("marginStart", v, d)
}

// MarginEnd returns a style with the physical margin key for the
// trailing edge under d.
func MarginEnd(v any, d direction.Direction) PhysicalStyle {
	return side("marginEnd", v, d)
}

// BorderStartWidth returns a style with the physical border-width key
// for the leading edge under d.
func BorderStartWidth(v any, d direction.Direction) PhysicalStyle {
	return side("borderStartWidth", v, d)
}

// BorderEndWidth returns a style with the physical border-width key for
// the trailing edge under d.
func BorderEndWidth(v any, d direction.Direction) PhysicalStyle {
	return side("borderEndWidth", v, d)
}

// BorderStartColor returns a style with the physical border-color key
// for the leading edge under d.
func BorderStartColor(color any, d direction.Direction) PhysicalStyle {
	return side("borderStartColor", color, d)
}

// BorderEndColor returns a style with the physical border-color key for
// the trailing edge under d.
func BorderEndColor(color any, d direction.Direction) PhysicalStyle {
	return side("borderEndColor", color, d)
}

// PositionStart returns a style positioning the leading edge: {"left":
// v} under LTR, {"right": v} under RTL.
func PositionStart(v any, d direction.Direction) PhysicalStyle {
	return side("positionStart", v, d)
}

// PositionEnd returns a style positioning the trailing edge.
func PositionEnd(v any, d direction.Direction) PhysicalStyle {
	return side("positionEnd", v, d)
}

func side(logical string, v any, d direction.Direction) PhysicalStyle {
	key, _ := physicalSideKey(logical, d)
	return PhysicalStyle{key: v}
}
