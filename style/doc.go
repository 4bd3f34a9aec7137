// Package style resolves logical (writing-direction-independent) style
// properties into their physical equivalents.
//
// # Logical and Physical Styles
//
// A [LogicalStyle] may contain direction-independent keys such as
// "paddingStart", "marginEnd", "borderStartWidth", or a logical
// "textAlign"/"flexDirection" value. [Resolve] translates each against
// an explicit [direction.Direction] and returns a [PhysicalStyle]
// containing only physical keys:
//
//	style.Resolve(style.LogicalStyle{
//	    "paddingStart":  20,
//	    "paddingEnd":    16,
//	    "textAlign":     "start",
//	    "flexDirection": "row",
//	}, direction.RTL)
//	// {"paddingRight": 20, "paddingLeft": 16,
//	//  "textAlign": "right", "flexDirection": "row-reverse"}
//
// Resolve is total. Keys and values outside the logical vocabulary are
// treated as already physical and pass through unchanged; no operation
// in this package returns an error or panics.
//
// Per-property helpers ([PaddingStart], [MarginEnd], [PositionStart],
// ...) produce single-key physical styles, and [Merge] combines
// resolved styles with ordinary override-wins semantics.
//
// # Slide Direction
//
// [SlideFrom] resolves animation entry edges. "start"/"end" are
// logical and mirror with direction; "left"/"right" are physical and
// never change.
//
// # Arabic Typography and Accessibility
//
// [ArabicTextStyle] overlays the fixed Arabic typography configuration
// (font family, writingDirection, right alignment, letter spacing) on
// a base style. [AccessibleProps] derives screen-reader language hints
// from content.
package style
