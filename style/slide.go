package style

import (
	"github.com/tsawler/rtlkit/direction"
)

// SlideFrom resolves a slide (animation entry) direction. Only the
// logical values "start" and "end" are direction-sensitive; "left" and
// "right" name physical screen edges and pass through unchanged in both
// directions. Unrecognized values also pass through.
//
// The split keeps the two intents distinct: a drawer that opens from
// the leading edge slides from "start", while a toast pinned to the
// left of the screen slides from "left" regardless of locale.
func SlideFrom(logical string, d direction.Direction) string {
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
