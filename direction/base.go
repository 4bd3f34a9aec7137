package direction

import (
	"golang.org/x/text/unicode/bidi"
)

// Base returns the paragraph base direction of text as computed by the
// Unicode Bidirectional Algorithm (golang.org/x/text/unicode/bidi).
//
// Base is a cross-check against [Of] and [Dominant]: it follows UAX #9
// rule P2/P3 (first strong character wins) rather than this package's
// any-RTL-wins or majority rules. Mixed paragraphs fall back to
// [Dominant]. The empty string yields Neutral.
func Base(text string) Direction {
	if text == "" {
		return Neutral
	}

	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return Neutral
	}
	if _, err := p.Order(); err != nil {
		return Neutral
	}

	switch p.Direction() {
	case bidi.LeftToRight:
		return LTR
	case bidi.RightToLeft:
		return RTL
	case bidi.Mixed:
		return Dominant(text)
	default:
		return Neutral
	}
}
