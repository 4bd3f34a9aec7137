// Package direction provides text direction detection for
// bidirectional (bidi) content.
//
// # Directions
//
// The [Direction] type has three values:
//
//   - LTR - left-to-right (Latin, CJK, etc.)
//   - RTL - right-to-left (Arabic, Hebrew, etc.)
//   - Neutral - direction-neutral characters (numbers, punctuation)
//
// # Script Detection
//
// The content-based detectors classify strings by Unicode block:
//
//	direction.ContainsArabic("مرحبا")  // true
//	direction.ContainsHebrew("שלום")   // true
//	direction.Of("Hello مرحبا World")  // direction.RTL
//
// [ContainsRTL] and [Of] recognize Arabic and Hebrew only; any RTL code
// point forces an RTL result. This conservative bias renders RTL names
// embedded in LTR text correctly.
//
// # Dominant and Base Direction
//
// For callers that need proportional classification instead:
//
//   - [Dominant] counts strong directional characters and returns the
//     majority direction, covering the wider set of RTL blocks
//     (Syriac, Thaana, N'Ko in addition to Arabic and Hebrew).
//   - [Base] applies the Unicode Bidirectional Algorithm's paragraph
//     direction rules via golang.org/x/text/unicode/bidi.
//
// All functions are pure, never panic, and degrade to LTR/Neutral on
// empty input.
package direction
