package direction

import (
	"unicode"
)

// Direction represents the writing direction of text.
// It is used both for resolved layout direction (LTR or RTL) and for
// per-character classification, where Neutral covers digits,
// punctuation, and other characters with no strong direction.
type Direction int

const (
	// LTR (Left-to-Right) for Latin, Cyrillic, etc.
	LTR Direction = iota
	// RTL (Right-to-Left) for Arabic, Hebrew, etc.
	RTL
	// Neutral for numbers, punctuation, etc.
	Neutral
)

// String returns a string representation of the direction ("ltr", "rtl",
// or "neutral"), suitable for use as an HTML dir attribute value.
func (d Direction) String() string {
	switch d {
	case LTR:
		return "ltr"
	case RTL:
		return "rtl"
	case Neutral:
		return "neutral"
	default:
		return "unknown"
	}
}

// IsRTL reports whether d is RTL.
func (d Direction) IsRTL() bool {
	return d == RTL
}

// Flip returns the opposite direction. Neutral is a fixed point.
func (d Direction) Flip() Direction {
	switch d {
	case LTR:
		return RTL
	case RTL:
		return LTR
	default:
		return d
	}
}

// Dominant analyzes a string and returns its dominant text direction
// based on Unicode character properties. It counts strong directional
// characters and returns the direction with the higher count, or Neutral
// if no strong directional characters are present.
//
// Unlike [Of], Dominant weighs LTR and RTL content against each other
// and recognizes the full set of RTL blocks known to [CharDirection].
// Use Of for the rendering-direction decision; use Dominant when the
// caller needs proportional classification (e.g. choosing a base
// direction for mixed-script paragraphs).
func Dominant(text string) Direction {
	if text == "" {
		return Neutral
	}

	ltrCount := 0
	rtlCount := 0

	for _, r := range text {
		switch CharDirection(r) {
		case LTR:
			ltrCount++
		case RTL:
			rtlCount++
		}
	}

	// If no strong directional characters, it's neutral
	if ltrCount == 0 && rtlCount == 0 {
		return Neutral
	}

	// Return the dominant direction
	if rtlCount > ltrCount {
		return RTL
	}
	return LTR
}

// CharDirection returns the inherent direction of a single Unicode
// character. Digits, punctuation, whitespace, and symbols are Neutral;
// RTL scripts (Arabic, Hebrew, Syriac, Thaana, N'Ko) return RTL; all
// other scripts return LTR.
//
// Note that CharDirection covers more RTL blocks than [ContainsRTL],
// which is deliberately limited to Arabic and Hebrew.
func CharDirection(r rune) Direction {
	// Numbers and neutral characters (check first, before script checks)
	if unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
		return Neutral
	}

	// RTL scripts (primary RTL languages)
	if isArabic(r) || isHebrew(r) || isSyriac(r) || isThaana(r) || isNKo(r) {
		return RTL
	}

	// Everything else, including CJK, renders LTR in modern usage
	return LTR
}

// isArabic reports whether r is in an Arabic Unicode block.
// This includes:
//   - Arabic: U+0600–U+06FF
//   - Arabic Supplement: U+0750–U+077F
//   - Arabic Extended-A: U+08A0–U+08FF
//   - Arabic Presentation Forms-A: U+FB50–U+FDFF
//   - Arabic Presentation Forms-B: U+FE70–U+FEFF
func isArabic(r rune) bool {
	return (r >= 0x0600 && r <= 0x06FF) ||
		(r >= 0x0750 && r <= 0x077F) ||
		(r >= 0x08A0 && r <= 0x08FF) ||
		(r >= 0xFB50 && r <= 0xFDFF) ||
		(r >= 0xFE70 && r <= 0xFEFF)
}

// isHebrew reports whether r is in a Hebrew Unicode block.
// This includes:
//   - Hebrew: U+0590–U+05FF
//   - Hebrew Presentation Forms: U+FB1D–U+FB4F
func isHebrew(r rune) bool {
	return (r >= 0x0590 && r <= 0x05FF) ||
		(r >= 0xFB1D && r <= 0xFB4F)
}

// isSyriac reports whether r is in the Syriac Unicode block (U+0700–U+074F).
func isSyriac(r rune) bool {
	return r >= 0x0700 && r <= 0x074F
}

// isThaana reports whether r is in the Thaana Unicode block (U+0780–U+07BF).
// Thaana is the script used to write Maldivian (Dhivehi).
func isThaana(r rune) bool {
	return r >= 0x0780 && r <= 0x07BF
}

// isNKo reports whether r is in the N'Ko Unicode block (U+07C0–U+07FF).
// N'Ko is a script used for Manding languages in West Africa.
func isNKo(r rune) bool {
	return r >= 0x07C0 && r <= 0x07FF
}
