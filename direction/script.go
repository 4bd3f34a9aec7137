package direction

// ContainsArabic reports whether text contains at least one code point
// in an Arabic Unicode block (U+0600–U+06FF or its supplementary and
// presentation-form ranges). The empty string yields false.
func ContainsArabic(text string) bool {
	for _, r := range text {
		if isArabic(r) {
			return true
		}
	}
	return false
}

// ContainsHebrew reports whether text contains at least one code point
// in a Hebrew Unicode block (U+0590–U+05FF or the presentation forms).
// The empty string yields false.
func ContainsHebrew(text string) bool {
	for _, r := range text {
		if isHebrew(r) {
			return true
		}
	}
	return false
}

// ContainsRTL reports whether text contains Arabic or Hebrew characters.
//
// Only Arabic and Hebrew are detected. Other RTL scripts (Syriac,
// Thaana, N'Ko) are treated as LTR here; this is a deliberate scope
// limitation kept in step with the calibrated two-script contract, not
// an oversight. Callers that need wider coverage can use [Dominant] or
// [CharDirection].
func ContainsRTL(text string) bool {
	return ContainsArabic(text) || ContainsHebrew(text)
}

// Of returns the recommended rendering direction for text: RTL if the
// text contains any Arabic or Hebrew code point, LTR otherwise.
//
// A single RTL code point wins regardless of how much LTR content
// surrounds it. Favoring RTL for mixed-script strings renders Arabic
// and Hebrew names correctly inside otherwise-Latin text; the reverse
// mistake is more visible. The empty string yields LTR.
func Of(text string) Direction {
	if ContainsRTL(text) {
		return RTL
	}
	return LTR
}
