package style

// ArabicTypography holds the typography configuration applied to
// Arabic-script text. Arabic letterforms join cursively, so positive
// letter spacing breaks the script; the default keeps it at zero.
type ArabicTypography struct {
	FontFamily    string
	LetterSpacing float64
}

// DefaultArabicTypography returns the stock Arabic typography
// configuration.
func DefaultArabicTypography() ArabicTypography {
	return ArabicTypography{
		FontFamily:    "System",
		LetterSpacing: 0,
	}
}

// overlay returns the style fragment this configuration contributes.
func (t ArabicTypography) overlay() PhysicalStyle {
	return PhysicalStyle{
		"fontFamily":       t.FontFamily,
		"writingDirection": "rtl",
		"textAlign":        "right",
		"letterSpacing":    t.LetterSpacing,
	}
}

// ArabicTextStyle merges the Arabic typography overlay (font family,
// writingDirection "rtl", textAlign "right", adjusted letter spacing)
// over base. Explicit overrides win over both.
func ArabicTextStyle(base PhysicalStyle, overrides ...PhysicalStyle) PhysicalStyle {
	return ArabicTextStyleWith(DefaultArabicTypography(), base, overrides...)
}

// ArabicTextStyleWith is ArabicTextStyle with a caller-supplied
// typography configuration.
func ArabicTextStyleWith(t ArabicTypography, base PhysicalStyle, overrides ...PhysicalStyle) PhysicalStyle {
	merged := Merge(base, t.overlay())
	for _, o := range overrides {
		merged = Merge(merged, o)
	}
	return merged
}
