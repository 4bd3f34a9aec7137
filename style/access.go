package style

import (
	"github.com/tsawler/rtlkit/direction"
)

// AccessibilityProps holds the accessibility attributes recommended for
// a piece of rendered text.
type AccessibilityProps struct {
	// Language is the BCP 47 language hint for screen readers, empty
	// when no text was classified.
	Language string `json:"accessibilityLanguage,omitempty"`

	// Important controls whether assistive technology should surface
	// the element.
	Important string `json:"importantForAccessibility"`

	// Accessible marks the element as an accessibility element.
	Accessible bool `json:"accessible"`
}

// AccessibleProps returns accessibility attributes for text:
// accessibilityLanguage "ar" when Arabic script is detected, "en"
// otherwise. The empty string is classified like any other non-Arabic
// text and yields "en"; callers that want no language hint at all when
// there is no text should use [NeutralAccessibleProps] instead.
func AccessibleProps(text string) AccessibilityProps {
	lang := "en"
	if direction.ContainsArabic(text) {
		lang = "ar"
	}
	return AccessibilityProps{
		Language:   lang,
		Important:  "yes",
		Accessible: true,
	}
}

// NeutralAccessibleProps returns the accessibility-importance marker
// without a language tag, for elements whose text is not known at
// resolution time.
func NeutralAccessibleProps() AccessibilityProps {
	return AccessibilityProps{
		Important:  "yes",
		Accessible: true,
	}
}
