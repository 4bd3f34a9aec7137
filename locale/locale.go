package locale

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/tsawler/rtlkit/direction"
)

// Config describes a supported language.
type Config struct {
	Code       string              `json:"code"`
	Name       string              `json:"name"`
	NativeName string              `json:"native_name"`
	Direction  direction.Direction `json:"-"`

	// Digits is the digit set used by the language, as a ten-rune
	// string starting at zero. Empty means Western digits.
	Digits string `json:"digits,omitempty"`
}

// rtlLanguages is the set of base languages written right-to-left.
// Matching is by base language, so regional variants ("ar-SA",
// "he-IL") inherit the direction.
var rtlLanguages = map[string]bool{
	"ar": true, // Arabic
	"he": true, // Hebrew
	"fa": true, // Persian
	"ur": true, // Urdu
	"dv": true, // Dhivehi (Thaana script)
	"ps": true, // Pashto
	"sd": true, // Sindhi
	"ug": true, // Uyghur
	"yi": true, // Yiddish
}

// registry holds per-language configuration for the languages this
// module ships metadata for. Absence from the registry does not mean a
// language is unsupported; Direction falls back to the base-language
// set above.
var registry = map[string]Config{
	"en": {Code: "en", Name: "English", NativeName: "English", Direction: direction.LTR},
	"ar": {Code: "ar", Name: "Arabic", NativeName: "العربية", Direction: direction.RTL, Digits: "٠١٢٣٤٥٦٧٨٩"},
	"he": {Code: "he", Name: "Hebrew", NativeName: "עברית", Direction: direction.RTL},
	"fa": {Code: "fa", Name: "Persian", NativeName: "فارسی", Direction: direction.RTL, Digits: "۰۱۲۳۴۵۶۷۸۹"},
	"ur": {Code: "ur", Name: "Urdu", NativeName: "اردو", Direction: direction.RTL, Digits: "۰۱۲۳۴۵۶۷۸۹"},
	"es": {Code: "es", Name: "Spanish", NativeName: "Español", Direction: direction.LTR},
	"fr": {Code: "fr", Name: "French", NativeName: "Français", Direction: direction.LTR},
	"de": {Code: "de", Name: "German", NativeName: "Deutsch", Direction: direction.LTR},
	"zh": {Code: "zh", Name: "Chinese", NativeName: "中文", Direction: direction.LTR},
	"ja": {Code: "ja", Name: "Japanese", NativeName: "日本語", Direction: direction.LTR},
}

// Lookup returns the configuration for a language code, matching on the
// base language of the tag ("ar-SA" finds "ar").
func Lookup(tag string) (Config, bool) {
	base, ok := baseLanguage(tag)
	if !ok {
		return Config{}, false
	}
	cfg, ok := registry[base]
	return cfg, ok
}

// Direction returns the layout direction for a BCP 47 language tag.
// Malformed tags and unknown languages yield LTR.
func Direction(tag string) direction.Direction {
	base, ok := baseLanguage(tag)
	if !ok {
		return direction.LTR
	}
	if rtlLanguages[base] {
		return direction.RTL
	}
	return direction.LTR
}

// IsRTL reports whether a BCP 47 language tag names a right-to-left
// language.
func IsRTL(tag string) bool {
	return Direction(tag) == direction.RTL
}

// baseLanguage canonicalizes tag via golang.org/x/text/language and
// returns its base language subtag.
func baseLanguage(tag string) (string, bool) {
	if strings.TrimSpace(tag) == "" {
		return "", false
	}
	t, err := language.Parse(tag)
	if err != nil {
		return "", false
	}
	base, conf := t.Base()
	if conf == language.No {
		return "", false
	}
	return base.String(), true
}

// ConvertDigits replaces Western digits in s with the digit set of the
// given language. Languages without a registered digit set (and
// malformed tags) return s unchanged; non-digit runes always pass
// through.
func ConvertDigits(s, tag string) string {
	cfg, ok := Lookup(tag)
	if !ok || cfg.Digits == "" {
		return s
	}

	digits := []rune(cfg.Digits)
	if len(digits) != 10 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(digits[r-'0'])
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
