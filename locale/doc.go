// Package locale maps BCP 47 language tags to layout direction and
// language metadata.
//
// Tags are canonicalized with golang.org/x/text/language, so regional
// and script variants resolve through their base language:
//
//	locale.Direction("ar-SA") // direction.RTL
//	locale.Direction("he-IL") // direction.RTL
//	locale.Direction("en-GB") // direction.LTR
//	locale.Direction("junk")  // direction.LTR (graceful fallback)
//
// The package also carries per-language digit sets for the languages
// that use Arabic-Indic or Extended Arabic-Indic digits; see
// [ConvertDigits].
package locale
