// Package rtlkit provides a fluent API for resolving logical,
// direction-independent style intents into physical styles, and for
// detecting the writing direction of text content.
//
// Basic usage:
//
//	r := rtlkit.ForLocale("ar")
//	resolved := r.Resolve(style.LogicalStyle{
//	    "paddingStart": 20,
//	    "textAlign":    "start",
//	})
//	// {"paddingRight": 20, "textAlign": "right"}
//
// Direction can also be derived from content:
//
//	rtlkit.ForText("مرحبا").IsRTL() // true
//
// Direction is an explicit value carried by the [Resolver]; nothing in
// this module reads or polls ambient global state. Hosts with a native
// layout-direction flag integrate through [LayoutController], read
// once at startup via [FromController].
//
// For advanced use cases, the lower-level direction, style, icon,
// locale, and htmldir packages are also available.
package rtlkit

import (
	"github.com/tsawler/rtlkit/direction"
	"github.com/tsawler/rtlkit/locale"
)

// Re-exported directions, so common usage does not need to import the
// direction package.
const (
	LTR = direction.LTR
	RTL = direction.RTL
)

// For returns a Resolver carrying the given direction.
//
// Example:
//
//	r := rtlkit.For(rtlkit.RTL)
func For(d direction.Direction) *Resolver {
	return &Resolver{
		dir:     d,
		options: defaultOptions(),
	}
}

// ForLocale returns a Resolver whose direction is derived from a
// BCP 47 language tag. Malformed and unknown tags resolve to LTR.
//
// Example:
//
//	r := rtlkit.ForLocale("ar-SA")
func ForLocale(tag string) *Resolver {
	return For(locale.Direction(tag))
}

// ForText returns a Resolver whose direction is derived from string
// content: RTL if the text contains Arabic or Hebrew script, LTR
// otherwise.
//
// Example:
//
//	r := rtlkit.ForText(listing.Name)
func ForText(text string) *Resolver {
	return For(direction.Of(text))
}

// FromController returns a Resolver whose direction is read from the
// host layout controller once, at construction. The controller is
// retained only for the explicit ForceRTL/AllowRTL side effects; the
// direction itself is never re-read.
func FromController(c LayoutController) *Resolver {
	d := direction.LTR
	if c != nil && c.IsRTL() {
		d = direction.RTL
	}
	r := For(d)
	r.controller = c
	return r
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	mode := rtlkit.Must(loadMode())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
