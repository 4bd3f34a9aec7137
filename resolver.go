package rtlkit

import (
	"io"

	"github.com/tsawler/rtlkit/direction"
	"github.com/tsawler/rtlkit/htmldir"
	"github.com/tsawler/rtlkit/icon"
	"github.com/tsawler/rtlkit/style"
)

// Resolver resolves logical style intents against a fixed direction.
// Each configuration method returns a new Resolver instance, making it
// safe for concurrent use and allowing method chaining.
type Resolver struct {
	// Direction context
	dir direction.Direction

	// Host layout-direction control, only set by FromController
	controller LayoutController

	// Configuration
	options resolveOptions
}

// clone creates a shallow copy of the Resolver with a copy of options.
// This ensures immutability - each chain method returns a new instance.
func (r *Resolver) clone() *Resolver {
	return &Resolver{
		dir:        r.dir,
		controller: r.controller,
		options:    r.options.clone(),
	}
}

// ============================================================================
// Configuration Methods (return new Resolver instance)
// ============================================================================

// WithArabicTypography configures the typography overlay applied by
// ArabicText.
//
// Example:
//
//	r := rtlkit.ForLocale("ar").
//	    WithArabicTypography(style.ArabicTypography{FontFamily: "Amiri"})
func (r *Resolver) WithArabicTypography(t style.ArabicTypography) *Resolver {
	newRes := r.clone()
	newRes.options.arabic = t
	return newRes
}

// WithAnnotateOptions configures HTML annotation performed by
// AnnotateHTML.
func (r *Resolver) WithAnnotateOptions(opts htmldir.Options) *Resolver {
	newRes := r.clone()
	newRes.options.annotate = opts
	return newRes
}

// Flipped returns a Resolver for the opposite direction.
func (r *Resolver) Flipped() *Resolver {
	newRes := r.clone()
	newRes.dir = r.dir.Flip()
	return newRes
}

// ============================================================================
// Queries
// ============================================================================

// Direction returns the direction this Resolver carries.
func (r *Resolver) Direction() direction.Direction {
	return r.dir
}

// IsRTL reports whether the carried direction is RTL.
func (r *Resolver) IsRTL() bool {
	return r.dir.IsRTL()
}

// Resolve translates every logical key in the style into its physical
// equivalent. See [style.Resolve].
//
// Example:
//
//	r.Resolve(style.LogicalStyle{"marginEnd": 8, "flexDirection": "row"})
func (r *Resolver) Resolve(logical style.LogicalStyle) style.PhysicalStyle {
	return style.Resolve(logical, r.dir)
}

// Merge shallow-merges two resolved styles; override wins.
func (r *Resolver) Merge(base, override style.PhysicalStyle) style.PhysicalStyle {
	return style.Merge(base, override)
}

// TextAlign resolves a logical text alignment value.
func (r *Resolver) TextAlign(logical string) string {
	return style.TextAlign(logical, r.dir)
}

// FlexDirection resolves a logical flex direction value.
func (r *Resolver) FlexDirection(logical string) string {
	return style.FlexDirection(logical, r.dir)
}

// SlideFrom resolves a logical slide (animation entry) direction.
func (r *Resolver) SlideFrom(logical string) string {
	return style.SlideFrom(logical, r.dir)
}

// PaddingStart returns the physical padding style for the leading edge.
func (r *Resolver) PaddingStart(v any) style.PhysicalStyle {
	return style.PaddingStart(v, r.dir)
}

// PaddingEnd returns the physical padding style for the trailing edge.
func (r *Resolver) PaddingEnd(v any) style.PhysicalStyle {
	return style.PaddingEnd(v, r.dir)
}

// MarginStart returns the physical margin style for the leading edge.
func (r *Resolver) MarginStart(v any) style.PhysicalStyle {
	return style.MarginStart(v, r.dir)
}

// MarginEnd returns the physical margin style for the trailing edge.
func (r *Resolver) MarginEnd(v any) style.PhysicalStyle {
	return style.MarginEnd(v, r.dir)
}

// PositionStart returns the physical position style for the leading
// edge.
func (r *Resolver) PositionStart(v any) style.PhysicalStyle {
	return style.PositionStart(v, r.dir)
}

// PositionEnd returns the physical position style for the trailing
// edge.
func (r *Resolver) PositionEnd(v any) style.PhysicalStyle {
	return style.PositionEnd(v, r.dir)
}

// IconTransform returns the mirroring decision for an icon kind.
func (r *Resolver) IconTransform(k icon.Kind) icon.Transform {
	return icon.GetTransform(k, r.dir)
}

// IconStyle merges base with a horizontal flip transform when an icon
// of kind k mirrors under the carried direction.
func (r *Resolver) IconStyle(k icon.Kind, base style.PhysicalStyle) style.PhysicalStyle {
	return icon.Style(k, base, r.dir)
}

// ArabicText overlays the configured Arabic typography on base.
// Explicit overrides win.
func (r *Resolver) ArabicText(base style.PhysicalStyle, overrides ...style.PhysicalStyle) style.PhysicalStyle {
	return style.ArabicTextStyleWith(r.options.arabic, base, overrides...)
}

// AccessibleProps returns accessibility attributes for text content.
func (r *Resolver) AccessibleProps(text string) style.AccessibilityProps {
	return style.AccessibleProps(text)
}

// AnnotateHTML parses HTML from rd, annotates RTL content with dir
// attributes, and renders the result to w. See [htmldir.Annotate].
//
// Example:
//
//	warnings, err := r.AnnotateHTML(in, out)
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", htmldir.FormatWarnings(warnings))
//	}
func (r *Resolver) AnnotateHTML(rd io.Reader, w io.Writer) ([]htmldir.Warning, error) {
	return htmldir.Annotate(rd, w, r.options.annotate)
}

// ============================================================================
// Host layout control (side effects)
// ============================================================================

// ForceRTL asks the host platform to force the layout direction. The
// change follows platform restart semantics and does not alter this
// Resolver's carried direction. Returns ErrNoController when the
// Resolver was not built with FromController.
func (r *Resolver) ForceRTL(enable bool) error {
	if r.controller == nil {
		return ErrNoController
	}
	return r.controller.ForceRTL(enable)
}

// AllowRTL asks the host platform to honor (or ignore) RTL layout.
// Same delegation semantics as ForceRTL.
func (r *Resolver) AllowRTL(allow bool) error {
	if r.controller == nil {
		return ErrNoController
	}
	return r.controller.AllowRTL(allow)
}
