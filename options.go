package rtlkit

import (
	"github.com/tsawler/rtlkit/htmldir"
	"github.com/tsawler/rtlkit/style"
)

// resolveOptions holds configuration for a Resolver.
type resolveOptions struct {
	arabic   style.ArabicTypography
	annotate htmldir.Options
}

// defaultOptions returns the default resolver options.
func defaultOptions() resolveOptions {
	return resolveOptions{
		arabic:   style.DefaultArabicTypography(),
		annotate: htmldir.DefaultOptions(),
	}
}

// clone creates a copy of resolveOptions. All fields are value types,
// so a plain copy is a deep copy.
func (o resolveOptions) clone() resolveOptions {
	return o
}
