// Package htmldir annotates HTML with text-direction attributes.
package htmldir

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/rtlkit/direction"
	"github.com/tsawler/rtlkit/locale"
)

// annotatable is the set of elements that receive dir attributes when
// their text content reads right-to-left. Inline elements inherit from
// these, so annotating the block level is sufficient.
var annotatable = map[string]bool{
	"p": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true,
	"li": true, "dt": true, "dd": true,
	"td": true, "th": true, "caption": true,
	"blockquote": true, "figcaption": true,
	"title": true, "label": true, "option": true,
}

// Options configures annotation.
type Options struct {
	// SetLang adds lang="ar" to elements whose content is Arabic and
	// that carry no explicit lang attribute.
	SetLang bool
}

// DefaultOptions returns the default annotation options.
func DefaultOptions() Options {
	return Options{SetLang: true}
}

// Annotate parses HTML from r, sets dir="rtl" on block-level elements
// whose text content contains Arabic or Hebrew script, and renders the
// annotated document to w.
//
// Elements with an explicit dir attribute are left untouched; a
// [Warning] is recorded when content detection disagrees with the
// declared direction. Returns the warnings and any parse or render
// error.
func Annotate(r io.Reader, w io.Writer, opts Options) ([]Warning, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var warnings []Warning
	annotateNode(doc, opts, &warnings)

	if err := html.Render(w, doc); err != nil {
		return warnings, fmt.Errorf("rendering HTML: %w", err)
	}
	return warnings, nil
}

// AnnotateFile annotates the HTML file at inPath and writes the result
// to outPath.
func AnnotateFile(inPath, outPath string, opts Options) ([]Warning, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("creating file: %w", err)
	}
	defer out.Close()

	return Annotate(in, out, opts)
}

// annotateNode walks the tree and annotates qualifying elements.
func annotateNode(n *html.Node, opts Options, warnings *[]Warning) {
	if n.Type == html.ElementNode && annotatable[n.Data] {
		annotateElement(n, opts, warnings)
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		annotateNode(c, opts, warnings)
	}
}

// annotateElement applies direction (and optionally language)
// attributes to a single element based on its text content.
func annotateElement(n *html.Node, opts Options, warnings *[]Warning) {
	text := textContent(n)
	if strings.TrimSpace(text) == "" {
		return
	}

	detected := direction.Of(text)

	if explicit, ok := attr(n, "dir"); ok {
		// Explicit author intent wins; flag the disagreement only.
		if explicit != detected.String() && (explicit == "ltr" || explicit == "rtl") {
			*warnings = append(*warnings, Warning{
				Code: WarnDirMismatch,
				Message: fmt.Sprintf("<%s> declares dir=%q but content reads %s",
					n.Data, explicit, detected),
			})
		}
		return
	}

	if detected != direction.RTL {
		return
	}

	setAttr(n, "dir", "rtl")

	if opts.SetLang && direction.ContainsArabic(text) {
		if _, ok := attr(n, "lang"); !ok {
			setAttr(n, "lang", "ar")
		}
	}
}

// Attributes returns the lang and dir attribute pair for a BCP 47
// language tag, suitable for a document root element.
func Attributes(tag string) map[string]string {
	return map[string]string{
		"lang": tag,
		"dir":  locale.Direction(tag).String(),
	}
}

// textContent extracts all text content from a node and its children.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return sb.String()
}

// attr returns the value of the named attribute, if present.
func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// setAttr sets an attribute, replacing any existing value.
func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
