package rtlkit

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/tsawler/rtlkit/direction"
	"github.com/tsawler/rtlkit/htmldir"
	"github.com/tsawler/rtlkit/icon"
	"github.com/tsawler/rtlkit/style"
)

func TestFor(t *testing.T) {
	tests := []struct {
		name string
		dir  direction.Direction
		rtl  bool
	}{
		{"LTR", LTR, false},
		{"RTL", RTL, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := For(tt.dir)
			if r.Direction() != tt.dir {
				t.Errorf("Direction() = %v, want %v", r.Direction(), tt.dir)
			}
			if r.IsRTL() != tt.rtl {
				t.Errorf("IsRTL() = %v, want %v", r.IsRTL(), tt.rtl)
			}
		})
	}
}

func TestForLocale(t *testing.T) {
	tests := []struct {
		tag string
		rtl bool
	}{
		{"ar", true},
		{"ar-SA", true},
		{"he-IL", true},
		{"en-US", false},
		{"fr", false},
		{"not a tag", false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := ForLocale(tt.tag).IsRTL(); got != tt.rtl {
				t.Errorf("ForLocale(%q).IsRTL() = %v, want %v", tt.tag, got, tt.rtl)
			}
		})
	}
}

func TestForText(t *testing.T) {
	tests := []struct {
		name string
		text string
		rtl  bool
	}{
		{"Arabic", "مرحبا", true},
		{"Hebrew", "שלום", true},
		{"English", "Hello", false},
		{"Mixed", "iPhone 15 جديد", true},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ForText(tt.text).IsRTL(); got != tt.rtl {
				t.Errorf("ForText(%q).IsRTL() = %v, want %v", tt.text, got, tt.rtl)
			}
		})
	}
}

func TestChainingReturnsNewInstance(t *testing.T) {
	r1 := For(RTL)
	r2 := r1.WithArabicTypography(style.ArabicTypography{FontFamily: "Amiri"})
	r3 := r2.WithAnnotateOptions(htmldir.Options{SetLang: false})

	if r1 == r2 || r2 == r3 || r1 == r3 {
		t.Error("chain methods should return new instances")
	}
	if r1.options.arabic.FontFamily != "System" {
		t.Errorf("original resolver was modified: fontFamily = %q", r1.options.arabic.FontFamily)
	}
	if r2.options.arabic.FontFamily != "Amiri" {
		t.Errorf("WithArabicTypography not applied: fontFamily = %q", r2.options.arabic.FontFamily)
	}
	if r3.options.annotate.SetLang {
		t.Error("WithAnnotateOptions not applied")
	}
	if r3.options.arabic.FontFamily != "Amiri" {
		t.Error("earlier configuration lost along the chain")
	}
}

func TestFlipped(t *testing.T) {
	if !For(LTR).Flipped().IsRTL() {
		t.Error("Flipped() of LTR should be RTL")
	}
	if For(RTL).Flipped().IsRTL() {
		t.Error("Flipped() of RTL should be LTR")
	}
}

func TestResolverResolve(t *testing.T) {
	r := For(RTL)
	got := r.Resolve(style.LogicalStyle{
		"paddingStart": 20,
		"textAlign":    "start",
	})
	want := style.PhysicalStyle{
		"paddingRight": 20,
		"textAlign":    "right",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %v, want %v", got, want)
	}
}

func TestResolverSideHelpers(t *testing.T) {
	r := For(RTL)

	tests := []struct {
		name string
		got  style.PhysicalStyle
		want style.PhysicalStyle
	}{
		{"PaddingStart", r.PaddingStart(16), style.PhysicalStyle{"paddingRight": 16}},
		{"PaddingEnd", r.PaddingEnd(8), style.PhysicalStyle{"paddingLeft": 8}},
		{"MarginStart", r.MarginStart(4), style.PhysicalStyle{"marginRight": 4}},
		{"MarginEnd", r.MarginEnd(12), style.PhysicalStyle{"marginLeft": 12}},
		{"PositionStart", r.PositionStart(0), style.PhysicalStyle{"right": 0}},
		{"PositionEnd", r.PositionEnd(0), style.PhysicalStyle{"left": 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestResolverTextHelpers(t *testing.T) {
	r := For(RTL)
	if got := r.TextAlign("start"); got != "right" {
		t.Errorf("TextAlign(start) = %q, want right", got)
	}
	if got := r.FlexDirection("row"); got != "row-reverse" {
		t.Errorf("FlexDirection(row) = %q, want row-reverse", got)
	}
	if got := r.SlideFrom("end"); got != "left" {
		t.Errorf("SlideFrom(end) = %q, want left", got)
	}
}

func TestResolverIcon(t *testing.T) {
	r := For(RTL)

	tr := r.IconTransform(icon.Directional)
	if !tr.ShouldFlip {
		t.Error("directional icon should flip under RTL")
	}
	if len(tr.Transform) != 1 || tr.Transform[0].ScaleX != -1 {
		t.Errorf("unexpected transform %v", tr.Transform)
	}

	if r.IconTransform(icon.Neutral).ShouldFlip {
		t.Error("neutral icon should not flip")
	}

	styled := r.IconStyle(icon.Directional, style.PhysicalStyle{"width": 24})
	if styled["width"] != 24 {
		t.Error("base style lost")
	}
	if _, ok := styled["transform"]; !ok {
		t.Error("flip transform missing")
	}
}

func TestResolverArabicText(t *testing.T) {
	r := For(RTL).WithArabicTypography(style.ArabicTypography{
		FontFamily:    "Amiri",
		LetterSpacing: 0,
	})

	got := r.ArabicText(style.PhysicalStyle{"fontSize": 16})
	if got["fontFamily"] != "Amiri" {
		t.Errorf("fontFamily = %v, want Amiri", got["fontFamily"])
	}
	if got["fontSize"] != 16 {
		t.Error("base style lost")
	}
	if got["textAlign"] != "right" {
		t.Errorf("textAlign = %v, want right", got["textAlign"])
	}

	// Overrides win over the overlay.
	got = r.ArabicText(nil, style.PhysicalStyle{"textAlign": "center"})
	if got["textAlign"] != "center" {
		t.Errorf("override lost: textAlign = %v", got["textAlign"])
	}
}

func TestResolverAccessibleProps(t *testing.T) {
	props := For(RTL).AccessibleProps("مرحبا")
	if props.Language != "ar" {
		t.Errorf("Language = %q, want ar", props.Language)
	}

	props = For(LTR).AccessibleProps("Hello")
	if props.Language != "en" {
		t.Errorf("Language = %q, want en", props.Language)
	}
}

func TestResolverAnnotateHTML(t *testing.T) {
	var buf bytes.Buffer
	warnings, err := For(RTL).AnnotateHTML(strings.NewReader("<p>مرحبا بالعالم</p>"), &buf)
	if err != nil {
		t.Fatalf("AnnotateHTML failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if !strings.Contains(buf.String(), `dir="rtl"`) {
		t.Errorf("output missing dir attribute: %s", buf.String())
	}
}

func TestFromController(t *testing.T) {
	c := NewStaticController(true)
	r := FromController(c)
	if !r.IsRTL() {
		t.Error("resolver should read RTL from controller")
	}

	// The direction is read once at construction.
	if err := r.ForceRTL(false); err != nil {
		t.Fatalf("ForceRTL failed: %v", err)
	}
	c.Restart()
	if c.IsRTL() {
		t.Error("controller should be LTR after restart")
	}
	if !r.IsRTL() {
		t.Error("existing resolver direction must not change")
	}

	if got := FromController(c).IsRTL(); got {
		t.Error("new resolver should observe the restarted direction")
	}
}

func TestFromControllerNil(t *testing.T) {
	r := FromController(nil)
	if r.IsRTL() {
		t.Error("nil controller should default to LTR")
	}
	if err := r.ForceRTL(true); !errors.Is(err, ErrNoController) {
		t.Errorf("ForceRTL error = %v, want ErrNoController", err)
	}
}

func TestForceRTLWithoutController(t *testing.T) {
	if err := For(RTL).AllowRTL(false); !errors.Is(err, ErrNoController) {
		t.Errorf("AllowRTL error = %v, want ErrNoController", err)
	}
}

func TestStaticControllerAllowRTL(t *testing.T) {
	c := NewStaticController(false)

	if err := c.AllowRTL(false); err != nil {
		t.Fatal(err)
	}
	if err := c.ForceRTL(true); err != nil {
		t.Fatal(err)
	}
	c.Restart()
	if c.IsRTL() {
		t.Error("disallowed RTL should not take effect")
	}

	if err := c.AllowRTL(true); err != nil {
		t.Fatal(err)
	}
	if err := c.ForceRTL(true); err != nil {
		t.Fatal(err)
	}
	c.Restart()
	if !c.IsRTL() {
		t.Error("allowed RTL should take effect after restart")
	}
}

func TestMust(t *testing.T) {
	if got := Must("ok", nil); got != "ok" {
		t.Errorf("Must returned %q", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Must should panic on error")
		}
	}()
	Must(0, errors.New("boom"))
}
