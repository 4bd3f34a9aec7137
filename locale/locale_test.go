package locale

import (
	"testing"

	"github.com/tsawler/rtlkit/direction"
)

func TestDirection(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want direction.Direction
	}{
		{"Arabic", "ar", direction.RTL},
		{"Arabic regional", "ar-SA", direction.RTL},
		{"Hebrew", "he", direction.RTL},
		{"Hebrew regional", "he-IL", direction.RTL},
		{"Persian", "fa", direction.RTL},
		{"Urdu", "ur", direction.RTL},
		{"Dhivehi", "dv", direction.RTL},
		{"Yiddish", "yi", direction.RTL},
		{"English", "en", direction.LTR},
		{"English regional", "en-GB", direction.LTR},
		{"German", "de", direction.LTR},
		{"Japanese", "ja", direction.LTR},
		{"empty tag", "", direction.LTR},
		{"malformed tag", "!!not-a-tag!!", direction.LTR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Direction(tt.tag); got != tt.want {
				t.Errorf("Direction(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestIsRTL(t *testing.T) {
	if !IsRTL("ar") {
		t.Error("ar should be RTL")
	}
	if IsRTL("en") {
		t.Error("en should not be RTL")
	}
}

func TestLookup(t *testing.T) {
	cfg, ok := Lookup("ar-EG")
	if !ok {
		t.Fatal("expected lookup hit for ar-EG via base language")
	}
	if cfg.Code != "ar" || cfg.Direction != direction.RTL {
		t.Errorf("unexpected config: %+v", cfg)
	}

	if _, ok := Lookup("xx-notreal"); ok {
		t.Error("expected lookup miss for unknown language")
	}
}

func TestConvertDigits(t *testing.T) {
	tests := []struct {
		name string
		in   string
		tag  string
		want string
	}{
		{"Arabic digits", "123", "ar", "١٢٣"},
		{"Persian digits", "0459", "fa", "۰۴۵۹"},
		{"Urdu regional", "77", "ur-PK", "۷۷"},
		{"mixed content", "Tel: 555-0199", "ar", "Tel: ٥٥٥-٠١٩٩"},
		{"Hebrew keeps Western digits", "123", "he", "123"},
		{"English unchanged", "123", "en", "123"},
		{"unknown language unchanged", "123", "zz", "123"},
		{"empty string", "", "ar", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConvertDigits(tt.in, tt.tag); got != tt.want {
				t.Errorf("ConvertDigits(%q, %q) = %q, want %q", tt.in, tt.tag, got, tt.want)
			}
		})
	}
}
