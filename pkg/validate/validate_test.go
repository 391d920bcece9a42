package validate

import (
	"strings"
	"testing"
)

func TestRequiredString(t *testing.T) {
	if err := RequiredString("value", "field"); err != nil {
		t.Errorf("RequiredString() error = %v, want nil", err)
	}

	err := RequiredString("", "text.title")
	if err == nil || err.Error() != "text.title is required" {
		t.Errorf("RequiredString() error = %v, want required-field error", err)
	}
}

func TestRequiredSlice(t *testing.T) {
	if err := RequiredSlice([]string{"rsvg"}, "field"); err != nil {
		t.Errorf("RequiredSlice() error = %v, want nil", err)
	}

	if err := RequiredSlice(nil, "render.backends"); err == nil {
		t.Error("RequiredSlice() expected error for empty slice")
	}
}

func TestPositiveInt(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"positive", 540, false},
		{"one", 1, false},
		{"zero", 0, true},
		{"negative", -380, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PositiveInt(tt.value, "canvas.width")
			if (err != nil) != tt.wantErr {
				t.Errorf("PositiveInt(%d) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"six digit", "#fafafa", false},
		{"three digit", "#abc", false},
		{"uppercase", "#FAFAFA", false},
		{"missing hash", "fafafa", true},
		{"wrong length", "#fafaf", true},
		{"non-hex chars", "#gggggg", true},
		{"empty", "", true},
		{"named color", "white", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := HexColor(tt.value, "palette.background")
			if (err != nil) != tt.wantErr {
				t.Errorf("HexColor(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestOneOf(t *testing.T) {
	allowed := []string{"rsvg", "inkscape"}

	if err := OneOf("rsvg", allowed, "field"); err != nil {
		t.Errorf("OneOf() error = %v, want nil", err)
	}

	err := OneOf("gimp", allowed, "render.backends")
	if err == nil || !strings.Contains(err.Error(), "gimp") {
		t.Errorf("OneOf() error = %v, want invalid-value error naming gimp", err)
	}
}

func TestAllOneOf(t *testing.T) {
	allowed := []string{"rsvg", "inkscape", "quicklook", "imagemagick", "builtin"}

	if err := AllOneOf([]string{"rsvg", "builtin"}, allowed, "render.backends"); err != nil {
		t.Errorf("AllOneOf() error = %v, want nil", err)
	}

	err := AllOneOf([]string{"rsvg", "gimp"}, allowed, "render.backends")
	if err == nil || !strings.Contains(err.Error(), "gimp") {
		t.Errorf("AllOneOf() error = %v, want invalid-value error naming gimp", err)
	}
}
