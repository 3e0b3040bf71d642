package colorx

import (
	"image/color"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#000000", color.RGBA{0, 0, 0, 255}},
		{"#FFFFFF", color.RGBA{255, 255, 255, 255}},
		{"1a2b3c", color.RGBA{0x1a, 0x2b, 0x3c, 255}},
		{"#f0c", color.RGBA{0xff, 0x00, 0xcc, 255}},
		{"  #ABCdef ", color.RGBA{0xab, 0xcd, 0xef, 255}},
		{"black", color.RGBA{0, 0, 0, 255}},
		{"White", color.RGBA{255, 255, 255, 255}},
		{"navy", color.RGBA{0, 0, 0x80, 255}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "   ", "not-a-color", "#12345", "#gggggg", "#12", "#1234567"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", in)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, fallback, want string
	}{
		{"#FFAA00", "#000000", "#ffaa00"},
		{"fa0", "#000000", "#ffaa00"},
		{"navy", "#000000", "#000080"},
		{"not-a-color", "#000000", "#000000"},
		{"not-a-color", "#ffffff", "#ffffff"},
		{"", "#ffffff", "#ffffff"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in, tt.fallback); got != tt.want {
			t.Errorf("Normalize(%q, %q) = %q, want %q", tt.in, tt.fallback, got, tt.want)
		}
	}
}

func TestHex(t *testing.T) {
	if got := Hex(color.RGBA{R: 0x12, G: 0xab, B: 0xef, A: 255}); got != "#12abef" {
		t.Errorf("Hex = %q, want %q", got, "#12abef")
	}
}
