package colorx

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Parse resolves s into an opaque color. Accepted forms are "#rgb" and
// "#rrggbb" hex (case-insensitive, leading "#" optional) and the SVG 1.1
// color names ("black", "white", "navy", ...).
func Parse(s string) (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return color.RGBA{}, fmt.Errorf("empty color")
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(name, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}

	r, err1 := strconv.ParseUint(hex[0:2], 16, 8)
	g, err2 := strconv.ParseUint(hex[2:4], 16, 8)
	b, err3 := strconv.ParseUint(hex[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}

	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}, nil
}

// Normalize canonicalizes s to lowercase "#rrggbb". Unparseable input
// returns fallback unchanged: color errors are recoverable by contract.
func Normalize(s, fallback string) string {
	c, err := Parse(s)
	if err != nil {
		return fallback
	}
	return Hex(c)
}

// Hex formats c as lowercase "#rrggbb".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
