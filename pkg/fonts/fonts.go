package fonts

import (
	"os"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Candidate system fonts probed in order. Plain TTF files only; TTC
// collections are not supported by the loader.
var (
	regularFiles = []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
		"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
		"/System/Library/Fonts/Supplemental/Arial.ttf",
		"/Library/Fonts/Arial.ttf",
		"C:\\Windows\\Fonts\\arial.ttf",
	}
	boldFiles = []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
		"/usr/share/fonts/liberation/LiberationSans-Bold.ttf",
		"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
		"/Library/Fonts/Arial Bold.ttf",
		"C:\\Windows\\Fonts\\arialbd.ttf",
	}
)

// Face resolves a sans-serif face at the given point size, preferring
// installed system fonts over the embedded Go fonts. The final fallback is
// a fixed 7x13 bitmap face, so Face never fails: missing fonts degrade the
// output, never the run.
func Face(points float64, bold bool) font.Face {
	if points <= 0 {
		return basicfont.Face7x13
	}

	files, ttf := regularFiles, goregular.TTF
	if bold {
		files, ttf = boldFiles, gobold.TTF
	}

	for _, path := range files {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if face, err := gg.LoadFontFace(path, points); err == nil {
			return face
		}
	}

	if face := embedded(ttf, points); face != nil {
		return face
	}
	return basicfont.Face7x13
}

// embedded builds a face from one of the bundled Go font TTFs.
func embedded(ttf []byte, points float64) font.Face {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    points,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil
	}
	return face
}
