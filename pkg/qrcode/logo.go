package qr

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"

	// logo formats beyond the png/jpeg decoders gg registers
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// logoFrac caps the logo at this share of the QR's shorter side; the
// highest recovery level tolerates the obscured area.
const logoFrac = 0.18

// EmbedLogo composites the image at path onto the center of qrImg over a
// rounded near-opaque white plate. An empty or missing path is a no-op, an
// unreadable file is an error. The returned bitmap reuses qrImg's pixels,
// so callers should treat the input as consumed.
func EmbedLogo(qrImg *image.RGBA, path string) (*image.RGBA, error) {
	if path == "" {
		return qrImg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return qrImg, nil
	}

	logo, err := gg.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("decode logo %s: %w", path, err)
	}

	bounds := qrImg.Bounds()
	shorter := bounds.Dx()
	if bounds.Dy() < shorter {
		shorter = bounds.Dy()
	}
	maxSide := int(logoFrac * float64(shorter))

	// Thumbnail preserves the aspect ratio and never upscales.
	thumb := resize.Thumbnail(uint(maxSide), uint(maxSide), logo, resize.Lanczos3)
	thumbW := thumb.Bounds().Dx()
	thumbH := thumb.Bounds().Dy()

	plate := backingPlate(thumbW, thumbH)
	plateW := plate.Bounds().Dx()
	plateH := plate.Bounds().Dy()

	px := (bounds.Dx() - plateW) / 2
	py := (bounds.Dy() - plateH) / 2
	draw.Draw(qrImg, image.Rect(px, py, px+plateW, py+plateH), plate, plate.Bounds().Min, draw.Over)

	lx := (bounds.Dx() - thumbW) / 2
	ly := (bounds.Dy() - thumbH) / 2
	draw.Draw(qrImg, image.Rect(lx, ly, lx+thumbW, ly+thumbH), thumb, thumb.Bounds().Min, draw.Over)

	return qrImg, nil
}

// backingPlate draws the rounded contrast plate behind a logoW x logoH
// logo: a proportional pad of at least 4px and a corner radius of a fifth
// of the plate's shorter side, filled white at alpha 235.
func backingPlate(logoW, logoH int) image.Image {
	pad := logoW / 12
	if logoH > logoW {
		pad = logoH / 12
	}
	if pad < 4 {
		pad = 4
	}

	w := logoW + 2*pad
	h := logoH + 2*pad
	shorter := w
	if h < shorter {
		shorter = h
	}

	dc := gg.NewContext(w, h)
	dc.SetRGBA255(255, 255, 255, 235)
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), float64(shorter)/5)
	dc.Fill()
	return dc.Image()
}
