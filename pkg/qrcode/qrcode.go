package qr

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/skip2/go-qrcode"
)

// Config describes a single QR render: the content to encode, the target
// pixel width, the quiet-zone width in modules and the two module colors.
// Recovery is pinned to the highest level so a centered logo can obscure
// part of the symbol without breaking scans.
type Config struct {
	Content    string
	TargetSize int // requested pixel width; the render never exceeds it
	Border     int // quiet-zone width in modules
	Foreground color.Color
	Background color.Color
	LogoPath   string // optional logo composited at the center
}

// Modules returns the module grid dimension the encoder picks for content
// in automatic-version mode, without the quiet zone.
func Modules(content string) (int, error) {
	code, err := qrcode.New(content, qrcode.Highest)
	if err != nil {
		return 0, fmt.Errorf("encode qr content: %w", err)
	}
	// Bitmap() would otherwise include the encoder's fixed 4-module border
	code.DisableBorder = true
	return len(code.Bitmap()), nil
}

// BoxSize returns the pixels-per-module scale for a target width:
// target / (modules + 2*border), floored, never below 1.
func BoxSize(target, modules, border int) int {
	box := target / (modules + 2*border)
	if box < 1 {
		box = 1
	}
	return box
}

// Render encodes the content and draws the two-tone symbol at an exact
// integer multiple of the module grid, surrounded by Border quiet-zone
// modules. The rendered width is (modules + 2*Border) * BoxSize(...); the
// symbol is never resampled after drawing, so module edges stay sharp. A
// configured LogoPath is embedded last.
func (c Config) Render() (*image.RGBA, error) {
	if c.Foreground == nil {
		c.Foreground = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	}
	if c.Background == nil {
		c.Background = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	if c.Border < 0 {
		c.Border = 0
	}

	modules, err := Modules(c.Content)
	if err != nil {
		return nil, err
	}
	box := BoxSize(c.TargetSize, modules, c.Border)

	code, err := qrcode.New(c.Content, qrcode.Highest)
	if err != nil {
		return nil, fmt.Errorf("encode qr content: %w", err)
	}
	// The quiet zone is drawn below at Border modules, not the encoder's
	// hardwired 4.
	code.DisableBorder = true
	code.ForegroundColor = c.Foreground
	code.BackgroundColor = c.Background

	// A negative size renders each module at exactly box pixels.
	symbol := code.Image(-box)

	total := (modules + 2*c.Border) * box
	img := image.NewRGBA(image.Rect(0, 0, total, total))
	draw.Draw(img, img.Bounds(), image.NewUniform(c.Background), image.Point{}, draw.Src)

	offset := c.Border * box
	symbolRect := symbol.Bounds().Add(image.Pt(offset, offset))
	draw.Draw(img, symbolRect, symbol, symbol.Bounds().Min, draw.Over)

	if c.LogoPath != "" {
		return EmbedLogo(img, c.LogoPath)
	}
	return img, nil
}
