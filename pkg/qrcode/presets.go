package qr

import "image/color"

// Biox is the stock house styling: black modules on white at print size.
var Biox = Config{
	TargetSize: 1024,
	Border:     4,
	Foreground: color.RGBA{R: 0, G: 0, B: 0, A: 255},
	Background: color.RGBA{R: 255, G: 255, B: 255, A: 255},
}
