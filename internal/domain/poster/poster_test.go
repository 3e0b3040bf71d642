package poster

import (
	"image"
	"image/color"
	"image/draw"
	"reflect"
	"testing"

	"github.com/biox-systems/biox-qr/pkg/fonts"
)

func grayQR(side int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{128, 128, 128, 255}), image.Point{}, draw.Src)
	return img
}

func TestComposeOmissionLaw(t *testing.T) {
	l := Default
	l.Title, l.Subtitle, l.Footer = "", "", ""
	l.Pad = 10

	canvas := Compose(l, grayQR(100))
	if got, want := canvas.Bounds().Dy(), 10+100+10; got != want {
		t.Errorf("height = %d, want %d (pad + qr + pad, no block gaps)", got, want)
	}
	if got, want := canvas.Bounds().Dx(), 100+2*10; got != want {
		t.Errorf("width = %d, want %d", got, want)
	}
}

func TestComposeHeightAdditive(t *testing.T) {
	const qrSide = 100
	l := Default
	l.Pad = 20
	l.Title, l.Subtitle, l.Footer = "Title", "", ""

	title := newBlock([]string{l.Title}, fonts.Face(l.TitleSize, true), l.Foreground, 0)
	want := 2*l.Pad + qrSide + title.height + l.TitleGap
	if got := Compose(l, grayQR(qrSide)).Bounds().Dy(); got != want {
		t.Errorf("title-only height = %d, want %d", got, want)
	}

	l.Footer = "short footer"
	footer := newBlock([]string{l.Footer}, fonts.Face(l.FooterSize, false), footerColor, l.LineGap)
	want += l.BlockGap + footer.height
	if got := Compose(l, grayQR(qrSide)).Bounds().Dy(); got != want {
		t.Errorf("title+footer height = %d, want %d", got, want)
	}
}

func TestComposeBackground(t *testing.T) {
	l := Default
	l.Title, l.Subtitle, l.Footer = "", "", ""
	l.Pad = 8
	l.Background = color.RGBA{0xee, 0xff, 0xee, 255}

	canvas := Compose(l, grayQR(40))
	want := color.RGBA{0xee, 0xff, 0xee, 255}
	for _, p := range []image.Point{
		{0, 0},
		{canvas.Bounds().Dx() - 1, 0},
		{0, canvas.Bounds().Dy() - 1},
		{canvas.Bounds().Dx() - 1, canvas.Bounds().Dy() - 1},
	} {
		if got := canvas.RGBAAt(p.X, p.Y); got != want {
			t.Errorf("corner %v = %v, want %v", p, got, want)
		}
	}
}

func TestComposeDrawsQRCentered(t *testing.T) {
	l := Default
	l.Title, l.Subtitle, l.Footer = "", "", ""
	l.Pad = 15

	canvas := Compose(l, grayQR(50))
	x := Center(canvas.Bounds().Dx(), 50)
	if got := canvas.RGBAAt(x, l.Pad); got != (color.RGBA{128, 128, 128, 255}) {
		t.Errorf("pixel at QR origin = %v, want gray", got)
	}
	if got := canvas.RGBAAt(x-1, l.Pad); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("pixel left of QR = %v, want background", got)
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		total, w, want int
	}{
		{100, 40, 30},
		{100, 100, 0},
		{101, 40, 30}, // odd difference floors: 1px right bias
		{7, 2, 2},
	}
	for _, tt := range tests {
		if got := Center(tt.total, tt.w); got != tt.want {
			t.Errorf("Center(%d, %d) = %d, want %d", tt.total, tt.w, got, tt.want)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"", 10, nil},
		{"one", 10, []string{"one"}},
		{"aa bb cc", 5, []string{"aa bb", "cc"}},
		{"aa bb cc", 8, []string{"aa bb cc"}},
		{"aa bb cc", 7, []string{"aa bb", "cc"}},
		{"longword tiny", 4, []string{"longword", "tiny"}},
		{"Biox Systems • AI QR Code Generator • 1994→2025", 50,
			[]string{"Biox Systems • AI QR Code Generator • 1994→2025"}},
		{"Biox Systems • AI QR Code Generator • 1994→2025", 20,
			[]string{"Biox Systems • AI QR", "Code Generator •", "1994→2025"}},
	}
	for _, tt := range tests {
		if got := Wrap(tt.text, tt.width); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Wrap(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestComposeTitleBandPresent(t *testing.T) {
	l := Default
	l.Subtitle, l.Footer = "", ""
	l.Title = "Biox Systems"
	l.Pad = 30

	canvas := Compose(l, grayQR(200))
	bg := color.RGBA{255, 255, 255, 255}
	found := false
	for y := 0; y < l.Pad+120 && !found; y++ {
		for x := 0; x < canvas.Bounds().Dx(); x++ {
			if canvas.RGBAAt(x, y) != bg {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no title pixels above the QR block")
	}
}
