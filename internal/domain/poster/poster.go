package poster

import (
	"image"
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/biox-systems/biox-qr/pkg/fonts"
)

// Secondary text colors from the house style; the title uses the layout's
// foreground so it always matches the QR modules.
var (
	subtitleColor = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	footerColor   = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 255}
)

// Layout describes one poster: the three optional text blocks around the QR
// bitmap and the spacing between them. An empty text omits its block
// entirely, including the gap it would add. Values are fixed once built;
// each invocation constructs a fresh Layout.
type Layout struct {
	Title    string
	Subtitle string
	Footer   string

	Background color.Color // page fill, normally the QR light color
	Foreground color.Color // title text, normally the QR dark color

	Pad      int // outer padding, top/bottom/left/right
	TitleGap int // below the title
	BlockGap int // around the QR block
	LineGap  int // between wrapped footer lines

	WrapWidth int // footer soft-wrap width in characters

	TitleSize    float64 // points
	SubtitleSize float64
	FooterSize   float64
}

// Default carries the stock branding geometry.
var Default = Layout{
	Background:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
	Foreground:   color.RGBA{R: 0, G: 0, B: 0, A: 255},
	Pad:          80,
	TitleGap:     8,
	BlockGap:     24,
	LineGap:      4,
	WrapWidth:    50,
	TitleSize:    72,
	SubtitleSize: 36,
	FooterSize:   28,
}

// block is one measured run of text lines sharing a face and color.
type block struct {
	lines  []string
	face   font.Face
	color  color.Color
	lineH  int
	height int // all lines plus inner line gaps
}

// newBlock measures text against the face that will later draw it, so the
// allocated canvas height matches the draw pass exactly.
func newBlock(lines []string, face font.Face, c color.Color, lineGap int) block {
	m := face.Metrics()
	lineH := (m.Ascent + m.Descent).Ceil()
	gaps := len(lines) - 1
	if gaps < 0 {
		gaps = 0
	}
	return block{
		lines:  lines,
		face:   face,
		color:  c,
		lineH:  lineH,
		height: len(lines)*lineH + gaps*lineGap,
	}
}

// Compose lays the poster out as a vertical stack: title, subtitle, QR,
// footer, each centered horizontally, and returns the flattened canvas.
// The canvas width is the QR width plus two pads; the height is additive
// over the blocks that are actually present.
func Compose(l Layout, qrImg image.Image) *image.RGBA {
	if l.Background == nil {
		l.Background = Default.Background
	}
	if l.Foreground == nil {
		l.Foreground = Default.Foreground
	}

	qrW := qrImg.Bounds().Dx()
	qrH := qrImg.Bounds().Dy()
	width := qrW + 2*l.Pad

	var title, subtitle, footer block
	height := 2*l.Pad + qrH
	if l.Title != "" {
		title = newBlock([]string{l.Title}, fonts.Face(l.TitleSize, true), l.Foreground, 0)
		height += title.height + l.TitleGap
	}
	if l.Subtitle != "" {
		subtitle = newBlock([]string{l.Subtitle}, fonts.Face(l.SubtitleSize, false), subtitleColor, 0)
		height += subtitle.height + l.BlockGap
	}
	if l.Footer != "" {
		footer = newBlock(Wrap(l.Footer, l.WrapWidth), fonts.Face(l.FooterSize, false), footerColor, l.LineGap)
		height += l.BlockGap + footer.height
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(l.Background)
	dc.Clear()

	y := l.Pad
	if l.Title != "" {
		y = drawBlock(dc, title, width, y, l.LineGap)
		y += l.TitleGap
	}
	if l.Subtitle != "" {
		y = drawBlock(dc, subtitle, width, y, l.LineGap)
		y += l.BlockGap
	}
	dc.DrawImage(qrImg, Center(width, qrW), y)
	y += qrH
	if l.Footer != "" {
		y += l.BlockGap
		drawBlock(dc, footer, width, y, l.LineGap)
	}

	return dc.Image().(*image.RGBA)
}

// drawBlock renders each line centered at the measured width and returns
// the y just below the block.
func drawBlock(dc *gg.Context, b block, width, y, lineGap int) int {
	dc.SetFontFace(b.face)
	dc.SetColor(b.color)
	ascent := b.face.Metrics().Ascent.Ceil()
	for i, line := range b.lines {
		if i > 0 {
			y += lineGap
		}
		w := font.MeasureString(b.face, line).Ceil()
		dc.DrawString(line, float64(Center(width, w)), float64(y+ascent))
		y += b.lineH
	}
	return y
}

// Center returns the left offset that centers an element of width w inside
// total. Floor division: odd differences bias one pixel right.
func Center(total, w int) int {
	return (total - w) / 2
}

// Wrap splits text into lines of at most width characters using a greedy
// word fill: a word joins the current line if the line would stay within
// width, else it starts a new one. The count is runes, not rendered pixels,
// so line widths come out uneven across scripts; that is accepted behavior.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	lines := []string{words[0]}
	for _, word := range words[1:] {
		current := lines[len(lines)-1]
		if utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) <= width {
			lines[len(lines)-1] = current + " " + word
		} else {
			lines = append(lines, word)
		}
	}
	return lines
}
