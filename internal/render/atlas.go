package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	atlasCols   = 16
)

// Glyph codes outside printable ASCII. The numbers follow CP437 so a
// buffer dump still reads sensibly in a DOS font.
const (
	GlyphLight  byte = 176 // ░
	GlyphMedium byte = 177 // ▒
	GlyphFull   byte = 219 // █
	GlyphSquare byte = 254 // ■
	GlyphHLine  byte = 196 // ─
	GlyphVLine  byte = 179 // │
	GlyphCornTL byte = 218 // ┌
	GlyphCornTR byte = 191 // ┐
	GlyphCornBL byte = 192 // └
	GlyphCornBR byte = 217 // ┘
)

// box line directions
const (
	lineW uint8 = 1 << iota
	lineE
	lineN
	lineS
)

var boxLines = map[byte]uint8{
	GlyphHLine:  lineW | lineE,
	GlyphVLine:  lineN | lineS,
	GlyphCornTL: lineE | lineS,
	GlyphCornTR: lineW | lineS,
	GlyphCornBL: lineE | lineN,
	GlyphCornBR: lineW | lineN,
}

// blockMasks light the pixels of the fill glyphs.
var blockMasks = map[byte]func(x, y int) bool{
	GlyphLight:  func(x, y int) bool { return (x+y)%4 == 0 },
	GlyphMedium: func(x, y int) bool { return (x+y)%2 == 0 },
	GlyphFull:   func(int, int) bool { return true },
	GlyphSquare: func(x, y int) bool { return x >= 4 && x < 12 && y >= 4 && y < 12 },
}

// FontAtlas is a 256-glyph sheet: basicfont for printable ASCII and
// hand-drawn box and block glyphs for the HUD.
type FontAtlas struct {
	glyphs [256]*ebiten.Image
}

func NewFontAtlas() *FontAtlas {
	img := image.NewNRGBA(image.Rect(0, 0, atlasCols*GlyphWidth, 256/atlasCols*GlyphHeight))

	for code := 0; code < 256; code++ {
		cx, cy := cellOrigin(byte(code))
		switch b := byte(code); {
		case b >= 32 && b <= 126:
			drawASCII(img, basicfont.Face7x13, cx, cy, rune(b))
		case boxLines[b] != 0:
			drawLines(img, cx, cy, boxLines[b])
		case blockMasks[b] != nil:
			drawMask(img, cx, cy, blockMasks[b])
		}
	}

	sheet := ebiten.NewImageFromImage(img)
	a := &FontAtlas{}
	for code := 0; code < 256; code++ {
		x, y := cellOrigin(byte(code))
		a.glyphs[code] = sheet.SubImage(image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)).(*ebiten.Image)
	}
	return a
}

// Glyph returns the sub-image for code.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	return a.glyphs[code]
}

func cellOrigin(code byte) (int, int) {
	return int(code) % atlasCols * GlyphWidth, int(code) / atlasCols * GlyphHeight
}

// basicfont glyphs are 7x13; the baseline sits 3px above the cell bottom.
func drawASCII(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX+4, cellY+13),
	}
	d.DrawString(string(r))
}

// drawLines draws 2px single-line box strokes from the cell centre.
func drawLines(img *image.NRGBA, cellX, cellY int, dirs uint8) {
	const mid = GlyphWidth/2 - 1
	drawMask(img, cellX, cellY, func(x, y int) bool {
		onRow := y == mid || y == mid+1
		onCol := x == mid || x == mid+1
		switch {
		case onRow && x <= mid+1 && dirs&lineW != 0:
			return true
		case onRow && x >= mid && dirs&lineE != 0:
			return true
		case onCol && y <= mid+1 && dirs&lineN != 0:
			return true
		case onCol && y >= mid && dirs&lineS != 0:
			return true
		}
		return false
	})
}

func drawMask(img *image.NRGBA, cellX, cellY int, lit func(x, y int) bool) {
	white := color.NRGBA{255, 255, 255, 255}
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if lit(x, y) {
				img.SetNRGBA(cellX+x, cellY+y, white)
			}
		}
	}
}
