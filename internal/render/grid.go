package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Cell is one character cell of the HUD.
type Cell struct {
	Glyph byte
	FG    uint8 // palette index
	BG    uint8
}

var blank = Cell{Glyph: ' ', FG: ColorWhite, BG: ColorBlack}

// CellBuffer is the HUD's character grid, redrawn from scratch each frame.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

func (b *CellBuffer) inside(x, y int) bool {
	return x >= 0 && x < b.Cols && y >= 0 && y < b.Rows
}

// Set writes one cell. Writes off the grid are dropped.
func (b *CellBuffer) Set(x, y int, glyph byte, fg, bg uint8) {
	if b.inside(x, y) {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// Get returns the cell at (x, y), or the zero Cell off the grid.
func (b *CellBuffer) Get(x, y int) Cell {
	if b.inside(x, y) {
		return b.Cells[y*b.Cols+x]
	}
	return Cell{}
}

func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = blank
	}
}

// WriteString writes s from (x, y) and returns the number of cells used.
// Runes past Latin-1 print as '?'.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg uint8) int {
	n := 0
	for _, ch := range s {
		if ch > 255 {
			ch = '?'
		}
		b.Set(x+n, y, byte(ch), fg, bg)
		n++
	}
	return n
}

// WriteCentered writes s centred on column cx.
func (b *CellBuffer) WriteCentered(cx, y int, s string, fg, bg uint8) {
	b.WriteString(cx-len(s)/2, y, s, fg, bg)
}

// Box outlines a w x h rectangle with single lines. Boxes smaller than
// 2x2 are not drawn.
func (b *CellBuffer) Box(x, y, w, h int, fg uint8) {
	if w < 2 || h < 2 {
		return
	}
	right, bottom := x+w-1, y+h-1
	for i := x + 1; i < right; i++ {
		b.Set(i, y, GlyphHLine, fg, ColorBlack)
		b.Set(i, bottom, GlyphHLine, fg, ColorBlack)
	}
	for j := y + 1; j < bottom; j++ {
		b.Set(x, j, GlyphVLine, fg, ColorBlack)
		b.Set(right, j, GlyphVLine, fg, ColorBlack)
	}
	b.Set(x, y, GlyphCornTL, fg, ColorBlack)
	b.Set(right, y, GlyphCornTR, fg, ColorBlack)
	b.Set(x, bottom, GlyphCornBL, fg, ColorBlack)
	b.Set(right, bottom, GlyphCornBR, fg, ColorBlack)
}

// GridRenderer draws a CellBuffer and free-floating markers to the screen.
type GridRenderer struct {
	Atlas  *FontAtlas
	CellW  int
	CellH  int
	scaleX float64
	scaleY float64
	pixel  *ebiten.Image // 1x1 white, scaled for backgrounds
}

func NewGridRenderer(atlas *FontAtlas, cellW, cellH int) *GridRenderer {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &GridRenderer{
		Atlas:  atlas,
		CellW:  cellW,
		CellH:  cellH,
		scaleX: float64(cellW) / GlyphWidth,
		scaleY: float64(cellH) / GlyphHeight,
		pixel:  pixel,
	}
}

func (r *GridRenderer) Draw(screen *ebiten.Image, buf *CellBuffer) {
	for y := 0; y < buf.Rows; y++ {
		for x := 0; x < buf.Cols; x++ {
			cell := buf.Cells[y*buf.Cols+x]
			px, py := float64(x*r.CellW), float64(y*r.CellH)
			if cell.BG != ColorBlack {
				var op ebiten.DrawImageOptions
				op.GeoM.Scale(float64(r.CellW), float64(r.CellH))
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(Palette[cell.BG])
				screen.DrawImage(r.pixel, &op)
			}
			r.DrawFloating(screen, cell.Glyph, cell.FG, px, py)
		}
	}
}

// DrawFloating draws one glyph at pixel coordinates. Ships and tracers
// use it so they move smoothly between cells.
func (r *GridRenderer) DrawFloating(screen *ebiten.Image, glyph byte, fg uint8, px, py float64) {
	if glyph == ' ' || glyph == 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.scaleX, r.scaleY)
	op.GeoM.Translate(px, py)
	op.ColorScale.ScaleWithColor(Palette[fg])
	screen.DrawImage(r.Atlas.Glyph(glyph), &op)
}
