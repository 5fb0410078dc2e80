package render

import (
	"fmt"

	"github.com/starlight-duel/starlight/internal/hangar"
	"github.com/starlight-duel/starlight/internal/match"
	"github.com/starlight-duel/starlight/internal/player"
	"github.com/starlight-duel/starlight/internal/ship"
)

const (
	BarWidth   = 20
	labelWidth = 8
)

// BarFill is how many of width cells val/max fills. Negative values
// count as empty, overflow as full.
func BarFill(val, max float64, width int) int {
	if max <= 0 || val <= 0 {
		return 0
	}
	n := int(float64(width) * val / max)
	return min(n, width)
}

// DrawBar draws "label ████░░░░ val/max" with the label coloured by level.
func DrawBar(buf *CellBuffer, x, y int, label string, val, max float64, clr uint8) {
	frac := 0.0
	if max > 0 {
		frac = val / max
	}
	labelClr := LevelColor(frac, ColorLightGray)
	buf.WriteString(x, y, label, labelClr, ColorBlack)

	filled := BarFill(val, max, BarWidth)
	for i := 0; i < BarWidth; i++ {
		if i < filled {
			buf.Set(x+labelWidth+i, y, GlyphFull, clr, ColorBlack)
		} else {
			buf.Set(x+labelWidth+i, y, GlyphLight, ColorDarkGray, ColorBlack)
		}
	}
	buf.WriteString(x+labelWidth+BarWidth+1, y, fmt.Sprintf("%3.0f/%.0f", val, max), labelClr, ColorBlack)
}

// PartColor shades a sprite cell by the part's remaining health. Spent
// parts go dark gray.
func PartColor(h ship.Health) uint8 {
	if h.Current <= 0 {
		return ColorDarkGray
	}
	if h.Max <= 0 {
		return ColorLightGreen
	}
	return LevelColor(float64(h.Current)/float64(h.Max), ColorLightGreen)
}

// DrawSprite draws a frame's sprite with each part tinted by damage.
// Plating is drawn in the slot colour.
func DrawSprite(buf *CellBuffer, x, y int, f *hangar.Frame, hull *ship.Hull, slot player.Slot) {
	for row, line := range f.Sprite {
		col := 0
		for _, ch := range line {
			if ch == ' ' {
				col++
				continue
			}
			clr := SlotColor(slot)
			if ref, ok := f.PartAt(col, row); ok {
				if h, ok := hull.Part(ref); ok {
					clr = PartColor(h)
				}
			}
			buf.Set(x+col, y+row, byte(ch), clr, ColorBlack)
			col++
		}
	}
}

// stateLabel is the one-word flight state shown under the bars.
func stateLabel(s ship.ActionState) (string, uint8) {
	switch {
	case s.Boosting:
		return "BOOST", ColorLightCyan
	case s.Braking:
		return "BRAKE", ColorYellow
	default:
		return "CRUISE", ColorDarkGray
	}
}

// DrawShipPanel draws one pilot's vitals, flight state and sprite.
func DrawShipPanel(buf *CellBuffer, x, y int, slot player.Slot, c *ship.Coordinator, f *hangar.Frame) {
	title := fmt.Sprintf("--- %s ---", slot)
	if c == nil {
		buf.WriteString(x, y, title, ColorDarkGray, ColorBlack)
		buf.WriteString(x, y+1, "waiting for pilot", ColorDarkGray, ColorBlack)
		return
	}
	buf.WriteString(x, y, title, SlotColor(slot), ColorBlack)
	buf.WriteString(x+len(title)+1, y, c.Name(), ColorWhite, ColorBlack)

	v := c.Vitals()
	DrawBar(buf, x, y+1, "Hull", float64(v.CurrentHealth), float64(v.MaxHealth), ColorLightGray)
	DrawBar(buf, x, y+2, "Shield", float64(v.CurrentShield), float64(v.MaxShield), ColorLightCyan)
	e := c.Energy()
	DrawBar(buf, x, y+3, "Energy", e.Current(), e.Max(), ColorYellow)

	label, clr := stateLabel(c.State())
	buf.WriteString(x, y+4, label, clr, ColorBlack)
	buf.WriteString(x+labelWidth, y+4, fmt.Sprintf("%s  pitch %.2f", c.Mode(), c.Pitch()), ColorLightGray, ColorBlack)
	if m := c.Binding().Map; m != nil && m.InvertY {
		buf.WriteString(x+labelWidth+BarWidth+1, y+4, "INV-Y", ColorDarkGray, ColorBlack)
	}

	if f != nil {
		DrawSprite(buf, x, y+6, f, c.Hull(), slot)
	}
}

// CommsColor maps a comms priority to its palette colour.
func CommsColor(p match.Priority) uint8 {
	switch p {
	case match.PriorityCritical:
		return ColorLightRed
	case match.PriorityWarning:
		return ColorYellow
	case match.PrioritySystem:
		return ColorWhite
	default:
		return ColorCyan
	}
}

// DrawComms draws the newest n lines of the match log under a header.
func DrawComms(buf *CellBuffer, x, y, n int, c *match.Comms) {
	buf.WriteString(x, y, "--- Comms ---", ColorLightCyan, ColorBlack)
	for i, l := range c.Recent(n) {
		buf.WriteString(x, y+1+i, l.Text, CommsColor(l.Priority), ColorBlack)
	}
}
