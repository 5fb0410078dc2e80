package main

import (
	"slices"

	"github.com/starlight-duel/starlight/internal/input"
	"github.com/starlight-duel/starlight/internal/player"
	"github.com/starlight-duel/starlight/internal/render"
	"github.com/starlight-duel/starlight/internal/ui"
)

const (
	menuLeft  = 10
	menuRight = 44
	menuWidth = 26
)

// menu is the pre-match screen. Each player moves their own highlight;
// P1 also has the keyboard.
type menu struct {
	frames  [2]*ui.Dropdown
	invert  [2]*ui.Toggle
	rails   *ui.Toggle
	launch  *ui.Button
	widgets []ui.Selectable
	navs    [2]*ui.Navigator
}

func newMenu(g *Game) *menu {
	names := g.catalog.Names()
	mn := &menu{}
	picks := [2]string{g.cfg.Match.P1Frame, g.cfg.Match.P2Frame}
	inverts := [2]bool{g.cfg.Inputs.P1.InvertY, g.cfg.Inputs.P2.InvertY}
	for i, col := range []int{menuLeft, menuRight} {
		slot := player.Slots[i]
		mn.frames[i] = &ui.Dropdown{
			Text:     slot.String() + " frame",
			Rect:     ui.Rect{X: col, Y: 10, W: menuWidth, H: 1},
			Options:  names,
			Selected: max(0, slices.Index(names, picks[i])),
		}
		mn.invert[i] = &ui.Toggle{
			Text: slot.String() + " invert Y",
			Rect: ui.Rect{X: col, Y: 14, W: menuWidth, H: 1},
			On:   inverts[i],
		}
	}
	mn.rails = &ui.Toggle{
		Text: "Rail zones",
		Rect: ui.Rect{X: menuLeft, Y: 18, W: menuWidth, H: 1},
		On:   g.cfg.Ship.RailZones,
	}
	mn.launch = &ui.Button{
		Text:    "Launch",
		Rect:    ui.Rect{X: menuLeft, Y: 22, W: menuWidth, H: 1},
		OnClick: g.launch,
	}

	ui.LinkVertical(mn.frames[0], mn.invert[0], mn.rails, mn.launch)
	ui.LinkVertical(mn.frames[1], mn.invert[1])
	mn.invert[1].Nav().Down = mn.rails
	ui.LinkHorizontal(mn.frames[0], mn.frames[1])
	ui.LinkHorizontal(mn.invert[0], mn.invert[1])

	mn.widgets = []ui.Selectable{mn.frames[0], mn.frames[1], mn.invert[0], mn.invert[1], mn.rails, mn.launch}

	delay, pad := g.cfg.Menu.MoveDelay, g.cfg.Menu.HighlightPadding
	mn.navs[0] = ui.NewNavigator(mn.frames[0], g.pads.Pad(0), g.keys, delay, pad)
	mn.navs[1] = ui.NewNavigator(mn.frames[1], g.pads.Pad(1), input.NewVirtual(), delay, pad)
	return mn
}

func (mn *menu) update(dt float64) {
	for _, n := range mn.navs {
		n.Update(dt)
	}
}

func (mn *menu) reset() {
	for _, n := range mn.navs {
		n.Reset()
	}
}

func (mn *menu) draw(buf *render.CellBuffer) {
	buf.Clear()
	buf.WriteCentered(gridCols/2, 3, "S T A R L I G H T", render.ColorWhite, render.ColorBlack)
	buf.WriteCentered(gridCols/2, 5, "two pilots, one sky", render.ColorDarkGray, render.ColorBlack)

	for _, w := range mn.widgets {
		r := w.Bounds()
		buf.WriteString(r.X, r.Y, w.Label(), render.ColorLightGray, render.ColorBlack)
	}
	for i, n := range mn.navs {
		h := n.Highlight()
		buf.Box(h.X, h.Y, h.W, h.H, render.SlotColor(player.Slots[i]))
	}

	buf.WriteString(2, gridRows-1, "Arrows/WASD/D-pad: Move  Enter/Space/A: Select  Esc: Quit", render.ColorDarkGray, render.ColorBlack)
}
