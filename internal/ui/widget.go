package ui

// Activatable is anything the confirm button can act on.
type Activatable interface {
	Activate()
}

// Rect is a screen rectangle in grid cells.
type Rect struct {
	X, Y, W, H int
}

// Grow returns r expanded by pad cells on every side.
func (r Rect) Grow(pad int) Rect {
	return Rect{X: r.X - pad, Y: r.Y - pad, W: r.W + 2*pad, H: r.H + 2*pad}
}

// Links are a widget's directional neighbours. Nil means no move.
type Links struct {
	Up, Down, Left, Right Selectable
}

// Selectable is a widget the navigator can highlight.
type Selectable interface {
	Activatable
	Bounds() Rect
	Nav() *Links
	Label() string
}

// LinkVertical chains items top to bottom.
func LinkVertical(items ...Selectable) {
	for i := 1; i < len(items); i++ {
		items[i-1].Nav().Down = items[i]
		items[i].Nav().Up = items[i-1]
	}
}

// LinkHorizontal chains items left to right.
func LinkHorizontal(items ...Selectable) {
	for i := 1; i < len(items); i++ {
		items[i-1].Nav().Right = items[i]
		items[i].Nav().Left = items[i-1]
	}
}

type Button struct {
	Text    string
	Rect    Rect
	OnClick func()
	links   Links
}

func (b *Button) Activate() {
	if b.OnClick != nil {
		b.OnClick()
	}
}

func (b *Button) Bounds() Rect  { return b.Rect }
func (b *Button) Nav() *Links   { return &b.links }
func (b *Button) Label() string { return b.Text }

// Toggle flips On each time it is activated.
type Toggle struct {
	Text     string
	Rect     Rect
	On       bool
	OnChange func(on bool)
	links    Links
}

func (t *Toggle) Activate() {
	t.On = !t.On
	if t.OnChange != nil {
		t.OnChange(t.On)
	}
}

func (t *Toggle) Bounds() Rect { return t.Rect }
func (t *Toggle) Nav() *Links  { return &t.links }

func (t *Toggle) Label() string {
	if t.On {
		return "[x] " + t.Text
	}
	return "[ ] " + t.Text
}

// Dropdown opens on the first activation; activating it again while
// open steps to the next option and closes it.
type Dropdown struct {
	Text     string
	Rect     Rect
	Options  []string
	Selected int
	Open     bool
	OnSelect func(index int, option string)
	links    Links
}

func (d *Dropdown) Activate() {
	if !d.Open {
		d.Open = true
		return
	}
	d.Open = false
	if len(d.Options) == 0 {
		return
	}
	d.Selected = (d.Selected + 1) % len(d.Options)
	if d.OnSelect != nil {
		d.OnSelect(d.Selected, d.Options[d.Selected])
	}
}

func (d *Dropdown) Bounds() Rect { return d.Rect }
func (d *Dropdown) Nav() *Links  { return &d.links }

// Value returns the selected option, or "" with no options.
func (d *Dropdown) Value() string {
	if d.Selected < 0 || d.Selected >= len(d.Options) {
		return ""
	}
	return d.Options[d.Selected]
}

func (d *Dropdown) Label() string {
	if d.Open {
		return d.Text + ": " + d.Value() + " v"
	}
	return d.Text + ": " + d.Value()
}
