package match

import "strings"

// Priority picks a comms line's colour.
type Priority uint8

const (
	PriorityInfo     Priority = iota // cyan
	PriorityWarning                  // yellow
	PriorityCritical                 // red
	PrioritySystem                   // white
)

// Line is a single comms entry.
type Line struct {
	Text     string
	Priority Priority
	Tick     int
}

// Comms is a bounded FIFO of match messages for the HUD.
type Comms struct {
	lines   []Line
	maxSize int
	width   int
}

// NewComms keeps the most recent maxSize lines, wrapped at width.
func NewComms(maxSize, width int) *Comms {
	return &Comms{lines: make([]Line, 0, maxSize), maxSize: maxSize, width: width}
}

// Add appends text, evicting the oldest lines when full.
func (c *Comms) Add(tick int, text string, p Priority) {
	for _, s := range wrap(text, c.width) {
		line := Line{Text: s, Priority: p, Tick: tick}
		if len(c.lines) >= c.maxSize {
			copy(c.lines, c.lines[1:])
			c.lines[len(c.lines)-1] = line
		} else {
			c.lines = append(c.lines, line)
		}
	}
}

// Recent returns up to the last n lines, oldest first.
func (c *Comms) Recent(n int) []Line {
	n = min(n, len(c.lines))
	return c.lines[len(c.lines)-n:]
}

func (c *Comms) Len() int { return len(c.lines) }

func wrap(s string, width int) []string {
	if width <= 0 || len(s) <= width {
		return []string{s}
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var out []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			out = append(out, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(out, line)
}
