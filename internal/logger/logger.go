package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// Config selects the level and output format.
type Config struct {
	Level  string
	Format string // "console" (default) or "json"
	Output io.Writer
}

var (
	once sync.Once
	lg   *slog.Logger
)

// Init installs the process logger. Only the first call has an effect.
func Init(cfg Config) {
	once.Do(func() {
		lg = New(cfg)
		slog.SetDefault(lg)
	})
}

// New builds a logger without installing it.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	level := ParseLevel(cfg.Level)
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(&console{w: out, mu: new(sync.Mutex), min: level})
}

// L returns the process logger, falling back to console at info.
func L() *slog.Logger {
	Init(Config{})
	return lg
}

// ParseLevel reads a slog level name in any case. Unknown or empty
// names give info.
func ParseLevel(name string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// console prints one line per record, with the "component" attribute
// pulled forward as a tag:
//
//	12:00:00 INFO  [slots] Slot reassigned requested=P1 slot=P2
//
// Groups are flattened; nothing in the game logs with them.
type console struct {
	w     io.Writer
	mu    *sync.Mutex
	min   slog.Level
	tag   string
	attrs string // preformatted With attributes
}

func (h *console) Enabled(_ context.Context, l slog.Level) bool { return l >= h.min }

func (h *console) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Time.Format(time.TimeOnly))
	b.WriteString(" " + padLevel(r.Level) + " ")
	if h.tag != "" {
		b.WriteString("[" + h.tag + "] ")
	}
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *console) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		if a.Key == "component" {
			next.tag = a.Value.String()
			continue
		}
		writeAttr(&b, a)
	}
	next.attrs = b.String()
	return &next
}

func (h *console) WithGroup(string) slog.Handler { return h }

func padLevel(l slog.Level) string {
	s := l.String()
	if len(s) < 5 {
		s += strings.Repeat(" ", 5-len(s))
	}
	return s
}

func writeAttr(b *strings.Builder, a slog.Attr) {
	b.WriteString(" " + a.Key + "=" + a.Value.String())
}
