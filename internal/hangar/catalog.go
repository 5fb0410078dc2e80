package hangar

import (
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

// Catalog is the set of frames a match can launch, keyed by file stem.
type Catalog struct {
	frames map[string]*Frame
	names  []string
}

// LoadCatalog reads every *.json frame in dir of fsys.
func LoadCatalog(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read frames: %w", err)
	}
	c := &Catalog{frames: make(map[string]*Frame)}
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".json" {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read frame %s: %w", e.Name(), err)
		}
		f, err := LoadFrame(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		key := strings.TrimSuffix(e.Name(), ".json")
		c.frames[key] = f
		c.names = append(c.names, key)
	}
	if len(c.names) == 0 {
		return nil, fmt.Errorf("%w: no frames in %s", ErrInvalidFrame, dir)
	}
	slices.Sort(c.names)
	return c, nil
}

// Names lists frame keys in sorted order.
func (c *Catalog) Names() []string { return slices.Clone(c.names) }

// Get returns the frame stored under key.
func (c *Catalog) Get(key string) (*Frame, bool) {
	f, ok := c.frames[key]
	return f, ok
}
