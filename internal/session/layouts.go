package session

import "sort"

// Factory builds a Session from optional flag-style overrides.
type Factory func(cfg map[string]string) *Session

var layouts = map[string]Factory{}

// Register adds a layout factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	layouts[name] = f
}

// Layouts exposes the registry of available layouts.
func Layouts() map[string]Factory {
	return layouts
}

// LayoutNames returns the registered layout names in sorted order.
func LayoutNames() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func registerLayout(name string, w, h, cellSize, enemies int) {
	Register(name, func(cfg map[string]string) *Session {
		base := DefaultConfig()
		base.Layout = name
		base.Width, base.Height, base.CellSize = w, h, cellSize
		base.Enemies = enemies
		return New(ApplyMap(base, cfg))
	})
}

func init() {
	registerLayout("classic", 64, 40, 16, 3)
	registerLayout("small", 32, 20, 24, 2)
	registerLayout("wide", 96, 40, 12, 4)
	registerLayout("tiny", 12, 8, 32, 1)
}
