package domain

// Workspace is a loaded rodata.yaml: the source and build roots, the tool map and the units.
type Workspace struct {
	// Root is the absolute source root.
	Root string
	// BuildRoot is the absolute build root.
	BuildRoot string
	// Tools maps tool identifiers to a binary name or path.
	Tools map[string]string
	Units []*Unit
}

// Unit returns the unit with the given name.
func (w *Workspace) Unit(name string) (*Unit, bool) {
	for _, u := range w.Units {
		if u.Name() == name {
			return u, true
		}
	}
	return nil, false
}
