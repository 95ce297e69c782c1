package tools

// WithPath replaces the PATH the registry searches.
func (r *Registry) WithPath(path string) *Registry {
	r.env = func() []string { return []string{"PATH=" + path} }
	return r
}
