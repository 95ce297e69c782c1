package domain

// ColorLightGreen is the colour hint attached to resource embedding steps.
const ColorLightGreen = "light-green"

// Descr is the human-readable description of a build step used for progress reporting.
type Descr struct {
	Tag   string
	Path  string
	Color string
}

// String renders the description as "<tag> <path>".
func (d Descr) String() string {
	if d.Path == "" {
		return d.Tag
	}
	return d.Tag + " " + d.Path
}
