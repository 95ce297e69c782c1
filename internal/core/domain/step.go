package domain

// Step represents one planned command in the build graph.
// Input and output paths are resolved filesystem paths; Resource keeps the logical path
// the step was planned from.
type Step struct {
	Name         InternedString
	Unit         InternedString
	Resource     string
	Descr        Descr
	Inputs       []InternedString
	Outputs      []InternedString
	Tools        []InternedString
	Flags        []string
	Dependencies []InternedString
}

// StepName returns the graph name of the step building resource within unit.
func StepName(unit, resource string) string {
	return unit + ":" + resource
}
