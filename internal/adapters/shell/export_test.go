package shell

// FilterSystemEnv exposes the environment allow-list for tests.
var FilterSystemEnv = filterSystemEnv

// WithEnv replaces the system environment the executor filters.
func (e *Executor) WithEnv(env []string) *Executor {
	e.env = func() []string { return env }
	return e
}
