package domain

// Classify marks err with the sentinel kind. errors.Is matches both, and the error reads as kind,
// so wrapping it with err's own text renders the same chain as wrapping the bare sentinel.
func Classify(kind, err error) error {
	if err == nil {
		return nil
	}
	return &classified{kind: kind, cause: err}
}

type classified struct {
	kind  error
	cause error
}

func (c *classified) Error() string { return c.kind.Error() }

func (c *classified) Unwrap() []error { return []error{c.kind, c.cause} }
