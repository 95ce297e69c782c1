package rodata

import (
	"maps"
	"slices"
	"sync"

	"go.trai.ch/rodata/internal/core/domain"
	"go.trai.ch/rodata/internal/core/ports"
	"go.trai.ch/zerr"
)

// Registry is the in-memory ports.RuleRegistry.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]ports.Rule
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]ports.Rule)}
}

// Register implements ports.RuleRegistry.
func (r *Registry) Register(name string, rule ports.Rule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rules[name]; exists {
		return zerr.With(zerr.Wrap(domain.ErrRuleAlreadyRegistered, "cannot register rule"), "rule", name)
	}
	r.rules[name] = rule
	return nil
}

// Lookup implements ports.RuleRegistry.
func (r *Registry) Lookup(name string) (ports.Rule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rule, ok := r.rules[name]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrRuleNotFound, "cannot look up rule"), "rule", name)
	}
	return rule, nil
}

// Names implements ports.RuleRegistry.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.rules))
}

// ioFailure wraps an I/O error under a domain sentinel, keeping the error itself matchable.
func ioFailure(kind, err error) error {
	return zerr.Wrap(domain.Classify(kind, err), err.Error())
}
