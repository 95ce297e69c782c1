package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rodata/internal/core/ports"
)

const (
	// WalkerNodeID is the graft node providing the concrete *Walker.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// ResolverNodeID is the graft node providing the ports.ResourceResolver.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	// HasherNodeID is the graft node providing the ports.Hasher.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// VerifierNodeID is the graft node providing the ports.Verifier.
	VerifierNodeID graft.ID = "adapter.fs.verifier"
)

func init() {
	// Walker Node (concrete implementation needed by the watcher)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.ResourceResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ResourceResolver, error) {
			return NewResolver(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.Verifier]{
		ID:        VerifierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Verifier, error) {
			return NewVerifier(), nil
		},
	})
}
