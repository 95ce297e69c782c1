package tools

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rodata/internal/core/ports"
)

// NodeID is the unique identifier for the tool registry Graft node.
const NodeID graft.ID = "adapter.tools"

func init() {
	graft.Register(graft.Node[ports.ToolResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ToolResolver, error) {
			return NewRegistry(), nil
		},
	})
}
