package planner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rodata/internal/core/ports"
	"go.trai.ch/rodata/internal/engine/rodata"
)

// NodeID is the unique identifier for the planner Graft node.
const NodeID graft.ID = "engine.planner"

func init() {
	graft.Register(graft.Node[*Planner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{rodata.NodeID},
		Run: func(ctx context.Context) (*Planner, error) {
			rules, err := graft.Dep[ports.RuleRegistry](ctx)
			if err != nil {
				return nil, err
			}
			return New(rules), nil
		},
	})
}
