package rodata

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rodata/internal/adapters/logger"
	"go.trai.ch/rodata/internal/adapters/shell"
	"go.trai.ch/rodata/internal/core/ports"
)

// NodeID is the unique identifier for the rule registry Graft node.
const NodeID graft.ID = "engine.rules"

func init() {
	graft.Register(graft.Node[ports.RuleRegistry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.RuleRegistry, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			registry := NewRegistry()
			if err := NewRules(executor, log).Register(registry); err != nil {
				return nil, err
			}
			return registry, nil
		},
	})
}
