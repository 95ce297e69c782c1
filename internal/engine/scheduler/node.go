package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rodata/internal/adapters/cas"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rodata/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rodata/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rodata/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rodata/internal/adapters/tools"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rodata/internal/core/ports"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			tools.NodeID,
			cas.NodeID,
			fs.HasherNodeID,
			fs.VerifierNodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			toolResolver, err := graft.Dep[ports.ToolResolver](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.BuildInfoStore](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			verifier, err := graft.Dep[ports.Verifier](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewScheduler(toolResolver, store, hasher, verifier, tracer, log), nil
		},
	})
}
