package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rodata/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/rodata/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rodata/internal/adapters/detector"  //nolint:depguard // Wired in app layer
	"go.trai.ch/rodata/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rodata/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/rodata/internal/adapters/tools"     //nolint:depguard // Wired in app layer
	"go.trai.ch/rodata/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/rodata/internal/core/ports"
	"go.trai.ch/rodata/internal/engine/planner"
	"go.trai.ch/rodata/internal/engine/scheduler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			planner.NodeID,
			scheduler.NodeID,
			cas.NodeID,
			tools.NodeID,
			watcher.WatcherNodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
			detector.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	plnr, err := graft.Dep[*planner.Planner](ctx)
	if err != nil {
		return nil, err
	}

	sched, err := graft.Dep[*scheduler.Scheduler](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.BuildInfoStore](ctx)
	if err != nil {
		return nil, err
	}

	toolResolver, err := graft.Dep[ports.ToolResolver](ctx)
	if err != nil {
		return nil, err
	}

	fsWatcher, err := graft.Dep[ports.Watcher](ctx)
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

	format, err := graft.Dep[detector.Format](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, plnr, sched, store, toolResolver, fsWatcher, tracer, log, format), nil
}
