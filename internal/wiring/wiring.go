// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rodata/internal/adapters/cas"
	_ "go.trai.ch/rodata/internal/adapters/config"
	_ "go.trai.ch/rodata/internal/adapters/detector"
	_ "go.trai.ch/rodata/internal/adapters/fs"
	_ "go.trai.ch/rodata/internal/adapters/logger"
	_ "go.trai.ch/rodata/internal/adapters/shell"
	_ "go.trai.ch/rodata/internal/adapters/telemetry"
	_ "go.trai.ch/rodata/internal/adapters/tools"
	_ "go.trai.ch/rodata/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/rodata/internal/app"
	_ "go.trai.ch/rodata/internal/engine/planner"
	_ "go.trai.ch/rodata/internal/engine/rodata"
	_ "go.trai.ch/rodata/internal/engine/scheduler"
)
