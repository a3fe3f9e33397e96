// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/vitetag/internal/adapters/config"
	_ "go.trai.ch/vitetag/internal/adapters/fs"
	_ "go.trai.ch/vitetag/internal/adapters/logger"
	_ "go.trai.ch/vitetag/internal/adapters/manifest"
	_ "go.trai.ch/vitetag/internal/adapters/telemetry"
	_ "go.trai.ch/vitetag/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/vitetag/internal/app"
	_ "go.trai.ch/vitetag/internal/engine/resolver"
)
