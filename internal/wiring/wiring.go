// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/gdmcp/internal/adapters/config"
	_ "go.trai.ch/gdmcp/internal/adapters/fs"
	_ "go.trai.ch/gdmcp/internal/adapters/locator"
	_ "go.trai.ch/gdmcp/internal/adapters/logger"
	_ "go.trai.ch/gdmcp/internal/adapters/pathcache"
	_ "go.trai.ch/gdmcp/internal/adapters/shell"
	_ "go.trai.ch/gdmcp/internal/adapters/supervisor"
	_ "go.trai.ch/gdmcp/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/gdmcp/internal/app"
	_ "go.trai.ch/gdmcp/internal/engine/executor"
)
