// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/memo/internal/adapters/fs"
	_ "go.trai.ch/memo/internal/adapters/logger"
	_ "go.trai.ch/memo/internal/adapters/sdk"
	_ "go.trai.ch/memo/internal/adapters/telemetry"
	_ "go.trai.ch/memo/internal/adapters/toolset"
	// Register app and engine nodes.
	_ "go.trai.ch/memo/internal/app"
	_ "go.trai.ch/memo/internal/engine/evaluation"
)
