// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/nbreq/internal/adapters/config"
	_ "go.trai.ch/nbreq/internal/adapters/journal"
	_ "go.trai.ch/nbreq/internal/adapters/kernel"
	_ "go.trai.ch/nbreq/internal/adapters/logger"
	_ "go.trai.ch/nbreq/internal/adapters/notebook"
	_ "go.trai.ch/nbreq/internal/adapters/pipenv"
	_ "go.trai.ch/nbreq/internal/adapters/shell"
	_ "go.trai.ch/nbreq/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/nbreq/internal/adapters/thamos"
	// Register app and engine nodes.
	_ "go.trai.ch/nbreq/internal/app"
	_ "go.trai.ch/nbreq/internal/engine/install"
	_ "go.trai.ch/nbreq/internal/engine/locking"
	_ "go.trai.ch/nbreq/internal/engine/startup"
	_ "go.trai.ch/nbreq/internal/engine/workflow"
)
