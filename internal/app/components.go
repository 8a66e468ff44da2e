package app

import (
	"go.trai.ch/nbreq/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/nbreq/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	// Root is the logger the CLI reconfigures from its flags.
	Root *logger.Logger
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, log ports.Logger, root *logger.Logger) *Components {
	return &Components{
		App:    app,
		Logger: log,
		Root:   root,
	}
}
