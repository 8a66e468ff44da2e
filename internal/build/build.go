// Package build holds build-time information.
package build

// Version is the nbreq version.
// It defaults to "dev" and can be overwritten by linker flags.
var Version = "dev"
