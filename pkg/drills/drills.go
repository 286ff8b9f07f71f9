// Package drills exposes build metadata for the drills CLI.
package drills

// Version is the release version. Overridden at build time with
// -ldflags "-X github.com/mesh-intelligence/drills/pkg/drills.Version=...".
var Version = "0.1.0"
