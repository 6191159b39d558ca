// Package service manages long-lived infrastructure that sits beside the
// event loop: the sound backend and the config file watcher.
package service

import "github.com/lixenwraith/regroup/config"

// Service defines the lifecycle interface for infrastructure subsystems
//
// Lifecycle:
//  1. Construction
//  2. Init(cfg) - configure from the merged settings
//  3. Start() - launch background goroutines
//  4. [runtime operation]
//  5. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	Dependencies() []string

	Init(cfg *config.Config) error
	Start() error

	// Stop must be idempotent
	Stop() error
}
