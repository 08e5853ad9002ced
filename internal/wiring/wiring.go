// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/gowheel/internal/adapters/archive"
	_ "go.trai.ch/gowheel/internal/adapters/cas"
	_ "go.trai.ch/gowheel/internal/adapters/config"
	_ "go.trai.ch/gowheel/internal/adapters/fs"
	_ "go.trai.ch/gowheel/internal/adapters/gotool"
	_ "go.trai.ch/gowheel/internal/adapters/logger"
	_ "go.trai.ch/gowheel/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/gowheel/internal/app"
)
