package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gowheel/internal/adapters/archive"
	"go.trai.ch/gowheel/internal/adapters/cas"
	"go.trai.ch/gowheel/internal/adapters/config"
	"go.trai.ch/gowheel/internal/adapters/fs"
	"go.trai.ch/gowheel/internal/adapters/gotool"
	"go.trai.ch/gowheel/internal/adapters/logger"
	"go.trai.ch/gowheel/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NodeID is the unique identifier for the application components Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			gotool.NodeID,
			archive.NodeID,
			logger.NodeID,
			cas.NodeID,
			fs.HasherNodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			compiler, err := graft.Dep[ports.Compiler](ctx)
			if err != nil {
				return nil, err
			}
			archiver, err := graft.Dep[ports.ArchiveWriter](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.BuildInfoStore](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.SourceHasher](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(loader, compiler, archiver, log, store, hasher),
				Logger: log,
			}, nil
		},
	})
}
