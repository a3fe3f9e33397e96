package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vitetag/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/vitetag/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/vitetag/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/vitetag/internal/core/ports"
	"go.trai.ch/vitetag/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			resolver.NodeID,
			watcher.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			factory, err := graft.Dep[*resolver.Factory](ctx)
			if err != nil {
				return nil, err
			}

			hotWatcher, err := graft.Dep[ports.HotFileWatcher](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, log, factory, hotWatcher), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log), nil
}
