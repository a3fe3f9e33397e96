package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vitetag/internal/adapters/logger" //nolint:depguard // Wired in node
	"go.trai.ch/vitetag/internal/core/ports"
)

// NodeID is the unique identifier for the hot file watcher Graft node.
const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[ports.HotFileWatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.HotFileWatcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWatcher(log, DefaultDebounceWindow), nil
		},
	})
}
