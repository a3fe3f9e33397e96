package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vitetag/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/vitetag/internal/adapters/manifest"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/vitetag/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/vitetag/internal/core/ports"
)

// NodeID is the unique identifier for the resolver factory Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.NodeID,
			fs.HasherNodeID,
			manifest.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			manifests, err := graft.Dep[ports.ManifestStore](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewFactory(fsys, manifests, hasher, tracer), nil
		},
	})
}
