package sdk

import (
	"context"
	"os"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/memo/internal/adapters/fs"
	"go.trai.ch/memo/internal/core/ports"
)

// NodeID is the unique identifier for the SDK resolver Graft node.
const NodeID graft.ID = "adapter.sdk.resolver"

// PathEnvVar names the environment variable holding the default SDK search
// roots, separated by the OS list separator.
const PathEnvVar = "MEMO_SDK_PATH"

func init() {
	graft.Register(graft.Node[ports.SdkResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID},
		Run: func(ctx context.Context) (ports.SdkResolver, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewDirectoryResolver(fsys, filepath.SplitList(os.Getenv(PathEnvVar))), nil
		},
	})
}
