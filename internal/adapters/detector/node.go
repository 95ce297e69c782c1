package detector

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the format detector Graft node.
const NodeID graft.ID = "adapter.detector"

func init() {
	graft.Register(graft.Node[Format]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Format, error) {
			return DetectFormat(), nil
		},
	})
}
