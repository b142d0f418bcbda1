package runtime

import (
	"context"
	"fmt"

	"github.com/rn-labs/rninject/internal/generate"
)

// Supported eraser identifiers.
const (
	EraserNode    = "node"
	EraserEsbuild = "esbuild"
)

// Options configures the erasers built by DispatchEraser.
type Options struct {
	NodeBin string // node executable name or path; defaults to "node"
	Dir     string // project directory remove-types is resolved from
}

// DispatchEraser returns the Eraser for the given identifier. Unknown values
// yield an eraser that always fails.
func DispatchEraser(kind string, opts Options) generate.Eraser {
	switch kind {
	case EraserNode:
		return &NodeEraser{Bin: opts.NodeBin, Dir: opts.Dir}
	case EraserEsbuild:
		return &EsbuildEraser{}
	default:
		return &unknownEraser{name: kind}
	}
}

// unknownEraser is returned when the eraser identifier is not recognized.
type unknownEraser struct {
	name string
}

func (u *unknownEraser) Erase(_ context.Context, _ string) (string, error) {
	return "", fmt.Errorf("unknown eraser %q: supported erasers are %q and %q", u.name, EraserNode, EraserEsbuild)
}
