package runtime

import (
	"context"
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// EsbuildEraser strips TypeScript syntax with esbuild's transform API. It
// needs no Node.js installation but does not keep JSDoc comments, and it
// drops imports that were only used as types.
type EsbuildEraser struct{}

// Erase transforms src with the TS loader, leaving ESM syntax in place.
func (e *EsbuildEraser) Erase(ctx context.Context, src string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	result := api.Transform(src, api.TransformOptions{
		Loader:     api.LoaderTS,
		Target:     api.ESNext,
		Sourcefile: "index.ts",
	})
	if len(result.Errors) > 0 {
		msgs := make([]string, 0, len(result.Errors))
		for _, m := range result.Errors {
			if m.Location != nil {
				msgs = append(msgs, fmt.Sprintf("%d:%d: %s", m.Location.Line, m.Location.Column, m.Text))
				continue
			}
			msgs = append(msgs, m.Text)
		}
		return "", fmt.Errorf("esbuild transform failed: %s", strings.Join(msgs, "; "))
	}

	return string(result.Code), nil
}
