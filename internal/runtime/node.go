package runtime

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

//go:embed erase.mjs
var eraseScript string

// NodeEraser strips TypeScript syntax by running remove-types under Node.js.
// Comments and formatting survive, which is why it is the default.
type NodeEraser struct {
	Bin string // defaults to "node"
	Dir string // working directory; remove-types is resolved from here

	// Module overrides the package that provides removeTypes. Tests use it to
	// point at a stub.
	Module string
}

// Erase runs `node --input-type=module -e <script>` with src on stdin and
// returns what the script prints. A non-zero exit is an error carrying the
// script's stderr.
func (n *NodeEraser) Erase(ctx context.Context, src string) (string, error) {
	bin := n.Bin
	if bin == "" {
		bin = "node"
	}
	nodeBin, err := exec.LookPath(bin)
	if err != nil {
		return "", fmt.Errorf("type erasure requires Node.js: %w", err)
	}

	cmd := exec.CommandContext(ctx, nodeBin, "--input-type=module", "-e", eraseScript)
	cmd.Dir = n.Dir
	cmd.Env = buildNodeEnv(n.Module)
	cmd.Stdin = strings.NewReader(src)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("node exited with code %d: %s", exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}
		return "", fmt.Errorf("executing node: %w", err)
	}

	return stdout.String(), nil
}

// buildNodeEnv inherits the current environment, silences Node's
// experimental warnings and passes the eraser module override.
func buildNodeEnv(module string) []string {
	env := setEnv(os.Environ(), "NODE_NO_WARNINGS", "1")
	if module != "" {
		env = setEnv(env, "RNINJECT_ERASER_MODULE", module)
	}
	return env
}

// setEnv sets or replaces an environment variable in the env slice.
func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i, e := range env {
		if strings.HasPrefix(e, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}
