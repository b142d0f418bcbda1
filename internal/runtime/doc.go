// Package runtime provides the type erasers used to turn generated TypeScript
// into JavaScript. NodeEraser shells out to Node.js and the remove-types
// package installed in the target project; EsbuildEraser runs esbuild in
// process. DispatchEraser selects one from the configured eraser name.
package runtime
