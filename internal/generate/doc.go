// Package generate runs the injection pipeline: it validates a capability
// selection, resolves the shared imports and packages, assembles the source
// and, for JavaScript output, erases types and optionally converts the result
// to CommonJS.
//
// A Generator does no filesystem I/O itself. The only external work happens
// inside the Eraser it is given, which is why Generate takes a context.
package generate
