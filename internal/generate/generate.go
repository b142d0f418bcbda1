package generate

import (
	"context"
	"crypto/rand"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rn-labs/rninject/internal/catalog"
	rnerrors "github.com/rn-labs/rninject/internal/errors"
	"github.com/rn-labs/rninject/internal/logging"
	"github.com/rn-labs/rninject/internal/resolver"
	"github.com/rn-labs/rninject/internal/scaffold"
	"github.com/rn-labs/rninject/internal/transform"
)

// Eraser strips TypeScript-only syntax, returning plain ESM JavaScript.
// Implementations may run external processes and must honor ctx.
type Eraser interface {
	Erase(ctx context.Context, src string) (string, error)
}

// Generator turns capability selections into source code. It holds no
// mutable state and is safe for concurrent use.
type Generator struct {
	reg    *catalog.Registry
	eraser Eraser
	logger *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for stage logging. Without it the logger
// is taken from the request context.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// New creates a Generator over reg. eraser may be nil when only TypeScript
// output is requested.
func New(reg *catalog.Registry, eraser Eraser, opts ...Option) *Generator {
	g := &Generator{reg: reg, eraser: eraser}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Registry returns the registry the generator was built with.
func (g *Generator) Registry() *catalog.Registry {
	return g.reg
}

// Generate runs the pipeline for req. It returns either a complete Result
// or an error; never both.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	if req.ID == "" {
		req.ID = NewID()
	}
	logger := g.logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}
	logger = logger.With("request_id", req.ID)

	req, err := req.normalize()
	if err != nil {
		return nil, err
	}
	selection, err := g.validate(req.Selection)
	if err != nil {
		logger.Debug("selection rejected", "error", err)
		return nil, err
	}
	logger.Debug("selection validated",
		"capabilities", selection,
		"language", req.Language,
		"module_format", req.ModuleFormat)

	res, err := resolver.Resolve(g.reg, selection)
	if err != nil {
		return nil, err
	}
	logger.Debug("imports resolved", "keys", res.Keys, "packages", res.PackageNames())

	caps := make([]*catalog.Capability, 0, len(selection))
	for _, name := range selection {
		c, err := g.reg.Lookup(name)
		if err != nil {
			return nil, err
		}
		caps = append(caps, c)
	}
	code := scaffold.Assemble(caps, res.Statements)
	logger.Debug("source assembled", "bytes", len(code))

	if req.Language == LanguageJavaScript {
		if g.eraser == nil {
			return nil, rnerrors.NewInternal(rnerrors.StageErase, errNoEraser)
		}
		if err := ctx.Err(); err != nil {
			return nil, rnerrors.NewTypeErasureFailed(err)
		}
		start := time.Now()
		code, err = g.eraser.Erase(ctx, code)
		if err != nil {
			logger.Warn("type erasure failed", "error", err)
			return nil, rnerrors.NewTypeErasureFailed(err)
		}
		logger.Debug("types erased", "duration", time.Since(start))

		if req.ModuleFormat == ModuleCJS {
			code = transform.ToCommonJS(code)
			logger.Debug("converted to commonjs")
		}
	}

	logger.Info("code generated",
		"capabilities", len(selection),
		"language", req.Language,
		"module_format", req.ModuleFormat,
		"packages", len(res.Packages))

	return &Result{
		ID:           req.ID,
		Code:         code,
		Packages:     res.Packages,
		Imports:      res.Keys,
		Capabilities: selection,
		Language:     req.Language,
		ModuleFormat: req.ModuleFormat,
	}, nil
}

// validate rejects empty selections and unknown names, and collapses
// repeated names to their first occurrence.
func (g *Generator) validate(selection []string) ([]string, error) {
	if len(selection) == 0 {
		return nil, rnerrors.NewEmptySelection()
	}
	seen := make(map[string]bool, len(selection))
	out := make([]string, 0, len(selection))
	for _, name := range selection {
		if !g.reg.Has(name) {
			return nil, rnerrors.NewUnknownCapability(name)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out, nil
}

// NewID returns a new request identifier (a ULID).
func NewID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
