package clique

import (
	"context"
	"errors"

	"github.com/katalvlaran/npcover/core"
)

// ErrNoClique is returned by Maximum when the graph has no vertices and
// therefore no clique, not even a singleton.
var ErrNoClique = errors.New("clique: graph has no vertices")

// Option configures clique enumeration via functional arguments.
type Option func(*Options)

// Options holds the tunable parameters of a clique search.
type Options struct {
	// Ctx allows cancellation and deadlines. The engines check it on every
	// branch entry; its error aborts the search with no partial result.
	Ctx context.Context

	// OnClique, if non-nil, is invoked for each recorded clique with an
	// owned copy. When set, EnumerateAll and Maximal stream cliques to the
	// hook instead of accumulating them and return a nil slice — the way to
	// walk an exponential output without holding it in memory.
	// Returning an error aborts enumeration with that error.
	OnClique func(c *core.VertexSet) error
}

// DefaultOptions returns Options with a background context and no hook.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation or deadlines.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnClique registers a streaming visitor for recorded cliques.
func WithOnClique(fn func(c *core.VertexSet) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnClique = fn
		}
	}
}
