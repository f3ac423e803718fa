package ccd

import (
	"io"
	"log/slog"
)

// discardLogger is the package-level default: diagnostic traces are
// discarded unless a caller supplies its own logger via WithLogger.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// config holds the ambient behaviour ContinuousCollision can be tuned with.
// It is not part of the documented positional signature: every field has a
// safe zero-equivalent default (discard logging, non-strict invariant
// handling), matching the rest of the corpus's preference for small
// functional-option surfaces over config structs threaded through call
// sites.
type config struct {
	logger *slog.Logger
	strict bool
}

// Option configures one ContinuousCollision call.
type Option func(*config)

// WithLogger directs diagnostic traces (iteration-budget exhaustion,
// bisection cap, invariant warnings) to logger instead of discarding them.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithStrict makes invariant violations (an edge-edge GJK witness pair, SAT
// reporting "went too deep" after convergence) panic instead of logging and
// returning hit=false. Off by default; intended for debug builds and tests.
func WithStrict(strict bool) Option {
	return func(c *config) { c.strict = strict }
}

func newConfig(opts []Option) *config {
	c := &config{logger: discardLogger}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
