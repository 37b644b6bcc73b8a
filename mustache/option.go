package mustache

import (
	"github.com/ardnew/stache/log"
)

// DefaultMaxDepth is the default maximum nesting depth of partials during a
// single render. Users may modify this before rendering to change the
// default.
var DefaultMaxDepth = 100

// DefaultOpen and DefaultClose are the tag delimiters in effect at the start
// of every compilation.
const (
	DefaultOpen  = "{{"
	DefaultClose = "}}"
)

// config holds the options shared by compilation, parsing, and rendering.
type config struct {
	logger   log.Logger
	maxDepth int
	open     string
	close    string
}

// Option configures compilation, parsing, or rendering behavior.
type Option func(*config)

// makeConfig returns the default configuration overridden by opts.
func makeConfig(opts ...Option) config {
	cfg := config{
		maxDepth: DefaultMaxDepth,
		open:     DefaultOpen,
		close:    DefaultClose,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithLogger sets the structured logger used for trace and diagnostic
// output. The zero [log.Logger] discards everything.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMaxDepth sets the maximum nesting depth of partials.
// Non-positive values leave the current setting unchanged.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// WithDelimiters sets the tag delimiters in effect at the start of
// compilation. Empty values leave the corresponding delimiter unchanged.
// The setting applies to a single call only.
func WithDelimiters(left, right string) Option {
	return func(c *config) {
		if left != "" {
			c.open = left
		}

		if right != "" {
			c.close = right
		}
	}
}
