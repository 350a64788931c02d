package layout

import "go.uber.org/zap"

// Option configures a Tree.
type Option func(*Tree)

// WithLogger routes the tree's debug events to logger.
// By default a tree logs to the FLEX_DEBUG file when that variable is set
// and discards everything otherwise.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Tree) {
		t.log = logger
	}
}
