// Package debug builds the zap loggers used by the layout engine and the
// CLI.
//
// When the FLEX_DEBUG environment variable is set to a file path, trees
// created without an explicit logger append debug entries to that file
// (rotated by lumberjack). Otherwise, logging is a no-op.
package debug
