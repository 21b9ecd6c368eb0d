package observability

import "go.uber.org/zap"

// Re-exported zap field constructors so call sites only import this package.
//
//nolint:gochecknoglobals // Function aliases, not mutable state
var (
	String   = zap.String
	Int      = zap.Int
	Int64    = zap.Int64
	Float64  = zap.Float64
	Bool     = zap.Bool
	Duration = zap.Duration
	Error    = zap.Error
)
