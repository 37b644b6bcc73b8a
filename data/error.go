package data

import "github.com/ardnew/stache/mustache"

// Predefined errors (sentinel values).
var (
	ErrDecode       = mustache.NewError("failed to decode data")
	ErrNotMapping   = mustache.NewError("data document is not a mapping")
	ErrAssignment   = mustache.NewError("invalid assignment")
	ErrExprCompile  = mustache.NewError("failed to compile expression")
	ErrExprEvaluate = mustache.NewError("failed to evaluate expression")
	ErrEncode       = mustache.NewError("failed to encode data")
)
