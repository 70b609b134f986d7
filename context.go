package dorium

import (
	"context"

	"github.com/tendermint/tendermint/libs/log"
)

// Context is just a replacement for the standard implementation, for
// better readability of the handler signatures.
type Context = context.Context

// DefaultLogger is used for all contexts that have not set anything
// themselves.
var DefaultLogger = log.NewNopLogger()

type contextKey int

const (
	contextKeyLogger contextKey = iota
	contextKeyChainID
)

// WithLogger sets the logger for this context.
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// GetLogger returns the logger stored in the context, or
// DefaultLogger if none was set.
func GetLogger(ctx Context) log.Logger {
	if logger, ok := ctx.Value(contextKeyLogger).(log.Logger); ok {
		return logger
	}
	return DefaultLogger
}

// WithChainID sets the chain id for the context. It must only be set
// once, on host setup.
func WithChainID(ctx Context, chainID string) Context {
	if ctx.Value(contextKeyChainID) != nil {
		panic("chain id already set")
	}
	return context.WithValue(ctx, contextKeyChainID, chainID)
}

// GetChainID returns the chain id from the context, or an empty
// string.
func GetChainID(ctx Context) string {
	if id, ok := ctx.Value(contextKeyChainID).(string); ok {
		return id
	}
	return ""
}
