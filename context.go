/*
Package quorum defines all common interfaces used by the threshold
authorization engine, as well as implementations of some of the simpler
components (when interfaces would be too much overhead).

We pass context through context.Context between the engine entry points and
its components. To do so, quorum defines some common keys to store info
provided by the host environment, such as the block time, the live chain
identifier and the transport caller.

There exist two functions for every XYZ of type T that we support in Context:

  WithXYZ(Context, T) Context
  GetXYZ(Context) (val T, ok bool)

WithXYZ panics if the value was previously set to avoid lower-level modules
overwriting the value.
*/
package quorum

import (
	"context"
	"math/big"
	"time"

	"github.com/tendermint/tendermint/libs/log"
)

type contextKey int // local to the quorum module

const (
	contextKeyChainID contextKey = iota
	contextKeyBlockTime
	contextKeyCaller
	contextKeyLogger
)

var (
	// DefaultLogger is used for all context that have not
	// set anything themselves
	DefaultLogger = log.NewNopLogger()
)

// Context is just an alias for the standard implementation.
// We use functions to extend it to our domain
type Context = context.Context

// WithChainID sets the live chain identifier of the execution environment.
// It panics if the chain id was already set.
func WithChainID(ctx Context, chainID *big.Int) Context {
	if ctx.Value(contextKeyChainID) != nil {
		panic("Chain ID already set")
	}
	return context.WithValue(ctx, contextKeyChainID, new(big.Int).Set(chainID))
}

// GetChainID returns the live chain identifier. It returns false if the host
// did not provide one.
func GetChainID(ctx Context) (*big.Int, bool) {
	val, ok := ctx.Value(contextKeyChainID).(*big.Int)
	if !ok {
		return nil, false
	}
	return new(big.Int).Set(val), true
}

// WithBlockTime sets the block time for the context. It panics if the block
// time was already set.
func WithBlockTime(ctx Context, t time.Time) Context {
	if ctx.Value(contextKeyBlockTime) != nil {
		panic("block time already set")
	}
	return context.WithValue(ctx, contextKeyBlockTime, t)
}

// BlockTime returns current block time as declared by the host. All
// deadline checks are made against this value.
func BlockTime(ctx Context) (time.Time, bool) {
	t, ok := ctx.Value(contextKeyBlockTime).(time.Time)
	return t, ok
}

// WithCaller sets the transport identity that submitted the operation. It
// panics if the caller was already set.
func WithCaller(ctx Context, caller Address) Context {
	if ctx.Value(contextKeyCaller) != nil {
		panic("caller already set")
	}
	return context.WithValue(ctx, contextKeyCaller, caller)
}

// GetCaller returns the transport identity that submitted the operation.
func GetCaller(ctx Context) (Address, bool) {
	a, ok := ctx.Value(contextKeyCaller).(Address)
	return a, ok
}

// WithLogger sets the logger for this context.
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// WithLogInfo accepts keyvalue pairs, and returns another context like this,
// after passing all the keyvals to the Logger
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	logger := GetLogger(ctx).With(keyvals...)
	return WithLogger(ctx, logger)
}

// GetLogger returns the currently set logger, or DefaultLogger if none was
// set.
func GetLogger(ctx Context) log.Logger {
	val, ok := ctx.Value(contextKeyLogger).(log.Logger)
	if !ok {
		return DefaultLogger
	}
	return val
}
