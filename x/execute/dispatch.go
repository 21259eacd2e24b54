package execute

import (
	"math/big"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/ledger"
)

// Call is a single outgoing call made by the engine.
type Call struct {
	From  quorum.Address
	To    quorum.Address
	Value *big.Int
	Data  []byte
}

// Dispatcher performs outgoing calls. All writes of the call go to db, which
// the executor discards when the call fails.
type Dispatcher interface {
	// Dispatch returns false if the call failed. ret holds the callee
	// return data on success or its failure payload, if any, on failure.
	Dispatch(ctx quorum.Context, db quorum.KVStore, call Call) (ok bool, ret []byte)
}

// Callee is code living at an address that can be called by the engine.
type Callee interface {
	// Call handles the call. Return an error created with errors.Revert to
	// fail with a payload.
	Call(ctx quorum.Context, db quorum.KVStore, call Call) ([]byte, error)
}

// CalleeFunc adapts a function to the Callee interface.
type CalleeFunc func(ctx quorum.Context, db quorum.KVStore, call Call) ([]byte, error)

// Call implements Callee.
func (f CalleeFunc) Call(ctx quorum.Context, db quorum.KVStore, call Call) ([]byte, error) {
	return f(ctx, db, call)
}

// Router is a Dispatcher that moves value on the ledger and then invokes
// the callee registered at the destination, if any. Destinations without a
// callee just receive the value.
type Router struct {
	routes map[quorum.Address]Callee
}

var _ Dispatcher = (*Router)(nil)

// NewRouter returns an empty router.
func NewRouter() *Router {
	return &Router{
		routes: make(map[quorum.Address]Callee),
	}
}

// Register installs a callee at given address. It panics when the address
// is zero or already taken, as this is a wiring mistake.
func (r *Router) Register(addr quorum.Address, c Callee) {
	if addr.IsZero() {
		panic("cannot register a callee at the zero address")
	}
	if _, ok := r.routes[addr]; ok {
		panic("callee already registered at " + addr.String())
	}
	r.routes[addr] = c
}

// Callee returns the callee registered at given address or nil.
func (r *Router) Callee(addr quorum.Address) Callee {
	return r.routes[addr]
}

// Dispatch implements Dispatcher.
func (r *Router) Dispatch(ctx quorum.Context, db quorum.KVStore, call Call) (bool, []byte) {
	logger := quorum.GetLogger(ctx).With("module", "router")

	if err := ledger.MoveValue(db, call.From, call.To, call.Value); err != nil {
		logger.Debug("value move failed", "to", call.To, "err", err)
		return false, nil
	}
	c := r.routes[call.To]
	if c == nil {
		return true, nil
	}
	ret, err := invoke(ctx, db, c, call)
	if err != nil {
		logger.Debug("call failed", "to", call.To, "err", err)
		data, _ := errors.RevertData(err)
		return false, data
	}
	return true, ret
}

// invoke runs the callee and converts a panic into a regular failure.
func invoke(ctx quorum.Context, db quorum.KVStore, c Callee, call Call) (ret []byte, err error) {
	defer errors.Recover(&err)
	return c.Call(ctx, db, call)
}
