package execute

import (
	"math/big"
	"time"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/eip712"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/events"
	"github.com/iov-one/quorum/x/guard"
	"github.com/iov-one/quorum/x/ledger"
	"github.com/iov-one/quorum/x/sigs"
	"github.com/iov-one/quorum/x/state"
)

// DefaultMaxDeadlineWindow is how far in the future a deadline may be.
const DefaultMaxDeadlineWindow = 30 * 24 * time.Hour

// Request is a transfer as submitted by the executor.
type Request struct {
	To         quorum.Address
	Value      *big.Int
	Data       []byte
	Deadline   quorum.UnixTime
	Signatures []byte
}

// Validate checks the request fields that do not depend on state.
func (r Request) Validate() error {
	if r.Value != nil && r.Value.Sign() < 0 {
		return errors.Wrap(errors.ErrAmount, "negative value")
	}
	if !eip712.IsUint256(r.Value) {
		return errors.Wrap(errors.ErrAmount, "value exceeds 256 bits")
	}
	if err := r.Deadline.Validate(); err != nil {
		return errors.Wrap(err, "deadline")
	}
	return nil
}

// Transfer returns the typed data that owners sign for this request.
func (r Request) Transfer(nonce uint64) eip712.Transfer {
	return eip712.Transfer{
		To:       r.To,
		Value:    r.Value,
		Data:     r.Data,
		Nonce:    nonce,
		Deadline: r.Deadline,
	}
}

// Result describes an executed transfer.
type Result struct {
	// Nonce is the nonce consumed by the transfer.
	Nonce uint64
	// Success is false if a best effort call failed.
	Success bool
	// ReturnData is the callee return data, or its failure payload.
	ReturnData []byte
}

// Config holds everything an Executor needs.
type Config struct {
	// Self is the engine address. It holds the value and cannot be called.
	Self       quorum.Address
	Hasher     *eip712.Hasher
	Validator  *sigs.Validator
	Dispatcher Dispatcher
	// Guard is shared with every other engine entry point.
	Guard   *guard.Guard
	Emitter events.Emitter
	// MaxDeadlineWindow defaults to DefaultMaxDeadlineWindow.
	MaxDeadlineWindow time.Duration
}

// Executor runs transfers.
type Executor struct {
	cfg Config
}

// NewExecutor returns an executor for the given configuration.
func NewExecutor(cfg Config) *Executor {
	if cfg.Guard == nil {
		cfg.Guard = &guard.Guard{}
	}
	if cfg.Emitter == nil {
		cfg.Emitter = events.Nop{}
	}
	if cfg.MaxDeadlineWindow == 0 {
		cfg.MaxDeadlineWindow = DefaultMaxDeadlineWindow
	}
	return &Executor{cfg: cfg}
}

// Execute runs a best effort transfer. A failing call does not fail the
// operation, the nonce stays consumed and the result reports Success false.
func (e *Executor) Execute(ctx quorum.Context, db quorum.CacheableKVStore, req Request) (*Result, error) {
	return e.run(ctx, db, req, false)
}

// ExecuteStrict runs an all or nothing transfer. A failing call fails the
// operation and nothing is changed. The error is ErrCallReverted carrying
// the callee payload, or ErrCallFailed if the callee gave none.
func (e *Executor) ExecuteStrict(ctx quorum.Context, db quorum.CacheableKVStore, req Request) (*Result, error) {
	return e.run(ctx, db, req, true)
}

// Digest returns the digest owners must sign to approve req, using the
// nonce currently stored in db.
func (e *Executor) Digest(ctx quorum.Context, db quorum.ReadOnlyKVStore, req Request) (eip712.Hash, error) {
	if err := req.Validate(); err != nil {
		return eip712.Hash{}, err
	}
	st, err := state.Load(db)
	if err != nil {
		return eip712.Hash{}, err
	}
	return e.digest(ctx, req, st.Nonce()), nil
}

func (e *Executor) digest(ctx quorum.Context, req Request, nonce uint64) eip712.Hash {
	chainID, _ := quorum.GetChainID(ctx)
	return e.cfg.Hasher.TransferDigest(chainID, req.Transfer(nonce))
}

func (e *Executor) run(ctx quorum.Context, db quorum.CacheableKVStore, req Request, strict bool) (*Result, error) {
	if err := e.cfg.Guard.Enter(); err != nil {
		return nil, err
	}
	defer e.cfg.Guard.Exit()

	var buf events.Buffer
	cache := db.CacheWrap()
	res, err := e.execute(ctx, cache, req, strict, &buf)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	buf.Flush(ctx, e.cfg.Emitter)
	return res, nil
}

func (e *Executor) execute(ctx quorum.Context, db quorum.KVCacheWrap, req Request, strict bool, buf *events.Buffer) (res *Result, err error) {
	defer errors.Recover(&err)

	if err := req.Validate(); err != nil {
		return nil, err
	}
	st, err := state.Load(db)
	if err != nil {
		return nil, err
	}
	if err := e.checkRequest(ctx, db, st, req); err != nil {
		return nil, err
	}

	nonce := st.Nonce()
	digest := e.digest(ctx, req, nonce)
	if _, err := e.cfg.Validator.Verify(digest, st.Threshold(), req.Signatures, st); err != nil {
		return nil, err
	}
	if _, err := st.IncrementNonce(); err != nil {
		return nil, err
	}
	if err := state.Save(db, st); err != nil {
		return nil, err
	}

	// The callee works on its own layer, so its writes can be dropped
	// while the consumed nonce is kept.
	sub := db.CacheWrap()
	ok, ret := e.cfg.Dispatcher.Dispatch(ctx, sub, Call{
		From:  e.cfg.Self,
		To:    req.To,
		Value: req.Value,
		Data:  req.Data,
	})
	if ok {
		if err := sub.Write(); err != nil {
			return nil, errors.Wrap(errors.ErrDatabase, err.Error())
		}
	} else {
		sub.Discard()
		if strict {
			if len(ret) > 0 {
				return nil, errors.Revert(ret)
			}
			return nil, errors.Wrapf(errors.ErrCallFailed, "to %s", req.To)
		}
	}

	quorum.GetLogger(ctx).Info("transfer executed",
		"module", "execute", "to", req.To, "nonce", nonce, "success", ok, "strict", strict)

	buf.Add(events.TransactionExecuted{
		To:      req.To,
		Value:   valueOrZero(req.Value),
		Nonce:   nonce,
		Success: ok,
	})
	return &Result{Nonce: nonce, Success: ok, ReturnData: ret}, nil
}

// checkRequest applies all cheap checks, in the order failures are
// reported.
func (e *Executor) checkRequest(ctx quorum.Context, db quorum.ReadOnlyKVStore, st *state.State, req Request) error {
	caller, ok := quorum.GetCaller(ctx)
	if !ok {
		return errors.Wrap(errors.ErrNotExecutor, "no caller")
	}
	if caller != st.Executor() {
		return errors.Wrapf(errors.ErrNotExecutor, "%s", caller)
	}

	now, ok := quorum.BlockTime(ctx)
	if !ok {
		return errors.Wrap(errors.ErrState, "block time not set")
	}
	current := quorum.AsUnixTime(now)
	if req.Deadline.Before(current) {
		return errors.Wrapf(errors.ErrExpired, "deadline %s", req.Deadline)
	}
	if req.Deadline.After(current.Add(e.cfg.MaxDeadlineWindow)) {
		return errors.Wrapf(errors.ErrDeadlineTooFar, "deadline %s", req.Deadline)
	}

	if req.To == e.cfg.Self {
		return errors.Wrap(errors.ErrSelfCall, "destination is the engine")
	}

	if req.Value != nil && req.Value.Sign() > 0 {
		balance, err := ledger.Balance(db, e.cfg.Self)
		if err != nil {
			return err
		}
		if balance.Cmp(req.Value) < 0 {
			return errors.Wrapf(errors.ErrInsufficientBalance, "holds %s, need %s", balance, req.Value)
		}
	}
	return nil
}

func valueOrZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}
