/*
Package app wires every component of the authorization engine together.

An Engine is created from a store that was initialized with a genesis
(see Initialize and InitChain). It owns the single reentrancy guard shared
by all entry points, so a callee reached through dispatch can never run an
authorized operation of the same engine.
*/
package app

import (
	"math/big"
	"sort"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/eip712"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/gconf"
	"github.com/iov-one/quorum/x/admin"
	"github.com/iov-one/quorum/x/events"
	"github.com/iov-one/quorum/x/execute"
	"github.com/iov-one/quorum/x/guard"
	"github.com/iov-one/quorum/x/ledger"
	"github.com/iov-one/quorum/x/sigs"
	"github.com/iov-one/quorum/x/state"
	"github.com/prometheus/client_golang/prometheus"
)

// Option configures an Engine.
type Option func(*options)

type options struct {
	recoverer  crypto.Recoverer
	dispatcher execute.Dispatcher
	emitter    events.Emitter
	metrics    prometheus.Registerer
}

// WithRecoverer replaces the secp256k1 signature recovery.
func WithRecoverer(r crypto.Recoverer) Option {
	return func(o *options) { o.recoverer = r }
}

// WithDispatcher replaces the default router. Router returns nil on an
// engine configured this way.
func WithDispatcher(d execute.Dispatcher) Option {
	return func(o *options) { o.dispatcher = d }
}

// WithEmitter sets where events are published.
func WithEmitter(em events.Emitter) Option {
	return func(o *options) { o.emitter = em }
}

// WithMetrics counts every published event with counters registered on reg.
// A registerer can serve a single engine.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) { o.metrics = reg }
}

// Engine is the threshold authorization engine.
type Engine struct {
	Hooks

	conf     *gconf.EngineConfig
	hasher   *eip712.Hasher
	guard    *guard.Guard
	router   *execute.Router
	emitter  events.Emitter
	executor *execute.Executor
	admin    *admin.Processor
}

// NewEngine loads the engine configuration from db and builds all
// components.
func NewEngine(db gconf.ReadStore, opts ...Option) (*Engine, error) {
	conf, err := gconf.LoadEngineConfig(db)
	if err != nil {
		return nil, errors.Wrap(err, "engine configuration")
	}

	o := options{
		recoverer: crypto.Secp256k1Recoverer{},
		emitter:   events.Nop{},
	}
	for _, fn := range opts {
		fn(&o)
	}
	if o.metrics != nil {
		o.emitter = events.Multi{o.emitter, events.NewMetrics(o.metrics)}
	}

	e := &Engine{
		conf:    conf,
		hasher:  eip712.NewHasher(conf.ChainIDInt(), conf.SelfAddress()),
		guard:   &guard.Guard{},
		emitter: o.emitter,
	}
	if o.dispatcher == nil {
		e.router = execute.NewRouter()
		o.dispatcher = e.router
	}
	validator := sigs.NewValidator(o.recoverer)
	e.executor = execute.NewExecutor(execute.Config{
		Self:              conf.SelfAddress(),
		Hasher:            e.hasher,
		Validator:         validator,
		Dispatcher:        o.dispatcher,
		Guard:             e.guard,
		Emitter:           o.emitter,
		MaxDeadlineWindow: conf.Window(),
	})
	e.admin = admin.NewProcessor(admin.Config{
		Hasher:    e.hasher,
		Validator: validator,
		Guard:     e.guard,
		Emitter:   o.emitter,
	})
	return e, nil
}

// Self returns the engine address.
func (e *Engine) Self() quorum.Address {
	return e.conf.SelfAddress()
}

// ChainID returns the chain id the engine was deployed on.
func (e *Engine) ChainID() *big.Int {
	return e.conf.ChainIDInt()
}

// Router returns the router used for dispatch, so callees can be
// registered. It is nil if the engine was built WithDispatcher.
func (e *Engine) Router() *execute.Router {
	return e.router
}

// Execute runs a best effort transfer.
func (e *Engine) Execute(ctx quorum.Context, db quorum.CacheableKVStore, req execute.Request) (*execute.Result, error) {
	return e.executor.Execute(ctx, db, req)
}

// ExecuteStrict runs an all or nothing transfer.
func (e *Engine) ExecuteStrict(ctx quorum.Context, db quorum.CacheableKVStore, req execute.Request) (*execute.Result, error) {
	return e.executor.ExecuteStrict(ctx, db, req)
}

// Admin applies any admin request and returns the consumed nonce.
func (e *Engine) Admin(ctx quorum.Context, db quorum.CacheableKVStore, req admin.Request, signatures []byte) (uint64, error) {
	return e.admin.Process(ctx, db, req, signatures)
}

// SetExecutor replaces the executor.
func (e *Engine) SetExecutor(ctx quorum.Context, db quorum.CacheableKVStore, executor quorum.Address, signatures []byte) (uint64, error) {
	return e.admin.SetExecutor(ctx, db, executor, signatures)
}

// AddOwner adds an owner and sets the new threshold.
func (e *Engine) AddOwner(ctx quorum.Context, db quorum.CacheableKVStore, owner quorum.Address, newThreshold uint32, signatures []byte) (uint64, error) {
	return e.admin.AddOwner(ctx, db, owner, newThreshold, signatures)
}

// RemoveOwner removes an owner and sets the new threshold.
func (e *Engine) RemoveOwner(ctx quorum.Context, db quorum.CacheableKVStore, owner quorum.Address, newThreshold uint32, signatures []byte) (uint64, error) {
	return e.admin.RemoveOwner(ctx, db, owner, newThreshold, signatures)
}

// SetThreshold changes the threshold.
func (e *Engine) SetThreshold(ctx quorum.Context, db quorum.CacheableKVStore, threshold uint32, signatures []byte) (uint64, error) {
	return e.admin.SetThreshold(ctx, db, threshold, signatures)
}

// CancelNonce burns the current nonce.
func (e *Engine) CancelNonce(ctx quorum.Context, db quorum.CacheableKVStore, signatures []byte) (uint64, error) {
	return e.admin.CancelNonce(ctx, db, signatures)
}

// Receive credits value sent to the engine by from. Anybody may send value
// at any time, including a callee during dispatch, so the guard is not
// taken.
func (e *Engine) Receive(ctx quorum.Context, db quorum.CacheableKVStore, from quorum.Address, value *big.Int) error {
	if value == nil || value.Sign() <= 0 {
		return errors.Wrap(errors.ErrAmount, "value must be positive")
	}
	cache := db.CacheWrap()
	if err := ledger.IssueValue(cache, e.Self(), value); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	quorum.GetLogger(ctx).Debug("value received", "module", "app", "from", from, "value", value)
	e.emitter.Emit(ctx, events.ValueReceived{From: from, Value: new(big.Int).Set(value)})
	return nil
}

// TransferDigest returns the digest owners sign to approve req at the
// current nonce.
func (e *Engine) TransferDigest(ctx quorum.Context, db quorum.ReadOnlyKVStore, req execute.Request) (eip712.Hash, error) {
	return e.executor.Digest(ctx, db, req)
}

// AdminDigest returns the digest owners sign to approve req at the current
// nonce.
func (e *Engine) AdminDigest(ctx quorum.Context, db quorum.ReadOnlyKVStore, req admin.Request) (eip712.Hash, error) {
	return e.admin.Digest(ctx, db, req)
}

// DomainSeparator returns the separator for the live chain id found in ctx.
func (e *Engine) DomainSeparator(ctx quorum.Context) eip712.Hash {
	chainID, _ := quorum.GetChainID(ctx)
	return e.hasher.DomainSeparator(chainID)
}

// Info is a read only view of the authorization state.
type Info struct {
	Owners    []quorum.Address `json:"owners"`
	Threshold uint32           `json:"threshold"`
	Executor  quorum.Address   `json:"executor"`
	Nonce     uint64           `json:"nonce"`
	Balance   string           `json:"balance"`
}

// Info returns the current authorization state and the engine balance.
// Owners are listed in ascending order.
func (e *Engine) Info(db quorum.ReadOnlyKVStore) (*Info, error) {
	st, err := state.Load(db)
	if err != nil {
		return nil, err
	}
	balance, err := e.Balance(db)
	if err != nil {
		return nil, err
	}
	owners := st.Owners()
	sort.Slice(owners, func(i, j int) bool { return owners[i].Less(owners[j]) })
	return &Info{
		Owners:    owners,
		Threshold: st.Threshold(),
		Executor:  st.Executor(),
		Nonce:     st.Nonce(),
		Balance:   balance.String(),
	}, nil
}

// Owners returns all owners.
func (e *Engine) Owners(db quorum.ReadOnlyKVStore) ([]quorum.Address, error) {
	st, err := state.Load(db)
	if err != nil {
		return nil, err
	}
	return st.Owners(), nil
}

// IsOwner returns true if a is an owner.
func (e *Engine) IsOwner(db quorum.ReadOnlyKVStore, a quorum.Address) (bool, error) {
	st, err := state.Load(db)
	if err != nil {
		return false, err
	}
	return st.IsOwner(a), nil
}

// Threshold returns the number of required signatures.
func (e *Engine) Threshold(db quorum.ReadOnlyKVStore) (uint32, error) {
	st, err := state.Load(db)
	if err != nil {
		return 0, err
	}
	return st.Threshold(), nil
}

// Executor returns the address allowed to submit transfers.
func (e *Engine) Executor(db quorum.ReadOnlyKVStore) (quorum.Address, error) {
	st, err := state.Load(db)
	if err != nil {
		return quorum.ZeroAddress, err
	}
	return st.Executor(), nil
}

// Nonce returns the nonce the next operation must be signed for.
func (e *Engine) Nonce(db quorum.ReadOnlyKVStore) (uint64, error) {
	st, err := state.Load(db)
	if err != nil {
		return 0, err
	}
	return st.Nonce(), nil
}

// Balance returns the value held by the engine.
func (e *Engine) Balance(db quorum.ReadOnlyKVStore) (*big.Int, error) {
	return ledger.Balance(db, e.Self())
}
