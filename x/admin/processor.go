package admin

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/eip712"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/events"
	"github.com/iov-one/quorum/x/guard"
	"github.com/iov-one/quorum/x/sigs"
	"github.com/iov-one/quorum/x/state"
)

// Config holds everything a Processor needs.
type Config struct {
	Hasher    *eip712.Hasher
	Validator *sigs.Validator
	// Guard is shared with every other engine entry point.
	Guard   *guard.Guard
	Emitter events.Emitter
}

// Processor applies admin actions.
type Processor struct {
	cfg Config
}

// NewProcessor returns a processor for the given configuration.
func NewProcessor(cfg Config) *Processor {
	if cfg.Guard == nil {
		cfg.Guard = &guard.Guard{}
	}
	if cfg.Emitter == nil {
		cfg.Emitter = events.Nop{}
	}
	return &Processor{cfg: cfg}
}

// SetExecutor replaces the executor.
func (p *Processor) SetExecutor(ctx quorum.Context, db quorum.CacheableKVStore, executor quorum.Address, signatures []byte) (uint64, error) {
	return p.Process(ctx, db, SetExecutor(executor), signatures)
}

// AddOwner adds an owner and sets the new threshold.
func (p *Processor) AddOwner(ctx quorum.Context, db quorum.CacheableKVStore, owner quorum.Address, newThreshold uint32, signatures []byte) (uint64, error) {
	return p.Process(ctx, db, AddOwner(owner, newThreshold), signatures)
}

// RemoveOwner removes an owner and sets the new threshold.
func (p *Processor) RemoveOwner(ctx quorum.Context, db quorum.CacheableKVStore, owner quorum.Address, newThreshold uint32, signatures []byte) (uint64, error) {
	return p.Process(ctx, db, RemoveOwner(owner, newThreshold), signatures)
}

// SetThreshold changes the threshold.
func (p *Processor) SetThreshold(ctx quorum.Context, db quorum.CacheableKVStore, threshold uint32, signatures []byte) (uint64, error) {
	return p.Process(ctx, db, SetThreshold(threshold), signatures)
}

// CancelNonce burns the current nonce, invalidating every pending approval
// that commits to it.
func (p *Processor) CancelNonce(ctx quorum.Context, db quorum.CacheableKVStore, signatures []byte) (uint64, error) {
	return p.Process(ctx, db, CancelNonce(), signatures)
}

// Digest returns the digest owners must sign to approve req, using the
// nonce currently stored in db.
func (p *Processor) Digest(ctx quorum.Context, db quorum.ReadOnlyKVStore, req Request) (eip712.Hash, error) {
	st, err := state.Load(db)
	if err != nil {
		return eip712.Hash{}, err
	}
	return p.digest(ctx, req, st.Nonce()), nil
}

func (p *Processor) digest(ctx quorum.Context, req Request, nonce uint64) eip712.Hash {
	chainID, _ := quorum.GetChainID(ctx)
	return p.cfg.Hasher.AdminDigest(chainID, req.AdminAction(nonce))
}

// Process verifies and applies any admin request. It returns the consumed
// nonce. The caller is never inspected.
func (p *Processor) Process(ctx quorum.Context, db quorum.CacheableKVStore, req Request, signatures []byte) (uint64, error) {
	if err := p.cfg.Guard.Enter(); err != nil {
		return 0, err
	}
	defer p.cfg.Guard.Exit()

	var buf events.Buffer
	cache := db.CacheWrap()
	nonce, err := p.process(ctx, cache, req, signatures, &buf)
	if err != nil {
		cache.Discard()
		return 0, err
	}
	if err := cache.Write(); err != nil {
		return 0, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	buf.Flush(ctx, p.cfg.Emitter)
	return nonce, nil
}

func (p *Processor) process(ctx quorum.Context, db quorum.KVStore, req Request, signatures []byte, buf *events.Buffer) (nonce uint64, err error) {
	defer errors.Recover(&err)

	if err := req.Validate(); err != nil {
		return 0, err
	}
	st, err := state.Load(db)
	if err != nil {
		return 0, err
	}

	nonce = st.Nonce()
	digest := p.digest(ctx, req, nonce)
	if _, err := p.cfg.Validator.Verify(digest, st.Threshold(), signatures, st); err != nil {
		return 0, err
	}
	if _, err := st.IncrementNonce(); err != nil {
		return 0, err
	}
	if err := apply(st, req, nonce, buf); err != nil {
		return 0, err
	}
	if err := state.Save(db, st); err != nil {
		return 0, err
	}

	quorum.GetLogger(ctx).Info("admin action applied",
		"module", "admin", "action", req.Action, "target", req.Target, "value", req.Value, "nonce", nonce)
	return nonce, nil
}

// apply mutates the state according to the request and records the
// matching events.
func apply(st *state.State, req Request, nonce uint64, buf *events.Buffer) error {
	switch req.Action {
	case ActionSetExecutor:
		if err := st.SetExecutor(req.Target); err != nil {
			return err
		}
		buf.Add(events.ExecutorChanged{Executor: req.Target, Nonce: nonce})
	case ActionAddOwner:
		threshold := uint32(req.Value)
		if err := st.AddOwner(req.Target, threshold); err != nil {
			return err
		}
		buf.Add(events.OwnerAdded{Owner: req.Target, Threshold: threshold, Nonce: nonce})
		buf.Add(events.ThresholdChanged{Threshold: threshold, Nonce: nonce})
	case ActionRemoveOwner:
		threshold := uint32(req.Value)
		if err := st.RemoveOwner(req.Target, threshold); err != nil {
			return err
		}
		buf.Add(events.OwnerRemoved{Owner: req.Target, Threshold: threshold, Nonce: nonce})
		buf.Add(events.ThresholdChanged{Threshold: threshold, Nonce: nonce})
	case ActionSetThreshold:
		threshold := uint32(req.Value)
		if err := st.SetThreshold(threshold); err != nil {
			return err
		}
		buf.Add(events.ThresholdChanged{Threshold: threshold, Nonce: nonce})
	case ActionCancelNonce:
		buf.Add(events.NonceCancelled{Nonce: nonce})
	default:
		return errors.Wrapf(errors.ErrInput, "unknown action %q", req.Action)
	}
	return nil
}
