package eip712

import (
	"math/big"

	"github.com/iov-one/quorum"
)

// Hasher produces digests for a single engine instance. The chain identifier
// and the domain separator are computed once on creation and reused while
// the live chain identifier matches.
//
// Hasher is immutable after creation and safe for concurrent use.
type Hasher struct {
	chainID   *big.Int
	engine    quorum.Address
	separator Hash
}

// NewHasher returns a hasher bound to given chain and engine address.
func NewHasher(chainID *big.Int, engine quorum.Address) *Hasher {
	id := new(big.Int).Set(chainID)
	return &Hasher{
		chainID:   id,
		engine:    engine,
		separator: DomainSeparator(id, engine),
	}
}

// ChainID returns the chain identifier cached on creation.
func (h *Hasher) ChainID() *big.Int {
	return new(big.Int).Set(h.chainID)
}

// Engine returns the verifying engine address.
func (h *Hasher) Engine() quorum.Address {
	return h.engine
}

// DomainSeparator returns the separator for the live chain identifier. When
// the chain identifier differs from the cached one, for example after a
// chain split, the separator is recomputed. The cache is never updated.
func (h *Hasher) DomainSeparator(liveChainID *big.Int) Hash {
	if liveChainID == nil || liveChainID.Cmp(h.chainID) == 0 {
		return h.separator
	}
	return DomainSeparator(liveChainID, h.engine)
}

// TransferDigest returns the digest owners sign to approve given transfer.
func (h *Hasher) TransferDigest(liveChainID *big.Int, t Transfer) Hash {
	return Digest(h.DomainSeparator(liveChainID), t.StructHash())
}

// AdminDigest returns the digest owners sign to approve given action.
func (h *Hasher) AdminDigest(liveChainID *big.Int, a AdminAction) Hash {
	return Digest(h.DomainSeparator(liveChainID), a.StructHash())
}
