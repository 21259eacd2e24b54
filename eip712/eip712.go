package eip712

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"golang.org/x/crypto/sha3"
)

const (
	// Name is the domain name all digests are bound to.
	Name = "Quorum"
	// Version is the domain version all digests are bound to.
	Version = "1"
)

// Type signatures, exactly as they are hashed.
const (
	DomainType      = "EIP712Domain(string name,string version,uint256 chainId,address verifyingContract)"
	TransferType    = "Transfer(address to,uint256 value,bytes data,uint256 nonce,uint256 deadline)"
	AdminActionType = "AdminAction(string action,address target,uint256 value,uint256 nonce)"
)

var (
	domainTypeHash      = Keccak256([]byte(DomainType))
	transferTypeHash    = Keccak256([]byte(TransferType))
	adminActionTypeHash = Keccak256([]byte(AdminActionType))

	nameHash    = Keccak256([]byte(Name))
	versionHash = Keccak256([]byte(Version))
)

// Hash is a 32 byte keccak256 result.
type Hash [32]byte

// Hex returns the 0x prefixed hex representation.
func (h Hash) Hex() string {
	return common.Hash(h).Hex()
}

// String implements fmt.Stringer.
func (h Hash) String() string {
	return h.Hex()
}

// Keccak256 returns the legacy keccak256 hash of the concatenation of all
// given chunks.
func Keccak256(chunks ...[]byte) Hash {
	var h Hash
	d := sha3.NewLegacyKeccak256()
	for _, c := range chunks {
		d.Write(c)
	}
	d.Sum(h[:0])
	return h
}

// Transfer is an owner approved value transfer with an arbitrary call
// payload.
type Transfer struct {
	To       quorum.Address
	Value    *big.Int
	Data     []byte
	Nonce    uint64
	Deadline quorum.UnixTime
}

// StructHash returns the typed hash of the transfer. The payload is
// represented by its keccak256 hash.
func (t Transfer) StructHash() Hash {
	return Keccak256(
		transferTypeHash[:],
		encodeAddress(t.To),
		encodeUint256(t.Value),
		hashBytes(t.Data),
		encodeUint64(t.Nonce),
		encodeUint256(big.NewInt(int64(t.Deadline))),
	)
}

// AdminAction is an owner approved change of the engine governance.
type AdminAction struct {
	Action string
	Target quorum.Address
	Value  uint64
	Nonce  uint64
}

// StructHash returns the typed hash of the action. The action tag is
// represented by its keccak256 hash.
func (a AdminAction) StructHash() Hash {
	return Keccak256(
		adminActionTypeHash[:],
		hashBytes([]byte(a.Action)),
		encodeAddress(a.Target),
		encodeUint64(a.Value),
		encodeUint64(a.Nonce),
	)
}

// DomainSeparator computes the separator for given chain and engine address.
func DomainSeparator(chainID *big.Int, verifyingContract quorum.Address) Hash {
	return Keccak256(
		domainTypeHash[:],
		nameHash[:],
		versionHash[:],
		encodeUint256(chainID),
		encodeAddress(verifyingContract),
	)
}

// Digest returns the final hash that is signed.
func Digest(separator, structHash Hash) Hash {
	return Keccak256([]byte{0x19, 0x01}, separator[:], structHash[:])
}

func encodeAddress(a quorum.Address) []byte {
	return common.LeftPadBytes(a[:], 32)
}

// IsUint256 reports whether n fits a uint256 word. A nil value counts as
// zero.
func IsUint256(n *big.Int) bool {
	return n == nil || (n.Sign() >= 0 && n.BitLen() <= 256)
}

// encodeUint256 encodes n as 32 big endian bytes. A nil value is encoded as
// zero. Values outside of the uint256 range are refused with a panic, they
// must be rejected before hashing.
func encodeUint256(n *big.Int) []byte {
	if n == nil {
		return make([]byte, 32)
	}
	if !IsUint256(n) {
		panic(errors.Wrapf(errors.ErrOverflow, "%s is not a uint256", n))
	}
	return math.PaddedBigBytes(n, 32)
}

func encodeUint64(n uint64) []byte {
	return encodeUint256(new(big.Int).SetUint64(n))
}

func hashBytes(b []byte) []byte {
	h := Keccak256(b)
	return h[:]
}
