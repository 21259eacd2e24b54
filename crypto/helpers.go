package crypto

import (
	"github.com/iov-one/quorum"
)

// SignatureLength is the size of a single signature unit: 32 bytes r,
// 32 bytes s and 1 byte recovery indicator.
const SignatureLength = 65

// DigestLength is the size of a signed digest.
const DigestLength = 32

// Recovery indicators accepted inside of a signature unit.
const (
	RecoveryIDLow  byte = 27
	RecoveryIDHigh byte = 28
)

// Signer is the functionality we use from a private key
// No serializing to support hardware devices as well.
type Signer interface {
	// Sign returns a 65 byte r || s || v signature of given digest, with v
	// being either 27 or 28.
	Sign(digest [DigestLength]byte) ([]byte, error)
	// Address returns the address that a signature created by this signer
	// recovers to.
	Address() quorum.Address
}

// Recoverer is the elliptic curve recovery primitive. It is used as an
// external capability and does not implement any policy checks (low s,
// ownership, ordering) on its own.
type Recoverer interface {
	// Recover returns the address of the key that created given 65 byte
	// r || s || v signature over digest. v must be 27 or 28.
	Recover(digest [DigestLength]byte, sig []byte) (quorum.Address, error)
}
