package crypto

import (
	"crypto/ecdsa"
	"encoding/hex"
	"math/big"
	"strings"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

var (
	secp256k1N     = ethcrypto.S256().Params().N
	secp256k1HalfN = new(big.Int).Rsh(secp256k1N, 1)
)

// HalfCurveOrder returns n/2 of the secp256k1 curve. A signature with an s
// value greater than this is not canonical.
func HalfCurveOrder() *big.Int {
	return new(big.Int).Set(secp256k1HalfN)
}

// CurveOrder returns n of the secp256k1 curve.
func CurveOrder() *big.Int {
	return new(big.Int).Set(secp256k1N)
}

// PrivateKey is a secp256k1 private key producing EVM compatible
// signatures.
type PrivateKey struct {
	key *ecdsa.PrivateKey
}

var _ Signer = (*PrivateKey)(nil)

// GenPrivKeySecp256k1 creates a new random key.
func GenPrivKeySecp256k1() (*PrivateKey, error) {
	key, err := ethcrypto.GenerateKey()
	if err != nil {
		return nil, errors.Wrap(err, "generate secp256k1 key")
	}
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromHex decodes a hex encoded, optionally 0x prefixed, raw
// private key.
func PrivateKeyFromHex(enc string) (*PrivateKey, error) {
	key, err := ethcrypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(enc), "0x"))
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return &PrivateKey{key: key}, nil
}

// Hex returns the hex encoded raw private key.
func (p *PrivateKey) Hex() string {
	return hex.EncodeToString(ethcrypto.FromECDSA(p.key))
}

// Address returns the address derived from the public key.
func (p *PrivateKey) Address() quorum.Address {
	return quorum.Address(ethcrypto.PubkeyToAddress(p.key.PublicKey))
}

// Sign signs the provided digest and returns a 65-byte signature with the
// recovery indicator normalized to {27, 28}.
func (p *PrivateKey) Sign(digest [DigestLength]byte) ([]byte, error) {
	sig, err := ethcrypto.Sign(digest[:], p.key)
	if err != nil {
		return nil, errors.Wrap(err, "sign digest")
	}
	// crypto.Sign returns v as 0 or 1.
	sig[64] = (sig[64] & 1) + RecoveryIDLow
	return sig, nil
}

// Secp256k1Recoverer recovers signer addresses using the go-ethereum
// secp256k1 implementation.
type Secp256k1Recoverer struct{}

var _ Recoverer = Secp256k1Recoverer{}

// Recover implements Recoverer.
func (Secp256k1Recoverer) Recover(digest [DigestLength]byte, sig []byte) (quorum.Address, error) {
	if len(sig) != SignatureLength {
		return quorum.ZeroAddress, errors.Wrapf(errors.ErrSignatureLength, "got %d bytes", len(sig))
	}
	v := sig[64]
	if v != RecoveryIDLow && v != RecoveryIDHigh {
		return quorum.ZeroAddress, errors.Wrapf(errors.ErrRecoveryID, "v=%d", v)
	}

	raw := make([]byte, SignatureLength)
	copy(raw, sig)
	raw[64] = v - RecoveryIDLow

	pub, err := ethcrypto.SigToPub(digest[:], raw)
	if err != nil {
		return quorum.ZeroAddress, errors.Wrap(errors.ErrInvalidSignature, err.Error())
	}
	addr := quorum.Address(ethcrypto.PubkeyToAddress(*pub))
	if addr.IsZero() {
		return quorum.ZeroAddress, errors.Wrap(errors.ErrInvalidSignature, "zero address")
	}
	return addr, nil
}
