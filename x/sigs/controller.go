package sigs

import (
	"math/big"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
)

// OwnerChecker is the part of the owner set the validator needs.
type OwnerChecker interface {
	Has(quorum.Address) bool
}

// Validator verifies signature bundles against the current owner set.
type Validator struct {
	recoverer crypto.Recoverer
	halfOrder *big.Int
}

// NewValidator returns a validator that uses given recovery primitive.
func NewValidator(r crypto.Recoverer) *Validator {
	return &Validator{
		recoverer: r,
		halfOrder: crypto.HalfCurveOrder(),
	}
}

// Verify checks that bundle holds exactly threshold valid signatures of
// digest, created by distinct owners given in ascending address order.
//
// The bundle length is checked before any recovery is attempted. On
// success the recovered signers are returned in bundle order.
func (v *Validator) Verify(digest [crypto.DigestLength]byte, threshold uint32, bundle []byte, owners OwnerChecker) ([]quorum.Address, error) {
	if threshold == 0 {
		return nil, errors.Wrap(errors.ErrInvalidThreshold, "zero threshold")
	}
	if want := uint64(threshold) * crypto.SignatureLength; uint64(len(bundle)) != want {
		return nil, errors.Wrapf(errors.ErrSignatureLength, "want %d bytes, got %d", want, len(bundle))
	}

	signers := make([]quorum.Address, 0, threshold)
	var last quorum.Address
	for i := 0; i < int(threshold); i++ {
		unit := bundle[i*crypto.SignatureLength : (i+1)*crypto.SignatureLength]
		signer, err := v.recover(digest, unit)
		if err != nil {
			return nil, errors.Wrapf(err, "signature %d", i)
		}
		if !owners.Has(signer) {
			return nil, errors.Wrapf(errors.ErrNotOwner, "signature %d: %s", i, signer)
		}
		if i > 0 && !last.Less(signer) {
			return nil, errors.Wrapf(errors.ErrSignerOrder, "signature %d: %s after %s", i, signer, last)
		}
		last = signer
		signers = append(signers, signer)
	}
	return signers, nil
}

// recover applies the canonical form checks to a single unit and returns
// the signer address.
func (v *Validator) recover(digest [crypto.DigestLength]byte, unit []byte) (quorum.Address, error) {
	switch unit[64] {
	case crypto.RecoveryIDLow, crypto.RecoveryIDHigh:
	default:
		return quorum.ZeroAddress, errors.Wrapf(errors.ErrRecoveryID, "v=%d", unit[64])
	}
	s := new(big.Int).SetBytes(unit[32:64])
	if s.Cmp(v.halfOrder) > 0 {
		return quorum.ZeroAddress, errors.Wrap(errors.ErrMalleable, "s in upper half order")
	}
	signer, err := v.recoverer.Recover(digest, unit)
	if err != nil {
		if errors.ErrInvalidSignature.Is(err) {
			return quorum.ZeroAddress, err
		}
		return quorum.ZeroAddress, errors.Wrap(errors.ErrInvalidSignature, err.Error())
	}
	if signer.IsZero() {
		return quorum.ZeroAddress, errors.Wrap(errors.ErrInvalidSignature, "zero signer")
	}
	return signer, nil
}
