package sigs

import (
	"sort"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
)

// Units splits a bundle into its 65 byte signature units.
func Units(bundle []byte) ([][]byte, error) {
	if len(bundle)%crypto.SignatureLength != 0 {
		return nil, errors.Wrapf(errors.ErrSignatureLength, "%d is not a multiple of %d", len(bundle), crypto.SignatureLength)
	}
	units := make([][]byte, 0, len(bundle)/crypto.SignatureLength)
	for i := 0; i < len(bundle); i += crypto.SignatureLength {
		units = append(units, bundle[i:i+crypto.SignatureLength])
	}
	return units, nil
}

// NewBundle orders signature units by the address they recover to and
// concatenates them. Signatures may be given in any order, for example as
// they were collected from the owners.
func NewBundle(r crypto.Recoverer, digest [crypto.DigestLength]byte, signatures ...[]byte) ([]byte, error) {
	type signed struct {
		signer quorum.Address
		sig    []byte
	}
	all := make([]signed, 0, len(signatures))
	for i, sig := range signatures {
		if len(sig) != crypto.SignatureLength {
			return nil, errors.Wrapf(errors.ErrSignatureLength, "signature %d", i)
		}
		signer, err := r.Recover(digest, sig)
		if err != nil {
			return nil, errors.Wrapf(err, "signature %d", i)
		}
		all = append(all, signed{signer: signer, sig: sig})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].signer.Less(all[j].signer) })

	bundle := make([]byte, 0, len(all)*crypto.SignatureLength)
	for _, s := range all {
		bundle = append(bundle, s.sig...)
	}
	return bundle, nil
}

// Sign signs digest with every signer and returns a bundle ordered by the
// signer addresses.
func Sign(digest [crypto.DigestLength]byte, signers ...crypto.Signer) ([]byte, error) {
	sorted := make([]crypto.Signer, len(signers))
	copy(sorted, signers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Address().Less(sorted[j].Address()) })

	bundle := make([]byte, 0, len(sorted)*crypto.SignatureLength)
	for _, s := range sorted {
		sig, err := s.Sign(digest)
		if err != nil {
			return nil, errors.Wrapf(err, "sign with %s", s.Address())
		}
		bundle = append(bundle, sig...)
	}
	return bundle, nil
}
