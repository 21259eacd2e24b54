package sigs

import (
	"math/big"
	"sort"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/quorumtest/assert"
)

type ownerList []quorum.Address

func (o ownerList) Has(a quorum.Address) bool {
	for _, x := range o {
		if x == a {
			return true
		}
	}
	return false
}

// sortedKeys returns n keys ordered by their address.
func sortedKeys(t testing.TB, n int) []*crypto.PrivateKey {
	t.Helper()
	keys := make([]*crypto.PrivateKey, n)
	for i := range keys {
		k, err := crypto.GenPrivKeySecp256k1()
		assert.Nil(t, err)
		keys[i] = k
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Address().Less(keys[j].Address()) })
	return keys
}

func addresses(keys ...*crypto.PrivateKey) ownerList {
	res := make(ownerList, len(keys))
	for i, k := range keys {
		res[i] = k.Address()
	}
	return res
}

func mustSign(t testing.TB, k *crypto.PrivateKey, digest [32]byte) []byte {
	t.Helper()
	sig, err := k.Sign(digest)
	assert.Nil(t, err)
	return sig
}

func concat(units ...[]byte) []byte {
	var res []byte
	for _, u := range units {
		res = append(res, u...)
	}
	return res
}

// malleate returns the high s twin of a canonical signature. It recovers to
// the same signer.
func malleate(sig []byte) []byte {
	out := make([]byte, len(sig))
	copy(out, sig)
	s := new(big.Int).SetBytes(sig[32:64])
	s.Sub(crypto.CurveOrder(), s)
	sb := s.Bytes()
	for i := 32; i < 64; i++ {
		out[i] = 0
	}
	copy(out[64-len(sb):64], sb)
	if out[64] == crypto.RecoveryIDLow {
		out[64] = crypto.RecoveryIDHigh
	} else {
		out[64] = crypto.RecoveryIDLow
	}
	return out
}

func TestValidatorVerify(t *testing.T) {
	keys := sortedKeys(t, 4)
	a, b, c, outsider := keys[0], keys[1], keys[2], keys[3]
	owners := addresses(a, b, c)
	digest := [32]byte{0: 0xab, 31: 0x01}

	sigA := mustSign(t, a, digest)
	sigB := mustSign(t, b, digest)
	sigC := mustSign(t, c, digest)

	badV := append([]byte{}, sigB...)
	badV[64] = 1

	garbage := make([]byte, crypto.SignatureLength)
	for i := 0; i < 32; i++ {
		garbage[i] = 0xff
	}
	garbage[63] = 1
	garbage[64] = crypto.RecoveryIDLow

	cases := map[string]struct {
		threshold   uint32
		bundle      []byte
		wantErr     *errors.Error
		wantSigners ownerList
	}{
		"two of three in order": {
			threshold:   2,
			bundle:      concat(sigA, sigC),
			wantSigners: ownerList{a.Address(), c.Address()},
		},
		"all three": {
			threshold:   3,
			bundle:      concat(sigA, sigB, sigC),
			wantSigners: owners,
		},
		"reversed order": {
			threshold: 2,
			bundle:    concat(sigB, sigA),
			wantErr:   errors.ErrSignerOrder,
		},
		"same signer twice": {
			threshold: 2,
			bundle:    concat(sigA, sigA),
			wantErr:   errors.ErrSignerOrder,
		},
		"signer outside of owners": {
			threshold: 2,
			bundle:    concat(sigA, mustSign(t, outsider, digest)),
			wantErr:   errors.ErrNotOwner,
		},
		"bundle too short": {
			threshold: 2,
			bundle:    sigA,
			wantErr:   errors.ErrSignatureLength,
		},
		"bundle too long": {
			threshold: 1,
			bundle:    concat(sigA, sigB),
			wantErr:   errors.ErrSignatureLength,
		},
		"length checked before recovery": {
			threshold: 2,
			bundle:    concat(garbage, sigA[:64]),
			wantErr:   errors.ErrSignatureLength,
		},
		"invalid recovery id": {
			threshold: 2,
			bundle:    concat(sigA, badV),
			wantErr:   errors.ErrRecoveryID,
		},
		"high s": {
			threshold: 1,
			bundle:    malleate(sigA),
			wantErr:   errors.ErrMalleable,
		},
		"unrecoverable": {
			threshold: 1,
			bundle:    garbage,
			wantErr:   errors.ErrInvalidSignature,
		},
		"zero threshold": {
			threshold: 0,
			bundle:    nil,
			wantErr:   errors.ErrInvalidThreshold,
		},
	}

	v := NewValidator(crypto.Secp256k1Recoverer{})
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			signers, err := v.Verify(digest, tc.threshold, tc.bundle, owners)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, []quorum.Address(tc.wantSigners), signers)
		})
	}
}

func TestValidatorWrongDigest(t *testing.T) {
	keys := sortedKeys(t, 2)
	owners := addresses(keys...)
	signed := [32]byte{1}
	other := [32]byte{2}

	bundle, err := Sign(signed, keys[0], keys[1])
	assert.Nil(t, err)

	v := NewValidator(crypto.Secp256k1Recoverer{})
	_, err = v.Verify(other, 2, bundle, owners)
	// a signature over a different digest recovers to an unrelated address
	assert.IsErr(t, errors.ErrNotOwner, err)
}

type zeroRecoverer struct{}

func (zeroRecoverer) Recover([32]byte, []byte) (quorum.Address, error) {
	return quorum.ZeroAddress, nil
}

func TestValidatorRejectsZeroSigner(t *testing.T) {
	keys := sortedKeys(t, 1)
	digest := [32]byte{7}
	sig := mustSign(t, keys[0], digest)

	v := NewValidator(zeroRecoverer{})
	_, err := v.Verify(digest, 1, sig, ownerList{quorum.ZeroAddress})
	assert.IsErr(t, errors.ErrInvalidSignature, err)
}
