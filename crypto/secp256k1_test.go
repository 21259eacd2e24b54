package crypto

import (
	"math/big"
	"testing"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/iov-one/quorum/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func digestOf(msg string) [DigestLength]byte {
	var d [DigestLength]byte
	copy(d[:], ethcrypto.Keccak256([]byte(msg)))
	return d
}

func TestSignRecover(t *testing.T) {
	key, err := GenPrivKeySecp256k1()
	require.NoError(t, err)

	digest := digestOf("transfer")
	sig, err := key.Sign(digest)
	require.NoError(t, err)
	require.Len(t, sig, SignatureLength)
	assert.Contains(t, []byte{RecoveryIDLow, RecoveryIDHigh}, sig[64])

	// go-ethereum always produces canonical signatures
	s := new(big.Int).SetBytes(sig[32:64])
	assert.True(t, s.Cmp(HalfCurveOrder()) <= 0)

	got, err := Secp256k1Recoverer{}.Recover(digest, sig)
	require.NoError(t, err)
	assert.Equal(t, key.Address(), got)

	// a different digest recovers to a different address
	other, err := Secp256k1Recoverer{}.Recover(digestOf("other"), sig)
	if err == nil {
		assert.NotEqual(t, key.Address(), other)
	}
}

func TestRecoverErrors(t *testing.T) {
	key, err := GenPrivKeySecp256k1()
	require.NoError(t, err)
	digest := digestOf("admin")
	sig, err := key.Sign(digest)
	require.NoError(t, err)

	cases := map[string]struct {
		sig     func() []byte
		wantErr *errors.Error
	}{
		"short signature": {
			sig:     func() []byte { return sig[:64] },
			wantErr: errors.ErrSignatureLength,
		},
		"raw recovery id": {
			sig: func() []byte {
				s := append([]byte(nil), sig...)
				s[64] -= RecoveryIDLow
				return s
			},
			wantErr: errors.ErrRecoveryID,
		},
		"zero r and s": {
			sig: func() []byte {
				s := make([]byte, SignatureLength)
				s[64] = RecoveryIDLow
				return s
			},
			wantErr: errors.ErrInvalidSignature,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			_, err := Secp256k1Recoverer{}.Recover(digest, tc.sig())
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %q, got %+v", tc.wantErr, err)
			}
		})
	}
}

func TestPrivateKeyHex(t *testing.T) {
	key, err := GenPrivKeySecp256k1()
	require.NoError(t, err)

	decoded, err := PrivateKeyFromHex("0x" + key.Hex())
	require.NoError(t, err)
	assert.Equal(t, key.Address(), decoded.Address())

	_, err = PrivateKeyFromHex("not a key")
	assert.True(t, errors.ErrInput.Is(err))
}
