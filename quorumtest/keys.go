package quorumtest

import (
	"sort"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
)

// NewKey returns a fresh secp256k1 key.
func NewKey(t testing.TB) *crypto.PrivateKey {
	t.Helper()
	k, err := crypto.GenPrivKeySecp256k1()
	if err != nil {
		t.Fatalf("cannot generate key: %s", err)
	}
	return k
}

// SortedKeys returns n fresh keys in ascending address order.
func SortedKeys(t testing.TB, n int) []*crypto.PrivateKey {
	t.Helper()
	keys := make([]*crypto.PrivateKey, n)
	for i := range keys {
		keys[i] = NewKey(t)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Address().Less(keys[j].Address()) })
	return keys
}

// Addresses returns the addresses of given keys, in the same order.
func Addresses(keys ...*crypto.PrivateKey) []quorum.Address {
	res := make([]quorum.Address, len(keys))
	for i, k := range keys {
		res[i] = k.Address()
	}
	return res
}

// Sign returns the concatenated signatures of all keys, in the order the
// keys were given. Use it with sorted keys for a valid bundle, or with any
// other order to build invalid ones.
func Sign(t testing.TB, digest [crypto.DigestLength]byte, keys ...*crypto.PrivateKey) []byte {
	t.Helper()
	var bundle []byte
	for _, k := range keys {
		sig, err := k.Sign(digest)
		if err != nil {
			t.Fatalf("cannot sign: %s", err)
		}
		bundle = append(bundle, sig...)
	}
	return bundle
}
