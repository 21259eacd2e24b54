package quorumtest

import (
	"testing"

	"github.com/iov-one/quorum"
)

// ParseAddress takes an address in a human readable format and returns
// its binary representation. This function is a test helper that is using
// quorum.ParseAddress function functionality.
func ParseAddress(t testing.TB, encodedAddress string) quorum.Address {
	t.Helper()

	addr, err := quorum.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}

// SequenceAddress returns an address with only the last byte set. Handy for
// tests that need stable, ordered addresses without keys.
func SequenceAddress(n byte) quorum.Address {
	var a quorum.Address
	a[quorum.AddressLength-1] = n
	return a
}
