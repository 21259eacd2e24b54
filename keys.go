package quorum

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/iov-one/quorum/crypto/bech32"
	"github.com/iov-one/quorum/errors"
)

// AddressLength is the length of all addresses.
const AddressLength = common.AddressLength

// Address identifies an owner, the executor, a call destination or the
// engine itself. It is the last 20 bytes of the keccak256 hash of a secp256k1
// public key.
//
// Addresses are ordered by their big-endian numeric value, which is the
// order signers must follow inside of a signature bundle.
type Address [AddressLength]byte

// ZeroAddress is never a valid owner or executor.
var ZeroAddress Address

// BytesToAddress returns an address with the value of given bytes. If b is
// larger than AddressLength, b will be cropped from the left.
func BytesToAddress(b []byte) Address {
	return Address(common.BytesToAddress(b))
}

// ParseAddress accepts an address in one of the supported formats and
// returns its binary representation. Supported formats are hex, with or
// without the 0x prefix, and bech32 prefixed with "bech32:".
func ParseAddress(enc string) (Address, error) {
	if strings.HasPrefix(enc, "bech32:") {
		_, payload, err := bech32.Decode(enc[len("bech32:"):])
		if err != nil {
			return ZeroAddress, errors.Wrap(err, "bech32 address")
		}
		if len(payload) != AddressLength {
			return ZeroAddress, errors.Wrapf(errors.ErrInput, "address length %d", len(payload))
		}
		return BytesToAddress(payload), nil
	}

	raw, err := hex.DecodeString(strings.TrimPrefix(strings.TrimPrefix(enc, "0x"), "0X"))
	if err != nil {
		return ZeroAddress, errors.Wrap(errors.ErrInput, "cannot decode hex")
	}
	if len(raw) != AddressLength {
		return ZeroAddress, errors.Wrapf(errors.ErrInput, "address length %d", len(raw))
	}
	return BytesToAddress(raw), nil
}

// Bytes returns a copy of the address bytes.
func (a Address) Bytes() []byte {
	b := make([]byte, AddressLength)
	copy(b, a[:])
	return b
}

// IsZero returns true if this is the zero address.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

// Compare returns an integer comparing two addresses by their numeric value.
// The result will be 0 if a == b, -1 if a < b, and +1 if a > b.
func (a Address) Compare(b Address) int {
	return bytes.Compare(a[:], b[:])
}

// Less returns true if this address is numerically lower than b.
func (a Address) Less(b Address) bool {
	return a.Compare(b) < 0
}

// Validate returns an error if the address is the zero address.
func (a Address) Validate() error {
	if a.IsZero() {
		return errors.Wrap(errors.ErrInput, "zero address")
	}
	return nil
}

// String returns the EIP-55 checksummed hex representation.
func (a Address) String() string {
	return common.Address(a).Hex()
}

// MarshalJSON provides a hex representation for JSON.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts any format understood by ParseAddress.
func (a *Address) UnmarshalJSON(raw []byte) error {
	var enc string
	if err := json.Unmarshal(raw, &enc); err != nil {
		return errors.Wrap(err, "cannot decode json")
	}
	addr, err := ParseAddress(enc)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// Set implements flag.Value so an address can be used as a command line
// argument.
func (a *Address) Set(enc string) error {
	addr, err := ParseAddress(enc)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
