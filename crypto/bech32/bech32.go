// Package bech32 converts addresses to and from their bech32 text form.
package bech32

import (
	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/quorum/errors"
)

// Decode splits a bech32 string into its human readable part and the 8 bit
// payload it carries. Malformed input fails with ErrInput.
func Decode(text string) (hrp string, payload []byte, err error) {
	hrp, words, err := bech32.Decode(text)
	if err != nil {
		return "", nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	if payload, err = bech32.ConvertBits(words, 5, 8, false); err != nil {
		return "", nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return hrp, payload, nil
}

// Encode returns the checksummed bech32 form of payload under hrp.
func Encode(hrp string, payload []byte) (string, error) {
	words, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", errors.Wrap(errors.ErrInput, err.Error())
	}
	text, err := bech32.Encode(hrp, words)
	if err != nil {
		return "", errors.Wrap(errors.ErrInput, err.Error())
	}
	return text, nil
}
