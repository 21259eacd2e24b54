package quorum

import (
	"encoding/json"

	"github.com/iov-one/quorum/errors"
)

// Options is the application state of a genesis file. Every extension owns
// one top level key and decodes its value on its own.
type Options map[string]json.RawMessage

// ReadOptions decodes the value stored under key into obj. An absent key
// leaves obj untouched, so extensions fall back to their defaults.
func (o Options) ReadOptions(key string, obj interface{}) error {
	raw, ok := o[key]
	if !ok || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, obj); err != nil {
		return errors.Wrapf(errors.ErrInput, "genesis %q: %s", key, err)
	}
	return nil
}

// Initializer writes the initial state of an extension, read from its
// genesis options.
type Initializer interface {
	FromGenesis(Options, KVStore) error
}
