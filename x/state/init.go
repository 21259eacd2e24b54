package state

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

const optKey = "auth"

// Genesis is the json form of the initial authorization state.
type Genesis struct {
	Owners    []quorum.Address `json:"owners"`
	Threshold uint32           `json:"threshold"`
	Executor  quorum.Address   `json:"executor"`
}

// Initializer fulfils the Initializer interface to load the authorization
// state from the genesis file.
type Initializer struct{}

var _ quorum.Initializer = Initializer{}

// FromGenesis creates the authorization state. The state can be created
// only once.
func (Initializer) FromGenesis(opts quorum.Options, db quorum.KVStore) error {
	var gen Genesis
	if err := opts.ReadOptions(optKey, &gen); err != nil {
		return err
	}
	if exists, err := Exists(db); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	} else if exists {
		return errors.Wrap(errors.ErrState, "already initialized")
	}
	st, err := NewState(gen.Owners, gen.Threshold, gen.Executor)
	if err != nil {
		return errors.Wrap(err, "genesis")
	}
	return Save(db, st)
}
