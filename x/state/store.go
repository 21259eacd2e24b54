package state

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// stateKey is where the aggregate is kept.
var stateKey = []byte("_s:auth")

// Load returns the state saved in db.
func Load(db quorum.ReadOnlyKVStore) (*State, error) {
	raw, err := db.Get(stateKey)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if raw == nil {
		return nil, errors.Wrap(errors.ErrNotFound, "authorization state")
	}
	var data StateData
	if err := proto.Unmarshal(raw, &data); err != nil {
		return nil, errors.Wrap(errors.ErrModel, err.Error())
	}
	return fromData(&data)
}

// Save validates the state and writes it to db.
func Save(db quorum.SetDeleter, s *State) error {
	if err := s.Validate(); err != nil {
		return errors.Wrap(err, "save state")
	}
	raw, err := proto.Marshal(s.toData())
	if err != nil {
		return errors.Wrap(errors.ErrModel, err.Error())
	}
	if err := db.Set(stateKey, raw); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// Exists returns true if a state was saved in db.
func Exists(db quorum.ReadOnlyKVStore) (bool, error) {
	return db.Has(stateKey)
}
