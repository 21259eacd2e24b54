package app

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// Apply runs fn against a cache of the committed state. If fn succeeds the
// cache is written and a new version is committed. A failing fn leaves the
// committed state untouched.
func Apply(cs quorum.CommitKVStore, fn func(db quorum.CacheableKVStore) error) (quorum.CommitID, error) {
	cache := cs.CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		return quorum.CommitID{}, err
	}
	if err := cache.Write(); err != nil {
		return quorum.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return cs.Commit()
}

// InitChain initializes a fresh store from the genesis and commits the
// first version.
func InitChain(cs quorum.CommitKVStore, gen Genesis, init quorum.Initializer) (quorum.CommitID, error) {
	return Apply(cs, func(db quorum.CacheableKVStore) error {
		return Initialize(db, gen, init)
	})
}
