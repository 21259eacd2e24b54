package app

import (
	"encoding/json"
	"io/ioutil"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/gconf"
	"github.com/iov-one/quorum/x/ledger"
	"github.com/iov-one/quorum/x/state"
)

// Genesis file format. ChainID, if set, must match the configured chain id.
type Genesis struct {
	ChainID  string         `json:"chain_id"`
	AppState quorum.Options `json:"app_state"`
}

// LoadGenesis tries to load a given file into a Genesis struct
func LoadGenesis(filePath string) (Genesis, error) {
	var gen Genesis

	raw, err := ioutil.ReadFile(filePath)
	if err != nil {
		return gen, errors.Wrapf(errors.ErrInput, "loading genesis file: %s", err)
	}
	if err := json.Unmarshal(raw, &gen); err != nil {
		return gen, errors.Wrapf(errors.ErrInput, "unmarshaling genesis file: %s", err)
	}
	return gen, nil
}

// ChainInitializers lets you initialize many extensions with one function
func ChainInitializers(inits ...quorum.Initializer) quorum.Initializer {
	return chainInitializer{inits}
}

type chainInitializer struct {
	inits []quorum.Initializer
}

// FromGenesis will pass opts to all Initializers in the list,
// aborting at the first error.
func (c chainInitializer) FromGenesis(opts quorum.Options, kv quorum.KVStore) error {
	for _, i := range c.inits {
		if err := i.FromGenesis(opts, kv); err != nil {
			return err
		}
	}
	return nil
}

// DefaultInitializer loads the engine configuration, the authorization
// state and the ledger balances.
func DefaultInitializer() quorum.Initializer {
	return ChainInitializers(
		gconf.Initializer{},
		state.Initializer{},
		ledger.Initializer{},
	)
}

// Initialize runs init against a cache of db. Nothing is written unless
// every initializer succeeds.
func Initialize(db quorum.CacheableKVStore, gen Genesis, init quorum.Initializer) error {
	cache := db.CacheWrap()
	if err := initialize(cache, gen, init); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

func initialize(db quorum.KVStore, gen Genesis, init quorum.Initializer) error {
	if err := init.FromGenesis(gen.AppState, db); err != nil {
		return errors.Wrap(err, "genesis")
	}
	if gen.ChainID == "" {
		return nil
	}
	conf, err := gconf.LoadEngineConfig(db)
	if err != nil {
		return err
	}
	if conf.ChainID != gen.ChainID {
		return errors.Wrapf(errors.ErrInput, "chain id %q, configured %q", gen.ChainID, conf.ChainID)
	}
	return nil
}
