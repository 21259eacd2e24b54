package ledger

import (
	"math/big"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

const optKey = "ledger"

// GenesisAccount is used to parse the json from genesis file.
// The amount is a decimal string, so any size can be expressed.
type GenesisAccount struct {
	Address quorum.Address `json:"address"`
	Amount  string         `json:"amount"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ quorum.Initializer = Initializer{}

// FromGenesis will parse initial balances from genesis
// and save them to the database
func (Initializer) FromGenesis(opts quorum.Options, kv quorum.KVStore) error {
	accts := []GenesisAccount{}
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	for i, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		amount, ok := new(big.Int).SetString(acct.Amount, 10)
		if !ok {
			return errors.Wrapf(errors.ErrAmount, "account %d: %q", i, acct.Amount)
		}
		if err := IssueValue(kv, acct.Address, amount); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
	}
	return nil
}
