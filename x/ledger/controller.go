package ledger

import (
	"math/big"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// MoveValue moves the given amount from src to dest.
// If src doesn't have sufficient value, it fails.
// Moving zero is a no-op.
func MoveValue(db quorum.KVStore, src, dest quorum.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() == 0 {
		return nil
	}
	if amount.Sign() < 0 {
		return errors.Wrap(errors.ErrAmount, "negative amount")
	}

	sender, err := Balance(db, src)
	if err != nil {
		return err
	}
	if sender.Cmp(amount) < 0 {
		return errors.Wrapf(errors.ErrInsufficientBalance, "%s holds %s, need %s", src, sender, amount)
	}
	if src == dest {
		return nil
	}
	recipient, err := Balance(db, dest)
	if err != nil {
		return err
	}

	if err := saveBalance(db, src, sender.Sub(sender, amount)); err != nil {
		return err
	}
	total := recipient.Add(recipient, amount)
	if total.BitLen() > 256 {
		return errors.Wrap(errors.ErrOverflow, "balance exceeds 256 bits")
	}
	return saveBalance(db, dest, total)
}

// IssueValue adds the given amount to the destination address. This is how
// value enters the ledger, either from genesis or from a deposit.
func IssueValue(db quorum.KVStore, dest quorum.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return errors.Wrap(errors.ErrAmount, "non positive amount")
	}
	recipient, err := Balance(db, dest)
	if err != nil {
		return err
	}
	return saveBalance(db, dest, recipient.Add(recipient, amount))
}
