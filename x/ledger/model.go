package ledger

import (
	"math/big"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// BalanceData is the persisted form of a balance. The amount is a big endian
// unsigned integer.
type BalanceData struct {
	Amount []byte `protobuf:"bytes,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *BalanceData) Reset()         { *m = BalanceData{} }
func (m *BalanceData) String() string { return proto.CompactTextString(m) }
func (*BalanceData) ProtoMessage()    {}

const balancePrefix = "bal:"

func balanceKey(a quorum.Address) []byte {
	return append([]byte(balancePrefix), a[:]...)
}

// Balance returns the balance of given address. Unknown addresses hold zero.
func Balance(db quorum.ReadOnlyKVStore, a quorum.Address) (*big.Int, error) {
	raw, err := db.Get(balanceKey(a))
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if raw == nil {
		return new(big.Int), nil
	}
	var data BalanceData
	if err := proto.Unmarshal(raw, &data); err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "balance of %s: %s", a, err)
	}
	return new(big.Int).SetBytes(data.Amount), nil
}

func saveBalance(db quorum.KVStore, a quorum.Address, amount *big.Int) error {
	if amount.Sign() < 0 {
		return errors.Wrapf(errors.ErrAmount, "negative balance for %s", a)
	}
	if amount.Sign() == 0 {
		if err := db.Delete(balanceKey(a)); err != nil {
			return errors.Wrap(errors.ErrDatabase, err.Error())
		}
		return nil
	}
	raw, err := proto.Marshal(&BalanceData{Amount: amount.Bytes()})
	if err != nil {
		return errors.Wrap(errors.ErrModel, err.Error())
	}
	if err := db.Set(balanceKey(a), raw); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}
