package state

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// StateData is the persisted form of State, see codec.proto. It is encoded
// with the reflection based protobuf marshaler, so it must not implement
// proto.Marshaler itself.
type StateData struct {
	Owners    [][]byte `protobuf:"bytes,1,rep,name=owners,proto3" json:"owners,omitempty"`
	Threshold uint32   `protobuf:"varint,2,opt,name=threshold,proto3" json:"threshold,omitempty"`
	Executor  []byte   `protobuf:"bytes,3,opt,name=executor,proto3" json:"executor,omitempty"`
	Nonce     uint64   `protobuf:"varint,4,opt,name=nonce,proto3" json:"nonce,omitempty"`
}

func (m *StateData) Reset()         { *m = StateData{} }
func (m *StateData) String() string { return proto.CompactTextString(m) }
func (*StateData) ProtoMessage()    {}

// Validate checks the serialized form before it is converted.
func (m *StateData) Validate() error {
	for i, o := range m.Owners {
		if len(o) != quorum.AddressLength {
			return errors.Wrapf(errors.ErrModel, "owner %d: length %d", i, len(o))
		}
	}
	if len(m.Executor) != quorum.AddressLength {
		return errors.Wrapf(errors.ErrModel, "executor: length %d", len(m.Executor))
	}
	return nil
}

func (s *State) toData() *StateData {
	owners := make([][]byte, 0, s.owners.Len())
	for _, o := range s.owners.list {
		owners = append(owners, o.Bytes())
	}
	return &StateData{
		Owners:    owners,
		Threshold: s.threshold,
		Executor:  s.executor.Bytes(),
		Nonce:     s.nonce,
	}
}

func fromData(m *StateData) (*State, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	owners := make([]quorum.Address, len(m.Owners))
	for i, o := range m.Owners {
		owners[i] = quorum.BytesToAddress(o)
	}
	s, err := NewState(owners, m.Threshold, quorum.BytesToAddress(m.Executor))
	if err != nil {
		return nil, errors.Wrap(err, "stored state")
	}
	s.nonce = m.Nonce
	return s, nil
}
