package state

import (
	"sort"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// OwnerSet is an arena of owner addresses. Members are kept in a dense slice
// and every member remembers its 1-based position in a map, which makes
// membership checks, insertion and removal constant time.
//
// The zero value is not usable, create instances with NewOwnerSet.
type OwnerSet struct {
	list []quorum.Address
	pos  map[quorum.Address]int
}

// NewOwnerSet returns a set holding all given owners in the given order.
func NewOwnerSet(owners ...quorum.Address) (*OwnerSet, error) {
	s := &OwnerSet{
		list: make([]quorum.Address, 0, len(owners)),
		pos:  make(map[quorum.Address]int, len(owners)),
	}
	for _, o := range owners {
		if err := s.Add(o); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Len returns the number of owners.
func (s *OwnerSet) Len() int {
	return len(s.list)
}

// Has returns true if given address is an owner.
func (s *OwnerSet) Has(a quorum.Address) bool {
	_, ok := s.pos[a]
	return ok
}

// Add appends a new owner.
func (s *OwnerSet) Add(a quorum.Address) error {
	if a.IsZero() {
		return errors.Wrap(errors.ErrInvalidOwner, "zero address")
	}
	if s.Has(a) {
		return errors.Wrapf(errors.ErrDuplicateOwner, "%s", a)
	}
	s.list = append(s.list, a)
	s.pos[a] = len(s.list)
	return nil
}

// Remove deletes an owner. The last owner is moved into the freed slot.
func (s *OwnerSet) Remove(a quorum.Address) error {
	p, ok := s.pos[a]
	if !ok {
		return errors.Wrapf(errors.ErrNotOwner, "%s", a)
	}
	last := len(s.list) - 1
	if p-1 != last {
		moved := s.list[last]
		s.list[p-1] = moved
		s.pos[moved] = p
	}
	s.list[last] = quorum.ZeroAddress
	s.list = s.list[:last]
	delete(s.pos, a)
	return nil
}

// List returns a copy of all owners in arena order.
func (s *OwnerSet) List() []quorum.Address {
	res := make([]quorum.Address, len(s.list))
	copy(res, s.list)
	return res
}

// Sorted returns a copy of all owners in ascending address order, which is
// the order signatures must follow in a bundle.
func (s *OwnerSet) Sorted() []quorum.Address {
	res := s.List()
	sort.Slice(res, func(i, j int) bool { return res[i].Less(res[j]) })
	return res
}

// Clone returns an independent copy.
func (s *OwnerSet) Clone() *OwnerSet {
	c := &OwnerSet{
		list: s.List(),
		pos:  make(map[quorum.Address]int, len(s.pos)),
	}
	for a, p := range s.pos {
		c.pos[a] = p
	}
	return c
}

// Validate checks the arena bookkeeping. It is cheap enough to run before
// every save.
func (s *OwnerSet) Validate() error {
	if len(s.list) != len(s.pos) {
		return errors.Wrapf(errors.ErrState, "%d owners, %d positions", len(s.list), len(s.pos))
	}
	for i, a := range s.list {
		if a.IsZero() {
			return errors.Wrapf(errors.ErrInvalidOwner, "zero address at %d", i)
		}
		if s.pos[a] != i+1 {
			return errors.Wrapf(errors.ErrState, "owner %s at %d recorded at %d", a, i+1, s.pos[a])
		}
	}
	return nil
}
