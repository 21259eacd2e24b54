package state

import (
	"math"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// State is the authorization aggregate.
type State struct {
	owners    *OwnerSet
	threshold uint32
	executor  quorum.Address
	nonce     uint64
}

// NewState returns the initial state with the nonce set to zero.
func NewState(owners []quorum.Address, threshold uint32, executor quorum.Address) (*State, error) {
	set, err := NewOwnerSet(owners...)
	if err != nil {
		return nil, err
	}
	s := &State{
		owners:    set,
		threshold: threshold,
		executor:  executor,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks every invariant of the aggregate.
func (s *State) Validate() error {
	if err := s.owners.Validate(); err != nil {
		return err
	}
	if err := checkThreshold(s.threshold, s.owners.Len()); err != nil {
		return err
	}
	if s.executor.IsZero() {
		return errors.Wrap(errors.ErrInvalidExecutor, "zero address")
	}
	return nil
}

func checkThreshold(threshold uint32, owners int) error {
	if threshold == 0 {
		return errors.Wrap(errors.ErrInvalidThreshold, "zero")
	}
	if int64(threshold) > int64(owners) {
		return errors.Wrapf(errors.ErrInvalidThreshold, "%d exceeds %d owners", threshold, owners)
	}
	return nil
}

// Owners returns all owners in arena order.
func (s *State) Owners() []quorum.Address {
	return s.owners.List()
}

// OwnerCount returns the number of owners.
func (s *State) OwnerCount() int {
	return s.owners.Len()
}

// IsOwner returns true if given address is an owner.
func (s *State) IsOwner(a quorum.Address) bool {
	return s.owners.Has(a)
}

// Has makes State usable as an owner checker during signature validation.
func (s *State) Has(a quorum.Address) bool {
	return s.owners.Has(a)
}

// Threshold returns the number of required signatures.
func (s *State) Threshold() uint32 {
	return s.threshold
}

// Executor returns the address allowed to submit transfers.
func (s *State) Executor() quorum.Address {
	return s.executor
}

// Nonce returns the value the next signed request must commit to.
func (s *State) Nonce() uint64 {
	return s.nonce
}

// IncrementNonce consumes the current nonce and returns it.
func (s *State) IncrementNonce() (uint64, error) {
	if s.nonce == math.MaxUint64 {
		return 0, errors.Wrap(errors.ErrOverflow, "nonce")
	}
	used := s.nonce
	s.nonce++
	return used, nil
}

// AddOwner adds an owner and sets the threshold in a single step.
func (s *State) AddOwner(owner quorum.Address, newThreshold uint32) error {
	if owner.IsZero() {
		return errors.Wrap(errors.ErrInvalidOwner, "zero address")
	}
	if s.owners.Has(owner) {
		return errors.Wrapf(errors.ErrDuplicateOwner, "%s", owner)
	}
	if err := checkThreshold(newThreshold, s.owners.Len()+1); err != nil {
		return err
	}
	if err := s.owners.Add(owner); err != nil {
		return err
	}
	s.threshold = newThreshold
	return nil
}

// RemoveOwner removes an owner and sets the threshold in a single step.
// The last owner can never be removed because no valid threshold exists for
// an empty set.
func (s *State) RemoveOwner(owner quorum.Address, newThreshold uint32) error {
	if !s.owners.Has(owner) {
		return errors.Wrapf(errors.ErrNotOwner, "%s", owner)
	}
	if err := checkThreshold(newThreshold, s.owners.Len()-1); err != nil {
		return err
	}
	if err := s.owners.Remove(owner); err != nil {
		return err
	}
	s.threshold = newThreshold
	return nil
}

// SetThreshold changes the number of required signatures.
func (s *State) SetThreshold(threshold uint32) error {
	if err := checkThreshold(threshold, s.owners.Len()); err != nil {
		return err
	}
	s.threshold = threshold
	return nil
}

// SetExecutor replaces the executor.
func (s *State) SetExecutor(executor quorum.Address) error {
	if executor.IsZero() {
		return errors.Wrap(errors.ErrInvalidExecutor, "zero address")
	}
	s.executor = executor
	return nil
}

// Clone returns an independent copy.
func (s *State) Clone() *State {
	c := *s
	c.owners = s.owners.Clone()
	return &c
}
