package state

import (
	"math"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/quorumtest/assert"
	"github.com/iov-one/quorum/store"
)

func TestNewState(t *testing.T) {
	cases := map[string]struct {
		owners    []quorum.Address
		threshold uint32
		executor  quorum.Address
		wantErr   *errors.Error
	}{
		"valid": {
			owners:    []quorum.Address{addr(1), addr(2), addr(3)},
			threshold: 2,
			executor:  addr(10),
		},
		"threshold equal to owner count": {
			owners:    []quorum.Address{addr(1), addr(2)},
			threshold: 2,
			executor:  addr(10),
		},
		"zero threshold": {
			owners:    []quorum.Address{addr(1)},
			threshold: 0,
			executor:  addr(10),
			wantErr:   errors.ErrInvalidThreshold,
		},
		"threshold above owner count": {
			owners:    []quorum.Address{addr(1), addr(2)},
			threshold: 3,
			executor:  addr(10),
			wantErr:   errors.ErrInvalidThreshold,
		},
		"no owners": {
			threshold: 1,
			executor:  addr(10),
			wantErr:   errors.ErrInvalidThreshold,
		},
		"zero owner": {
			owners:    []quorum.Address{addr(1), quorum.ZeroAddress},
			threshold: 1,
			executor:  addr(10),
			wantErr:   errors.ErrInvalidOwner,
		},
		"duplicate owner": {
			owners:    []quorum.Address{addr(1), addr(1)},
			threshold: 1,
			executor:  addr(10),
			wantErr:   errors.ErrDuplicateOwner,
		},
		"zero executor": {
			owners:    []quorum.Address{addr(1)},
			threshold: 1,
			wantErr:   errors.ErrInvalidExecutor,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			s, err := NewState(tc.owners, tc.threshold, tc.executor)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, uint64(0), s.Nonce())
				assert.Equal(t, tc.threshold, s.Threshold())
				assert.Equal(t, tc.executor, s.Executor())
			}
		})
	}
}

func TestStateMutations(t *testing.T) {
	cases := map[string]struct {
		mutate        func(*State) error
		wantErr       *errors.Error
		wantOwners    []quorum.Address
		wantThreshold uint32
	}{
		"add owner raising threshold": {
			mutate:        func(s *State) error { return s.AddOwner(addr(4), 3) },
			wantOwners:    []quorum.Address{addr(1), addr(2), addr(3), addr(4)},
			wantThreshold: 3,
		},
		"add owner with threshold above new count": {
			mutate:        func(s *State) error { return s.AddOwner(addr(4), 5) },
			wantErr:       errors.ErrInvalidThreshold,
			wantOwners:    []quorum.Address{addr(1), addr(2), addr(3)},
			wantThreshold: 2,
		},
		"add owner with zero threshold": {
			mutate:        func(s *State) error { return s.AddOwner(addr(4), 0) },
			wantErr:       errors.ErrInvalidThreshold,
			wantOwners:    []quorum.Address{addr(1), addr(2), addr(3)},
			wantThreshold: 2,
		},
		"add existing owner": {
			mutate:        func(s *State) error { return s.AddOwner(addr(2), 2) },
			wantErr:       errors.ErrDuplicateOwner,
			wantOwners:    []quorum.Address{addr(1), addr(2), addr(3)},
			wantThreshold: 2,
		},
		"add zero owner": {
			mutate:        func(s *State) error { return s.AddOwner(quorum.ZeroAddress, 2) },
			wantErr:       errors.ErrInvalidOwner,
			wantOwners:    []quorum.Address{addr(1), addr(2), addr(3)},
			wantThreshold: 2,
		},
		"remove owner keeping threshold": {
			mutate:        func(s *State) error { return s.RemoveOwner(addr(1), 2) },
			wantOwners:    []quorum.Address{addr(3), addr(2)},
			wantThreshold: 2,
		},
		"remove owner with threshold above new count": {
			mutate:        func(s *State) error { return s.RemoveOwner(addr(1), 3) },
			wantErr:       errors.ErrInvalidThreshold,
			wantOwners:    []quorum.Address{addr(1), addr(2), addr(3)},
			wantThreshold: 2,
		},
		"remove unknown owner": {
			mutate:        func(s *State) error { return s.RemoveOwner(addr(7), 1) },
			wantErr:       errors.ErrNotOwner,
			wantOwners:    []quorum.Address{addr(1), addr(2), addr(3)},
			wantThreshold: 2,
		},
		"set threshold to owner count": {
			mutate:        func(s *State) error { return s.SetThreshold(3) },
			wantOwners:    []quorum.Address{addr(1), addr(2), addr(3)},
			wantThreshold: 3,
		},
		"set threshold above owner count": {
			mutate:        func(s *State) error { return s.SetThreshold(4) },
			wantErr:       errors.ErrInvalidThreshold,
			wantOwners:    []quorum.Address{addr(1), addr(2), addr(3)},
			wantThreshold: 2,
		},
		"set zero threshold": {
			mutate:        func(s *State) error { return s.SetThreshold(0) },
			wantErr:       errors.ErrInvalidThreshold,
			wantOwners:    []quorum.Address{addr(1), addr(2), addr(3)},
			wantThreshold: 2,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			s, err := NewState([]quorum.Address{addr(1), addr(2), addr(3)}, 2, addr(10))
			assert.Nil(t, err)

			assert.IsErr(t, tc.wantErr, tc.mutate(s))
			assert.Equal(t, tc.wantOwners, s.Owners())
			assert.Equal(t, tc.wantThreshold, s.Threshold())
			assert.Nil(t, s.Validate())
		})
	}
}

func TestRemoveLastOwner(t *testing.T) {
	s, err := NewState([]quorum.Address{addr(1)}, 1, addr(10))
	assert.Nil(t, err)
	assert.IsErr(t, errors.ErrInvalidThreshold, s.RemoveOwner(addr(1), 0))
	assert.IsErr(t, errors.ErrInvalidThreshold, s.RemoveOwner(addr(1), 1))
	assert.Equal(t, 1, s.OwnerCount())
}

func TestSetExecutor(t *testing.T) {
	s, err := NewState([]quorum.Address{addr(1)}, 1, addr(10))
	assert.Nil(t, err)
	assert.IsErr(t, errors.ErrInvalidExecutor, s.SetExecutor(quorum.ZeroAddress))
	assert.Equal(t, addr(10), s.Executor())
	assert.Nil(t, s.SetExecutor(addr(11)))
	assert.Equal(t, addr(11), s.Executor())
}

func TestIncrementNonce(t *testing.T) {
	s, err := NewState([]quorum.Address{addr(1)}, 1, addr(10))
	assert.Nil(t, err)

	used, err := s.IncrementNonce()
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), used)
	assert.Equal(t, uint64(1), s.Nonce())

	s.nonce = math.MaxUint64
	_, err = s.IncrementNonce()
	assert.IsErr(t, errors.ErrOverflow, err)
	assert.Equal(t, uint64(math.MaxUint64), s.Nonce())
}

func TestLoadSave(t *testing.T) {
	db := store.MemStore()

	_, err := Load(db)
	assert.IsErr(t, errors.ErrNotFound, err)

	s, err := NewState([]quorum.Address{addr(1), addr(2), addr(3)}, 2, addr(10))
	assert.Nil(t, err)
	assert.Nil(t, s.RemoveOwner(addr(1), 1))
	_, err = s.IncrementNonce()
	assert.Nil(t, err)
	assert.Nil(t, Save(db, s))

	exists, err := Exists(db)
	assert.Nil(t, err)
	assert.Equal(t, true, exists)

	loaded, err := Load(db)
	assert.Nil(t, err)
	// arena order survives a reload
	assert.Equal(t, []quorum.Address{addr(3), addr(2)}, loaded.Owners())
	assert.Equal(t, uint32(1), loaded.Threshold())
	assert.Equal(t, addr(10), loaded.Executor())
	assert.Equal(t, uint64(1), loaded.Nonce())
}

func TestSaveRejectsInvalidState(t *testing.T) {
	db := store.MemStore()
	s, err := NewState([]quorum.Address{addr(1)}, 1, addr(10))
	assert.Nil(t, err)
	s.threshold = 2
	assert.IsErr(t, errors.ErrInvalidThreshold, Save(db, s))
	_, err = Load(db)
	assert.IsErr(t, errors.ErrNotFound, err)
}
