package quorumtest

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/store/iavl"
	"github.com/iov-one/quorum/x/state"
)

// CommitKVStore returns a store instance that is using a filesystem backend
// engine to store the data.
// This implementation should be used instead of MemStore when you want the
// exact same storage implementation as the command line client is using.
func CommitKVStore(t testing.TB) (db quorum.CommitKVStore, cleanup func()) {
	t.Helper()
	dbpath, err := ioutil.TempDir("", "quorumtest")
	if err != nil {
		t.Fatalf("cannot create a temporary directory: %s", err)
	}
	cs, err := iavl.NewCommitStore(dbpath, "db")
	if err != nil {
		os.RemoveAll(dbpath)
		t.Fatalf("cannot open store: %s", err)
	}
	return cs, func() { os.RemoveAll(dbpath) }
}

// InitState saves a fresh authorization state owned by given keys.
func InitState(t testing.TB, db quorum.KVStore, owners []*crypto.PrivateKey, threshold uint32, executor quorum.Address) *state.State {
	t.Helper()
	st, err := state.NewState(Addresses(owners...), threshold, executor)
	if err != nil {
		t.Fatalf("cannot create state: %+v", err)
	}
	if err := state.Save(db, st); err != nil {
		t.Fatalf("cannot save state: %+v", err)
	}
	return st
}

// LoadState reads the authorization state or fails the test.
func LoadState(t testing.TB, db quorum.ReadOnlyKVStore) *state.State {
	t.Helper()
	st, err := state.Load(db)
	if err != nil {
		t.Fatalf("cannot load state: %+v", err)
	}
	return st
}
