package app

import (
	"math/big"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/quorumtest"
	"github.com/iov-one/quorum/x/execute"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommittedTransfers(t *testing.T) {
	cs, cleanup := quorumtest.CommitKVStore(t)
	defer cleanup()

	keys := quorumtest.SortedKeys(t, 3)
	id, err := InitChain(cs, testGenesis(t, quorumtest.Addresses(keys...), 2, "1000"), DefaultInitializer())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id.Version)

	engine, err := NewEngine(cs)
	require.NoError(t, err)
	ctx := quorumtest.Context(chainID, now, executor)

	sign := func(req execute.Request) execute.Request {
		digest, err := engine.TransferDigest(ctx, cs.CacheWrap(), req)
		require.NoError(t, err)
		req.Signatures = quorumtest.Sign(t, digest, keys[1], keys[2])
		return req
	}

	req := sign(transfer(carol, big.NewInt(300)))
	id, err = Apply(cs, func(db quorum.CacheableKVStore) error {
		_, err := engine.Execute(ctx, db, req)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), id.Version)

	// A failing operation commits nothing.
	_, err = Apply(cs, func(db quorum.CacheableKVStore) error {
		_, err := engine.Execute(ctx, db, req)
		return err
	})
	require.Error(t, err)
	latest, err := cs.LatestVersion()
	require.NoError(t, err)
	assert.Equal(t, int64(2), latest.Version)

	info, err := engine.Info(cs.CacheWrap())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), info.Nonce)
	assert.Equal(t, "700", info.Balance)
}

func TestInitChainTwice(t *testing.T) {
	cs, cleanup := quorumtest.CommitKVStore(t)
	defer cleanup()

	gen := testGenesis(t, []quorum.Address{carol}, 1, "0")
	_, err := InitChain(cs, gen, DefaultInitializer())
	require.Error(t, err)
	assert.True(t, errors.ErrAmount.Is(err), "%+v", err)

	gen = testGenesis(t, []quorum.Address{carol}, 1, "1")
	_, err = InitChain(cs, gen, DefaultInitializer())
	require.NoError(t, err)
	_, err = InitChain(cs, gen, DefaultInitializer())
	require.Error(t, err)
	assert.True(t, errors.ErrState.Is(err), "%+v", err)
}
