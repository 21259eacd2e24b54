package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeBTreeBase() (CacheableKVStore, func()) {
	// devnull is a black hole... just to keep our types proper
	devnull := BTreeCacheable{EmptyKVStore{}}
	return devnull.CacheWrap(), func() {}
}

func TestBTreeCacheSuite(t *testing.T) {
	suite := NewTestSuite(makeBTreeBase)
	t.Run("get set", suite.GetSet)
	t.Run("cache conflicts", suite.CacheConflicts)
	t.Run("discard", suite.Discard)
}

func TestBTreeCacheGetSet(t *testing.T) {
	base := MemStore()

	k, v := []byte("french"), []byte("fry")
	got, err := base.Get(k)
	require.NoError(t, err)
	assert.Nil(t, got)
	require.NoError(t, base.Set(k, v))

	cache := base.CacheWrap()
	got, err = cache.Get(k)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	// overwrite and delete are only visible in the cache until written
	require.NoError(t, cache.Set(k, []byte("chips")))
	got, err = base.Get(k)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	require.NoError(t, cache.Delete(k))
	has, err := cache.Has(k)
	require.NoError(t, err)
	assert.False(t, has)
	has, err = base.Has(k)
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, cache.Write())
	has, err = base.Has(k)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestNonAtomicBatch(t *testing.T) {
	base := MemStore()
	batch := NewNonAtomicBatch(base)

	require.NoError(t, batch.Set([]byte("a"), []byte("1")))
	require.NoError(t, batch.Set([]byte("b"), []byte("2")))
	require.NoError(t, batch.Delete([]byte("a")))
	assert.Len(t, batch.ShowOps(), 3)

	has, err := base.Has([]byte("b"))
	require.NoError(t, err)
	assert.False(t, has, "batch must not write before Write is called")

	require.NoError(t, batch.Write())
	assert.Empty(t, batch.ShowOps())

	got, err := base.Get([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), got)
	has, err = base.Has([]byte("a"))
	require.NoError(t, err)
	assert.False(t, has)
}

func TestNestedLayerDiscard(t *testing.T) {
	base := MemStore()
	outer := base.CacheWrap()
	require.NoError(t, outer.Set([]byte("nonce"), []byte{1}))

	inner := outer.CacheWrap()
	require.NoError(t, inner.Set([]byte("balance"), []byte{9}))
	require.NoError(t, inner.Delete([]byte("nonce")))
	has, err := inner.Has([]byte("nonce"))
	require.NoError(t, err)
	assert.False(t, has)
	inner.Discard()

	// the outer layer is untouched by the dropped inner one
	got, err := outer.Get([]byte("nonce"))
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, got)
	has, err = outer.Has([]byte("balance"))
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, outer.Write())
	got, err = base.Get([]byte("nonce"))
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, got)
	has, err = base.Has([]byte("balance"))
	require.NoError(t, err)
	assert.False(t, has)
}
