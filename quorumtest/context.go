package quorumtest

import (
	"context"
	"math/big"
	"time"

	"github.com/iov-one/quorum"
)

// Context returns a context with chain id, block time and caller set.
func Context(chainID int64, now time.Time, caller quorum.Address) quorum.Context {
	ctx := context.Background()
	ctx = quorum.WithChainID(ctx, big.NewInt(chainID))
	ctx = quorum.WithBlockTime(ctx, now)
	return quorum.WithCaller(ctx, caller)
}
