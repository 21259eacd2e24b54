package state

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/quorumtest/assert"
	"github.com/iov-one/quorum/store"
)

func TestInitializer(t *testing.T) {
	const (
		a = `"0x1111111111111111111111111111111111111111"`
		b = `"0x2222222222222222222222222222222222222222"`
		e = `"0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee"`
	)

	cases := map[string]struct {
		opts    quorum.Options
		wantErr *errors.Error
		owners  int
	}{
		"two owners": {
			opts:   quorum.Options{"auth": json.RawMessage(`{"owners": [` + a + `,` + b + `], "threshold": 2, "executor": ` + e + `}`)},
			owners: 2,
		},
		"missing section": {
			opts:    quorum.Options{},
			wantErr: errors.ErrInvalidThreshold,
		},
		"threshold above owner count": {
			opts:    quorum.Options{"auth": json.RawMessage(`{"owners": [` + a + `], "threshold": 2, "executor": ` + e + `}`)},
			wantErr: errors.ErrInvalidThreshold,
		},
		"duplicate owner": {
			opts:    quorum.Options{"auth": json.RawMessage(`{"owners": [` + a + `,` + a + `], "threshold": 1, "executor": ` + e + `}`)},
			wantErr: errors.ErrDuplicateOwner,
		},
		"malformed": {
			opts:    quorum.Options{"auth": json.RawMessage(`{"owners": "nope"}`)},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			err := Initializer{}.FromGenesis(tc.opts, db)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr != nil {
				return
			}
			st, err := Load(db)
			assert.Nil(t, err)
			assert.Equal(t, tc.owners, st.OwnerCount())
			assert.Equal(t, uint32(2), st.Threshold())
		})
	}
}

func TestInitializerRunsOnce(t *testing.T) {
	opts := quorum.Options{"auth": json.RawMessage(`{
		"owners": ["0x1111111111111111111111111111111111111111"],
		"threshold": 1,
		"executor": "0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee"
	}`)}
	db := store.MemStore()
	assert.Nil(t, Initializer{}.FromGenesis(opts, db))
	err := Initializer{}.FromGenesis(opts, db)
	assert.IsErr(t, errors.ErrState, err)
}
