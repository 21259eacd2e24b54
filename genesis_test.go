package quorum

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/quorum/errors"
)

func TestOptionsReadOptions(t *testing.T) {
	type auth struct {
		Threshold uint32 `json:"threshold"`
	}

	cases := map[string]struct {
		opts    Options
		want    uint32
		wantErr *errors.Error
	}{
		"missing key is a noop": {
			opts: Options{},
		},
		"value is read": {
			opts: Options{"auth": json.RawMessage(`{"threshold": 2}`)},
			want: 2,
		},
		"invalid json": {
			opts:    Options{"auth": json.RawMessage(`{"threshold": "two"}`)},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got auth
			err := tc.opts.ReadOptions("auth", &got)
			if tc.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantErr != nil && !tc.wantErr.Is(err) {
				t.Fatalf("want %v, got %v", tc.wantErr, err)
			}
			if got.Threshold != tc.want {
				t.Fatalf("want threshold %d, got %d", tc.want, got.Threshold)
			}
		})
	}
}
