package quorum_test

import (
	"testing"

	"github.com/iov-one/quorum"
	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	defer func(commit string) { quorum.GitCommit = commit }(quorum.GitCommit)

	cases := map[string]struct {
		commit string
		want   string
	}{
		"release build": {commit: "", want: "v0.1.0"},
		"commit build":  {commit: "12345678", want: "v0.1.0 12345678"},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			quorum.GitCommit = tc.commit
			assert.Equal(t, tc.want, quorum.Version())
		})
	}
}
