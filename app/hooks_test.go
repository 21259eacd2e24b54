package app

import (
	"math/big"
	"testing"

	"github.com/iov-one/quorum/quorumtest"
	"github.com/stretchr/testify/assert"
)

func TestHooks(t *testing.T) {
	var h Hooks
	from := quorumtest.SequenceAddress(1)

	assert.Equal(t, Selector{0x15, 0x0b, 0x7a, 0x02}, h.OnERC721Received(from, from, big.NewInt(1), nil))
	assert.Equal(t, Selector{0xf2, 0x3a, 0x6e, 0x61}, h.OnERC1155Received(from, from, big.NewInt(1), big.NewInt(2), nil))
	assert.Equal(t, Selector{0xbc, 0x19, 0x7c, 0x81}, h.OnERC1155BatchReceived(from, from, nil, nil, []byte("x")))

	cases := map[string]struct {
		id   Selector
		want bool
	}{
		"erc165":           {id: Selector{0x01, 0xff, 0xc9, 0xa7}, want: true},
		"erc721 receiver":  {id: ERC721Received, want: true},
		"erc1155 receiver": {id: Selector{0x4e, 0x23, 0x12, 0xe0}, want: true},
		"invalid id":       {id: Selector{0xff, 0xff, 0xff, 0xff}},
		"erc1155 single":   {id: ERC1155Received},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.want, h.SupportsInterface(tc.id))
		})
	}
}
