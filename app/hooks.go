package app

import (
	"math/big"

	"github.com/iov-one/quorum"
)

// Selector is the four byte identifier of a receiver callback or an
// interface.
type Selector [4]byte

var (
	// ERC721Received is returned by OnERC721Received.
	ERC721Received = Selector{0x15, 0x0b, 0x7a, 0x02}
	// ERC1155Received is returned by OnERC1155Received.
	ERC1155Received = Selector{0xf2, 0x3a, 0x6e, 0x61}
	// ERC1155BatchReceived is returned by OnERC1155BatchReceived.
	ERC1155BatchReceived = Selector{0xbc, 0x19, 0x7c, 0x81}

	interfaceERC165          = Selector{0x01, 0xff, 0xc9, 0xa7}
	interfaceERC1155Receiver = Selector{0x4e, 0x23, 0x12, 0xe0}
)

// Hooks accept every token transfer notification so the engine can hold
// tokens. They never touch state.
type Hooks struct{}

// OnERC721Received acknowledges a single token.
func (Hooks) OnERC721Received(operator, from quorum.Address, tokenID *big.Int, data []byte) Selector {
	return ERC721Received
}

// OnERC1155Received acknowledges a single token type.
func (Hooks) OnERC1155Received(operator, from quorum.Address, id, value *big.Int, data []byte) Selector {
	return ERC1155Received
}

// OnERC1155BatchReceived acknowledges a batch of token types.
func (Hooks) OnERC1155BatchReceived(operator, from quorum.Address, ids, values []*big.Int, data []byte) Selector {
	return ERC1155BatchReceived
}

// SupportsInterface reports the interfaces the hooks implement.
func (Hooks) SupportsInterface(id Selector) bool {
	switch id {
	case interfaceERC165, ERC721Received, interfaceERC1155Receiver:
		return true
	}
	return false
}
