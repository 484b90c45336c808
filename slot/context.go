// Copyright (c) 2025 The Hearthchain developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package slot provides typed storage-cell abstractions for program state,
// similar to declaring storage variables in a smart contract. Cell positions
// are either fixed byte-string slots or derived deterministically from
// (role tag, key) pairs, so every depositor maps to exactly one slot.
package slot

import (
	"github.com/hearthchain/staking/hearth"
	"github.com/hearthchain/staking/state"
)

// Context binds storage cells to the owning program account.
type Context struct {
	address hearth.Address
	state   *state.State
}

func NewContext(address hearth.Address, state *state.State) *Context {
	return &Context{
		address: address,
		state:   state,
	}
}

func (c *Context) Address() hearth.Address {
	return c.address
}

func (c *Context) State() *state.State {
	return c.state
}

// Position derives a storage position from a role tag and key parts.
// Derivation is collision-free by construction: distinct inputs hash to
// distinct blake2b positions.
func Position(tag []byte, parts ...[]byte) hearth.Bytes32 {
	data := make([][]byte, 0, len(parts)+1)
	data = append(data, tag)
	data = append(data, parts...)
	return hearth.Blake2b(data...)
}
