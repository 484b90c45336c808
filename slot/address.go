// Copyright (c) 2025 The Hearthchain developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package slot

import (
	"github.com/hearthchain/staking/hearth"
)

// Address is a wrapper for storage and retrieval of an address.
type Address struct {
	context *Context
	pos     hearth.Bytes32
}

func NewAddress(context *Context, pos hearth.Bytes32) *Address {
	return &Address{context: context, pos: pos}
}

func (a *Address) Get() (hearth.Address, error) {
	storage, err := a.context.state.GetStorage(a.context.address, a.pos)
	if err != nil {
		return hearth.Address{}, err
	}
	return hearth.BytesToAddress(storage.Bytes()), nil
}

func (a *Address) Set(addr hearth.Address) {
	a.context.state.SetStorage(a.context.address, a.pos, hearth.BytesToBytes32(addr.Bytes()))
}
