// Copyright (c) 2025 The Hearthchain developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package slot

import (
	"encoding/binary"
	"errors"

	"github.com/ethereum/go-ethereum/common/math"

	"github.com/hearthchain/staking/hearth"
)

var (
	// ErrUint64Overflow is returned when a checked addition exceeds the
	// representable range.
	ErrUint64Overflow = errors.New("uint64 cell overflow")
	// ErrUint64Underflow is returned when a checked subtraction would go
	// below zero.
	ErrUint64Underflow = errors.New("uint64 cell underflow")
)

// Uint64 is a wrapper for storage and retrieval of an uint64 counter.
// Mutations are overflow-checked: the cell never silently wraps or
// saturates.
type Uint64 struct {
	context *Context
	pos     hearth.Bytes32
}

func NewUint64(context *Context, pos hearth.Bytes32) *Uint64 {
	return &Uint64{context: context, pos: pos}
}

func (u *Uint64) Get() (uint64, error) {
	storage, err := u.context.state.GetStorage(u.context.address, u.pos)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(storage[24:]), nil
}

func (u *Uint64) Set(value uint64) {
	var storage hearth.Bytes32
	binary.BigEndian.PutUint64(storage[24:], value)
	u.context.state.SetStorage(u.context.address, u.pos, storage)
}

// Add increases the cell by value, failing on overflow.
func (u *Uint64) Add(value uint64) error {
	current, err := u.Get()
	if err != nil {
		return err
	}
	sum, overflow := math.SafeAdd(current, value)
	if overflow {
		return ErrUint64Overflow
	}
	u.Set(sum)
	return nil
}

// Sub decreases the cell by value, failing on underflow.
func (u *Uint64) Sub(value uint64) error {
	current, err := u.Get()
	if err != nil {
		return err
	}
	diff, underflow := math.SafeSub(current, value)
	if underflow {
		return ErrUint64Underflow
	}
	u.Set(diff)
	return nil
}
