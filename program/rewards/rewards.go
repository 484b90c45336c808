// Copyright (c) 2025 The Hearthchain developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package rewards computes linear (simple, non-compounding) interest.
// Both claim and unstake settle through this single implementation, so the
// two paths always apply identical arithmetic over the same accrual
// checkpoint.
package rewards

import (
	"errors"

	"github.com/holiman/uint256"

	"github.com/hearthchain/staking/hearth"
)

// ErrAmountOverflow is returned when the accrued amount exceeds the
// representable token range. In practice this signals corrupted inputs, not
// a reachable balance.
var ErrAmountOverflow = errors.New("accrued amount overflows uint64")

// Accrue returns the interest owed on principal at rateBps (annual, basis
// points) over elapsed seconds: floor(principal * rate/10000 * elapsed/year).
// The intermediate product is computed in 256 bits, so no precision is lost
// before the final truncating division.
func Accrue(principal uint64, rateBps uint16, elapsed uint64) (uint64, error) {
	if elapsed == 0 || principal == 0 || rateBps == 0 {
		return 0, nil
	}

	x := uint256.NewInt(principal)
	x.Mul(x, uint256.NewInt(uint64(rateBps)))
	x.Mul(x, uint256.NewInt(elapsed))
	x.Div(x, uint256.NewInt(hearth.BasisPointScale*hearth.SecondsPerYear))

	if !x.IsUint64() {
		return 0, ErrAmountOverflow
	}
	return x.Uint64(), nil
}

// AccrueSince accrues between two instants, clamping a non-positive window
// to zero rather than underflowing.
func AccrueSince(principal uint64, rateBps uint16, from, to uint64) (uint64, error) {
	if to <= from {
		return 0, nil
	}
	return Accrue(principal, rateBps, to-from)
}
