// Copyright (c) 2025 The Hearthchain developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stake

import (
	"github.com/hearthchain/staking/hearth"
)

// Record is a depositor's stake. One record exists per (owner, token) pair;
// the record is created by stake, advanced by claim and removed by unstake.
type Record struct {
	Owner     hearth.Address // the depositor
	Authority hearth.Address // the staking authority account the record belongs to
	Source    hearth.Address // the depositor's token account, funds return here

	Deposit    uint64 // staked principal, in token base units
	StartTime  uint64 // unix seconds at creation
	UnlockTime uint64 // StartTime + lock duration
	RateBps    uint16 // annual rate frozen at creation

	RewardsClaimed  uint64 // cumulative interest paid out
	LastClaimedTime uint64 // accrual checkpoint shared by claim and unstake

	Active bool
	Nonce  uint8 // capability nonce of the signing authority
}

// IsEmpty returns whether the record holds no stake.
func (r *Record) IsEmpty() bool {
	return r == nil || (r.Owner.IsZero() && r.Deposit == 0)
}

// Unlocked returns whether the lock period has ended at the given instant.
func (r *Record) Unlocked(now uint64) bool {
	return now >= r.UnlockTime
}
