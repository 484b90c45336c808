// Copyright (c) 2025 The Hearthchain developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package program

import (
	"github.com/hearthchain/staking/program/reverts"
)

// Operation failures. Each aborts the whole operation with no observable
// side effect; callers match kinds with errors.Is.
var (
	ErrNotInitialized     = reverts.New("NotInitialized", "staking authority is not initialized")
	ErrAlreadyInitialized = reverts.New("AlreadyInitialized", "staking authority is already initialized")

	ErrInvalidAmount      = reverts.New("InvalidAmount", "stake amount must be greater than zero")
	ErrStakeAlreadyExists = reverts.New("StakeAlreadyExists", "an active stake record already exists for this depositor")
	ErrInactiveStake      = reverts.New("InactiveStake", "no active stake record for this depositor")

	ErrStakingPeriodNotEnded = reverts.New("StakingPeriodNotEnded", "staking period has not ended")
	ErrNoRewardsAvailable    = reverts.New("NoRewardsAvailable", "no rewards available to claim")

	ErrInsufficientFunds = reverts.New("InsufficientFunds", "insufficient funds for transfer")
	ErrUnauthorized      = reverts.New("Unauthorized", "caller is not authorized")

	// Aggregate counters going out of range signal a ledger-consistency
	// defect, never a recoverable user error.
	ErrArithmeticOverflow  = reverts.New("ArithmeticOverflow", "arithmetic overflow in staking aggregates")
	ErrArithmeticUnderflow = reverts.New("ArithmeticUnderflow", "arithmetic underflow in staking aggregates")
)
