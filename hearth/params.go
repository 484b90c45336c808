// Copyright (c) 2025 The Hearthchain developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package hearth

// Constants of time and rate units used across the staking program.
const (
	SecondsPerDay  uint64 = 86400
	SecondsPerYear uint64 = 365 * SecondsPerDay

	// BasisPointScale is the denominator of annual rates expressed in
	// basis points (1bp = 0.01%).
	BasisPointScale uint64 = 10_000
)
