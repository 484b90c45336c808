// Copyright (c) 2025 The Hearthchain developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package rates maps a requested lock duration to an annual interest rate.
// The resolved rate is frozen into the stake record at creation and never
// re-evaluated.
package rates

// Annual rates in basis points per lock-duration tier.
const (
	BaseRate    = uint16(500)  // 5.00%, under 90 days
	QuarterRate = uint16(800)  // 8.00%, 90 days and over
	HalfRate    = uint16(1200) // 12.00%, 180 days and over
	FullRate    = uint16(1500) // 15.00%, 365 days and over
)

// Lock-duration tier thresholds in days, inclusive.
const (
	QuarterThreshold = uint32(90)
	HalfThreshold    = uint32(180)
	FullThreshold    = uint32(365)
)

// Resolve returns the annual rate for a lock duration. Every duration
// resolves; the highest matching tier wins.
func Resolve(lockDays uint32) uint16 {
	switch {
	case lockDays >= FullThreshold:
		return FullRate
	case lockDays >= HalfThreshold:
		return HalfRate
	case lockDays >= QuarterThreshold:
		return QuarterRate
	default:
		return BaseRate
	}
}
