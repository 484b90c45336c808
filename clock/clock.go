// Copyright (c) 2025 The Hearthchain developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package clock supplies the time source consumed by the staking program.
// Lifecycle operations read the clock exactly once and use that instant
// consistently; the source only needs to be monotonic enough for
// day-granularity comparisons.
package clock

import (
	"sync/atomic"
	"time"

	"github.com/beevik/ntp"

	"github.com/hearthchain/staking/log"
)

var logger = log.WithContext("pkg", "clock")

// Clock reports the current time in seconds since the unix epoch.
type Clock interface {
	Now() uint64
}

// System is a Clock backed by the operating system time.
type System struct{}

func (System) Now() uint64 {
	return uint64(time.Now().Unix())
}

// Manual is a settable Clock for tests and deterministic replay.
type Manual struct {
	now atomic.Uint64
}

func NewManual(now uint64) *Manual {
	m := &Manual{}
	m.now.Store(now)
	return m
}

func (m *Manual) Now() uint64 {
	return m.now.Load()
}

// Set moves the clock to the given instant.
func (m *Manual) Set(now uint64) {
	m.now.Store(now)
}

// Advance moves the clock forward by d seconds.
func (m *Manual) Advance(d uint64) {
	m.now.Add(d)
}

// CheckOffset queries an NTP pool and warns if the local clock drifts by
// more than tolerance. Failures to reach NTP are not errors; the system
// clock stays authoritative.
func CheckOffset(tolerance time.Duration) {
	resp, err := ntp.Query("pool.ntp.org")
	if err != nil {
		logger.Debug("failed to access NTP", "err", err)
		return
	}
	if resp.ClockOffset > tolerance || resp.ClockOffset < -tolerance {
		logger.Warn("clock offset detected", "offset", resp.ClockOffset)
	}
}
