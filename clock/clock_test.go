// Copyright (c) 2025 The Hearthchain developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManual(t *testing.T) {
	m := NewManual(1000)
	assert.Equal(t, uint64(1000), m.Now())

	m.Advance(86400)
	assert.Equal(t, uint64(87400), m.Now())

	m.Set(500)
	assert.Equal(t, uint64(500), m.Now())
}

func TestCheckOffset(t *testing.T) {
	// never fails hard: an unreachable NTP pool degrades to a log line
	CheckOffset(time.Second)
}

func TestSystem(t *testing.T) {
	before := uint64(time.Now().Unix())
	now := System{}.Now()
	after := uint64(time.Now().Unix())
	assert.GreaterOrEqual(t, now, before)
	assert.LessOrEqual(t, now, after)
}
