// Copyright (c) 2025 The Hearthchain developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package rewards

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthchain/staking/hearth"
)

func TestAccrueZeroElapsed(t *testing.T) {
	got, err := Accrue(1000, 1500, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), got)
}

func TestAccrueFullYear(t *testing.T) {
	// 1,000 units at 15.00% over exactly one year yields 150
	got, err := Accrue(1000, 1500, hearth.SecondsPerYear)
	require.NoError(t, err)
	assert.Equal(t, uint64(150), got)
}

func TestAccrueThirtyDays(t *testing.T) {
	// 1,000 units at 5.00% over 30 days: 1000*0.05*30/365 = 4.10..., truncated
	got, err := Accrue(1000, 500, 30*hearth.SecondsPerDay)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), got)
}

func TestAccrueTruncates(t *testing.T) {
	// one second of interest on a small principal floors to zero
	got, err := Accrue(1000, 1500, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), got)
}

func TestAccrueMonotonic(t *testing.T) {
	prevElapsed := uint64(0)
	for _, elapsed := range []uint64{0, 1, 3600, 86400, 30 * 86400, 365 * 86400, 10 * 365 * 86400} {
		got, err := Accrue(1_000_000, 800, elapsed)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, prevElapsed)
		prevElapsed = got
	}

	prevPrincipal := uint64(0)
	for _, principal := range []uint64{0, 1, 1000, 1_000_000, 1_000_000_000} {
		got, err := Accrue(principal, 800, hearth.SecondsPerYear)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, prevPrincipal)
		prevPrincipal = got
	}
}

func TestAccrueWidenedIntermediate(t *testing.T) {
	// principal * rate * elapsed overflows uint64, but the result fits
	got, err := Accrue(math.MaxUint64/2, 1500, hearth.SecondsPerYear)
	require.NoError(t, err)
	assert.Equal(t, uint64(1383505805528216371), got)
}

func TestAccrueOverflow(t *testing.T) {
	// centuries of max-principal interest cannot be represented
	_, err := Accrue(math.MaxUint64, 1500, math.MaxUint64)
	assert.ErrorIs(t, err, ErrAmountOverflow)
}

func TestAccrueSinceClamps(t *testing.T) {
	got, err := AccrueSince(1000, 1500, 100, 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), got)

	// clock regression never yields negative interest
	got, err = AccrueSince(1000, 1500, 200, 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), got)
}
