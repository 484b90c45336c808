// Copyright (c) 2025 The Hearthchain developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package authority

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthchain/staking/hearth"
	"github.com/hearthchain/staking/slot"
	"github.com/hearthchain/staking/state"
)

var (
	progAddr  = hearth.BytesToAddress([]byte("staking-program"))
	token     = hearth.BytesToAddress([]byte("hearth-token"))
	admin     = hearth.BytesToAddress([]byte("admin"))
	validator = hearth.BytesToAddress([]byte("validator"))
	reserve   = hearth.BytesToAddress([]byte("rewards-reserve"))
)

func newSvc() *Service {
	return New(slot.NewContext(progAddr, state.New()))
}

func TestInitialize(t *testing.T) {
	svc := newSvc()

	ok, err := svc.Initialized()
	require.NoError(t, err)
	assert.False(t, ok)

	cap, err := svc.Initialize(admin, validator, token, reserve)
	require.NoError(t, err)
	assert.False(t, cap.SignerAddress().IsZero())

	ok, err = svc.Initialized()
	require.NoError(t, err)
	assert.True(t, ok)

	gotAdmin, err := svc.Admin()
	require.NoError(t, err)
	assert.Equal(t, admin, gotAdmin)
	gotToken, err := svc.Token()
	require.NoError(t, err)
	assert.Equal(t, token, gotToken)
	gotReserve, err := svc.Reserve()
	require.NoError(t, err)
	assert.Equal(t, reserve, gotReserve)

	totals, err := svc.GetTotals()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), totals.TotalStaked)
	assert.Equal(t, uint64(0), totals.StakerCount)
}

func TestCapabilityRoundTrip(t *testing.T) {
	svc := newSvc()
	cap, err := svc.Initialize(admin, validator, token, reserve)
	require.NoError(t, err)

	rebuilt, err := svc.Capability()
	require.NoError(t, err)
	assert.Equal(t, cap.SignerAddress(), rebuilt.SignerAddress())
	assert.Equal(t, cap.Nonce(), rebuilt.Nonce())
}

func TestCapabilityDeterministic(t *testing.T) {
	a, err := DeriveCapability(token)
	require.NoError(t, err)
	b, err := DeriveCapability(token)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	other, err := DeriveCapability(hearth.BytesToAddress([]byte("other-token")))
	require.NoError(t, err)
	assert.NotEqual(t, a.SignerAddress(), other.SignerAddress())
}

func TestVaultAddressDeterministic(t *testing.T) {
	assert.Equal(t, VaultAddress(token), VaultAddress(token))
	assert.NotEqual(t, VaultAddress(token), VaultAddress(hearth.BytesToAddress([]byte("other-token"))))

	cap, err := DeriveCapability(token)
	require.NoError(t, err)
	assert.NotEqual(t, cap.SignerAddress(), VaultAddress(token))
}

func TestTotalsConservativeArithmetic(t *testing.T) {
	svc := newSvc()
	_, err := svc.Initialize(admin, validator, token, reserve)
	require.NoError(t, err)

	require.NoError(t, svc.AddStake(1000))
	require.NoError(t, svc.AddStake(500))
	totals, err := svc.GetTotals()
	require.NoError(t, err)
	assert.Equal(t, uint64(1500), totals.TotalStaked)
	assert.Equal(t, uint64(2), totals.StakerCount)

	require.NoError(t, svc.RemoveStake(500))
	totals, err = svc.GetTotals()
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), totals.TotalStaked)
	assert.Equal(t, uint64(1), totals.StakerCount)
}

func TestTotalsOverflow(t *testing.T) {
	svc := newSvc()
	_, err := svc.Initialize(admin, validator, token, reserve)
	require.NoError(t, err)

	require.NoError(t, svc.AddStake(math.MaxUint64))
	assert.ErrorIs(t, svc.AddStake(1), slot.ErrUint64Overflow)
}

func TestTotalsUnderflow(t *testing.T) {
	svc := newSvc()
	_, err := svc.Initialize(admin, validator, token, reserve)
	require.NoError(t, err)

	require.NoError(t, svc.AddStake(100))
	assert.ErrorIs(t, svc.RemoveStake(101), slot.ErrUint64Underflow)
}
