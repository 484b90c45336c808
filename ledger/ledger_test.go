// Copyright (c) 2025 The Hearthchain developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthchain/staking/hearth"
	"github.com/hearthchain/staking/state"
)

var (
	ledgerAddr = hearth.BytesToAddress([]byte("token-ledger"))
	token      = hearth.BytesToAddress([]byte("hearth-token"))

	alice = hearth.BytesToAddress([]byte("alice"))
	bob   = hearth.BytesToAddress([]byte("bob"))
	vault = hearth.BytesToAddress([]byte("vault"))
)

func newLedger() *Ledger {
	return New(ledgerAddr, state.New(), token)
}

func TestMintAndBalance(t *testing.T) {
	l := newLedger()

	bal, err := l.Balance(alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), bal)

	require.NoError(t, l.Mint(alice, 1000))
	bal, err = l.Balance(alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), bal)

	supply, err := l.TotalSupply()
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), supply)
}

func TestTransfer(t *testing.T) {
	l := newLedger()
	require.NoError(t, l.Mint(alice, 1000))

	require.NoError(t, l.Transfer(alice, bob, 400, SignedBy(alice)))

	aliceBal, _ := l.Balance(alice)
	bobBal, _ := l.Balance(bob)
	assert.Equal(t, uint64(600), aliceBal)
	assert.Equal(t, uint64(400), bobBal)
}

func TestTransferInsufficient(t *testing.T) {
	l := newLedger()
	require.NoError(t, l.Mint(alice, 100))

	err := l.Transfer(alice, bob, 101, SignedBy(alice))
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	bal, _ := l.Balance(alice)
	assert.Equal(t, uint64(100), bal)
}

func TestTransferToSelf(t *testing.T) {
	l := newLedger()
	require.NoError(t, l.Mint(alice, 1000))

	// a self-transfer moves nothing and creates nothing
	require.NoError(t, l.Transfer(alice, alice, 400, SignedBy(alice)))
	bal, err := l.Balance(alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), bal)
	supply, err := l.TotalSupply()
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), supply)

	// authorization and balance checks still apply
	err = l.Transfer(alice, alice, 400, SignedBy(bob))
	assert.ErrorIs(t, err, ErrUnauthorized)
	err = l.Transfer(alice, alice, 1001, SignedBy(alice))
	assert.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestTransferUnauthorized(t *testing.T) {
	l := newLedger()
	require.NoError(t, l.Mint(alice, 100))

	err := l.Transfer(alice, bob, 50, SignedBy(bob))
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = l.Transfer(alice, bob, 50, nil)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestCustodialAccountAuthority(t *testing.T) {
	l := newLedger()
	custodian := hearth.BytesToAddress([]byte("custodian"))

	require.NoError(t, l.Open(vault, custodian))
	auth, err := l.AuthorityOf(vault)
	require.NoError(t, err)
	assert.Equal(t, custodian, auth)

	require.NoError(t, l.Mint(vault, 500))

	// the vault's own address cannot debit it
	err = l.Transfer(vault, bob, 100, SignedBy(vault))
	assert.ErrorIs(t, err, ErrUnauthorized)

	// the registered custodian can
	require.NoError(t, l.Transfer(vault, bob, 100, SignedBy(custodian)))
	bal, _ := l.Balance(bob)
	assert.Equal(t, uint64(100), bal)
}

func TestOpenTwice(t *testing.T) {
	l := newLedger()
	require.NoError(t, l.Open(vault, alice))
	assert.ErrorIs(t, l.Open(vault, bob), ErrAccountExists)
}

func TestMintOverflow(t *testing.T) {
	l := newLedger()
	require.NoError(t, l.Mint(alice, math.MaxUint64))
	assert.ErrorIs(t, l.Mint(bob, 1), ErrSupplyOverflow)
}
