// Copyright (c) 2025 The Hearthchain developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package slot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthchain/staking/hearth"
	"github.com/hearthchain/staking/state"
)

func newCtx() *Context {
	st := state.New()
	return NewContext(hearth.BytesToAddress([]byte("prog")), st)
}

func TestUint64Cell(t *testing.T) {
	ctx := newCtx()
	cell := NewUint64(ctx, hearth.BytesToBytes32([]byte("counter")))

	v, err := cell.Get()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), v)

	require.NoError(t, cell.Add(100))
	require.NoError(t, cell.Add(23))
	v, err = cell.Get()
	require.NoError(t, err)
	assert.Equal(t, uint64(123), v)

	require.NoError(t, cell.Sub(23))
	v, err = cell.Get()
	require.NoError(t, err)
	assert.Equal(t, uint64(100), v)
}

func TestUint64CellChecked(t *testing.T) {
	ctx := newCtx()
	cell := NewUint64(ctx, hearth.BytesToBytes32([]byte("counter")))

	cell.Set(math.MaxUint64)
	assert.ErrorIs(t, cell.Add(1), ErrUint64Overflow)

	cell.Set(0)
	assert.ErrorIs(t, cell.Sub(1), ErrUint64Underflow)

	// failed mutations leave the cell untouched
	v, err := cell.Get()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), v)
}

func TestAddressCell(t *testing.T) {
	ctx := newCtx()
	cell := NewAddress(ctx, hearth.BytesToBytes32([]byte("admin")))

	addr, err := cell.Get()
	require.NoError(t, err)
	assert.True(t, addr.IsZero())

	want := hearth.BytesToAddress([]byte("the-admin"))
	cell.Set(want)
	addr, err = cell.Get()
	require.NoError(t, err)
	assert.Equal(t, want, addr)
}

type testKey [4]byte

func (k testKey) Bytes() []byte { return k[:] }

type testRecord struct {
	Amount uint64
	Owner  hearth.Address
}

func TestMapping(t *testing.T) {
	ctx := newCtx()
	m := NewMapping[testKey, *testRecord](ctx, hearth.BytesToBytes32([]byte("records")))

	key := testKey{1, 2, 3, 4}

	has, err := m.Has(key)
	require.NoError(t, err)
	assert.False(t, has)

	rec := &testRecord{Amount: 42, Owner: hearth.BytesToAddress([]byte("owner"))}
	require.NoError(t, m.Set(key, rec))

	got, err := m.Get(key)
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	has, err = m.Has(key)
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, m.Delete(key))
	has, err = m.Has(key)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestPositionDistinct(t *testing.T) {
	owner := []byte("owner")
	token := []byte("token")
	assert.NotEqual(t, Position([]byte("stake-record"), owner, token), Position([]byte("staking-authority"), owner, token))
	assert.NotEqual(t, Position([]byte("stake-record"), owner, token), Position([]byte("stake-record"), token, owner))
}
