// Copyright (c) 2025 The Hearthchain developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package reverts

import (
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestRevertKindMatching(t *testing.T) {
	invalidAmount := New("InvalidAmount", "stake amount must be greater than zero")
	inactive := New("InactiveStake", "stake record is not active")

	assert.True(t, errors.Is(invalidAmount, New("InvalidAmount", "other message")))
	assert.False(t, errors.Is(invalidAmount, inactive))

	wrapped := pkgerrors.Wrap(invalidAmount, "stake failed")
	assert.True(t, errors.Is(wrapped, invalidAmount))
	assert.Equal(t, "stake failed: stake amount must be greater than zero", wrapped.Error())
}

func TestIsRevertErr(t *testing.T) {
	assert.False(t, IsRevertErr(nil))
	assert.False(t, IsRevertErr(errors.New("plain")))
	assert.False(t, IsRevertErr("not an error"))
	assert.True(t, IsRevertErr(New("NoRewardsAvailable", "nothing to claim")))
	assert.True(t, IsRevertErr(pkgerrors.Wrap(New("InvalidAmount", "zero"), "ctx")))
}
