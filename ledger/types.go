// Copyright (c) 2025 The Hearthchain developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/hearthchain/staking/hearth"
)

type account struct {
	Balance   uint64
	Authority hearth.Address
}

func (a *account) IsEmpty() bool {
	return a.Balance == 0 && a.Authority.IsZero()
}

func (a *account) Encode() ([]byte, error) {
	if a.IsEmpty() {
		return nil, nil
	}
	return rlp.EncodeToBytes(a)
}

func (a *account) Decode(data []byte) error {
	if len(data) == 0 {
		*a = account{}
		return nil
	}
	return rlp.DecodeBytes(data, a)
}
