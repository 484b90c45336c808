// Copyright (c) 2025 The Hearthchain developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package authority

import (
	"errors"

	"github.com/hearthchain/staking/hearth"
)

// Seed tags for deterministic account derivation.
var (
	capabilitySeed = []byte("staking-authority")
	vaultSeed      = []byte("staking-vault")
)

// ErrNoCapability is returned when no nonce yields a usable signer address.
// With a 256-way scan this is unreachable for any real token identifier.
var ErrNoCapability = errors.New("no capability nonce found")

// Capability is the program-derived signing authority over custodial
// accounts. It is rebuilt from fixed seeds and a stored nonce whenever a
// custodial transfer must be signed; no private key exists or is ever
// persisted.
type Capability struct {
	token hearth.Address
	nonce uint8
}

// DeriveCapability scans nonces from high to low and returns the first
// capability whose signer address is usable. The scan is deterministic, so
// every run of the program derives the same capability for a token.
func DeriveCapability(token hearth.Address) (Capability, error) {
	for nonce := 255; nonce >= 0; nonce-- {
		c := CapabilityWithNonce(token, uint8(nonce))
		if !c.SignerAddress().IsZero() {
			return c, nil
		}
	}
	return Capability{}, ErrNoCapability
}

// CapabilityWithNonce rebuilds a capability from its stored nonce.
func CapabilityWithNonce(token hearth.Address, nonce uint8) Capability {
	return Capability{token: token, nonce: nonce}
}

// Nonce returns the derivation nonce, persisted on the authority record.
func (c Capability) Nonce() uint8 {
	return c.nonce
}

// SignerAddress returns the address the capability signs as. It implements
// ledger.Authorization: presenting the capability to the token ledger
// authorizes transfers out of accounts registered to this address.
func (c Capability) SignerAddress() hearth.Address {
	h := hearth.Blake2b(capabilitySeed, c.token.Bytes(), []byte{c.nonce})
	return hearth.BytesToAddress(h.Bytes()[12:])
}

// VaultAddress derives the custodial vault account for a token. The vault
// is registered to the capability's signer address, so only program logic
// can move principal out of it.
func VaultAddress(token hearth.Address) hearth.Address {
	h := hearth.Blake2b(vaultSeed, token.Bytes())
	return hearth.BytesToAddress(h.Bytes()[12:])
}
