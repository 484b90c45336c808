// Copyright (c) 2025 The Hearthchain developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package program

import (
	"github.com/hearthchain/staking/hearth"
	"github.com/hearthchain/staking/host"
)

// Scope names used by lifecycle operations. The authority scope covers the
// deployment config and the staked-amount aggregates; record and account
// scopes are per depositor and per token account.
func authorityScope() string                  { return "authority" }
func recordScope(owner hearth.Address) string { return "record/" + owner.String() }
func accountScope(addr hearth.Address) string { return "account/" + addr.String() }

// InitializeOp binds an initialize call for host submission.
func (p *Program) InitializeOp(admin, validator, reserve hearth.Address) host.Operation {
	return host.Operation{
		Name: "initialize",
		Scopes: []host.Scope{
			host.WriteScope(authorityScope()),
			host.WriteScope(accountScope(p.vault)),
			host.WriteScope(accountScope(reserve)),
		},
		Run: func() error { return p.Initialize(admin, validator, reserve) },
	}
}

// StakeOp binds a stake call for host submission.
func (p *Program) StakeOp(owner, source hearth.Address, amount uint64, lockDays uint32) host.Operation {
	return host.Operation{
		Name: "stake",
		Scopes: []host.Scope{
			host.WriteScope(authorityScope()),
			host.WriteScope(recordScope(owner)),
			host.WriteScope(accountScope(source)),
			host.WriteScope(accountScope(p.vault)),
		},
		Run: func() error { return p.Stake(owner, source, amount, lockDays) },
	}
}

// ClaimOp binds a claim call for host submission. Claims leave the
// aggregates untouched, so claims of distinct depositors drawing on the
// same reserve conflict only on the reserve account itself.
func (p *Program) ClaimOp(owner, source, reserve hearth.Address) host.Operation {
	return host.Operation{
		Name: "claim",
		Scopes: []host.Scope{
			host.ReadScope(authorityScope()),
			host.WriteScope(recordScope(owner)),
			host.WriteScope(accountScope(source)),
			host.WriteScope(accountScope(reserve)),
		},
		Run: func() error {
			_, err := p.Claim(owner)
			return err
		},
	}
}

// UnstakeOp binds an unstake call for host submission.
func (p *Program) UnstakeOp(caller, owner, source, reserve hearth.Address) host.Operation {
	return host.Operation{
		Name: "unstake",
		Scopes: []host.Scope{
			host.WriteScope(authorityScope()),
			host.WriteScope(recordScope(owner)),
			host.WriteScope(accountScope(source)),
			host.WriteScope(accountScope(p.vault)),
			host.WriteScope(accountScope(reserve)),
		},
		Run: func() error {
			_, _, err := p.Unstake(caller, owner)
			return err
		},
	}
}
