// Copyright (c) 2025 The Hearthchain developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package authority manages the staking authority singleton: the deployment
// bindings (admin, validator reference, token, rewards reserve), the global
// staking totals and the derived signing capability. The totals form the
// program's single write-contention point; every stake and unstake mutates
// them with checked arithmetic in the same logical transaction as the
// record change.
package authority

import (
	"github.com/pkg/errors"

	"github.com/hearthchain/staking/hearth"
	"github.com/hearthchain/staking/slot"
)

var (
	slotAdmin     = hearth.BytesToBytes32([]byte("authority-admin"))
	slotValidator = hearth.BytesToBytes32([]byte("authority-validator"))
	slotToken     = hearth.BytesToBytes32([]byte("authority-token"))
	slotReserve   = hearth.BytesToBytes32([]byte("authority-reserve"))
	slotNonce     = hearth.BytesToBytes32([]byte("authority-nonce"))

	slotTotalStaked = hearth.BytesToBytes32([]byte("total-staked"))
	slotStakerCount = hearth.BytesToBytes32([]byte("staker-count"))
)

// Totals are the aggregate figures maintained across all active records.
type Totals struct {
	TotalStaked uint64
	StakerCount uint64
}

// Service reads and mutates the staking authority singleton.
type Service struct {
	admin     *slot.Address
	validator *slot.Address
	token     *slot.Address
	reserve   *slot.Address
	nonce     *slot.Uint64

	totalStaked *slot.Uint64
	stakerCount *slot.Uint64
}

func New(sctx *slot.Context) *Service {
	return &Service{
		admin:       slot.NewAddress(sctx, slotAdmin),
		validator:   slot.NewAddress(sctx, slotValidator),
		token:       slot.NewAddress(sctx, slotToken),
		reserve:     slot.NewAddress(sctx, slotReserve),
		nonce:       slot.NewUint64(sctx, slotNonce),
		totalStaked: slot.NewUint64(sctx, slotTotalStaked),
		stakerCount: slot.NewUint64(sctx, slotStakerCount),
	}
}

// Initialized reports whether the singleton has been created.
func (s *Service) Initialized() (bool, error) {
	token, err := s.token.Get()
	if err != nil {
		return false, err
	}
	return !token.IsZero(), nil
}

// Initialize creates the singleton: binds the deployment identities, zeroes
// the aggregates and stores the derived capability nonce.
func (s *Service) Initialize(admin, validator, token, reserve hearth.Address) (Capability, error) {
	cap, err := DeriveCapability(token)
	if err != nil {
		return Capability{}, errors.Wrap(err, "failed to derive signing capability")
	}

	s.admin.Set(admin)
	s.validator.Set(validator)
	s.token.Set(token)
	s.reserve.Set(reserve)
	s.nonce.Set(uint64(cap.Nonce()))
	s.totalStaked.Set(0)
	s.stakerCount.Set(0)
	return cap, nil
}

func (s *Service) Admin() (hearth.Address, error) {
	return s.admin.Get()
}

func (s *Service) Validator() (hearth.Address, error) {
	return s.validator.Get()
}

func (s *Service) Token() (hearth.Address, error) {
	return s.token.Get()
}

func (s *Service) Reserve() (hearth.Address, error) {
	return s.reserve.Get()
}

// Capability rebuilds the signing capability from the stored nonce.
func (s *Service) Capability() (Capability, error) {
	token, err := s.token.Get()
	if err != nil {
		return Capability{}, err
	}
	nonce, err := s.nonce.Get()
	if err != nil {
		return Capability{}, err
	}
	return CapabilityWithNonce(token, uint8(nonce)), nil
}

// GetTotals returns the aggregate staking figures.
func (s *Service) GetTotals() (*Totals, error) {
	staked, err := s.totalStaked.Get()
	if err != nil {
		return nil, err
	}
	count, err := s.stakerCount.Get()
	if err != nil {
		return nil, err
	}
	return &Totals{TotalStaked: staked, StakerCount: count}, nil
}

// AddStake increases the aggregates for a new deposit. Overflow aborts the
// operation; it signals a ledger-consistency defect, not a user error.
func (s *Service) AddStake(amount uint64) error {
	if err := s.totalStaked.Add(amount); err != nil {
		return err
	}
	return s.stakerCount.Add(1)
}

// RemoveStake decreases the aggregates for a closed deposit. Underflow
// aborts: it means the conservation invariant was already broken.
func (s *Service) RemoveStake(amount uint64) error {
	if err := s.totalStaked.Sub(amount); err != nil {
		return err
	}
	return s.stakerCount.Sub(1)
}
