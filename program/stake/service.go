// Copyright (c) 2025 The Hearthchain developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package stake stores per-depositor stake records. Record positions are
// derived from (role tag, token, owner), so each depositor maps to exactly
// one slot per deployment.
package stake

import (
	"github.com/pkg/errors"

	"github.com/hearthchain/staking/hearth"
	"github.com/hearthchain/staking/slot"
)

// Service is the stake record store.
type Service struct {
	records *slot.Mapping[hearth.Address, *Record]
}

func New(sctx *slot.Context, token hearth.Address) *Service {
	basePos := slot.Position([]byte("stake-record"), token.Bytes())
	return &Service{
		records: slot.NewMapping[hearth.Address, *Record](sctx, basePos),
	}
}

// Get returns the depositor's record. A never-created or reclaimed record
// reads back empty, not as an error.
func (s *Service) Get(owner hearth.Address) (*Record, error) {
	rec, err := s.records.Get(owner)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get stake record")
	}
	return rec, nil
}

// Has returns whether a record exists for the depositor.
func (s *Service) Has(owner hearth.Address) (bool, error) {
	has, err := s.records.Has(owner)
	if err != nil {
		return false, errors.Wrap(err, "failed to check stake record")
	}
	return has, nil
}

// Set creates or updates the depositor's record.
func (s *Service) Set(owner hearth.Address, rec *Record) error {
	if err := s.records.Set(owner, rec); err != nil {
		return errors.Wrap(err, "failed to set stake record")
	}
	return nil
}

// Remove reclaims the record's storage. The record is unreachable
// afterwards.
func (s *Service) Remove(owner hearth.Address) error {
	if err := s.records.Delete(owner); err != nil {
		return errors.Wrap(err, "failed to remove stake record")
	}
	return nil
}
