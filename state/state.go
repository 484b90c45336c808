// Copyright (c) 2025 The Hearthchain developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"bytes"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/hearthchain/staking/hearth"
)

// State is the account storage of the execution host, presented to program
// logic. All writes are journaled, so a failed operation can be rolled back
// to its checkpoint without partial effects.
type State struct {
	storage *stackedStorage
}

// New creates an empty state.
func New() *State {
	return &State{storage: newStackedStorage()}
}

// GetRawStorage returns storage value in rlp raw form for the given key.
func (s *State) GetRawStorage(addr hearth.Address, key hearth.Bytes32) (rlp.RawValue, error) {
	raw, _ := s.storage.get(storageKey{addr, key})
	return raw, nil
}

// SetRawStorage set storage value in rlp raw form.
func (s *State) SetRawStorage(addr hearth.Address, key hearth.Bytes32, raw rlp.RawValue) {
	s.storage.put(storageKey{addr, key}, raw)
}

// GetStorage returns storage value for the given key.
func (s *State) GetStorage(addr hearth.Address, key hearth.Bytes32) (hearth.Bytes32, error) {
	raw, err := s.GetRawStorage(addr, key)
	if err != nil {
		return hearth.Bytes32{}, err
	}
	if len(raw) == 0 {
		return hearth.Bytes32{}, nil
	}
	_, content, _, err := rlp.Split(raw)
	if err != nil {
		return hearth.Bytes32{}, err
	}
	return hearth.BytesToBytes32(content), nil
}

// SetStorage set storage value for the given key.
func (s *State) SetStorage(addr hearth.Address, key, value hearth.Bytes32) {
	if value.IsZero() {
		s.SetRawStorage(addr, key, nil)
		return
	}
	v, _ := rlp.EncodeToBytes(bytes.TrimLeft(value[:], "\x00"))
	s.SetRawStorage(addr, key, v)
}

// EncodeStorage set storage value encoded by given enc method.
// An empty encoded value deletes the storage slot.
func (s *State) EncodeStorage(addr hearth.Address, key hearth.Bytes32, enc func() ([]byte, error)) error {
	raw, err := enc()
	if err != nil {
		return err
	}
	s.SetRawStorage(addr, key, raw)
	return nil
}

// DecodeStorage get and decode storage value.
// The dec callback always receives the raw value, which is empty for an
// unset slot.
func (s *State) DecodeStorage(addr hearth.Address, key hearth.Bytes32, dec func([]byte) error) error {
	raw, err := s.GetRawStorage(addr, key)
	if err != nil {
		return err
	}
	return dec(raw)
}

// NewCheckpoint makes a checkpoint of current state.
// It returns revision of the checkpoint.
func (s *State) NewCheckpoint() int {
	return s.storage.push()
}

// RevertTo reverts to the given revision, discarding all writes made since.
func (s *State) RevertTo(revision int) {
	s.storage.popTo(revision)
}

// Commit finalizes all writes made since the given revision, folding them
// into the level below the checkpoint.
func (s *State) Commit(revision int) {
	s.storage.commitTo(revision)
}
