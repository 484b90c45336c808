// Copyright (c) 2025 The Hearthchain developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/hearthchain/staking/hearth"
)

type storageKey struct {
	addr hearth.Address
	key  hearth.Bytes32
}

// stackedStorage maintains storage values in a stack of levels.
// Each level inherits key/values of the levels below it, so the whole
// stack acts as a flat map with checkpoint/revert manner.
type stackedStorage struct {
	levels         []*level
	keyRevisionMap map[storageKey][]int
}

type level struct {
	kvs map[storageKey]rlp.RawValue
}

func newStackedStorage() *stackedStorage {
	s := &stackedStorage{
		keyRevisionMap: make(map[storageKey][]int),
	}
	// base level, never popped
	s.push()
	return s
}

// push pushes a new level and returns the depth before push.
func (s *stackedStorage) push() int {
	s.levels = append(s.levels, &level{kvs: make(map[storageKey]rlp.RawValue)})
	return len(s.levels) - 1
}

// popTo pops levels until depth is reached, reverting all puts since.
func (s *stackedStorage) popTo(depth int) {
	if depth < 1 {
		depth = 1
	}
	for len(s.levels) > depth {
		top := s.levels[len(s.levels)-1]
		for key := range top.kvs {
			revs := s.keyRevisionMap[key]
			revs = revs[:len(revs)-1]
			if len(revs) == 0 {
				delete(s.keyRevisionMap, key)
			} else {
				s.keyRevisionMap[key] = revs
			}
		}
		s.levels = s.levels[:len(s.levels)-1]
	}
}

// commitTo folds levels at and above depth into the level below,
// making their writes permanent while keeping lower checkpoints intact.
func (s *stackedStorage) commitTo(depth int) {
	if depth < 1 {
		depth = 1
	}
	if len(s.levels) <= depth {
		return
	}
	target := s.levels[depth-1]
	for _, lvl := range s.levels[depth:] {
		for key, val := range lvl.kvs {
			revs := s.keyRevisionMap[key]
			for len(revs) > 0 && revs[len(revs)-1] >= depth {
				revs = revs[:len(revs)-1]
			}
			if len(revs) == 0 || revs[len(revs)-1] != depth-1 {
				revs = append(revs, depth-1)
			}
			s.keyRevisionMap[key] = revs
			target.kvs[key] = val
		}
	}
	s.levels = s.levels[:depth]
}

func (s *stackedStorage) get(key storageKey) (rlp.RawValue, bool) {
	if revs, ok := s.keyRevisionMap[key]; ok {
		lvl := s.levels[revs[len(revs)-1]]
		if v, ok := lvl.kvs[key]; ok {
			return v, true
		}
	}
	return nil, false
}

func (s *stackedStorage) put(key storageKey, value rlp.RawValue) {
	top := s.levels[len(s.levels)-1]
	if _, exists := top.kvs[key]; !exists {
		rev := len(s.levels) - 1
		s.keyRevisionMap[key] = append(s.keyRevisionMap[key], rev)
	}
	top.kvs[key] = value
}
