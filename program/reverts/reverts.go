// Copyright (c) 2025 The Hearthchain developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package reverts defines the error type for operation-aborting failures.
// A revert carries a stable kind, so callers can match failures across
// wrapping while messages stay free to change.
package reverts

import (
	"errors"
)

type ErrRevert struct {
	kind    string
	message string
}

func New(kind, message string) *ErrRevert {
	return &ErrRevert{
		kind:    kind,
		message: message,
	}
}

func (e *ErrRevert) Error() string {
	return e.message
}

// Kind returns the stable identifier of the failure.
func (e *ErrRevert) Kind() string {
	return e.kind
}

// Is matches reverts by kind, so errors.Is works against the exported
// kind values regardless of wrapping.
func (e *ErrRevert) Is(target error) bool {
	var other *ErrRevert
	if !errors.As(target, &other) {
		return false
	}
	return e.kind == other.kind
}

// IsRevertErr reports whether err is (or wraps) a revert.
func IsRevertErr(err any) bool {
	if err == nil {
		return false
	}
	e, ok := err.(error)
	if !ok {
		return false
	}
	var ve *ErrRevert
	return errors.As(e, &ve)
}
