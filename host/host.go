// Copyright (c) 2025 The Hearthchain developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package host executes lifecycle operations as indivisible transactions.
// Operations declare the state they read and write; the executor admits
// them one at a time, so two operations never interleave and an operation
// whose declared scopes are disjoint from another's can be reordered freely
// around it without changing any outcome.
package host

// Access is the declared mode of a scope.
type Access uint8

const (
	AccessRead Access = iota
	AccessWrite
)

// Scope names one piece of program state an operation touches.
type Scope struct {
	Name   string
	Access Access
}

func ReadScope(name string) Scope  { return Scope{Name: name, Access: AccessRead} }
func WriteScope(name string) Scope { return Scope{Name: name, Access: AccessWrite} }

// Operation is a unit of execution. Run carries the bound arguments;
// Scopes must cover everything Run reads or writes.
type Operation struct {
	Name   string
	Scopes []Scope
	Run    func() error
}

// Conflicts reports whether two operations touch a common scope with at
// least one write. Non-conflicting operations commute.
func (op *Operation) Conflicts(other *Operation) bool {
	for _, a := range op.Scopes {
		for _, b := range other.Scopes {
			if a.Name == b.Name && (a.Access == AccessWrite || b.Access == AccessWrite) {
				return true
			}
		}
	}
	return false
}
