// Copyright (c) 2025 The Hearthchain developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package ledger implements the custodial token ledger the staking program
// delegates all token movement to. The ledger tracks, per account, a balance
// of the designated token and the authority allowed to debit it. Custodial
// accounts (vault, rewards reserve) are opened with a program-derived
// authority so no external keyholder can move their funds.
package ledger

import (
	"errors"

	"github.com/ethereum/go-ethereum/common/math"
	pkgerrors "github.com/pkg/errors"

	"github.com/hearthchain/staking/hearth"
	"github.com/hearthchain/staking/log"
	"github.com/hearthchain/staking/slot"
	"github.com/hearthchain/staking/state"
)

var logger = log.WithContext("pkg", "ledger")

// SetLogger overrides the package logger.
func SetLogger(l log.Logger) {
	logger = l
}

var (
	// ErrInsufficientFunds reports a debit larger than the account balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrUnauthorized reports a transfer whose signer is not the debited
	// account's authority.
	ErrUnauthorized = errors.New("unauthorized signer")
	// ErrAccountExists reports an Open of an already-opened account.
	ErrAccountExists = errors.New("account already opened")
	// ErrSupplyOverflow reports minting beyond the representable supply.
	ErrSupplyOverflow = errors.New("token supply overflow")
)

// Authorization proves the right to debit an account. The host verifies
// external signatures before execution; program-derived capabilities prove
// themselves by construction, since only the program logic can derive them.
type Authorization interface {
	SignerAddress() hearth.Address
}

// SignedBy is a host-verified signature of an external keyholder.
type SignedBy hearth.Address

func (s SignedBy) SignerAddress() hearth.Address {
	return hearth.Address(s)
}

var (
	slotSupply = hearth.BytesToBytes32([]byte("token-supply"))
)

// Ledger is a state-backed token ledger for a single designated token.
type Ledger struct {
	sctx   *slot.Context
	token  hearth.Address
	supply *slot.Uint64
}

// New creates a ledger instance bound to its service account and the
// designated token.
func New(addr hearth.Address, st *state.State, token hearth.Address) *Ledger {
	sctx := slot.NewContext(addr, st)
	return &Ledger{
		sctx:   sctx,
		token:  token,
		supply: slot.NewUint64(sctx, slotSupply),
	}
}

// Token returns the designated token identifier.
func (l *Ledger) Token() hearth.Address {
	return l.token
}

func (l *Ledger) accountKey(addr hearth.Address) hearth.Bytes32 {
	return slot.Position([]byte("token-account"), l.token.Bytes(), addr.Bytes())
}

func (l *Ledger) getAccount(addr hearth.Address) (*account, error) {
	var acc account
	if err := l.sctx.State().DecodeStorage(l.sctx.Address(), l.accountKey(addr), acc.Decode); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to get token account")
	}
	return &acc, nil
}

func (l *Ledger) setAccount(addr hearth.Address, acc *account) error {
	if err := l.sctx.State().EncodeStorage(l.sctx.Address(), l.accountKey(addr), acc.Encode); err != nil {
		return pkgerrors.Wrap(err, "failed to set token account")
	}
	return nil
}

// AuthorityOf returns the authority allowed to debit the account.
// An account that was never explicitly opened is controlled by its own
// keyholder.
func (l *Ledger) AuthorityOf(addr hearth.Address) (hearth.Address, error) {
	acc, err := l.getAccount(addr)
	if err != nil {
		return hearth.Address{}, err
	}
	if acc.Authority.IsZero() {
		return addr, nil
	}
	return acc.Authority, nil
}

// Balance returns the token balance of an account.
func (l *Ledger) Balance(addr hearth.Address) (uint64, error) {
	acc, err := l.getAccount(addr)
	if err != nil {
		return 0, err
	}
	return acc.Balance, nil
}

// Open creates an account controlled by the given authority. It fails if
// the account already holds funds or a custom authority.
func (l *Ledger) Open(addr, authority hearth.Address) error {
	acc, err := l.getAccount(addr)
	if err != nil {
		return err
	}
	if !acc.IsEmpty() {
		return ErrAccountExists
	}
	acc.Authority = authority
	return l.setAccount(addr, acc)
}

// Mint credits freshly issued tokens to an account. Issuance is a
// deployment-time concern (funding the rewards reserve, seeding test
// depositors); the staking program itself never mints.
func (l *Ledger) Mint(to hearth.Address, amount uint64) error {
	if err := l.supply.Add(amount); err != nil {
		return ErrSupplyOverflow
	}
	acc, err := l.getAccount(to)
	if err != nil {
		return err
	}
	sum, overflow := math.SafeAdd(acc.Balance, amount)
	if overflow {
		return ErrSupplyOverflow
	}
	acc.Balance = sum
	return l.setAccount(to, acc)
}

// TotalSupply returns the total minted amount of the designated token.
func (l *Ledger) TotalSupply() (uint64, error) {
	return l.supply.Get()
}

// Transfer debits `from` and credits `to`, failing if the balance is short
// or the presented authorization does not match the account's authority.
func (l *Ledger) Transfer(from, to hearth.Address, amount uint64, auth Authorization) error {
	fromAcc, err := l.getAccount(from)
	if err != nil {
		return err
	}

	authority := fromAcc.Authority
	if authority.IsZero() {
		authority = from
	}
	if auth == nil || auth.SignerAddress() != authority {
		return ErrUnauthorized
	}

	if fromAcc.Balance < amount {
		return ErrInsufficientFunds
	}
	if from == to {
		// net zero; authorization and balance were still enforced
		return nil
	}
	fromAcc.Balance -= amount

	toAcc, err := l.getAccount(to)
	if err != nil {
		return err
	}
	sum, overflow := math.SafeAdd(toAcc.Balance, amount)
	if overflow {
		return ErrSupplyOverflow
	}
	toAcc.Balance = sum

	if err := l.setAccount(from, fromAcc); err != nil {
		return err
	}
	if err := l.setAccount(to, toAcc); err != nil {
		return err
	}

	logger.Debug("transferred", "from", from, "to", to, "amount", amount)
	return nil
}
