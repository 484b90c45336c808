// Copyright (c) 2025 The Hearthchain developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package program implements the custodial staking lifecycle: initialize,
// stake, claim and unstake. All token movement goes through the ledger;
// custodial debits are signed by the program's derived capability, never by
// a key. Every operation is atomic: it either completes fully or leaves the
// state exactly as it found it.
package program

import (
	gerrors "errors"

	"github.com/ethereum/go-ethereum/common/math"

	"github.com/hearthchain/staking/clock"
	"github.com/hearthchain/staking/hearth"
	"github.com/hearthchain/staking/ledger"
	"github.com/hearthchain/staking/log"
	"github.com/hearthchain/staking/metrics"
	"github.com/hearthchain/staking/program/authority"
	"github.com/hearthchain/staking/program/rates"
	"github.com/hearthchain/staking/program/rewards"
	"github.com/hearthchain/staking/program/reverts"
	"github.com/hearthchain/staking/program/stake"
	"github.com/hearthchain/staking/slot"
	"github.com/hearthchain/staking/state"
)

var logger = log.WithContext("pkg", "program")

// SetLogger swaps the package logger. Meant for tests and embedders.
func SetLogger(l log.Logger) {
	logger = l
}

var (
	metricOps = metrics.LazyLoad(func() metrics.CountVecMeter {
		return metrics.CounterVec("lifecycle_ops_total", []string{"op", "result"})
	})
	metricStaked = metrics.LazyLoad(func() metrics.GaugeMeter {
		return metrics.Gauge("total_staked_amount")
	})
	metricCount = metrics.LazyLoad(func() metrics.GaugeMeter {
		return metrics.Gauge("active_staker_count")
	})
)

// TokenLedger is the slice of the ledger the program moves funds through.
type TokenLedger interface {
	Token() hearth.Address
	Open(addr, authority hearth.Address) error
	Balance(addr hearth.Address) (uint64, error)
	Transfer(from, to hearth.Address, amount uint64, auth ledger.Authorization) error
}

// Program is the staking lifecycle controller for one (program, token)
// deployment.
type Program struct {
	sctx   *slot.Context
	ledger TokenLedger
	clock  clock.Clock
	token  hearth.Address
	vault  hearth.Address

	authority *authority.Service
	stakes    *stake.Service
}

// New creates the controller bound to the program account address.
func New(addr hearth.Address, st *state.State, lgr TokenLedger, clk clock.Clock) *Program {
	sctx := slot.NewContext(addr, st)
	token := lgr.Token()
	return &Program{
		sctx:      sctx,
		ledger:    lgr,
		clock:     clk,
		token:     token,
		vault:     authority.VaultAddress(token),
		authority: authority.New(sctx),
		stakes:    stake.New(sctx, token),
	}
}

// Address returns the program account address.
func (p *Program) Address() hearth.Address {
	return p.sctx.Address()
}

// Token returns the staked token identifier.
func (p *Program) Token() hearth.Address {
	return p.token
}

// Vault returns the custodial principal account.
func (p *Program) Vault() hearth.Address {
	return p.vault
}

// run executes an operation against a fresh checkpoint. Any error reverts
// every write made inside fn; success commits them.
func (p *Program) run(op string, fn func(now uint64) error) error {
	now := p.clock.Now()
	cp := p.sctx.State().NewCheckpoint()
	if err := fn(now); err != nil {
		p.sctx.State().RevertTo(cp)
		result := "reverted"
		if !reverts.IsRevertErr(err) {
			result = "failed"
		}
		metricOps().AddWithLabel(1, map[string]string{"op": op, "result": result})
		logger.Debug("operation rolled back", "op", op, "err", err)
		return err
	}
	p.sctx.State().Commit(cp)
	metricOps().AddWithLabel(1, map[string]string{"op": op, "result": "ok"})
	return nil
}

// mustInitialized loads the capability, failing when initialize never ran.
func (p *Program) mustInitialized() (authority.Capability, error) {
	ok, err := p.authority.Initialized()
	if err != nil {
		return authority.Capability{}, err
	}
	if !ok {
		return authority.Capability{}, ErrNotInitialized
	}
	return p.authority.Capability()
}

// Initialize sets up the deployment: records admin, validator and rewards
// reserve, derives the signing capability and opens the custodial vault and
// the reserve under it. It can run exactly once.
func (p *Program) Initialize(admin, validator, reserve hearth.Address) error {
	return p.run("initialize", func(now uint64) error {
		ok, err := p.authority.Initialized()
		if err != nil {
			return err
		}
		if ok {
			return ErrAlreadyInitialized
		}

		cap, err := p.authority.Initialize(admin, validator, p.token, reserve)
		if err != nil {
			return err
		}
		if err := p.ledger.Open(p.vault, cap.SignerAddress()); err != nil {
			return err
		}
		// the reserve may have been opened and funded beforehand
		if err := p.ledger.Open(reserve, cap.SignerAddress()); err != nil &&
			!gerrors.Is(err, ledger.ErrAccountExists) {
			return err
		}

		logger.Info("initialized",
			"token", p.token,
			"admin", admin,
			"vault", p.vault,
			"reserve", reserve,
			"nonce", cap.Nonce())
		return nil
	})
}

// Stake locks amount tokens from the depositor's source account for
// lockDays, creating the depositor's record with the tier rate frozen in.
// One active record per depositor; a second stake is rejected, not merged.
func (p *Program) Stake(owner, source hearth.Address, amount uint64, lockDays uint32) error {
	return p.run("stake", func(now uint64) error {
		cap, err := p.mustInitialized()
		if err != nil {
			return err
		}
		if amount == 0 {
			return ErrInvalidAmount
		}

		has, err := p.stakes.Has(owner)
		if err != nil {
			return err
		}
		if has {
			return ErrStakeAlreadyExists
		}

		if err := p.transfer(source, p.vault, amount, ledger.SignedBy(owner)); err != nil {
			return err
		}

		rec := &stake.Record{
			Owner:           owner,
			Authority:       p.sctx.Address(),
			Source:          source,
			Deposit:         amount,
			StartTime:       now,
			UnlockTime:      now + uint64(lockDays)*hearth.SecondsPerDay,
			RateBps:         rates.Resolve(lockDays),
			LastClaimedTime: now,
			Active:          true,
			Nonce:           cap.Nonce(),
		}
		if err := p.stakes.Set(owner, rec); err != nil {
			return err
		}
		if err := p.addTotals(amount); err != nil {
			return err
		}

		logger.Info("staked",
			"owner", owner,
			"amount", amount,
			"lockDays", lockDays,
			"rateBps", rec.RateBps,
			"unlockTime", rec.UnlockTime)
		return nil
	})
}

// Claim pays out the interest accrued since the record's last accrual
// checkpoint and advances the checkpoint to now. The principal stays
// locked. Returns the amount paid.
func (p *Program) Claim(owner hearth.Address) (uint64, error) {
	var paid uint64
	err := p.run("claim", func(now uint64) error {
		cap, err := p.mustInitialized()
		if err != nil {
			return err
		}
		rec, err := p.activeRecord(owner)
		if err != nil {
			return err
		}

		amount, err := rewards.AccrueSince(rec.Deposit, rec.RateBps, rec.LastClaimedTime, now)
		if err != nil {
			return ErrArithmeticOverflow
		}
		if amount == 0 {
			return ErrNoRewardsAvailable
		}

		reserve, err := p.authority.Reserve()
		if err != nil {
			return err
		}
		if err := p.transfer(reserve, rec.Source, amount, cap); err != nil {
			return err
		}

		claimed, overflow := math.SafeAdd(rec.RewardsClaimed, amount)
		if overflow {
			return ErrArithmeticOverflow
		}
		rec.RewardsClaimed = claimed
		rec.LastClaimedTime = now
		if err := p.stakes.Set(owner, rec); err != nil {
			return err
		}

		paid = amount
		logger.Info("claimed", "owner", owner, "amount", amount)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return paid, nil
}

// Unstake returns the principal plus any interest accrued since the last
// claim to the depositor's source account and removes the record. Before
// the unlock time only the admin may force an early release; the depositor
// must wait. Returns the principal and rewards paid.
func (p *Program) Unstake(caller, owner hearth.Address) (uint64, uint64, error) {
	var principal, paid uint64
	err := p.run("unstake", func(now uint64) error {
		cap, err := p.mustInitialized()
		if err != nil {
			return err
		}
		rec, err := p.activeRecord(owner)
		if err != nil {
			return err
		}

		admin, err := p.authority.Admin()
		if err != nil {
			return err
		}
		if caller != owner && caller != admin {
			return ErrUnauthorized
		}
		if !rec.Unlocked(now) && caller != admin {
			return ErrStakingPeriodNotEnded
		}

		amount, err := rewards.AccrueSince(rec.Deposit, rec.RateBps, rec.LastClaimedTime, now)
		if err != nil {
			return ErrArithmeticOverflow
		}

		if err := p.transfer(p.vault, rec.Source, rec.Deposit, cap); err != nil {
			return err
		}
		if amount > 0 {
			reserve, err := p.authority.Reserve()
			if err != nil {
				return err
			}
			if err := p.transfer(reserve, rec.Source, amount, cap); err != nil {
				return err
			}
		}

		if err := p.subTotals(rec.Deposit); err != nil {
			return err
		}
		// terminal: the record is reclaimed, a later stake starts fresh
		if err := p.stakes.Remove(owner); err != nil {
			return err
		}

		principal, paid = rec.Deposit, amount
		logger.Info("unstaked",
			"owner", owner,
			"principal", rec.Deposit,
			"rewards", amount,
			"early", !rec.Unlocked(now))
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return principal, paid, nil
}

// GetStake returns the depositor's active record.
func (p *Program) GetStake(owner hearth.Address) (*stake.Record, error) {
	return p.activeRecord(owner)
}

// PendingRewards returns the interest a claim would pay right now.
func (p *Program) PendingRewards(owner hearth.Address) (uint64, error) {
	rec, err := p.activeRecord(owner)
	if err != nil {
		return 0, err
	}
	amount, err := rewards.AccrueSince(rec.Deposit, rec.RateBps, rec.LastClaimedTime, p.clock.Now())
	if err != nil {
		return 0, ErrArithmeticOverflow
	}
	return amount, nil
}

// Totals returns the aggregate staked amount and active record count.
func (p *Program) Totals() (*authority.Totals, error) {
	return p.authority.GetTotals()
}

// Admin returns the deployment's admin authority.
func (p *Program) Admin() (hearth.Address, error) {
	return p.authority.Admin()
}

// Reserve returns the rewards reserve account.
func (p *Program) Reserve() (hearth.Address, error) {
	return p.authority.Reserve()
}

// Capability returns the derived signing authority of the deployment.
func (p *Program) Capability() (authority.Capability, error) {
	return p.mustInitialized()
}

func (p *Program) activeRecord(owner hearth.Address) (*stake.Record, error) {
	rec, err := p.stakes.Get(owner)
	if err != nil {
		return nil, err
	}
	if rec.IsEmpty() || !rec.Active {
		return nil, ErrInactiveStake
	}
	return rec, nil
}

// transfer moves funds through the ledger, translating ledger errors into
// revert kinds.
func (p *Program) transfer(from, to hearth.Address, amount uint64, auth ledger.Authorization) error {
	err := p.ledger.Transfer(from, to, amount, auth)
	switch {
	case err == nil:
		return nil
	case gerrors.Is(err, ledger.ErrInsufficientFunds):
		return ErrInsufficientFunds
	case gerrors.Is(err, ledger.ErrUnauthorized):
		return ErrUnauthorized
	default:
		return err
	}
}

func (p *Program) addTotals(amount uint64) error {
	if err := p.authority.AddStake(amount); err != nil {
		if gerrors.Is(err, slot.ErrUint64Overflow) {
			return ErrArithmeticOverflow
		}
		return err
	}
	p.publishTotals()
	return nil
}

func (p *Program) subTotals(amount uint64) error {
	if err := p.authority.RemoveStake(amount); err != nil {
		if gerrors.Is(err, slot.ErrUint64Underflow) {
			return ErrArithmeticUnderflow
		}
		return err
	}
	p.publishTotals()
	return nil
}

func (p *Program) publishTotals() {
	totals, err := p.authority.GetTotals()
	if err != nil {
		return
	}
	// gauges carry int64; aggregates beyond that range are unrepresentable
	if totals.TotalStaked>>63 == 0 {
		metricStaked().Set(int64(totals.TotalStaked))
	}
	if totals.StakerCount>>63 == 0 {
		metricCount().Set(int64(totals.StakerCount))
	}
}
