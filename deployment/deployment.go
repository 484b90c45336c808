// Copyright (c) 2025 The Hearthchain developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package deployment wires a staking system from a YAML descriptor: the
// ledger and program accounts, the deployment authorities and the initial
// rewards reserve funding.
package deployment

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/hearthchain/staking/clock"
	"github.com/hearthchain/staking/hearth"
	"github.com/hearthchain/staking/host"
	"github.com/hearthchain/staking/ledger"
	"github.com/hearthchain/staking/log"
	"github.com/hearthchain/staking/program"
	"github.com/hearthchain/staking/state"
)

var logger = log.WithContext("pkg", "deployment")

// SetLogger swaps the package logger. Meant for tests and embedders.
func SetLogger(l log.Logger) {
	logger = l
}

// Config is the on-disk deployment descriptor. Addresses are 20-byte hex
// strings, with or without the 0x prefix.
type Config struct {
	Program   string `yaml:"program"`
	Ledger    string `yaml:"ledger"`
	Token     string `yaml:"token"`
	Admin     string `yaml:"admin"`
	Validator string `yaml:"validator"`
	Reserve   string `yaml:"rewardsReserve"`

	// ReserveFunding tokens are minted into the reserve at build time, so
	// a fresh deployment can pay rewards from day one.
	ReserveFunding uint64 `yaml:"reserveFunding"`
}

// Load reads and parses a descriptor file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read deployment descriptor")
	}
	return Parse(data)
}

// Parse parses a descriptor. Unknown fields are rejected, so a typo in a
// key fails loudly instead of silently zeroing a setting.
func Parse(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "failed to parse deployment descriptor")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type addresses struct {
	program   hearth.Address
	ledger    hearth.Address
	token     hearth.Address
	admin     hearth.Address
	validator hearth.Address
	reserve   hearth.Address
}

func (c *Config) addresses() (*addresses, error) {
	var (
		out  addresses
		errs []error
	)
	parse := func(field, s string, dst *hearth.Address) {
		addr, err := hearth.ParseAddress(s)
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "invalid %s address %q", field, s))
			return
		}
		*dst = *addr
	}
	parse("program", c.Program, &out.program)
	parse("ledger", c.Ledger, &out.ledger)
	parse("token", c.Token, &out.token)
	parse("admin", c.Admin, &out.admin)
	parse("validator", c.Validator, &out.validator)
	parse("rewardsReserve", c.Reserve, &out.reserve)
	if len(errs) > 0 {
		return nil, errs[0]
	}
	return &out, nil
}

func (c *Config) validate() error {
	addrs, err := c.addresses()
	if err != nil {
		return err
	}
	for field, addr := range map[string]hearth.Address{
		"program":        addrs.program,
		"ledger":         addrs.ledger,
		"token":          addrs.token,
		"admin":          addrs.admin,
		"rewardsReserve": addrs.reserve,
	} {
		if addr.IsZero() {
			return errors.Errorf("deployment field %s must not be the zero address", field)
		}
	}
	if addrs.program == addrs.ledger {
		return errors.New("program and ledger accounts must differ")
	}
	if addrs.reserve == addrs.admin {
		return errors.New("rewards reserve must not be the admin account")
	}
	return nil
}

// System is a fully wired deployment.
type System struct {
	State    *state.State
	Ledger   *ledger.Ledger
	Program  *program.Program
	Executor *host.Executor
}

// clockDriftTolerance bounds how far a wall-clock deployment may drift
// from NTP before unlock-time comparisons become suspect.
const clockDriftTolerance = 2 * time.Second

// Build constructs and initializes a system from the descriptor: it wires
// the ledger and program onto the state, runs initialize through the host
// and mints the reserve funding.
func Build(cfg *Config, st *state.State, clk clock.Clock) (*System, error) {
	addrs, err := cfg.addresses()
	if err != nil {
		return nil, err
	}

	// deterministic clocks (tests, replay) skip the drift check
	if _, ok := clk.(clock.System); ok {
		go clock.CheckOffset(clockDriftTolerance)
	}

	lgr := ledger.New(addrs.ledger, st, addrs.token)
	prog := program.New(addrs.program, st, lgr, clk)
	exec := host.NewExecutor(st)

	if err := exec.Execute(prog.InitializeOp(addrs.admin, addrs.validator, addrs.reserve)); err != nil {
		return nil, errors.Wrap(err, "failed to initialize staking program")
	}
	if cfg.ReserveFunding > 0 {
		if err := lgr.Mint(addrs.reserve, cfg.ReserveFunding); err != nil {
			return nil, errors.Wrap(err, "failed to fund rewards reserve")
		}
	}

	logger.Info("deployment built",
		"program", addrs.program,
		"token", addrs.token,
		"reserve", addrs.reserve,
		"reserveFunding", cfg.ReserveFunding)

	return &System{
		State:    st,
		Ledger:   lgr,
		Program:  prog,
		Executor: exec,
	}, nil
}
