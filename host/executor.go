// Copyright (c) 2025 The Hearthchain developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package host

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/hearthchain/staking/log"
	"github.com/hearthchain/staking/metrics"
	"github.com/hearthchain/staking/program/reverts"
	"github.com/hearthchain/staking/state"
)

var logger = log.WithContext("pkg", "host")

// SetLogger swaps the package logger. Meant for tests and embedders.
func SetLogger(l log.Logger) {
	logger = l
}

var metricExecuted = metrics.LazyLoad(func() metrics.CountVecMeter {
	return metrics.CounterVec("host_ops_executed_total", []string{"op", "result"})
})

// ErrNoRun reports an operation submitted without a body.
var ErrNoRun = errors.New("operation has no run body")

// Executor admits operations against a shared state one at a time. Each
// operation runs inside its own checkpoint: a revert error rolls every
// write back and is returned to the submitter; any other error is a host
// fault and also rolls back.
type Executor struct {
	mu sync.Mutex
	st *state.State
}

func NewExecutor(st *state.State) *Executor {
	return &Executor{st: st}
}

// Execute runs the operation to completion. Safe for concurrent use;
// concurrent submissions are serialized in arrival order.
func (e *Executor) Execute(op Operation) error {
	if op.Run == nil {
		return ErrNoRun
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	cp := e.st.NewCheckpoint()
	if err := op.Run(); err != nil {
		e.st.RevertTo(cp)
		if reverts.IsRevertErr(err) {
			metricExecuted().AddWithLabel(1, map[string]string{"op": op.Name, "result": "reverted"})
			return err
		}
		metricExecuted().AddWithLabel(1, map[string]string{"op": op.Name, "result": "failed"})
		logger.Error("host fault", "op", op.Name, "err", err)
		return errors.Wrapf(err, "operation %s", op.Name)
	}
	e.st.Commit(cp)
	metricExecuted().AddWithLabel(1, map[string]string{"op": op.Name, "result": "ok"})
	return nil
}

// ExecuteAll runs the operations in order, stopping at the first host
// fault. Revert errors are collected per operation and do not stop the
// batch.
func (e *Executor) ExecuteAll(ops []Operation) []error {
	errs := make([]error, len(ops))
	for i := range ops {
		errs[i] = e.Execute(ops[i])
		if errs[i] != nil && !reverts.IsRevertErr(errs[i]) && !errors.Is(errs[i], ErrNoRun) {
			for j := i + 1; j < len(ops); j++ {
				errs[j] = errs[i]
			}
			break
		}
	}
	return errs
}
