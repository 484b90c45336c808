// Copyright (c) 2025 The Hearthchain developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopDefault(t *testing.T) {
	// meters on the default implementation are callable and do nothing
	Counter("noop_counter").Add(1)
	CounterVec("noop_vec", []string{"a"}).AddWithLabel(1, map[string]string{"a": "b"})
	Gauge("noop_gauge").Set(42)
	assert.Nil(t, HTTPHandler())
}

func TestLazyLoad(t *testing.T) {
	calls := 0
	load := LazyLoad(func() int {
		calls++
		return 7
	})
	assert.Equal(t, 7, load())
	assert.Equal(t, 7, load())
	assert.Equal(t, 1, calls)
}

func TestPrometheusMetrics(t *testing.T) {
	InitializePrometheusMetrics()

	Counter("ops_count").Add(3)
	Counter("ops_count").Add(2)
	CounterVec("ops_by_kind", []string{"kind"}).AddWithLabel(4, map[string]string{"kind": "stake"})
	Gauge("staked_total").Set(1000)
	Gauge("staked_total").Add(-250)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	HTTPHandler().ServeHTTP(rec, req)
	require.Equal(t, 200, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "staking_metrics_ops_count 5"))
	assert.True(t, strings.Contains(body, `staking_metrics_ops_by_kind{kind="stake"} 4`))
	assert.True(t, strings.Contains(body, "staking_metrics_staked_total 750"))
}
