// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"strconv"

	"github.com/Degis-Insurance/Degis-Core-sub000/farm/reverts"
	"github.com/Degis-Insurance/Degis-Core-sub000/metrics"
)

var (
	metricOpCount    = metrics.LazyLoadCounterVec("ledger_operations_count", []string{"op", "result"})
	metricOpDuration = metrics.LazyLoadHistogramVec("ledger_operation_duration_ms", []string{"op"}, metrics.Bucket10s)
	metricSlotLoads  = metrics.LazyLoadHistogram("ledger_slot_loads", []int64{1, 5, 10, 50, 100, 500, 1000})
	metricSlotStores = metrics.LazyLoadHistogram("ledger_slot_stores", []int64{1, 5, 10, 50, 100, 500, 1000})
	metricFactCount  = metrics.LazyLoadCounter("ledger_facts_count")
	metricPoolCount  = metrics.LazyLoadGauge("ledger_pool_count")
	metricActivePool = metrics.LazyLoadGauge("ledger_active_pool_count")
	metricBasicRate  = metrics.LazyLoadGaugeVec("ledger_pool_basic_rate", []string{"pool"})
)

func resultOf(err error) string {
	if err == nil {
		return "ok"
	}
	return reverts.KindOf(err).String()
}

func poolLabel(id uint64) map[string]string {
	return map[string]string{"pool": strconv.FormatUint(id, 10)}
}
