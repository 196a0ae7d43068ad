// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package farm

import "github.com/Degis-Insurance/Degis-Core-sub000/metrics"

var (
	metricCatchUpElapsed = metrics.LazyLoadHistogram("farm_catchup_elapsed_seconds", []int64{1, 10, 60, 600, 3600, 86400})
	metricRateChanges    = metrics.LazyLoadCounterVec("farm_piecewise_level_changes", []string{"pool"})
	metricCappedPayouts  = metrics.LazyLoadCounter("farm_capped_payouts")
)
