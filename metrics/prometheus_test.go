// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// #nosec G404
package metrics

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	dto "github.com/prometheus/client_model/go"
)

func gather(t *testing.T) map[string]*dto.MetricFamily {
	metricFamilies, err := prometheus.Gatherers{prometheus.DefaultGatherer}.Gather()
	require.NoError(t, err)

	families := make(map[string]*dto.MetricFamily)
	for _, mf := range metricFamilies {
		families[mf.GetName()] = mf
	}
	return families
}

func TestPromMetrics(t *testing.T) {
	InitializePrometheusMetrics()

	// 2 ways of accessing it - useful to avoid lookups
	stakes := Counter("stakes_total")
	Counter("harvests_total")
	opResults := CounterVec("op_results", []string{"ok"})

	elapsed := Histogram("catchup_elapsed_seconds", nil)
	HistogramVec("op_duration_ms", []string{"ok"}, nil)

	activePools := Gauge("active_pools")
	poolRates := GaugeVec("pool_basic_rate", []string{"pool"})

	stakes.Add(1)
	harvests := rand.N(100) + 1
	for range harvests {
		Counter("harvests_total").Add(1)
	}

	elapsedTotal := 0
	for i := range rand.N(100) + 2 {
		elapsed.Observe(int64(i))
		HistogramVec("op_duration_ms", []string{"ok"}, nil).
			ObserveWithLabels(int64(i), map[string]string{"ok": strconv.FormatBool(i%2 == 0)})
		elapsedTotal += i
	}

	resultTotal := 0
	for i := range rand.N(100) + 2 {
		opResults.AddWithLabel(int64(i), map[string]string{"ok": strconv.FormatBool(i%2 == 0)})
		resultTotal += i
	}

	gaugeTotal := 0
	for i := range rand.N(100) + 2 {
		poolRates.AddWithLabel(int64(i), map[string]string{"pool": strconv.Itoa(i % 2)})
		activePools.Add(int64(i))
		gaugeTotal += i
	}

	families := gather(t)

	require.Equal(t, float64(1), families["farm_metrics_stakes_total"].Metric[0].GetCounter().GetValue())
	require.Equal(t, float64(harvests), families["farm_metrics_harvests_total"].Metric[0].GetCounter().GetValue())
	require.Equal(t, float64(elapsedTotal), families["farm_metrics_catchup_elapsed_seconds"].Metric[0].GetHistogram().GetSampleSum())

	durations := families["farm_metrics_op_duration_ms"]
	require.Equal(t, float64(elapsedTotal),
		durations.Metric[0].GetHistogram().GetSampleSum()+durations.Metric[1].GetHistogram().GetSampleSum())

	results := families["farm_metrics_op_results"]
	require.Equal(t, float64(resultTotal),
		results.Metric[0].GetCounter().GetValue()+results.Metric[1].GetCounter().GetValue())

	require.Equal(t, float64(gaugeTotal), families["farm_metrics_active_pools"].Metric[0].GetGauge().GetValue())
	rates := families["farm_metrics_pool_basic_rate"]
	require.Equal(t, float64(gaugeTotal),
		rates.Metric[0].GetGauge().GetValue()+rates.Metric[1].GetGauge().GetValue())

	poolRates.SetWithLabel(7, map[string]string{"pool": "0"})
	rates = gather(t)["farm_metrics_pool_basic_rate"]
	for _, m := range rates.Metric {
		if m.GetLabel()[0].GetValue() == "0" {
			require.Equal(t, float64(7), m.GetGauge().GetValue())
		}
	}
}

func TestLazyLoading(t *testing.T) {
	metrics = defaultNoopMetrics() // make sure it starts in the default state of noopMeter

	for _, a := range []any{
		Gauge("noopGauge"),
		GaugeVec("noopGauge", nil),
		Counter("noopCounter"),
		CounterVec("noopCounter", nil),
		Histogram("noopHist", nil),
		HistogramVec("noopHist", nil, nil),
	} {
		require.IsType(t, &noopMeters{}, a)
	}

	lazyGauge := LazyLoadGauge("lazyGauge")
	lazyGaugeVec := LazyLoadGaugeVec("lazyGaugeVec", nil)
	lazyCounter := LazyLoadCounter("lazyCounter")
	lazyCounterVec := LazyLoadCounterVec("lazyCounterVec", nil)
	lazyHistogram := LazyLoadHistogram("lazyHistogram", nil)
	lazyHistogramVec := LazyLoadHistogramVec("lazyHistogramVec", nil, nil)

	// after initialization, newly created metrics become of the prometheus type
	InitializePrometheusMetrics()

	require.IsType(t, &promGaugeMeter{}, lazyGauge())
	require.IsType(t, &promGaugeVecMeter{}, lazyGaugeVec())
	require.IsType(t, &promCountMeter{}, lazyCounter())
	require.IsType(t, &promCountVecMeter{}, lazyCounterVec())
	require.IsType(t, &promHistogramMeter{}, lazyHistogram())
	require.IsType(t, &promHistogramVecMeter{}, lazyHistogramVec())
}
