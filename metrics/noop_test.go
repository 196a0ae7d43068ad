// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import (
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoopMetrics(t *testing.T) {
	server := httptest.NewServer(HTTPHandler())

	t.Cleanup(func() {
		server.Close()
	})

	// 2 ways of accessing it - useful to avoid lookups
	stakeCount := Counter("stake_count")
	Counter("harvest_count")

	stakeCount.Add(1)
	randCount2 := rand.Intn(100) + 1 // nolint:gosec
	for i := 0; i < randCount2; i++ {
		Counter("harvest_count").Add(1)
	}

	elapsed := Histogram("catchup_elapsed", nil)
	opDuration := HistogramVec("op_duration", []string{"result"}, nil)
	for i := 0; i < rand.Intn(100)+1; i++ { // nolint:gosec
		elapsed.Observe(int64(i))
		opDuration.ObserveWithLabels(int64(i), map[string]string{"thisIsNonsense": "butDoesntBreak"})
	}

	opResult := CounterVec("op_result_count", []string{"result"})
	poolRate := GaugeVec("pool_rate", []string{"result"})
	for i := 0; i < rand.Intn(100)+1; i++ { // nolint:gosec
		opResult.AddWithLabel(int64(i), map[string]string{"thisIsNonsense": "butDoesntBreak"})
		poolRate.AddWithLabel(int64(i), map[string]string{"thisIsNonsense": "butDoesntBreak"})
	}

	// Make a request to the metrics endpoint
	resp, err := http.Get(server.URL + "/metrics")
	if err != nil {
		t.Errorf("Failed to make GET request: %v", err)
	}

	defer resp.Body.Close()
	require.Equal(t, resp.StatusCode, 404)
}
