// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package health

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Degis-Insurance/Degis-Core-sub000/events"
	"github.com/Degis-Insurance/Degis-Core-sub000/logdb"
	"github.com/Degis-Insurance/Degis-Core-sub000/test/testledger"
)

type fakeLedger struct {
	initialized bool
	feed        *events.Feed
}

func (f *fakeLedger) Initialized() (bool, error) { return f.initialized, nil }
func (f *fakeLedger) Feed() *events.Feed          { return f.feed }
func (f *fakeLedger) LogDB() *logdb.LogDB         { return nil }

func TestHealth(t *testing.T) {
	tl, err := testledger.NewDefault()
	require.NoError(t, err)
	defer tl.Close()

	ts := newServer(tl)
	defer ts.Close()

	var status Status
	respBody, statusCode := httpGet(t, ts.URL+"/health")
	require.NoError(t, json.Unmarshal(respBody, &status))
	assert.Equal(t, http.StatusOK, statusCode)
	assert.True(t, status.Healthy)
	assert.True(t, status.Initialized)
	assert.Equal(t, tl.Feed().Last(), status.LastFact)
	require.NotNil(t, status.PersistedFact)
	assert.Equal(t, status.LastFact, *status.PersistedFact)

	_, statusCode = httpGet(t, ts.URL+"/health?maxLag=abc")
	assert.Equal(t, http.StatusBadRequest, statusCode)
}

func TestHealthUninitialized(t *testing.T) {
	ts := newServer(&fakeLedger{feed: events.NewFeed(16, 1)})
	defer ts.Close()

	var status Status
	respBody, statusCode := httpGet(t, ts.URL+"/health")
	require.NoError(t, json.Unmarshal(respBody, &status))
	assert.Equal(t, http.StatusServiceUnavailable, statusCode)
	assert.False(t, status.Healthy)
	assert.False(t, status.Initialized)
	assert.Nil(t, status.PersistedFact)
}

func newServer(ledger Ledger) *httptest.Server {
	router := mux.NewRouter()
	NewAPI(New(ledger)).Mount(router, "/health")
	return httptest.NewServer(router)
}

func httpGet(t *testing.T, url string) ([]byte, int) {
	res, err := http.Get(url) //#nosec G107
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	r, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}
	return r, res.StatusCode
}
