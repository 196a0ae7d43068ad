// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package subscriptions

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Degis-Insurance/Degis-Core-sub000/genesis"
	"github.com/Degis-Insurance/Degis-Core-sub000/logdb"
	"github.com/Degis-Insurance/Degis-Core-sub000/test/testledger"
)

var (
	ts     *httptest.Server
	tl     *testledger.Ledger
	subs   *Subscriptions
	staker = genesis.DevAccounts()[1].Address
)

func TestSubscriptions(t *testing.T) {
	initSubscriptionsServer(t)
	defer ts.Close()

	t.Run("backlogThenLive", testBacklogThenLive)
	t.Run("badPosition", testBadPosition)
	t.Run("backtraceLimit", testBacktraceLimit)
	t.Run("close", testClose)
}

func initSubscriptionsServer(t *testing.T) {
	var err error
	tl, err = testledger.NewDefault()
	require.NoError(t, err)
	t.Cleanup(tl.Close)

	router := mux.NewRouter()
	subs = New(tl.Feed(), []string{"*"}, 1000)
	subs.Mount(router, "/subscriptions")
	ts = httptest.NewServer(router)
}

func dial(t *testing.T, pos string) (*websocket.Conn, *http.Response, error) {
	u := url.URL{Scheme: "ws", Host: ts.URL[len("http://"):], Path: "/subscriptions/facts"}
	if pos != "" {
		u.RawQuery = "pos=" + pos
	}
	return websocket.DefaultDialer.Dial(u.String(), nil)
}

func readFact(t *testing.T, conn *websocket.Conn) *logdb.Fact {
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var fact logdb.Fact
	require.NoError(t, conn.ReadJSON(&fact))
	return &fact
}

func testBacklogThenLive(t *testing.T) {
	last := tl.Feed().Last()
	require.Greater(t, last, uint64(2))

	conn, resp, err := dial(t, strconv.FormatUint(last-2, 10))
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	assert.Equal(t, "websocket", resp.Header.Get("Upgrade"))

	assert.Equal(t, last-1, readFact(t, conn).Seq)
	assert.Equal(t, last, readFact(t, conn).Seq)

	_, err = tl.Stake(staker, 1, testledger.Ether(1))
	require.NoError(t, err)

	var names []string
	for seq := last + 1; seq <= tl.Feed().Last(); seq++ {
		fact := readFact(t, conn)
		assert.Equal(t, seq, fact.Seq)
		names = append(names, fact.Name)
		if fact.Name == "Stake" {
			assert.Equal(t, staker, fact.Account)
			assert.Equal(t, uint64(1), fact.Pool)
			assert.Equal(t, testledger.LaunchTime, fact.Time)
		}
	}
	assert.Contains(t, names, "Stake")
}

func testBadPosition(t *testing.T) {
	for _, pos := range []string{"abc", strconv.FormatUint(tl.Feed().Last()+1, 10)} {
		_, resp, err := dial(t, pos)
		assert.Equal(t, websocket.ErrBadHandshake, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, pos)
	}
}

func testBacktraceLimit(t *testing.T) {
	router := mux.NewRouter()
	New(tl.Feed(), nil, 0).Mount(router, "/subscriptions")

	rr := httptest.NewRecorder()
	pos := strconv.FormatUint(tl.Feed().Last()-1, 10)
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/subscriptions/facts?pos="+pos, nil))
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "pos: backtrace limit exceeded\n", rr.Body.String())
}

func testClose(t *testing.T) {
	conn, _, err := dial(t, "")
	require.NoError(t, err)
	defer conn.Close()

	subs.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "unexpected error: %v", err)
}
