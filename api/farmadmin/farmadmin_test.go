// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package farmadmin_test

import (
	"bytes"
	"encoding/json"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Degis-Insurance/Degis-Core-sub000/api/farmadmin"
	"github.com/Degis-Insurance/Degis-Core-sub000/api/pools"
	"github.com/Degis-Insurance/Degis-Core-sub000/api/utils"
	"github.com/Degis-Insurance/Degis-Core-sub000/genesis"
	"github.com/Degis-Insurance/Degis-Core-sub000/test/testledger"
)

var (
	ts       *httptest.Server
	tl       *testledger.Ledger
	stranger = genesis.DevAccounts()[2].Address
	newShare = common.BytesToAddress([]byte("LP-NEW"))
)

func TestFarmAdmin(t *testing.T) {
	initFarmAdminServer(t)
	defer ts.Close()

	t.Run("getStatus", testGetStatus)
	t.Run("registerPool", testRegisterPool)
	t.Run("setRate", testSetRate)
	t.Run("setPiecewise", testSetPiecewise)
	t.Run("setStartAfterPools", testSetStartAfterPools)
	t.Run("pause", testPause)
}

func initFarmAdminServer(t *testing.T) {
	var err error
	tl, err = testledger.NewDefault()
	require.NoError(t, err)
	t.Cleanup(tl.Close)

	router := mux.NewRouter()
	farmadmin.New(tl.Ledger).Mount(router, "/admin")
	pools.New(tl.Ledger).Mount(router, "/pools")
	ts = httptest.NewServer(router)
}

func admin() common.Address {
	return tl.Admin().Address
}

func testGetStatus(t *testing.T) {
	res, status := httpDo(t, http.MethodGet, ts.URL+"/admin", nil)
	require.Equal(t, http.StatusOK, status, string(res))

	var s farmadmin.Status
	require.NoError(t, json.Unmarshal(res, &s))
	assert.Equal(t, admin(), s.Admin)
	assert.Equal(t, testledger.LaunchTime, s.StartTimestamp)
	assert.False(t, s.Paused)
	assert.Equal(t, 1, s.PoolCount)
	require.NotNil(t, s.BonusProvider)
}

func testRegisterPool(t *testing.T) {
	req := &farmadmin.RegisterPoolRequest{
		Caller: stranger,
		Share:  newShare,
		Basic:  utils.Amount(testledger.Ether(2)),
	}
	_, status := httpDo(t, http.MethodPost, ts.URL+"/admin/pools", req)
	assert.Equal(t, http.StatusForbidden, status)

	req.Caller = admin()
	res, status := httpDo(t, http.MethodPost, ts.URL+"/admin/pools", req)
	require.Equal(t, http.StatusOK, status, string(res))
	var reg farmadmin.RegisterPoolResponse
	require.NoError(t, json.Unmarshal(res, &reg))
	assert.Equal(t, uint64(2), reg.ID)

	// a share asset is bound to one pool only
	_, status = httpDo(t, http.MethodPost, ts.URL+"/admin/pools", req)
	assert.Equal(t, http.StatusBadRequest, status)

	p := getPool(t, 2)
	assert.Equal(t, newShare, p.Share)
	assert.Equal(t, testledger.Ether(2), (*big.Int)(p.BasicRate))
	assert.Equal(t, 0, (*big.Int)(p.BonusRate).Sign())
	assert.True(t, p.Active)
}

func testSetRate(t *testing.T) {
	res, status := httpDo(t, http.MethodPut, ts.URL+"/admin/pools/2/rate", &farmadmin.SetRateRequest{
		Caller: admin(),
		Basic:  utils.Amount(new(big.Int)),
	})
	require.Equal(t, http.StatusOK, status, string(res))
	assert.False(t, getPool(t, 2).Active)

	_, status = httpDo(t, http.MethodPut, ts.URL+"/admin/pools/9/rate", &farmadmin.SetRateRequest{
		Caller: admin(),
		Basic:  utils.Amount(testledger.Ether(1)),
	})
	assert.Equal(t, http.StatusNotFound, status)

	_, status = httpDo(t, http.MethodPut, ts.URL+"/admin/pools/2/rate", utils.M{"caller": admin()})
	assert.Equal(t, http.StatusBadRequest, status)
}

func testSetPiecewise(t *testing.T) {
	req := &farmadmin.SetPiecewiseRequest{
		Caller:     admin(),
		Thresholds: []*math.HexOrDecimal256{utils.Amount(big.NewInt(0)), utils.Amount(testledger.Ether(100))},
		Speeds:     []*math.HexOrDecimal256{utils.Amount(testledger.Ether(1))},
	}
	res, status := httpDo(t, http.MethodPut, ts.URL+"/admin/pools/1/piecewise", req)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "thresholds and speeds length mismatch\n", string(res))

	req.Speeds = append(req.Speeds, utils.Amount(testledger.Ether(3)))
	res, status = httpDo(t, http.MethodPut, ts.URL+"/admin/pools/1/piecewise", req)
	require.Equal(t, http.StatusOK, status, string(res))

	p := getPool(t, 1)
	require.Len(t, p.Thresholds, 2)
	assert.Equal(t, testledger.Ether(100), (*big.Int)(p.Thresholds[1]))
	assert.Equal(t, testledger.Ether(3), (*big.Int)(p.Speeds[1]))
}

func testSetStartAfterPools(t *testing.T) {
	res, status := httpDo(t, http.MethodPut, ts.URL+"/admin/start", &farmadmin.SetStartRequest{
		Caller:    admin(),
		Timestamp: testledger.LaunchTime + 100,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "can not set start timestamp after adding a pool\n", string(res))
}

func testPause(t *testing.T) {
	_, status := httpDo(t, http.MethodPost, ts.URL+"/admin/pause", &utils.CallerRequest{Caller: stranger})
	assert.Equal(t, http.StatusForbidden, status)

	res, status := httpDo(t, http.MethodPost, ts.URL+"/admin/pause", &utils.CallerRequest{Caller: admin()})
	require.Equal(t, http.StatusOK, status, string(res))
	var s farmadmin.Status
	require.NoError(t, json.Unmarshal(res, &s))
	assert.True(t, s.Paused)

	_, status = httpDo(t, http.MethodPost, ts.URL+"/admin/pause", &utils.CallerRequest{Caller: admin()})
	assert.Equal(t, http.StatusConflict, status)

	_, status = httpDo(t, http.MethodPost, ts.URL+"/pools/1/stake", &utils.AmountRequest{
		Caller: stranger,
		Amount: utils.Amount(testledger.Ether(1)),
	})
	assert.Equal(t, http.StatusConflict, status)

	res, status = httpDo(t, http.MethodPost, ts.URL+"/admin/unpause", &utils.CallerRequest{Caller: admin()})
	require.Equal(t, http.StatusOK, status, string(res))

	_, status = httpDo(t, http.MethodPost, ts.URL+"/admin/unpause", &utils.CallerRequest{Caller: admin()})
	assert.Equal(t, http.StatusBadRequest, status)
}

func getPool(t *testing.T, id int) *pools.Pool {
	res, status := httpDo(t, http.MethodGet, ts.URL+"/pools/"+big.NewInt(int64(id)).String(), nil)
	require.Equal(t, http.StatusOK, status, string(res))
	var p pools.Pool
	require.NoError(t, json.Unmarshal(res, &p))
	return &p
}

func httpDo(t *testing.T, method, url string, obj any) ([]byte, int) {
	var body io.Reader
	if obj != nil {
		data, err := json.Marshal(obj)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	r, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return r, res.StatusCode
}
