// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pools_test

import (
	"bytes"
	"encoding/json"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Degis-Insurance/Degis-Core-sub000/api/pools"
	"github.com/Degis-Insurance/Degis-Core-sub000/api/utils"
	"github.com/Degis-Insurance/Degis-Core-sub000/genesis"
	"github.com/Degis-Insurance/Degis-Core-sub000/test/testledger"
)

var (
	ts     *httptest.Server
	tl     *testledger.Ledger
	staker = genesis.DevAccounts()[1].Address
)

func TestPools(t *testing.T) {
	initPoolsServer(t)
	defer ts.Close()

	t.Run("getPools", testGetPools)
	t.Run("getPoolWithBadID", testGetPoolWithBadID)
	t.Run("getUnknownPool", testGetUnknownPool)
	t.Run("stakeAndHarvest", testStakeAndHarvest)
	t.Run("withdrawTooMuch", testWithdrawTooMuch)
	t.Run("stakeWithBadBody", testStakeWithBadBody)
	t.Run("stakeZero", testStakeZero)
}

func initPoolsServer(t *testing.T) {
	var err error
	tl, err = testledger.NewDefault()
	require.NoError(t, err)
	t.Cleanup(tl.Close)

	router := mux.NewRouter()
	pools.New(tl.Ledger).Mount(router, "/pools")
	ts = httptest.NewServer(router)
}

func testGetPools(t *testing.T) {
	res, status := httpGet(t, ts.URL+"/pools")
	require.Equal(t, http.StatusOK, status, string(res))

	var list []*pools.Pool
	require.NoError(t, json.Unmarshal(res, &list))
	require.Len(t, list, 1)
	assert.Equal(t, uint64(1), list[0].ID)
	assert.Equal(t, genesis.DevShareToken, list[0].Share)
	assert.Equal(t, testledger.Ether(1), (*big.Int)(list[0].BasicRate))
	assert.True(t, list[0].Active)
	assert.Nil(t, list[0].DoubleRewardToken)

	res, status = httpGet(t, ts.URL+"/pools/1")
	require.Equal(t, http.StatusOK, status, string(res))
	var p pools.Pool
	require.NoError(t, json.Unmarshal(res, &p))
	assert.Equal(t, *list[0], p)
}

func testGetPoolWithBadID(t *testing.T) {
	for _, id := range []string{"0", "abc", "-1"} {
		_, status := httpGet(t, ts.URL+"/pools/"+id)
		assert.Equal(t, http.StatusBadRequest, status, id)
	}
}

func testGetUnknownPool(t *testing.T) {
	res, status := httpGet(t, ts.URL+"/pools/7")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "pool not exists\n", string(res))
}

func testStakeAndHarvest(t *testing.T) {
	res, status := httpPost(t, ts.URL+"/pools/1/stake", &utils.AmountRequest{
		Caller: staker,
		Amount: utils.Amount(testledger.Ether(100)),
	})
	require.Equal(t, http.StatusOK, status, string(res))
	var moved pools.Moved
	require.NoError(t, json.Unmarshal(res, &moved))
	assert.Equal(t, testledger.Ether(100), (*big.Int)(moved.Amount))

	res, status = httpGet(t, ts.URL+"/pools/1/users/"+staker.Hex())
	require.Equal(t, http.StatusOK, status, string(res))
	var pos pools.Position
	require.NoError(t, json.Unmarshal(res, &pos))
	assert.Equal(t, testledger.Ether(100), (*big.Int)(pos.Balance))
	assert.Equal(t, 0, (*big.Int)(pos.BonusWeight).Sign())

	tl.Clock().Advance(10)

	// the only staker has no bonus weight, so only the basic rate is paid
	res, status = httpGet(t, ts.URL+"/pools/1/users/"+staker.Hex()+"/pending")
	require.Equal(t, http.StatusOK, status, string(res))
	var pending pools.Pending
	require.NoError(t, json.Unmarshal(res, &pending))
	assert.Equal(t, testledger.Ether(10), (*big.Int)(pending.Amount))
	assert.Equal(t, testledger.LaunchTime+10, pending.Time)

	recipient := common.HexToAddress("0x1234")
	res, status = httpPost(t, ts.URL+"/pools/1/harvest", &pools.HarvestRequest{
		Caller:    staker,
		Recipient: &recipient,
	})
	require.Equal(t, http.StatusOK, status, string(res))
	var receipt utils.Receipt
	require.NoError(t, json.Unmarshal(res, &receipt))
	assert.Equal(t, testledger.Ether(10), (*big.Int)(receipt.Paid))

	bal, err := tl.BalanceOf(genesis.DevRewardToken, recipient)
	require.NoError(t, err)
	assert.Equal(t, testledger.Ether(10), bal)
}

func testWithdrawTooMuch(t *testing.T) {
	res, status := httpPost(t, ts.URL+"/pools/1/withdraw", &utils.AmountRequest{
		Caller: staker,
		Amount: utils.Amount(testledger.Ether(1000)),
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "not enough staking balance\n", string(res))
}

func testStakeWithBadBody(t *testing.T) {
	_, status := httpPost(t, ts.URL+"/pools/1/stake", utils.M{"caller": staker, "unknown": 1})
	assert.Equal(t, http.StatusBadRequest, status)

	res, status := httpPost(t, ts.URL+"/pools/1/stake", utils.M{"caller": staker})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "amount: required\n", string(res))
}

func testStakeZero(t *testing.T) {
	_, status := httpPost(t, ts.URL+"/pools/1/stake", &utils.AmountRequest{
		Caller: staker,
		Amount: utils.Amount(new(big.Int)),
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func httpGet(t *testing.T, url string) ([]byte, int) {
	res, err := http.Get(url) //#nosec G107
	require.NoError(t, err)
	defer res.Body.Close()
	r, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return r, res.StatusCode
}

func httpPost(t *testing.T, url string, obj any) ([]byte, int) {
	data, err := json.Marshal(obj)
	require.NoError(t, err)
	res, err := http.Post(url, "application/x-www-form-urlencoded", bytes.NewReader(data)) //#nosec G107
	require.NoError(t, err)
	defer res.Body.Close()
	r, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return r, res.StatusCode
}
