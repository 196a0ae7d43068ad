// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package double_test

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

	"github.com/Degis-Insurance/Degis-Core-sub000/api/double"
	"github.com/Degis-Insurance/Degis-Core-sub000/api/utils"
	"github.com/Degis-Insurance/Degis-Core-sub000/genesis"
	"github.com/Degis-Insurance/Degis-Core-sub000/ledger"
	"github.com/Degis-Insurance/Degis-Core-sub000/test/testledger"
)

var (
	ts          *httptest.Server
	tl          *testledger.Ledger
	doubleToken = common.BytesToAddress([]byte("DD"))
	staker      = genesis.DevAccounts()[1].Address
)

func TestDouble(t *testing.T) {
	initDoubleServer(t)
	defer ts.Close()

	t.Run("getTokens", testGetTokens)
	t.Run("getUnknownToken", testGetUnknownToken)
	t.Run("claimBeforeClaimable", testClaimBeforeClaimable)
	t.Run("setSpeedUnauthorized", testSetSpeedUnauthorized)
	t.Run("claim", testClaim)
}

func initDoubleServer(t *testing.T) {
	cfg := genesis.NewDevnet(testledger.LaunchTime)
	cfg.Pools[0].DoubleReward = &doubleToken
	cfg.DoubleRewards = []genesis.DoubleReward{{
		Token: doubleToken,
		Share: genesis.DevShareToken,
		Speed: genesis.NewHexOrDecimal256(testledger.Ether(1)),
	}}
	cfg.Accounts = append(cfg.Accounts, genesis.Account{
		Token:   doubleToken,
		Address: ledger.DoubleRewardAddress,
		Balance: genesis.NewHexOrDecimal256(testledger.Ether(100)),
	})

	var err error
	tl, err = testledger.New(cfg)
	require.NoError(t, err)
	t.Cleanup(tl.Close)

	router := mux.NewRouter()
	double.New(tl.Ledger).Mount(router, "/double")
	ts = httptest.NewServer(router)
}

func testGetTokens(t *testing.T) {
	res, status := httpDo(t, http.MethodGet, ts.URL+"/double?share="+genesis.DevShareToken.Hex(), nil)
	require.Equal(t, http.StatusOK, status, string(res))
	var tokens []common.Address
	require.NoError(t, json.Unmarshal(res, &tokens))
	assert.Equal(t, []common.Address{doubleToken}, tokens)

	_, status = httpDo(t, http.MethodGet, ts.URL+"/double?share=bad", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	res, status = httpDo(t, http.MethodGet, ts.URL+"/double/"+doubleToken.Hex(), nil)
	require.Equal(t, http.StatusOK, status, string(res))
	var tok double.Token
	require.NoError(t, json.Unmarshal(res, &tok))
	assert.Equal(t, genesis.DevShareToken, tok.Share)
	assert.Equal(t, testledger.Ether(1), (*big.Int)(tok.Speed))
	assert.False(t, tok.Claimable)
	assert.Nil(t, tok.Real)
}

func testGetUnknownToken(t *testing.T) {
	res, status := httpDo(t, http.MethodGet, ts.URL+"/double/"+common.HexToAddress("0x99").Hex(), nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "reward token not exists\n", string(res))
}

func testClaimBeforeClaimable(t *testing.T) {
	_, status := httpDo(t, http.MethodPost, ts.URL+"/double/"+doubleToken.Hex()+"/claim", &utils.CallerRequest{Caller: staker})
	assert.Equal(t, http.StatusConflict, status)
}

func testSetSpeedUnauthorized(t *testing.T) {
	_, status := httpDo(t, http.MethodPut, ts.URL+"/double/"+doubleToken.Hex()+"/speed", &double.SetSpeedRequest{
		Caller: staker,
		Share:  genesis.DevShareToken,
		Speed:  utils.Amount(testledger.Ether(5)),
	})
	assert.Equal(t, http.StatusForbidden, status)
}

func testClaim(t *testing.T) {
	_, err := tl.Stake(staker, 1, testledger.Ether(10))
	require.NoError(t, err)
	tl.Clock().Advance(10)

	bal := getBalance(t)
	assert.Equal(t, testledger.Ether(10), (*big.Int)(bal.Pending))
	assert.Equal(t, 0, (*big.Int)(bal.Swept).Sign())

	res, status := httpDo(t, http.MethodPut, ts.URL+"/double/"+doubleToken.Hex()+"/claimable", &double.SetClaimableRequest{
		Caller: tl.Admin().Address,
		Real:   doubleToken,
	})
	require.Equal(t, http.StatusOK, status, string(res))
	var tok double.Token
	require.NoError(t, json.Unmarshal(res, &tok))
	assert.True(t, tok.Claimable)

	// withdrawing sweeps the accrued reward
	_, err = tl.Withdraw(staker, 1, testledger.Ether(10))
	require.NoError(t, err)
	bal = getBalance(t)
	assert.Equal(t, 0, (*big.Int)(bal.Pending).Sign())
	assert.Equal(t, testledger.Ether(10), (*big.Int)(bal.Swept))

	res, status = httpDo(t, http.MethodPost, ts.URL+"/double/"+doubleToken.Hex()+"/claim", &utils.CallerRequest{Caller: staker})
	require.Equal(t, http.StatusOK, status, string(res))
	var receipt utils.Receipt
	require.NoError(t, json.Unmarshal(res, &receipt))
	assert.Equal(t, testledger.Ether(10), (*big.Int)(receipt.Paid))

	held, err := tl.BalanceOf(doubleToken, ledger.DoubleRewardAddress)
	require.NoError(t, err)
	assert.Equal(t, testledger.Ether(90), held)
}

func getBalance(t *testing.T) *double.Balance {
	res, status := httpDo(t, http.MethodGet, ts.URL+"/double/"+doubleToken.Hex()+"/users/"+staker.Hex(), nil)
	require.Equal(t, http.StatusOK, status, string(res))
	var bal double.Balance
	require.NoError(t, json.Unmarshal(res, &bal))
	return &bal
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
