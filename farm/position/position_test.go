// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package position

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Degis-Insurance/Degis-Core-sub000/farm/pool"
	"github.com/Degis-Insurance/Degis-Core-sub000/lvldb"
	"github.com/Degis-Insurance/Degis-Core-sub000/state"
	"github.com/Degis-Insurance/Degis-Core-sub000/storage"
)

func TestService(t *testing.T) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	defer db.Close()
	svc := New(storage.NewContext(common.Address{0xfa}, state.New(db), nil))

	user := common.Address{1}
	pos, err := svc.Get(1, user)
	require.NoError(t, err)
	assert.True(t, pos.IsEmpty())

	pos.Balance = big.NewInt(100)
	pos.ExtraClaimable = big.NewInt(3)
	require.NoError(t, svc.Set(1, user, pos))

	got, err := svc.Get(1, user)
	require.NoError(t, err)
	assert.Equal(t, int64(100), got.Balance.Int64())
	assert.Equal(t, int64(3), got.ExtraClaimable.Int64())
	assert.Equal(t, 0, got.RewardDebt.Sign())

	other, err := svc.Get(2, user)
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())
}

func TestPending(t *testing.T) {
	pos := newPosition()
	pos.Balance = big.NewInt(100)
	pos.BonusWeight = big.NewInt(10)
	pos.ExtraClaimable = big.NewInt(7)

	accR := big.NewInt(25e10) // 0.25 per share
	accB := big.NewInt(2e12)  // 2 per weight

	pending, err := pos.Pending(accR, accB)
	require.NoError(t, err)
	assert.Equal(t, int64(25+20+7), pending.Int64())

	earned, err := pos.Earned(accR, accB)
	require.NoError(t, err)
	assert.Equal(t, int64(45), earned.Int64())

	pl := &pool.Pool{AccRewardPerShare: accR, AccBonusPerShare: accB}
	require.NoError(t, pos.SyncDebt(pl))
	assert.Equal(t, int64(45), pos.RewardDebt.Int64())

	pending, err = pos.Pending(accR, accB)
	require.NoError(t, err)
	assert.Equal(t, int64(7), pending.Int64())

	// a debt above the entitlement never yields a negative pending
	pos.ExtraClaimable = new(big.Int)
	pos.RewardDebt = big.NewInt(1000)
	pending, err = pos.Pending(accR, accB)
	require.NoError(t, err)
	assert.Equal(t, 0, pending.Sign())
}

func TestCopy(t *testing.T) {
	pos := newPosition()
	pos.Balance = big.NewInt(1)
	cpy := pos.Copy()
	cpy.Balance.SetInt64(2)
	assert.Equal(t, int64(1), pos.Balance.Int64())
}
