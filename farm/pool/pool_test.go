// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pool

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Degis-Insurance/Degis-Core-sub000/farm/reverts"
	"github.com/Degis-Insurance/Degis-Core-sub000/fixedpoint"
	"github.com/Degis-Insurance/Degis-Core-sub000/lvldb"
	"github.com/Degis-Insurance/Degis-Core-sub000/state"
	"github.com/Degis-Insurance/Degis-Core-sub000/storage"
)

func newService(t *testing.T) *Service {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(storage.NewContext(common.Address{0xfa}, state.New(db), nil))
}

func TestAddAndGet(t *testing.T) {
	svc := newService(t)
	share := common.Address{1}

	id, err := svc.Add(share, big.NewInt(5), big.NewInt(1), common.Address{}, 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)

	p, err := svc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, share, p.Share)
	assert.True(t, p.Active)
	assert.Equal(t, uint64(100), p.LastAccrualTime)
	assert.Equal(t, 0, p.AccRewardPerShare.Sign())
	assert.False(t, p.HasPiecewise())
	assert.Equal(t, common.Address{}, p.DoubleRewardToken)

	got, err := svc.IDOf(share)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	id2, err := svc.Add(common.Address{2}, big.NewInt(0), big.NewInt(0), common.Address{9}, 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), id2)
	p2, err := svc.Get(id2)
	require.NoError(t, err)
	assert.False(t, p2.Active)
	assert.Equal(t, common.Address{9}, p2.DoubleRewardToken)

	count, err := svc.Count()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count)
}

func TestAddRejects(t *testing.T) {
	svc := newService(t)
	_, err := svc.Add(common.Address{1}, big.NewInt(5), big.NewInt(0), common.Address{}, 0)
	require.NoError(t, err)

	tests := []struct {
		name  string
		share common.Address
		basic int64
		bonus int64
	}{
		{"duplicate share", common.Address{1}, 5, 0},
		{"only bonus", common.Address{2}, 0, 1},
		{"zero share", common.Address{}, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(tt.share, big.NewInt(tt.basic), big.NewInt(tt.bonus), common.Address{}, 0)
			assert.Equal(t, reverts.InvalidConfiguration, reverts.KindOf(err))
		})
	}
}

func TestGetUnknown(t *testing.T) {
	svc := newService(t)
	for _, id := range []uint64{0, 1} {
		_, err := svc.Get(id)
		assert.ErrorIs(t, err, reverts.ErrNotFound)
		exists, err := svc.Exists(id)
		require.NoError(t, err)
		assert.False(t, exists)
	}
}

func TestUpdate(t *testing.T) {
	svc := newService(t)
	id, err := svc.Add(common.Address{1}, big.NewInt(5), big.NewInt(0), common.Address{}, 0)
	require.NoError(t, err)

	p, err := svc.Get(id)
	require.NoError(t, err)
	p.Thresholds = []*big.Int{big.NewInt(0), big.NewInt(10)}
	p.Speeds = []*big.Int{big.NewInt(1), big.NewInt(2)}
	p.Level = 1
	require.NoError(t, svc.Update(id, p))

	got, err := svc.Get(id)
	require.NoError(t, err)
	assert.True(t, got.HasPiecewise())
	assert.Equal(t, uint64(1), got.Level)
	assert.Equal(t, int64(2), got.Speeds[1].Int64())
}

func TestAccrue(t *testing.T) {
	p := newPool(common.Address{1}, big.NewInt(5), big.NewInt(1), common.Address{}, 10)

	a, err := Accrue(p, 10, big.NewInt(100))
	require.NoError(t, err)
	assert.Nil(t, a, "no-op when now is not after the last accrual")

	a, err = Accrue(p, 15, big.NewInt(0))
	require.NoError(t, err)
	assert.Equal(t, uint64(5), a.Elapsed)
	assert.Equal(t, 0, a.Minted().Sign())
	assert.Equal(t, 0, a.AccRewardPerShare.Sign())

	// no bonus weight: bonus accumulator and minted bonus stay zero
	a, err = Accrue(p, 15, big.NewInt(100))
	require.NoError(t, err)
	assert.Equal(t, int64(25), a.BasicReward.Int64())
	assert.Equal(t, 0, a.BonusReward.Sign())
	assert.Equal(t, int64(25e10), a.AccRewardPerShare.Int64())
	assert.Equal(t, 0, a.AccBonusPerShare.Sign())

	p.TotalBonusWeight = big.NewInt(50)
	a, err = Accrue(p, 15, big.NewInt(100))
	require.NoError(t, err)
	assert.Equal(t, int64(5), a.BonusReward.Int64())
	assert.Equal(t, int64(1e11), a.AccBonusPerShare.Int64())
	assert.Equal(t, int64(30), a.Minted().Int64())

	// accrue never touches the pool
	assert.Equal(t, uint64(10), p.LastAccrualTime)
	p.Apply(a, 15)
	assert.Equal(t, uint64(15), p.LastAccrualTime)
	assert.Equal(t, int64(25e10), p.AccRewardPerShare.Int64())
}

func TestEntitlement(t *testing.T) {
	accR := new(big.Int).Mul(big.NewInt(25), fixedpoint.Scale)
	accR.Div(accR, big.NewInt(100))
	e, err := Entitlement(accR, big.NewInt(1e11), big.NewInt(100), big.NewInt(50))
	require.NoError(t, err)
	assert.Equal(t, int64(30), e.Int64())
}

func TestCopy(t *testing.T) {
	p := newPool(common.Address{1}, big.NewInt(5), big.NewInt(1), common.Address{}, 10)
	p.Thresholds = []*big.Int{big.NewInt(0)}
	cpy := p.Copy()
	cpy.BasicRate.SetInt64(9)
	cpy.Thresholds[0].SetInt64(3)
	assert.Equal(t, int64(5), p.BasicRate.Int64())
	assert.Equal(t, int64(0), p.Thresholds[0].Int64())
}
