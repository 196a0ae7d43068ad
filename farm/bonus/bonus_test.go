// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package bonus

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Degis-Insurance/Degis-Core-sub000/farm/pool"
	"github.com/Degis-Insurance/Degis-Core-sub000/farm/position"
)

func TestWeight(t *testing.T) {
	tests := []struct {
		balance, gov, want int64
	}{
		{100, 0, 0},
		{0, 100, 0},
		{100, 100, 100},
		{100, 400, 200},
		{3, 3, 3},
		{2, 5, 3}, // sqrt(10) floors to 3
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Weight(big.NewInt(tt.balance), big.NewInt(tt.gov)).Int64())
	}
}

func TestRecompute(t *testing.T) {
	p := &pool.Pool{TotalBonusWeight: big.NewInt(0)}
	a := &position.Position{Balance: big.NewInt(100), BonusWeight: new(big.Int)}
	b := &position.Position{Balance: big.NewInt(400), BonusWeight: new(big.Int)}

	oldW, newW, err := Recompute(p, a, big.NewInt(100))
	require.NoError(t, err)
	assert.Equal(t, int64(0), oldW.Int64())
	assert.Equal(t, int64(100), newW.Int64())

	_, _, err = Recompute(p, b, big.NewInt(100))
	require.NoError(t, err)
	assert.Equal(t, int64(300), p.TotalBonusWeight.Int64())

	// governance balance drops to zero
	oldW, newW, err = Recompute(p, a, big.NewInt(0))
	require.NoError(t, err)
	assert.Equal(t, int64(100), oldW.Int64())
	assert.Equal(t, int64(0), newW.Int64())
	assert.Equal(t, int64(200), p.TotalBonusWeight.Int64())
	assert.Zero(t, p.TotalBonusWeight.Cmp(new(big.Int).Add(a.BonusWeight, b.BonusWeight)))
}

func TestRecomputeUnderflow(t *testing.T) {
	p := &pool.Pool{TotalBonusWeight: big.NewInt(5)}
	pos := &position.Position{Balance: big.NewInt(0), BonusWeight: big.NewInt(10)}
	_, _, err := Recompute(p, pos, big.NewInt(1))
	assert.Error(t, err)
	assert.Equal(t, int64(10), pos.BonusWeight.Int64(), "failed recompute leaves the position untouched")
}
