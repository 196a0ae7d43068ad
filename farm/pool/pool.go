// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pool

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Pool is one registered share asset and its reward accumulators.
type Pool struct {
	Share             common.Address // the share asset, bound to the pool forever
	BasicRate         *big.Int       // basic reward per second, kept while stopped
	BonusRate         *big.Int       // bonus reward per second, zero unless BasicRate > 0
	LastAccrualTime   uint64         // timestamp of the last catch-up
	AccRewardPerShare *big.Int       // scaled by fixedpoint.Scale
	AccBonusPerShare  *big.Int       // scaled by fixedpoint.Scale
	TotalBonusWeight  *big.Int       // sum of all positions' bonus weight
	Active            bool           // farming on/off
	DoubleRewardToken common.Address // zero if no double reward is attached

	Thresholds []*big.Int // piecewise supply thresholds, empty when unused
	Speeds     []*big.Int // basic rate per threshold bracket
	Level      uint64     // current piecewise bracket
}

func newPool(share common.Address, basic, bonus *big.Int, doubleToken common.Address, lastAccrual uint64) *Pool {
	return &Pool{
		Share:             share,
		BasicRate:         new(big.Int).Set(basic),
		BonusRate:         new(big.Int).Set(bonus),
		LastAccrualTime:   lastAccrual,
		AccRewardPerShare: new(big.Int),
		AccBonusPerShare:  new(big.Int),
		TotalBonusWeight:  new(big.Int),
		Active:            basic.Sign() > 0,
		DoubleRewardToken: doubleToken,
	}
}

// HasPiecewise reports whether a rate curve is configured.
func (p *Pool) HasPiecewise() bool {
	return len(p.Thresholds) > 0
}

// normalize replaces nil amounts left by decoding with zero values.
func (p *Pool) normalize() *Pool {
	for _, v := range []**big.Int{&p.BasicRate, &p.BonusRate, &p.AccRewardPerShare, &p.AccBonusPerShare, &p.TotalBonusWeight} {
		if *v == nil {
			*v = new(big.Int)
		}
	}
	return p
}

// Copy returns a deep copy, safe to hand out of the engine.
func (p *Pool) Copy() *Pool {
	cpy := *p
	cpy.BasicRate = new(big.Int).Set(p.BasicRate)
	cpy.BonusRate = new(big.Int).Set(p.BonusRate)
	cpy.AccRewardPerShare = new(big.Int).Set(p.AccRewardPerShare)
	cpy.AccBonusPerShare = new(big.Int).Set(p.AccBonusPerShare)
	cpy.TotalBonusWeight = new(big.Int).Set(p.TotalBonusWeight)
	cpy.Thresholds = copyInts(p.Thresholds)
	cpy.Speeds = copyInts(p.Speeds)
	return &cpy
}

func copyInts(src []*big.Int) []*big.Int {
	if src == nil {
		return nil
	}
	dst := make([]*big.Int, len(src))
	for i, v := range src {
		dst[i] = new(big.Int).Set(v)
	}
	return dst
}
