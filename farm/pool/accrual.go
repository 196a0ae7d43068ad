// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pool

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/Degis-Insurance/Degis-Core-sub000/fixedpoint"
)

// Accrual is the result of bringing a pool's accumulators up to a timestamp.
type Accrual struct {
	Elapsed           uint64
	BasicReward       *big.Int // to be minted for the interval
	BonusReward       *big.Int // to be minted for the interval, zero while no bonus weight exists
	AccRewardPerShare *big.Int
	AccBonusPerShare  *big.Int
}

// Minted returns the total reward created by the interval.
func (a *Accrual) Minted() *big.Int {
	return new(big.Int).Add(a.BasicReward, a.BonusReward)
}

// Accrue computes the accumulators at now without modifying the pool.
// It returns nil when now is not after the last accrual.
// With an empty supply only time advances and nothing is accrued.
func Accrue(p *Pool, now uint64, supply *big.Int) (*Accrual, error) {
	if now <= p.LastAccrualTime {
		return nil, nil
	}
	a := &Accrual{
		Elapsed:           now - p.LastAccrualTime,
		BasicReward:       new(big.Int),
		BonusReward:       new(big.Int),
		AccRewardPerShare: new(big.Int).Set(p.AccRewardPerShare),
		AccBonusPerShare:  new(big.Int).Set(p.AccBonusPerShare),
	}
	if supply.Sign() == 0 {
		return a, nil
	}

	elapsed := new(big.Int).SetUint64(a.Elapsed)
	basic, err := fixedpoint.Mul(elapsed, p.BasicRate)
	if err != nil {
		return nil, errors.Wrap(err, "basic reward")
	}
	inc, err := fixedpoint.Scaled(basic, supply)
	if err != nil {
		return nil, errors.Wrap(err, "reward per share")
	}
	if a.AccRewardPerShare, err = fixedpoint.Add(a.AccRewardPerShare, inc); err != nil {
		return nil, errors.Wrap(err, "reward per share")
	}
	a.BasicReward = basic

	// an interval without bonus weight is not distributed
	if p.TotalBonusWeight.Sign() > 0 && p.BonusRate.Sign() > 0 {
		bonus, err := fixedpoint.Mul(elapsed, p.BonusRate)
		if err != nil {
			return nil, errors.Wrap(err, "bonus reward")
		}
		inc, err := fixedpoint.Scaled(bonus, p.TotalBonusWeight)
		if err != nil {
			return nil, errors.Wrap(err, "bonus per share")
		}
		if a.AccBonusPerShare, err = fixedpoint.Add(a.AccBonusPerShare, inc); err != nil {
			return nil, errors.Wrap(err, "bonus per share")
		}
		a.BonusReward = bonus
	}
	return a, nil
}

// Apply moves the pool to the state described by the accrual.
func (p *Pool) Apply(a *Accrual, now uint64) {
	p.AccRewardPerShare = a.AccRewardPerShare
	p.AccBonusPerShare = a.AccBonusPerShare
	p.LastAccrualTime = now
}

// Entitlement returns floor((balance*accR + weight*accB) / Scale), the reward a position
// of the given size has earned since the accumulators started.
func Entitlement(accR, accB, balance, weight *big.Int) (*big.Int, error) {
	r, err := fixedpoint.Mul(balance, accR)
	if err != nil {
		return nil, errors.Wrap(err, "entitlement")
	}
	b, err := fixedpoint.Mul(weight, accB)
	if err != nil {
		return nil, errors.Wrap(err, "entitlement")
	}
	sum, err := fixedpoint.Add(r, b)
	if err != nil {
		return nil, errors.Wrap(err, "entitlement")
	}
	return sum.Div(sum, fixedpoint.Scale), nil
}
