// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package position

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/Degis-Insurance/Degis-Core-sub000/farm/pool"
	"github.com/Degis-Insurance/Degis-Core-sub000/fixedpoint"
)

// Position is a user's stake in one pool.
type Position struct {
	Balance        *big.Int // share asset deposited
	BonusWeight    *big.Int // floor(sqrt(Balance * governance stake balance))
	RewardDebt     *big.Int // entitlement already accounted for
	ExtraClaimable *big.Int // pending reward set aside by bonus weight changes
}

func newPosition() *Position {
	return &Position{
		Balance:        new(big.Int),
		BonusWeight:    new(big.Int),
		RewardDebt:     new(big.Int),
		ExtraClaimable: new(big.Int),
	}
}

func (p *Position) normalize() *Position {
	for _, v := range []**big.Int{&p.Balance, &p.BonusWeight, &p.RewardDebt, &p.ExtraClaimable} {
		if *v == nil {
			*v = new(big.Int)
		}
	}
	return p
}

func (p *Position) IsEmpty() bool {
	return p.Balance.Sign() == 0 && p.BonusWeight.Sign() == 0 &&
		p.RewardDebt.Sign() == 0 && p.ExtraClaimable.Sign() == 0
}

func (p *Position) Copy() *Position {
	return &Position{
		Balance:        new(big.Int).Set(p.Balance),
		BonusWeight:    new(big.Int).Set(p.BonusWeight),
		RewardDebt:     new(big.Int).Set(p.RewardDebt),
		ExtraClaimable: new(big.Int).Set(p.ExtraClaimable),
	}
}

// Earned returns the entitlement minus the reward debt against the given accumulators,
// without the extra claimable part. It never goes below zero.
func (p *Position) Earned(accR, accB *big.Int) (*big.Int, error) {
	e, err := pool.Entitlement(accR, accB, p.Balance, p.BonusWeight)
	if err != nil {
		return nil, err
	}
	return fixedpoint.SubFloor(e, p.RewardDebt), nil
}

// Pending returns the reward claimable against the given accumulators:
// (Balance*accR + BonusWeight*accB)/Scale + ExtraClaimable - RewardDebt, clamped at zero.
func (p *Position) Pending(accR, accB *big.Int) (*big.Int, error) {
	e, err := pool.Entitlement(accR, accB, p.Balance, p.BonusWeight)
	if err != nil {
		return nil, err
	}
	e, err = fixedpoint.Add(e, p.ExtraClaimable)
	if err != nil {
		return nil, errors.Wrap(err, "pending")
	}
	return fixedpoint.SubFloor(e, p.RewardDebt), nil
}

// SyncDebt sets the reward debt to the full entitlement against the pool's accumulators.
func (p *Position) SyncDebt(pl *pool.Pool) error {
	debt, err := pool.Entitlement(pl.AccRewardPerShare, pl.AccBonusPerShare, p.Balance, p.BonusWeight)
	if err != nil {
		return err
	}
	p.RewardDebt = debt
	return nil
}
