// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package bonus maintains bonus weights, the boosted share used by the bonus reward stream.
package bonus

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/Degis-Insurance/Degis-Core-sub000/farm/pool"
	"github.com/Degis-Insurance/Degis-Core-sub000/farm/position"
	"github.com/Degis-Insurance/Degis-Core-sub000/fixedpoint"
)

// Weight returns floor(sqrt(balance * govBalance)).
func Weight(balance, govBalance *big.Int) *big.Int {
	return fixedpoint.SqrtMul(balance, govBalance)
}

// Recompute derives the position's weight from its balance and the governance stake balance,
// and moves the pool total by the difference. It returns the old and new weight.
func Recompute(p *pool.Pool, pos *position.Position, govBalance *big.Int) (*big.Int, *big.Int, error) {
	oldWeight := pos.BonusWeight
	newWeight := Weight(pos.Balance, govBalance)

	total, err := fixedpoint.Add(p.TotalBonusWeight, newWeight)
	if err != nil {
		return nil, nil, errors.Wrap(err, "total bonus weight")
	}
	if total, err = fixedpoint.Sub(total, oldWeight); err != nil {
		return nil, nil, errors.Wrap(err, "total bonus weight")
	}

	p.TotalBonusWeight = total
	pos.BonusWeight = newWeight
	return oldWeight, newWeight, nil
}
