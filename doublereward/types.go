// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package doublereward

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/Degis-Insurance/Degis-Core-sub000/fixedpoint"
)

// TokenInfo is the accrual state of one reward token attached to a share asset.
type TokenInfo struct {
	Share           common.Address
	Speed           *big.Int // reward per second for the whole share supply
	LastAccrualTime uint64
	AccPerShare     *big.Int // scaled by fixedpoint.Scale
	Claimable       bool
	Real            common.Address // token paid out on claim
}

func (t *TokenInfo) normalize() *TokenInfo {
	if t.Speed == nil {
		t.Speed = new(big.Int)
	}
	if t.AccPerShare == nil {
		t.AccPerShare = new(big.Int)
	}
	return t
}

func (t *TokenInfo) Copy() *TokenInfo {
	cpy := *t
	cpy.Speed = new(big.Int).Set(t.Speed)
	cpy.AccPerShare = new(big.Int).Set(t.AccPerShare)
	return &cpy
}

// accrued returns the accumulator at now without touching t.
// An empty supply or a zero speed adds nothing.
func (t *TokenInfo) accrued(supply *big.Int, now uint64) (*big.Int, error) {
	if now <= t.LastAccrualTime || supply.Sign() == 0 || t.Speed.Sign() == 0 {
		return t.AccPerShare, nil
	}
	reward, err := fixedpoint.Mul(new(big.Int).SetUint64(now-t.LastAccrualTime), t.Speed)
	if err != nil {
		return nil, errors.Wrap(err, "double reward")
	}
	inc, err := fixedpoint.Scaled(reward, supply)
	if err != nil {
		return nil, errors.Wrap(err, "double reward per share")
	}
	return fixedpoint.Add(t.AccPerShare, inc)
}

func (t *TokenInfo) catchUp(supply *big.Int, now uint64) error {
	if now <= t.LastAccrualTime {
		return nil
	}
	acc, err := t.accrued(supply, now)
	if err != nil {
		return err
	}
	t.AccPerShare = acc
	t.LastAccrualTime = now
	return nil
}

// UserInfo is a user's accrual state for one reward token.
type UserInfo struct {
	RewardDebt    *big.Int
	PendingReward *big.Int // swept, waiting for claim
}

func (u *UserInfo) normalize() *UserInfo {
	if u.RewardDebt == nil {
		u.RewardDebt = new(big.Int)
	}
	if u.PendingReward == nil {
		u.PendingReward = new(big.Int)
	}
	return u
}
