// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package farm

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/Degis-Insurance/Degis-Core-sub000/farm/pool"
	"github.com/Degis-Insurance/Degis-Core-sub000/farm/position"
)

// PendingReward previews the reward user could harvest from pool id at now, without mutating anything.
func (f *Farm) PendingReward(id uint64, user common.Address, now uint64) (*big.Int, error) {
	p, pos, err := f.getPosition(id, user)
	if err != nil {
		return nil, err
	}
	start, err := f.startTimestamp.Get()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get start timestamp")
	}
	if p.LastAccrualTime == 0 || now < p.LastAccrualTime || now < start {
		return new(big.Int), nil
	}
	supply, err := f.shares.BalanceOf(p.Share)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get share supply")
	}
	if supply.Sign() == 0 {
		return new(big.Int), nil
	}

	accR, accB := p.AccRewardPerShare, p.AccBonusPerShare
	if p.Active {
		accrual, err := pool.Accrue(p, now, supply)
		if err != nil {
			return nil, err
		}
		if accrual != nil {
			accR, accB = accrual.AccRewardPerShare, accrual.AccBonusPerShare
		}
	}
	return pos.Pending(accR, accB)
}

// PoolState returns a copy of the stored pool.
func (f *Farm) PoolState(id uint64) (*pool.Pool, error) {
	p, err := f.pools.Get(id)
	if err != nil {
		return nil, err
	}
	return p.Copy(), nil
}

// UserPosition returns the stored position, a zero position if user never staked.
func (f *Farm) UserPosition(id uint64, user common.Address) (*position.Position, error) {
	_, pos, err := f.getPosition(id, user)
	if err != nil {
		return nil, err
	}
	return pos, nil
}

// Pools returns all pools, the pool with id i at index i-1.
func (f *Farm) Pools() ([]*pool.Pool, error) {
	count, err := f.pools.Count()
	if err != nil {
		return nil, err
	}
	list := make([]*pool.Pool, 0, count)
	for id := uint64(1); id <= count; id++ {
		p, err := f.pools.Get(id)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, nil
}

// PoolID returns the id of the pool bound to share, zero if none.
func (f *Farm) PoolID(share common.Address) (uint64, error) {
	return f.pools.IDOf(share)
}

func (f *Farm) Admin() (common.Address, error) {
	return f.admin.Get()
}

func (f *Farm) BonusProvider() (common.Address, error) {
	return f.bonusProvider.Get()
}

func (f *Farm) StartTimestamp() (uint64, error) {
	return f.startTimestamp.Get()
}

func (f *Farm) IsPaused() (bool, error) {
	return f.paused.Get()
}

// ShareSupply returns the amount of share held for all stakers of share.
func (f *Farm) ShareSupply(share common.Address) (*big.Int, error) {
	return f.shares.BalanceOf(share)
}

// StakedBalance returns user's staked balance in the pool bound to share, zero if there is none.
func (f *Farm) StakedBalance(share, user common.Address) (*big.Int, error) {
	id, err := f.pools.IDOf(share)
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return new(big.Int), nil
	}
	pos, err := f.positions.Get(id, user)
	if err != nil {
		return nil, err
	}
	return pos.Balance, nil
}
