// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/Degis-Insurance/Degis-Core-sub000/farm/pool"
	"github.com/Degis-Insurance/Degis-Core-sub000/farm/position"
)

// FarmStatus is the farm wide configuration.
type FarmStatus struct {
	Admin          common.Address
	BonusProvider  common.Address
	StartTimestamp uint64
	Paused         bool
	PoolCount      int
}

func (l *Ledger) RegisterPool(caller, share common.Address, basic, bonus *big.Int, doubleToken common.Address, withUpdate bool) (uint64, error) {
	return execute(l, "registerPool", func(now uint64) (uint64, error) {
		id, err := l.farm.RegisterPool(caller, share, basic, bonus, doubleToken, withUpdate, now)
		if err == nil {
			l.poolsChanged = true
		}
		return id, err
	})
}

func (l *Ledger) SetRate(caller common.Address, id uint64, basic, bonus *big.Int, withUpdate bool) error {
	return l.run("setRate", func(now uint64) error {
		l.poolsChanged = true
		return l.farm.SetRate(caller, id, basic, bonus, withUpdate, now)
	})
}

func (l *Ledger) SetPiecewise(caller common.Address, id uint64, thresholds, speeds []*big.Int) error {
	return l.run("setPiecewise", func(uint64) error {
		return l.farm.SetPiecewise(caller, id, thresholds, speeds)
	})
}

func (l *Ledger) SetStartTimestamp(caller common.Address, ts uint64) error {
	return l.run("setStartTimestamp", func(uint64) error {
		return l.farm.SetStartTimestamp(caller, ts)
	})
}

func (l *Ledger) SetFarmAdmin(caller, next common.Address) error {
	return l.run("setFarmAdmin", func(uint64) error {
		return l.farm.SetAdmin(caller, next)
	})
}

func (l *Ledger) PauseFarm(caller common.Address) error {
	return l.run("pauseFarm", func(uint64) error {
		return l.farm.Pause(caller)
	})
}

func (l *Ledger) UnpauseFarm(caller common.Address) error {
	return l.run("unpauseFarm", func(uint64) error {
		return l.farm.Unpause(caller)
	})
}

// CatchUp brings one pool up to the ledger clock.
func (l *Ledger) CatchUp(id uint64) error {
	return l.run("catchUp", func(now uint64) error {
		l.poolsChanged = true
		return l.farm.CatchUp(id, now)
	})
}

// MassUpdate brings every active pool up to the ledger clock.
func (l *Ledger) MassUpdate() error {
	return l.run("massUpdate", func(now uint64) error {
		l.poolsChanged = true
		return l.farm.MassUpdate(now)
	})
}

// Stake deposits amount of the pool's share asset and returns the amount actually received.
func (l *Ledger) Stake(user common.Address, id uint64, amount *big.Int) (*big.Int, error) {
	return execute(l, "stake", func(now uint64) (*big.Int, error) {
		l.poolsChanged = true
		return l.farm.Stake(user, id, amount, now)
	})
}

// Withdraw returns amount of staked share asset and the amount actually sent.
func (l *Ledger) Withdraw(user common.Address, id uint64, amount *big.Int) (*big.Int, error) {
	return execute(l, "withdraw", func(now uint64) (*big.Int, error) {
		l.poolsChanged = true
		return l.farm.Withdraw(user, id, amount, now)
	})
}

// Harvest pays the user's pending reward to recipient and returns the amount paid.
func (l *Ledger) Harvest(user common.Address, id uint64, recipient common.Address) (*big.Int, error) {
	return execute(l, "harvest", func(now uint64) (*big.Int, error) {
		return l.farm.Harvest(user, id, recipient, now)
	})
}

// PendingQuote is a pending reward and the time it was priced at.
type PendingQuote struct {
	Amount *big.Int
	Time   uint64
}

// QuotePending prices the user's pending reward at the ledger clock.
func (l *Ledger) QuotePending(id uint64, user common.Address) (*PendingQuote, error) {
	return view(l, func(now uint64) (*PendingQuote, error) {
		amount, err := l.farm.PendingReward(id, user, now)
		if err != nil {
			return nil, err
		}
		return &PendingQuote{Amount: amount, Time: now}, nil
	})
}

func (l *Ledger) PendingReward(id uint64, user common.Address) (*big.Int, error) {
	quote, err := l.QuotePending(id, user)
	if err != nil {
		return nil, err
	}
	return quote.Amount, nil
}

func (l *Ledger) Pool(id uint64) (*pool.Pool, error) {
	return view(l, func(uint64) (*pool.Pool, error) {
		return l.farm.PoolState(id)
	})
}

// Pools returns all pools, the pool with id i at index i-1.
func (l *Ledger) Pools() ([]*pool.Pool, error) {
	return view(l, func(uint64) ([]*pool.Pool, error) {
		return l.farm.Pools()
	})
}

func (l *Ledger) Position(id uint64, user common.Address) (*position.Position, error) {
	return view(l, func(uint64) (*position.Position, error) {
		return l.farm.UserPosition(id, user)
	})
}

// PoolID returns the id of the pool bound to share, zero if none.
func (l *Ledger) PoolID(share common.Address) (uint64, error) {
	return view(l, func(uint64) (uint64, error) {
		return l.farm.PoolID(share)
	})
}

func (l *Ledger) FarmStatus() (*FarmStatus, error) {
	return view(l, func(uint64) (*FarmStatus, error) {
		var (
			s   FarmStatus
			err error
		)
		if s.Admin, err = l.farm.Admin(); err != nil {
			return nil, err
		}
		if s.BonusProvider, err = l.farm.BonusProvider(); err != nil {
			return nil, err
		}
		if s.StartTimestamp, err = l.farm.StartTimestamp(); err != nil {
			return nil, err
		}
		if s.Paused, err = l.farm.IsPaused(); err != nil {
			return nil, err
		}
		pools, err := l.farm.Pools()
		if err != nil {
			return nil, err
		}
		s.PoolCount = len(pools)
		return &s, nil
	})
}
