// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package farm

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/Degis-Insurance/Degis-Core-sub000/events"
	"github.com/Degis-Insurance/Degis-Core-sub000/farm/piecewise"
	"github.com/Degis-Insurance/Degis-Core-sub000/farm/pool"
	"github.com/Degis-Insurance/Degis-Core-sub000/farm/reverts"
)

// Init sets the admin of a fresh farm. It fails once an admin exists.
func (f *Farm) Init(admin common.Address) error {
	current, err := f.admin.Get()
	if err != nil {
		return errors.Wrap(err, "failed to get admin")
	}
	if current != (common.Address{}) {
		return reverts.New(reverts.InvalidConfiguration, "already initialized")
	}
	if admin == (common.Address{}) {
		return reverts.New(reverts.InvalidConfiguration, "zero address")
	}
	return f.admin.Upsert(admin)
}

// SetAdmin hands the admin role over to next.
func (f *Farm) SetAdmin(caller, next common.Address) error {
	if err := f.onlyAdmin(caller); err != nil {
		return err
	}
	if next == (common.Address{}) {
		return reverts.New(reverts.InvalidConfiguration, "zero address")
	}
	return f.admin.Upsert(next)
}

// SetBonusProvider designates the only caller allowed to report bonus balance changes.
func (f *Farm) SetBonusProvider(caller, provider common.Address) error {
	if err := f.onlyAdmin(caller); err != nil {
		return err
	}
	return f.bonusProvider.Upsert(provider)
}

// RegisterPool adds a pool for share and returns its id.
func (f *Farm) RegisterPool(
	caller common.Address,
	share common.Address,
	basic *big.Int,
	bonus *big.Int,
	doubleToken common.Address,
	withUpdate bool,
	now uint64,
) (uint64, error) {
	logger.Debug("registering pool", "share", share, "basic", basic, "bonus", bonus)

	if err := f.onlyAdmin(caller); err != nil {
		return 0, err
	}
	if err := f.whenNotPaused(); err != nil {
		return 0, err
	}
	if share == (common.Address{}) {
		return 0, reverts.New(reverts.InvalidConfiguration, "zero address")
	}
	if err := pool.ValidateRates(basic, bonus); err != nil {
		return 0, err
	}
	existing, err := f.pools.IDOf(share)
	if err != nil {
		return 0, err
	}
	if existing != 0 {
		return 0, reverts.New(reverts.InvalidConfiguration, "already in the pool")
	}

	if withUpdate {
		if err := f.massUpdate(now); err != nil {
			return 0, err
		}
	}

	start, err := f.startTimestamp.Get()
	if err != nil {
		return 0, errors.Wrap(err, "failed to get start timestamp")
	}
	lastAccrual := max(now, start)

	id, err := f.pools.Add(share, basic, bonus, doubleToken, lastAccrual)
	if err != nil {
		return 0, err
	}

	f.emit(events.NewPoolAdded{
		PoolID:            id,
		Share:             share,
		Basic:             new(big.Int).Set(basic),
		Bonus:             new(big.Int).Set(bonus),
		DoubleRewardToken: doubleToken,
	})
	logger.Info("pool registered", "id", id, "share", share, "active", basic.Sign() > 0)
	return id, nil
}

// SetRate changes the rates of a pool. A zero basic rate stops farming and keeps the stored
// rates. A non-zero basic rate on a stopped pool restarts it from now.
func (f *Farm) SetRate(caller common.Address, id uint64, basic, bonus *big.Int, withUpdate bool, now uint64) error {
	logger.Debug("setting rate", "pool", id, "basic", basic, "bonus", bonus)

	if err := f.onlyAdmin(caller); err != nil {
		return err
	}
	if err := f.whenNotPaused(); err != nil {
		return err
	}
	if _, err := f.pools.Get(id); err != nil {
		return err
	}
	if err := pool.ValidateRates(basic, bonus); err != nil {
		return err
	}

	if withUpdate {
		if err := f.massUpdate(now); err != nil {
			return err
		}
	} else if err := f.CatchUp(id, now); err != nil {
		return err
	}

	p, err := f.pools.Get(id)
	if err != nil {
		return err
	}

	if basic.Sign() == 0 {
		p.Active = false
		if err := f.pools.Update(id, p); err != nil {
			return err
		}
		f.emit(events.FarmingPoolStopped{PoolID: id, Timestamp: now})
		logger.Info("pool stopped", "id", id)
		return nil
	}

	if !p.Active {
		start, err := f.startTimestamp.Get()
		if err != nil {
			return errors.Wrap(err, "failed to get start timestamp")
		}
		// the stopped interval is never credited
		p.LastAccrualTime = max(now, start, p.LastAccrualTime)
		p.Active = true
		f.emit(events.FarmingPoolStarted{PoolID: id, Timestamp: now})
	}
	p.BasicRate = new(big.Int).Set(basic)
	p.BonusRate = new(big.Int).Set(bonus)
	if err := f.pools.Update(id, p); err != nil {
		return err
	}
	f.emit(events.RateChanged{PoolID: id, Basic: new(big.Int).Set(basic), Bonus: new(big.Int).Set(bonus)})
	logger.Info("rate changed", "id", id, "basic", basic, "bonus", bonus)
	return nil
}

// SetPiecewise installs the supply-driven basic rate curve of a pool. Empty slices clear it.
// The curve takes effect at the next catch-up, starting from the lowest bracket.
func (f *Farm) SetPiecewise(caller common.Address, id uint64, thresholds, speeds []*big.Int) error {
	if err := f.onlyAdmin(caller); err != nil {
		return err
	}
	p, err := f.pools.Get(id)
	if err != nil {
		return err
	}
	if err := piecewise.Validate(thresholds, speeds); err != nil {
		return err
	}

	p.Thresholds = copyInts(thresholds)
	p.Speeds = copyInts(speeds)
	p.Level = 0
	if err := f.pools.Update(id, p); err != nil {
		return err
	}
	f.emit(events.PiecewiseSet{PoolID: id, Thresholds: copyInts(thresholds), Speeds: copyInts(speeds)})
	return nil
}

// SetStartTimestamp sets the earliest accrual time. Only allowed before the first pool.
func (f *Farm) SetStartTimestamp(caller common.Address, ts uint64) error {
	if err := f.onlyAdmin(caller); err != nil {
		return err
	}
	if err := f.whenNotPaused(); err != nil {
		return err
	}
	count, err := f.pools.Count()
	if err != nil {
		return err
	}
	if count != 0 {
		return reverts.New(reverts.InvalidConfiguration, "can not set start timestamp after adding a pool")
	}
	if err := f.startTimestamp.Upsert(ts); err != nil {
		return err
	}
	f.emit(events.StartTimestampChanged{Timestamp: ts})
	return nil
}

func (f *Farm) Pause(caller common.Address) error {
	if err := f.onlyAdmin(caller); err != nil {
		return err
	}
	if err := f.whenNotPaused(); err != nil {
		return err
	}
	if err := f.paused.Upsert(true); err != nil {
		return err
	}
	f.emit(events.Paused{Component: f.address, By: caller})
	logger.Warn("farm paused", "by", caller)
	return nil
}

func (f *Farm) Unpause(caller common.Address) error {
	if err := f.onlyAdmin(caller); err != nil {
		return err
	}
	paused, err := f.paused.Get()
	if err != nil {
		return errors.Wrap(err, "failed to get paused")
	}
	if !paused {
		return reverts.New(reverts.InvalidConfiguration, "not paused")
	}
	if err := f.paused.Upsert(false); err != nil {
		return err
	}
	f.emit(events.Unpaused{Component: f.address, By: caller})
	logger.Info("farm unpaused", "by", caller)
	return nil
}

func copyInts(src []*big.Int) []*big.Int {
	if len(src) == 0 {
		return nil
	}
	dst := make([]*big.Int, len(src))
	for i, v := range src {
		dst[i] = new(big.Int).Set(v)
	}
	return dst
}
