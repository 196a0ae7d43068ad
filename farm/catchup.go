// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package farm

import (
	"math/big"
	"strconv"

	"github.com/pkg/errors"

	"github.com/Degis-Insurance/Degis-Core-sub000/events"
	"github.com/Degis-Insurance/Degis-Core-sub000/farm/piecewise"
	"github.com/Degis-Insurance/Degis-Core-sub000/farm/pool"
)

// updatePool brings p up to now. The caller persists p.
//
// The interval since the last accrual is priced at the rates in effect when it started.
// The reward of the interval is minted to the farm, then the piecewise curve picks the
// basic rate of the next interval.
func (f *Farm) updatePool(id uint64, p *pool.Pool, now uint64) error {
	supply, err := f.shares.BalanceOf(p.Share)
	if err != nil {
		return errors.Wrap(err, "failed to get share supply")
	}
	accrual, err := pool.Accrue(p, now, supply)
	if err != nil {
		return err
	}
	if accrual == nil {
		return nil
	}
	p.Apply(accrual, now)

	// empty pool, only time advances
	if supply.Sign() == 0 {
		return nil
	}
	metricCatchUpElapsed().Observe(int64(accrual.Elapsed))

	if minted := accrual.Minted(); minted.Sign() > 0 {
		if err := f.reward.Mint(f.address, minted); err != nil {
			return errors.Wrap(err, "failed to mint reward")
		}
	}

	if p.HasPiecewise() {
		if level, rate, changed := piecewise.Adjust(p.Thresholds, p.Speeds, p.Level, supply); changed {
			logger.Debug("piecewise level changed", "pool", id, "from", p.Level, "to", level, "rate", rate)
			metricRateChanges().AddWithLabel(1, map[string]string{"pool": strconv.FormatUint(id, 10)})
			p.Level = level
			p.BasicRate = rate
		}
	}

	f.emit(events.PoolUpdated{
		PoolID:            id,
		AccRewardPerShare: new(big.Int).Set(p.AccRewardPerShare),
		AccBonusPerShare:  new(big.Int).Set(p.AccBonusPerShare),
	})
	return nil
}

// massUpdate catches up every active pool.
func (f *Farm) massUpdate(now uint64) error {
	count, err := f.pools.Count()
	if err != nil {
		return err
	}
	for id := uint64(1); id <= count; id++ {
		p, err := f.pools.Get(id)
		if err != nil {
			return err
		}
		if !p.Active {
			continue
		}
		exit, err := f.enter(id)
		if err != nil {
			return err
		}
		err = f.updatePool(id, p, now)
		if err == nil {
			err = f.pools.Update(id, p)
		}
		exit()
		if err != nil {
			return err
		}
	}
	return nil
}

// CatchUp brings an active pool's accumulators up to now. Stopped pools do not accrue.
func (f *Farm) CatchUp(id uint64, now uint64) error {
	p, err := f.pools.Get(id)
	if err != nil {
		return err
	}
	if !p.Active {
		return nil
	}
	exit, err := f.enter(id)
	if err != nil {
		return err
	}
	defer exit()

	if err := f.updatePool(id, p, now); err != nil {
		return err
	}
	return f.pools.Update(id, p)
}

// MassUpdate catches up every active pool.
func (f *Farm) MassUpdate(now uint64) error {
	return f.massUpdate(now)
}
