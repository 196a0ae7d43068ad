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
	"github.com/Degis-Insurance/Degis-Core-sub000/farm/bonus"
	"github.com/Degis-Insurance/Degis-Core-sub000/farm/reverts"
	"github.com/Degis-Insurance/Degis-Core-sub000/fixedpoint"
)

// OnBonusBalanceChanged is called by the bonus provider whenever user's governance stake balance
// becomes govBalance. For every active pool the user has staked in, the reward earned so far is
// set aside as extra claimable before the bonus weight is recomputed.
//
// The scan visits every pool, so its cost grows with the number of pools.
func (f *Farm) OnBonusBalanceChanged(caller, user common.Address, govBalance *big.Int, now uint64) error {
	provider, err := f.bonusProvider.Get()
	if err != nil {
		return errors.Wrap(err, "failed to get bonus provider")
	}
	if provider == (common.Address{}) || caller != provider {
		return reverts.New(reverts.Unauthorized, "only bonus provider")
	}

	count, err := f.pools.Count()
	if err != nil {
		return err
	}
	for id := uint64(1); id <= count; id++ {
		if err := f.rebonus(id, user, govBalance, now); err != nil {
			return err
		}
	}
	return nil
}

func (f *Farm) rebonus(id uint64, user common.Address, govBalance *big.Int, now uint64) error {
	p, pos, err := f.getPosition(id, user)
	if err != nil {
		return err
	}
	if !p.Active || pos.Balance.Sign() == 0 {
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

	earned, err := pos.Earned(p.AccRewardPerShare, p.AccBonusPerShare)
	if err != nil {
		return err
	}
	if pos.ExtraClaimable, err = fixedpoint.Add(pos.ExtraClaimable, earned); err != nil {
		return errors.Wrap(err, "extra claimable")
	}

	oldWeight, newWeight, err := bonus.Recompute(p, pos, govBalance)
	if err != nil {
		return err
	}
	if err := pos.SyncDebt(p); err != nil {
		return err
	}
	if err := f.save(id, p, user, pos); err != nil {
		return err
	}

	f.emit(events.BonusUpdated{
		User:       user,
		PoolID:     id,
		OldWeight:  oldWeight,
		NewWeight:  newWeight,
		ExtraAdded: earned,
	})
	logger.Debug("bonus updated", "pool", id, "user", user, "old", oldWeight, "new", newWeight)
	return nil
}
