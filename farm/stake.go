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
	"github.com/Degis-Insurance/Degis-Core-sub000/farm/reverts"
)

// Stake deposits amount of the pool's share asset for user. Any pending reward is paid out first.
// It returns the amount actually received, which is what the position is credited.
func (f *Farm) Stake(user common.Address, id uint64, amount *big.Int, now uint64) (*big.Int, error) {
	logger.Debug("staking", "user", user, "pool", id, "amount", amount)

	if amount == nil || amount.Sign() <= 0 {
		return nil, reverts.New(reverts.ZeroAmount, "can not stake zero")
	}
	if err := f.whenNotPaused(); err != nil {
		return nil, err
	}
	p, pos, err := f.getPosition(id, user)
	if err != nil {
		return nil, err
	}
	if !p.Active {
		return nil, reverts.New(reverts.InvalidConfiguration, "pool is not farming")
	}
	exit, err := f.enter(id)
	if err != nil {
		return nil, err
	}
	defer exit()

	if err := f.updatePool(id, p, now); err != nil {
		return nil, err
	}

	// distribute the reward earned so far
	if pos.Balance.Sign() > 0 {
		pending, err := pos.Pending(p.AccRewardPerShare, p.AccBonusPerShare)
		if err != nil {
			return nil, err
		}
		pos.ExtraClaimable = new(big.Int)
		paid, err := f.safeTransfer(user, pending)
		if err != nil {
			return nil, err
		}
		f.emit(events.Harvested{User: user, Recipient: user, PoolID: id, Amount: paid})
	}

	supply, err := f.shares.BalanceOf(p.Share)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get share supply")
	}
	actual, err := f.shares.TransferIn(p.Share, user, amount)
	if err != nil {
		return nil, err
	}
	oldBalance := pos.Balance
	pos.Balance = new(big.Int).Add(oldBalance, actual)

	if err := f.syncBonus(p, pos, user); err != nil {
		return nil, err
	}
	if err := pos.SyncDebt(p); err != nil {
		return nil, err
	}
	if err := f.save(id, p, user, pos); err != nil {
		return nil, err
	}
	if err := f.notifyDoubleReward(p, user, oldBalance, pos.Balance, supply, now); err != nil {
		return nil, err
	}

	f.emit(events.Staked{User: user, PoolID: id, Amount: actual})
	logger.Info("staked", "user", user, "pool", id, "amount", actual)
	return actual, nil
}

// Withdraw takes amount of share asset out of user's position. Pending reward is paid out first.
// Withdrawal stays possible after the pool stopped farming.
func (f *Farm) Withdraw(user common.Address, id uint64, amount *big.Int, now uint64) (*big.Int, error) {
	logger.Debug("withdrawing", "user", user, "pool", id, "amount", amount)

	if amount == nil || amount.Sign() <= 0 {
		return nil, reverts.New(reverts.ZeroAmount, "zero amount")
	}
	if err := f.whenNotPaused(); err != nil {
		return nil, err
	}
	p, pos, err := f.getPosition(id, user)
	if err != nil {
		return nil, err
	}
	if pos.Balance.Cmp(amount) < 0 {
		return nil, reverts.New(reverts.InsufficientBalance, "not enough staking balance")
	}
	exit, err := f.enter(id)
	if err != nil {
		return nil, err
	}
	defer exit()

	if p.Active {
		if err := f.updatePool(id, p, now); err != nil {
			return nil, err
		}
	}

	pending, err := pos.Pending(p.AccRewardPerShare, p.AccBonusPerShare)
	if err != nil {
		return nil, err
	}
	pos.ExtraClaimable = new(big.Int)
	paid, err := f.safeTransfer(user, pending)
	if err != nil {
		return nil, err
	}
	f.emit(events.Harvested{User: user, Recipient: user, PoolID: id, Amount: paid})

	supply, err := f.shares.BalanceOf(p.Share)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get share supply")
	}
	actual, err := f.shares.TransferOut(p.Share, user, amount)
	if err != nil {
		return nil, err
	}
	if actual.Cmp(pos.Balance) > 0 {
		return nil, errors.Errorf("share holder sent %v, more than the position %v", actual, pos.Balance)
	}
	oldBalance := pos.Balance
	pos.Balance = new(big.Int).Sub(oldBalance, actual)

	if err := f.syncBonus(p, pos, user); err != nil {
		return nil, err
	}
	if err := pos.SyncDebt(p); err != nil {
		return nil, err
	}
	if err := f.save(id, p, user, pos); err != nil {
		return nil, err
	}
	if err := f.notifyDoubleReward(p, user, oldBalance, pos.Balance, supply, now); err != nil {
		return nil, err
	}

	f.emit(events.Withdrawn{User: user, PoolID: id, Amount: actual})
	logger.Info("withdrew", "user", user, "pool", id, "amount", actual)
	return actual, nil
}

// Harvest pays user's pending reward to recipient and returns the amount paid.
// Nothing pending pays zero.
func (f *Farm) Harvest(user common.Address, id uint64, recipient common.Address, now uint64) (*big.Int, error) {
	logger.Debug("harvesting", "user", user, "pool", id, "recipient", recipient)

	if err := f.whenNotPaused(); err != nil {
		return nil, err
	}
	p, pos, err := f.getPosition(id, user)
	if err != nil {
		return nil, err
	}
	exit, err := f.enter(id)
	if err != nil {
		return nil, err
	}
	defer exit()

	if p.Active {
		if err := f.updatePool(id, p, now); err != nil {
			return nil, err
		}
	}

	pending, err := pos.Pending(p.AccRewardPerShare, p.AccBonusPerShare)
	if err != nil {
		return nil, err
	}
	pos.ExtraClaimable = new(big.Int)
	if err := pos.SyncDebt(p); err != nil {
		return nil, err
	}
	if err := f.save(id, p, user, pos); err != nil {
		return nil, err
	}

	paid, err := f.safeTransfer(recipient, pending)
	if err != nil {
		return nil, err
	}

	// sweep the double reward with an unchanged balance
	supply, err := f.shares.BalanceOf(p.Share)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get share supply")
	}
	if err := f.notifyDoubleReward(p, user, pos.Balance, pos.Balance, supply, now); err != nil {
		return nil, err
	}

	if paid.Sign() > 0 {
		f.emit(events.Harvested{User: user, Recipient: recipient, PoolID: id, Amount: paid})
	}
	logger.Info("harvested", "user", user, "pool", id, "recipient", recipient, "amount", paid)
	return paid, nil
}
