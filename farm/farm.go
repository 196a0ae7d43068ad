// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package farm implements the multi-pool reward accrual engine.
//
// Each pool keeps an accumulated reward per share and an accumulated bonus reward per
// unit of bonus weight. Every operation first catches the affected pool up to the current
// time, then settles the user's position against the fresh accumulators.
//
// Farm is not safe for concurrent use. The caller serialises operations and provides
// all-or-nothing semantics by checkpointing the underlying state.
package farm

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/Degis-Insurance/Degis-Core-sub000/events"
	"github.com/Degis-Insurance/Degis-Core-sub000/farm/bonus"
	"github.com/Degis-Insurance/Degis-Core-sub000/farm/pool"
	"github.com/Degis-Insurance/Degis-Core-sub000/farm/position"
	"github.com/Degis-Insurance/Degis-Core-sub000/farm/reverts"
	"github.com/Degis-Insurance/Degis-Core-sub000/log"
	"github.com/Degis-Insurance/Degis-Core-sub000/storage"
)

var (
	logger = log.WithContext("pkg", "farm")

	slotAdmin          = storage.Slot("admin")
	slotBonusProvider  = storage.Slot("bonus-provider")
	slotStartTimestamp = storage.Slot("start-timestamp")
	slotPaused         = storage.Slot("paused")
)

func SetLogger(l log.Logger) {
	logger = l
}

// ShareHolder holds the deposited share assets. Transfers report the amount actually moved.
type ShareHolder interface {
	BalanceOf(share common.Address) (*big.Int, error)
	TransferIn(share, user common.Address, amount *big.Int) (*big.Int, error)
	TransferOut(share, user common.Address, amount *big.Int) (*big.Int, error)
}

// RewardAsset mints and moves the reward asset.
type RewardAsset interface {
	Mint(to common.Address, amount *big.Int) error
	BalanceOf(who common.Address) (*big.Int, error)
	Transfer(from, to common.Address, amount *big.Int) error
}

// BonusSource reports the governance stake balance a bonus weight is derived from.
type BonusSource interface {
	BonusBalanceOf(user common.Address) (*big.Int, error)
}

// DoubleRewarder is told about every share balance change of pools with a double reward token.
// supply is the pool's share supply before the change.
type DoubleRewarder interface {
	OnShareChanged(share, user common.Address, oldBalance, newBalance, supply *big.Int, now uint64) error
}

// Farm implements the farming pools.
type Farm struct {
	address common.Address

	pools     *pool.Service
	positions *position.Service

	admin          *storage.Raw[common.Address]
	bonusProvider  *storage.Raw[common.Address]
	startTimestamp *storage.Raw[uint64]
	paused         *storage.Raw[bool]

	shares         ShareHolder
	reward         RewardAsset
	bonusSource    BonusSource
	doubleRewarder DoubleRewarder
	emitter        events.Emitter

	entered map[uint64]bool
}

// New create a new instance. Rewards are minted to and paid from the context's address.
func New(sctx *storage.Context, shares ShareHolder, reward RewardAsset, emitter events.Emitter) *Farm {
	return &Farm{
		address:        sctx.Address(),
		pools:          pool.New(sctx),
		positions:      position.New(sctx),
		admin:          storage.NewRaw[common.Address](sctx, slotAdmin),
		bonusProvider:  storage.NewRaw[common.Address](sctx, slotBonusProvider),
		startTimestamp: storage.NewRaw[uint64](sctx, slotStartTimestamp),
		paused:         storage.NewRaw[bool](sctx, slotPaused),
		shares:         shares,
		reward:         reward,
		emitter:        emitter,
		entered:        make(map[uint64]bool),
	}
}

// SetBonusSource wires the governance stake balances. Without a source bonus weights stay unchanged
// on stake and withdraw.
func (f *Farm) SetBonusSource(src BonusSource) {
	f.bonusSource = src
}

// SetDoubleRewarder wires the double reward ledger.
func (f *Farm) SetDoubleRewarder(r DoubleRewarder) {
	f.doubleRewarder = r
}

func (f *Farm) Address() common.Address {
	return f.address
}

func (f *Farm) emit(ev events.Event) {
	if f.emitter != nil {
		f.emitter.Emit(ev)
	}
}

// enter marks the pool as mid-operation. The returned func clears the mark.
func (f *Farm) enter(id uint64) (func(), error) {
	if f.entered[id] {
		return nil, reverts.Newf(reverts.Reentrancy, "reentrant call on pool %d", id)
	}
	f.entered[id] = true
	return func() { delete(f.entered, id) }, nil
}

func (f *Farm) onlyAdmin(caller common.Address) error {
	admin, err := f.admin.Get()
	if err != nil {
		return errors.Wrap(err, "failed to get admin")
	}
	if admin == (common.Address{}) || caller != admin {
		return reverts.New(reverts.Unauthorized, "caller is not the admin")
	}
	return nil
}

func (f *Farm) whenNotPaused() error {
	paused, err := f.paused.Get()
	if err != nil {
		return errors.Wrap(err, "failed to get paused")
	}
	if paused {
		return reverts.New(reverts.Paused, "paused")
	}
	return nil
}

// getPosition loads a pool and the position of user in it.
func (f *Farm) getPosition(id uint64, user common.Address) (*pool.Pool, *position.Position, error) {
	p, err := f.pools.Get(id)
	if err != nil {
		return nil, nil, err
	}
	pos, err := f.positions.Get(id, user)
	if err != nil {
		return nil, nil, err
	}
	return p, pos, nil
}

func (f *Farm) save(id uint64, p *pool.Pool, user common.Address, pos *position.Position) error {
	if err := f.pools.Update(id, p); err != nil {
		return err
	}
	return f.positions.Set(id, user, pos)
}

// safeTransfer pays amount capped at the farm's reward balance and returns what was paid.
func (f *Farm) safeTransfer(to common.Address, amount *big.Int) (*big.Int, error) {
	if amount.Sign() == 0 {
		return new(big.Int), nil
	}
	held, err := f.reward.BalanceOf(f.address)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get reward balance")
	}
	paid := amount
	if held.Cmp(amount) < 0 {
		logger.Warn("reward balance short, payout capped", "to", to, "pending", amount, "held", held)
		metricCappedPayouts().Add(1)
		paid = held
	}
	if paid.Sign() == 0 {
		return new(big.Int), nil
	}
	if err := f.reward.Transfer(f.address, to, paid); err != nil {
		return nil, errors.Wrap(err, "failed to transfer reward")
	}
	return new(big.Int).Set(paid), nil
}

// syncBonus recomputes the position's bonus weight from the bonus source.
func (f *Farm) syncBonus(p *pool.Pool, pos *position.Position, user common.Address) error {
	if f.bonusSource == nil {
		return nil
	}
	govBalance, err := f.bonusSource.BonusBalanceOf(user)
	if err != nil {
		return errors.Wrap(err, "failed to get bonus balance")
	}
	_, _, err = bonus.Recompute(p, pos, govBalance)
	return err
}

// notifyDoubleReward reports every share balance change, whether or not the pool names a double
// reward token. Reward tokens are bound to shares, not pools.
func (f *Farm) notifyDoubleReward(p *pool.Pool, user common.Address, oldBalance, newBalance, supply *big.Int, now uint64) error {
	if f.doubleRewarder == nil {
		return nil
	}
	return f.doubleRewarder.OnShareChanged(p.Share, user, oldBalance, newBalance, supply, now)
}
