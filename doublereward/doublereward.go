// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package doublereward accrues extra reward tokens to the stakers of a share asset, on top of
// the farm's own reward. It follows the share balances the farm reports and keeps its own
// accumulators, so it does not depend on pool ids.
package doublereward

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/Degis-Insurance/Degis-Core-sub000/events"
	"github.com/Degis-Insurance/Degis-Core-sub000/farm/reverts"
	"github.com/Degis-Insurance/Degis-Core-sub000/fixedpoint"
	"github.com/Degis-Insurance/Degis-Core-sub000/log"
	"github.com/Degis-Insurance/Degis-Core-sub000/storage"
)

var (
	logger = log.WithContext("pkg", "doublereward")

	slotAdmin        = storage.Slot("double-admin")
	slotTokens       = storage.Slot("double-tokens")
	slotShareTokens  = storage.Slot("double-share-tokens")
	slotUserAccounts = storage.Slot("double-users")
)

func SetLogger(l log.Logger) {
	logger = l
}

// ShareSource reports share balances staked in the farm.
type ShareSource interface {
	ShareSupply(share common.Address) (*big.Int, error)
	StakedBalance(share, user common.Address) (*big.Int, error)
}

// TokenLedger moves reward tokens held by the service.
type TokenLedger interface {
	BalanceOf(token, who common.Address) (*big.Int, error)
	Transfer(token, from, to common.Address, amount *big.Int) error
}

// Service is the double reward ledger.
type Service struct {
	address common.Address

	admin       *storage.Raw[common.Address]
	tokens      *storage.Mapping[common.Address, *TokenInfo]
	shareTokens *storage.Mapping[common.Address, []common.Address]
	users       *storage.Mapping[common.Hash, *UserInfo]

	shares  ShareSource
	ledger  TokenLedger
	emitter events.Emitter
}

// New create a new instance. Claimed rewards are paid from the context's address.
func New(sctx *storage.Context, shares ShareSource, ledger TokenLedger, emitter events.Emitter) *Service {
	return &Service{
		address:     sctx.Address(),
		admin:       storage.NewRaw[common.Address](sctx, slotAdmin),
		tokens:      storage.NewMapping[common.Address, *TokenInfo](sctx, slotTokens),
		shareTokens: storage.NewMapping[common.Address, []common.Address](sctx, slotShareTokens),
		users:       storage.NewMapping[common.Hash, *UserInfo](sctx, slotUserAccounts),
		shares:      shares,
		ledger:      ledger,
		emitter:     emitter,
	}
}

func (s *Service) Address() common.Address {
	return s.address
}

func (s *Service) emit(ev events.Event) {
	if s.emitter != nil {
		s.emitter.Emit(ev)
	}
}

// Init sets the admin of a fresh service.
func (s *Service) Init(admin common.Address) error {
	current, err := s.admin.Get()
	if err != nil {
		return errors.Wrap(err, "failed to get admin")
	}
	if current != (common.Address{}) {
		return reverts.New(reverts.InvalidConfiguration, "already initialized")
	}
	return s.admin.Upsert(admin)
}

func (s *Service) onlyAdmin(caller common.Address) error {
	admin, err := s.admin.Get()
	if err != nil {
		return errors.Wrap(err, "failed to get admin")
	}
	if admin == (common.Address{}) || caller != admin {
		return reverts.New(reverts.Unauthorized, "caller is not the admin")
	}
	return nil
}

func (s *Service) getToken(token common.Address) (*TokenInfo, error) {
	info, err := s.tokens.Get(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get reward token")
	}
	if info == nil {
		return nil, reverts.New(reverts.NotFound, "reward token not exists")
	}
	return info.normalize(), nil
}

func (s *Service) getUser(token, user common.Address) (*UserInfo, error) {
	info, err := s.users.Get(storage.PairKey(token, user))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user reward")
	}
	if info == nil {
		info = &UserInfo{}
	}
	return info.normalize(), nil
}

// AddRewardToken attaches token to share. Accrual starts once a speed is set.
func (s *Service) AddRewardToken(caller, token, share common.Address, now uint64) error {
	if err := s.onlyAdmin(caller); err != nil {
		return err
	}
	if token == (common.Address{}) || share == (common.Address{}) {
		return reverts.New(reverts.InvalidConfiguration, "zero address")
	}
	exists, err := s.tokens.Exists(token)
	if err != nil {
		return err
	}
	if exists {
		return reverts.New(reverts.InvalidConfiguration, "reward token already added")
	}

	info := &TokenInfo{
		Share:           share,
		Speed:           new(big.Int),
		LastAccrualTime: now,
		AccPerShare:     new(big.Int),
	}
	if err := s.tokens.Insert(token, info); err != nil {
		return errors.Wrap(err, "failed to add reward token")
	}
	list, err := s.shareTokens.Get(share)
	if err != nil {
		return errors.Wrap(err, "failed to get reward tokens")
	}
	if err := s.shareTokens.Set(share, append(list, token)); err != nil {
		return errors.Wrap(err, "failed to set reward tokens")
	}

	s.emit(events.NewRewardTokenAdded{Token: token, Share: share})
	logger.Info("reward token added", "token", token, "share", share)
	return nil
}

// SetRewardSpeed changes the speed of token on share. The elapsed interval is priced at the old speed.
func (s *Service) SetRewardSpeed(caller, share, token common.Address, speed *big.Int, now uint64) error {
	if err := s.onlyAdmin(caller); err != nil {
		return err
	}
	if speed == nil || speed.Sign() < 0 {
		return reverts.New(reverts.InvalidConfiguration, "invalid speed")
	}
	info, err := s.getToken(token)
	if err != nil {
		return err
	}
	if info.Share != share {
		return reverts.New(reverts.InvalidConfiguration, "reward token not bound to share")
	}
	supply, err := s.shares.ShareSupply(share)
	if err != nil {
		return errors.Wrap(err, "failed to get share supply")
	}
	if err := info.catchUp(supply, now); err != nil {
		return err
	}
	info.Speed = new(big.Int).Set(speed)
	if err := s.tokens.Set(token, info); err != nil {
		return errors.Wrap(err, "failed to set reward token")
	}

	s.emit(events.RewardSpeedSet{Share: share, Token: token, Speed: new(big.Int).Set(speed)})
	logger.Info("reward speed set", "token", token, "speed", speed)
	return nil
}

// SetClaimable opens claiming of token, paid out in real.
func (s *Service) SetClaimable(caller, token, real common.Address) error {
	if err := s.onlyAdmin(caller); err != nil {
		return err
	}
	if real == (common.Address{}) {
		return reverts.New(reverts.InvalidConfiguration, "zero address")
	}
	info, err := s.getToken(token)
	if err != nil {
		return err
	}
	info.Claimable = true
	info.Real = real
	if err := s.tokens.Set(token, info); err != nil {
		return errors.Wrap(err, "failed to set reward token")
	}
	s.emit(events.ClaimableSet{Token: token, Real: real})
	return nil
}

// OnShareChanged settles user's reward of every token attached to share before the balance
// moves from oldBalance to newBalance. supply is the share supply before the change.
func (s *Service) OnShareChanged(share, user common.Address, oldBalance, newBalance, supply *big.Int, now uint64) error {
	list, err := s.shareTokens.Get(share)
	if err != nil {
		return errors.Wrap(err, "failed to get reward tokens")
	}
	for _, token := range list {
		info, err := s.getToken(token)
		if err != nil {
			return err
		}
		if err := info.catchUp(supply, now); err != nil {
			return err
		}
		u, err := s.getUser(token, user)
		if err != nil {
			return err
		}

		earned, err := fixedpoint.Unscaled(oldBalance, info.AccPerShare)
		if err != nil {
			return err
		}
		if u.PendingReward, err = fixedpoint.Add(u.PendingReward, fixedpoint.SubFloor(earned, u.RewardDebt)); err != nil {
			return errors.Wrap(err, "double reward pending")
		}
		if u.RewardDebt, err = fixedpoint.Unscaled(newBalance, info.AccPerShare); err != nil {
			return err
		}

		if err := s.tokens.Set(token, info); err != nil {
			return errors.Wrap(err, "failed to set reward token")
		}
		if err := s.users.Set(storage.PairKey(token, user), u); err != nil {
			return errors.Wrap(err, "failed to set user reward")
		}
	}
	return nil
}

// Claim pays user's swept reward of token in its real token, capped at what the service holds.
func (s *Service) Claim(user, token common.Address) (*big.Int, error) {
	info, err := s.getToken(token)
	if err != nil {
		return nil, err
	}
	if !info.Claimable {
		return nil, reverts.New(reverts.NotClaimableYet, "not claimable")
	}
	u, err := s.getUser(token, user)
	if err != nil {
		return nil, err
	}

	held, err := s.ledger.BalanceOf(info.Real, s.address)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get reward balance")
	}
	paid := fixedpoint.Min(u.PendingReward, held)
	if paid.Cmp(u.PendingReward) < 0 {
		logger.Warn("double reward balance short, claim capped", "token", token, "pending", u.PendingReward, "held", held)
	}
	u.PendingReward = new(big.Int)
	if err := s.users.Set(storage.PairKey(token, user), u); err != nil {
		return nil, errors.Wrap(err, "failed to set user reward")
	}
	if paid.Sign() > 0 {
		if err := s.ledger.Transfer(info.Real, s.address, user, paid); err != nil {
			return nil, errors.Wrap(err, "failed to transfer double reward")
		}
		s.emit(events.RewardClaimed{Token: token, User: user, Amount: new(big.Int).Set(paid)})
	}
	logger.Info("double reward claimed", "token", token, "user", user, "amount", paid)
	return new(big.Int).Set(paid), nil
}

// PendingReward previews the reward of token user has earned since the last sweep.
func (s *Service) PendingReward(token, user common.Address, now uint64) (*big.Int, error) {
	info, err := s.getToken(token)
	if err != nil {
		return nil, err
	}
	supply, err := s.shares.ShareSupply(info.Share)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get share supply")
	}
	balance, err := s.shares.StakedBalance(info.Share, user)
	if err != nil {
		return nil, err
	}
	acc, err := info.accrued(supply, now)
	if err != nil {
		return nil, err
	}
	u, err := s.getUser(token, user)
	if err != nil {
		return nil, err
	}
	earned, err := fixedpoint.Unscaled(balance, acc)
	if err != nil {
		return nil, err
	}
	return fixedpoint.SubFloor(earned, u.RewardDebt), nil
}

// UserPendingReward returns the swept reward of token waiting for claim.
func (s *Service) UserPendingReward(user, token common.Address) (*big.Int, error) {
	u, err := s.getUser(token, user)
	if err != nil {
		return nil, err
	}
	return u.PendingReward, nil
}

// RewardTokens returns the tokens attached to share.
func (s *Service) RewardTokens(share common.Address) ([]common.Address, error) {
	list, err := s.shareTokens.Get(share)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get reward tokens")
	}
	return list, nil
}

func (s *Service) TokenState(token common.Address) (*TokenInfo, error) {
	info, err := s.getToken(token)
	if err != nil {
		return nil, err
	}
	return info.Copy(), nil
}
