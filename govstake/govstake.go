// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package govstake implements the governance stake that drives the farm's bonus weights.
//
// Staked tokens generate a vote-escrow balance over time, up to a cap proportional to the
// stake. Depositing for the maximum time mints the capped balance at once and locks the
// deposit. Every change of a user's escrow balance is reported to the bonus receiver.
package govstake

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
	logger = log.WithContext("pkg", "govstake")

	slotAdmin          = storage.Slot("gov-admin")
	slotPaused         = storage.Slot("gov-paused")
	slotGenerationRate = storage.Slot("gov-generation-rate")
	slotMaxCapRatio    = storage.Slot("gov-max-cap-ratio")
	slotWhitelist      = storage.Slot("gov-whitelist")
	slotStakers        = storage.Slot("gov-stakers")

	// DefaultGenerationRate is 1 escrow unit per staked unit per second, 18 decimals.
	DefaultGenerationRate = new(big.Int).Set(fixedpoint.Wad)
)

// DefaultMaxCapRatio caps the escrow balance at 100 times the stake.
const DefaultMaxCapRatio = uint64(100)

func SetLogger(l log.Logger) {
	logger = l
}

// TokenLedger moves the stake token and mints the escrow token.
type TokenLedger interface {
	BalanceOf(token, who common.Address) (*big.Int, error)
	Mint(token, to common.Address, amount *big.Int) error
	Burn(token, from common.Address, amount *big.Int) error
	Transfer(token, from, to common.Address, amount *big.Int) error
}

// BonusReceiver is told about every escrow balance change.
type BonusReceiver interface {
	OnBonusBalanceChanged(caller, user common.Address, balance *big.Int, now uint64) error
}

// Staker is a user's governance stake.
type Staker struct {
	Amount       *big.Int // flexible stake
	LastRelease  uint64   // last time generated escrow was claimed
	AmountLocked *big.Int // stake deposited for the maximum time
	LockUntil    uint64
	MaxTimeVe    *big.Int // escrow minted for the locked stake
	LockedVe     *big.Int // escrow locked by whitelisted callers
}

func (s *Staker) normalize() *Staker {
	for _, v := range []**big.Int{&s.Amount, &s.AmountLocked, &s.MaxTimeVe, &s.LockedVe} {
		if *v == nil {
			*v = new(big.Int)
		}
	}
	return s
}

// Service is the governance stake.
type Service struct {
	address    common.Address
	stakeToken common.Address
	veToken    common.Address

	admin          *storage.Raw[common.Address]
	paused         *storage.Raw[bool]
	generationRate *storage.Uint256
	maxCapRatio    *storage.Raw[uint64]
	whitelist      *storage.Mapping[common.Address, bool]
	stakers        *storage.Mapping[common.Address, *Staker]

	ledger   TokenLedger
	receiver BonusReceiver
	emitter  events.Emitter
}

// New create a new instance. Stake tokens are held at the context's address.
func New(sctx *storage.Context, stakeToken, veToken common.Address, ledger TokenLedger, emitter events.Emitter) *Service {
	return &Service{
		address:        sctx.Address(),
		stakeToken:     stakeToken,
		veToken:        veToken,
		admin:          storage.NewRaw[common.Address](sctx, slotAdmin),
		paused:         storage.NewRaw[bool](sctx, slotPaused),
		generationRate: storage.NewUint256(sctx, slotGenerationRate),
		maxCapRatio:    storage.NewRaw[uint64](sctx, slotMaxCapRatio),
		whitelist:      storage.NewMapping[common.Address, bool](sctx, slotWhitelist),
		stakers:        storage.NewMapping[common.Address, *Staker](sctx, slotStakers),
		ledger:         ledger,
		emitter:        emitter,
	}
}

// SetBonusReceiver wires the farm.
func (s *Service) SetBonusReceiver(r BonusReceiver) {
	s.receiver = r
}

func (s *Service) Address() common.Address {
	return s.address
}

func (s *Service) VeToken() common.Address {
	return s.veToken
}

func (s *Service) emit(ev events.Event) {
	if s.emitter != nil {
		s.emitter.Emit(ev)
	}
}

// Init sets the admin and the default parameters of a fresh service.
func (s *Service) Init(admin common.Address) error {
	current, err := s.admin.Get()
	if err != nil {
		return errors.Wrap(err, "failed to get admin")
	}
	if current != (common.Address{}) {
		return reverts.New(reverts.InvalidConfiguration, "already initialized")
	}
	if err := s.admin.Upsert(admin); err != nil {
		return err
	}
	if err := s.generationRate.Set(DefaultGenerationRate); err != nil {
		return err
	}
	return s.maxCapRatio.Upsert(DefaultMaxCapRatio)
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

func (s *Service) onlyWhitelist(caller common.Address) error {
	ok, err := s.whitelist.Get(caller)
	if err != nil {
		return errors.Wrap(err, "failed to get whitelist")
	}
	if !ok {
		return reverts.New(reverts.Unauthorized, "not in the whitelist")
	}
	return nil
}

func (s *Service) whenNotPaused() error {
	paused, err := s.paused.Get()
	if err != nil {
		return errors.Wrap(err, "failed to get paused")
	}
	if paused {
		return reverts.New(reverts.Paused, "paused")
	}
	return nil
}

func (s *Service) getStaker(user common.Address) (*Staker, error) {
	st, err := s.stakers.Get(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get staker")
	}
	if st == nil {
		st = &Staker{}
	}
	return st.normalize(), nil
}

func (s *Service) setStaker(user common.Address, st *Staker) error {
	if err := s.stakers.Set(user, st); err != nil {
		return errors.Wrap(err, "failed to set staker")
	}
	return nil
}

func (s *Service) params() (*big.Int, *big.Int, error) {
	rate, err := s.generationRate.Get()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to get generation rate")
	}
	ratio, err := s.maxCapRatio.Get()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to get max cap ratio")
	}
	if rate.Sign() == 0 || ratio == 0 {
		return nil, nil, reverts.New(reverts.InvalidConfiguration, "not initialized")
	}
	return rate, new(big.Int).SetUint64(ratio), nil
}

// notify reports user's current escrow balance to the receiver.
func (s *Service) notify(user common.Address, now uint64) error {
	if s.receiver == nil {
		return nil
	}
	bal, err := s.BonusBalanceOf(user)
	if err != nil {
		return err
	}
	return s.receiver.OnBonusBalanceChanged(s.address, user, bal, now)
}

// BonusBalanceOf returns user's escrow balance.
func (s *Service) BonusBalanceOf(user common.Address) (*big.Int, error) {
	return s.ledger.BalanceOf(s.veToken, user)
}

// Claimable returns the escrow user can claim at now.
func (s *Service) Claimable(user common.Address, now uint64) (*big.Int, error) {
	st, err := s.getStaker(user)
	if err != nil {
		return nil, err
	}
	return s.claimable(user, st, now)
}

func (s *Service) claimable(user common.Address, st *Staker, now uint64) (*big.Int, error) {
	if st.Amount.Sign() == 0 || now <= st.LastRelease {
		return new(big.Int), nil
	}
	rate, ratio, err := s.params()
	if err != nil {
		return nil, err
	}
	perUnit, err := fixedpoint.Mul(new(big.Int).SetUint64(now-st.LastRelease), rate)
	if err != nil {
		return nil, err
	}
	pending, err := fixedpoint.WMul(st.Amount, perUnit)
	if err != nil {
		return nil, err
	}

	bal, err := s.BonusBalanceOf(user)
	if err != nil {
		return nil, err
	}
	flexible := fixedpoint.SubFloor(bal, st.MaxTimeVe)
	maxVe, err := fixedpoint.Mul(st.Amount, ratio)
	if err != nil {
		return nil, err
	}
	if new(big.Int).Add(flexible, pending).Cmp(maxVe) > 0 {
		return fixedpoint.SubFloor(maxVe, flexible), nil
	}
	return pending, nil
}

// claim mints the generated escrow and returns the amount minted.
func (s *Service) claim(user common.Address, st *Staker, now uint64) (*big.Int, error) {
	amount, err := s.claimable(user, st, now)
	if err != nil {
		return nil, err
	}
	st.LastRelease = now
	if amount.Sign() > 0 {
		if err := s.ledger.Mint(s.veToken, user, amount); err != nil {
			return nil, errors.Wrap(err, "failed to mint escrow")
		}
		s.emit(events.Claimed{User: user, Amount: new(big.Int).Set(amount)})
	}
	return amount, nil
}

// Deposit stakes amount. Escrow generated by an existing stake is claimed first.
func (s *Service) Deposit(user common.Address, amount *big.Int, now uint64) error {
	logger.Debug("depositing", "user", user, "amount", amount)
	if amount == nil || amount.Sign() <= 0 {
		return reverts.New(reverts.ZeroAmount, "zero amount")
	}
	if err := s.whenNotPaused(); err != nil {
		return err
	}
	st, err := s.getStaker(user)
	if err != nil {
		return err
	}

	var claimed *big.Int
	if st.Amount.Sign() > 0 {
		if claimed, err = s.claim(user, st, now); err != nil {
			return err
		}
	} else {
		st.LastRelease = now
	}

	if err := s.ledger.Transfer(s.stakeToken, user, s.address, amount); err != nil {
		return err
	}
	st.Amount = new(big.Int).Add(st.Amount, amount)
	if err := s.setStaker(user, st); err != nil {
		return err
	}
	s.emit(events.Deposited{User: user, Amount: new(big.Int).Set(amount)})

	if claimed != nil && claimed.Sign() > 0 {
		return s.notify(user, now)
	}
	return nil
}

// DepositMaxTime stakes amount for the maximum time. The capped escrow is minted at once and the
// stake is locked until the time a flexible stake would need to reach the cap twice.
func (s *Service) DepositMaxTime(user common.Address, amount *big.Int, now uint64) error {
	logger.Debug("depositing for max time", "user", user, "amount", amount)
	if amount == nil || amount.Sign() <= 0 {
		return reverts.New(reverts.ZeroAmount, "zero amount")
	}
	if err := s.whenNotPaused(); err != nil {
		return err
	}
	st, err := s.getStaker(user)
	if err != nil {
		return err
	}
	rate, ratio, err := s.params()
	if err != nil {
		return err
	}

	minted, err := fixedpoint.Mul(amount, ratio)
	if err != nil {
		return err
	}
	lockTime := new(big.Int).Mul(big.NewInt(2), ratio)
	lockTime.Mul(lockTime, fixedpoint.Wad)
	lockTime.Div(lockTime, rate)
	if !lockTime.IsUint64() {
		return reverts.New(reverts.InvalidConfiguration, "lock time overflow")
	}

	if err := s.ledger.Transfer(s.stakeToken, user, s.address, amount); err != nil {
		return err
	}
	if err := s.ledger.Mint(s.veToken, user, minted); err != nil {
		return errors.Wrap(err, "failed to mint escrow")
	}
	st.AmountLocked = new(big.Int).Add(st.AmountLocked, amount)
	st.MaxTimeVe = new(big.Int).Add(st.MaxTimeVe, minted)
	st.LockUntil = now + lockTime.Uint64()
	if err := s.setStaker(user, st); err != nil {
		return err
	}

	s.emit(events.DepositedMaxTime{User: user, Amount: new(big.Int).Set(amount), LockUntil: st.LockUntil})
	return s.notify(user, now)
}

// Claim mints the escrow generated so far.
func (s *Service) Claim(user common.Address, now uint64) (*big.Int, error) {
	if err := s.whenNotPaused(); err != nil {
		return nil, err
	}
	st, err := s.getStaker(user)
	if err != nil {
		return nil, err
	}
	if st.Amount.Sign() == 0 {
		return nil, reverts.New(reverts.InvalidConfiguration, "not a staker")
	}
	amount, err := s.claim(user, st, now)
	if err != nil {
		return nil, err
	}
	if err := s.setStaker(user, st); err != nil {
		return nil, err
	}
	if amount.Sign() > 0 {
		if err := s.notify(user, now); err != nil {
			return nil, err
		}
	}
	return amount, nil
}

// Withdraw returns amount of the flexible stake. All generated escrow is burned.
func (s *Service) Withdraw(user common.Address, amount *big.Int, now uint64) error {
	logger.Debug("withdrawing", "user", user, "amount", amount)
	if amount == nil || amount.Sign() <= 0 {
		return reverts.New(reverts.ZeroAmount, "zero amount")
	}
	if err := s.whenNotPaused(); err != nil {
		return err
	}
	st, err := s.getStaker(user)
	if err != nil {
		return err
	}
	if st.Amount.Cmp(amount) < 0 {
		return reverts.New(reverts.InsufficientBalance, "withdraw amount exceeds stake")
	}

	bal, err := s.BonusBalanceOf(user)
	if err != nil {
		return err
	}
	burn := fixedpoint.SubFloor(fixedpoint.SubFloor(bal, st.MaxTimeVe), st.LockedVe)
	if burn.Sign() > 0 {
		if err := s.ledger.Burn(s.veToken, user, burn); err != nil {
			return errors.Wrap(err, "failed to burn escrow")
		}
	}

	st.Amount = new(big.Int).Sub(st.Amount, amount)
	st.LastRelease = now
	if err := s.setStaker(user, st); err != nil {
		return err
	}
	if err := s.ledger.Transfer(s.stakeToken, s.address, user, amount); err != nil {
		return err
	}

	s.emit(events.GovWithdrawn{User: user, Amount: new(big.Int).Set(amount)})
	return s.notify(user, now)
}

// WithdrawLocked returns the stake deposited for the maximum time once its lock expired.
func (s *Service) WithdrawLocked(user common.Address, now uint64) error {
	if err := s.whenNotPaused(); err != nil {
		return err
	}
	st, err := s.getStaker(user)
	if err != nil {
		return err
	}
	if st.AmountLocked.Sign() == 0 {
		return reverts.New(reverts.ZeroAmount, "no locked stake")
	}
	if now < st.LockUntil {
		return reverts.New(reverts.NotClaimableYet, "still locked")
	}

	bal, err := s.BonusBalanceOf(user)
	if err != nil {
		return err
	}
	if burn := fixedpoint.Min(st.MaxTimeVe, bal); burn.Sign() > 0 {
		if err := s.ledger.Burn(s.veToken, user, burn); err != nil {
			return errors.Wrap(err, "failed to burn escrow")
		}
	}

	amount := st.AmountLocked
	st.AmountLocked = new(big.Int)
	st.MaxTimeVe = new(big.Int)
	st.LockUntil = 0
	if err := s.setStaker(user, st); err != nil {
		return err
	}
	if err := s.ledger.Transfer(s.stakeToken, s.address, user, amount); err != nil {
		return err
	}

	s.emit(events.WithdrawnLocked{User: user, Amount: new(big.Int).Set(amount)})
	return s.notify(user, now)
}

// BurnFor burns amount of user's unlocked escrow. Only whitelisted callers may burn.
func (s *Service) BurnFor(caller, user common.Address, amount *big.Int, now uint64) error {
	if err := s.onlyWhitelist(caller); err != nil {
		return err
	}
	if amount == nil || amount.Sign() <= 0 {
		return reverts.New(reverts.ZeroAmount, "zero amount")
	}
	st, err := s.getStaker(user)
	if err != nil {
		return err
	}
	bal, err := s.BonusBalanceOf(user)
	if err != nil {
		return err
	}
	if fixedpoint.SubFloor(bal, st.LockedVe).Cmp(amount) < 0 {
		return reverts.New(reverts.InsufficientBalance, "burn amount exceeds balance")
	}
	if err := s.ledger.Burn(s.veToken, user, amount); err != nil {
		return errors.Wrap(err, "failed to burn escrow")
	}
	// the max time grant shrinks with what was burned from it
	if rest := fixedpoint.SubFloor(bal, amount); st.MaxTimeVe.Cmp(rest) > 0 {
		st.MaxTimeVe = rest
		if err := s.setStaker(user, st); err != nil {
			return err
		}
	}
	s.emit(events.Burned{User: user, Amount: new(big.Int).Set(amount)})
	return s.notify(user, now)
}

// LockFor locks amount of user's escrow until the given time. Locked escrow can not be burned.
func (s *Service) LockFor(caller, user common.Address, amount *big.Int, until uint64) error {
	if err := s.onlyWhitelist(caller); err != nil {
		return err
	}
	if amount == nil || amount.Sign() <= 0 {
		return reverts.New(reverts.ZeroAmount, "zero amount")
	}
	st, err := s.getStaker(user)
	if err != nil {
		return err
	}
	bal, err := s.BonusBalanceOf(user)
	if err != nil {
		return err
	}
	if fixedpoint.SubFloor(bal, st.LockedVe).Cmp(amount) < 0 {
		return reverts.New(reverts.InsufficientBalance, "lock amount exceeds balance")
	}
	st.LockedVe = new(big.Int).Add(st.LockedVe, amount)
	if err := s.setStaker(user, st); err != nil {
		return err
	}
	s.emit(events.Locked{User: user, Amount: new(big.Int).Set(amount), LockUntil: until})
	return nil
}

// UnlockFor releases amount of user's locked escrow.
func (s *Service) UnlockFor(caller, user common.Address, amount *big.Int) error {
	if err := s.onlyWhitelist(caller); err != nil {
		return err
	}
	if amount == nil || amount.Sign() <= 0 {
		return reverts.New(reverts.ZeroAmount, "zero amount")
	}
	st, err := s.getStaker(user)
	if err != nil {
		return err
	}
	if st.LockedVe.Cmp(amount) < 0 {
		return reverts.New(reverts.InsufficientBalance, "unlock amount exceeds locked")
	}
	st.LockedVe = new(big.Int).Sub(st.LockedVe, amount)
	if err := s.setStaker(user, st); err != nil {
		return err
	}
	s.emit(events.Unlocked{User: user, Amount: new(big.Int).Set(amount)})
	return nil
}

// StakerOf returns user's stake record.
func (s *Service) StakerOf(user common.Address) (*Staker, error) {
	return s.getStaker(user)
}
