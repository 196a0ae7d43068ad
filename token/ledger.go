// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package token keeps fungible token balances in state. It backs the share assets, the reward
// asset and the double reward tokens when the farm runs in-process.
package token

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/Degis-Insurance/Degis-Core-sub000/events"
	"github.com/Degis-Insurance/Degis-Core-sub000/farm/reverts"
	"github.com/Degis-Insurance/Degis-Core-sub000/storage"
)

// MaxFeeBps is the denominator of transfer fees.
const MaxFeeBps = 10000

var (
	slotBalances = storage.Slot("token-balances")
	slotSupplies = storage.Slot("token-supplies")
	slotFees     = storage.Slot("token-fees")
)

// Ledger is a registry of fungible tokens keyed by token address.
type Ledger struct {
	balances *storage.Mapping[common.Hash, *big.Int]
	supplies *storage.Mapping[common.Address, *big.Int]
	fees     *storage.Mapping[common.Address, uint64]
	emitter  events.Emitter
}

func New(sctx *storage.Context) *Ledger {
	return &Ledger{
		balances: storage.NewMapping[common.Hash, *big.Int](sctx, slotBalances),
		supplies: storage.NewMapping[common.Address, *big.Int](sctx, slotSupplies),
		fees:     storage.NewMapping[common.Address, uint64](sctx, slotFees),
	}
}

// SetEmitter makes the ledger report every balance movement as a Transfer fact.
func (l *Ledger) SetEmitter(e events.Emitter) {
	l.emitter = e
}

func (l *Ledger) emitTransfer(token, from, to common.Address, amount *big.Int) {
	if l.emitter != nil && amount.Sign() > 0 {
		l.emitter.Emit(events.Transfer{Token: token, From: from, To: to, Amount: new(big.Int).Set(amount)})
	}
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}

func (l *Ledger) BalanceOf(token, who common.Address) (*big.Int, error) {
	bal, err := l.balances.Get(storage.PairKey(token, who))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get balance")
	}
	return orZero(bal), nil
}

func (l *Ledger) TotalSupply(token common.Address) (*big.Int, error) {
	supply, err := l.supplies.Get(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get supply")
	}
	return orZero(supply), nil
}

// TransferFee returns the fee in basis points burned on every transfer of token.
func (l *Ledger) TransferFee(token common.Address) (uint64, error) {
	fee, err := l.fees.Get(token)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get fee")
	}
	return fee, nil
}

// SetTransferFee makes token a fee-on-transfer token.
func (l *Ledger) SetTransferFee(token common.Address, bps uint64) error {
	if bps > MaxFeeBps {
		return reverts.Newf(reverts.InvalidConfiguration, "fee %d exceeds %d bps", bps, MaxFeeBps)
	}
	return l.fees.Set(token, bps)
}

func (l *Ledger) setBalance(token, who common.Address, bal *big.Int) error {
	if err := l.balances.Set(storage.PairKey(token, who), bal); err != nil {
		return errors.Wrap(err, "failed to set balance")
	}
	return nil
}

func (l *Ledger) addSupply(token common.Address, delta *big.Int) error {
	supply, err := l.TotalSupply(token)
	if err != nil {
		return err
	}
	supply.Add(supply, delta)
	if supply.Sign() < 0 {
		return errors.New("negative supply")
	}
	return l.supplies.Set(token, supply)
}

func (l *Ledger) Mint(token, to common.Address, amount *big.Int) error {
	if amount.Sign() < 0 {
		return reverts.New(reverts.InvalidConfiguration, "negative amount")
	}
	bal, err := l.BalanceOf(token, to)
	if err != nil {
		return err
	}
	if err := l.setBalance(token, to, bal.Add(bal, amount)); err != nil {
		return err
	}
	if err := l.addSupply(token, amount); err != nil {
		return err
	}
	l.emitTransfer(token, common.Address{}, to, amount)
	return nil
}

func (l *Ledger) Burn(token, from common.Address, amount *big.Int) error {
	if amount.Sign() < 0 {
		return reverts.New(reverts.InvalidConfiguration, "negative amount")
	}
	bal, err := l.BalanceOf(token, from)
	if err != nil {
		return err
	}
	if bal.Cmp(amount) < 0 {
		return reverts.New(reverts.InsufficientBalance, "burn amount exceeds balance")
	}
	if err := l.setBalance(token, from, bal.Sub(bal, amount)); err != nil {
		return err
	}
	if err := l.addSupply(token, new(big.Int).Neg(amount)); err != nil {
		return err
	}
	l.emitTransfer(token, from, common.Address{}, amount)
	return nil
}

// Transfer moves amount from one holder to another. For a fee-on-transfer token the
// receiver gets amount minus the fee, and the fee is burned.
func (l *Ledger) Transfer(token, from, to common.Address, amount *big.Int) error {
	if amount.Sign() < 0 {
		return reverts.New(reverts.InvalidConfiguration, "negative amount")
	}
	fromBal, err := l.BalanceOf(token, from)
	if err != nil {
		return err
	}
	if fromBal.Cmp(amount) < 0 {
		return reverts.New(reverts.InsufficientBalance, "transfer amount exceeds balance")
	}
	bps, err := l.TransferFee(token)
	if err != nil {
		return err
	}
	fee := new(big.Int).Mul(amount, new(big.Int).SetUint64(bps))
	fee.Div(fee, big.NewInt(MaxFeeBps))
	received := new(big.Int).Sub(amount, fee)

	if err := l.setBalance(token, from, fromBal.Sub(fromBal, amount)); err != nil {
		return err
	}
	toBal, err := l.BalanceOf(token, to)
	if err != nil {
		return err
	}
	if err := l.setBalance(token, to, toBal.Add(toBal, received)); err != nil {
		return err
	}
	if fee.Sign() > 0 {
		if err := l.addSupply(token, new(big.Int).Neg(fee)); err != nil {
			return err
		}
		l.emitTransfer(token, from, common.Address{}, fee)
	}
	l.emitTransfer(token, from, to, received)
	return nil
}
