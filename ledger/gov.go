// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/Degis-Insurance/Degis-Core-sub000/govstake"
)

// GovAccount is a user's governance stake with the escrow figures derived from it.
type GovAccount struct {
	*govstake.Staker
	VeBalance *big.Int
	Claimable *big.Int
}

// GovParams is the governance stake configuration.
type GovParams struct {
	GenerationRate *big.Int
	MaxCapRatio    uint64
}

// Governance stake changes always reach the farm through the bonus callback, so every
// one of them may touch pools.

func (l *Ledger) GovDeposit(user common.Address, amount *big.Int) error {
	return l.run("govDeposit", func(now uint64) error {
		l.poolsChanged = true
		return l.gov.Deposit(user, amount, now)
	})
}

func (l *Ledger) GovDepositMaxTime(user common.Address, amount *big.Int) error {
	return l.run("govDepositMaxTime", func(now uint64) error {
		l.poolsChanged = true
		return l.gov.DepositMaxTime(user, amount, now)
	})
}

// GovClaim mints the generated escrow and returns the amount.
func (l *Ledger) GovClaim(user common.Address) (*big.Int, error) {
	return execute(l, "govClaim", func(now uint64) (*big.Int, error) {
		l.poolsChanged = true
		return l.gov.Claim(user, now)
	})
}

func (l *Ledger) GovWithdraw(user common.Address, amount *big.Int) error {
	return l.run("govWithdraw", func(now uint64) error {
		l.poolsChanged = true
		return l.gov.Withdraw(user, amount, now)
	})
}

func (l *Ledger) GovWithdrawLocked(user common.Address) error {
	return l.run("govWithdrawLocked", func(now uint64) error {
		l.poolsChanged = true
		return l.gov.WithdrawLocked(user, now)
	})
}

func (l *Ledger) GovBurnFor(caller, user common.Address, amount *big.Int) error {
	return l.run("govBurnFor", func(now uint64) error {
		l.poolsChanged = true
		return l.gov.BurnFor(caller, user, amount, now)
	})
}

func (l *Ledger) GovLockFor(caller, user common.Address, amount *big.Int, until uint64) error {
	return l.run("govLockFor", func(uint64) error {
		return l.gov.LockFor(caller, user, amount, until)
	})
}

func (l *Ledger) GovUnlockFor(caller, user common.Address, amount *big.Int) error {
	return l.run("govUnlockFor", func(uint64) error {
		return l.gov.UnlockFor(caller, user, amount)
	})
}

func (l *Ledger) GovSetGenerationRate(caller common.Address, rate *big.Int) error {
	return l.run("govSetGenerationRate", func(uint64) error {
		return l.gov.SetGenerationRate(caller, rate)
	})
}

func (l *Ledger) GovSetMaxCapRatio(caller common.Address, ratio uint64) error {
	return l.run("govSetMaxCapRatio", func(uint64) error {
		return l.gov.SetMaxCapRatio(caller, ratio)
	})
}

func (l *Ledger) GovAddWhitelist(caller, who common.Address) error {
	return l.run("govAddWhitelist", func(uint64) error {
		return l.gov.AddWhitelist(caller, who)
	})
}

func (l *Ledger) GovRemoveWhitelist(caller, who common.Address) error {
	return l.run("govRemoveWhitelist", func(uint64) error {
		return l.gov.RemoveWhitelist(caller, who)
	})
}

func (l *Ledger) GovPause(caller common.Address) error {
	return l.run("govPause", func(uint64) error {
		return l.gov.Pause(caller)
	})
}

func (l *Ledger) GovUnpause(caller common.Address) error {
	return l.run("govUnpause", func(uint64) error {
		return l.gov.Unpause(caller)
	})
}

func (l *Ledger) GovAccount(user common.Address) (*GovAccount, error) {
	return view(l, func(now uint64) (*GovAccount, error) {
		st, err := l.gov.StakerOf(user)
		if err != nil {
			return nil, err
		}
		ve, err := l.gov.BonusBalanceOf(user)
		if err != nil {
			return nil, err
		}
		claimable, err := l.gov.Claimable(user, now)
		if err != nil {
			return nil, err
		}
		return &GovAccount{st, ve, claimable}, nil
	})
}

func (l *Ledger) GovParams() (*GovParams, error) {
	return view(l, func(uint64) (*GovParams, error) {
		rate, ratio, err := l.gov.Params()
		if err != nil {
			return nil, err
		}
		return &GovParams{rate, ratio}, nil
	})
}
