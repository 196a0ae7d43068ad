// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/Degis-Insurance/Degis-Core-sub000/doublereward"
)

// DoubleBalance is a user's double reward in one token.
type DoubleBalance struct {
	Pending *big.Int // accrued since the last share change, not yet swept
	Swept   *big.Int // swept and waiting for claim
}

func (l *Ledger) AddRewardToken(caller, token, share common.Address) error {
	return l.run("addRewardToken", func(now uint64) error {
		return l.double.AddRewardToken(caller, token, share, now)
	})
}

func (l *Ledger) SetRewardSpeed(caller, share, token common.Address, speed *big.Int) error {
	return l.run("setRewardSpeed", func(now uint64) error {
		return l.double.SetRewardSpeed(caller, share, token, speed, now)
	})
}

func (l *Ledger) SetClaimable(caller, token, real common.Address) error {
	return l.run("setClaimable", func(uint64) error {
		return l.double.SetClaimable(caller, token, real)
	})
}

// ClaimDouble pays the user's swept double reward and returns the amount paid.
func (l *Ledger) ClaimDouble(user, token common.Address) (*big.Int, error) {
	return execute(l, "claimDouble", func(uint64) (*big.Int, error) {
		return l.double.Claim(user, token)
	})
}

func (l *Ledger) DoubleBalance(token, user common.Address) (*DoubleBalance, error) {
	return view(l, func(now uint64) (*DoubleBalance, error) {
		pending, err := l.double.PendingReward(token, user, now)
		if err != nil {
			return nil, err
		}
		swept, err := l.double.UserPendingReward(user, token)
		if err != nil {
			return nil, err
		}
		return &DoubleBalance{pending, swept}, nil
	})
}

func (l *Ledger) DoubleToken(token common.Address) (*doublereward.TokenInfo, error) {
	return view(l, func(uint64) (*doublereward.TokenInfo, error) {
		return l.double.TokenState(token)
	})
}

func (l *Ledger) RewardTokens(share common.Address) ([]common.Address, error) {
	return view(l, func(uint64) ([]common.Address, error) {
		return l.double.RewardTokens(share)
	})
}
