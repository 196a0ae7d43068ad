// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pools

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"

	"github.com/Degis-Insurance/Degis-Core-sub000/api/utils"
	"github.com/Degis-Insurance/Degis-Core-sub000/farm/pool"
	"github.com/Degis-Insurance/Degis-Core-sub000/farm/position"
)

type Pool struct {
	ID                uint64                  `json:"id"`
	Share             common.Address          `json:"share"`
	BasicRate         *math.HexOrDecimal256   `json:"basicRate"`
	BonusRate         *math.HexOrDecimal256   `json:"bonusRate"`
	LastAccrualTime   uint64                  `json:"lastAccrualTime"`
	AccRewardPerShare *math.HexOrDecimal256   `json:"accRewardPerShare"`
	AccBonusPerShare  *math.HexOrDecimal256   `json:"accBonusPerShare"`
	TotalBonusWeight  *math.HexOrDecimal256   `json:"totalBonusWeight"`
	Active            bool                    `json:"active"`
	DoubleRewardToken *common.Address         `json:"doubleRewardToken"`
	Thresholds        []*math.HexOrDecimal256 `json:"thresholds"`
	Speeds            []*math.HexOrDecimal256 `json:"speeds"`
	Level             uint64                  `json:"level"`
}

func convertPool(id uint64, p *pool.Pool) *Pool {
	return &Pool{
		ID:                id,
		Share:             p.Share,
		BasicRate:         utils.Amount(p.BasicRate),
		BonusRate:         utils.Amount(p.BonusRate),
		LastAccrualTime:   p.LastAccrualTime,
		AccRewardPerShare: utils.Amount(p.AccRewardPerShare),
		AccBonusPerShare:  utils.Amount(p.AccBonusPerShare),
		TotalBonusWeight:  utils.Amount(p.TotalBonusWeight),
		Active:            p.Active,
		DoubleRewardToken: utils.OptionalAddress(p.DoubleRewardToken),
		Thresholds:        utils.Amounts(p.Thresholds),
		Speeds:            utils.Amounts(p.Speeds),
		Level:             p.Level,
	}
}

type Position struct {
	Pool           uint64                `json:"pool"`
	User           common.Address        `json:"user"`
	Balance        *math.HexOrDecimal256 `json:"balance"`
	BonusWeight    *math.HexOrDecimal256 `json:"bonusWeight"`
	RewardDebt     *math.HexOrDecimal256 `json:"rewardDebt"`
	ExtraClaimable *math.HexOrDecimal256 `json:"extraClaimable"`
}

func convertPosition(id uint64, user common.Address, p *position.Position) *Position {
	return &Position{
		Pool:           id,
		User:           user,
		Balance:        utils.Amount(p.Balance),
		BonusWeight:    utils.Amount(p.BonusWeight),
		RewardDebt:     utils.Amount(p.RewardDebt),
		ExtraClaimable: utils.Amount(p.ExtraClaimable),
	}
}

type Pending struct {
	Pool   uint64                `json:"pool"`
	User   common.Address        `json:"user"`
	Amount *math.HexOrDecimal256 `json:"amount"`
	Time   uint64                `json:"time"`
}

// HarvestRequest pays the caller's reward to Recipient, or to the caller when it is absent.
type HarvestRequest struct {
	Caller    common.Address  `json:"caller"`
	Recipient *common.Address `json:"recipient"`
}

// Moved is the amount of share asset actually moved by a stake or withdraw.
type Moved struct {
	Amount *math.HexOrDecimal256 `json:"amount"`
}

func newMoved(v *big.Int) *Moved {
	return &Moved{utils.Amount(v)}
}
