// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package double

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"

	"github.com/Degis-Insurance/Degis-Core-sub000/api/utils"
	"github.com/Degis-Insurance/Degis-Core-sub000/doublereward"
)

type Token struct {
	Token           common.Address        `json:"token"`
	Share           common.Address        `json:"share"`
	Speed           *math.HexOrDecimal256 `json:"speed"`
	LastAccrualTime uint64                `json:"lastAccrualTime"`
	AccPerShare     *math.HexOrDecimal256 `json:"accPerShare"`
	Claimable       bool                  `json:"claimable"`
	Real            *common.Address       `json:"real"`
}

func convertToken(token common.Address, info *doublereward.TokenInfo) *Token {
	return &Token{
		Token:           token,
		Share:           info.Share,
		Speed:           utils.Amount(info.Speed),
		LastAccrualTime: info.LastAccrualTime,
		AccPerShare:     utils.Amount(info.AccPerShare),
		Claimable:       info.Claimable,
		Real:            utils.OptionalAddress(info.Real),
	}
}

type Balance struct {
	Token   common.Address        `json:"token"`
	User    common.Address        `json:"user"`
	Pending *math.HexOrDecimal256 `json:"pending"`
	Swept   *math.HexOrDecimal256 `json:"swept"`
}

type AddTokenRequest struct {
	Caller common.Address `json:"caller"`
	Token  common.Address `json:"token"`
	Share  common.Address `json:"share"`
}

type SetSpeedRequest struct {
	Caller common.Address        `json:"caller"`
	Share  common.Address        `json:"share"`
	Speed  *math.HexOrDecimal256 `json:"speed"`
}

type SetClaimableRequest struct {
	Caller common.Address `json:"caller"`
	Real   common.Address `json:"real"`
}
