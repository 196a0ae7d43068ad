// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package farmadmin

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
)

type Status struct {
	Admin          common.Address  `json:"admin"`
	BonusProvider  *common.Address `json:"bonusProvider"`
	StartTimestamp uint64          `json:"startTimestamp"`
	Paused         bool            `json:"paused"`
	PoolCount      int             `json:"poolCount"`
}

type RegisterPoolRequest struct {
	Caller       common.Address        `json:"caller"`
	Share        common.Address        `json:"share"`
	Basic        *math.HexOrDecimal256 `json:"basic"`
	Bonus        *math.HexOrDecimal256 `json:"bonus"`
	DoubleReward *common.Address       `json:"doubleReward"`
	WithUpdate   bool                  `json:"withUpdate"`
}

type RegisterPoolResponse struct {
	ID uint64 `json:"id"`
}

type SetRateRequest struct {
	Caller     common.Address        `json:"caller"`
	Basic      *math.HexOrDecimal256 `json:"basic"`
	Bonus      *math.HexOrDecimal256 `json:"bonus"`
	WithUpdate bool                  `json:"withUpdate"`
}

// SetPiecewiseRequest replaces a pool's supply brackets. Empty lists turn the
// schedule off.
type SetPiecewiseRequest struct {
	Caller     common.Address          `json:"caller"`
	Thresholds []*math.HexOrDecimal256 `json:"thresholds"`
	Speeds     []*math.HexOrDecimal256 `json:"speeds"`
}

type SetStartRequest struct {
	Caller    common.Address `json:"caller"`
	Timestamp uint64         `json:"timestamp"`
}

type SetAdminRequest struct {
	Caller common.Address `json:"caller"`
	Admin  common.Address `json:"admin"`
}
