// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package gov

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"

	"github.com/Degis-Insurance/Degis-Core-sub000/api/utils"
	"github.com/Degis-Insurance/Degis-Core-sub000/ledger"
)

type Params struct {
	GenerationRate *math.HexOrDecimal256 `json:"generationRate"`
	MaxCapRatio    uint64                `json:"maxCapRatio"`
}

type Account struct {
	User         common.Address        `json:"user"`
	Amount       *math.HexOrDecimal256 `json:"amount"`
	LastRelease  uint64                `json:"lastRelease"`
	AmountLocked *math.HexOrDecimal256 `json:"amountLocked"`
	LockUntil    uint64                `json:"lockUntil"`
	MaxTimeVe    *math.HexOrDecimal256 `json:"maxTimeVe"`
	LockedVe     *math.HexOrDecimal256 `json:"lockedVe"`
	VeBalance    *math.HexOrDecimal256 `json:"veBalance"`
	Claimable    *math.HexOrDecimal256 `json:"claimable"`
}

func convertAccount(user common.Address, acc *ledger.GovAccount) *Account {
	return &Account{
		User:         user,
		Amount:       utils.Amount(acc.Amount),
		LastRelease:  acc.LastRelease,
		AmountLocked: utils.Amount(acc.AmountLocked),
		LockUntil:    acc.LockUntil,
		MaxTimeVe:    utils.Amount(acc.MaxTimeVe),
		LockedVe:     utils.Amount(acc.LockedVe),
		VeBalance:    utils.Amount(acc.VeBalance),
		Claimable:    utils.Amount(acc.Claimable),
	}
}

type SetGenerationRateRequest struct {
	Caller common.Address        `json:"caller"`
	Rate   *math.HexOrDecimal256 `json:"rate"`
}

type SetMaxCapRatioRequest struct {
	Caller common.Address `json:"caller"`
	Ratio  uint64         `json:"ratio"`
}

type WhitelistRequest struct {
	Caller  common.Address `json:"caller"`
	Account common.Address `json:"account"`
}

// EscrowRequest is sent by a whitelisted caller to burn, lock or unlock a user's escrow.
type EscrowRequest struct {
	Caller common.Address        `json:"caller"`
	User   common.Address        `json:"user"`
	Amount *math.HexOrDecimal256 `json:"amount"`
	Until  uint64                `json:"until,omitempty"`
}
