// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package token

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Asset is a single token of the ledger, such as the reward asset the farm mints.
type Asset struct {
	ledger *Ledger
	token  common.Address
}

func NewAsset(ledger *Ledger, token common.Address) *Asset {
	return &Asset{ledger: ledger, token: token}
}

func (a *Asset) Token() common.Address {
	return a.token
}

func (a *Asset) Mint(to common.Address, amount *big.Int) error {
	return a.ledger.Mint(a.token, to, amount)
}

func (a *Asset) Burn(from common.Address, amount *big.Int) error {
	return a.ledger.Burn(a.token, from, amount)
}

func (a *Asset) BalanceOf(who common.Address) (*big.Int, error) {
	return a.ledger.BalanceOf(a.token, who)
}

func (a *Asset) TotalSupply() (*big.Int, error) {
	return a.ledger.TotalSupply(a.token)
}

func (a *Asset) Transfer(from, to common.Address, amount *big.Int) error {
	return a.ledger.Transfer(a.token, from, to, amount)
}
