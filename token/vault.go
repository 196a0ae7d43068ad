// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package token

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Vault holds share assets on behalf of one address and reports the amounts
// actually moved, measured as the holder's balance change.
type Vault struct {
	ledger *Ledger
	holder common.Address
}

func NewVault(ledger *Ledger, holder common.Address) *Vault {
	return &Vault{ledger: ledger, holder: holder}
}

func (v *Vault) Holder() common.Address {
	return v.holder
}

func (v *Vault) BalanceOf(share common.Address) (*big.Int, error) {
	return v.ledger.BalanceOf(share, v.holder)
}

// TransferIn pulls amount of share from user and returns what the vault received.
func (v *Vault) TransferIn(share, user common.Address, amount *big.Int) (*big.Int, error) {
	before, err := v.BalanceOf(share)
	if err != nil {
		return nil, err
	}
	if err := v.ledger.Transfer(share, user, v.holder, amount); err != nil {
		return nil, err
	}
	after, err := v.BalanceOf(share)
	if err != nil {
		return nil, err
	}
	return after.Sub(after, before), nil
}

// TransferOut sends amount of share to user and returns what left the vault.
func (v *Vault) TransferOut(share, user common.Address, amount *big.Int) (*big.Int, error) {
	before, err := v.BalanceOf(share)
	if err != nil {
		return nil, err
	}
	if err := v.ledger.Transfer(share, v.holder, user, amount); err != nil {
		return nil, err
	}
	after, err := v.BalanceOf(share)
	if err != nil {
		return nil, err
	}
	return before.Sub(before, after), nil
}
