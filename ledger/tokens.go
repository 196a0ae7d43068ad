// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/Degis-Insurance/Degis-Core-sub000/farm/reverts"
)

func (l *Ledger) onlyFarmAdmin(caller common.Address) error {
	admin, err := l.farm.Admin()
	if err != nil {
		return errors.Wrap(err, "failed to get admin")
	}
	if admin == (common.Address{}) || caller != admin {
		return reverts.New(reverts.Unauthorized, "caller is not the admin")
	}
	return nil
}

// Mint is the faucet of the built-in token ledger. Only the farm admin may mint.
func (l *Ledger) Mint(caller, tok, to common.Address, amount *big.Int) error {
	return l.run("mint", func(uint64) error {
		if err := l.onlyFarmAdmin(caller); err != nil {
			return err
		}
		if amount.Sign() <= 0 {
			return reverts.New(reverts.ZeroAmount, "can not mint zero")
		}
		return l.tokens.Mint(tok, to, amount)
	})
}

// SetTransferFee makes tok burn bps/10000 of every transfer.
func (l *Ledger) SetTransferFee(caller, tok common.Address, bps uint64) error {
	return l.run("setTransferFee", func(uint64) error {
		if err := l.onlyFarmAdmin(caller); err != nil {
			return err
		}
		return l.tokens.SetTransferFee(tok, bps)
	})
}

// Transfer moves amount of tok between accounts.
func (l *Ledger) Transfer(from, to, tok common.Address, amount *big.Int) error {
	return l.run("transfer", func(uint64) error {
		if amount.Sign() <= 0 {
			return reverts.New(reverts.ZeroAmount, "can not transfer zero")
		}
		return l.tokens.Transfer(tok, from, to, amount)
	})
}

func (l *Ledger) BalanceOf(tok, who common.Address) (*big.Int, error) {
	return view(l, func(uint64) (*big.Int, error) {
		return l.tokens.BalanceOf(tok, who)
	})
}

func (l *Ledger) TotalSupply(tok common.Address) (*big.Int, error) {
	return view(l, func(uint64) (*big.Int, error) {
		return l.tokens.TotalSupply(tok)
	})
}
