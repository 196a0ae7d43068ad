// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"crypto/ecdsa"
	"math/big"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// DevAccount account for development.
type DevAccount struct {
	Address    common.Address
	PrivateKey *ecdsa.PrivateKey
}

var devAccounts atomic.Value

// DevAccounts returns pre-alloced accounts for the dev network.
func DevAccounts() []DevAccount {
	if accs := devAccounts.Load(); accs != nil {
		return accs.([]DevAccount)
	}

	var accs []DevAccount
	privKeys := []string{
		"dce1443bd2ef0c2631adc1c67e5c93f13dc23a41c18b536effbbdcbcdb96fb65",
		"321d6443bc6177273b5abf54210fe806d451d6b7973bccc2384ef78bbcd0bf51",
		"2d7c882bad2a01105e36dda3646693bc1aaaa45b0ed63fb0ce23c060294f3af2",
		"593537225b037191d322c3b1df585fb1e5100811b71a6f7fc7e29cca1333483e",
		"ca7b25fc980c759df5f3ce17a3d881d6e19a38e651fc4315fc08917edab41058",
	}
	for _, str := range privKeys {
		pk, err := crypto.HexToECDSA(str)
		if err != nil {
			panic(err)
		}
		accs = append(accs, DevAccount{crypto.PubkeyToAddress(pk.PublicKey), pk})
	}
	devAccounts.Store(accs)
	return accs
}

var (
	DevRewardToken = common.BytesToAddress([]byte("DEG"))
	DevStakeToken  = common.BytesToAddress([]byte("DEG-stake"))
	DevVeToken     = common.BytesToAddress([]byte("veDEG"))
	DevShareToken  = common.BytesToAddress([]byte("LP-DEG-USD"))
)

// NewDevnet create genesis for the dev network: one farming pool, and every dev
// account funded with share and stake tokens.
func NewDevnet(launchTime uint64) *Config {
	accs := DevAccounts()
	unit := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	balance := NewHexOrDecimal256(new(big.Int).Mul(big.NewInt(1_000_000), unit))

	cfg := &Config{
		Admin:          accs[0].Address,
		StartTimestamp: launchTime,
		RewardToken:    DevRewardToken,
		Gov: Gov{
			StakeToken: DevStakeToken,
			VeToken:    DevVeToken,
		},
		Pools: []Pool{{
			Share: DevShareToken,
			Basic: NewHexOrDecimal256(unit),
			Bonus: NewHexOrDecimal256(new(big.Int).Div(unit, big.NewInt(2))),
		}},
	}
	for _, acc := range accs {
		cfg.Accounts = append(cfg.Accounts,
			Account{Token: DevShareToken, Address: acc.Address, Balance: balance},
			Account{Token: DevStakeToken, Address: acc.Address, Balance: balance},
		)
	}
	return cfg
}
