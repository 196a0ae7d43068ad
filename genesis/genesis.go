// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package genesis describes the initial ledger state applied on first start.
package genesis

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the user customized genesis.
type Config struct {
	Admin          common.Address `yaml:"admin" json:"admin"`
	StartTimestamp uint64         `yaml:"startTimestamp" json:"startTimestamp"`
	RewardToken    common.Address `yaml:"rewardToken" json:"rewardToken"`
	Gov            Gov            `yaml:"gov" json:"gov"`
	Pools          []Pool         `yaml:"pools" json:"pools"`
	DoubleRewards  []DoubleReward `yaml:"doubleRewards" json:"doubleRewards"`
	Accounts       []Account      `yaml:"accounts" json:"accounts"`
	TransferFees   []TransferFee  `yaml:"transferFees" json:"transferFees"`
}

// Gov is the governance stake settings.
type Gov struct {
	StakeToken     common.Address   `yaml:"stakeToken" json:"stakeToken"`
	VeToken        common.Address   `yaml:"veToken" json:"veToken"`
	GenerationRate *HexOrDecimal256 `yaml:"generationRate" json:"generationRate"`
	MaxCapRatio    uint64           `yaml:"maxCapRatio" json:"maxCapRatio"`
	Whitelist      []common.Address `yaml:"whitelist" json:"whitelist"`
}

// Pool is a farming pool registered at genesis.
type Pool struct {
	Share        common.Address   `yaml:"share" json:"share"`
	Basic        *HexOrDecimal256 `yaml:"basic" json:"basic"`
	Bonus        *HexOrDecimal256 `yaml:"bonus" json:"bonus"`
	DoubleReward *common.Address  `yaml:"doubleReward" json:"doubleReward"`
	Piecewise    *Piecewise       `yaml:"piecewise" json:"piecewise"`
}

type Piecewise struct {
	Thresholds []*HexOrDecimal256 `yaml:"thresholds" json:"thresholds"`
	Speeds     []*HexOrDecimal256 `yaml:"speeds" json:"speeds"`
}

// DoubleReward binds an extra reward token to a share asset.
type DoubleReward struct {
	Token     common.Address   `yaml:"token" json:"token"`
	Share     common.Address   `yaml:"share" json:"share"`
	Speed     *HexOrDecimal256 `yaml:"speed" json:"speed"`
	Claimable *common.Address  `yaml:"claimable" json:"claimable"` // real token paid on claim
}

// Account is a token balance minted at genesis.
type Account struct {
	Token   common.Address   `yaml:"token" json:"token"`
	Address common.Address   `yaml:"address" json:"address"`
	Balance *HexOrDecimal256 `yaml:"balance" json:"balance"`
}

type TransferFee struct {
	Token common.Address `yaml:"token" json:"token"`
	Bps   uint64         `yaml:"bps" json:"bps"`
}

// Load reads a genesis config from a yaml (or json) file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read genesis file")
	}
	return Parse(data)
}

// Parse decodes and validates a genesis config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "decode genesis")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the structure of the config. Rate and curve rules are enforced when applied.
func (c *Config) Validate() error {
	if c.Admin == (common.Address{}) {
		return errors.New("admin must be set")
	}
	if c.RewardToken == (common.Address{}) {
		return errors.New("rewardToken must be set")
	}
	if c.Gov.StakeToken == (common.Address{}) || c.Gov.VeToken == (common.Address{}) {
		return errors.New("gov: stakeToken and veToken must be set")
	}
	if c.Gov.StakeToken == c.Gov.VeToken {
		return errors.New("gov: stakeToken and veToken must differ")
	}
	if c.Gov.GenerationRate != nil && c.Gov.GenerationRate.Int().Sign() < 1 {
		return errors.New("gov: generationRate must be a non-zero integer")
	}

	shares := make(map[common.Address]bool)
	for i, p := range c.Pools {
		if p.Share == (common.Address{}) {
			return fmt.Errorf("pools[%d]: share must be set", i)
		}
		if shares[p.Share] {
			return fmt.Errorf("pools[%d]: duplicate share %s", i, p.Share)
		}
		shares[p.Share] = true
		if p.Basic == nil {
			return fmt.Errorf("pools[%d]: basic must be set", i)
		}
		if p.Piecewise != nil && len(p.Piecewise.Thresholds) != len(p.Piecewise.Speeds) {
			return fmt.Errorf("pools[%d]: piecewise thresholds and speeds differ in length", i)
		}
	}
	for i, d := range c.DoubleRewards {
		if d.Token == (common.Address{}) || d.Share == (common.Address{}) {
			return fmt.Errorf("doubleRewards[%d]: token and share must be set", i)
		}
	}
	for _, a := range c.Accounts {
		if a.Balance == nil || a.Balance.Int().Sign() < 1 {
			return fmt.Errorf("%s: balance must be a non-zero integer", a.Address)
		}
	}
	for _, f := range c.TransferFees {
		if f.Bps > 10000 {
			return fmt.Errorf("%s: transfer fee exceeds 10000 bps", f.Token)
		}
	}
	return nil
}
