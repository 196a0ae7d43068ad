// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/Degis-Insurance/Degis-Core-sub000/genesis"
)

// Initialized reports whether a genesis was applied.
func (l *Ledger) Initialized() (bool, error) {
	return view(l, func(uint64) (bool, error) {
		admin, err := l.farm.Admin()
		if err != nil {
			return false, err
		}
		return admin != (common.Address{}), nil
	})
}

// ApplyGenesis initialises a fresh ledger from cfg as one operation.
func (l *Ledger) ApplyGenesis(cfg *genesis.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.RewardToken != l.rewardToken {
		return errors.Errorf("genesis reward token %s differs from ledger reward token %s", cfg.RewardToken, l.rewardToken)
	}
	if cfg.Gov.VeToken != l.gov.VeToken() {
		return errors.Errorf("genesis ve token %s differs from ledger ve token %s", cfg.Gov.VeToken, l.gov.VeToken())
	}

	return l.run("genesis", func(now uint64) error {
		l.poolsChanged = true
		admin := cfg.Admin

		for _, f := range cfg.TransferFees {
			if err := l.tokens.SetTransferFee(f.Token, f.Bps); err != nil {
				return errors.Wrapf(err, "transfer fee of %s", f.Token)
			}
		}
		for _, a := range cfg.Accounts {
			if err := l.tokens.Mint(a.Token, a.Address, a.Balance.Int()); err != nil {
				return errors.Wrapf(err, "account %s", a.Address)
			}
		}

		if err := l.farm.Init(admin); err != nil {
			return errors.Wrap(err, "init farm")
		}
		if cfg.StartTimestamp > 0 {
			if err := l.farm.SetStartTimestamp(admin, cfg.StartTimestamp); err != nil {
				return errors.Wrap(err, "start timestamp")
			}
		}
		if err := l.applyGov(admin, &cfg.Gov); err != nil {
			return err
		}
		if err := l.double.Init(admin); err != nil {
			return errors.Wrap(err, "init double reward")
		}

		for i, p := range cfg.Pools {
			var doubleToken common.Address
			if p.DoubleReward != nil {
				doubleToken = *p.DoubleReward
			}
			id, err := l.farm.RegisterPool(admin, p.Share, p.Basic.Int(), p.Bonus.Int(), doubleToken, false, now)
			if err != nil {
				return errors.Wrapf(err, "pools[%d]", i)
			}
			if p.Piecewise != nil {
				if err := l.farm.SetPiecewise(admin, id, toInts(p.Piecewise.Thresholds), toInts(p.Piecewise.Speeds)); err != nil {
					return errors.Wrapf(err, "pools[%d] piecewise", i)
				}
			}
		}

		for i, d := range cfg.DoubleRewards {
			if err := l.double.AddRewardToken(admin, d.Token, d.Share, now); err != nil {
				return errors.Wrapf(err, "doubleRewards[%d]", i)
			}
			if speed := d.Speed.Int(); speed.Sign() > 0 {
				if err := l.double.SetRewardSpeed(admin, d.Share, d.Token, speed, now); err != nil {
					return errors.Wrapf(err, "doubleRewards[%d] speed", i)
				}
			}
			if d.Claimable != nil {
				if err := l.double.SetClaimable(admin, d.Token, *d.Claimable); err != nil {
					return errors.Wrapf(err, "doubleRewards[%d] claimable", i)
				}
			}
		}
		logger.Info("genesis applied", "admin", admin, "pools", len(cfg.Pools), "doubleRewards", len(cfg.DoubleRewards))
		return nil
	})
}

func (l *Ledger) applyGov(admin common.Address, cfg *genesis.Gov) error {
	if err := l.gov.Init(admin); err != nil {
		return errors.Wrap(err, "init gov stake")
	}
	rate, ratio, err := l.gov.Params()
	if err != nil {
		return err
	}
	if cfg.GenerationRate != nil && cfg.GenerationRate.Int().Cmp(rate) != 0 {
		if err := l.gov.SetGenerationRate(admin, cfg.GenerationRate.Int()); err != nil {
			return errors.Wrap(err, "generation rate")
		}
	}
	if cfg.MaxCapRatio != 0 && cfg.MaxCapRatio != ratio {
		if err := l.gov.SetMaxCapRatio(admin, cfg.MaxCapRatio); err != nil {
			return errors.Wrap(err, "max cap ratio")
		}
	}
	for _, who := range cfg.Whitelist {
		if err := l.gov.AddWhitelist(admin, who); err != nil {
			return errors.Wrapf(err, "whitelist %s", who)
		}
	}
	return errors.Wrap(l.farm.SetBonusProvider(admin, GovStakeAddress), "bonus provider")
}

func toInts(src []*genesis.HexOrDecimal256) []*big.Int {
	out := make([]*big.Int, 0, len(src))
	for _, v := range src {
		out = append(out, v.Int())
	}
	return out
}
