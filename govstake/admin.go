// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package govstake

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/Degis-Insurance/Degis-Core-sub000/events"
	"github.com/Degis-Insurance/Degis-Core-sub000/farm/reverts"
)

// SetGenerationRate changes the escrow generated per staked unit per second.
func (s *Service) SetGenerationRate(caller common.Address, rate *big.Int) error {
	if err := s.onlyAdmin(caller); err != nil {
		return err
	}
	if rate == nil || rate.Sign() <= 0 {
		return reverts.New(reverts.InvalidConfiguration, "generation rate must be positive")
	}
	current, err := s.generationRate.Get()
	if err != nil {
		return err
	}
	if current.Cmp(rate) == 0 {
		return reverts.New(reverts.InvalidConfiguration, "same generation rate")
	}
	logger.Info("generation rate changed", "from", current, "to", rate)
	return s.generationRate.Set(rate)
}

// SetMaxCapRatio changes the escrow cap per staked unit.
func (s *Service) SetMaxCapRatio(caller common.Address, ratio uint64) error {
	if err := s.onlyAdmin(caller); err != nil {
		return err
	}
	if ratio == 0 {
		return reverts.New(reverts.InvalidConfiguration, "max cap ratio must be positive")
	}
	current, err := s.maxCapRatio.Get()
	if err != nil {
		return err
	}
	if current == ratio {
		return reverts.New(reverts.InvalidConfiguration, "same max cap ratio")
	}
	logger.Info("max cap ratio changed", "from", current, "to", ratio)
	return s.maxCapRatio.Upsert(ratio)
}

func (s *Service) AddWhitelist(caller, who common.Address) error {
	if err := s.onlyAdmin(caller); err != nil {
		return err
	}
	return s.whitelist.Set(who, true)
}

func (s *Service) RemoveWhitelist(caller, who common.Address) error {
	if err := s.onlyAdmin(caller); err != nil {
		return err
	}
	return s.whitelist.Delete(who)
}

func (s *Service) IsWhitelisted(who common.Address) (bool, error) {
	return s.whitelist.Get(who)
}

// Params returns the generation rate and the max cap ratio.
func (s *Service) Params() (*big.Int, uint64, error) {
	rate, ratio, err := s.params()
	if err != nil {
		return nil, 0, err
	}
	return rate, ratio.Uint64(), nil
}

func (s *Service) Pause(caller common.Address) error {
	if err := s.onlyAdmin(caller); err != nil {
		return err
	}
	if err := s.whenNotPaused(); err != nil {
		return err
	}
	if err := s.paused.Upsert(true); err != nil {
		return err
	}
	s.emit(events.Paused{Component: s.address, By: caller})
	return nil
}

func (s *Service) Unpause(caller common.Address) error {
	if err := s.onlyAdmin(caller); err != nil {
		return err
	}
	paused, err := s.paused.Get()
	if err != nil {
		return err
	}
	if !paused {
		return reverts.New(reverts.InvalidConfiguration, "not paused")
	}
	if err := s.paused.Upsert(false); err != nil {
		return err
	}
	s.emit(events.Unpaused{Component: s.address, By: caller})
	return nil
}
