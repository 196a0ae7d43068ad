// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package position

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/Degis-Insurance/Degis-Core-sub000/storage"
)

var slotPositions = storage.Slot("positions")

// Service stores positions keyed by pool id and user.
type Service struct {
	positions *storage.Mapping[common.Hash, *Position]
}

func New(sctx *storage.Context) *Service {
	return &Service{
		positions: storage.NewMapping[common.Hash, *Position](sctx, slotPositions),
	}
}

// Get returns the position of user in pool, a zero position if the user never staked.
func (s *Service) Get(poolID uint64, user common.Address) (*Position, error) {
	pos, err := s.positions.Get(storage.IDAddressKey(poolID, user))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get position")
	}
	if pos == nil {
		return newPosition(), nil
	}
	return pos.normalize(), nil
}

func (s *Service) Set(poolID uint64, user common.Address, pos *Position) error {
	if err := s.positions.Set(storage.IDAddressKey(poolID, user), pos); err != nil {
		return errors.Wrap(err, "failed to set position")
	}
	return nil
}
