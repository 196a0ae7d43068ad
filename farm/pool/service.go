// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pool

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/Degis-Insurance/Degis-Core-sub000/farm/reverts"
	"github.com/Degis-Insurance/Degis-Core-sub000/storage"
)

var (
	slotPools       = storage.Slot("pools")
	slotPoolIDs     = storage.Slot("pool-ids")
	slotPoolCounter = storage.Slot("pool-counter")
)

// Service is the pool registry. Ids start at 1, id 0 is never assigned.
type Service struct {
	pools   *storage.Mapping[storage.Uint64, *Pool]
	ids     *storage.Mapping[common.Address, uint64]
	counter *storage.Counter
}

func New(sctx *storage.Context) *Service {
	return &Service{
		pools:   storage.NewMapping[storage.Uint64, *Pool](sctx, slotPools),
		ids:     storage.NewMapping[common.Address, uint64](sctx, slotPoolIDs),
		counter: storage.NewCounter(sctx, slotPoolCounter),
	}
}

// ValidateRates rejects a bonus rate without a basic rate.
func ValidateRates(basic, bonus *big.Int) error {
	if basic == nil || bonus == nil || basic.Sign() < 0 || bonus.Sign() < 0 {
		return reverts.New(reverts.InvalidConfiguration, "invalid rate")
	}
	if bonus.Sign() > 0 && basic.Sign() == 0 {
		return reverts.New(reverts.InvalidConfiguration, "only bonus")
	}
	return nil
}

// Add registers a new pool for share. The pool is active iff basic > 0.
func (s *Service) Add(
	share common.Address,
	basic *big.Int,
	bonus *big.Int,
	doubleToken common.Address,
	lastAccrual uint64,
) (uint64, error) {
	if share == (common.Address{}) {
		return 0, reverts.New(reverts.InvalidConfiguration, "zero address")
	}
	if err := ValidateRates(basic, bonus); err != nil {
		return 0, err
	}
	existing, err := s.IDOf(share)
	if err != nil {
		return 0, err
	}
	if existing != 0 {
		return 0, reverts.New(reverts.InvalidConfiguration, "already in the pool")
	}

	id, err := s.counter.Next()
	if err != nil {
		return 0, errors.Wrap(err, "failed to allocate pool id")
	}
	if err := s.pools.Insert(storage.Uint64(id), newPool(share, basic, bonus, doubleToken, lastAccrual)); err != nil {
		return 0, errors.Wrap(err, "failed to add pool")
	}
	if err := s.ids.Set(share, id); err != nil {
		return 0, errors.Wrap(err, "failed to index pool")
	}
	return id, nil
}

// Get returns the pool with the given id, or a NotFound revert.
func (s *Service) Get(id uint64) (*Pool, error) {
	if id == 0 {
		return nil, reverts.New(reverts.NotFound, "pool not exists")
	}
	p, err := s.pools.Get(storage.Uint64(id))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get pool")
	}
	if p == nil {
		return nil, reverts.New(reverts.NotFound, "pool not exists")
	}
	return p.normalize(), nil
}

func (s *Service) Update(id uint64, p *Pool) error {
	if err := s.pools.Update(storage.Uint64(id), p); err != nil {
		return errors.Wrap(err, "failed to update pool")
	}
	return nil
}

// IDOf returns the id of the pool bound to share, zero if none.
func (s *Service) IDOf(share common.Address) (uint64, error) {
	id, err := s.ids.Get(share)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get pool id")
	}
	return id, nil
}

// Count returns the number of registered pools, which is also the highest id.
func (s *Service) Count() (uint64, error) {
	return s.counter.Current()
}

func (s *Service) Exists(id uint64) (bool, error) {
	if id == 0 {
		return false, nil
	}
	return s.pools.Exists(storage.Uint64(id))
}
