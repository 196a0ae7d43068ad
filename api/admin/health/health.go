// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package health

import (
	"github.com/Degis-Insurance/Degis-Core-sub000/events"
	"github.com/Degis-Insurance/Degis-Core-sub000/logdb"
)

// Ledger is the part of the ledger the health check reads.
type Ledger interface {
	Initialized() (bool, error)
	Feed() *events.Feed
	LogDB() *logdb.LogDB
}

type Status struct {
	Healthy       bool    `json:"healthy"`
	Initialized   bool    `json:"initialized"`
	LastFact      uint64  `json:"lastFact"`
	PersistedFact *uint64 `json:"persistedFact"`
}

type Health struct {
	ledger Ledger
}

func New(ledger Ledger) *Health {
	return &Health{ledger: ledger}
}

// Status reports the ledger healthy once a genesis is applied and the fact
// history lags the feed by at most maxLag facts.
func (h *Health) Status(maxLag uint64) (*Status, error) {
	initialized, err := h.ledger.Initialized()
	if err != nil {
		return nil, err
	}
	status := &Status{
		Initialized: initialized,
		LastFact:    h.ledger.Feed().Last(),
	}
	healthy := initialized
	if db := h.ledger.LogDB(); db != nil {
		persisted, err := db.LastSeq()
		if err != nil {
			return nil, err
		}
		status.PersistedFact = &persisted
		if persisted+maxLag < status.LastFact {
			healthy = false
		}
	}
	status.Healthy = healthy
	return status, nil
}
