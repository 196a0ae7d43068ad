// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package testledger

import (
	"math/big"
	"sync/atomic"

	"github.com/Degis-Insurance/Degis-Core-sub000/genesis"
	"github.com/Degis-Insurance/Degis-Core-sub000/ledger"
	"github.com/Degis-Insurance/Degis-Core-sub000/logdb"
	"github.com/Degis-Insurance/Degis-Core-sub000/lvldb"
)

// LaunchTime is the farm start timestamp of the default ledger.
const LaunchTime = uint64(1_700_000_000)

// Clock is a manually driven ledger clock.
type Clock struct {
	now atomic.Uint64
}

func (c *Clock) Now() uint64 { return c.now.Load() }

func (c *Clock) Set(ts uint64) { c.now.Store(ts) }

func (c *Clock) Advance(d uint64) { c.now.Add(d) }

// Ledger is an in-memory ledger with a manual clock.
type Ledger struct {
	*ledger.Ledger
	db    *lvldb.LevelDB
	logDB *logdb.LogDB
	clock *Clock
	cfg   *genesis.Config
}

// NewDefault creates a ledger initialized with the dev network config, its clock
// set to LaunchTime.
func NewDefault() (*Ledger, error) {
	return New(genesis.NewDevnet(LaunchTime))
}

// New creates an in-memory ledger initialized with cfg, its clock set to the
// configured start timestamp.
func New(cfg *genesis.Config) (*Ledger, error) {
	db, err := lvldb.NewMem()
	if err != nil {
		return nil, err
	}
	logDB, err := logdb.NewMem()
	if err != nil {
		db.Close()
		return nil, err
	}

	clock := &Clock{}
	clock.Set(cfg.StartTimestamp)

	l, err := ledger.New(db, ledger.Options{
		RewardToken: cfg.RewardToken,
		StakeToken:  cfg.Gov.StakeToken,
		VeToken:     cfg.Gov.VeToken,
		Clock:       clock.Now,
		FeedBacklog: 256,
		LogDB:       logDB,
	})
	if err == nil {
		err = l.ApplyGenesis(cfg)
	}
	if err != nil {
		logDB.Close()
		db.Close()
		return nil, err
	}
	return &Ledger{l, db, logDB, clock, cfg}, nil
}

func (l *Ledger) Clock() *Clock {
	return l.clock
}

func (l *Ledger) Config() *genesis.Config {
	return l.cfg
}

// Admin returns the farm admin account.
func (l *Ledger) Admin() genesis.DevAccount {
	for _, acc := range genesis.DevAccounts() {
		if acc.Address == l.cfg.Admin {
			return acc
		}
	}
	return genesis.DevAccount{Address: l.cfg.Admin}
}

// Close releases the underlying databases.
func (l *Ledger) Close() {
	l.logDB.Close()
	l.db.Close()
}

// Ether returns n whole tokens of 18 decimals.
func Ether(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1e18))
}
