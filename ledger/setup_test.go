// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"math/big"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Degis-Insurance/Degis-Core-sub000/genesis"
	"github.com/Degis-Insurance/Degis-Core-sub000/logdb"
	"github.com/Degis-Insurance/Degis-Core-sub000/lvldb"
)

const t0 = uint64(1000)

var (
	admin       = common.HexToAddress("0xad")
	alice       = common.HexToAddress("0xa1")
	bob         = common.HexToAddress("0xb0")
	carol       = common.HexToAddress("0xc0")
	rewardToken = common.HexToAddress("0xde")
	stakeToken  = common.HexToAddress("0xd1")
	veToken     = common.HexToAddress("0xed")
	shareLP     = common.HexToAddress("0x5a")
	doubleToken = common.HexToAddress("0xdd")
)

func wei(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1e18))
}

func amount(v *big.Int) *genesis.HexOrDecimal256 {
	return genesis.NewHexOrDecimal256(v)
}

type testClock struct {
	now atomic.Uint64
}

func (c *testClock) Now() uint64 { return c.now.Load() }
func (c *testClock) Set(ts uint64) { c.now.Store(ts) }
func (c *testClock) Advance(d uint64) { c.now.Add(d) }

type testLedger struct {
	*Ledger
	clock *testClock
	logDB *logdb.LogDB
}

// testGenesis is one pool on shareLP paying 1 DEG per second, with a double reward
// of 1 DD per second, and alice and bob funded with share and stake tokens.
func testGenesis() *genesis.Config {
	cfg := &genesis.Config{
		Admin:          admin,
		StartTimestamp: t0,
		RewardToken:    rewardToken,
		Gov: genesis.Gov{
			StakeToken: stakeToken,
			VeToken:    veToken,
		},
		Pools: []genesis.Pool{{
			Share:        shareLP,
			Basic:        amount(wei(1)),
			Bonus:        amount(wei(1)),
			DoubleReward: &doubleToken,
		}},
		DoubleRewards: []genesis.DoubleReward{{
			Token:     doubleToken,
			Share:     shareLP,
			Speed:     amount(wei(1)),
			Claimable: &doubleToken,
		}},
		Accounts: []genesis.Account{
			{Token: doubleToken, Address: DoubleRewardAddress, Balance: amount(wei(100))},
		},
	}
	for _, u := range []common.Address{alice, bob} {
		cfg.Accounts = append(cfg.Accounts,
			genesis.Account{Token: shareLP, Address: u, Balance: amount(wei(1000))},
			genesis.Account{Token: stakeToken, Address: u, Balance: amount(wei(1000))},
		)
	}
	return cfg
}

func newTestLedger(t *testing.T) *testLedger {
	return newTestLedgerWith(t, testGenesis())
}

func newTestLedgerWith(t *testing.T, cfg *genesis.Config) *testLedger {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ldb, err := logdb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { ldb.Close() })

	clock := &testClock{}
	clock.Set(t0)

	l, err := New(db, Options{
		RewardToken: rewardToken,
		StakeToken:  stakeToken,
		VeToken:     veToken,
		Clock:       clock.Now,
		FeedBacklog: 64,
		LogDB:       ldb,
	})
	require.NoError(t, err)
	require.NoError(t, l.ApplyGenesis(cfg))
	return &testLedger{l, clock, ldb}
}

type TestFunc func(t *testing.T)

// TestSequence scripts ledger operations against the test clock.
type TestSequence struct {
	tl *testLedger

	funcs []TestFunc
	mu    sync.Mutex
}

func NewSequence(tl *testLedger) *TestSequence {
	return &TestSequence{funcs: make([]TestFunc, 0), tl: tl}
}

func (st *TestSequence) AddFunc(f TestFunc) *TestSequence {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.funcs = append(st.funcs, f)
	return st
}

func (st *TestSequence) At(ts uint64) *TestSequence {
	return st.AddFunc(func(t *testing.T) {
		st.tl.clock.Set(ts)
	})
}

func (st *TestSequence) Stake(user common.Address, id uint64, amount *big.Int) *TestSequence {
	return st.AddFunc(func(t *testing.T) {
		got, err := st.tl.Stake(user, id, amount)
		if err != nil {
			t.Fatalf("failed to stake %s for %s: %v", amount, user, err)
		}
		t.Logf("%s staked %s", user, got)
	})
}

func (st *TestSequence) Withdraw(user common.Address, id uint64, amount *big.Int) *TestSequence {
	return st.AddFunc(func(t *testing.T) {
		got, err := st.tl.Withdraw(user, id, amount)
		if err != nil {
			t.Fatalf("failed to withdraw %s for %s: %v", amount, user, err)
		}
		t.Logf("%s withdrew %s", user, got)
	})
}

func (st *TestSequence) Harvest(user common.Address, id uint64, expected *big.Int) *TestSequence {
	return st.AddFunc(func(t *testing.T) {
		paid, err := st.tl.Harvest(user, id, user)
		if err != nil {
			t.Fatalf("failed to harvest for %s: %v", user, err)
		}
		assert.Equal(t, expected.String(), paid.String(), "harvest of %s", user)
	})
}

func (st *TestSequence) GovDeposit(user common.Address, amount *big.Int) *TestSequence {
	return st.AddFunc(func(t *testing.T) {
		if err := st.tl.GovDeposit(user, amount); err != nil {
			t.Fatalf("failed to deposit gov stake for %s: %v", user, err)
		}
	})
}

func (st *TestSequence) GovClaim(user common.Address, expected *big.Int) *TestSequence {
	return st.AddFunc(func(t *testing.T) {
		got, err := st.tl.GovClaim(user)
		if err != nil {
			t.Fatalf("failed to claim gov escrow for %s: %v", user, err)
		}
		assert.Equal(t, expected.String(), got.String(), "gov claim of %s", user)
	})
}

func (st *TestSequence) Pending(user common.Address, id uint64, expected *big.Int) *TestSequence {
	return st.AddFunc(func(t *testing.T) {
		got, err := st.tl.PendingReward(id, user)
		require.NoError(t, err)
		assert.Equal(t, expected.String(), got.String(), "pending of %s", user)
	})
}

func (st *TestSequence) Run(t *testing.T) {
	st.mu.Lock()
	defer st.mu.Unlock()

	for _, f := range st.funcs {
		f(t)
	}
}

type PositionAssertions struct {
	tl   *testLedger
	id   uint64
	user common.Address

	balance *big.Int
	weight  *big.Int
}

func AssertPosition(tl *testLedger, id uint64, user common.Address) *PositionAssertions {
	return &PositionAssertions{tl: tl, id: id, user: user}
}

func (pa *PositionAssertions) Balance(expected *big.Int) *PositionAssertions {
	pa.balance = expected
	return pa
}

func (pa *PositionAssertions) Weight(expected *big.Int) *PositionAssertions {
	pa.weight = expected
	return pa
}

func (pa *PositionAssertions) Assert(t *testing.T) {
	pos, err := pa.tl.Position(pa.id, pa.user)
	require.NoError(t, err, "failed to get position of %s", pa.user)

	if pa.balance != nil {
		assert.Equal(t, pa.balance.String(), pos.Balance.String(), "position %s balance mismatch", pa.user)
	}
	if pa.weight != nil {
		assert.Equal(t, pa.weight.String(), pos.BonusWeight.String(), "position %s weight mismatch", pa.user)
	}
}
