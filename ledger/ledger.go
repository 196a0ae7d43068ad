// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package ledger serialises every farm, double reward, governance stake and token
// operation. Each operation runs to completion under one lock, and either commits all
// of its writes and facts or none of them.
package ledger

import (
	"encoding/binary"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/Degis-Insurance/Degis-Core-sub000/doublereward"
	"github.com/Degis-Insurance/Degis-Core-sub000/events"
	"github.com/Degis-Insurance/Degis-Core-sub000/farm"
	"github.com/Degis-Insurance/Degis-Core-sub000/farm/reverts"
	"github.com/Degis-Insurance/Degis-Core-sub000/govstake"
	"github.com/Degis-Insurance/Degis-Core-sub000/kv"
	"github.com/Degis-Insurance/Degis-Core-sub000/log"
	"github.com/Degis-Insurance/Degis-Core-sub000/logdb"
	"github.com/Degis-Insurance/Degis-Core-sub000/state"
	"github.com/Degis-Insurance/Degis-Core-sub000/storage"
	"github.com/Degis-Insurance/Degis-Core-sub000/token"
)

var logger = log.WithContext("pkg", "ledger")

// Storage addresses of the components.
var (
	FarmAddress         = common.BytesToAddress([]byte("Farm"))
	DoubleRewardAddress = common.BytesToAddress([]byte("DoubleReward"))
	GovStakeAddress     = common.BytesToAddress([]byte("GovStake"))
	TokenLedgerAddress  = common.BytesToAddress([]byte("TokenLedger"))
)

// Key space of the backing store.
var (
	stateBucket = kv.Bucket("s/")
	metaBucket  = kv.Bucket("m/")

	lastSeqKey = []byte("last-seq")
)

const defaultFeedBacklog = 1024

// Clock returns the current unix time in seconds.
type Clock func() uint64

// SystemClock reads the wall clock.
func SystemClock() uint64 {
	return uint64(time.Now().Unix())
}

// Options configures a ledger.
type Options struct {
	RewardToken common.Address
	StakeToken  common.Address
	VeToken     common.Address
	Clock       Clock
	FeedBacklog int
	LogDB       *logdb.LogDB // optional fact history
}

// Ledger owns the shared state and all components built on it.
type Ledger struct {
	mu sync.Mutex

	store kv.Store
	meta  kv.Store
	st    *state.State
	meter *storage.Meter
	buf   *events.Buffer
	feed  *events.Feed
	logDB *logdb.LogDB
	clock Clock

	tokens *token.Ledger
	farm   *farm.Farm
	double *doublereward.Service
	gov    *govstake.Service

	rewardToken  common.Address
	poolsChanged bool
}

// New builds a ledger over store.
func New(store kv.Store, opts Options) (*Ledger, error) {
	if opts.RewardToken == (common.Address{}) || opts.StakeToken == (common.Address{}) || opts.VeToken == (common.Address{}) {
		return nil, errors.New("reward, stake and ve tokens must be set")
	}
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock
	}
	backlog := opts.FeedBacklog
	if backlog <= 0 {
		backlog = defaultFeedBacklog
	}

	meta := metaBucket.NewStore(store)
	last, err := loadLastSeq(meta)
	if err != nil {
		return nil, err
	}
	if opts.LogDB != nil {
		stored, err := opts.LogDB.LastSeq()
		if err != nil {
			return nil, errors.Wrap(err, "read last fact")
		}
		last = max(last, stored)
	}

	st := state.New(stateBucket.NewGetter(store))
	meter := storage.NewMeter()
	buf := &events.Buffer{}

	tokens := token.New(storage.NewContext(TokenLedgerAddress, st, meter))
	tokens.SetEmitter(buf)

	fm := farm.New(
		storage.NewContext(FarmAddress, st, meter),
		token.NewVault(tokens, FarmAddress),
		token.NewAsset(tokens, opts.RewardToken),
		buf,
	)
	double := doublereward.New(storage.NewContext(DoubleRewardAddress, st, meter), fm, tokens, buf)
	gov := govstake.New(storage.NewContext(GovStakeAddress, st, meter), opts.StakeToken, opts.VeToken, tokens, buf)

	fm.SetBonusSource(gov)
	fm.SetDoubleRewarder(double)
	gov.SetBonusReceiver(fm)

	l := &Ledger{
		store:       store,
		meta:        meta,
		st:          st,
		meter:       meter,
		buf:         buf,
		feed:        events.NewFeed(backlog, last+1),
		logDB:       opts.LogDB,
		clock:       clock,
		tokens:      tokens,
		farm:        fm,
		double:      double,
		gov:         gov,
		rewardToken: opts.RewardToken,
	}
	l.mu.Lock()
	l.refreshPoolGauges()
	l.mu.Unlock()
	return l, nil
}

// Feed returns the feed committed facts are published on.
func (l *Ledger) Feed() *events.Feed {
	return l.feed
}

// LogDB returns the fact history, nil if none is kept.
func (l *Ledger) LogDB() *logdb.LogDB {
	return l.logDB
}

func (l *Ledger) RewardToken() common.Address {
	return l.rewardToken
}

// Now returns the ledger clock.
func (l *Ledger) Now() uint64 {
	return l.clock()
}

// execute runs fn as one all-or-nothing operation.
func execute[T any](l *Ledger, op string, fn func(now uint64) (T, error)) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	start := time.Now()
	now := l.clock()
	cp := l.st.NewCheckpoint()
	mark := l.buf.Len()
	l.meter.Reset()

	res, err := fn(now)
	if err == nil {
		err = l.commit(now)
	}
	loads, stores := l.meter.Reset()

	metricOpCount().AddWithLabel(1, map[string]string{"op": op, "result": resultOf(err)})
	metricOpDuration().ObserveWithLabels(time.Since(start).Milliseconds(), map[string]string{"op": op})

	if err != nil {
		l.st.RevertTo(cp)
		l.buf.Truncate(mark)
		l.poolsChanged = false
		if reverts.IsRevertErr(err) {
			logger.Debug("operation reverted", "op", op, "err", err)
		} else {
			logger.Error("operation failed", "op", op, "err", err)
		}
		var zero T
		return zero, err
	}

	metricSlotLoads().Observe(int64(loads))
	metricSlotStores().Observe(int64(stores))
	if l.poolsChanged {
		l.refreshPoolGauges()
		l.poolsChanged = false
	}
	logger.Trace("operation committed", "op", op, "now", now, "loads", loads, "stores", stores)
	return res, nil
}

// run is execute for operations without a result.
func (l *Ledger) run(op string, fn func(now uint64) error) error {
	_, err := execute(l, op, func(now uint64) (struct{}, error) {
		return struct{}{}, fn(now)
	})
	return err
}

// view runs a read-only fn under the lock.
func view[T any](l *Ledger, fn func(now uint64) (T, error)) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(l.clock())
}

// commit persists the journal and the last fact sequence in one bulk write, then
// publishes the buffered facts.
func (l *Ledger) commit(now uint64) error {
	bulk := l.store.Bulk()
	if _, err := l.st.Commit(stateBucket.NewPutter(bulk)); err != nil {
		return err
	}
	if n := l.buf.Len(); n > 0 {
		if err := saveLastSeq(metaBucket.NewPutter(bulk), l.feed.Last()+uint64(n)); err != nil {
			return err
		}
	}
	if err := bulk.Write(); err != nil {
		return errors.Wrap(err, "write state")
	}
	l.st.Reset()

	records := l.feed.Publish(l.buf.Take(), now)
	metricFactCount().Add(int64(len(records)))
	if l.logDB != nil {
		if err := l.logDB.Insert(records); err != nil {
			// state is already durable, the history only lags
			logger.Warn("failed to store facts", "err", err, "count", len(records))
		}
	}
	return nil
}

func loadLastSeq(meta kv.Getter) (uint64, error) {
	data, err := meta.Get(lastSeqKey)
	if err != nil {
		if meta.IsNotFound(err) {
			return 0, nil
		}
		return 0, errors.Wrap(err, "read last sequence")
	}
	if len(data) != 8 {
		return 0, errors.New("corrupted last sequence")
	}
	return binary.BigEndian.Uint64(data), nil
}

func saveLastSeq(meta kv.Putter, seq uint64) error {
	var data [8]byte
	binary.BigEndian.PutUint64(data[:], seq)
	return errors.Wrap(meta.Put(lastSeqKey, data[:]), "write last sequence")
}

// LastSeq returns the sequence of the last committed fact.
func (l *Ledger) LastSeq() (uint64, error) {
	return loadLastSeq(l.meta)
}

func (l *Ledger) refreshPoolGauges() {
	pools, err := l.farm.Pools()
	if err != nil {
		logger.Warn("failed to load pools for metrics", "err", err)
		return
	}
	active := 0
	for i, p := range pools {
		if p.Active {
			active++
		}
		rate := p.BasicRate
		if !rate.IsInt64() {
			continue
		}
		metricBasicRate().SetWithLabel(rate.Int64(), poolLabel(uint64(i+1)))
	}
	metricPoolCount().Set(int64(len(pools)))
	metricActivePool().Set(int64(active))
}
