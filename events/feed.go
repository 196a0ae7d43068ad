// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package events

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	"github.com/Degis-Insurance/Degis-Core-sub000/co"
)

// ErrTooOld is returned by Since when the requested position fell out of the backlog.
var ErrTooOld = errors.New("events: position is older than the feed backlog")

// Record is a committed fact with its position in the feed.
type Record struct {
	Seq   uint64
	Time  uint64
	Event Event
}

type recordJSON struct {
	Seq     uint64          `json:"seq"`
	Time    uint64          `json:"time"`
	Name    string          `json:"name"`
	Pool    uint64          `json:"pool"`
	Account common.Address  `json:"account"`
	Data    json.RawMessage `json:"data"`
}

func (r *Record) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(r.Event)
	if err != nil {
		return nil, err
	}
	return json.Marshal(&recordJSON{
		Seq:     r.Seq,
		Time:    r.Time,
		Name:    r.Event.Name(),
		Pool:    r.Event.Pool(),
		Account: r.Event.Account(),
		Data:    data,
	})
}

// Feed publishes committed facts in order and keeps a bounded backlog for late readers.
type Feed struct {
	mu      sync.RWMutex
	backlog *lru.Cache
	seq     uint64
	signal  co.Signal
}

// NewFeed creates a feed that keeps the latest size records. next is the sequence
// number the first published record gets.
func NewFeed(size int, next uint64) *Feed {
	if size < 1 {
		size = 1
	}
	backlog, err := lru.New(size)
	if err != nil {
		// lru.New only throws an error if the number is less than 1
		panic(fmt.Errorf("failed to create feed backlog: %v", err))
	}
	if next == 0 {
		next = 1
	}
	return &Feed{backlog: backlog, seq: next - 1}
}

// Publish assigns sequence numbers to evs and wakes all waiting readers.
func (f *Feed) Publish(evs []Event, time uint64) []*Record {
	if len(evs) == 0 {
		return nil
	}
	f.mu.Lock()
	records := make([]*Record, 0, len(evs))
	for _, ev := range evs {
		f.seq++
		rec := &Record{Seq: f.seq, Time: time, Event: ev}
		f.backlog.Add(rec.Seq, rec)
		records = append(records, rec)
	}
	f.mu.Unlock()

	f.signal.Broadcast()
	return records
}

// Last returns the sequence number of the latest published record.
func (f *Feed) Last() uint64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.seq
}

// Since returns the records after seq, oldest first, at most limit of them.
func (f *Feed) Since(seq uint64, limit int) ([]*Record, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var records []*Record
	for s := seq + 1; s <= f.seq && (limit <= 0 || len(records) < limit); s++ {
		v, ok := f.backlog.Peek(s)
		if !ok {
			return nil, ErrTooOld
		}
		records = append(records, v.(*Record))
	}
	return records, nil
}

// NewWaiter returns a waiter that fires on the next publish.
func (f *Feed) NewWaiter() co.Waiter {
	return f.signal.NewWaiter()
}
