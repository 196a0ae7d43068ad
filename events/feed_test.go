// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package events

import (
	"encoding/json"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {
	var b Buffer
	b.Emit(Staked{User: common.Address{1}, PoolID: 1, Amount: big.NewInt(1)})
	n := b.Len()
	b.Emit(PoolUpdated{PoolID: 1})
	b.Truncate(n)
	assert.Equal(t, 1, b.Len())

	evs := b.Take()
	assert.Len(t, evs, 1)
	assert.Equal(t, "Stake", evs[0].Name())
	assert.Zero(t, b.Len())
}

func TestFeedSince(t *testing.T) {
	feed := NewFeed(3, 0)

	records := feed.Publish([]Event{
		StartTimestampChanged{Timestamp: 1},
		StartTimestampChanged{Timestamp: 2},
	}, 10)
	require.Len(t, records, 2)
	assert.Equal(t, uint64(1), records[0].Seq)
	assert.Equal(t, uint64(2), feed.Last())

	got, err := feed.Since(0, 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = feed.Since(1, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint64(2), got[0].Seq)

	feed.Publish([]Event{StartTimestampChanged{Timestamp: 3}, StartTimestampChanged{Timestamp: 4}}, 11)

	// record 1 was evicted
	_, err = feed.Since(0, 0)
	assert.ErrorIs(t, err, ErrTooOld)

	got, err = feed.Since(1, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	assert.Nil(t, feed.Publish(nil, 12))
}

func TestFeedWaiter(t *testing.T) {
	feed := NewFeed(10, 5)
	w := feed.NewWaiter()

	go feed.Publish([]Event{Paused{By: common.Address{1}}}, 1)

	select {
	case <-w.C():
	case <-time.After(time.Second):
		t.Fatal("waiter not woken")
	}
	assert.Equal(t, uint64(5), feed.Last())
}

func TestRecordJSON(t *testing.T) {
	rec := &Record{Seq: 7, Time: 100, Event: Harvested{
		User:      common.Address{1},
		Recipient: common.Address{2},
		PoolID:    3,
		Amount:    big.NewInt(25),
	}}
	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "Harvest", m["name"])
	assert.Equal(t, float64(3), m["pool"])
	assert.Equal(t, common.Address{1}.Hex(), m["account"])
	assert.Equal(t, float64(25), m["data"].(map[string]any)["amount"])
}
