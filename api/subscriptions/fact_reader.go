// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package subscriptions

import (
	"github.com/Degis-Insurance/Degis-Core-sub000/co"
	"github.com/Degis-Insurance/Degis-Core-sub000/events"
)

const readBatchSize = 64

type msgReader interface {
	// Read returns the next batch of messages and whether more are ready.
	Read() ([]any, bool, error)
	// Waiter fires once new messages may be available.
	Waiter() co.Waiter
}

type factReader struct {
	feed *events.Feed
	pos  uint64
}

func newFactReader(feed *events.Feed, pos uint64) *factReader {
	return &factReader{feed, pos}
}

func (r *factReader) Read() ([]any, bool, error) {
	records, err := r.feed.Since(r.pos, readBatchSize)
	if err != nil {
		return nil, false, err
	}
	msgs := make([]any, 0, len(records))
	for _, rec := range records {
		msgs = append(msgs, rec)
		r.pos = rec.Seq
	}
	return msgs, r.pos < r.feed.Last(), nil
}

func (r *factReader) Waiter() co.Waiter {
	return r.feed.NewWaiter()
}
