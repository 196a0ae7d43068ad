// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package storage

import (
	"math"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// Counter is a monotonic uint64 sequence. The first value handed out is 1.
type Counter struct {
	raw *Raw[uint64]
}

func NewCounter(context *Context, pos common.Hash) *Counter {
	return &Counter{raw: NewRaw[uint64](context, pos)}
}

// Current returns the last value handed out, zero if none.
func (c *Counter) Current() (uint64, error) {
	return c.raw.Get()
}

// Next increments the counter and returns the new value.
func (c *Counter) Next() (uint64, error) {
	n, err := c.raw.Get()
	if err != nil {
		return 0, err
	}
	if n == math.MaxUint64 {
		return 0, errors.New("storage: counter overflow")
	}
	n++
	if err := c.raw.Upsert(n); err != nil {
		return 0, err
	}
	return n, nil
}
