// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package storage

// Meter counts slot accesses. A nil meter counts nothing.
type Meter struct {
	loads  uint64
	stores uint64
}

func NewMeter() *Meter {
	return &Meter{}
}

// slots rounds the value size up to 32-byte words, minimum one.
func slots(size int) uint64 {
	if size == 0 {
		return 1
	}
	return (uint64(size) + 31) / 32
}

func (m *Meter) load(size int) {
	if m != nil {
		m.loads += slots(size)
	}
}

func (m *Meter) store(size int) {
	if m != nil {
		m.stores += slots(size)
	}
}

// Loads returns the number of slots read since the last reset.
func (m *Meter) Loads() uint64 {
	return m.loads
}

// Stores returns the number of slots written since the last reset.
func (m *Meter) Stores() uint64 {
	return m.stores
}

// Reset clears both counters and returns their previous values.
func (m *Meter) Reset() (loads, stores uint64) {
	loads, stores = m.loads, m.stores
	m.loads, m.stores = 0, 0
	return
}
