// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package logdb

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
)

type Order string

const (
	ASC  Order = "asc"
	DESC Order = "desc"
)

// Fact is a committed fact as stored in db.
type Fact struct {
	Seq     uint64          `json:"seq"`
	Time    uint64          `json:"time"`
	Name    string          `json:"name"`
	Pool    uint64          `json:"pool"`
	Account common.Address  `json:"account"`
	Data    json.RawMessage `json:"data"`
}

// Range is an inclusive time range.
type Range struct {
	From uint64
	To   uint64
}

type Options struct {
	Offset uint64
	Limit  uint64
}

// Filter narrows a fact query. Nil or empty fields match everything.
type Filter struct {
	Pool    *uint64
	Account *common.Address
	Names   []string
	Range   *Range
	Options *Options
	Order   Order // default asc
}
