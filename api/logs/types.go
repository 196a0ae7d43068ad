// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package logs

import (
	"math"

	"github.com/ethereum/go-ethereum/common"

	"github.com/Degis-Insurance/Degis-Core-sub000/logdb"
)

// Range is an inclusive range of fact timestamps. A missing bound is open.
type Range struct {
	From *uint64 `json:"from,omitempty"`
	To   *uint64 `json:"to,omitempty"`
}

type Options struct {
	Offset uint64 `json:"offset"`
	Limit  uint64 `json:"limit"`
}

type FactFilter struct {
	Pool    *uint64         `json:"pool,omitempty"`
	Account *common.Address `json:"account,omitempty"`
	Names   []string        `json:"names,omitempty"`
	Range   *Range          `json:"range,omitempty"`
	Options *Options        `json:"options,omitempty"`
	Order   logdb.Order     `json:"order,omitempty"`
}

func convertFilter(f *FactFilter) *logdb.Filter {
	filter := &logdb.Filter{
		Pool:    f.Pool,
		Account: f.Account,
		Names:   f.Names,
		Order:   f.Order,
	}
	if f.Range != nil {
		// sqlite integers are signed
		r := &logdb.Range{To: math.MaxInt64}
		if f.Range.From != nil {
			r.From = *f.Range.From
		}
		if f.Range.To != nil {
			r.To = *f.Range.To
		}
		filter.Range = r
	}
	if f.Options != nil {
		filter.Options = &logdb.Options{
			Offset: f.Options.Offset,
			Limit:  f.Options.Limit,
		}
	}
	return filter
}
