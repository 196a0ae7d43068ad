// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package utils

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/pkg/errors"
)

// Amount converts v into its JSON form. A nil value renders as zero.
func Amount(v *big.Int) *math.HexOrDecimal256 {
	if v == nil {
		v = new(big.Int)
	}
	return (*math.HexOrDecimal256)(new(big.Int).Set(v))
}

// Amounts converts a list of values into their JSON form.
func Amounts(vs []*big.Int) []*math.HexOrDecimal256 {
	out := make([]*math.HexOrDecimal256, 0, len(vs))
	for _, v := range vs {
		out = append(out, Amount(v))
	}
	return out
}

// BigInt returns the value of a decoded amount. A missing amount is an error.
func BigInt(name string, v *math.HexOrDecimal256) (*big.Int, error) {
	if v == nil {
		return nil, errors.Errorf("%s: required", name)
	}
	return (*big.Int)(v), nil
}

// BigInts returns the values of a decoded amount list.
func BigInts(name string, vs []*math.HexOrDecimal256) ([]*big.Int, error) {
	out := make([]*big.Int, 0, len(vs))
	for i, v := range vs {
		b, err := BigInt(name, v)
		if err != nil {
			return nil, errors.WithMessagef(err, "index %d", i)
		}
		out = append(out, b)
	}
	return out, nil
}

// OptionalAddress returns nil for the zero address.
func OptionalAddress(addr common.Address) *common.Address {
	if addr == (common.Address{}) {
		return nil
	}
	return &addr
}

// Receipt is the response of an operation that pays out.
type Receipt struct {
	Paid *math.HexOrDecimal256 `json:"paid"`
}

// CallerRequest is the body of an operation that takes no argument but the caller.
type CallerRequest struct {
	Caller common.Address `json:"caller"`
}

// AmountRequest is the body of an operation moving an amount on behalf of the caller.
type AmountRequest struct {
	Caller common.Address        `json:"caller"`
	Amount *math.HexOrDecimal256 `json:"amount"`
}
