// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"
)

// HexOrDecimal256 marshals big.Int as hex or decimal.
// It accepts both quoted and bare numbers in json, and any scalar in yaml.
type HexOrDecimal256 math.HexOrDecimal256

// NewHexOrDecimal256 wraps a copy of v.
func NewHexOrDecimal256(v *big.Int) *HexOrDecimal256 {
	h := HexOrDecimal256(*new(big.Int).Set(v))
	return &h
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (i *HexOrDecimal256) UnmarshalJSON(input []byte) error {
	var hex string
	if err := json.Unmarshal(input, &hex); err != nil {
		if err = (*big.Int)(i).UnmarshalJSON(input); err != nil {
			return err
		}
		return nil
	}
	return i.UnmarshalText([]byte(hex))
}

// UnmarshalText implements encoding.TextUnmarshaler, used by the yaml decoder.
func (i *HexOrDecimal256) UnmarshalText(input []byte) error {
	bigint, ok := math.ParseBig256(string(input))
	if !ok {
		return fmt.Errorf("invalid hex or decimal integer %q", input)
	}
	*i = HexOrDecimal256(*bigint)
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (i HexOrDecimal256) MarshalJSON() ([]byte, error) {
	decimal256 := math.HexOrDecimal256(i)
	text, err := decimal256.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// Int returns the value as big.Int. A nil receiver yields zero.
func (i *HexOrDecimal256) Int() *big.Int {
	if i == nil {
		return new(big.Int)
	}
	return new(big.Int).Set((*big.Int)(i))
}
