// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package storage

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// Uint256 is a wrapper for storage and retrieval of an uint256.
// Values are kept as big-endian bytes with leading zeros trimmed.
type Uint256 struct {
	context *Context
	pos     common.Hash
}

func NewUint256(context *Context, pos common.Hash) *Uint256 {
	return &Uint256{context: context, pos: pos}
}

func (u *Uint256) Get() (value *big.Int, err error) {
	value = new(big.Int)
	err = u.context.load(u.pos, func(raw []byte) error {
		value.SetBytes(raw)
		return nil
	})
	return
}

func (u *Uint256) Set(value *big.Int) error {
	if value.Sign() < 0 || value.BitLen() > 256 {
		return errors.Errorf("storage: uint256 out of range: %v", value)
	}
	return u.context.store(u.pos, func() ([]byte, error) {
		return value.Bytes(), nil
	})
}

func (u *Uint256) Add(value *big.Int) error {
	v, err := u.Get()
	if err != nil {
		return err
	}
	return u.Set(v.Add(v, value))
}

func (u *Uint256) Sub(value *big.Int) error {
	v, err := u.Get()
	if err != nil {
		return err
	}
	if v.Cmp(value) < 0 {
		return errors.Errorf("storage: uint256 underflow: %v - %v", v, value)
	}
	return u.Set(v.Sub(v, value))
}
