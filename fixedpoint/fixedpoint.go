// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package fixedpoint holds the checked 256-bit arithmetic used by every reward accumulator.
// Accumulators are scaled by Scale so that per-share values keep precision across assets
// with different decimals.
package fixedpoint

import (
	"math/big"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

var (
	ErrOverflow   = errors.New("fixedpoint: uint256 overflow")
	ErrUnderflow  = errors.New("fixedpoint: subtraction underflow")
	ErrDivByZero  = errors.New("fixedpoint: division by zero")
	ErrNegative   = errors.New("fixedpoint: negative operand")
	errNilOperand = errors.New("fixedpoint: nil operand")
)

var (
	// Scale is the precision factor of accumulated reward per share.
	Scale = big.NewInt(1e12)
	// Wad is the 18 decimal unit used by the governance stake math.
	Wad = big.NewInt(1e18)

	halfWad = uint256.NewInt(5e17)
	wad     = uint256.NewInt(1e18)
)

func toU256(x *big.Int) (*uint256.Int, error) {
	if x == nil {
		return nil, errNilOperand
	}
	if x.Sign() < 0 {
		return nil, ErrNegative
	}
	u, overflow := uint256.FromBig(x)
	if overflow {
		return nil, ErrOverflow
	}
	return u, nil
}

func operands(xs ...*big.Int) ([]*uint256.Int, error) {
	out := make([]*uint256.Int, len(xs))
	for i, x := range xs {
		u, err := toU256(x)
		if err != nil {
			return nil, err
		}
		out[i] = u
	}
	return out, nil
}

// MulDiv returns floor(a*b/c). The intermediate product may exceed 256 bits, the result may not.
func MulDiv(a, b, c *big.Int) (*big.Int, error) {
	ops, err := operands(a, b, c)
	if err != nil {
		return nil, err
	}
	if ops[2].IsZero() {
		return nil, ErrDivByZero
	}
	z, overflow := new(uint256.Int).MulDivOverflow(ops[0], ops[1], ops[2])
	if overflow {
		return nil, ErrOverflow
	}
	return z.ToBig(), nil
}

// Mul returns a*b.
func Mul(a, b *big.Int) (*big.Int, error) {
	ops, err := operands(a, b)
	if err != nil {
		return nil, err
	}
	z, overflow := new(uint256.Int).MulOverflow(ops[0], ops[1])
	if overflow {
		return nil, ErrOverflow
	}
	return z.ToBig(), nil
}

// Add returns a+b.
func Add(a, b *big.Int) (*big.Int, error) {
	ops, err := operands(a, b)
	if err != nil {
		return nil, err
	}
	z, overflow := new(uint256.Int).AddOverflow(ops[0], ops[1])
	if overflow {
		return nil, ErrOverflow
	}
	return z.ToBig(), nil
}

// Sub returns a-b, failing when b > a.
func Sub(a, b *big.Int) (*big.Int, error) {
	ops, err := operands(a, b)
	if err != nil {
		return nil, err
	}
	z, underflow := new(uint256.Int).SubOverflow(ops[0], ops[1])
	if underflow {
		return nil, ErrUnderflow
	}
	return z.ToBig(), nil
}

// SubFloor returns max(a-b, 0).
func SubFloor(a, b *big.Int) *big.Int {
	if a.Cmp(b) <= 0 {
		return new(big.Int)
	}
	return new(big.Int).Sub(a, b)
}

// Min returns a copy of the smaller value.
func Min(a, b *big.Int) *big.Int {
	if a.Cmp(b) <= 0 {
		return new(big.Int).Set(a)
	}
	return new(big.Int).Set(b)
}

// SqrtMul returns floor(sqrt(a*b)). The product is computed exactly without a 256-bit bound.
func SqrtMul(a, b *big.Int) *big.Int {
	if a.Sign() <= 0 || b.Sign() <= 0 {
		return new(big.Int)
	}
	p := new(big.Int).Mul(a, b)
	return p.Sqrt(p)
}

// WMul multiplies two 18 decimal values, rounding half up: (a*b + 0.5e18) / 1e18.
func WMul(a, b *big.Int) (*big.Int, error) {
	ops, err := operands(a, b)
	if err != nil {
		return nil, err
	}
	z, overflow := new(uint256.Int).MulOverflow(ops[0], ops[1])
	if overflow {
		return nil, ErrOverflow
	}
	if _, overflow = z.AddOverflow(z, halfWad); overflow {
		return nil, ErrOverflow
	}
	return z.Div(z, wad).ToBig(), nil
}

// Scaled returns floor(amount*Scale/supply), the per-share increment of an accumulator.
func Scaled(amount, supply *big.Int) (*big.Int, error) {
	return MulDiv(amount, Scale, supply)
}

// Unscaled returns floor(balance*acc/Scale).
func Unscaled(balance, acc *big.Int) (*big.Int, error) {
	return MulDiv(balance, acc, Scale)
}
