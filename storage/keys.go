// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package storage

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Uint64 is a mapping key for integer ids.
type Uint64 uint64

func (u Uint64) Bytes() []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(u))
	return b[:]
}

// PairKey derives a single mapping key from two addresses, as a nested mapping would.
func PairKey(a, b common.Address) common.Hash {
	return crypto.Keccak256Hash(a.Bytes(), b.Bytes())
}

// IDAddressKey derives a single mapping key from an id and an address.
func IDAddressKey(id uint64, addr common.Address) common.Hash {
	return crypto.Keccak256Hash(Uint64(id).Bytes(), addr.Bytes())
}
