// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package storage

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
)

var (
	errKeyExists   = errors.New("storage: key already exists")
	errKeyNotFound = errors.New("storage: key not found")
)

type Key interface {
	Bytes() []byte
}

// Mapping is a key/value storage abstraction, similar to the mapping in Solidity.
// Values are rlp encoded and stored at keccak256(key, base).
type Mapping[K Key, V any] struct {
	context *Context
	basePos common.Hash
}

func NewMapping[K Key, V any](context *Context, pos common.Hash) *Mapping[K, V] {
	return &Mapping[K, V]{context: context, basePos: pos}
}

func (m *Mapping[K, V]) position(key K) common.Hash {
	return crypto.Keccak256Hash(key.Bytes(), m.basePos.Bytes())
}

// Get returns the value of key, or the zero value of V if absent.
func (m *Mapping[K, V]) Get(key K) (value V, err error) {
	err = m.context.load(m.position(key), func(raw []byte) error {
		if len(raw) == 0 {
			return nil
		}
		return rlp.DecodeBytes(raw, &value)
	})
	return
}

// Exists returns whether a value has been stored for key.
func (m *Mapping[K, V]) Exists(key K) (bool, error) {
	return m.context.state.Has(m.context.key(m.position(key)))
}

// Set stores value for key regardless of whether it exists.
func (m *Mapping[K, V]) Set(key K, value V) error {
	return m.context.store(m.position(key), func() ([]byte, error) {
		return rlp.EncodeToBytes(value)
	})
}

// Insert stores value for a key that must not exist yet.
func (m *Mapping[K, V]) Insert(key K, value V) error {
	exists, err := m.Exists(key)
	if err != nil {
		return err
	}
	if exists {
		return errKeyExists
	}
	return m.Set(key, value)
}

// Update stores value for a key that must already exist.
func (m *Mapping[K, V]) Update(key K, value V) error {
	exists, err := m.Exists(key)
	if err != nil {
		return err
	}
	if !exists {
		return errKeyNotFound
	}
	return m.Set(key, value)
}

// Delete clears the value of key.
func (m *Mapping[K, V]) Delete(key K) error {
	return m.context.store(m.position(key), func() ([]byte, error) {
		return nil, nil
	})
}
