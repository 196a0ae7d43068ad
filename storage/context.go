// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package storage

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/Degis-Insurance/Degis-Core-sub000/state"
)

// Context binds typed storage slots to the account that owns them.
type Context struct {
	address common.Address
	state   *state.State
	meter   *Meter
}

func NewContext(address common.Address, state *state.State, meter *Meter) *Context {
	return &Context{
		address: address,
		state:   state,
		meter:   meter,
	}
}

func (c *Context) Address() common.Address {
	return c.address
}

func (c *Context) State() *state.State {
	return c.state
}

// key returns the state key of the given slot, which is the owner address followed by the slot.
func (c *Context) key(slot common.Hash) []byte {
	k := make([]byte, 0, common.AddressLength+common.HashLength)
	k = append(k, c.address.Bytes()...)
	return append(k, slot.Bytes()...)
}

func (c *Context) load(slot common.Hash, dec func([]byte) error) error {
	return c.state.DecodeStorage(c.key(slot), func(raw []byte) error {
		c.meter.load(len(raw))
		return dec(raw)
	})
}

func (c *Context) store(slot common.Hash, enc func() ([]byte, error)) error {
	return c.state.EncodeStorage(c.key(slot), func() ([]byte, error) {
		raw, err := enc()
		if err != nil {
			return nil, err
		}
		c.meter.store(len(raw))
		return raw, nil
	})
}

// Slot derives a fixed slot from a name.
func Slot(name string) common.Hash {
	return common.BytesToHash([]byte(name))
}
