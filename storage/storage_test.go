// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package storage

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Degis-Insurance/Degis-Core-sub000/lvldb"
	"github.com/Degis-Insurance/Degis-Core-sub000/state"
)

type TestStruct struct {
	Field1 uint64
	Field2 *big.Int
	Addr1  common.Address
}

func newContext(t *testing.T) *Context {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewContext(common.Address{1}, state.New(db), NewMeter())
}

func TestMapping(t *testing.T) {
	ctx := newContext(t)
	m := NewMapping[common.Address, *TestStruct](ctx, Slot("structs"))
	key := common.Address{0xaa}

	v, err := m.Get(key)
	require.NoError(t, err)
	assert.Nil(t, v)

	assert.ErrorIs(t, m.Update(key, &TestStruct{}), errKeyNotFound)

	value := &TestStruct{Field1: 100, Field2: big.NewInt(200), Addr1: common.Address{2}}
	require.NoError(t, m.Insert(key, value))
	assert.ErrorIs(t, m.Insert(key, value), errKeyExists)

	v, err = m.Get(key)
	require.NoError(t, err)
	assert.Equal(t, value, v)

	value.Field1 = 101
	require.NoError(t, m.Update(key, value))
	v, err = m.Get(key)
	require.NoError(t, err)
	assert.Equal(t, uint64(101), v.Field1)

	require.NoError(t, m.Delete(key))
	exists, err := m.Exists(key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMappingSlotsAreDistinct(t *testing.T) {
	ctx := newContext(t)
	a := NewMapping[Uint64, uint64](ctx, Slot("a"))
	b := NewMapping[Uint64, uint64](ctx, Slot("b"))

	require.NoError(t, a.Set(Uint64(1), 10))
	require.NoError(t, b.Set(Uint64(1), 20))

	va, err := a.Get(Uint64(1))
	require.NoError(t, err)
	vb, err := b.Get(Uint64(1))
	require.NoError(t, err)
	assert.Equal(t, uint64(10), va)
	assert.Equal(t, uint64(20), vb)

	other := NewContext(common.Address{2}, ctx.State(), nil)
	vo, err := NewMapping[Uint64, uint64](other, Slot("a")).Get(Uint64(1))
	require.NoError(t, err)
	assert.Zero(t, vo)
}

func TestRaw(t *testing.T) {
	ctx := newContext(t)
	r := NewRaw[common.Address](ctx, Slot("admin"))

	v, err := r.Get()
	require.NoError(t, err)
	assert.Equal(t, common.Address{}, v)

	require.NoError(t, r.Upsert(common.Address{7}))
	v, err = r.Get()
	require.NoError(t, err)
	assert.Equal(t, common.Address{7}, v)
}

func TestUint256(t *testing.T) {
	ctx := newContext(t)
	u := NewUint256(ctx, Slot("total"))

	require.NoError(t, u.Set(big.NewInt(1000)))
	value, err := u.Get()
	assert.NoError(t, err)
	assert.Equal(t, big.NewInt(1000), value)

	require.NoError(t, u.Add(big.NewInt(500)))
	value, err = u.Get()
	assert.NoError(t, err)
	assert.Equal(t, big.NewInt(1500), value)

	require.NoError(t, u.Sub(big.NewInt(200)))
	value, err = u.Get()
	assert.NoError(t, err)
	assert.Equal(t, big.NewInt(1300), value)

	assert.Error(t, u.Sub(big.NewInt(1301)))
	assert.Error(t, u.Set(big.NewInt(-1)))
	assert.Error(t, u.Set(new(big.Int).Lsh(big.NewInt(1), 256)))
}

func TestCounter(t *testing.T) {
	ctx := newContext(t)
	c := NewCounter(ctx, Slot("ids"))

	cur, err := c.Current()
	require.NoError(t, err)
	assert.Zero(t, cur)

	for want := uint64(1); want <= 3; want++ {
		n, err := c.Next()
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}
}

func TestMeter(t *testing.T) {
	ctx := newContext(t)
	u := NewUint256(ctx, Slot("x"))

	require.NoError(t, u.Set(big.NewInt(1)))
	_, err := u.Get()
	require.NoError(t, err)

	loads, stores := ctx.meter.Reset()
	assert.Equal(t, uint64(1), loads)
	assert.Equal(t, uint64(1), stores)
	assert.Zero(t, ctx.meter.Loads())
	assert.Zero(t, ctx.meter.Stores())
}

func TestRevertRestoresSlots(t *testing.T) {
	ctx := newContext(t)
	u := NewUint256(ctx, Slot("x"))
	require.NoError(t, u.Set(big.NewInt(5)))

	cp := ctx.State().NewCheckpoint()
	require.NoError(t, u.Add(big.NewInt(5)))
	ctx.State().RevertTo(cp)

	v, err := u.Get()
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(5), v)
}
