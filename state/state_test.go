// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Degis-Insurance/Degis-Core-sub000/lvldb"
)

func newMemState(t *testing.T) (*State, *lvldb.LevelDB) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db), db
}

func TestStateReadWrite(t *testing.T) {
	st, db := newMemState(t)
	require.NoError(t, db.Put([]byte("k1"), []byte("persisted")))

	v, err := st.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("persisted"), v)

	v, err = st.Get([]byte("missing"))
	require.NoError(t, err)
	assert.Empty(t, v)

	st.Put([]byte("k1"), []byte("changed"))
	v, err = st.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("changed"), v)

	has, err := st.Has([]byte("k1"))
	require.NoError(t, err)
	assert.True(t, has)
}

func TestStateRevert(t *testing.T) {
	st, _ := newMemState(t)

	st.Put([]byte("a"), []byte{1})
	cp := st.NewCheckpoint()
	st.Put([]byte("a"), []byte{2})
	st.Put([]byte("b"), []byte{3})

	st.RevertTo(cp)

	v, err := st.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, v)

	has, err := st.Has([]byte("b"))
	require.NoError(t, err)
	assert.False(t, has)
}

func TestStateCommit(t *testing.T) {
	st, db := newMemState(t)
	require.NoError(t, db.Put([]byte("gone"), []byte("x")))

	st.Put([]byte("a"), []byte{1})
	st.Put([]byte("a"), []byte{2})
	st.Put([]byte("gone"), nil)

	bulk := db.Bulk()
	n, err := st.Commit(bulk)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.NoError(t, bulk.Write())
	st.Reset()

	assert.Empty(t, st.Changes())

	v, err := db.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte{2}, v)

	has, err := db.Has([]byte("gone"))
	require.NoError(t, err)
	assert.False(t, has)

	v, err = st.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte{2}, v)
}

func TestStateCodec(t *testing.T) {
	st, _ := newMemState(t)
	key := []byte("slot")

	require.NoError(t, st.EncodeStorage(key, func() ([]byte, error) {
		return rlp.EncodeToBytes(uint64(42))
	}))

	var got uint64
	require.NoError(t, st.DecodeStorage(key, func(raw []byte) error {
		return rlp.DecodeBytes(raw, &got)
	}))
	assert.Equal(t, uint64(42), got)
}
