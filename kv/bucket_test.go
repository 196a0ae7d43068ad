// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package kv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errNotFound = errors.New("not found")

type mem map[string]string

func (m mem) Get(k []byte) ([]byte, error) {
	if v, ok := m[string(k)]; ok {
		return []byte(v), nil
	}
	return nil, errNotFound
}

func (m mem) Has(k []byte) (bool, error) {
	_, ok := m[string(k)]
	return ok, nil
}

func (m mem) Put(k, v []byte) error {
	m[string(k)] = string(v)
	return nil
}

func (m mem) Delete(k []byte) error {
	delete(m, string(k))
	return nil
}

func (m mem) IsNotFound(err error) bool {
	return err == errNotFound
}

func TestBucketGetter(t *testing.T) {
	m := mem{"s/pool1": "a", "s/pool2": "b", "meta": "c"}

	tests := []struct {
		b       Bucket
		key     string
		want    string
		wantHas bool
	}{
		{Bucket(""), "meta", "c", true},
		{Bucket("s/"), "pool1", "a", true},
		{Bucket("s/"), "pool2", "b", true},
		{Bucket("s/"), "meta", "", false},
		{Bucket("s/pool1"), "", "a", true},
	}
	for _, tt := range tests {
		getter := tt.b.NewGetter(m)
		got, err := getter.Get([]byte(tt.key))
		if tt.wantHas {
			assert.NoError(t, err)
		} else {
			assert.True(t, getter.IsNotFound(err))
		}
		assert.Equal(t, tt.want, string(got))

		has, err := getter.Has([]byte(tt.key))
		assert.NoError(t, err)
		assert.Equal(t, tt.wantHas, has)
	}
}

func TestBucketPutter(t *testing.T) {
	m := mem{}
	putter := Bucket("s/").NewPutter(m)

	assert.NoError(t, putter.Put([]byte("x"), []byte("1")))
	assert.Equal(t, mem{"s/x": "1"}, m)

	assert.NoError(t, putter.Delete([]byte("x")))
	assert.Empty(t, m)
}
