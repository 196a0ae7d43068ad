// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package testledger

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefault(t *testing.T) {
	l, err := NewDefault()
	require.NoError(t, err)
	defer l.Close()

	ok, err := l.Initialized()
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, LaunchTime, l.Now())
	l.Clock().Advance(10)
	assert.Equal(t, LaunchTime+10, l.Now())
	l.Clock().Set(LaunchTime)
	assert.Equal(t, LaunchTime, l.Now())

	assert.Equal(t, l.Config().Admin, l.Admin().Address)
	assert.NotNil(t, l.LogDB())
}

func TestEther(t *testing.T) {
	want, _ := new(big.Int).SetString("3000000000000000000", 10)
	assert.Equal(t, 0, Ether(3).Cmp(want))
}
