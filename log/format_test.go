// Copyright 2017 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package log

import (
	"bytes"
	"log/slog"
	"math/big"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
)

var sink []byte

func BenchmarkPrettyInt64Logfmt(b *testing.B) {
	buf := make([]byte, 100)
	b.ReportAllocs()
	for b.Loop() {
		sink = appendInt64(buf, rand.Int64()) //#nosec G404
	}
}

func BenchmarkPrettyUint64Logfmt(b *testing.B) {
	buf := make([]byte, 100)
	b.ReportAllocs()
	for b.Loop() {
		sink = appendUint64(buf, rand.Uint64(), false) //#nosec G404
	}
}

func TestPrettyNumbers(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{int64(12), "12"},
		{int64(-1234567), "-1,234,567"},
		{uint64(100000), "100,000"},
		{big.NewInt(5_000_000), "5,000,000"},
		{new(big.Int).Exp(big.NewInt(10), big.NewInt(20), nil), "100,000,000,000,000,000,000"},
		{uint256.NewInt(999), "999"},
	}
	for _, tt := range tests {
		got := string(FormatSlogValue(slog.AnyValue(tt.in), nil))
		assert.Equal(t, tt.want, got)
	}
}

func TestTerminalHandler(t *testing.T) {
	out := new(bytes.Buffer)
	var lvl slog.LevelVar
	lvl.Set(LevelInfo)
	l := NewLogger(NewTerminalHandlerWithLevel(out, &lvl, false))

	l.Debug("hidden")
	l.Info("pool caught up", "pool", 1, "acc", big.NewInt(1234567))

	line := out.String()
	assert.True(t, strings.HasPrefix(line, "INFO ["))
	assert.Contains(t, line, "pool caught up")
	assert.Contains(t, line, "pool=1")
	assert.Contains(t, line, "acc=1,234,567")
	assert.NotContains(t, line, "hidden")
}

func TestJSONHandlerReplacesBigInt(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(JSONHandler(out))
	l.Info("minted", "amount", big.NewInt(42))

	assert.Contains(t, out.String(), `"amount":"42"`)
	assert.Contains(t, out.String(), `"lvl":"info"`)
}

func TestWithContextFollowsRoot(t *testing.T) {
	pkgLogger := WithContext("pkg", "test")

	out := new(bytes.Buffer)
	prev := Root()
	SetDefault(NewLogger(LogfmtHandler(out)))
	defer SetDefault(prev)

	pkgLogger.Warn("late root")
	assert.Contains(t, out.String(), "pkg=test")
	assert.Contains(t, out.String(), "late root")
}

func TestFromLegacyLevel(t *testing.T) {
	assert.Equal(t, LevelCrit, FromLegacyLevel(0))
	assert.Equal(t, LevelInfo, FromLegacyLevel(3))
	assert.Equal(t, LevelTrace, FromLegacyLevel(5))
	assert.Equal(t, LevelTrace, FromLegacyLevel(9))
}
