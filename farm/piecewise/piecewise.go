// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package piecewise maps a pool's total share supply to its basic reward rate.
//
// Thresholds start at zero and strictly increase. Speeds[i] applies while the supply
// is in [Thresholds[i], Thresholds[i+1]), the last speed applies at or above the last
// threshold.
package piecewise

import (
	"math/big"

	"github.com/Degis-Insurance/Degis-Core-sub000/farm/reverts"
)

// Validate checks a curve. An empty pair is valid and clears the curve.
func Validate(thresholds, speeds []*big.Int) error {
	if len(thresholds) != len(speeds) {
		return reverts.New(reverts.InvalidConfiguration, "thresholds and speeds length mismatch")
	}
	if len(thresholds) == 0 {
		return nil
	}
	if thresholds[0] == nil || thresholds[0].Sign() != 0 {
		return reverts.New(reverts.InvalidConfiguration, "first threshold must be zero")
	}
	for i := 1; i < len(thresholds); i++ {
		if thresholds[i] == nil || thresholds[i].Cmp(thresholds[i-1]) <= 0 {
			return reverts.Newf(reverts.InvalidConfiguration, "threshold %d is not increasing", i)
		}
	}
	for i, s := range speeds {
		if s == nil || s.Sign() <= 0 {
			return reverts.Newf(reverts.InvalidConfiguration, "speed %d must be positive", i)
		}
	}
	return nil
}

// Level returns the highest index whose threshold is at or below supply.
func Level(thresholds []*big.Int, supply *big.Int) uint64 {
	for i := len(thresholds) - 1; i > 0; i-- {
		if supply.Cmp(thresholds[i]) >= 0 {
			return uint64(i)
		}
	}
	return 0
}

// Adjust evaluates the curve against supply starting from the current level.
// The level moves when supply reached the next threshold or fell below the current one,
// and is then derived from scratch so one change can cross several brackets.
// It returns the new level and rate, and whether they changed.
func Adjust(thresholds, speeds []*big.Int, level uint64, supply *big.Int) (uint64, *big.Int, bool) {
	n := uint64(len(thresholds))
	if n == 0 {
		return level, nil, false
	}

	rescan := level >= n ||
		(level < n-1 && supply.Cmp(thresholds[level+1]) >= 0) ||
		supply.Cmp(thresholds[level]) < 0
	if !rescan {
		return level, nil, false
	}

	newLevel := Level(thresholds, supply)
	return newLevel, new(big.Int).Set(speeds[newLevel]), true
}
