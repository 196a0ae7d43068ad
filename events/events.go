// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package events defines the facts emitted by ledger operations.
package events

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Event is a fact emitted by a successful operation.
type Event interface {
	Name() string
	Pool() uint64            // zero when the fact is not about a pool
	Account() common.Address // zero when the fact is not about an account
}

// Emitter receives facts while an operation runs.
type Emitter interface {
	Emit(ev Event)
}

type NewPoolAdded struct {
	PoolID            uint64         `json:"poolId"`
	Share             common.Address `json:"share"`
	Basic             *big.Int       `json:"basic"`
	Bonus             *big.Int       `json:"bonus"`
	DoubleRewardToken common.Address `json:"doubleRewardToken"`
}

type FarmingPoolStarted struct {
	PoolID    uint64 `json:"poolId"`
	Timestamp uint64 `json:"timestamp"`
}

type FarmingPoolStopped struct {
	PoolID    uint64 `json:"poolId"`
	Timestamp uint64 `json:"timestamp"`
}

type RateChanged struct {
	PoolID uint64   `json:"poolId"`
	Basic  *big.Int `json:"basic"`
	Bonus  *big.Int `json:"bonus"`
}

type PoolUpdated struct {
	PoolID            uint64   `json:"poolId"`
	AccRewardPerShare *big.Int `json:"accRewardPerShare"`
	AccBonusPerShare  *big.Int `json:"accBonusPerShare"`
}

type PiecewiseSet struct {
	PoolID     uint64     `json:"poolId"`
	Thresholds []*big.Int `json:"thresholds"`
	Speeds     []*big.Int `json:"speeds"`
}

type StartTimestampChanged struct {
	Timestamp uint64 `json:"timestamp"`
}

type Staked struct {
	User   common.Address `json:"user"`
	PoolID uint64         `json:"poolId"`
	Amount *big.Int       `json:"amount"`
}

type Withdrawn struct {
	User   common.Address `json:"user"`
	PoolID uint64         `json:"poolId"`
	Amount *big.Int       `json:"amount"`
}

type Harvested struct {
	User      common.Address `json:"user"`
	Recipient common.Address `json:"recipient"`
	PoolID    uint64         `json:"poolId"`
	Amount    *big.Int       `json:"amount"`
}

type BonusUpdated struct {
	User       common.Address `json:"user"`
	PoolID     uint64         `json:"poolId"`
	OldWeight  *big.Int       `json:"oldWeight"`
	NewWeight  *big.Int       `json:"newWeight"`
	ExtraAdded *big.Int       `json:"extraAdded"`
}

type Paused struct {
	Component common.Address `json:"component"`
	By        common.Address `json:"by"`
}

type Unpaused struct {
	Component common.Address `json:"component"`
	By        common.Address `json:"by"`
}

type NewRewardTokenAdded struct {
	Token common.Address `json:"token"`
	Share common.Address `json:"share"`
}

type RewardSpeedSet struct {
	Share common.Address `json:"share"`
	Token common.Address `json:"token"`
	Speed *big.Int       `json:"speed"`
}

type ClaimableSet struct {
	Token common.Address `json:"token"`
	Real  common.Address `json:"real"`
}

type RewardClaimed struct {
	Token  common.Address `json:"token"`
	User   common.Address `json:"user"`
	Amount *big.Int       `json:"amount"`
}

type Deposited struct {
	User   common.Address `json:"user"`
	Amount *big.Int       `json:"amount"`
}

type DepositedMaxTime struct {
	User      common.Address `json:"user"`
	Amount    *big.Int       `json:"amount"`
	LockUntil uint64         `json:"lockUntil"`
}

type GovWithdrawn struct {
	User   common.Address `json:"user"`
	Amount *big.Int       `json:"amount"`
}

type WithdrawnLocked struct {
	User   common.Address `json:"user"`
	Amount *big.Int       `json:"amount"`
}

type Claimed struct {
	User   common.Address `json:"user"`
	Amount *big.Int       `json:"amount"`
}

type Burned struct {
	User   common.Address `json:"user"`
	Amount *big.Int       `json:"amount"`
}

type Locked struct {
	User      common.Address `json:"user"`
	Amount    *big.Int       `json:"amount"`
	LockUntil uint64         `json:"lockUntil"`
}

type Unlocked struct {
	User   common.Address `json:"user"`
	Amount *big.Int       `json:"amount"`
}

type Transfer struct {
	Token  common.Address `json:"token"`
	From   common.Address `json:"from"`
	To     common.Address `json:"to"`
	Amount *big.Int       `json:"amount"`
}

func (NewPoolAdded) Name() string          { return "NewPoolAdded" }
func (FarmingPoolStarted) Name() string    { return "FarmingPoolStarted" }
func (FarmingPoolStopped) Name() string    { return "FarmingPoolStopped" }
func (RateChanged) Name() string           { return "RateChanged" }
func (PoolUpdated) Name() string           { return "PoolUpdated" }
func (PiecewiseSet) Name() string          { return "PiecewiseSet" }
func (StartTimestampChanged) Name() string { return "StartTimestampChanged" }
func (Staked) Name() string                { return "Stake" }
func (Withdrawn) Name() string             { return "Withdraw" }
func (Harvested) Name() string             { return "Harvest" }
func (BonusUpdated) Name() string          { return "BonusUpdated" }
func (Paused) Name() string                { return "Paused" }
func (Unpaused) Name() string              { return "Unpaused" }
func (NewRewardTokenAdded) Name() string   { return "NewRewardTokenAdded" }
func (RewardSpeedSet) Name() string        { return "RewardSpeedSet" }
func (ClaimableSet) Name() string          { return "ClaimableSet" }
func (RewardClaimed) Name() string         { return "RewardClaimed" }
func (Deposited) Name() string             { return "Deposit" }
func (DepositedMaxTime) Name() string      { return "DepositMaxTime" }
func (GovWithdrawn) Name() string          { return "GovWithdraw" }
func (WithdrawnLocked) Name() string       { return "WithdrawLocked" }
func (Claimed) Name() string               { return "Claimed" }
func (Burned) Name() string                { return "BurnVeDEG" }
func (Locked) Name() string                { return "LockVeDEG" }
func (Unlocked) Name() string              { return "UnlockVeDEG" }
func (Transfer) Name() string              { return "Transfer" }

func (e NewPoolAdded) Pool() uint64        { return e.PoolID }
func (e FarmingPoolStarted) Pool() uint64  { return e.PoolID }
func (e FarmingPoolStopped) Pool() uint64  { return e.PoolID }
func (e RateChanged) Pool() uint64         { return e.PoolID }
func (e PoolUpdated) Pool() uint64         { return e.PoolID }
func (e PiecewiseSet) Pool() uint64        { return e.PoolID }
func (StartTimestampChanged) Pool() uint64 { return 0 }
func (e Staked) Pool() uint64              { return e.PoolID }
func (e Withdrawn) Pool() uint64           { return e.PoolID }
func (e Harvested) Pool() uint64           { return e.PoolID }
func (e BonusUpdated) Pool() uint64        { return e.PoolID }
func (Paused) Pool() uint64                { return 0 }
func (Unpaused) Pool() uint64              { return 0 }
func (NewRewardTokenAdded) Pool() uint64   { return 0 }
func (RewardSpeedSet) Pool() uint64        { return 0 }
func (ClaimableSet) Pool() uint64          { return 0 }
func (RewardClaimed) Pool() uint64         { return 0 }
func (Deposited) Pool() uint64             { return 0 }
func (DepositedMaxTime) Pool() uint64      { return 0 }
func (GovWithdrawn) Pool() uint64          { return 0 }
func (WithdrawnLocked) Pool() uint64       { return 0 }
func (Claimed) Pool() uint64               { return 0 }
func (Burned) Pool() uint64                { return 0 }
func (Locked) Pool() uint64                { return 0 }
func (Unlocked) Pool() uint64              { return 0 }
func (Transfer) Pool() uint64              { return 0 }

func (NewPoolAdded) Account() common.Address          { return common.Address{} }
func (FarmingPoolStarted) Account() common.Address    { return common.Address{} }
func (FarmingPoolStopped) Account() common.Address    { return common.Address{} }
func (RateChanged) Account() common.Address           { return common.Address{} }
func (PoolUpdated) Account() common.Address           { return common.Address{} }
func (PiecewiseSet) Account() common.Address          { return common.Address{} }
func (StartTimestampChanged) Account() common.Address { return common.Address{} }
func (e Staked) Account() common.Address              { return e.User }
func (e Withdrawn) Account() common.Address           { return e.User }
func (e Harvested) Account() common.Address           { return e.User }
func (e BonusUpdated) Account() common.Address        { return e.User }
func (e Paused) Account() common.Address              { return e.By }
func (e Unpaused) Account() common.Address            { return e.By }
func (NewRewardTokenAdded) Account() common.Address   { return common.Address{} }
func (RewardSpeedSet) Account() common.Address        { return common.Address{} }
func (ClaimableSet) Account() common.Address          { return common.Address{} }
func (e RewardClaimed) Account() common.Address       { return e.User }
func (e Deposited) Account() common.Address           { return e.User }
func (e DepositedMaxTime) Account() common.Address    { return e.User }
func (e GovWithdrawn) Account() common.Address        { return e.User }
func (e WithdrawnLocked) Account() common.Address     { return e.User }
func (e Claimed) Account() common.Address             { return e.User }
func (e Burned) Account() common.Address              { return e.User }
func (e Locked) Account() common.Address              { return e.User }
func (e Unlocked) Account() common.Address            { return e.User }
func (e Transfer) Account() common.Address            { return e.From }
