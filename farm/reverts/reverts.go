// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package reverts

import (
	"errors"
	"fmt"
)

// Kind classifies a rejected operation.
type Kind uint8

const (
	Unknown Kind = iota
	InvalidConfiguration
	InsufficientBalance
	ZeroAmount
	NotClaimableYet
	Unauthorized
	Paused
	Reentrancy
	NotFound
)

var kindNames = [...]string{
	Unknown:              "Unknown",
	InvalidConfiguration: "InvalidConfiguration",
	InsufficientBalance:  "InsufficientBalance",
	ZeroAmount:           "ZeroAmount",
	NotClaimableYet:      "NotClaimableYet",
	Unauthorized:         "Unauthorized",
	Paused:               "Paused",
	Reentrancy:           "Reentrancy",
	NotFound:             "NotFound",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Sentinels usable with errors.Is, e.g. errors.Is(err, reverts.ErrZeroAmount).
var (
	ErrInvalidConfiguration = &ErrRevert{kind: InvalidConfiguration}
	ErrInsufficientBalance  = &ErrRevert{kind: InsufficientBalance}
	ErrZeroAmount           = &ErrRevert{kind: ZeroAmount}
	ErrNotClaimableYet      = &ErrRevert{kind: NotClaimableYet}
	ErrUnauthorized         = &ErrRevert{kind: Unauthorized}
	ErrPaused               = &ErrRevert{kind: Paused}
	ErrReentrancy           = &ErrRevert{kind: Reentrancy}
	ErrNotFound             = &ErrRevert{kind: NotFound}
)

// ErrRevert is an operation rejected before any state was changed.
type ErrRevert struct {
	kind    Kind
	message string
}

func New(kind Kind, message string) *ErrRevert {
	return &ErrRevert{
		kind:    kind,
		message: message,
	}
}

func Newf(kind Kind, format string, args ...any) *ErrRevert {
	return New(kind, fmt.Sprintf(format, args...))
}

func (e *ErrRevert) Error() string {
	if e.message == "" {
		return e.kind.String()
	}
	return e.message
}

func (e *ErrRevert) Kind() Kind {
	return e.kind
}

// Is matches any revert of the same kind.
func (e *ErrRevert) Is(target error) bool {
	t, ok := target.(*ErrRevert)
	return ok && t.kind == e.kind
}

func IsRevertErr(err any) bool {
	if err == nil {
		return false
	}
	e, ok := err.(error)
	if !ok {
		return false
	}
	var ve *ErrRevert
	return errors.As(e, &ve)
}

// KindOf returns the kind of a revert error, Unknown for anything else.
func KindOf(err error) Kind {
	var ve *ErrRevert
	if errors.As(err, &ve) {
		return ve.kind
	}
	return Unknown
}
