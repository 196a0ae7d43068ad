// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"fmt"

	"github.com/Degis-Insurance/Degis-Core-sub000/kv"
	"github.com/Degis-Insurance/Degis-Core-sub000/stackedmap"
)

// Error is the error caused by state access failure.
type Error struct {
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("state: %v", e.cause)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// State is a journaled view over a kv source.
// Writes stay in memory until committed, and can be reverted to any checkpoint.
type State struct {
	src kv.Getter
	sm  *stackedmap.StackedMap[string, []byte]
}

// New create state object.
func New(src kv.Getter) *State {
	s := &State{src: src}
	s.sm = stackedmap.New(s.load)
	return s
}

func (s *State) load(key string) ([]byte, bool, error) {
	val, err := s.src.Get([]byte(key))
	if err != nil {
		if s.src.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, &Error{err}
	}
	return val, true, nil
}

// Get returns the raw value of the given key. An absent key yields an empty value.
func (s *State) Get(key []byte) ([]byte, error) {
	val, _, err := s.sm.Get(string(key))
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Has returns whether the key holds a non-empty value.
func (s *State) Has(key []byte) (bool, error) {
	val, err := s.Get(key)
	if err != nil {
		return false, err
	}
	return len(val) > 0, nil
}

// Put sets the raw value of the given key. An empty value deletes the key on commit.
func (s *State) Put(key, val []byte) {
	s.sm.Put(string(key), val)
}

// DecodeStorage get and decode storage value.
// Error returned by dec will be passed through.
func (s *State) DecodeStorage(key []byte, dec func([]byte) error) error {
	raw, err := s.Get(key)
	if err != nil {
		return err
	}
	return dec(raw)
}

// EncodeStorage encode and set storage value.
// Error returned by enc will be passed through.
func (s *State) EncodeStorage(key []byte, enc func() ([]byte, error)) error {
	raw, err := enc()
	if err != nil {
		return err
	}
	s.Put(key, raw)
	return nil
}

// NewCheckpoint makes a checkpoint of current state.
// It returns revision of the checkpoint.
func (s *State) NewCheckpoint() int {
	return s.sm.Push()
}

// RevertTo revert to checkpoint specified by revision.
func (s *State) RevertTo(revision int) {
	s.sm.PopTo(revision)
}

// Changes returns the latest value of every key written since the last commit or reset.
func (s *State) Changes() map[string][]byte {
	changes := make(map[string][]byte)
	for _, entry := range s.sm.Journal() {
		changes[entry.Key] = entry.Value
	}
	return changes
}

// Commit writes all pending changes into the putter.
// The journal is kept until Reset is called, so a failed write can still be reverted.
func (s *State) Commit(putter kv.Putter) (int, error) {
	changes := s.Changes()
	for k, v := range changes {
		var err error
		if len(v) == 0 {
			err = putter.Delete([]byte(k))
		} else {
			err = putter.Put([]byte(k), v)
		}
		if err != nil {
			return 0, &Error{err}
		}
	}
	return len(changes), nil
}

// Reset drops the journal. Later reads fall through to the source.
func (s *State) Reset() {
	s.sm = stackedmap.New(s.load)
}
