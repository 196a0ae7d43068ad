// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package events

var _ Emitter = (*Buffer)(nil)

// Buffer holds the facts of one operation until it commits.
type Buffer struct {
	events []Event
}

func (b *Buffer) Emit(ev Event) {
	b.events = append(b.events, ev)
}

// Events returns the buffered facts in emission order.
func (b *Buffer) Events() []Event {
	return b.events
}

// Len returns the number of buffered facts.
func (b *Buffer) Len() int {
	return len(b.events)
}

// Truncate drops facts emitted after the buffer had n entries.
func (b *Buffer) Truncate(n int) {
	if n < len(b.events) {
		b.events = b.events[:n]
	}
}

// Take returns the buffered facts and empties the buffer.
func (b *Buffer) Take() []Event {
	evs := b.events
	b.events = nil
	return evs
}
