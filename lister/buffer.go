package lister

import "github.com/erraggy/flist/flerrors"

const (
	// initialCapacity is the buffer's starting allocation; it grows by
	// doubling until it saturates at the configured hard maximum.
	initialCapacity = 512

	// DefaultMaxSize is the default hard ceiling on list entries.
	DefaultMaxSize = 1 << 20
)

// resultBuffer collects path entries with explicit doubling growth
// capped at a hard maximum. The explicit policy keeps the worst-case
// footprint of a runaway traversal bounded and makes hitting the cap a
// distinct, recoverable condition rather than unbounded growth.
type resultBuffer struct {
	entries []string
	hardMax int
}

func newResultBuffer(hardMax int) *resultBuffer {
	capacity := min(initialCapacity, hardMax)
	return &resultBuffer{
		entries: make([]string, 0, capacity),
		hardMax: hardMax,
	}
}

// append adds path to the buffer. When the buffer is full it doubles
// its capacity, saturating at the hard maximum; at the maximum it
// reports a LimitError and leaves the buffer intact, so the entries
// collected so far remain a valid partial result.
func (b *resultBuffer) append(path string) error {
	if len(b.entries) == cap(b.entries) {
		if len(b.entries) >= b.hardMax {
			return &flerrors.LimitError{Limit: b.hardMax}
		}
		newCap := cap(b.entries) * 2
		if newCap > b.hardMax || newCap <= 0 {
			newCap = b.hardMax
		}
		grown := make([]string, len(b.entries), newCap)
		copy(grown, b.entries)
		b.entries = grown
	}
	b.entries = append(b.entries, path)
	return nil
}

// len returns the number of collected entries.
func (b *resultBuffer) len() int {
	return len(b.entries)
}

// finalize trims the backing storage to the exact entry count and
// hands the entries over; the buffer must not be used afterwards.
func (b *resultBuffer) finalize() []string {
	out := make([]string, len(b.entries))
	copy(out, b.entries)
	b.entries = nil
	return out
}
