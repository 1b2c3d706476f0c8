package walker

import "github.com/erraggy/flist/internal/fsid"

// ancestryStack holds the identities of the directory chain from the
// walk root to the directory currently being descended into. Entries
// are pushed immediately before descent and popped immediately after,
// strict LIFO; it is never a historical set of visited directories.
type ancestryStack struct {
	ids []fsid.Identity
}

// push appends an identity to the chain.
func (s *ancestryStack) push(id fsid.Identity) {
	s.ids = append(s.ids, id)
}

// pop removes the most recently pushed identity.
func (s *ancestryStack) pop() {
	s.ids = s.ids[:len(s.ids)-1]
}

// contains reports whether id is anywhere on the chain. Linear in the
// current depth.
func (s *ancestryStack) contains(id fsid.Identity) bool {
	for i := range s.ids {
		if s.ids[i] == id {
			return true
		}
	}
	return false
}

// root returns the identity of the walk root, the bottom of the chain.
func (s *ancestryStack) root() fsid.Identity {
	return s.ids[0]
}

// depth returns the number of identities on the chain.
func (s *ancestryStack) depth() int {
	return len(s.ids)
}
