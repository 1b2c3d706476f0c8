package lister

// List is an ordered collection of filesystem paths produced by
// ListWithOptions or assembled by Merge.
type List struct {
	// Paths holds the collected entries in the order established by the
	// configured sort method.
	Paths []string

	// Truncated reports that traversal stopped early because the size
	// limit was reached; Paths then holds exactly the limit's worth of
	// entries collected before the stop.
	Truncated bool
}

// Len returns the number of paths in the list. It is safe on a nil
// receiver.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Paths)
}
