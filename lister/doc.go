// Package lister builds hierarchically sorted file lists.
//
// ListWithOptions walks a directory tree and returns the paths of every
// entry that passes the configured type and name filters, ordered by
// the selected sort method. The traversal detects symlink cycles, can
// stay on one filesystem, and honors a recursion-depth limit.
//
// # Quick Start
//
// List every .log file below /var/log, numerically sorted:
//
//	list, err := lister.ListWithOptions(
//	    lister.WithStartDir("/var/log"),
//	    lister.WithTypes(walker.TypeRegular),
//	    lister.WithPattern(`\.log$`),
//	    lister.WithSortMethod(sorter.MethodNatural),
//	)
//
// # Partial Results
//
// The list size is capped (1<<20 entries by default, see [WithMaxSize]).
// When the cap is reached the call still returns the list built so far;
// the error matches [flerrors.ErrSizeLimit] and [List.Truncated] is set:
//
//	list, err := lister.ListWithOptions(...)
//	if err != nil && !errors.Is(err, flerrors.ErrSizeLimit) {
//	    return err // fatal; list is nil
//	}
//	// list is valid here, possibly truncated
//
// # Merging
//
// Merge appends one list onto another and optionally re-sorts the
// combination:
//
//	n, err := lister.Merge(dst, src, sorter.MethodDefault)
package lister
