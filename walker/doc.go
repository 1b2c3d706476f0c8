// Package walker provides directory-tree traversal with cycle and
// cross-device detection.
//
// The walker enumerates a directory tree depth-first and calls a
// handler for every classified entry. Traversal is iterative: an
// explicit frame stack drives the descent, so pathologically deep trees
// cannot exhaust the goroutine stack.
//
// # Quick Start
//
// Collect every path under a root:
//
//	var paths []string
//	err := walker.WalkWithOptions(
//	    walker.WithRoot("/srv/data"),
//	    walker.WithEntryHandler(func(e walker.Entry) walker.Action {
//	        paths = append(paths, e.Path)
//	        return walker.Continue
//	    }),
//	)
//
// # Flow Control
//
// Handlers return an [Action] to control traversal:
//
//   - [Continue]: continue traversing children and siblings normally
//   - [SkipChildren]: skip the children of the current directory, continue with siblings
//   - [Stop]: stop the walk immediately; no more entries will be visited
//
// Example using SkipChildren to avoid version-control metadata:
//
//	walker.WithEntryHandler(func(e walker.Entry) walker.Action {
//	    if e.Type == walker.TypeDir && e.Name == ".git" {
//	        return walker.SkipChildren
//	    }
//	    return walker.Continue
//	})
//
// # Cycle Detection
//
// The walker keeps the (device, inode) identities of the ancestor chain
// from the root to the current directory. A candidate directory whose
// identity is already on that chain is never descended into, so symlink
// loops terminate; the entry itself is still handed to the handler.
//
// # Recoverable Conditions
//
// A directory that cannot be opened due to permissions is treated as
// empty. An entry whose identity query fails (dangling symlink, file
// removed mid-walk) is skipped. Both are logged through the configured
// [github.com/erraggy/flist.Logger] and never abort the walk.
package walker
