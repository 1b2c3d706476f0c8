package walker

import "github.com/erraggy/flist"

// WithRoot sets the directory the walk starts from. The root itself is
// never handed to the handler; only entries below it are.
func WithRoot(dir string) Option {
	return func(w *Walker) {
		w.root = dir
	}
}

// WithMaxDepth limits how many directory levels the walk descends.
// A negative depth means unlimited (the default). Zero means the root's
// immediate entries are visited but no directory is descended into.
// Depth n visits entries up to n+1 levels below the root, because the
// budget is spent on descent, not on visiting.
func WithMaxDepth(depth int) Option {
	return func(w *Walker) {
		if depth < 0 {
			depth = -1
		}
		w.maxDepth = depth
	}
}

// WithFollowSymlinks makes the walk resolve symlinks: entries are
// classified by their target's type and symlinked directories are
// descended into. Cycle detection keeps symlink loops from walking
// forever.
func WithFollowSymlinks() Option {
	return func(w *Walker) {
		w.followLinks = true
	}
}

// WithStayOnDevice keeps the walk on the root's filesystem: a directory
// on a different device (a mount point) is visited but never descended
// into.
func WithStayOnDevice() Option {
	return func(w *Walker) {
		w.stayOnDevice = true
	}
}

// WithEntryHandler sets the handler called for every classified entry.
func WithEntryHandler(fn EntryHandler) Option {
	return func(w *Walker) {
		w.handler = fn
	}
}

// WithLogger sets the logger for recoverable-skip diagnostics.
// The default is [flist.NopLogger].
func WithLogger(logger flist.Logger) Option {
	return func(w *Walker) {
		if logger != nil {
			w.logger = logger
		}
	}
}
