package walker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/erraggy/flist"
	"github.com/erraggy/flist/flerrors"
	"github.com/erraggy/flist/internal/fsid"
	"github.com/erraggy/flist/internal/pathutil"
)

// Action controls the walker's behavior after visiting an entry.
type Action int

const (
	// Continue continues walking normally, visiting children and siblings.
	Continue Action = iota

	// SkipChildren skips the children of the current directory but
	// continues with siblings. It has no effect on non-directory entries.
	SkipChildren

	// Stop stops the walk immediately. No more entries will be visited.
	Stop
)

// IsValid returns true if the action is one of the defined constants.
func (a Action) IsValid() bool {
	return a >= Continue && a <= Stop
}

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// EntryHandler is called once for every classified entry, in
// enumeration order, before any descent into the entry.
type EntryHandler func(e Entry) Action

// Walker traverses a directory tree. Construct one with [New] and the
// With* options, or use [WalkWithOptions].
type Walker struct {
	root         string
	maxDepth     int
	followLinks  bool
	stayOnDevice bool
	handler      EntryHandler
	logger       flist.Logger
}

// Option configures a Walker.
type Option func(*Walker)

// New creates a Walker with default configuration: unlimited depth,
// symlinks not followed, device boundaries crossed, no-op logger.
func New() *Walker {
	return &Walker{
		maxDepth: -1,
		logger:   flist.NopLogger{},
	}
}

// WalkWithOptions walks a directory tree using functional options.
//
// Example:
//
//	err := walker.WalkWithOptions(
//	    walker.WithRoot("/srv/data"),
//	    walker.WithMaxDepth(2),
//	    walker.WithEntryHandler(func(e walker.Entry) walker.Action {
//	        fmt.Println(e.Path)
//	        return walker.Continue
//	    }),
//	)
func WalkWithOptions(opts ...Option) error {
	w := New()
	for _, opt := range opts {
		opt(w)
	}

	if w.root == "" {
		return &flerrors.ConfigError{Option: "root", Message: "no root directory specified: use WithRoot"}
	}
	if w.handler == nil {
		return &flerrors.ConfigError{Option: "handler", Message: "no entry handler specified: use WithEntryHandler"}
	}

	return w.walk()
}

// frame is one level of the explicit traversal stack: a directory whose
// enumerated entries are being processed.
type frame struct {
	dir     string
	entries []os.DirEntry
	next    int
	// depth is the remaining descent budget at this level; -1 is unlimited.
	depth int
}

// walk drives the traversal. The frame stack replaces recursion so the
// walk depth is bounded by memory, not by the goroutine stack; the
// ancestry stack is pushed and popped in lockstep with the frames.
func (w *Walker) walk() error {
	// The root identity is resolved with symlinks followed regardless of
	// the follow option, so a symlink can serve as the walk root. Seeding
	// the ancestry with it makes a self-referential root a detected cycle.
	rootID, _, err := fsid.Stat(w.root, true)
	if err != nil {
		return &flerrors.WalkError{Path: w.root, Op: "stat", Cause: err}
	}

	entries, err := w.readDir(w.root)
	if err != nil {
		return err
	}

	var ancestry ancestryStack
	ancestry.push(rootID)
	frames := []frame{{dir: w.root, entries: entries, depth: w.maxDepth}}

	for len(frames) > 0 {
		f := &frames[len(frames)-1]
		if f.next >= len(f.entries) {
			frames = frames[:len(frames)-1]
			ancestry.pop()
			continue
		}
		de := f.entries[f.next]
		f.next++

		name := de.Name()
		path := pathutil.Join(f.dir, name)
		t, id, ok := w.classify(path, de)
		if !ok {
			continue
		}

		action := w.handler(Entry{Path: path, Name: name, Type: t, Depth: len(frames)})
		if action == Stop {
			return nil
		}

		if t != TypeDir || action == SkipChildren || f.depth == 0 {
			continue
		}
		// A zero identity (platforms without device/inode semantics)
		// cannot drive cycle or boundary decisions.
		if !id.IsZero() {
			if ancestry.contains(id) {
				w.logger.Debug("directory loop detected", "path", path)
				continue
			}
			if w.stayOnDevice && id.Dev != ancestry.root().Dev {
				w.logger.Debug("ignoring other file system", "path", path)
				continue
			}
		}

		children, err := w.readDir(path)
		if err != nil {
			return err
		}
		childDepth := f.depth
		if childDepth > 0 {
			childDepth--
		}
		ancestry.push(id)
		frames = append(frames, frame{dir: path, entries: children, depth: childDepth})
	}

	return nil
}

// readDir enumerates a directory. Permission-denied is recoverable: the
// directory is treated as empty, matching the behavior of listing tools
// that report what they can see. Any other failure is fatal.
func (w *Walker) readDir(dir string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			w.logger.Debug("treating unreadable directory as empty", "path", dir, "err", err)
			return nil, nil
		}
		return nil, &flerrors.WalkError{Path: dir, Op: "open", Cause: err}
	}
	return entries, nil
}
