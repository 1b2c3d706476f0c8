package walker

import (
	"os"

	"github.com/erraggy/flist/internal/fsid"
)

// classify resolves an entry's type and, when an identity query was
// needed, its (device, inode) identity.
//
// The enumeration type hint is trusted only when it unambiguously names
// a non-directory type: directories always need the identity query for
// cycle detection, an unknown hint needs it for the type itself (some
// filesystems never fill the hint), and a symlink hint needs it when
// links are followed, to learn the target's type. The query follows
// symlinks exactly when the walk does.
//
// A failed query (dangling symlink, entry removed mid-walk) is
// recoverable: classify logs it and reports ok=false, and the caller
// skips the entry.
func (w *Walker) classify(path string, de os.DirEntry) (t EntryType, id fsid.Identity, ok bool) {
	hint := typeFromMode(de.Type())
	if hint != TypeDir && hint != TypeUnknown && !(hint == TypeSymlink && w.followLinks) {
		return hint, fsid.Identity{}, true
	}

	id, mode, err := fsid.Stat(path, w.followLinks)
	if err != nil {
		w.logger.Debug("skipping entry: identity query failed", "path", path, "err", err)
		return TypeUnknown, fsid.Identity{}, false
	}
	return typeFromMode(mode), id, true
}
