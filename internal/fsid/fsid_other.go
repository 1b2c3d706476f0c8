//go:build !unix

package fsid

import (
	"io/fs"
	"os"
)

// Stat resolves the type of path. Device and inode identities are not
// available on this platform; the zero Identity is returned and cycle
// detection degrades to depth limiting.
func Stat(path string, follow bool) (Identity, fs.FileMode, error) {
	var fi os.FileInfo
	var err error
	if follow {
		fi, err = os.Stat(path)
	} else {
		fi, err = os.Lstat(path)
	}
	if err != nil {
		return Identity{}, 0, err
	}
	return Identity{}, fi.Mode().Type(), nil
}
