//go:build unix

package fsid

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// Stat resolves the identity and type of path. When follow is true,
// symlinks are resolved before the query, so a symlink to a directory
// reports the directory's identity and type.
func Stat(path string, follow bool) (Identity, fs.FileMode, error) {
	var st unix.Stat_t
	var err error
	if follow {
		err = unix.Stat(path, &st)
	} else {
		err = unix.Lstat(path, &st)
	}
	if err != nil {
		op := "lstat"
		if follow {
			op = "stat"
		}
		return Identity{}, 0, &fs.PathError{Op: op, Path: path, Err: err}
	}
	return Identity{Dev: uint64(st.Dev), Ino: uint64(st.Ino)}, modeType(uint32(st.Mode)), nil
}

// modeType converts the S_IFMT bits of a raw mode to fs.FileMode type bits.
func modeType(mode uint32) fs.FileMode {
	switch mode & unix.S_IFMT {
	case unix.S_IFREG:
		return 0
	case unix.S_IFDIR:
		return fs.ModeDir
	case unix.S_IFLNK:
		return fs.ModeSymlink
	case unix.S_IFIFO:
		return fs.ModeNamedPipe
	case unix.S_IFSOCK:
		return fs.ModeSocket
	case unix.S_IFCHR:
		return fs.ModeDevice | fs.ModeCharDevice
	case unix.S_IFBLK:
		return fs.ModeDevice
	default:
		return fs.ModeIrregular
	}
}
