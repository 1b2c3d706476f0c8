// Package fsid resolves filesystem object identities.
//
// An [Identity] is the (device, inode) pair that uniquely identifies a
// filesystem object on unix systems. The walker uses identities to
// detect directory cycles introduced by symlinks and to recognize
// filesystem boundaries. [Stat] answers both the identity and the type
// of a path with a single system call.
package fsid

// Identity uniquely identifies a filesystem object by device and inode.
// The zero Identity is only produced on platforms without device/inode
// semantics; on those platforms cycle and cross-device detection are
// degraded.
type Identity struct {
	Dev uint64
	Ino uint64
}

// IsZero reports whether the identity carries no device/inode
// information. Callers must not use a zero identity for cycle or
// boundary decisions.
func (id Identity) IsZero() bool {
	return id == Identity{}
}
