package walker

import (
	"fmt"
	"io/fs"
	"strings"
)

// EntryType classifies a filesystem entry. The values cover every type
// a unix directory enumeration can report.
type EntryType int

const (
	// TypeUnknown is reported when the entry type cannot be determined.
	TypeUnknown EntryType = iota
	// TypeFIFO is a named pipe.
	TypeFIFO
	// TypeCharDevice is a character device.
	TypeCharDevice
	// TypeDir is a directory.
	TypeDir
	// TypeBlockDevice is a block device.
	TypeBlockDevice
	// TypeRegular is a regular file.
	TypeRegular
	// TypeSymlink is a symbolic link (only reported when links are not followed).
	TypeSymlink
	// TypeSocket is a unix domain socket.
	TypeSocket
)

// IsValid returns true if the type is one of the defined constants.
func (t EntryType) IsValid() bool {
	return t >= TypeUnknown && t <= TypeSocket
}

// String returns a string representation of the entry type.
func (t EntryType) String() string {
	switch t {
	case TypeUnknown:
		return "unknown"
	case TypeFIFO:
		return "fifo"
	case TypeCharDevice:
		return "char-device"
	case TypeDir:
		return "directory"
	case TypeBlockDevice:
		return "block-device"
	case TypeRegular:
		return "regular"
	case TypeSymlink:
		return "symlink"
	case TypeSocket:
		return "socket"
	default:
		return fmt.Sprintf("EntryType(%d)", t)
	}
}

// ParseEntryType converts a type name as printed by [EntryType.String]
// back to its EntryType. It returns false for unrecognized names.
func ParseEntryType(s string) (EntryType, bool) {
	for t := TypeUnknown; t <= TypeSocket; t++ {
		if t.String() == s {
			return t, true
		}
	}
	return TypeUnknown, false
}

// TypeMask is a bit set of entry types. The zero mask is special and
// admits every type.
type TypeMask uint16

// AllTypes admits every entry type.
const AllTypes TypeMask = 0

// MaskOf builds a mask admitting exactly the given types.
func MaskOf(types ...EntryType) TypeMask {
	var m TypeMask
	for _, t := range types {
		m |= 1 << uint(t)
	}
	return m
}

// Has reports whether the mask admits t. The zero mask admits all types.
func (m TypeMask) Has(t EntryType) bool {
	return m == AllTypes || m&(1<<uint(t)) != 0
}

// String returns the admitted type names joined by ",", or "all" for
// the zero mask.
func (m TypeMask) String() string {
	if m == AllTypes {
		return "all"
	}
	var names []string
	for t := TypeUnknown; t <= TypeSocket; t++ {
		if m&(1<<uint(t)) != 0 {
			names = append(names, t.String())
		}
	}
	return strings.Join(names, ",")
}

// Entry describes one classified directory entry handed to an
// [EntryHandler].
type Entry struct {
	// Path is the full entry path, the walk root joined with every
	// name on the way down.
	Path string

	// Name is the entry's base name.
	Name string

	// Type is the resolved entry type. With symlink following enabled
	// it is the link target's type.
	Type EntryType

	// Depth is the entry's level below the walk root; immediate
	// children of the root have depth 1.
	Depth int
}

// typeFromMode converts fs.FileMode type bits to an EntryType.
func typeFromMode(mode fs.FileMode) EntryType {
	switch mode.Type() {
	case 0:
		return TypeRegular
	case fs.ModeDir:
		return TypeDir
	case fs.ModeSymlink:
		return TypeSymlink
	case fs.ModeNamedPipe:
		return TypeFIFO
	case fs.ModeSocket:
		return TypeSocket
	case fs.ModeDevice | fs.ModeCharDevice:
		return TypeCharDevice
	case fs.ModeDevice:
		return TypeBlockDevice
	default:
		return TypeUnknown
	}
}
