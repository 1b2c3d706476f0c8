package lister

import (
	"fmt"
	"math"

	"github.com/erraggy/flist/flerrors"
	"github.com/erraggy/flist/sorter"
)

// Merge moves every path from src into dst and returns the number of
// paths moved. src is drained: after a successful merge its Paths slice
// is nil. If the combined size would overflow, dst and src are left
// untouched and the returned error matches [flerrors.ErrOverflow].
//
// When method is anything other than [sorter.MethodNone] the combined
// list is re-sorted with the default comparator; the merge does not
// preserve the sort methods the inputs were built with. With
// [sorter.MethodNone] src's paths are appended after dst's in their
// existing order.
func Merge(dst, src *List, method sorter.Method) (int, error) {
	if dst == nil {
		return 0, fmt.Errorf("lister: %w", &flerrors.ConfigError{
			Option:  "dst",
			Message: "merge destination must not be nil",
		})
	}
	if src == nil || len(src.Paths) == 0 {
		return 0, nil
	}
	if len(src.Paths) > math.MaxInt-len(dst.Paths) {
		return 0, fmt.Errorf("lister: %w", &flerrors.OverflowError{
			DestCount:   len(dst.Paths),
			SourceCount: len(src.Paths),
		})
	}

	// Build the combined slice before touching either input so a failed
	// allocation cannot leave dst holding a partial merge.
	combined := make([]string, 0, len(dst.Paths)+len(src.Paths))
	combined = append(combined, dst.Paths...)
	combined = append(combined, src.Paths...)
	if method != sorter.MethodNone {
		sorter.Sort(combined, sorter.MethodDefault)
	}

	moved := len(src.Paths)
	dst.Paths = combined
	dst.Truncated = dst.Truncated || src.Truncated
	src.Paths = nil
	src.Truncated = false
	return moved, nil
}
