package sorter

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/erraggy/flist/internal/pathutil"
)

// Comparator is a total order over full paths. Compare returns a
// negative number when a orders before b, a positive number when after,
// and zero when the two are equivalent.
type Comparator interface {
	Compare(a, b string) int
}

// ForMethod returns the comparator implementing m, or nil for
// [MethodNone] and unrecognized methods. Collation uses the
// language-neutral und tag; use [ForMethodTag] to collate for a
// specific language.
func ForMethod(m Method) Comparator {
	return ForMethodTag(m, language.Und)
}

// ForMethodTag is [ForMethod] with an explicit collation language.
// The tag only affects [MethodCollate].
func ForMethodTag(m Method, tag language.Tag) Comparator {
	switch m {
	case MethodDefault:
		return defaultComparator{}
	case MethodNatural:
		return naturalComparator{}
	case MethodCollate:
		return &collatedComparator{col: collate.New(tag)}
	case MethodASCII:
		return asciiComparator{}
	default:
		return nil
	}
}

// Sort orders paths in place using the comparator for m.
// MethodNone leaves the slice untouched.
func Sort(paths []string, m Method) {
	SortWith(paths, ForMethod(m))
}

// SortWith orders paths in place with c. A nil comparator is a no-op.
func SortWith(paths []string, c Comparator) {
	if c == nil {
		return
	}
	slices.SortFunc(paths, c.Compare)
}

// compareByParts applies cmp to the directory parts of two paths and,
// only on a tie, to their base names. The split never mutates or copies
// the inputs.
func compareByParts(a, b string, cmp func(string, string) int) int {
	dirA, baseA := pathutil.SplitLast(a)
	dirB, baseB := pathutil.SplitLast(b)
	if r := cmp(dirA, dirB); r != 0 {
		return r
	}
	return cmp(baseA, baseB)
}

// defaultComparator implements the semi-case-insensitive byte order.
type defaultComparator struct{}

// Compare implements Comparator.
func (defaultComparator) Compare(a, b string) int {
	return compareByParts(a, b, compareDefault)
}

// naturalComparator adds numeric digit-run comparison to the default order.
type naturalComparator struct{}

// Compare implements Comparator.
func (naturalComparator) Compare(a, b string) int {
	return compareByParts(a, b, compareNatural)
}

// collatedComparator delegates to a locale-aware collator.
type collatedComparator struct {
	col *collate.Collator
}

// Compare implements Comparator.
func (c *collatedComparator) Compare(a, b string) int {
	return compareByParts(a, b, c.col.CompareString)
}

// asciiComparator is plain byte order.
type asciiComparator struct{}

// Compare implements Comparator.
func (asciiComparator) Compare(a, b string) int {
	return compareByParts(a, b, strings.Compare)
}
