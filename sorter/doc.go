// Package sorter provides path-aware total orders for file lists.
//
// Every comparator first splits each path at its last separator into a
// directory part and a base-name part, compares the directory parts,
// and compares the base names only on a tie. Entries are therefore
// grouped by containing directory before being ordered by name,
// independent of the order the filesystem enumerated them in.
//
// # Methods
//
//   - [MethodDefault]: byte order with ASCII case folding; on a pure
//     case difference the lowercase form sorts first, but only when no
//     other difference exists anywhere in the string.
//   - [MethodNatural]: like default, but runs of digits compare by
//     numeric value, so "file2" sorts before "file10". Runs of equal
//     value sort more-leading-zeros first ("file02" before "file2").
//   - [MethodCollate]: locale-aware ordering via golang.org/x/text;
//     linguistically correct but slower.
//   - [MethodASCII]: raw byte order, no folding; the fastest method.
//   - [MethodNone]: leaves the enumeration order untouched.
//
// # Usage
//
//	paths := []string{"a/file10", "a/file2", "b/x"}
//	sorter.Sort(paths, sorter.MethodNatural)
//	// a/file2, a/file10, b/x
//
// A comparator can also be obtained directly for use with the sort
// functions of the standard library:
//
//	c := sorter.ForMethod(sorter.MethodDefault)
//	slices.SortFunc(paths, c.Compare)
//
// All comparators are deterministic total orders: sorting an
// already-sorted list never changes it.
package sorter
