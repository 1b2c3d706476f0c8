// Package flist provides tools for building deterministically ordered
// lists of filesystem paths.
//
// flist walks a directory tree and produces a stable, sortable snapshot
// of its entries, independent of the OS's raw enumeration order. It
// supports type filtering, name-pattern filtering, recursion-depth
// limits, symlink-cycle detection, and a family of path-aware sort
// orders including natural (numeric-aware) sorting.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - lister: Build, merge, and sort file lists (the main entry point)
//   - walker: Low-level directory traversal with cycle and cross-device detection
//   - sorter: Path-aware comparators (default, natural, collated, ASCII)
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/flist
//
// # Quick Start
//
// Build a sorted list of all regular files under a directory:
//
//	import (
//		"github.com/erraggy/flist/lister"
//		"github.com/erraggy/flist/sorter"
//		"github.com/erraggy/flist/walker"
//	)
//
//	list, err := lister.ListWithOptions(
//		lister.WithStartDir("testdata"),
//		lister.WithTypes(walker.TypeRegular),
//		lister.WithSortMethod(sorter.MethodNatural),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, p := range list.Paths {
//		fmt.Println(p)
//	}
//
// Walk a tree with a handler:
//
//	import "github.com/erraggy/flist/walker"
//
//	err := walker.WalkWithOptions(
//		walker.WithRoot("/var/log"),
//		walker.WithEntryHandler(func(e walker.Entry) walker.Action {
//			fmt.Println(e.Path)
//			return walker.Continue
//		}),
//	)
//
// # Lister Package
//
// The lister package is the high-level API. It cleans the start
// directory, compiles the optional name pattern, runs the walk, and
// sorts the result with the selected comparator. A configurable hard
// maximum bounds the list size; when it is reached the call returns the
// valid partial list together with an error matching
// [github.com/erraggy/flist/flerrors.ErrSizeLimit].
//
// # Walker Package
//
// The walker package traverses a directory tree iteratively (no
// unbounded recursion), classifies each entry, detects directory cycles
// via (device, inode) ancestry, and optionally refuses to cross
// filesystem boundaries. Handlers control traversal with [walker.Action]
// values (Continue, SkipChildren, Stop).
//
// # Sorter Package
//
// The sorter package provides four total orders over full paths, each
// grouping entries by containing directory before ordering by base
// name. The natural order compares embedded digit runs numerically, so
// "file2" sorts before "file10".
//
// # Logging
//
// All packages accept an optional [Logger]. The default is [NopLogger];
// use [NewSlogAdapter] to plug in log/slog.
//
// # Command-Line Interface
//
// In addition to the library packages, flist provides a command-line
// interface:
//
//	# List a tree, numerically sorted
//	flist list -sort natural /srv/data
//
//	# Only regular files matching a pattern
//	flist list -type regular -pattern '\.log$' /var/log
//
//	# Merge two path-list files
//	flist merge -o combined.txt part1.txt part2.txt
//
//	# Run the MCP server over stdio
//	flist mcp
//
// Install the CLI:
//
//	go install github.com/erraggy/flist/cmd/flist@latest
package flist
