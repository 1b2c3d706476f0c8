// Copyright 2025 Erraggy
// SPDX-License-Identifier: MIT

// Package pathutil provides small path-string utilities for building
// file lists.
//
// Unlike path/filepath, these helpers never interpret "." or ".."
// segments and never change the meaning of a path: [Join] only inserts
// a separator when one is missing, and [Clean] only collapses runs of
// separators and strips trailing ones. This keeps produced list entries
// a pure concatenation of the start directory and the names returned by
// directory enumeration.
//
// [SplitLast] slices a path into (directory, base) around the last
// separator without copying, for use by the path-aware comparators.
package pathutil
