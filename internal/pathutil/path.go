// Copyright 2025 Erraggy
// SPDX-License-Identifier: MIT

package pathutil

import "strings"

// Separator is the directory separator used in produced list entries.
const Separator = '/'

// Join concatenates dir and name, inserting a separator unless dir
// already ends with one. It performs no cleaning beyond that; dir is
// expected to have been passed through [Clean] once at traversal start.
func Join(dir, name string) string {
	if dir != "" && dir[len(dir)-1] == Separator {
		return dir + name
	}
	return dir + string(Separator) + name
}

// Clean collapses runs of separators into one and removes trailing
// separators, so "a//b///" becomes "a/b". A path consisting only of
// separators becomes "/". Clean returns "" for an empty input; callers
// treat that as an invalid start directory.
func Clean(dir string) string {
	if dir == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(dir))
	prevSep := false
	for i := 0; i < len(dir); i++ {
		if dir[i] == Separator {
			if prevSep {
				continue
			}
			prevSep = true
		} else {
			prevSep = false
		}
		b.WriteByte(dir[i])
	}

	s := b.String()
	for len(s) > 1 && s[len(s)-1] == Separator {
		s = s[:len(s)-1]
	}
	return s
}

// SplitLast splits path at its last separator into a directory part and
// a base-name part, excluding the separator itself. If path contains no
// separator the directory part is empty. A trailing separator yields an
// empty base, so directory entries carrying a trailing separator group
// before their own contents when compared.
func SplitLast(path string) (dir, base string) {
	i := strings.LastIndexByte(path, Separator)
	if i < 0 {
		return "", path
	}
	return path[:i], path[i+1:]
}
