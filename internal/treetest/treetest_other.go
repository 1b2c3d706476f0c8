//go:build !unix

package treetest

import "testing"

// Mkfifo is unavailable on this platform; tests needing a FIFO skip.
func Mkfifo(t *testing.T, dir, name string) {
	t.Helper()
	t.Skip("treetest: named pipes not supported on this platform")
}
