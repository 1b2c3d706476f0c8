//go:build unix

package treetest

import (
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"
)

// Mkfifo creates a named pipe at dir/name. Skips the test where FIFOs
// are unsupported.
func Mkfifo(t *testing.T, dir, name string) {
	t.Helper()
	if err := unix.Mkfifo(filepath.Join(dir, name), 0o644); err != nil {
		t.Skipf("treetest: mkfifo not supported: %v", err)
	}
}
