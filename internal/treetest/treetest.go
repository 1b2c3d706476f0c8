// Package treetest materializes directory trees for tests.
//
// Trees are described as txtar archives: every archive file becomes a
// file in a fresh temp directory, and archive names ending in "/"
// become empty directories. Intermediate directories are created as
// needed.
//
//	dir := treetest.Extract(t, `
//	-- docs/readme.md --
//	hello
//	-- cache/ --
//	`)
//
// Symlinks, permission changes, and named pipes are created with the
// companion helpers, since txtar has no notion of them.
package treetest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

// Extract materializes the txtar archive in a fresh t.TempDir and
// returns the directory path.
func Extract(t *testing.T, archive string) string {
	t.Helper()
	dir := t.TempDir()
	ar := txtar.Parse([]byte(archive))
	for _, f := range ar.Files {
		target := filepath.Join(dir, filepath.FromSlash(strings.TrimSuffix(f.Name, "/")))
		if strings.HasSuffix(f.Name, "/") {
			if err := os.MkdirAll(target, 0o755); err != nil {
				t.Fatalf("treetest: mkdir %s: %v", f.Name, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			t.Fatalf("treetest: mkdir for %s: %v", f.Name, err)
		}
		if err := os.WriteFile(target, f.Data, 0o644); err != nil {
			t.Fatalf("treetest: write %s: %v", f.Name, err)
		}
	}
	return dir
}

// Symlink creates a symbolic link at dir/name pointing at target.
func Symlink(t *testing.T, target, dir, name string) {
	t.Helper()
	if err := os.Symlink(target, filepath.Join(dir, name)); err != nil {
		t.Skipf("treetest: symlinks not supported: %v", err)
	}
}

// Chmod changes the permissions of path and restores them on cleanup,
// so temp-dir removal is not blocked by an unreadable directory.
func Chmod(t *testing.T, path string, mode os.FileMode) {
	t.Helper()
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("treetest: stat %s: %v", path, err)
	}
	if err := os.Chmod(path, mode); err != nil {
		t.Fatalf("treetest: chmod %s: %v", path, err)
	}
	orig := fi.Mode().Perm()
	t.Cleanup(func() {
		_ = os.Chmod(path, orig)
	})
}
