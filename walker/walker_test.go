package walker_test

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/flist/flerrors"
	"github.com/erraggy/flist/internal/fsid"
	"github.com/erraggy/flist/internal/treetest"
	"github.com/erraggy/flist/walker"
)

// collect walks root with the given extra options and returns the
// visited entries keyed by path.
func collect(t *testing.T, root string, opts ...walker.Option) map[string]walker.Entry {
	t.Helper()
	seen := make(map[string]walker.Entry)
	opts = append(opts,
		walker.WithRoot(root),
		walker.WithEntryHandler(func(e walker.Entry) walker.Action {
			seen[e.Path] = e
			return walker.Continue
		}),
	)
	require.NoError(t, walker.WalkWithOptions(opts...))
	return seen
}

func rel(t *testing.T, root string, seen map[string]walker.Entry) []string {
	t.Helper()
	var out []string
	for p := range seen {
		r, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

func TestWalkWithOptions_NoRoot(t *testing.T) {
	err := walker.WalkWithOptions(
		walker.WithEntryHandler(func(walker.Entry) walker.Action { return walker.Continue }),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, flerrors.ErrConfig)
	assert.Contains(t, err.Error(), "WithRoot")
}

func TestWalkWithOptions_NoHandler(t *testing.T) {
	err := walker.WalkWithOptions(walker.WithRoot(t.TempDir()))
	require.Error(t, err)
	assert.ErrorIs(t, err, flerrors.ErrConfig)
	assert.Contains(t, err.Error(), "WithEntryHandler")
}

func TestWalk_MissingRoot(t *testing.T) {
	err := walker.WalkWithOptions(
		walker.WithRoot(filepath.Join(t.TempDir(), "nope")),
		walker.WithEntryHandler(func(walker.Entry) walker.Action { return walker.Continue }),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, flerrors.ErrWalk)
}

func TestWalk_RootNotADirectory(t *testing.T) {
	dir := treetest.Extract(t, `
-- plain.txt --
x
`)
	err := walker.WalkWithOptions(
		walker.WithRoot(filepath.Join(dir, "plain.txt")),
		walker.WithEntryHandler(func(walker.Entry) walker.Action { return walker.Continue }),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, flerrors.ErrWalk)
}

func TestWalk_VisitsAllEntries(t *testing.T) {
	root := treetest.Extract(t, `
-- a.txt --
a
-- sub/b.txt --
b
-- sub/deep/c.txt --
c
-- empty/ --
`)
	seen := collect(t, root)
	assert.Equal(t, []string{"a.txt", "empty", "sub", "sub/b.txt", "sub/deep", "sub/deep/c.txt"}, rel(t, root, seen))

	assert.Equal(t, walker.TypeRegular, seen[filepath.Join(root, "a.txt")].Type)
	assert.Equal(t, walker.TypeDir, seen[filepath.Join(root, "sub")].Type)
	assert.Equal(t, 1, seen[filepath.Join(root, "sub")].Depth)
	assert.Equal(t, 2, seen[filepath.Join(root, "sub/deep")].Depth)
	assert.Equal(t, 3, seen[filepath.Join(root, "sub/deep/c.txt")].Depth)
	assert.Equal(t, "c.txt", seen[filepath.Join(root, "sub/deep/c.txt")].Name)
}

func TestWalk_MaxDepth(t *testing.T) {
	archive := `
-- one.txt --
1
-- l1/two.txt --
2
-- l1/l2/three.txt --
3
-- l1/l2/l3/four.txt --
4
`

	t.Run("zero visits root entries only", func(t *testing.T) {
		root := treetest.Extract(t, archive)
		seen := collect(t, root, walker.WithMaxDepth(0))
		assert.Equal(t, []string{"l1", "one.txt"}, rel(t, root, seen))
	})

	t.Run("one descends one level", func(t *testing.T) {
		root := treetest.Extract(t, archive)
		seen := collect(t, root, walker.WithMaxDepth(1))
		assert.Equal(t, []string{"l1", "l1/l2", "l1/two.txt", "one.txt"}, rel(t, root, seen))
	})

	t.Run("negative is unlimited", func(t *testing.T) {
		root := treetest.Extract(t, archive)
		seen := collect(t, root, walker.WithMaxDepth(-1))
		assert.Len(t, seen, 7)
	})
}

func TestWalk_SkipChildren(t *testing.T) {
	root := treetest.Extract(t, `
-- keep/a.txt --
a
-- skipme/b.txt --
b
`)
	var visited []string
	err := walker.WalkWithOptions(
		walker.WithRoot(root),
		walker.WithEntryHandler(func(e walker.Entry) walker.Action {
			visited = append(visited, e.Name)
			if e.Type == walker.TypeDir && e.Name == "skipme" {
				return walker.SkipChildren
			}
			return walker.Continue
		}),
	)
	require.NoError(t, err)
	assert.Contains(t, visited, "skipme")
	assert.Contains(t, visited, "a.txt")
	assert.NotContains(t, visited, "b.txt")
}

func TestWalk_Stop(t *testing.T) {
	root := treetest.Extract(t, `
-- a.txt --
a
-- b.txt --
b
-- c.txt --
c
`)
	count := 0
	err := walker.WalkWithOptions(
		walker.WithRoot(root),
		walker.WithEntryHandler(func(walker.Entry) walker.Action {
			count++
			return walker.Stop
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestWalk_UnreadableDirTreatedAsEmpty(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root: permission bits are not enforced")
	}
	root := treetest.Extract(t, `
-- open/a.txt --
a
-- locked/hidden.txt --
h
`)
	treetest.Chmod(t, filepath.Join(root, "locked"), 0o000)

	seen := collect(t, root)
	assert.Equal(t, []string{"locked", "open", "open/a.txt"}, rel(t, root, seen))
}

func TestWalk_SymlinkNotFollowed(t *testing.T) {
	root := treetest.Extract(t, `
-- target/inner.txt --
x
`)
	treetest.Symlink(t, filepath.Join(root, "target"), root, "link")

	seen := collect(t, root)
	require.Contains(t, seen, filepath.Join(root, "link"))
	assert.Equal(t, walker.TypeSymlink, seen[filepath.Join(root, "link")].Type)
	assert.NotContains(t, seen, filepath.Join(root, "link/inner.txt"))
}

func TestWalk_SymlinkFollowed(t *testing.T) {
	root := treetest.Extract(t, `
-- target/inner.txt --
x
`)
	treetest.Symlink(t, filepath.Join(root, "target"), root, "link")

	seen := collect(t, root, walker.WithFollowSymlinks())
	require.Contains(t, seen, filepath.Join(root, "link"))
	assert.Equal(t, walker.TypeDir, seen[filepath.Join(root, "link")].Type)
	assert.Contains(t, seen, filepath.Join(root, "link/inner.txt"))
}

func TestWalk_CycleDetection(t *testing.T) {
	root := treetest.Extract(t, `
-- nest/file.txt --
x
`)
	// nest/loop points back at the walk root.
	treetest.Symlink(t, root, filepath.Join(root, "nest"), "loop")

	seen := collect(t, root, walker.WithFollowSymlinks())

	// The looping entry is visited once, classified as a directory, but
	// never descended into.
	loop := filepath.Join(root, "nest/loop")
	require.Contains(t, seen, loop)
	assert.Equal(t, walker.TypeDir, seen[loop].Type)
	assert.NotContains(t, seen, filepath.Join(loop, "nest"))
	assert.Equal(t, []string{"nest", "nest/file.txt", "nest/loop"}, rel(t, root, seen))
}

func TestWalk_SiblingSymlinkIsNotACycle(t *testing.T) {
	// A symlink to a sibling directory is an alias, not a loop: the
	// aliased subtree is walked again under the symlink's path.
	root := treetest.Extract(t, `
-- a/file.txt --
x
`)
	treetest.Symlink(t, filepath.Join(root, "a"), root, "alias")

	seen := collect(t, root, walker.WithFollowSymlinks())
	assert.Contains(t, seen, filepath.Join(root, "a/file.txt"))
	assert.Contains(t, seen, filepath.Join(root, "alias/file.txt"))
}

func TestWalk_DanglingSymlinkSkippedWhenFollowing(t *testing.T) {
	root := treetest.Extract(t, `
-- real.txt --
x
`)
	treetest.Symlink(t, filepath.Join(root, "gone"), root, "dangling")

	seen := collect(t, root, walker.WithFollowSymlinks())
	assert.NotContains(t, seen, filepath.Join(root, "dangling"))
	assert.Contains(t, seen, filepath.Join(root, "real.txt"))

	// Without following, the link itself is a perfectly good entry.
	seen = collect(t, root)
	assert.Contains(t, seen, filepath.Join(root, "dangling"))
	assert.Equal(t, walker.TypeSymlink, seen[filepath.Join(root, "dangling")].Type)
}

func TestWalk_StayOnDevice(t *testing.T) {
	root := treetest.Extract(t, `
-- here.txt --
x
`)
	mount := foreignMount(t, root)
	treetest.Symlink(t, mount, root, "xdev")

	seen := collect(t, root, walker.WithFollowSymlinks(), walker.WithStayOnDevice())

	// The mount point itself is listed, but nothing beneath it is.
	link := filepath.Join(root, "xdev")
	require.Contains(t, seen, link)
	assert.Equal(t, walker.TypeDir, seen[link].Type)
	for p := range seen {
		assert.False(t, strings.HasPrefix(p, link+string(os.PathSeparator)),
			"crossed a filesystem boundary: %s", p)
	}
	assert.Contains(t, seen, filepath.Join(root, "here.txt"))

	// Without the option the walk follows the link onto the other
	// filesystem.
	seen = collect(t, root, walker.WithFollowSymlinks())
	crossed := false
	for p := range seen {
		if strings.HasPrefix(p, link+string(os.PathSeparator)) {
			crossed = true
			break
		}
	}
	assert.True(t, crossed, "expected entries beneath %s", link)
}

// foreignMount returns a non-empty directory that lives on a different
// device than root, skipping the test when none is available.
func foreignMount(t *testing.T, root string) string {
	t.Helper()
	rootID, _, err := fsid.Stat(root, true)
	require.NoError(t, err)
	if rootID.IsZero() {
		t.Skip("no device identity on this platform")
	}
	for _, cand := range []string{"/proc", "/sys", "/dev"} {
		id, mode, err := fsid.Stat(cand, true)
		if err != nil || !mode.IsDir() || id.Dev == rootID.Dev {
			continue
		}
		names, err := os.ReadDir(cand)
		if err != nil || len(names) == 0 {
			continue
		}
		return cand
	}
	t.Skip("no foreign-device mount available")
	return ""
}

func TestWalk_FIFOClassification(t *testing.T) {
	root := treetest.Extract(t, `
-- plain.txt --
x
`)
	treetest.Mkfifo(t, root, "pipe")

	seen := collect(t, root)
	require.Contains(t, seen, filepath.Join(root, "pipe"))
	assert.Equal(t, walker.TypeFIFO, seen[filepath.Join(root, "pipe")].Type)
}
