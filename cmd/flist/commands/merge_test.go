package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeListFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestHandleMerge(t *testing.T) {
	a := writeListFile(t, "a.txt", "c.txt\nsub/x.txt\n")
	b := writeListFile(t, "b.txt", "a.txt\n")
	out := filepath.Join(t.TempDir(), "merged.txt")

	require.NoError(t, HandleMerge([]string{"-o", out, a, b}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "a.txt\nc.txt\nsub/x.txt\n", string(data))
}

func TestHandleMerge_NoneKeepsInputOrder(t *testing.T) {
	a := writeListFile(t, "a.txt", "z.txt\n")
	b := writeListFile(t, "b.txt", "m.txt\na.txt\n")
	out := filepath.Join(t.TempDir(), "merged.txt")

	require.NoError(t, HandleMerge([]string{"-sort", "none", "-o", out, a, b}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "z.txt\nm.txt\na.txt\n", string(data))
}

func TestHandleMerge_RequiresTwoFiles(t *testing.T) {
	a := writeListFile(t, "a.txt", "x\n")
	err := HandleMerge([]string{a})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least two list files")
}

func TestHandleMerge_InvalidSort(t *testing.T) {
	a := writeListFile(t, "a.txt", "x\n")
	b := writeListFile(t, "b.txt", "y\n")
	err := HandleMerge([]string{"-sort", "reverse", a, b})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sort method")
}

func TestHandleMerge_MissingInput(t *testing.T) {
	a := writeListFile(t, "a.txt", "x\n")
	err := HandleMerge([]string{a, filepath.Join(t.TempDir(), "nope.txt")})
	require.Error(t, err)
}

func TestHandleSort(t *testing.T) {
	in := writeListFile(t, "in.txt", "img10.png\nimg2.png\n")
	out := filepath.Join(t.TempDir(), "sorted.txt")

	require.NoError(t, HandleSort([]string{"-sort", "natural", "-o", out, in}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "img2.png\nimg10.png\n", string(data))
}

func TestHandleSort_RequiresOneFile(t *testing.T) {
	err := HandleSort(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one list file")
}
