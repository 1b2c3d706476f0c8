package sorter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestForMethod(t *testing.T) {
	assert.Nil(t, ForMethod(MethodNone))
	assert.Nil(t, ForMethod(Method(99)))
	assert.NotNil(t, ForMethod(MethodDefault))
	assert.NotNil(t, ForMethod(MethodNatural))
	assert.NotNil(t, ForMethod(MethodCollate))
	assert.NotNil(t, ForMethod(MethodASCII))
}

func TestComparator_DirectoryPartGroupsFirst(t *testing.T) {
	// "a/z" orders before "b/a" because directory parts decide first,
	// regardless of the base-name comparison.
	for _, m := range []Method{MethodDefault, MethodNatural, MethodCollate, MethodASCII} {
		t.Run(m.String(), func(t *testing.T) {
			c := ForMethod(m)
			require.NotNil(t, c)
			assert.Negative(t, c.Compare("a/z", "b/a"))
			assert.Positive(t, c.Compare("b/a", "a/z"))
		})
	}
}

func TestComparator_TrailingSeparatorGroupsDirFirst(t *testing.T) {
	// A directory entry with a trailing separator has an empty base
	// name, so it orders before its own contents.
	c := ForMethod(MethodDefault)
	assert.Negative(t, c.Compare("a/b/", "a/b/x"))
}

func TestComparator_ASCIIKeepsCase(t *testing.T) {
	c := ForMethod(MethodASCII)
	// 'F' < 'f' in raw byte order.
	assert.Negative(t, c.Compare("File", "file"))
}

func TestComparator_CollateTag(t *testing.T) {
	c := ForMethodTag(MethodCollate, language.English)
	require.NotNil(t, c)
	assert.Negative(t, c.Compare("apple", "banana"))
	assert.Zero(t, c.Compare("same", "same"))
}

func TestSort(t *testing.T) {
	t.Run("natural", func(t *testing.T) {
		paths := []string{"d/file10", "d/file2", "d/file1", "c/x"}
		Sort(paths, MethodNatural)
		assert.Equal(t, []string{"c/x", "d/file1", "d/file2", "d/file10"}, paths)
	})

	t.Run("none keeps order", func(t *testing.T) {
		paths := []string{"z", "a", "m"}
		Sort(paths, MethodNone)
		assert.Equal(t, []string{"z", "a", "m"}, paths)
	})

	t.Run("idempotent", func(t *testing.T) {
		paths := []string{"a/File2", "a/file02", "a/file2", "a/file10", "b/x"}
		Sort(paths, MethodNatural)
		sorted := append([]string(nil), paths...)
		Sort(paths, MethodNatural)
		assert.Equal(t, sorted, paths)
	})
}

func TestMethod(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "none", MethodNone.String())
		assert.Equal(t, "natural", MethodNatural.String())
		assert.Equal(t, "Method(42)", Method(42).String())
	})

	t.Run("ParseMethod", func(t *testing.T) {
		m, ok := ParseMethod("collate")
		assert.True(t, ok)
		assert.Equal(t, MethodCollate, m)

		_, ok = ParseMethod("reverse")
		assert.False(t, ok)
	})

	t.Run("IsValid", func(t *testing.T) {
		assert.True(t, MethodASCII.IsValid())
		assert.False(t, Method(-1).IsValid())
	})

	t.Run("ValidMethods", func(t *testing.T) {
		assert.Equal(t, []string{"none", "default", "natural", "collate", "ascii"}, ValidMethods())
	})
}
