package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/flist/internal/fsid"
)

func TestAncestryStack(t *testing.T) {
	var s ancestryStack

	root := fsid.Identity{Dev: 1, Ino: 100}
	s.push(root)
	assert.Equal(t, 1, s.depth())
	assert.Equal(t, root, s.root())
	assert.True(t, s.contains(root))

	child := fsid.Identity{Dev: 1, Ino: 200}
	s.push(child)
	assert.Equal(t, 2, s.depth())
	assert.Equal(t, root, s.root(), "root stays at the bottom")
	assert.True(t, s.contains(child))
	assert.False(t, s.contains(fsid.Identity{Dev: 1, Ino: 300}))
	assert.False(t, s.contains(fsid.Identity{Dev: 2, Ino: 200}), "same inode on another device is a different object")

	s.pop()
	assert.False(t, s.contains(child), "popped identities leave the chain")
	assert.True(t, s.contains(root))
}
