package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dverney/espalier"
	fsadapter "github.com/dverney/espalier/pkg/adapters/fs"
	"github.com/dverney/espalier/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scaffold creates:
//
//	dir/
//	├── docs/
//	│   └── readme.md
//	├── .hidden
//	└── notes.txt
func scaffold(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "readme.md"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	return dir
}

func entryName(n *domain.Node) string {
	return n.Object().(*fsadapter.Entry).Name
}

func TestDelegate_ScansDirectory(t *testing.T) {
	dir := scaffold(t)
	c := espalier.NewTreeController(fsadapter.New(dir))
	root := c.RootNode()

	// ReadDir answers in name order; dotfiles are skipped by default.
	require.Equal(t, 2, root.NumberOfChildren())
	assert.Equal(t, "docs", entryName(root.ChildAt(0)))
	assert.Equal(t, "notes.txt", entryName(root.ChildAt(1)))

	docs := root.ChildAt(0)
	assert.True(t, docs.CanHaveChildren)
	require.Equal(t, 1, docs.NumberOfChildren())
	assert.Equal(t, "readme.md", entryName(docs.ChildAt(0)))
	assert.False(t, docs.ChildAt(0).CanHaveChildren)
}

func TestDelegate_WithHidden(t *testing.T) {
	dir := scaffold(t)
	c := espalier.NewTreeController(fsadapter.New(dir, fsadapter.WithHidden()))

	require.Equal(t, 3, c.RootNode().NumberOfChildren())
	assert.Equal(t, ".hidden", entryName(c.RootNode().ChildAt(0)))
}

func TestDelegate_StableIdentityAcrossRescans(t *testing.T) {
	dir := scaffold(t)
	c := espalier.NewTreeController(fsadapter.New(dir))

	docs := c.RootNode().ChildAt(0)
	readme := docs.ChildAt(0)

	assert.False(t, c.Rebuild(), "nothing changed on disk")
	assert.Equal(t, docs, c.RootNode().ChildAt(0))
	assert.Equal(t, readme, docs.ChildAt(0))
}

func TestDelegate_DetectsCreateAndRemove(t *testing.T) {
	dir := scaffold(t)
	c := espalier.NewTreeController(fsadapter.New(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "todo.txt"), []byte("x"), 0o644))
	assert.True(t, c.Rebuild())
	assert.Equal(t, 3, c.RootNode().NumberOfChildren())

	require.NoError(t, os.Remove(filepath.Join(dir, "todo.txt")))
	assert.True(t, c.Rebuild())
	assert.Equal(t, 2, c.RootNode().NumberOfChildren())
}

func TestDelegate_UnreadableDirectoryAnswersEmpty(t *testing.T) {
	d := fsadapter.New(filepath.Join(t.TempDir(), "does-not-exist"))
	c := espalier.NewTreeController(d)
	assert.True(t, c.RootNode().IsLeaf())
}

func TestDelegate_Watch(t *testing.T) {
	dir := scaffold(t)
	d := fsadapter.New(dir)
	espalier.NewTreeController(d)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := d.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x"), 0o644))

	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatal("no change signal after file creation")
	}

	cancel()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return // closed when the context ends
			}
			// drain coalesced signals emitted before the cancel
		case <-deadline:
			t.Fatal("channel not closed after cancel")
		}
	}
}
