package outline_test

import (
	"strings"
	"testing"

	"github.com/dverney/espalier"
	"github.com/dverney/espalier/pkg/adapters/outline"
	"github.com/dverney/espalier/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
title: Reading list
items:
  - text: Fiction
    group: true
    items:
      - text: Piranesi
      - text: The Dispossessed
  - text: Inbox
`

func TestParse(t *testing.T) {
	doc, err := outline.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, "Reading list", doc.Title)
	require.Len(t, doc.Items, 2)
	assert.Equal(t, "Fiction", doc.Items[0].Text)
	assert.True(t, doc.Items[0].Group)
	require.Len(t, doc.Items[0].Items, 2)
	assert.Equal(t, "Inbox", doc.Items[1].Text)
}

func TestParse_Rejections(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"unknown field", "items:\n  - text: a\n    color: red\n"},
		{"missing text", "items:\n  - group: true\n"},
		{"nested missing text", "items:\n  - text: a\n    items:\n      - group: true\n"},
		{"not yaml", "{{nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := outline.Parse(strings.NewReader(tt.in))
			assert.Error(t, err)
		})
	}
}

func TestDelegate_ServesDocument(t *testing.T) {
	doc, err := outline.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	c := espalier.NewTreeController(outline.NewDelegate(doc))
	root := c.RootNode()

	require.Equal(t, 2, root.NumberOfChildren())
	fiction := root.ChildAt(0)
	assert.True(t, fiction.IsGroup)
	assert.True(t, fiction.CanHaveChildren)
	require.Equal(t, 2, fiction.NumberOfChildren())
	assert.Equal(t, "Piranesi", fiction.ChildAt(0).Object().(*outline.Item).Text)

	inbox := root.ChildAt(1)
	assert.False(t, inbox.CanHaveChildren)
	assert.True(t, inbox.IsLeaf())
}

func TestDelegate_StableUntilDocumentSwapped(t *testing.T) {
	doc, err := outline.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	d := outline.NewDelegate(doc)
	c := espalier.NewTreeController(d)
	fiction := c.RootNode().ChildAt(0)

	assert.False(t, c.Rebuild())
	assert.Equal(t, fiction, c.RootNode().ChildAt(0))

	doc2, err := outline.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	d.SetDocument(doc2)

	assert.True(t, c.Rebuild(), "fresh item pointers replace every child list")
	assert.NotEqual(t, fiction, c.RootNode().ChildAt(0))
	assert.Equal(t, "Fiction", c.RootNode().ChildAt(0).Object().(*outline.Item).Text)
}

func TestDelegate_NilDocument(t *testing.T) {
	c := espalier.NewTreeController(outline.NewDelegate(nil))
	assert.True(t, c.RootNode().IsLeaf())
}

func TestDelegate_PathToItem(t *testing.T) {
	doc, err := outline.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	c := espalier.NewTreeController(outline.NewDelegate(doc))
	target := doc.Items[0].Items[1]

	path, ok := domain.NodePathFromObject(target, c)
	require.True(t, ok)
	assert.Equal(t, 3, path.Len())
	assert.Equal(t, target, path.Node().Object())
}
