package presentation

import (
	"testing"

	"github.com/dverney/espalier/pkg/domain"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func label(n *domain.Node) string {
	return n.Object().(string)
}

func TestRenderer_Render(t *testing.T) {
	root := domain.NewRootNode()
	a := domain.NewNode("a", root)
	a.CanHaveChildren = true
	a1 := domain.NewNode("a1", a)
	b := domain.NewNode("b", root)
	root.SetChildren([]*domain.Node{a, b})
	a.SetChildren([]*domain.Node{a1})

	r := &Renderer{Label: label, Profile: termenv.Ascii}
	want := "├── a\n" +
		"│   └── a1\n" +
		"└── b\n"
	assert.Equal(t, want, r.Render(root))
}

func TestRenderer_NonRootSubtreeIncludesItsOwnLine(t *testing.T) {
	root := domain.NewRootNode()
	a := domain.NewNode("a", root)
	a1 := domain.NewNode("a1", a)
	root.SetChildren([]*domain.Node{a})
	a.SetChildren([]*domain.Node{a1})

	r := &Renderer{Label: label, Profile: termenv.Ascii}
	want := "a\n" +
		"└── a1\n"
	assert.Equal(t, want, r.Render(a))
}

func TestRenderer_DefaultLabel(t *testing.T) {
	root := domain.NewRootNode()
	n := domain.NewNode("hello", root)
	root.SetChildren([]*domain.Node{n})

	r := &Renderer{Profile: termenv.Ascii}
	assert.Equal(t, "└── hello\n", r.Render(root))
}

func TestRenderer_EmptyTree(t *testing.T) {
	r := &Renderer{Profile: termenv.Ascii}
	assert.Equal(t, "", r.Render(domain.NewRootNode()))
}
