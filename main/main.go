package main

import (
	"log"

	"github.com/rawbytedev/ownkit/pkg/box"
)

type node interface {
	Clone() node
	Describe() string
}

type leaf struct{ name string }

func (l *leaf) Clone() node      { c := *l; return &c }
func (l *leaf) Describe() string { return "leaf " + l.name }

type branch struct {
	leaf
	children []box.Box[node]
}

func (b *branch) Clone() node {
	c := branch{leaf: b.leaf, children: make([]box.Box[node], len(b.children))}
	for i := range b.children {
		c.children[i] = b.children[i].Clone()
	}
	return &c
}

func (b *branch) Describe() string {
	s := "branch " + b.name
	for i := range b.children {
		s += " (" + b.children[i].Must().Describe() + ")"
	}
	return s
}

func main() {
	root := box.Adopt[node](&branch{
		leaf: leaf{name: "root"},
		children: []box.Box[node]{
			box.Adopt[node](&leaf{name: "a"}),
			box.Adopt[node](&leaf{name: "b"}),
		},
	})

	copied := root.Clone()
	copied.Must().(*branch).children[0].Must().(*leaf).name = "a2"

	log.Printf("original: %s", root.Must().Describe())
	log.Printf("deep copy: %s", copied.Must().Describe())
	log.Printf("same object: %v", root.Same(copied))
}
