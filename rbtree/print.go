package rbtree

import (
	"fmt"
	"io"
	"strings"

	"github.com/amp-labs/amp-rbtree/sortable"
)

// IndentStep is how far each tree level is indented by Fprint.
const IndentStep = 5

// Printer renders a tree sideways: right subtree above, left subtree below,
// one "<key> <B|R>" line per node.
type Printer[K sortable.Sortable[K]] struct {
	// Step is the indentation added per level; zero means IndentStep.
	Step int
	// Tag formats the color tag; nil means Color.String.
	Tag func(Color) string
}

// Fprint writes the tree rooted at root to w, starting at the given indent.
func (p Printer[K]) Fprint(w io.Writer, root *Node[K], indent int) error {
	if root.IsNil() {
		return nil
	}

	step := p.Step
	if step <= 0 {
		step = IndentStep
	}

	if err := p.Fprint(w, root.right, indent+step); err != nil {
		return err
	}

	tag := root.color.String()
	if p.Tag != nil {
		tag = p.Tag(root.color)
	}

	if _, err := fmt.Fprintf(w, "%s%v %s\n", strings.Repeat(" ", indent), root.key, tag); err != nil {
		return err
	}

	return p.Fprint(w, root.left, indent+step)
}

// Fprint writes the tree with the default Printer.
func Fprint[K sortable.Sortable[K]](w io.Writer, root *Node[K], indent int) error {
	return Printer[K]{}.Fprint(w, root, indent)
}

// Sprint returns the default rendering of the tree.
func Sprint[K sortable.Sortable[K]](root *Node[K]) string {
	var sb strings.Builder

	_ = Fprint(&sb, root, 0)

	return sb.String()
}
