package mustache

import (
	"io"
	"strconv"
	"strings"
)

// NodeKind indicates the kind of a [Node].
type NodeKind int

const (
	// NodeText emits literal text.
	NodeText NodeKind = iota

	// NodeVariable emits the value of a name.
	NodeVariable

	// NodeSection renders its children conditionally or repeatedly.
	NodeSection

	// NodePartial renders an externally resolved template.
	NodePartial
)

// String returns a string representation of the node kind.
func (k NodeKind) String() string {
	switch k {
	case NodeText:
		return "Text"

	case NodeVariable:
		return "Variable"

	case NodeSection:
		return "Section"

	case NodePartial:
		return "Partial"

	default:
		return "Unknown"
	}
}

// Node is an element of a parsed template tree.
//
// Sections exclusively own their children; the tree has no back-references.
// Nodes are immutable once returned by [Parse].
type Node struct {
	Kind NodeKind
	// Exactly the fields relevant to Kind are set.
	Text     string  // NodeText: literal text
	Name     string  // NodeVariable, NodeSection, NodePartial: tag name
	Escape   bool    // NodeVariable: HTML-escape the value
	Inverted bool    // NodeSection: render when the name is falsy
	Children []*Node // NodeSection: nested nodes in source order
	Pos      Position
}

// Print writes a formatted representation of nodes to the writer.
func Print(w io.Writer, nodes []*Node) error {
	return PrintIndent(w, nodes, 0)
}

// PrintIndent writes a formatted representation of nodes to the writer
// with the specified indentation.
func PrintIndent(w io.Writer, nodes []*Node, indent int) error {
	for _, n := range nodes {
		err := n.Print(w, indent)
		if err != nil {
			return err
		}
	}

	return nil
}

// Print writes a formatted representation of the node and its children.
func (n *Node) Print(w io.Writer, indent int) error {
	prefix := strings.Repeat("  ", indent)

	_, err := io.WriteString(w, prefix+n.describe()+"\n")
	if err != nil {
		return err
	}

	if n.Kind == NodeSection {
		return PrintIndent(w, n.Children, indent+1)
	}

	return nil
}

// describe returns a single-line description of the node without children.
func (n *Node) describe() string {
	switch n.Kind {
	case NodeText:
		return "Text: " + strconv.Quote(n.Text)

	case NodeVariable:
		if n.Escape {
			return "Variable: " + n.Name
		}

		return "Variable (unescaped): " + n.Name

	case NodeSection:
		if n.Inverted {
			return "Section (inverted): " + n.Name
		}

		return "Section: " + n.Name

	case NodePartial:
		return "Partial: " + n.Name

	default:
		return "Unknown"
	}
}
