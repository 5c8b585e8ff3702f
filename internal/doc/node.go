// Package doc provides the read-only document tree the renderer walks.
//
// A tree is reached through the Node interface only. Trees come from parsed
// Markdown or HTML (ParseMarkdown, ParseHTML) or are built in memory with
// Element and Text.
package doc

// Kind discriminates element nodes from text nodes.
type Kind int

const (
	// OtherNode covers comments, doctypes and anything else the renderer
	// visits without emitting output.
	OtherNode Kind = iota
	ElementNode
	TextNode
)

func (k Kind) String() string {
	switch k {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	default:
		return "other"
	}
}

// Node is one node of a document tree. A nil Node marks the end of a sibling
// chain or a missing child.
type Node interface {
	Kind() Kind
	// Tag is the element name; empty for non-element nodes.
	Tag() string
	// Text is the literal content of a text node; empty otherwise.
	Text() string
	FirstChild() Node
	NextSibling() Node
	Parent() Node
}

// Count returns the number of nodes in the sibling chain starting at n,
// descendants included.
func Count(n Node) int {
	total := 0
	stack := []Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for ; cur != nil; cur = cur.NextSibling() {
			total++
			if c := cur.FirstChild(); c != nil {
				stack = append(stack, c)
			}
		}
	}
	return total
}
