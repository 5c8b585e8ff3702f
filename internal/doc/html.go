package doc

import "golang.org/x/net/html"

type htmlNode struct {
	n *html.Node
}

// FromHTML wraps a parsed x/net/html node. It returns nil for a nil node.
func FromHTML(n *html.Node) Node {
	if n == nil {
		return nil
	}
	return htmlNode{n: n}
}

func (h htmlNode) Kind() Kind {
	switch h.n.Type {
	case html.ElementNode:
		return ElementNode
	case html.TextNode:
		return TextNode
	default:
		return OtherNode
	}
}

func (h htmlNode) Tag() string {
	if h.n.Type != html.ElementNode {
		return ""
	}
	return h.n.Data
}

func (h htmlNode) Text() string {
	if h.n.Type != html.TextNode {
		return ""
	}
	return h.n.Data
}

func (h htmlNode) FirstChild() Node  { return FromHTML(h.n.FirstChild) }
func (h htmlNode) NextSibling() Node { return FromHTML(h.n.NextSibling) }
func (h htmlNode) Parent() Node      { return FromHTML(h.n.Parent) }

// rootElement mirrors "document element": the first element child of the
// document node.
func rootElement(d *html.Node) *html.Node {
	for c := d.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}
