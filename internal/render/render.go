// Package render lays a document tree out into a grid.Buffer as a man-page
// like listing: headings get fixed preambles and labels, body text is wrapped
// at the buffer width and indented with a tab.
package render

import (
	"strings"

	"github.com/hellricer/mandown/internal/doc"
	"github.com/hellricer/mandown/internal/grid"
)

// DefaultTitle is the first line written for a top-level heading.
const DefaultTitle = "README(7)"

type Option func(*Renderer)

// WithTitle replaces DefaultTitle in the top-level heading preamble.
func WithTitle(title string) Option {
	return func(r *Renderer) { r.title = title }
}

// WithTrace registers fn to be called after each visited node has been
// written.
func WithTrace(fn func(n doc.Node, buf *grid.Buffer)) Option {
	return func(r *Renderer) { r.trace = fn }
}

// Renderer writes a document tree into a buffer. It is the buffer's only
// writer while Render runs.
type Renderer struct {
	buf    *grid.Buffer
	title  string
	trace  func(doc.Node, *grid.Buffer)
	visits int
}

func New(buf *grid.Buffer, opts ...Option) *Renderer {
	r := &Renderer{buf: buf, title: DefaultTitle}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Visits reports how many nodes Render has entered so far.
func (r *Renderer) Visits() int { return r.visits }

// Render walks n, its descendants and its following siblings in document
// order: a node's own output, then its children, then its next sibling.
func (r *Renderer) Render(n doc.Node) {
	stack := []doc.Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == nil {
			continue
		}
		r.visits++
		r.node(cur)
		if r.trace != nil {
			r.trace(cur, r.buf)
		}
		// Sibling goes under the child so the whole subtree is done first.
		stack = append(stack, cur.NextSibling(), cur.FirstChild())
	}
}

func (r *Renderer) node(n doc.Node) {
	switch n.Kind() {
	case doc.ElementNode:
		r.buf.WriteString(r.preamble(n.Tag()))
	case doc.TextNode:
		writeText(r.buf, n.Text(), indentFor(n.Parent()))
	}
}

func (r *Renderer) preamble(tag string) string {
	switch tag {
	case "h1":
		return r.title + "\n\nNAME\n\t"
	case "h2":
		return "\n"
	case "h3":
		return "\n" + strings.Repeat(" ", 3)
	case "h4":
		return "\n" + strings.Repeat(" ", 6) + "SECTION: "
	case "h5":
		return "\n" + strings.Repeat(" ", 9) + "SUB SECTION: "
	case "h6":
		return "\n" + strings.Repeat(" ", 12) + "POINT: "
	}
	return ""
}

// indentFor picks the indent glyph for text directly under parent. Only the
// immediate parent counts.
func indentFor(parent doc.Node) rune {
	if parent == nil || parent.Kind() != doc.ElementNode {
		return noIndent
	}
	switch parent.Tag() {
	case "p", "code", "li":
		return '\t'
	}
	// ol, ul, strong, em and unknown tags.
	return noIndent
}
