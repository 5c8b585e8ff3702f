package doc

// Mem is an in-memory tree node built with Element and Text.
type Mem struct {
	kind     Kind
	tag      string
	text     string
	parent   *Mem
	children []*Mem
	index    int
}

// Element returns an element node owning children, in order.
func Element(tag string, children ...*Mem) *Mem {
	e := &Mem{kind: ElementNode, tag: tag}
	for _, c := range children {
		e.Append(c)
	}
	return e
}

// Text returns a text node.
func Text(s string) *Mem {
	return &Mem{kind: TextNode, text: s}
}

// Append adds c as the last child of m and returns m.
func (m *Mem) Append(c *Mem) *Mem {
	c.parent = m
	c.index = len(m.children)
	m.children = append(m.children, c)
	return m
}

func (m *Mem) Kind() Kind     { return m.kind }
func (m *Mem) Tag() string    { return m.tag }
func (m *Mem) Text() string   { return m.text }
func (m *Mem) Children() int { return len(m.children) }

func (m *Mem) FirstChild() Node {
	if len(m.children) == 0 {
		return nil
	}
	return m.children[0]
}

func (m *Mem) NextSibling() Node {
	if m.parent == nil || m.index+1 >= len(m.parent.children) {
		return nil
	}
	return m.parent.children[m.index+1]
}

func (m *Mem) Parent() Node {
	if m.parent == nil {
		return nil
	}
	return m.parent
}
