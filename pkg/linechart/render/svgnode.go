package render

import (
	"encoding/xml"
	"strings"
)

// Attr is a single element attribute.
type Attr struct {
	Name, Value string
}

// Node is an element of an SVG drawing tree.
type Node struct {
	Name     string
	Attrs    []Attr
	Text     string
	Children []*Node

	handlers *PointerHandlers
}

// newNode creates an element; attrs are name/value pairs.
func newNode(name string, attrs ...string) *Node {
	n := &Node{Name: name}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Set(attrs[i], attrs[i+1])
	}
	return n
}

// Set adds or replaces an attribute and returns n.
func (n *Node) Set(name, value string) *Node {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
	return n
}

// Attr returns the value of an attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// HasClass reports whether the class attribute lists class.
func (n *Node) HasClass(class string) bool {
	v, ok := n.Attr("class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// Append adds child as the last child of n and returns child.
func (n *Node) Append(child *Node) *Node {
	n.Children = append(n.Children, child)
	return child
}

// SelectAll returns every descendant of n carrying class, in document
// order.
func (n *Node) SelectAll(class string) []*Node {
	var out []*Node
	n.walk(func(c *Node) {
		if c.HasClass(class) {
			out = append(out, c)
		}
	})
	return out
}

// Select returns the first descendant carrying class, or nil.
func (n *Node) Select(class string) *Node {
	if all := n.SelectAll(class); len(all) > 0 {
		return all[0]
	}
	return nil
}

// RemoveAll removes every direct child carrying class.
func (n *Node) RemoveAll(class string) {
	kept := n.Children[:0]
	for _, c := range n.Children {
		if !c.HasClass(class) {
			kept = append(kept, c)
		}
	}
	for i := len(kept); i < len(n.Children); i++ {
		n.Children[i] = nil
	}
	n.Children = kept
}

func (n *Node) walk(fn func(*Node)) {
	for _, c := range n.Children {
		fn(c)
		c.walk(fn)
	}
}

func (n *Node) encode(enc *xml.Encoder) error {
	start := xml.StartElement{Name: xml.Name{Local: n.Name}}
	for _, a := range n.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if n.Text != "" {
		if err := enc.EncodeToken(xml.CharData(n.Text)); err != nil {
			return err
		}
	}
	for _, c := range n.Children {
		if err := c.encode(enc); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
