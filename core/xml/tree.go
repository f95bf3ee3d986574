// Package xml provides the generic attributed-element tree that sits between
// raw markup and the dialect-specific XLIFF routines.
//
// A tree is built either by Parse (markup in) or by hand (markup out) and
// serialized with Marshal. Attributes, child elements and text content are
// kept apart by type rather than by key naming, so a single child and a
// repeated child never need disambiguating: ChildElements always returns a
// slice.
//
// Security Notes:
//   - XXE (External Entity) attacks are mitigated by parsing through
//     xmlquery, which uses Go's xml.Decoder and never fetches external
//     entities.
package xml

import "strings"

// Node is either an *Element or a Text.
type Node interface {
	isNode()
}

// Attr is a single attribute. Order is preserved.
type Attr struct {
	Name  string
	Value string
}

// Element is a named node with ordered attributes and children.
type Element struct {
	Prefix   string
	Name     string
	Attrs    []Attr
	Children []Node
}

// Text is character data. CDATA sections are folded into Text on parse.
type Text string

func (*Element) isNode() {}
func (Text) isNode()     {}

// NewElement creates an element with the given attributes.
func NewElement(name string, attrs ...Attr) *Element {
	return &Element{Name: name, Attrs: attrs}
}

// NewTextElement creates an element holding a single text child.
func NewTextElement(name, text string) *Element {
	el := &Element{Name: name}
	if text != "" {
		el.Children = []Node{Text(text)}
	}
	return el
}

// SetAttr sets an attribute, replacing an existing one of the same name.
func (e *Element) SetAttr(name, value string) *Element {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

// Append adds children in order and returns the element.
func (e *Element) Append(children ...Node) *Element {
	e.Children = append(e.Children, children...)
	return e
}

// Attr returns the value of an attribute and whether it was present.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil {
		return "", false
	}
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttrPtr returns the attribute value, or nil when the attribute is absent.
func (e *Element) AttrPtr(name string) *string {
	v, ok := e.Attr(name)
	if !ok {
		return nil
	}
	return &v
}

// ChildElements returns the child elements with the given name in document order.
// Absent yields an empty slice, one yields a one-element slice.
func (e *Element) ChildElements(name string) []*Element {
	if e == nil {
		return []*Element{}
	}
	out := []*Element{}
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok && el.Name == name {
			out = append(out, el)
		}
	}
	return out
}

// Elements returns all child elements in document order.
func (e *Element) Elements() []*Element {
	if e == nil {
		return nil
	}
	var out []*Element
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// First returns the first child element with the given name, or nil.
func (e *Element) First(name string) *Element {
	if e == nil {
		return nil
	}
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok && el.Name == name {
			return el
		}
	}
	return nil
}

// Text returns the concatenated text of the element and its descendants
// with surrounding whitespace trimmed.
func (e *Element) Text() string {
	if e == nil {
		return ""
	}
	var sb strings.Builder
	e.collectText(&sb)
	return strings.TrimSpace(sb.String())
}

func (e *Element) collectText(sb *strings.Builder) {
	for _, c := range e.Children {
		switch n := c.(type) {
		case Text:
			sb.WriteString(string(n))
		case *Element:
			n.collectText(sb)
		}
	}
}

// ChildText returns the text of the first child with the given name, or nil
// when there is no such child. An empty child yields a pointer to "".
func (e *Element) ChildText(name string) *string {
	el := e.First(name)
	if el == nil {
		return nil
	}
	s := el.Text()
	return &s
}

// QName returns the prefixed name of the element.
func (e *Element) QName() string {
	if e.Prefix != "" {
		return e.Prefix + ":" + e.Name
	}
	return e.Name
}

// hasContent reports whether any child carries markup or non-empty text.
func (e *Element) hasContent() bool {
	for _, c := range e.Children {
		switch n := c.(type) {
		case *Element:
			return true
		case Text:
			if n != "" {
				return true
			}
		}
	}
	return false
}

// textOnly reports whether every child is text.
func (e *Element) textOnly() bool {
	for _, c := range e.Children {
		if _, ok := c.(*Element); ok {
			return false
		}
	}
	return true
}
