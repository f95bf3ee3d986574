package xml

import (
	"bytes"
	stdxml "encoding/xml"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/FocuswithJustin/xliffconv/core/errors"
)

// ErrNoRoot is returned by Parse when the input holds no element at all.
var ErrNoRoot = errors.NewParse("XML", "", "no root element")

// Parse parses XML data and returns its root element.
// Comments, declarations and processing instructions are dropped and
// whitespace-only text between elements is discarded.
func Parse(data []byte) (*Element, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		if !hasElement(data) {
			return nil, ErrNoRoot
		}
		return nil, errors.WrapParse("XML", "", err)
	}
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode {
			return convert(n), nil
		}
	}
	return nil, ErrNoRoot
}

// hasElement reports whether data starts an element before it ends or turns
// malformed. Empty, declaration-only and comment-only input have none.
func hasElement(data []byte) bool {
	d := stdxml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return false
		}
		if err != nil {
			return true
		}
		if _, ok := tok.(stdxml.StartElement); ok {
			return true
		}
	}
}

func convert(n *xmlquery.Node) *Element {
	el := &Element{
		Prefix: n.Prefix,
		Name:   n.Data,
	}
	for _, a := range n.Attr {
		el.Attrs = append(el.Attrs, Attr{Name: attrName(a), Value: a.Value})
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case xmlquery.ElementNode:
			el.Children = append(el.Children, convert(c))
		case xmlquery.TextNode, xmlquery.CharDataNode:
			if strings.TrimSpace(c.Data) == "" {
				continue
			}
			el.Children = append(el.Children, Text(c.Data))
		}
	}
	return el
}

// attrName rebuilds the written form of an attribute name. Depending on how
// the decoder resolved it, Name.Space holds either the prefix or the
// namespace URI; URIs are dropped since namespaces are not modelled.
func attrName(a xmlquery.Attr) string {
	switch {
	case a.Name.Space == "":
		return a.Name.Local
	case a.Name.Space == "xmlns":
		return "xmlns:" + a.Name.Local
	case strings.ContainsAny(a.Name.Space, ":/"):
		return a.Name.Local
	default:
		return a.Name.Space + ":" + a.Name.Local
	}
}
