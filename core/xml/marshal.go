package xml

import (
	"strings"

	"github.com/FocuswithJustin/xliffconv/core/encoding"
)

// Declaration is the prologue written when MarshalOptions.Declaration is set.
const Declaration = `<?xml version="1.0" encoding="UTF-8"?>`

// MarshalOptions controls XML serialization.
type MarshalOptions struct {
	Format           bool   // newline and indent per nesting level
	Indent           string // indentation unit when Format is set
	Declaration      bool   // emit the XML declaration first
	IgnoreAttributes bool   // drop every attribute
}

// Marshal serializes a tree. Elements without attributes or content are
// written as self-closing tags; elements whose children are all text stay on
// one line. Without Format the output has no newlines at all.
func Marshal(root *Element, opts MarshalOptions) string {
	var sb strings.Builder
	if opts.Declaration {
		sb.WriteString(Declaration)
		if opts.Format {
			sb.WriteByte('\n')
		}
	}
	if root != nil {
		writeElement(&sb, root, 0, opts)
	}
	return sb.String()
}

func writeElement(sb *strings.Builder, el *Element, depth int, opts MarshalOptions) {
	writeIndent(sb, depth, opts)
	sb.WriteByte('<')
	sb.WriteString(el.QName())
	if !opts.IgnoreAttributes {
		for _, a := range el.Attrs {
			sb.WriteByte(' ')
			sb.WriteString(a.Name)
			sb.WriteString(`="`)
			sb.WriteString(encoding.EscapeXMLAttr(a.Value))
			sb.WriteByte('"')
		}
	}

	switch {
	case !el.hasContent():
		sb.WriteString("/>")

	case el.textOnly():
		sb.WriteByte('>')
		for _, c := range el.Children {
			sb.WriteString(encoding.EscapeXMLText(string(c.(Text))))
		}
		writeClose(sb, el)

	default:
		sb.WriteByte('>')
		newline(sb, opts)
		for _, c := range el.Children {
			switch n := c.(type) {
			case *Element:
				writeElement(sb, n, depth+1, opts)
			case Text:
				if strings.TrimSpace(string(n)) == "" {
					continue
				}
				writeIndent(sb, depth+1, opts)
				sb.WriteString(encoding.EscapeXMLText(string(n)))
				newline(sb, opts)
			}
		}
		writeIndent(sb, depth, opts)
		writeClose(sb, el)
	}
	newline(sb, opts)
}

func writeClose(sb *strings.Builder, el *Element) {
	sb.WriteString("</")
	sb.WriteString(el.QName())
	sb.WriteByte('>')
}

func writeIndent(sb *strings.Builder, depth int, opts MarshalOptions) {
	if !opts.Format {
		return
	}
	for i := 0; i < depth; i++ {
		sb.WriteString(opts.Indent)
	}
}

func newline(sb *strings.Builder, opts MarshalOptions) {
	if opts.Format {
		sb.WriteByte('\n')
	}
}
