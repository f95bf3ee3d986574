package xliff

import (
	"strconv"

	"github.com/FocuswithJustin/xliffconv/core/errors"
	"github.com/FocuswithJustin/xliffconv/core/xml"
)

// Namespace URIs written on the xliff root element.
const (
	Namespace12 = "urn:oasis:names:tc:xliff:document:1.2"
	Namespace20 = "urn:oasis:names:tc:xliff:document:2.0"
)

// fallbackSourceLanguage is written as srcLang when a 2.0 document is built
// from a model whose first file has no source language.
const fallbackSourceLanguage = "en"

// WriterOptions controls serialization. Unset fields take the values from
// DefaultWriterOptions.
type WriterOptions struct {
	// Format pretty-prints with one element per line. Defaults to true.
	Format *bool `json:"format,omitempty"`

	// Indent is repeated once per nesting level when formatting. Defaults to four spaces.
	Indent string `json:"indent,omitempty"`

	// SuppressXMLDeclaration omits the leading <?xml ...?> line.
	SuppressXMLDeclaration bool `json:"suppressXmlDeclaration,omitempty"`

	// IgnoreAttributes drops every attribute from the output.
	IgnoreAttributes bool `json:"ignoreAttributes,omitempty"`

	// AttributeNamePrefix marks attribute keys in the object notation
	// returned by Object. Defaults to "@_".
	AttributeNamePrefix string `json:"attributeNamePrefix,omitempty"`
}

// DefaultWriterOptions returns the options used when none are given.
func DefaultWriterOptions() WriterOptions {
	return WriterOptions{
		Format:              Bool(true),
		Indent:              "    ",
		AttributeNamePrefix: xml.DefaultAttributePrefix,
	}
}

// Bool returns a pointer to b, for WriterOptions.Format.
func Bool(b bool) *bool {
	return &b
}

// withDefaults merges opts over the defaults.
func (o *WriterOptions) withDefaults() WriterOptions {
	merged := DefaultWriterOptions()
	if o == nil {
		return merged
	}
	if o.Format != nil {
		merged.Format = Bool(*o.Format)
	}
	if o.Indent != "" {
		merged.Indent = o.Indent
	}
	if o.AttributeNamePrefix != "" {
		merged.AttributeNamePrefix = o.AttributeNamePrefix
	}
	merged.SuppressXMLDeclaration = o.SuppressXMLDeclaration
	merged.IgnoreAttributes = o.IgnoreAttributes
	return merged
}

// Write serializes doc in the target dialect. An empty target keeps
// doc.Version; a different one converts the structure, dropping whatever the
// target cannot express (see Convert for a report of what is lost).
//
// Write does not validate: duplicate ids or missing sources are written as
// they are. The only error is an unsupported target version.
func Write(doc *Document, target Version, opts *WriterOptions) (string, error) {
	root, err := Tree(doc, target)
	if err != nil {
		return "", err
	}
	o := opts.withDefaults()
	return xml.Marshal(root, xml.MarshalOptions{
		Format:           *o.Format,
		Indent:           o.Indent,
		Declaration:      !o.SuppressXMLDeclaration,
		IgnoreAttributes: o.IgnoreAttributes,
	}), nil
}

// Tree builds the generic element tree Write serializes.
func Tree(doc *Document, target Version) (*xml.Element, error) {
	if doc == nil {
		doc = &Document{}
	}
	if target == "" {
		target = doc.Version
	}
	switch target {
	case Version12:
		return build12(doc), nil
	case Version20:
		return build20(doc), nil
	default:
		return nil, errors.NewUnsupported("XLIFF version", strconv.Quote(string(target)))
	}
}

// Object returns the tree in attribute-prefixed object notation, keyed with
// opts.AttributeNamePrefix.
func Object(doc *Document, target Version, opts *WriterOptions) (map[string]any, error) {
	root, err := Tree(doc, target)
	if err != nil {
		return nil, err
	}
	o := opts.withDefaults()
	return xml.ToObject(root, xml.ObjectOptions{
		AttributePrefix:  o.AttributeNamePrefix,
		IgnoreAttributes: o.IgnoreAttributes,
	}), nil
}

// build12 is the inverse of parse12. Only StateFinal survives, as
// approved="yes"; a 2.0 file id is written back as the original attribute.
func build12(doc *Document) *xml.Element {
	root := xml.NewElement(rootElement,
		xml.Attr{Name: "version", Value: string(Version12)},
		xml.Attr{Name: "xmlns", Value: Namespace12},
	)

	for _, f := range doc.Files {
		if f == nil {
			continue
		}
		original := f.Original
		if !present(original) && f.ID != "" && f.ID != defaultFileID {
			original = String(f.ID)
		}

		file := xml.NewElement("file", xml.Attr{Name: "source-language", Value: f.SourceLanguage})
		setOptionalAttr(file, "target-language", f.TargetLanguage)
		setOptionalAttr(file, "datatype", f.Datatype)
		setOptionalAttr(file, "original", original)
		setOptionalAttr(file, "date", f.Date)
		setOptionalAttr(file, "product-name", f.ProductName)

		body := xml.NewElement("body")
		for _, u := range f.Units {
			if u == nil {
				continue
			}
			tu := xml.NewElement("trans-unit", xml.Attr{Name: "id", Value: u.ID})
			if u.State == StateFinal {
				tu.SetAttr("approved", "yes")
			}
			tu.Append(xml.NewTextElement("source", u.Source))
			appendOptionalText(tu, "target", u.Target)
			appendOptionalText(tu, "note", u.Note)
			body.Append(tu)
		}

		file.Append(xml.NewElement("header"), body)
		root.Append(file)
	}

	return root
}

// build20 is the inverse of parse20. The language pair of the first file is
// declared for the whole document; other files' pairs are not written.
func build20(doc *Document) *xml.Element {
	srcLang := fallbackSourceLanguage
	var trgLang *string
	if len(doc.Files) > 0 && doc.Files[0] != nil {
		if doc.Files[0].SourceLanguage != "" {
			srcLang = doc.Files[0].SourceLanguage
		}
		trgLang = doc.Files[0].TargetLanguage
	}

	root := xml.NewElement(rootElement,
		xml.Attr{Name: "version", Value: string(Version20)},
		xml.Attr{Name: "xmlns", Value: Namespace20},
		xml.Attr{Name: "srcLang", Value: srcLang},
	)
	setOptionalAttr(root, "trgLang", trgLang)

	for _, f := range doc.Files {
		if f == nil {
			continue
		}
		file := xml.NewElement("file", xml.Attr{Name: "id", Value: f.ID})

		for _, u := range f.Units {
			if u == nil {
				continue
			}
			unit := xml.NewElement("unit", xml.Attr{Name: "id", Value: u.ID})
			if present(u.Note) {
				unit.Append(xml.NewElement("notes").Append(xml.NewTextElement("note", *u.Note)))
			}

			segment := xml.NewElement("segment")
			if u.State != "" {
				segment.SetAttr("state", string(u.State))
			}
			segment.Append(xml.NewTextElement("source", u.Source))
			appendOptionalText(segment, "target", u.Target)

			unit.Append(segment)
			file.Append(unit)
		}

		root.Append(file)
	}

	return root
}

func setOptionalAttr(el *xml.Element, name string, value *string) {
	if present(value) {
		el.SetAttr(name, *value)
	}
}

func appendOptionalText(el *xml.Element, name string, value *string) {
	if present(value) {
		el.Append(xml.NewTextElement(name, *value))
	}
}
