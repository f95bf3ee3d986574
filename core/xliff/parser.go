package xliff

import (
	"strconv"

	"github.com/FocuswithJustin/xliffconv/core/errors"
	"github.com/FocuswithJustin/xliffconv/core/xml"
)

const (
	rootElement   = "xliff"
	defaultFileID = "default"
)

// Parse reads an XLIFF document in either dialect. The dialect is chosen by
// the version attribute of the xliff root element.
//
// The returned error is a *errors.ParseError for malformed markup or a
// missing xliff root, and a *errors.UnsupportedError for any version other
// than "1.2" and "2.0". Nothing is recovered from a failed parse.
func Parse(data []byte) (*Document, error) {
	root, err := xml.Parse(data)
	if err != nil {
		if errors.Is(err, xml.ErrNoRoot) {
			return nil, errors.NewParse("XLIFF", "", "missing xliff root element")
		}
		return nil, err
	}
	if root.Name != rootElement {
		return nil, errors.NewParse("XLIFF", "", "missing xliff root element")
	}

	version, _ := root.Attr("version")
	switch Version(version) {
	case Version12:
		return parse12(root), nil
	case Version20:
		return parse20(root), nil
	default:
		return nil, errors.NewUnsupported("XLIFF version", strconv.Quote(version))
	}
}

// ParseString is Parse for string input.
func ParseString(s string) (*Document, error) {
	return Parse([]byte(s))
}

// parse12 walks the 1.2 shape: xliff > file > body > trans-unit. Each file
// carries its own language pair, and approval is the only state recorded.
func parse12(root *xml.Element) *Document {
	doc := &Document{Version: Version12, Files: []*TranslationFile{}}

	for _, f := range root.ChildElements("file") {
		original := f.AttrPtr("original")
		file := &TranslationFile{
			ID:             defaultFileID,
			SourceLanguage: attrValue(f, "source-language"),
			TargetLanguage: f.AttrPtr("target-language"),
			Original:       original,
			Datatype:       f.AttrPtr("datatype"),
			Date:           f.AttrPtr("date"),
			ProductName:    f.AttrPtr("product-name"),
			Units:          []*TranslationUnit{},
		}
		if present(original) {
			file.ID = *original
		}

		for _, tu := range collectUnits(f.First("body"), "trans-unit") {
			state := StateInitial
			if approved, _ := tu.Attr("approved"); approved == "yes" {
				state = StateFinal
			}
			file.Units = append(file.Units, &TranslationUnit{
				ID:     attrValue(tu, "id"),
				Source: Value(tu.ChildText("source")),
				Target: tu.ChildText("target"),
				State:  state,
				Note:   tu.ChildText("note"),
			})
		}

		doc.Files = append(doc.Files, file)
	}

	return doc
}

// parse20 walks the 2.0 shape: xliff > file > unit > segment. The language
// pair is declared once on the root and copied to every file; the segment
// state is taken verbatim.
func parse20(root *xml.Element) *Document {
	doc := &Document{Version: Version20, Files: []*TranslationFile{}}
	srcLang := attrValue(root, "srcLang")
	trgLang := root.AttrPtr("trgLang")

	for _, f := range root.ChildElements("file") {
		file := &TranslationFile{
			ID:             defaultFileID,
			SourceLanguage: srcLang,
			Units:          []*TranslationUnit{},
		}
		if id := attrValue(f, "id"); id != "" {
			file.ID = id
		}
		if trgLang != nil {
			file.TargetLanguage = String(*trgLang)
		}

		for _, u := range collectUnits(f, "unit") {
			seg := u.First("segment")
			state, _ := seg.Attr("state")
			file.Units = append(file.Units, &TranslationUnit{
				ID:     attrValue(u, "id"),
				Source: Value(seg.ChildText("source")),
				Target: seg.ChildText("target"),
				State:  TranslationState(state),
				Note:   u.First("notes").ChildText("note"),
			})
		}

		doc.Files = append(doc.Files, file)
	}

	return doc
}

// collectUnits returns the unit elements under container in document order,
// descending into group elements, which both dialects allow.
func collectUnits(container *xml.Element, name string) []*xml.Element {
	units := []*xml.Element{}
	for _, el := range container.Elements() {
		switch el.Name {
		case name:
			units = append(units, el)
		case "group":
			units = append(units, collectUnits(el, name)...)
		}
	}
	return units
}

func attrValue(el *xml.Element, name string) string {
	v, _ := el.Attr(name)
	return v
}
