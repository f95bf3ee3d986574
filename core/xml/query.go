package xml

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/FocuswithJustin/xliffconv/core/errors"
)

// Query evaluates an XPath expression against raw XML data. Node-set results
// yield one string per node (its string value); scalar results yield a single
// string.
func Query(data []byte, expr string) ([]string, error) {
	compiled, err := xpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid xpath: %w", err)
	}

	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.WrapParse("XML", "", err)
	}

	switch v := compiled.Evaluate(xmlquery.CreateXPathNavigator(doc)).(type) {
	case *xpath.NodeIterator:
		results := []string{}
		for v.MoveNext() {
			results = append(results, v.Current().Value())
		}
		return results, nil
	case float64:
		return []string{strconv.FormatFloat(v, 'f', -1, 64)}, nil
	case bool:
		return []string{strconv.FormatBool(v)}, nil
	case string:
		return []string{v}, nil
	default:
		return nil, fmt.Errorf("xpath query returned unsupported result type %T", v)
	}
}
