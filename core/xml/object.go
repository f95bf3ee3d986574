package xml

// Object notation conventions used when no others are given.
const (
	DefaultAttributePrefix = "@_"
	DefaultTextKey         = "#text"
)

// ObjectOptions controls ToObject.
type ObjectOptions struct {
	AttributePrefix  string // prefix on attribute keys, DefaultAttributePrefix when empty
	TextKey          string // key for text next to attributes or elements, DefaultTextKey when empty
	IgnoreAttributes bool
}

// ToObject renders a tree in attribute-prefixed object notation, the shape
// produced by JavaScript XML tree libraries: attributes become prefixed keys,
// a repeated child becomes a slice and a single child a bare value, and an
// element with only text collapses to a string.
func ToObject(root *Element, opts ObjectOptions) map[string]any {
	if opts.AttributePrefix == "" {
		opts.AttributePrefix = DefaultAttributePrefix
	}
	if opts.TextKey == "" {
		opts.TextKey = DefaultTextKey
	}
	if root == nil {
		return map[string]any{}
	}
	return map[string]any{root.QName(): objectValue(root, opts)}
}

func objectValue(el *Element, opts ObjectOptions) any {
	attrs := el.Attrs
	if opts.IgnoreAttributes {
		attrs = nil
	}
	if len(attrs) == 0 && el.textOnly() {
		return el.Text()
	}

	obj := make(map[string]any, len(attrs)+len(el.Children))
	for _, a := range attrs {
		obj[opts.AttributePrefix+a.Name] = a.Value
	}
	if text := el.Text(); text != "" && el.textOnly() {
		obj[opts.TextKey] = text
	}
	for _, c := range el.Children {
		child, ok := c.(*Element)
		if !ok {
			continue
		}
		key := child.QName()
		v := objectValue(child, opts)
		switch existing := obj[key].(type) {
		case nil:
			obj[key] = v
		case []any:
			obj[key] = append(existing, v)
		default:
			obj[key] = []any{existing, v}
		}
	}
	return obj
}

// AsSlice normalizes an object-notation value the way Children normalizes
// elements: nil gives an empty slice, a slice is returned unchanged and any
// single value is wrapped.
func AsSlice(v any) []any {
	switch s := v.(type) {
	case nil:
		return []any{}
	case []any:
		return s
	default:
		return []any{s}
	}
}
