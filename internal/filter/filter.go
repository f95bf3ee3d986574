// Package filter implements the small boolean language used to select
// translation units on the command line, for example:
//
//	state = "final" and not (note ~ "legal" or target = "")
package filter

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/xliffconv/core/errors"
	"github.com/FocuswithJustin/xliffconv/core/xliff"
)

// orExpr is the top of the grammar.
//
//nolint:govet // participle grammar tags are not standard struct tags
type orExpr struct {
	Terms []*andExpr `@@ ( "or" @@ )*`
}

//nolint:govet // participle grammar tags are not standard struct tags
type andExpr struct {
	Factors []*factor `@@ ( "and" @@ )*`
}

//nolint:govet // participle grammar tags are not standard struct tags
type factor struct {
	Not        *factor     `  "not" @@`
	Group      *orExpr     `| "(" @@ ")"`
	Comparison *comparison `| @@`
}

//nolint:govet // participle grammar tags are not standard struct tags
type comparison struct {
	Field string `@Ident`
	Op    string `@( "!=" | "=" | "~" )`
	Value string `@( String | Ident )`
}

// filterLexer tokenizes filter expressions. Bare words double as field
// names, keywords and unquoted values.
var filterLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
	{Name: "Ident", Pattern: `[A-Za-z0-9_][A-Za-z0-9_.\-]*`},
	{Name: "Op", Pattern: `!=|=|~`},
	{Name: "Punct", Pattern: `[()]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var filterParser = participle.MustBuild[orExpr](
	participle.Lexer(filterLexer),
	participle.Unquote("String"),
	participle.Elide("Whitespace"),
)

// fields maps each filterable name to its accessor. Absent optional values
// read as "".
var fields = map[string]func(*xliff.TranslationUnit) string{
	"id":     func(u *xliff.TranslationUnit) string { return u.ID },
	"source": func(u *xliff.TranslationUnit) string { return u.Source },
	"target": func(u *xliff.TranslationUnit) string { return xliff.Value(u.Target) },
	"state":  func(u *xliff.TranslationUnit) string { return string(u.State) },
	"note":   func(u *xliff.TranslationUnit) string { return xliff.Value(u.Note) },
}

// Filter is a compiled expression.
type Filter struct {
	src  string
	root *orExpr
}

// Compile parses src. Field names are checked here, so Match cannot fail.
func Compile(src string) (*Filter, error) {
	root, err := filterParser.ParseString("", src)
	if err != nil {
		return nil, errors.WrapParse("filter", "", err)
	}
	if err := root.check(); err != nil {
		return nil, err
	}
	return &Filter{src: src, root: root}, nil
}

// MustCompile is Compile that panics on error.
func MustCompile(src string) *Filter {
	f, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return f
}

// String returns the source the filter was compiled from.
func (f *Filter) String() string {
	return f.src
}

// Match reports whether u satisfies the filter. A nil filter matches every
// unit and a nil unit matches nothing.
func (f *Filter) Match(u *xliff.TranslationUnit) bool {
	if f == nil {
		return true
	}
	if u == nil {
		return false
	}
	return f.root.eval(u)
}

// Select returns the units of file that match, in document order.
func (f *Filter) Select(file *xliff.TranslationFile) []*xliff.TranslationUnit {
	out := []*xliff.TranslationUnit{}
	if file == nil {
		return out
	}
	for _, u := range file.Units {
		if u != nil && f.Match(u) {
			out = append(out, u)
		}
	}
	return out
}

func (e *orExpr) eval(u *xliff.TranslationUnit) bool {
	for _, t := range e.Terms {
		if t.eval(u) {
			return true
		}
	}
	return false
}

func (e *andExpr) eval(u *xliff.TranslationUnit) bool {
	for _, f := range e.Factors {
		if !f.eval(u) {
			return false
		}
	}
	return true
}

func (f *factor) eval(u *xliff.TranslationUnit) bool {
	switch {
	case f.Not != nil:
		return !f.Not.eval(u)
	case f.Group != nil:
		return f.Group.eval(u)
	default:
		return f.Comparison.eval(u)
	}
}

func (c *comparison) eval(u *xliff.TranslationUnit) bool {
	got := fields[c.Field](u)
	switch c.Op {
	case "=":
		return got == c.Value
	case "!=":
		return got != c.Value
	default:
		return strings.Contains(got, c.Value)
	}
}

func (e *orExpr) check() error {
	for _, t := range e.Terms {
		for _, f := range t.Factors {
			if err := f.check(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (f *factor) check() error {
	switch {
	case f.Not != nil:
		return f.Not.check()
	case f.Group != nil:
		return f.Group.check()
	}
	if _, ok := fields[f.Comparison.Field]; !ok {
		return errors.NewParse("filter", "", fmt.Sprintf("unknown field %q", f.Comparison.Field))
	}
	return nil
}
