package filter

import (
	"errors"
	"testing"

	apperrors "github.com/FocuswithJustin/xliffconv/core/errors"
	"github.com/FocuswithJustin/xliffconv/core/xliff"
)

func units() []*xliff.TranslationUnit {
	return []*xliff.TranslationUnit{
		{ID: "greeting", Source: "Hello", Target: xliff.String("Hallo"), State: xliff.StateFinal, Note: xliff.String("Start page")},
		{ID: "farewell", Source: "Goodbye", State: xliff.StateInitial},
		{ID: "legal.terms", Source: "Terms", Target: xliff.String("AGB"), State: xliff.StateReviewed, Note: xliff.String("Reviewed by legal")},
		{ID: "42", Source: "Answer"},
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		expr string
		want []string
	}{
		{`state = "final"`, []string{"greeting"}},
		{`state = final`, []string{"greeting"}},
		{`state != final`, []string{"farewell", "legal.terms", "42"}},
		{`target = ""`, []string{"farewell", "42"}},
		{`note ~ "legal"`, []string{"legal.terms"}},
		{`source ~ "o"`, []string{"greeting", "farewell"}},
		{`id = legal.terms`, []string{"legal.terms"}},
		{`id = 42`, []string{"42"}},
		{`state = ""`, []string{"42"}},
		{`state = final or state = reviewed`, []string{"greeting", "legal.terms"}},
		{`target != "" and not note ~ legal`, []string{"greeting"}},
		{`not (state = final or state = reviewed)`, []string{"farewell", "42"}},
		{`not not id = farewell`, []string{"farewell"}},
		{`id = greeting or id = farewell and state = final`, []string{"greeting"}},
		{`(id = greeting or id = farewell) and state = initial`, []string{"farewell"}},
		{`source = "Say \"hi\""`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			f, err := Compile(tt.expr)
			if err != nil {
				t.Fatalf("Compile(%q) failed: %v", tt.expr, err)
			}
			var got []string
			for _, u := range units() {
				if f.Match(u) {
					got = append(got, u.ID)
				}
			}
			if len(got) != len(tt.want) {
				t.Fatalf("matched %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("matched %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

// TestCompileErrors verifies malformed expressions and unknown fields are parse errors.
func TestCompileErrors(t *testing.T) {
	for _, expr := range []string{
		``,
		`state`,
		`state =`,
		`state == final`,
		`(state = final`,
		`state = final)`,
		`state = final and`,
		`language = de`,
		`not (colour = red)`,
		`source ~ "unterminated`,
	} {
		_, err := Compile(expr)
		if err == nil {
			t.Errorf("Compile(%q) should fail", expr)
			continue
		}
		var pe *apperrors.ParseError
		if !errors.As(err, &pe) || !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Errorf("Compile(%q) error = %T %v, want ParseError", expr, err, err)
		}
	}
}

func TestNilFilterAndUnit(t *testing.T) {
	var f *Filter
	if !f.Match(&xliff.TranslationUnit{}) {
		t.Error("nil filter should match everything")
	}
	if MustCompile(`id != x`).Match(nil) {
		t.Error("nil unit should not match")
	}
}

func TestSelect(t *testing.T) {
	file := &xliff.TranslationFile{Units: append(units(), nil)}

	got := MustCompile(`target != ""`).Select(file)
	if len(got) != 2 || got[0].ID != "greeting" || got[1].ID != "legal.terms" {
		t.Errorf("Select = %v", got)
	}
	if got := MustCompile(`id = x`).Select(nil); got == nil || len(got) != 0 {
		t.Errorf("Select(nil) = %v, want empty slice", got)
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompile should panic on a bad expression")
		}
	}()
	MustCompile(`bogus = 1`)
}

func TestString(t *testing.T) {
	src := `state = final`
	if got := MustCompile(src).String(); got != src {
		t.Errorf("String() = %q", got)
	}
}
