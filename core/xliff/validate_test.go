package xliff

import (
	"reflect"
	"strings"
	"testing"
)

// TestValidateValid verifies a well-formed document passes.
func TestValidateValid(t *testing.T) {
	res := Validate(sampleDocument(Version12))
	if !res.Valid {
		t.Errorf("sample document should be valid: %v", res.Errors)
	}
	if res.Errors == nil || len(res.Errors) != 0 {
		t.Errorf("Errors = %#v, want empty slice", res.Errors)
	}
}

// TestValidateNoFiles verifies the short-circuit on an empty document.
func TestValidateNoFiles(t *testing.T) {
	for _, doc := range []*Document{nil, {Version: Version12}, {Version: Version20, Files: []*TranslationFile{}}} {
		res := Validate(doc)
		if res.Valid {
			t.Error("document without files should be invalid")
		}
		want := []ValidationError{{Message: "Document must contain at least one file"}}
		if !reflect.DeepEqual(res.Errors, want) {
			t.Errorf("Errors = %#v, want %#v", res.Errors, want)
		}
	}
}

// TestValidateRules verifies each rule's message and path.
func TestValidateRules(t *testing.T) {
	tests := []struct {
		name string
		file *TranslationFile
		want []ValidationError
	}{
		{
			name: "missing source language",
			file: &TranslationFile{SourceLanguage: "  ", Units: []*TranslationUnit{{ID: "a", Source: "x"}}},
			want: []ValidationError{{Message: "File must have a source language", Path: "files[0].sourceLanguage"}},
		},
		{
			name: "no units",
			file: &TranslationFile{SourceLanguage: "", Units: nil},
			want: []ValidationError{
				{Message: "File must have a source language", Path: "files[0].sourceLanguage"},
				{Message: "File must contain at least one translation unit", Path: "files[0].units"},
			},
		},
		{
			name: "missing unit id",
			file: &TranslationFile{SourceLanguage: "en", Units: []*TranslationUnit{{ID: " ", Source: "x"}}},
			want: []ValidationError{{Message: "Translation unit must have an ID", Path: "files[0].units[0].id"}},
		},
		{
			name: "missing source",
			file: &TranslationFile{SourceLanguage: "en", Units: []*TranslationUnit{{ID: "a", Source: "\n\t"}}},
			want: []ValidationError{{Message: "Translation unit 'a' must have source text", Path: "files[0].units[0].source"}},
		},
		{
			name: "target without language",
			file: &TranslationFile{SourceLanguage: "en", Units: []*TranslationUnit{{ID: "a", Source: "x", Target: String("y")}}},
			want: []ValidationError{{Message: "Translation unit 'a' has target text but file has no target language", Path: "files[0].targetLanguage"}},
		},
		{
			name: "target with empty language",
			file: &TranslationFile{SourceLanguage: "en", TargetLanguage: String(""), Units: []*TranslationUnit{{ID: "a", Source: "x", Target: String("y")}}},
			want: []ValidationError{{Message: "Translation unit 'a' has target text but file has no target language", Path: "files[0].targetLanguage"}},
		},
		{
			name: "whitespace target needs a language",
			file: &TranslationFile{SourceLanguage: "en", Units: []*TranslationUnit{{ID: "a", Source: "x", Target: String("  ")}}},
			want: []ValidationError{{Message: "Translation unit 'a' has target text but file has no target language", Path: "files[0].targetLanguage"}},
		},
		{
			name: "empty target needs no language",
			file: &TranslationFile{SourceLanguage: "en", Units: []*TranslationUnit{{ID: "a", Source: "x", Target: String("")}}},
			want: []ValidationError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(&Document{Version: Version12, Files: []*TranslationFile{tt.file}})
			if !reflect.DeepEqual(res.Errors, tt.want) {
				t.Errorf("Errors = %#v\nwant %#v", res.Errors, tt.want)
			}
			if res.Valid != (len(tt.want) == 0) {
				t.Errorf("Valid = %v with %d errors", res.Valid, len(res.Errors))
			}
		})
	}
}

// TestValidateDuplicateIDs verifies only the second and later occurrences are flagged.
func TestValidateDuplicateIDs(t *testing.T) {
	doc := &Document{
		Version: Version12,
		Files: []*TranslationFile{
			{SourceLanguage: "en", Units: []*TranslationUnit{
				{ID: "k", Source: "one"},
				{ID: "other", Source: "two"},
				{ID: "k", Source: "three"},
			}},
			{SourceLanguage: "en", Units: []*TranslationUnit{
				{ID: "k", Source: "ids are scoped per file"},
				{ID: "k", Source: "x"},
				{ID: "k", Source: "y"},
			}},
		},
	}

	res := Validate(doc)
	want := []ValidationError{
		{Message: "Duplicate translation unit ID: k", Path: "files[0].units[2].id"},
		{Message: "Duplicate translation unit ID: k", Path: "files[1].units[1].id"},
		{Message: "Duplicate translation unit ID: k", Path: "files[1].units[2].id"},
	}
	if !reflect.DeepEqual(res.Errors, want) {
		t.Errorf("Errors = %#v\nwant %#v", res.Errors, want)
	}
}

// TestValidateAccumulates verifies every problem is reported in document order.
func TestValidateAccumulates(t *testing.T) {
	doc := &Document{
		Version: Version20,
		Files: []*TranslationFile{
			{SourceLanguage: "", Units: []*TranslationUnit{
				{ID: "", Source: "", Target: String("t")},
			}},
			{SourceLanguage: "en"},
		},
	}

	res := Validate(doc)
	var paths []string
	for _, e := range res.Errors {
		paths = append(paths, e.Path)
	}
	want := []string{
		"files[0].sourceLanguage",
		"files[0].units[0].id",
		"files[0].units[0].source",
		"files[0].targetLanguage",
		"files[1].units",
	}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("paths = %v, want %v", paths, want)
	}
}

// TestValidateTargetLanguageFix verifies setting a target language clears the error.
func TestValidateTargetLanguageFix(t *testing.T) {
	doc := sampleDocument(Version12)
	doc.Files[0].TargetLanguage = nil

	res := Validate(doc)
	if res.Valid || len(res.Errors) != 1 || !strings.Contains(res.Errors[0].Message, "no target language") {
		t.Fatalf("Errors = %v", res.Errors)
	}

	doc.Files[0].TargetLanguage = String("de")
	if res := Validate(doc); !res.Valid {
		t.Errorf("document should be valid once targetLanguage is set: %v", res.Errors)
	}
}

// TestValidatePure verifies Validate leaves the document untouched and is repeatable.
func TestValidatePure(t *testing.T) {
	doc := &Document{
		Version: Version12,
		Files: []*TranslationFile{{SourceLanguage: "en", Units: []*TranslationUnit{
			{ID: "k", Source: " padded "},
			{ID: "k", Source: ""},
		}}},
	}
	before, err := Fingerprint(doc)
	if err != nil {
		t.Fatalf("Fingerprint failed: %v", err)
	}

	first := Validate(doc)
	second := Validate(doc)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ:\n%#v\n%#v", first, second)
	}

	after, err := Fingerprint(doc)
	if err != nil {
		t.Fatalf("Fingerprint failed: %v", err)
	}
	if before != after {
		t.Error("Validate modified the document")
	}
	if doc.Files[0].Units[0].Source != " padded " {
		t.Error("Validate trimmed a source in place")
	}
}

// TestValidateNilEntries verifies nil files and units are skipped.
func TestValidateNilEntries(t *testing.T) {
	doc := &Document{Files: []*TranslationFile{nil, {SourceLanguage: "en", Units: []*TranslationUnit{nil, {ID: "a", Source: "x"}}}}}
	if res := Validate(doc); !res.Valid {
		t.Errorf("nil entries should be skipped: %v", res.Errors)
	}
}

func TestValidationErrorString(t *testing.T) {
	e := ValidationError{Message: "File must have a source language", Path: "files[0].sourceLanguage"}
	if got := e.Error(); got != "files[0].sourceLanguage: File must have a source language" {
		t.Errorf("Error() = %q", got)
	}
	if got := (ValidationError{Message: "m"}).Error(); got != "m" {
		t.Errorf("Error() = %q", got)
	}
}
