package xliff

import (
	"fmt"
	"strings"
)

// ValidationError is a single problem found by Validate.
type ValidationError struct {
	Message string `json:"message" yaml:"message"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
}

func (e ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// ValidationResult is the outcome of Validate. Valid is true iff Errors is empty.
type ValidationResult struct {
	Valid  bool              `json:"valid" yaml:"valid"`
	Errors []ValidationError `json:"errors" yaml:"errors"`
}

// Validate checks the structural invariants of a document and returns every
// violation in document order. It never modifies doc and never fails.
//
// Paths use zero-based indices: files[i].field or files[i].units[j].field.
func Validate(doc *Document) ValidationResult {
	errs := []ValidationError{}

	if doc == nil || len(doc.Files) == 0 {
		errs = append(errs, ValidationError{Message: "Document must contain at least one file"})
		return ValidationResult{Valid: false, Errors: errs}
	}

	for i, file := range doc.Files {
		if file == nil {
			continue
		}
		filePath := fmt.Sprintf("files[%d]", i)

		if !nonEmpty(file.SourceLanguage) {
			errs = append(errs, ValidationError{
				Message: "File must have a source language",
				Path:    filePath + ".sourceLanguage",
			})
		}

		if len(file.Units) == 0 {
			errs = append(errs, ValidationError{
				Message: "File must contain at least one translation unit",
				Path:    filePath + ".units",
			})
			continue
		}

		seen := make(map[string]bool, len(file.Units))
		for j, unit := range file.Units {
			if unit == nil {
				continue
			}
			unitPath := fmt.Sprintf("%s.units[%d]", filePath, j)

			switch {
			case !nonEmpty(unit.ID):
				errs = append(errs, ValidationError{
					Message: "Translation unit must have an ID",
					Path:    unitPath + ".id",
				})
			case seen[unit.ID]:
				errs = append(errs, ValidationError{
					Message: fmt.Sprintf("Duplicate translation unit ID: %s", unit.ID),
					Path:    unitPath + ".id",
				})
			default:
				seen[unit.ID] = true
			}

			if !nonEmpty(unit.Source) {
				errs = append(errs, ValidationError{
					Message: fmt.Sprintf("Translation unit '%s' must have source text", unit.ID),
					Path:    unitPath + ".source",
				})
			}

			if present(unit.Target) && !present(file.TargetLanguage) {
				errs = append(errs, ValidationError{
					Message: fmt.Sprintf("Translation unit '%s' has target text but file has no target language", unit.ID),
					Path:    filePath + ".targetLanguage",
				})
			}
		}
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

func nonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

func nonEmptyPtr(p *string) bool {
	return p != nil && nonEmpty(*p)
}
