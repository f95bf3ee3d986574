package xliff

import (
	"fmt"

	"golang.org/x/text/language"
)

// CheckLanguages reports every non-empty source or target language that is
// not a well-formed BCP 47 tag. Validate does not call it; empty languages
// are Validate's concern.
func CheckLanguages(doc *Document) []ValidationError {
	errs := []ValidationError{}
	if doc == nil {
		return errs
	}

	for i, f := range doc.Files {
		if f == nil {
			continue
		}
		filePath := fmt.Sprintf("files[%d]", i)

		if nonEmpty(f.SourceLanguage) {
			if _, err := language.Parse(f.SourceLanguage); err != nil {
				errs = append(errs, ValidationError{
					Message: fmt.Sprintf("Invalid source language tag %q: %v", f.SourceLanguage, err),
					Path:    filePath + ".sourceLanguage",
				})
			}
		}
		if nonEmptyPtr(f.TargetLanguage) {
			if _, err := language.Parse(*f.TargetLanguage); err != nil {
				errs = append(errs, ValidationError{
					Message: fmt.Sprintf("Invalid target language tag %q: %v", *f.TargetLanguage, err),
					Path:    filePath + ".targetLanguage",
				})
			}
		}
	}

	return errs
}
