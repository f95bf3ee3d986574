// Package xliff reads, checks and writes XLIFF 1.2 and 2.0 translation
// documents through one version-agnostic model.
//
// # Core Types
//
// The model is organized hierarchically:
//
//   - Document: the root, carrying the dialect version
//   - TranslationFile: one translatable resource with its language pair
//   - TranslationUnit: one source/target string pair with state and note
//
// # Operations
//
//   - Parse: markup in either dialect to a Document, version auto-detected
//   - Validate: structural and referential checks, all problems collected
//   - Write: a Document to markup in either dialect
//   - Convert: dialect conversion inside the model, with a LossReport
//
// Parsing and writing go through the generic tree in core/xml. Each dialect
// has its own extraction and build routine; nothing is shared between them
// beyond that tree.
//
// # Lossy Conversion
//
// XLIFF 1.2 only records approval, so "translated" and "reviewed" collapse to
// "initial" when written as 1.2. XLIFF 2.0 declares one language pair for the
// whole document, taken from the first file. 1.2 file metadata has no 2.0
// counterpart. Convert reports each of these as a LostElement.
//
// # Example
//
//	doc, err := xliff.Parse(data)
//	if err != nil {
//	    return err
//	}
//	if res := xliff.Validate(doc); !res.Valid {
//	    return fmt.Errorf("invalid document: %v", res.Errors)
//	}
//	out, err := xliff.Write(doc, xliff.Version20, nil)
//
// All functions are pure; none keeps state between calls.
package xliff
