package xliff

import (
	"fmt"
	"strconv"

	"github.com/FocuswithJustin/xliffconv/core/errors"
)

// Convert returns a copy of doc as it reads back after being written in the
// target dialect, along with a report of everything the target could not
// express. doc itself is not modified. An empty target keeps doc.Version.
//
// Converting and then writing gives the same markup as writing directly;
// Convert exists so callers can see the loss before committing to it.
func Convert(doc *Document, target Version) (*Document, *LossReport, error) {
	if doc == nil {
		doc = &Document{}
	}
	if target == "" {
		target = doc.Version
	}
	if !target.IsValid() {
		return nil, nil, errors.NewUnsupported("XLIFF version", strconv.Quote(string(target)))
	}

	report := &LossReport{
		SourceVersion: doc.Version,
		TargetVersion: target,
		LossClass:     LossL0,
	}
	out := &Document{Version: target, Files: make([]*TranslationFile, 0, len(doc.Files))}

	for _, f := range doc.Files {
		if f == nil {
			continue
		}
		out.Files = append(out.Files, copyFile(f))
	}

	switch target {
	case Version12:
		convertTo12(out, report)
	case Version20:
		convertTo20(out, report)
	}

	return out, report, nil
}

func convertTo12(doc *Document, report *LossReport) {
	for i, f := range doc.Files {
		filePath := fmt.Sprintf("files[%d]", i)

		switch {
		case present(f.Original):
			if f.ID != *f.Original {
				report.addLoss(LossL1, filePath+".id", "id",
					"XLIFF 1.2 identifies files by their original attribute", f.ID)
			}
			f.ID = *f.Original
		case f.ID != "" && f.ID != defaultFileID:
			f.Original = String(f.ID)
		default:
			f.ID = defaultFileID
		}

		for j, u := range f.Units {
			switch u.State {
			case StateFinal, StateInitial:
			case "":
				u.State = StateInitial
			default:
				report.addLoss(LossL2, fmt.Sprintf("%s.units[%d].state", filePath, j), "state",
					"XLIFF 1.2 records approval only", string(u.State))
				u.State = StateInitial
			}
		}
	}
}

func convertTo20(doc *Document, report *LossReport) {
	srcLang := fallbackSourceLanguage
	var trgLang *string
	if len(doc.Files) > 0 {
		if doc.Files[0].SourceLanguage != "" {
			srcLang = doc.Files[0].SourceLanguage
		}
		if present(doc.Files[0].TargetLanguage) {
			trgLang = String(*doc.Files[0].TargetLanguage)
		}
	}

	for i, f := range doc.Files {
		filePath := fmt.Sprintf("files[%d]", i)

		if i > 0 && (f.SourceLanguage != srcLang || Value(f.TargetLanguage) != Value(trgLang)) {
			report.addLoss(LossL2, filePath, "language pair",
				"XLIFF 2.0 declares one language pair per document",
				f.SourceLanguage+"/"+Value(f.TargetLanguage))
		}
		f.SourceLanguage = srcLang
		f.TargetLanguage = nil
		if trgLang != nil {
			f.TargetLanguage = String(*trgLang)
		}

		if f.ID == "" {
			f.ID = defaultFileID
		}
		metadata := []struct {
			name  string
			value **string
		}{
			{"original", &f.Original},
			{"datatype", &f.Datatype},
			{"date", &f.Date},
			{"product-name", &f.ProductName},
		}
		for _, m := range metadata {
			if present(*m.value) && !(m.name == "original" && **m.value == f.ID) {
				report.addLoss(LossL1, filePath+"."+m.name, m.name,
					"XLIFF 2.0 has no file metadata attributes", **m.value)
			}
			*m.value = nil
		}
	}
}

// copyFile returns a deep copy of f with empty optional strings cleared,
// matching what a parse of the written document would yield.
func copyFile(f *TranslationFile) *TranslationFile {
	c := &TranslationFile{
		ID:             f.ID,
		SourceLanguage: f.SourceLanguage,
		TargetLanguage: copyOptional(f.TargetLanguage),
		Original:       copyOptional(f.Original),
		Datatype:       copyOptional(f.Datatype),
		Date:           copyOptional(f.Date),
		ProductName:    copyOptional(f.ProductName),
		Units:          make([]*TranslationUnit, 0, len(f.Units)),
	}
	for _, u := range f.Units {
		if u == nil {
			continue
		}
		c.Units = append(c.Units, &TranslationUnit{
			ID:     u.ID,
			Source: u.Source,
			Target: copyOptional(u.Target),
			State:  u.State,
			Note:   copyOptional(u.Note),
		})
	}
	return c
}

func copyOptional(p *string) *string {
	if !present(p) {
		return nil
	}
	return String(*p)
}
