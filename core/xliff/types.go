package xliff

// Version identifies one of the two supported XLIFF dialects.
type Version string

// Supported versions.
const (
	Version12 Version = "1.2"
	Version20 Version = "2.0"
)

// IsValid returns true if the version is one of the supported dialects.
func (v Version) IsValid() bool {
	return v == Version12 || v == Version20
}

// TranslationState is the completion state of a unit. The zero value means
// no state was recorded.
type TranslationState string

// Translation state constants.
const (
	StateInitial    TranslationState = "initial"
	StateTranslated TranslationState = "translated"
	StateReviewed   TranslationState = "reviewed"
	StateFinal      TranslationState = "final"
)

// validStates is the set of valid translation states.
var validStates = map[TranslationState]bool{
	StateInitial:    true,
	StateTranslated: true,
	StateReviewed:   true,
	StateFinal:      true,
}

// IsValid returns true if the state is one of the four known states.
func (s TranslationState) IsValid() bool {
	return validStates[s]
}

// Document is the root of the normalized model.
type Document struct {
	// Version is the dialect the document was read from or built for.
	Version Version `json:"version" yaml:"version"`

	// Files holds the translatable files in document order.
	Files []*TranslationFile `json:"files" yaml:"files"`
}

// TranslationFile is one translatable resource within a document.
type TranslationFile struct {
	// ID is the 1.2 original attribute or the 2.0 id attribute, "default" when absent.
	ID string `json:"id" yaml:"id"`

	// SourceLanguage is required; an empty value is a validation failure.
	SourceLanguage string `json:"sourceLanguage" yaml:"sourceLanguage"`

	TargetLanguage *string `json:"targetLanguage,omitempty" yaml:"targetLanguage,omitempty"`

	// 1.2 metadata, carried through untouched. Always nil when read from 2.0.
	Original    *string `json:"original,omitempty" yaml:"original,omitempty"`
	Datatype    *string `json:"datatype,omitempty" yaml:"datatype,omitempty"`
	Date        *string `json:"date,omitempty" yaml:"date,omitempty"`
	ProductName *string `json:"productName,omitempty" yaml:"productName,omitempty"`

	// Units holds the translation units in document order.
	Units []*TranslationUnit `json:"units" yaml:"units"`
}

// TranslationUnit is a single source/target string pair.
type TranslationUnit struct {
	ID     string           `json:"id" yaml:"id"`
	Source string           `json:"source" yaml:"source"`
	Target *string          `json:"target,omitempty" yaml:"target,omitempty"`
	State  TranslationState `json:"state,omitempty" yaml:"state,omitempty"`
	Note   *string          `json:"note,omitempty" yaml:"note,omitempty"`
}

// String returns a pointer to s, for filling optional fields.
func String(s string) *string {
	return &s
}

// Value returns the string p points to, or "" when p is nil.
func Value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// present reports whether an optional string is set and non-empty.
func present(p *string) bool {
	return p != nil && *p != ""
}
