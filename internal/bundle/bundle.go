// Package bundle exports the translations of an XLIFF file as go-i18n
// message files, the active.<lang>.<ext> files loaded by i18n.Bundle.
package bundle

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/FocuswithJustin/xliffconv/core/errors"
	"github.com/FocuswithJustin/xliffconv/core/xliff"
	"github.com/FocuswithJustin/xliffconv/internal/validation"
)

// Format is a message file encoding.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a format name to a Format. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", errors.NewUnsupported("bundle format", s)
	}
}

var unmarshalFuncs = map[string]i18n.UnmarshalFunc{
	"json": json.Unmarshal,
	"toml": toml.Unmarshal,
	"yaml": yaml.Unmarshal,
	"yml":  yaml.Unmarshal,
}

// Messages returns one message per unit that has a non-empty target, in
// document order. The unit note becomes the message description.
func Messages(file *xliff.TranslationFile) []*i18n.Message {
	msgs := []*i18n.Message{}
	if file == nil {
		return msgs
	}
	for _, u := range file.Units {
		if u == nil || xliff.Value(u.Target) == "" {
			continue
		}
		msgs = append(msgs, &i18n.Message{
			ID:          u.ID,
			Description: xliff.Value(u.Note),
			Other:       *u.Target,
		})
	}
	return msgs
}

// SourceMessages is Messages for the source side: every unit with its
// source text.
func SourceMessages(file *xliff.TranslationFile) []*i18n.Message {
	msgs := []*i18n.Message{}
	if file == nil {
		return msgs
	}
	for _, u := range file.Units {
		if u == nil {
			continue
		}
		msgs = append(msgs, &i18n.Message{
			ID:          u.ID,
			Description: xliff.Value(u.Note),
			Other:       u.Source,
		})
	}
	return msgs
}

// Encode renders messages as a go-i18n message file. A message without a
// description is written as a plain string; otherwise as a table with
// description and other keys.
func Encode(messages []*i18n.Message, format Format) ([]byte, error) {
	tree := make(map[string]any, len(messages))
	for _, m := range messages {
		if m.Description == "" {
			tree[m.ID] = m.Other
			continue
		}
		tree[m.ID] = map[string]string{
			"description": m.Description,
			"other":       m.Other,
		}
	}

	switch format {
	case FormatTOML:
		return toml.Marshal(tree)
	case FormatJSON:
		data, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(tree)
	default:
		return nil, errors.NewUnsupported("bundle format", string(format))
	}
}

// FileName returns the go-i18n file name for lang, for example
// active.de-DE.toml.
func FileName(lang string, format Format) (string, error) {
	safe, err := validation.SanitizeFilename(lang)
	if err != nil {
		return "", fmt.Errorf("language %q: %w", lang, err)
	}
	return fmt.Sprintf("active.%s.%s", safe, format), nil
}

// Load parses a message file. The language and format are taken from the
// file name, as i18n.Bundle does.
func Load(data []byte, path string) (*i18n.MessageFile, error) {
	mf, err := i18n.ParseMessageFileBytes(data, path, unmarshalFuncs)
	if err != nil {
		return nil, errors.WrapParse("message file", path, err)
	}
	return mf, nil
}

// NewBundle builds a go-i18n bundle holding the file's source texts under
// its source language and its targets under its target language.
func NewBundle(file *xliff.TranslationFile) (*i18n.Bundle, error) {
	if file == nil {
		return nil, errors.NewNotFound("file", "")
	}
	src, err := language.Parse(file.SourceLanguage)
	if err != nil {
		return nil, errors.NewParse("language tag", file.ID, err.Error())
	}

	b := i18n.NewBundle(src)
	for k, fn := range unmarshalFuncs {
		b.RegisterUnmarshalFunc(k, fn)
	}
	if err := b.AddMessages(src, SourceMessages(file)...); err != nil {
		return nil, err
	}

	if xliff.Value(file.TargetLanguage) != "" {
		trg, err := language.Parse(*file.TargetLanguage)
		if err != nil {
			return nil, errors.NewParse("language tag", file.ID, err.Error())
		}
		if err := b.AddMessages(trg, Messages(file)...); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Check loads data, encoded for lang and format, into the bundle built from
// file, confirming go-i18n will accept the message file as written.
func Check(file *xliff.TranslationFile, data []byte, lang string, format Format) error {
	b, err := NewBundle(file)
	if err != nil {
		return err
	}
	name, err := FileName(lang, format)
	if err != nil {
		return err
	}
	if _, err := b.ParseMessageFileBytes(data, name); err != nil {
		return errors.WrapParse("message file", name, err)
	}
	return nil
}
