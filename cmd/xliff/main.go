// Command xliff reads, validates and converts XLIFF 1.2 and 2.0 documents.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/FocuswithJustin/xliffconv/core/errors"
	"github.com/FocuswithJustin/xliffconv/core/xliff"
	"github.com/FocuswithJustin/xliffconv/core/xml"
	"github.com/FocuswithJustin/xliffconv/internal/bundle"
	"github.com/FocuswithJustin/xliffconv/internal/fileutil"
	"github.com/FocuswithJustin/xliffconv/internal/filter"
	"github.com/FocuswithJustin/xliffconv/internal/logging"
	"github.com/FocuswithJustin/xliffconv/internal/validation"
)

const version = "0.1.0"

// defaultConfigPath is read for flag defaults when it exists.
const defaultConfigPath = "~/.config/xliffconv/config.json"

// CLI defines the command-line interface for xliff.
type CLI struct {
	// Global flags
	Config    kong.ConfigFlag `help:"Load flag defaults from a JSON file" type:"existingfile"`
	LogLevel  string          `name:"log-level" help:"Log level" enum:"debug,info,warn,error" default:"info" env:"XLIFF_LOG_LEVEL"`
	LogFormat string          `name:"log-format" help:"Log format" enum:"text,json" default:"text" env:"XLIFF_LOG_FORMAT"`

	Dump        DumpCmd        `cmd:"" help:"Print the parsed model"`
	Validate    ValidateCmd    `cmd:"" help:"Check documents for structural problems"`
	Convert     ConvertCmd     `cmd:"" help:"Convert a document to another XLIFF version"`
	Fmt         FmtCmd         `cmd:"" help:"Re-serialize a document in its own version"`
	Query       QueryCmd       `cmd:"" help:"Evaluate an XPath expression against a document"`
	Units       UnitsCmd       `cmd:"" help:"List translation units"`
	Export      ExportCmd      `cmd:"" help:"Write a go-i18n message file from one file's translations"`
	Fingerprint FingerprintCmd `cmd:"" help:"Print the content fingerprint of documents"`
	Version     VersionCmd     `cmd:"" help:"Print version information"`
}

// runContext is bound into every command's Run method.
type runContext struct {
	ctx    context.Context
	out    io.Writer
	errOut io.Writer
}

func newRunContext(out, errOut io.Writer) *runContext {
	return &runContext{
		ctx:    logging.WithRunID(context.Background(), logging.NewRunID()),
		out:    out,
		errOut: errOut,
	}
}

// load reads and parses one document.
func (rc *runContext) load(path string) (*xliff.Document, error) {
	data, err := fileutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := xliff.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logging.DocumentLoaded(rc.ctx, path, string(doc.Version), len(doc.Files), countUnits(doc))
	return doc, nil
}

// errInvalid is returned when validation finds problems; the problems
// themselves have already been printed.
var errInvalid = errors.New("validation failed")

// DumpCmd prints the parsed model.
type DumpCmd struct {
	File   string `arg:"" help:"XLIFF document, '-' for stdin"`
	Output string `short:"o" help:"Output encoding" enum:"json,yaml" default:"json"`
	Tree   bool   `help:"Print the XML object notation instead of the model"`
}

func (c *DumpCmd) Run(rc *runContext) error {
	doc, err := rc.load(c.File)
	if err != nil {
		return err
	}

	var v any = doc
	if c.Tree {
		obj, err := xliff.Object(doc, "", nil)
		if err != nil {
			return err
		}
		v = obj
	}
	return encode(rc.out, v, c.Output)
}

// ValidateCmd checks documents and prints every problem found.
type ValidateCmd struct {
	Files  []string `arg:"" help:"XLIFF documents"`
	Strict bool     `help:"Also reject malformed BCP 47 language tags"`
}

func (c *ValidateCmd) Run(rc *runContext) error {
	failed := 0
	for _, path := range c.Files {
		doc, err := rc.load(path)
		if err != nil {
			return err
		}

		result := xliff.Validate(doc)
		problems := result.Errors
		if c.Strict {
			problems = append(problems, xliff.CheckLanguages(doc)...)
		}

		if len(problems) == 0 {
			fmt.Fprintf(rc.out, "%s: valid (XLIFF %s)\n", path, doc.Version)
			continue
		}
		failed++
		logging.ValidationFailed(rc.ctx, path, len(problems))
		for _, p := range problems {
			fmt.Fprintf(rc.out, "%s: %s\n", path, p.Error())
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d documents", errInvalid, failed, len(c.Files))
	}
	return nil
}

// WriteFlags are the serialization flags shared by convert and fmt.
type WriteFlags struct {
	Out           string `short:"O" help:"Output path, '-' for stdout; .xz is compressed" default:"-"`
	Indent        string `help:"Indentation per level (\\t for a tab)" env:"XLIFF_INDENT"`
	Compact       bool   `help:"Write everything on one line"`
	NoDeclaration bool   `name:"no-declaration" help:"Omit the <?xml ...?> declaration"`
}

func (f *WriteFlags) options() *xliff.WriterOptions {
	return &xliff.WriterOptions{
		Format:                 xliff.Bool(!f.Compact),
		Indent:                 strings.ReplaceAll(f.Indent, `\t`, "\t"),
		SuppressXMLDeclaration: f.NoDeclaration,
	}
}

// ConvertCmd converts a document between versions.
type ConvertCmd struct {
	File string `arg:"" help:"XLIFF document, '-' for stdin"`
	To   string `required:"" help:"Target XLIFF version" enum:"1.2,2.0"`
	WriteFlags `embed:""`
	Report bool `help:"Print the loss report to stderr"`
	Force  bool `help:"Convert documents that fail validation"`
}

func (c *ConvertCmd) Run(rc *runContext) error {
	start := time.Now()
	doc, err := rc.load(c.File)
	if err != nil {
		return err
	}

	if !c.Force {
		if result := xliff.Validate(doc); !result.Valid {
			for _, e := range result.Errors {
				fmt.Fprintf(rc.errOut, "%s: %s\n", c.File, e.Error())
			}
			return fmt.Errorf("%w: %s has %d problems, use --force to convert anyway",
				errInvalid, c.File, len(result.Errors))
		}
	}

	target := xliff.Version(c.To)
	converted, report, err := xliff.Convert(doc, target)
	if err != nil {
		return err
	}
	out, err := xliff.Write(converted, target, c.options())
	if err != nil {
		return err
	}
	if err := fileutil.WriteFile(c.Out, []byte(out)); err != nil {
		return err
	}

	logging.Conversion(rc.ctx, string(doc.Version), string(target), string(report.LossClass),
		len(report.LostElements), time.Since(start), "input", c.File, "output", c.Out)

	if c.Report {
		return encode(rc.errOut, report, "json")
	}
	return nil
}

// FmtCmd re-serializes a document in its own version.
type FmtCmd struct {
	File string `arg:"" help:"XLIFF document, '-' for stdin"`
	WriteFlags `embed:""`
}

func (c *FmtCmd) Run(rc *runContext) error {
	doc, err := rc.load(c.File)
	if err != nil {
		return err
	}
	out, err := xliff.Write(doc, "", c.options())
	if err != nil {
		return err
	}
	return fileutil.WriteFile(c.Out, []byte(out))
}

// QueryCmd evaluates an XPath expression against the raw markup.
type QueryCmd struct {
	File string `arg:"" help:"XLIFF or other XML document, '-' for stdin"`
	Expr string `arg:"" help:"XPath expression, e.g. //trans-unit[@approved='yes']/@id"`
}

func (c *QueryCmd) Run(rc *runContext) error {
	data, err := fileutil.ReadFile(c.File)
	if err != nil {
		return err
	}
	results, err := xml.Query(data, c.Expr)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Fprintln(rc.out, r)
	}
	return nil
}

// UnitsCmd lists translation units, optionally filtered.
type UnitsCmd struct {
	File   string `arg:"" help:"XLIFF document, '-' for stdin"`
	Where  string `short:"w" help:"Filter expression, e.g. state = final and target != \"\""`
	Output string `short:"o" help:"Output encoding" enum:"text,json,yaml" default:"text"`
}

// unitRow is one line of units output.
type unitRow struct {
	File   string                 `json:"file" yaml:"file"`
	ID     string                 `json:"id" yaml:"id"`
	State  xliff.TranslationState `json:"state,omitempty" yaml:"state,omitempty"`
	Source string                 `json:"source" yaml:"source"`
	Target *string                `json:"target,omitempty" yaml:"target,omitempty"`
}

func (c *UnitsCmd) Run(rc *runContext) error {
	var f *filter.Filter
	if strings.TrimSpace(c.Where) != "" {
		compiled, err := filter.Compile(c.Where)
		if err != nil {
			return err
		}
		f = compiled
	}

	doc, err := rc.load(c.File)
	if err != nil {
		return err
	}

	rows := []unitRow{}
	for _, file := range doc.Files {
		for _, u := range f.Select(file) {
			rows = append(rows, unitRow{File: file.ID, ID: u.ID, State: u.State, Source: u.Source, Target: u.Target})
		}
	}

	if c.Output != "text" {
		return encode(rc.out, rows, c.Output)
	}

	tw := tabwriter.NewWriter(rc.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tID\tSTATE\tSOURCE\tTARGET")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.File, r.ID, r.State, oneLine(r.Source), oneLine(xliff.Value(r.Target)))
	}
	return tw.Flush()
}

// ExportCmd writes one file's translations as a go-i18n message file.
type ExportCmd struct {
	File   string `arg:"" help:"XLIFF document, '-' for stdin"`
	FileID string `name:"file-id" help:"File to export; may be omitted when the document has one file"`
	Format string `short:"f" help:"Message file encoding" enum:"toml,json,yaml" default:"toml"`
	Source bool   `help:"Export source texts under the source language instead of targets"`
	Dir    string `help:"Directory for the active.<lang>.<format> file" default:"." type:"path"`
	Out    string `short:"O" help:"Explicit output path, '-' for stdout"`
}

func (c *ExportCmd) Run(rc *runContext) error {
	doc, err := rc.load(c.File)
	if err != nil {
		return err
	}
	file, err := selectFile(doc, c.FileID)
	if err != nil {
		return err
	}

	format, err := bundle.ParseFormat(c.Format)
	if err != nil {
		return err
	}

	msgs := bundle.Messages(file)
	lang := xliff.Value(file.TargetLanguage)
	if c.Source {
		msgs = bundle.SourceMessages(file)
		lang = file.SourceLanguage
	}

	data, err := bundle.Encode(msgs, format)
	if err != nil {
		return err
	}
	if lang != "" {
		if err := bundle.Check(file, data, lang, format); err != nil {
			return err
		}
	}

	path := c.Out
	if path == "" {
		if lang == "" {
			return fmt.Errorf("file %s has no target language; use --out or --source", file.ID)
		}
		name, err := bundle.FileName(lang, format)
		if err != nil {
			return err
		}
		rel, err := validation.SanitizePath(c.Dir, name)
		if err != nil {
			return err
		}
		path = filepath.Join(c.Dir, rel)
	}

	if err := fileutil.WriteFile(path, data); err != nil {
		return err
	}
	if path != fileutil.StdStream {
		fmt.Fprintf(rc.out, "Wrote %d messages to %s\n", len(msgs), path)
	}
	return nil
}

// selectFile finds the file with the given id, or the only file when id is empty.
func selectFile(doc *xliff.Document, id string) (*xliff.TranslationFile, error) {
	if id == "" {
		if len(doc.Files) != 1 {
			return nil, fmt.Errorf("document has %d files; choose one with --file-id", len(doc.Files))
		}
		return doc.Files[0], nil
	}
	for _, f := range doc.Files {
		if f != nil && f.ID == id {
			return f, nil
		}
	}
	return nil, errors.NewNotFound("file", id)
}

// FingerprintCmd prints one fingerprint per document.
type FingerprintCmd struct {
	Files []string `arg:"" help:"XLIFF documents"`
}

func (c *FingerprintCmd) Run(rc *runContext) error {
	for _, path := range c.Files {
		doc, err := rc.load(path)
		if err != nil {
			return err
		}
		sum, err := xliff.Fingerprint(doc)
		if err != nil {
			return err
		}
		fmt.Fprintf(rc.out, "%s  %s\n", sum, path)
	}
	return nil
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run(rc *runContext) error {
	fmt.Fprintf(rc.out, "xliff version %s\n", version)
	return nil
}

// Helper functions

func encode(w io.Writer, v any, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}

func countUnits(doc *xliff.Document) int {
	n := 0
	for _, f := range doc.Files {
		if f != nil {
			n += len(f.Units)
		}
	}
	return n
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("xliff"),
		kong.Description("XLIFF 1.2 / 2.0 reader, validator and converter"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Configuration(kong.JSON, defaultConfigPath),
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	// A .env file is optional.
	_ = godotenv.Load()

	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	logging.InitLogger(logging.ParseLevel(cli.LogLevel), logging.ParseFormat(cli.LogFormat))

	rc := newRunContext(os.Stdout, os.Stderr)
	err = ctx.Run(rc)
	if err != nil && !errors.Is(err, errInvalid) {
		logging.CommandError(rc.ctx, ctx.Command(), err)
	}
	ctx.FatalIfErrorf(err)
}
