package gen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"go/format"
	"go/token"
	"strconv"
	"text/tabwriter"
	"text/template"

	"header-abbrev/internal/mapping"
)

// GeneratorConfig holds configuration for rendering.
type GeneratorConfig struct {
	// Format selects the artifact.
	Format Format
	// PackageName is the package clause of Go output.
	PackageName string
	// VarName is the identifier of the declared mapping (ts and go).
	// Empty uses Format.DefaultVarName.
	VarName string
	// OutputDir receives an unformatted sidecar when Go output fails to format.
	OutputDir string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Format:      FormatTypeScript,
		PackageName: "headers",
	}
}

// Generator renders mappings.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.VarName == "" {
		config.VarName = config.Format.DefaultVarName()
	}

	return &Generator{config: config}
}

// GeneratedFile represents a rendered artifact.
type GeneratedFile struct {
	// Filename is the default name of the file (e.g., "header_mappings.ts").
	Filename string
	// Content is the rendered artifact.
	Content []byte
}

// templateData holds all data needed for the ts and go templates.
type templateData struct {
	PackageName string
	VarName     string
	Entries     []mapping.Entry
}

// Generate renders m in the configured format.
func (g *Generator) Generate(m *mapping.Mapping) (*GeneratedFile, error) {
	filename := "header_mappings." + g.config.Format.Extension()

	var (
		content []byte
		err     error
	)

	switch g.config.Format {
	case FormatTypeScript:
		content, err = g.generateTypeScript(m)
	case FormatGo:
		content, err = g.generateGo(m, filename)
	case FormatYAML:
		content, err = mapping.Marshal(m)
	case FormatText:
		content, err = generateText(m)
	default:
		err = fmt.Errorf("unknown format %q", g.config.Format)
	}

	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", filename, err)
	}

	return &GeneratedFile{Filename: filename, Content: content}, nil
}

func (g *Generator) data(m *mapping.Mapping) *templateData {
	return &templateData{
		PackageName: g.config.PackageName,
		VarName:     g.config.VarName,
		Entries:     m.Entries,
	}
}

func (g *Generator) generateTypeScript(m *mapping.Mapping) ([]byte, error) {
	var buf bytes.Buffer
	if err := tsTemplate.Execute(&buf, g.data(m)); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return buf.Bytes(), nil
}

func (g *Generator) generateGo(m *mapping.Mapping, filename string) ([]byte, error) {
	if !token.IsIdentifier(g.config.PackageName) {
		return nil, fmt.Errorf("invalid package name %q", g.config.PackageName)
	}

	if !token.IsIdentifier(g.config.VarName) {
		return nil, fmt.Errorf("invalid variable name %q", g.config.VarName)
	}

	var buf bytes.Buffer
	if err := goTemplate.Execute(&buf, g.data(m)); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, filename, buf.Bytes())
		}

		return nil, fmt.Errorf("formatting code: %w", err)
	}

	return formatted, nil
}

func generateText(m *mapping.Mapping) ([]byte, error) {
	var buf bytes.Buffer

	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	for _, e := range m.Entries {
		fmt.Fprintf(w, "%s\t%s\n", e.Header, e.Abbreviation)
	}

	if err := w.Flush(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// tsQuote renders s as a JavaScript string literal.
func tsQuote(s string) (string, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(s); err != nil {
		return "", err
	}

	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

var tsTemplate = template.Must(template.New("ts").
	Funcs(template.FuncMap{"quote": tsQuote}).
	Parse(`// Auto-generated header mappings for D2 TXT files
const {{.VarName}}: { [key: string]: string } = {
{{range .Entries}}    {{quote .Header}}: {{quote .Abbreviation}},
{{end}}};
`))

var goTemplate = template.Must(template.New("go").
	Funcs(template.FuncMap{"quote": strconv.Quote}).
	Parse(`// Code generated by header-abbrev. DO NOT EDIT.

package {{.PackageName}}

// {{.VarName}} maps data file headers to column labels of at most eight characters.
var {{.VarName}} = map[string]string{
{{range .Entries}}	{{quote .Header}}: {{quote .Abbreviation}},
{{end}}}
`))
