package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"header-abbrev/internal/common"
	"header-abbrev/internal/config"
	"header-abbrev/internal/diagnostic"
	"header-abbrev/internal/gen"
	"header-abbrev/internal/headers"
	"header-abbrev/internal/mapping"
)

// pipeline turns an input directory into a rendered mapping.
type pipeline struct {
	cfg    *config.Config
	logger *slog.Logger
}

// build reads every matching file and abbreviates the headers found.
// Unreadable files end up in the returned diagnostics.
func (p *pipeline) build(ctx context.Context) (*mapping.Mapping, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	files, err := headers.Discover(p.cfg.InputDir, p.cfg.Pattern)
	if err != nil {
		return nil, diags, err
	}

	res, err := headers.NewCollector(p.logger).Collect(ctx, files)
	if err != nil {
		return nil, diags, err
	}

	diags.Merge(res.Diagnostics)

	m := mapping.Build(res.Headers.Sorted())

	p.logger.Info("Generated header mappings", "mappings", m.Processed(), "skipped", m.Skipped)

	return m, diags, nil
}

// generator returns the renderer for the configured output.
func (p *pipeline) generator() (*gen.Generator, error) {
	format, err := p.cfg.OutputFormat()
	if err != nil {
		return nil, err
	}

	outDir := filepath.Dir(p.cfg.Output)

	pkg := p.cfg.PackageName
	if pkg == "" {
		pkg = common.PkgName(outDir, gen.DefaultGeneratorConfig().PackageName)
	}

	return gen.NewGenerator(gen.GeneratorConfig{
		Format:      format,
		PackageName: pkg,
		VarName:     p.cfg.VarName,
		OutputDir:   outDir,
	}), nil
}

// render builds the mapping and renders it without writing anything.
func (p *pipeline) render(ctx context.Context) (*mapping.Mapping, *gen.GeneratedFile, diagnostic.Diagnostics, error) {
	m, diags, err := p.build(ctx)
	if err != nil {
		return nil, nil, diags, err
	}

	g, err := p.generator()
	if err != nil {
		return nil, nil, diags, err
	}

	file, err := g.Generate(m)
	if err != nil {
		return nil, nil, diags, err
	}

	return m, file, diags, nil
}

// generate renders the mapping and writes it to the configured output.
func (p *pipeline) generate(ctx context.Context) (*mapping.Mapping, diagnostic.Diagnostics, error) {
	m, file, diags, err := p.render(ctx)
	if err != nil {
		return nil, diags, err
	}

	if err := gen.WriteFile(file, p.cfg.Output); err != nil {
		return nil, diags, err
	}

	p.logger.Info("Mappings saved", "path", p.cfg.Output, "mappings", m.Processed())

	return m, diags, nil
}

// printDiagnostics writes one line per diagnostic.
func printDiagnostics(w io.Writer, d diagnostic.Diagnostics) {
	for _, diag := range d.All() {
		fmt.Fprintf(w, "%s: %s\n", diag.Severity, diag)
	}
}
