// Package weaver drives one weave run: it crawls the project, extracts
// blocks and macros from source files, expands macro references in markdown
// files, and writes the rendered documents. Source files are processed
// strictly before markdown files so that the macro table is fully written
// before it is read.
package weaver

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"weave/internal/block"
	"weave/internal/config"
	"weave/internal/crawler"
	"weave/internal/expand"
	"weave/internal/extract"
	"weave/internal/macro"
	"weave/internal/render"
	"weave/internal/source"
	"weave/internal/toc"
)

// FileResult reports one woven file.
type FileResult struct {
	Input  string
	Output string
}

// Weaver holds the run-scoped state: configuration, output format and the
// macro table shared by every file of the run.
type Weaver struct {
	cfg      *config.Config
	format   block.Format
	table    *macro.Table
	contents *toc.TOC
}

// New prepares a weaver from the run configuration.
func New(cfg *config.Config) (*Weaver, error) {
	format, err := cfg.Format()
	if err != nil {
		return nil, err
	}
	return &Weaver{
		cfg:    cfg,
		format: format,
		table:  macro.NewTable(),
	}, nil
}

// Run weaves the whole project and returns the per-file results in
// processing order. The first failing file aborts the run.
func (w *Weaver) Run(ctx context.Context) ([]FileResult, error) {
	// Never re-weave our own output. Root and output may mix relative and
	// absolute forms, so normalize both before relating them.
	exclude := append([]string{}, w.cfg.Weave.Exclude...)
	rootAbs, rootErr := filepath.Abs(w.cfg.Project.Root)
	outAbs, outErr := filepath.Abs(w.cfg.Project.Output)
	if rootErr == nil && outErr == nil {
		if rel, err := filepath.Rel(rootAbs, outAbs); err == nil &&
			rel != "." && !strings.HasPrefix(rel, "..") {
			exclude = append(exclude, filepath.ToSlash(rel)+"/**")
		}
	}

	cr, err := crawler.NewCrawler(w.cfg.Weave.Include, exclude)
	if err != nil {
		return nil, err
	}

	var sources, documents []string
	err = cr.Walk(w.cfg.Project.Root, func(rel string) error {
		switch {
		case source.Supported(rel):
			sources = append(sources, rel)
		case strings.EqualFold(filepath.Ext(rel), ".md"):
			documents = append(documents, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to crawl %s: %w", w.cfg.Project.Root, err)
	}

	if err := os.MkdirAll(w.cfg.Project.Output, 0755); err != nil {
		return nil, err
	}
	w.contents, err = toc.Load(filepath.Join(w.cfg.Project.Output, w.cfg.Weave.TOC))
	if err != nil {
		return nil, err
	}

	// Every output page is known after the crawl; register them all before
	// rendering so the navigation is complete and identical on each page.
	for _, rel := range sources {
		w.contents.Add(filepath.Base(rel), outputPath(rel, w.format))
	}
	for _, rel := range documents {
		w.contents.Add(filepath.Base(rel), outputPath(rel, w.format))
	}

	var results []FileResult

	// Phase 1: sources fill the macro table.
	for _, rel := range sources {
		seq, err := w.weaveSource(ctx, rel)
		if err != nil {
			return results, fmt.Errorf("%s: %w", rel, err)
		}
		out, err := w.write(rel, seq)
		if err != nil {
			return results, fmt.Errorf("%s: %w", rel, err)
		}
		results = append(results, FileResult{Input: rel, Output: out})
	}

	// Phase 2: markdown documents read the macro table.
	for _, rel := range documents {
		seq, err := w.expandDocument(rel)
		if err != nil {
			return results, fmt.Errorf("%s: %w", rel, err)
		}
		out, err := w.write(rel, seq)
		if err != nil {
			return results, fmt.Errorf("%s: %w", rel, err)
		}
		results = append(results, FileResult{Input: rel, Output: out})
	}

	if w.format == block.HTML {
		if err := render.WriteTheme(w.cfg.Project.Output); err != nil {
			return results, err
		}
	}
	tocPath := filepath.Join(w.cfg.Project.Output, w.cfg.Weave.TOC)
	if err := w.contents.Save(tocPath); err != nil {
		return results, err
	}
	return results, nil
}

func (w *Weaver) weaveSource(ctx context.Context, rel string) (*block.Sequence, error) {
	src, err := os.ReadFile(filepath.Join(w.cfg.Project.Root, rel))
	if err != nil {
		return nil, err
	}
	lang, err := source.ForFile(rel)
	if err != nil {
		return nil, err
	}
	tokens, err := lang.Tokenize(ctx, src)
	if err != nil {
		return nil, err
	}
	ext := extract.New(w.table, extract.Options{
		Trim:   w.cfg.Weave.Trim,
		Format: w.format,
	})
	return ext.Run(tokens)
}

func (w *Weaver) expandDocument(rel string) (*block.Sequence, error) {
	text, err := os.ReadFile(filepath.Join(w.cfg.Project.Root, rel))
	if err != nil {
		return nil, err
	}
	return expand.Expand(string(text), w.table)
}

// write renders the sequence and writes it under the output directory.
// Source pages keep their full file name with the output extension
// appended; markdown pages swap their extension.
func (w *Weaver) write(rel string, seq *block.Sequence) (string, error) {
	out := outputPath(rel, w.format)
	title := filepath.Base(rel)

	var text string
	switch w.format {
	case block.HTML:
		// Nested pages link the stylesheet and the nav targets relative
		// to their own directory.
		nav := make([]toc.Entry, len(w.contents.Entries))
		for i, e := range w.contents.Entries {
			nav[i] = toc.Entry{Title: e.Title, Path: relHref(out, e.Path)}
		}
		html, err := render.HTML(seq, title, relHref(out, render.StylesheetName), nav)
		if err != nil {
			return "", err
		}
		text = html
	default:
		text = render.Markdown(seq)
	}

	abs := filepath.Join(w.cfg.Project.Output, filepath.FromSlash(out))
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(abs, []byte(text), 0644); err != nil {
		return "", err
	}
	return out, nil
}

// relHref rewrites an output-root-relative link target so that it resolves
// from the directory of the given page. Both arguments are slash paths
// relative to the output root.
func relHref(page, target string) string {
	rel, err := filepath.Rel(path.Dir(page), target)
	if err != nil {
		return target
	}
	return filepath.ToSlash(rel)
}

func outputPath(rel string, format block.Format) string {
	ext := ".md"
	if format == block.HTML {
		ext = ".html"
	}
	if strings.EqualFold(filepath.Ext(rel), ".md") {
		return strings.TrimSuffix(rel, filepath.Ext(rel)) + ext
	}
	return rel + ext
}
