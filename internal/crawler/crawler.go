// Package crawler selects the input files of a weave run: it walks the
// project root and matches files against the configured include and exclude
// patterns.
package crawler

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/gobwas/glob"
)

// Crawler scans a directory tree for files to weave.
type Crawler struct {
	include []glob.Glob
	exclude []glob.Glob
	ignored []string
}

// NewCrawler compiles the include and exclude glob patterns. A file is
// selected when it matches any include pattern and no exclude pattern.
func NewCrawler(include, exclude []string) (*Crawler, error) {
	c := &Crawler{
		ignored: []string{".git", "vendor", "node_modules", "testdata"},
	}
	for _, pattern := range include {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("bad include pattern %q: %w", pattern, err)
		}
		c.include = append(c.include, g)
	}
	for _, pattern := range exclude {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("bad exclude pattern %q: %w", pattern, err)
		}
		c.exclude = append(c.exclude, g)
	}
	return c, nil
}

// Walk traverses root and calls onFile with the root-relative slash path of
// every selected file, in lexical walk order.
func (c *Crawler) Walk(root string, onFile func(rel string) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Skip ignored directories
		if d.IsDir() {
			for _, ign := range c.ignored {
				if d.Name() == ign {
					return filepath.SkipDir
				}
			}
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !c.selected(rel) {
			return nil
		}
		return onFile(rel)
	})
}

func (c *Crawler) selected(rel string) bool {
	matched := false
	for _, g := range c.include {
		if g.Match(rel) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	for _, g := range c.exclude {
		if g.Match(rel) {
			return false
		}
	}
	return true
}
