// Package toc manages the YAML table of contents that orders the woven
// pages and feeds the HTML navigation.
package toc

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Entry is one page of the output document set.
type Entry struct {
	Title string `yaml:"title"`
	Path  string `yaml:"path"`
}

// TOC is the ordered list of output pages.
type TOC struct {
	Entries []Entry `yaml:"toc"`
}

// Load reads a toc.yml file. A missing file yields an empty table of
// contents.
func Load(path string) (*TOC, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &TOC{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var t TOC
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &t, nil
}

// Add appends a page unless its path is already listed. Existing entries
// keep their position and title.
func (t *TOC) Add(title, path string) {
	for _, e := range t.Entries {
		if e.Path == path {
			return
		}
	}
	t.Entries = append(t.Entries, Entry{Title: title, Path: path})
}

// Save writes the table of contents back to path.
func (t *TOC) Save(path string) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal toc: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
