package render

import (
	"fmt"
	"os"
	"path/filepath"
)

// StylesheetName is the file name of the default theme written next to the
// HTML output.
const StylesheetName = "weave.css"

const defaultStylesheet = `body {
	max-width: 52rem;
	margin: 0 auto;
	padding: 0 1rem;
	font-family: Georgia, serif;
	line-height: 1.5;
	color: #222;
}
nav ul {
	list-style: none;
	padding: 0;
	border-bottom: 1px solid #ddd;
}
nav li {
	display: inline-block;
	margin-right: 1rem;
}
div.code pre {
	background: #f6f8fa;
	border: 1px solid #e1e4e8;
	border-radius: 4px;
	padding: 0.75rem;
	overflow-x: auto;
	font-family: "SFMono-Regular", Consolas, monospace;
	font-size: 0.9em;
}
`

// WriteTheme writes the default stylesheet into dir unless a file with that
// name already exists (a customized theme is kept).
func WriteTheme(dir string) error {
	path := filepath.Join(dir, StylesheetName)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, []byte(defaultStylesheet), 0644); err != nil {
		return fmt.Errorf("failed to write theme: %w", err)
	}
	return nil
}
