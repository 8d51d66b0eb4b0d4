package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"weave/internal/block"
)

// Config is the weave run configuration, loaded from YAML with environment
// overrides.
type Config struct {
	Project struct {
		Root   string `yaml:"root"`
		Output string `yaml:"output"`
	} `yaml:"project"`
	Weave struct {
		Format  string   `yaml:"format"` // "md" or "html"
		Trim    bool     `yaml:"trim"`
		Include []string `yaml:"include"`
		Exclude []string `yaml:"exclude"`
		TOC     string   `yaml:"toc"`
	} `yaml:"weave"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.Project.Root = "."
	cfg.Project.Output = "docs"
	cfg.Weave.Format = "md"
	cfg.Weave.Trim = true
	cfg.Weave.Include = []string{"**.go", "**.cs", "**.md"}
	cfg.Weave.TOC = "toc.yml"
	return cfg
}

// LoadConfig reads the YAML config at path, falling back to defaults when
// the file does not exist, then applies .env and environment overrides.
func LoadConfig(path string) (*Config, error) {
	// Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	file, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(file, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	// Override with Environment Variables if present
	if format := os.Getenv("WEAVE_FORMAT"); format != "" {
		cfg.Weave.Format = format
	}
	if output := os.Getenv("WEAVE_OUTPUT"); output != "" {
		cfg.Project.Output = output
	}

	return cfg, nil
}

// Format maps the configured format string to a block format.
func (c *Config) Format() (block.Format, error) {
	switch c.Weave.Format {
	case "md", "markdown", "":
		return block.Markdown, nil
	case "html":
		return block.HTML, nil
	default:
		return 0, fmt.Errorf("unknown output format %q", c.Weave.Format)
	}
}
