package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"weave/internal/config"
	"weave/internal/weaver"
)

var (
	rootCmd = &cobra.Command{
		Use:   "weave [path]",
		Short: "Literate-programming document generator",
		Long: "weave reads source and markdown files, splits them into " +
			"documentation and code blocks, resolves named code regions " +
			"referenced as <<name>> lines in markdown, and writes the woven " +
			"documents as markdown or HTML.",
		Args: cobra.MaximumNArgs(1),
		Run:  runWeave,
	}
	configPath string
	outputDir  string
	format     string
	noTrim     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "weave.yml", "Path to the run configuration")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (overrides config)")
	rootCmd.Flags().StringVarP(&format, "format", "f", "", "Output format: md or html (overrides config)")
	rootCmd.Flags().BoolVar(&noTrim, "no-trim", false, "Keep the leading indentation of documentation comments")
}

func runWeave(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if len(args) > 0 {
		cfg.Project.Root = args[0]
	}
	if outputDir != "" {
		cfg.Project.Output = outputDir
	}
	if format != "" {
		cfg.Weave.Format = format
	}
	if noTrim {
		cfg.Weave.Trim = false
	}

	w, err := weaver.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize weaver: %v", err)
	}

	fmt.Printf("Weaving %s -> %s\n", cfg.Project.Root, cfg.Project.Output)
	results, err := w.Run(context.Background())
	for _, res := range results {
		color.Green("  ok  %s -> %s", res.Input, res.Output)
	}
	if err != nil {
		color.Red("  fail %v", err)
		os.Exit(1)
	}
	fmt.Printf("Woven %d file(s).\n", len(results))
}
