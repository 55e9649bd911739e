// Package main provides the mdchunk CLI application.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/bbarker/listnr-tools/internal/config"
	"github.com/bbarker/listnr-tools/internal/emit"
	"github.com/bbarker/listnr-tools/internal/pipeline"
	"github.com/bbarker/listnr-tools/internal/subst"
	"github.com/bbarker/listnr-tools/internal/version"
	"github.com/spf13/cobra"
)

var log *slog.Logger

var (
	inputPath  string
	substPath  string
	configPath string
	outputPath string
	limit      int
	separator  string
)

// rootCmd runs the chunking pipeline over one markdown file.
var rootCmd = &cobra.Command{
	Use:   "mdchunk",
	Short: "Split a markdown document into size-bounded text chunks",
	Long: `mdchunk reads a markdown file, optionally rewrites literal substrings
from a two-column CSV table, and partitions the document's text content into
ordered, size-bounded chunks. Oversized code listings are replaced by a short
placeholder.

Each chunk is written as a record: a separator line carrying the chunk's
character length, the chunk text, and a blank line.`,
	Version:       version.String(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			log.Error("invalid configuration", "error", err)
			return err
		}
		if err := runChunk(cfg); err != nil {
			log.Error("chunking failed", "error", err)
			return err
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "input markdown file (required)")
	rootCmd.Flags().StringVarP(&substPath, "substitutions", "s", "", "optional CSV file of from,to substitution pairs")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write records to a file instead of stdout")
	rootCmd.Flags().IntVar(&limit, "limit", 1500, "maximum chunk length in characters")
	rootCmd.Flags().StringVar(&separator, "separator", " ", "joiner between adjacent leaves within a chunk")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "optional YAML config file")
	rootCmd.MarkFlagRequired("input")
}

// resolveConfig layers settings: defaults, then the config file, then
// environment variables, then explicitly set flags.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		if err := cfg.ApplyFile(configPath); err != nil {
			return cfg, err
		}
	}
	cfg.ApplyEnv()
	if cmd.Flags().Changed("limit") {
		cfg.Limit = limit
	}
	if cmd.Flags().Changed("separator") {
		cfg.Separator = separator
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runChunk(cfg config.Config) error {
	content, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var table *subst.Table
	if substPath != "" {
		var skipped int
		table, skipped, err = subst.LoadCSV(substPath)
		if err != nil {
			return err
		}
		if skipped > 0 {
			log.Warn("skipped malformed substitution rows", "file", substPath, "rows", skipped)
		}
	}

	chunks, err := pipeline.New(table, cfg).RunBytes(content)
	if err != nil {
		return err
	}

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	return emit.Write(out, chunks)
}
