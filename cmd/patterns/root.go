package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nibzard/awesome-agentic-patterns/pkg/config"
)

var (
	verbose    bool
	configPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Build pipeline for the agentic pattern catalogue",
	Long: `Patterns ingests a directory of Markdown records with YAML frontmatter,
derives missing metadata, cross-links records into a reference graph, and
emits the machine-readable artifacts the site is built from.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default catalog.yaml)")
}

// loadConfig reads the effective configuration, letting an optional
// positional directory argument override the configured records directory.
func loadConfig(args []string) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if len(args) > 0 {
		cfg.Dir = args[0]
	}
	return cfg, nil
}
