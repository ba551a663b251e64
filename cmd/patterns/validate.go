package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nibzard/awesome-agentic-patterns/pkg/core"
)

var (
	validateStrict       bool
	validateCheckContent bool
	validateWarnDangling bool
)

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate the catalogue without emitting artifacts",
	Long: `Validate parses and checks every record, printing diagnostics grouped by
severity. Exit code 0 means success or warnings only; 1 means validation
errors (with --strict, warnings fail too); 2 means the source directory
could not be enumerated at all.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(args)
		if err != nil {
			fatal("configuration", err)
		}

		p, err := newPipeline(cfg, validateStrict, validateCheckContent, validateWarnDangling)
		if err != nil {
			fatal("setup", err)
		}

		result, err := p.Run(context.Background())
		if err != nil {
			if errors.Is(err, core.ErrFatalEnumeration) {
				fatalEnumeration(err)
			}
			fatal("validate", err)
		}

		fmt.Print(result.Report.Summary())

		if result.Report.HasErrors() {
			os.Exit(1)
		}
		if validateStrict && len(result.Report.Warnings()) > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Treat warnings as errors")
	validateCmd.Flags().BoolVar(&validateCheckContent, "check-content", false, "Enable body-content diagnostics")
	validateCmd.Flags().BoolVar(&validateWarnDangling, "warn-dangling", false, "Report dropped cross-references as warnings")
}
