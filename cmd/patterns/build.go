package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nibzard/awesome-agentic-patterns/pkg/config"
	"github.com/nibzard/awesome-agentic-patterns/pkg/core"
	"github.com/nibzard/awesome-agentic-patterns/pkg/pipeline"
	"github.com/nibzard/awesome-agentic-patterns/pkg/schema"
)

var (
	buildOut          string
	buildStrict       bool
	buildWarnDangling bool
)

var buildCmd = &cobra.Command{
	Use:   "build [dir]",
	Short: "Run the full pipeline and emit every artifact",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(args)
		if err != nil {
			fatal("configuration", err)
		}
		if buildOut != "" {
			cfg.Out = buildOut
		}

		p, err := newPipeline(cfg, buildStrict, false, buildWarnDangling)
		if err != nil {
			fatal("setup", err)
		}

		result, err := p.Build(context.Background(), cfg.Out)
		switch {
		case errors.Is(err, core.ErrFatalEnumeration):
			fatalEnumeration(err)
		case errors.Is(err, core.ErrValidationFailed):
			fmt.Print(result.Report.Summary())
			os.Exit(1)
		case err != nil:
			fatal("build", err)
		}

		fmt.Print(result.Report.Summary())
		fmt.Printf("built %d pattern(s) into %s\n", len(result.Patterns), cfg.Out)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "Output directory (overrides config)")
	buildCmd.Flags().BoolVar(&buildStrict, "strict", false, "Fail the build on validation errors")
	buildCmd.Flags().BoolVar(&buildWarnDangling, "warn-dangling", false, "Report dropped cross-references as warnings")
}

// newPipeline assembles a pipeline from the effective configuration.
func newPipeline(cfg config.Config, strict, checkContent, warnDangling bool) (*pipeline.Pipeline, error) {
	opts := []pipeline.Option{
		pipeline.WithLogger(slog.Default()),
		pipeline.WithSite(cfg.EmitSite()),
		pipeline.WithThresholds(cfg.Freshness.NewDays, cfg.Freshness.UpdatedDays),
		pipeline.WithFeedSize(cfg.FeedSize),
		pipeline.WithTemplate(cfg.Template),
		pipeline.WithExcludes(cfg.Exclude...),
		pipeline.WithStrict(strict),
		pipeline.WithCheckContent(checkContent),
		pipeline.WithDanglingWarnings(warnDangling),
	}

	if cfg.Contract != "" {
		contract, err := schema.LoadContract(cfg.Contract)
		if err != nil {
			return nil, err
		}
		opts = append(opts, pipeline.WithContract(contract))
	}

	return pipeline.New(cfg.Dir, opts...), nil
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}

// fatalEnumeration reports the one failure class that produces no output at
// all, with its own exit code so callers can tell it from validation failure.
func fatalEnumeration(err error) {
	fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
	os.Exit(2)
}
