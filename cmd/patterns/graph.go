package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/nibzard/awesome-agentic-patterns/pkg/core"
)

var graphCmd = &cobra.Command{
	Use:   "graph [dir]",
	Short: "Print the resolved cross-reference graph as JSON",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(args)
		if err != nil {
			fatal("configuration", err)
		}

		p, err := newPipeline(cfg, false, false, false)
		if err != nil {
			fatal("setup", err)
		}

		result, err := p.Run(context.Background())
		if err != nil {
			if errors.Is(err, core.ErrFatalEnumeration) {
				fatalEnumeration(err)
			}
			fatal("graph", err)
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result.Graph); err != nil {
			fatal("encode graph", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
