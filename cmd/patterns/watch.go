package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/nibzard/awesome-agentic-patterns/pkg/config"
	"github.com/nibzard/awesome-agentic-patterns/pkg/core"
)

var watchOut string

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Rebuild artifacts whenever a record changes",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(args)
		if err != nil {
			fatal("configuration", err)
		}
		if watchOut != "" {
			cfg.Out = watchOut
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := watch(ctx, cfg, slog.Default()); err != nil {
			if errors.Is(err, core.ErrFatalEnumeration) {
				fatalEnumeration(err)
			}
			fatal("watch", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "", "Output directory (overrides config)")
}

// watch runs an initial build, then rebuilds on debounced record changes
// until ctx is cancelled.
func watch(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	rebuild := func() error {
		p, err := newPipeline(cfg, false, false, false)
		if err != nil {
			return err
		}
		result, err := p.Build(ctx, cfg.Out)
		if err != nil {
			return err
		}
		logger.Info("rebuilt",
			slog.Int("patterns", len(result.Patterns)),
			slog.Int("errors", len(result.Report.Errors())),
			slog.Int("warnings", len(result.Report.Warnings())))
		return nil
	}

	if err := rebuild(); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(cfg.Dir); err != nil {
		return err
	}
	logger.Info("watching", slog.String("dir", cfg.Dir))

	// Editors fire bursts of events per save; coalesce them.
	var timer *time.Timer
	var timerCh <-chan time.Time
	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(200 * time.Millisecond)
			timerCh = timer.C
		} else {
			timer.Reset(200 * time.Millisecond)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Info("watch stopped")
			return nil

		case <-timerCh:
			if err := rebuild(); err != nil {
				fmt.Fprintf(os.Stderr, "rebuild: %v\n", err)
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(ev.Name, ".md") {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				schedule()
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", slog.String("error", err.Error()))
		}
	}
}
