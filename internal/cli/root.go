// Package cli is the swipetabs command line.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/billie-coop/swipetabs/internal/config"
	"github.com/billie-coop/swipetabs/internal/files"
	"github.com/billie-coop/swipetabs/internal/pages"
	"github.com/billie-coop/swipetabs/internal/state"
	"github.com/billie-coop/swipetabs/internal/tui"
	"github.com/billie-coop/swipetabs/internal/tui/events"
	"github.com/billie-coop/swipetabs/internal/watcher"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"
)

func Execute() error {
	return NewRoot().Execute()
}

// runProgram runs the interface until the user quits.
var runProgram = func(m tea.Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

type rootOptions struct {
	dir     string
	page    int
	debug   bool
	noState bool
	noWatch bool
}

func NewRoot() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "swipetabs [dir]",
		Short: "Browse a directory of markdown pages with a swipeable tab strip",
		Long: `swipetabs shows every markdown file in a directory as a page. A tab
strip above the pages follows them as they slide, with the current page's
tab centered and its neighbours at the edges.

Settings live in <dir>/.swipetabs/config.toml and are applied as soon as the
file is saved. Pages are reloaded when files in the directory change.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.dir = args[0]
			}
			return runTUI(opts)
		},
	}
	root.PersistentFlags().StringVarP(&opts.dir, "dir", "C", ".", "page directory")
	root.Flags().IntVarP(&opts.page, "page", "p", 0, "open at this page (1-based) instead of the saved one")
	root.Flags().BoolVar(&opts.debug, "debug", false, "log debug messages")
	root.Flags().BoolVar(&opts.noState, "no-state", false, "neither restore nor save the tab strip state")
	root.Flags().BoolVar(&opts.noWatch, "no-watch", false, "do not reload pages and config on change")

	root.AddCommand(
		configCmd(opts),
		stateCmd(opts),
		pagesCmd(opts),
	)
	return root
}

func runTUI(opts *rootOptions) error {
	dir, err := pages.Open(opts.dir)
	if err != nil {
		return err
	}
	cfg := config.NewManager(dir.Root())
	if err := cfg.Load(); err != nil {
		return err
	}

	logger, closeLog, err := openLog(cfg.LogPath(), opts.debug)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("starting", "dir", dir.Root(), "pages", dir.Count())

	var store *state.StripStore
	if !opts.noState {
		store = state.NewStripStore(cfg.StatePath())
		if err := store.Load(); err != nil {
			logger.Warn("strip state ignored", "error", err)
		}
	}

	broker := events.NewBroker()
	defer broker.Close()

	model, err := tui.New(tui.Options{
		Config: cfg,
		Pages:  dir,
		Store:  store,
		Broker: broker,
		Logger: logger,
		Page:   opts.page - 1,
	})
	if err != nil {
		return err
	}

	if !opts.noWatch {
		w := newWatcher(cfg, dir, broker, logger)
		if err := w.Start(dir.Root(), cfg.Dir()); err != nil {
			logger.Warn("watching disabled", "error", err)
			broker.Publish(events.Event{
				Type:    events.StatusMessageEvent,
				Payload: events.StatusMessagePayload{Message: "not watching: " + err.Error(), Type: "warning"},
			})
		} else {
			defer w.Stop()
		}
	}

	return runProgram(model)
}

// newWatcher publishes debounced changes to pages and config.toml.
func newWatcher(cfg *config.Manager, dir *pages.Directory, broker *events.Broker, logger *slog.Logger) *watcher.FileWatcher {
	return watcher.NewWatcherWithConfig(watcher.Config{
		Filter: func(path string) bool {
			return files.Classify(path, dir.Root(), cfg.Path()) != files.Other
		},
		OnError: func(err error) {
			broker.Publish(events.Event{Type: events.WatchErrorEvent, Payload: events.ErrorPayload{Err: err}})
		},
	}, func(paths []string) {
		logger.Debug("files changed", "paths", paths)
		broker.Publish(events.Event{Type: events.FilesChangedEvent, Payload: events.FilesChangedPayload{Paths: paths}})
	})
}

// openLog sends structured logs to path; the terminal belongs to the UI.
func openLog(path string, debug bool) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }, nil
}
