package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gravitrone/pagepanel/internal/cmd"
	"github.com/gravitrone/pagepanel/internal/config"
	"github.com/gravitrone/pagepanel/internal/logging"
	"github.com/gravitrone/pagepanel/internal/ui"
)

// snapshotWidth is used when stdout is not a terminal.
const snapshotWidth = 80

type rootOptions struct {
	space   string
	page    string
	verbose bool
}

func main() {
	var opts rootOptions

	root := &cobra.Command{
		Use:   "pagepanel",
		Short: "Pagepanel - page greeting and engagement panel",
		Long:  "Pagepanel shows who is viewing a Confluence page, a greeting resolved for its space, and the page's footer comments.",
		RunE: func(c *cobra.Command, _ []string) error {
			return runPanel(c.Context(), opts, c.OutOrStdout())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().StringVar(&opts.space, "space", "", "space name to greet (overrides space_name)")
	root.Flags().StringVar(&opts.page, "page", "", "page id to show engagement for (overrides page_id)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "write debug entries to the log file")

	root.AddCommand(cmd.LoginCmd())
	root.AddCommand(cmd.ResolveCmd())

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func runPanel(ctx context.Context, opts rootOptions, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(out, "not logged in. run 'pagepanel login' first.")
		}
		return err
	}

	logger, err := logging.New(cfg.ResolvedLogPath(), opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	h := cmd.NewHost(cfg, logger, opts.space, opts.page)
	panelOpts := ui.PanelOptions{
		Layout: ui.LayoutOptions{TimeLayout: cfg.ResolvedTimeLayout()},
		Logger: logger,
	}

	if !isInteractiveTerminal(os.Stdin) || !isInteractiveTerminal(os.Stdout) {
		logger.Info("rendering snapshot", zap.String("space", opts.space), zap.String("page", opts.page))
		view, err := ui.Snapshot(ctx, h, panelOpts, snapshotWidth)
		if err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
		fmt.Fprintln(out, view)
		return nil
	}

	p := tea.NewProgram(ui.NewPanel(ctx, h, panelOpts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
