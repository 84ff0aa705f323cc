package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gravitrone/pagepanel/internal/bridge"
	"github.com/gravitrone/pagepanel/internal/config"
	"github.com/gravitrone/pagepanel/internal/logging"
	"github.com/gravitrone/pagepanel/internal/resolver"
)

// ResolveCmd returns the `pagepanel resolve` command, which calls a resolver
// function through the bridge without rendering the panel.
func ResolveCmd() *cobra.Command {
	var (
		key     string
		space   string
		payload string
	)
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Invoke a resolver function and print its text result",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if space != "" && payload != "" {
				return fmt.Errorf("--space and --payload are mutually exclusive")
			}

			var body any
			switch {
			case payload != "":
				if !json.Valid([]byte(payload)) {
					return fmt.Errorf("--payload is not valid JSON")
				}
				body = json.RawMessage(payload)
			case space != "":
				body = resolver.TextPayload{SpaceName: space}
			}

			cfg, err := config.Load()
			if err != nil {
				if !errors.Is(err, os.ErrNotExist) {
					return err
				}
				cfg = nil
			}
			verbose, _ := c.Flags().GetBool("verbose")
			logger, err := logging.New(cfg.ResolvedLogPath(), verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			defs := resolver.Default(logger).Definitions()
			b := bridge.New(defs, logger)
			if cfg != nil {
				b = b.WithContext(resolver.RequestContext{AccountID: cfg.AccountID, PageID: cfg.PageID})
			}

			text, err := b.InvokeText(c.Context(), key, body)
			if errors.Is(err, resolver.ErrUnknownFunction) {
				return fmt.Errorf("%w (available: %s)", err, strings.Join(defs.Keys(), ", "))
			}
			if err != nil {
				logger.Warn("resolve failed", zap.String("key", key), zap.Error(err))
				return err
			}

			fmt.Fprintln(c.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().StringVar(&key, "key", resolver.GetTextKey, "resolver function key")
	cmd.Flags().StringVar(&space, "space", "", "space name sent as spaceName")
	cmd.Flags().StringVar(&payload, "payload", "", "raw JSON object payload")
	return cmd
}
