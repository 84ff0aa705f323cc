package cmd

import (
	"go.uber.org/zap"

	"github.com/gravitrone/pagepanel/internal/api"
	"github.com/gravitrone/pagepanel/internal/bridge"
	"github.com/gravitrone/pagepanel/internal/config"
	"github.com/gravitrone/pagepanel/internal/host"
	"github.com/gravitrone/pagepanel/internal/resolver"
)

// NewHost wires the API client, the resolver and the bridge for cfg.
// Non-empty space and page values override the configured ones.
func NewHost(cfg *config.Config, logger *zap.Logger, space, page string) *host.Client {
	client := api.NewClient(cfg.SiteURL, cfg.Email, cfg.APIToken)
	b := bridge.New(resolver.Default(logger).Definitions(), logger)
	return host.New(client, b, host.OptionsFromConfig(cfg, space, page))
}
