// Package host provides the capabilities the panel needs from its
// surroundings: the product context, the content API and the bridge.
package host

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/pagepanel/internal/api"
	"github.com/gravitrone/pagepanel/internal/bridge"
	"github.com/gravitrone/pagepanel/internal/config"
	"github.com/gravitrone/pagepanel/internal/resolver"
)

// Color modes reported in ProductContext.Theme.
const (
	ColorModeLight = "light"
	ColorModeDark  = "dark"
)

// ErrAccountUnavailable marks a Context call whose account lookup failed.
// The ProductContext returned with it still carries theme, space and page.
var ErrAccountUnavailable = errors.New("account unavailable")

// ProductContext describes where the panel is mounted and for whom.
type ProductContext struct {
	Theme     Theme
	AccountID string
	Extension Extension
}

// Theme is the viewer's color preference.
type Theme struct {
	ColorMode string
}

// Extension carries the space and content the panel is attached to.
type Extension struct {
	Space   Space
	Content Content
}

// Space identifies a space by display name.
type Space struct {
	Name string
}

// Content identifies the current page.
type Content struct {
	ID string
}

// Options override what the host would otherwise discover.
type Options struct {
	Theme     string
	AccountID string
	SpaceName string
	PageID    string

	// DarkBackground reports the terminal background; defaults to lipgloss detection.
	DarkBackground func() bool
}

// OptionsFromConfig seeds options from cfg. Non-empty flag values win.
func OptionsFromConfig(cfg *config.Config, spaceFlag, pageFlag string) Options {
	opts := Options{SpaceName: spaceFlag, PageID: pageFlag}
	if cfg == nil {
		return opts
	}
	opts.Theme = cfg.Theme
	opts.AccountID = cfg.AccountID
	if opts.SpaceName == "" {
		opts.SpaceName = cfg.SpaceName
	}
	if opts.PageID == "" {
		opts.PageID = cfg.PageID
	}
	return opts
}

// Client implements the panel's host capabilities.
type Client struct {
	api    *api.Client
	bridge *bridge.Bridge
	opts   Options

	mu        sync.RWMutex
	accountID string
}

// New builds a host client.
func New(apiClient *api.Client, b *bridge.Bridge, opts Options) *Client {
	if opts.DarkBackground == nil {
		opts.DarkBackground = lipgloss.HasDarkBackground
	}
	return &Client{api: apiClient, bridge: b, opts: opts, accountID: opts.AccountID}
}

// Context resolves the product context. The account id comes from the
// options or, failing that, from the authenticated user. Theme, space and
// page need no network call; when only the account lookup fails they are
// still returned, together with an error wrapping ErrAccountUnavailable.
func (c *Client) Context(ctx context.Context) (ProductContext, error) {
	pc := ProductContext{
		Theme: Theme{ColorMode: c.colorMode()},
		Extension: Extension{
			Space:   Space{Name: c.opts.SpaceName},
			Content: Content{ID: c.opts.PageID},
		},
	}

	accountID := c.account()
	if accountID == "" {
		user, err := c.api.CurrentUser(ctx)
		if err != nil {
			return pc, fmt.Errorf("%w: current user: %w", ErrAccountUnavailable, err)
		}
		accountID = user.AccountID
		c.mu.Lock()
		c.accountID = accountID
		c.mu.Unlock()
	}
	pc.AccountID = accountID
	return pc, nil
}

func (c *Client) account() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accountID
}

func (c *Client) colorMode() string {
	switch c.opts.Theme {
	case ColorModeLight, ColorModeDark:
		return c.opts.Theme
	}
	if c.opts.DarkBackground() {
		return ColorModeDark
	}
	return ColorModeLight
}

// LookupUsers resolves account ids to users.
func (c *Client) LookupUsers(ctx context.Context, accountIDs []string) (api.UsersLookup, error) {
	return c.api.LookupUsers(ctx, accountIDs)
}

// FooterComments returns a page's footer comments.
func (c *Client) FooterComments(ctx context.Context, pageID string) ([]api.Comment, error) {
	return c.api.FooterComments(ctx, pageID)
}

// PageMetadata returns a page's version metadata.
func (c *Client) PageMetadata(ctx context.Context, pageID string) (*api.PageMetadata, error) {
	return c.api.PageMetadata(ctx, pageID)
}

// InvokeText calls a resolver function through the bridge. The request
// context carries the account id known so far, including one discovered by
// Context.
func (c *Client) InvokeText(ctx context.Context, key string, payload any) (string, error) {
	b := c.bridge.WithContext(resolver.RequestContext{
		AccountID: c.account(),
		PageID:    c.opts.PageID,
	})
	return b.InvokeText(ctx, key, payload)
}
