package ui

import (
	"context"
	"errors"
	"net/http"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/gravitrone/pagepanel/internal/api"
	"github.com/gravitrone/pagepanel/internal/host"
	"github.com/gravitrone/pagepanel/internal/resolver"
	"github.com/gravitrone/pagepanel/internal/ui/components"
)

// Host is what the panel needs from its surroundings. Context may return a
// usable ProductContext together with an error wrapping
// host.ErrAccountUnavailable; the panel then renders without an account.
type Host interface {
	Context(ctx context.Context) (host.ProductContext, error)
	LookupUsers(ctx context.Context, accountIDs []string) (api.UsersLookup, error)
	FooterComments(ctx context.Context, pageID string) ([]api.Comment, error)
	PageMetadata(ctx context.Context, pageID string) (*api.PageMetadata, error)
	InvokeText(ctx context.Context, key string, payload any) (string, error)
}

// PanelOptions configures a Panel.
type PanelOptions struct {
	Layout LayoutOptions
	Logger *zap.Logger
}

// --- Panel Model ---

// Panel is the root TUI model. All state changes go through reduce.
type Panel struct {
	ctx     context.Context
	host    Host
	logger  *zap.Logger
	layout  LayoutOptions
	state   ViewState
	pending []effect
	spinner spinner.Model
	width   int
	height  int
}

// NewPanel creates the panel and queues the loads it starts on mount.
func NewPanel(ctx context.Context, h Host, opts PanelOptions) Panel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	spin := spinner.New()
	spin.Spinner = spinner.MiniDot
	spin.Style = SpinnerStyle

	state, pending := mount(NewViewState())
	return Panel{
		ctx:     ctx,
		host:    h,
		logger:  logger,
		layout:  opts.Layout,
		state:   state,
		pending: pending,
		spinner: spin,
	}
}

// State returns the current view state.
func (p Panel) State() ViewState {
	return p.state
}

func (p Panel) Init() tea.Cmd {
	cmds := []tea.Cmd{p.spinner.Tick}
	for _, e := range p.pending {
		cmds = append(cmds, p.command(e))
	}
	return tea.Batch(cmds...)
}

func (p Panel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil

	case tea.KeyMsg:
		if isQuit(msg) {
			return p, tea.Quit
		}
		if isRefresh(msg) {
			return p.apply(refreshMsg{})
		}
		return p, nil

	case spinner.TickMsg:
		if p.state.ThemeMode != ThemeUnset {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case contextLoadedMsg, userLoadedMsg, textResolvedMsg, commentsLoadedMsg, metadataLoadedMsg:
		return p.apply(msg)
	}

	return p, nil
}

func (p Panel) View() string {
	if p.state.ThemeMode == ThemeUnset {
		loading := Layout(p.state, p.layout)[0]
		return LoadingStyle.Render(p.spinner.View() + " " + loading.Text)
	}

	body := renderPanel(Layout(p.state, p.layout), paletteFor(p.state.ThemeMode), p.width, p.state.SpaceName)
	hints := components.StatusBar([]string{
		components.Hint("r", "Refresh"),
		components.Hint("q", "Quit"),
	}, p.width)
	return body + "\n" + hints
}

func (p Panel) apply(msg any) (Panel, tea.Cmd) {
	logEvent(p.logger, msg)
	state, effects := reduce(p.state, msg)
	p.state = state
	if len(effects) == 0 {
		return p, nil
	}
	cmds := make([]tea.Cmd, 0, len(effects))
	for _, e := range effects {
		cmds = append(cmds, p.command(e))
	}
	return p, tea.Batch(cmds...)
}

func (p Panel) command(e effect) tea.Cmd {
	ctx, h, logger := p.ctx, p.host, p.logger
	return func() tea.Msg {
		logger.Debug("load started", zap.Stringer("effect", e))
		return perform(ctx, h, e)
	}
}

// perform runs one load against the host and wraps its outcome in an event.
func perform(ctx context.Context, h Host, e effect) any {
	switch e.kind {
	case effectLoadContext:
		pc, err := h.Context(ctx)
		if errors.Is(err, host.ErrAccountUnavailable) {
			return contextLoadedMsg{res: succeeded(pc), accountErr: err}
		}
		if err != nil {
			return contextLoadedMsg{res: failed[host.ProductContext](err)}
		}
		return contextLoadedMsg{res: succeeded(pc)}

	case effectLoadUser:
		lookup, err := h.LookupUsers(ctx, []string{e.arg})
		if err != nil {
			return userLoadedMsg{accountID: e.arg, res: failed[api.UsersLookup](err)}
		}
		return userLoadedMsg{accountID: e.arg, res: succeeded(lookup)}

	case effectResolveText:
		text, err := h.InvokeText(ctx, resolver.GetTextKey, resolver.TextPayload{SpaceName: e.arg})
		if err != nil {
			return textResolvedMsg{space: e.arg, res: failed[string](err)}
		}
		return textResolvedMsg{space: e.arg, res: succeeded(text)}

	case effectLoadComments:
		items, err := h.FooterComments(ctx, e.arg)
		if err != nil {
			return commentsLoadedMsg{pageID: e.arg, res: failed[[]api.Comment](err)}
		}
		return commentsLoadedMsg{pageID: e.arg, res: succeeded(items)}

	case effectLoadMetadata:
		meta, err := h.PageMetadata(ctx, e.arg)
		if err != nil {
			return metadataLoadedMsg{pageID: e.arg, res: failed[*api.PageMetadata](err)}
		}
		return metadataLoadedMsg{pageID: e.arg, res: succeeded(meta)}
	}
	return nil
}

func logEvent(logger *zap.Logger, msg any) {
	fail := func(f Fetch, err error) {
		if err != nil {
			logger.Warn("load failed", zap.String("fetch", string(f)), zap.Error(err))
		}
	}
	switch msg := msg.(type) {
	case contextLoadedMsg:
		fail(FetchContext, msg.res.err)
		fail(FetchUser, msg.accountErr)
	case userLoadedMsg:
		fail(FetchUser, msg.res.err)
		if msg.res.err == nil && msg.res.value.Status != http.StatusOK {
			logger.Debug("user lookup unavailable", zap.Int("status", msg.res.value.Status))
		}
	case textResolvedMsg:
		fail(FetchText, msg.res.err)
	case commentsLoadedMsg:
		fail(FetchComments, msg.res.err)
	case metadataLoadedMsg:
		fail(FetchMetadata, msg.res.err)
	}
}
