package ui

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/pagepanel/internal/api"
	"github.com/gravitrone/pagepanel/internal/bridge"
	"github.com/gravitrone/pagepanel/internal/host"
	"github.com/gravitrone/pagepanel/internal/resolver"
)

// fakeHost answers every load from canned values and records what was asked.
type fakeHost struct {
	mu sync.Mutex

	product     host.ProductContext
	contextErr  error
	lookup      api.UsersLookup
	lookupErr   error
	comments    []api.Comment
	commentsErr error
	meta        *api.PageMetadata
	metaErr     error
	textErr     error

	bridge        *bridge.Bridge
	invokedSpaces []string
	commentLoads  int
	lookups       [][]string
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		bridge: bridge.New(resolver.Default(nil).Definitions(), nil),
	}
}

func (f *fakeHost) Context(context.Context) (host.ProductContext, error) {
	return f.product, f.contextErr
}

func (f *fakeHost) LookupUsers(_ context.Context, ids []string) (api.UsersLookup, error) {
	f.mu.Lock()
	f.lookups = append(f.lookups, ids)
	f.mu.Unlock()
	return f.lookup, f.lookupErr
}

func (f *fakeHost) FooterComments(context.Context, string) ([]api.Comment, error) {
	f.mu.Lock()
	f.commentLoads++
	f.mu.Unlock()
	return f.comments, f.commentsErr
}

func (f *fakeHost) PageMetadata(context.Context, string) (*api.PageMetadata, error) {
	return f.meta, f.metaErr
}

func (f *fakeHost) InvokeText(ctx context.Context, key string, payload any) (string, error) {
	f.mu.Lock()
	if p, ok := payload.(resolver.TextPayload); ok {
		f.invokedSpaces = append(f.invokedSpaces, p.SpaceName)
	}
	f.mu.Unlock()
	if f.textErr != nil {
		return "", f.textErr
	}
	return f.bridge.InvokeText(ctx, key, payload)
}

func comment(body string) api.Comment {
	return api.Comment{Body: &api.CommentBody{Plain: &api.BodyValue{Value: body}}}
}

func comments(n int) []api.Comment {
	out := make([]api.Comment, n)
	for i := range out {
		out[i] = comment(fmt.Sprintf("comment %d", i+1))
	}
	return out
}

func fullProduct() host.ProductContext {
	return host.ProductContext{
		Theme:     host.Theme{ColorMode: "dark"},
		AccountID: "acc-1",
		Extension: host.Extension{
			Space:   host.Space{Name: "Ops"},
			Content: host.Content{ID: "42"},
		},
	}
}

// settle runs cmd and every command it leads to, feeding messages back into
// the panel. Commands run breadth-first: all siblings of a batch finish before
// the commands their messages lead to. Spinner ticks are dropped so the loop ends.
func settle(p Panel, cmd tea.Cmd) Panel {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case spinner.TickMsg, tea.QuitMsg, nil:
		default:
			model, follow := p.Update(msg)
			p = model.(Panel)
			queue = append(queue, follow)
		}
	}
	return p
}
