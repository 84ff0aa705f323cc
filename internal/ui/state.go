package ui

import (
	"fmt"

	"github.com/gravitrone/pagepanel/internal/api"
	"github.com/gravitrone/pagepanel/internal/host"
)

// DefaultSpaceName is shown until the host names the space.
const DefaultSpaceName = "this space"

// ThemeMode is the viewer's color mode; the zero value means not yet known.
type ThemeMode string

const (
	ThemeUnset ThemeMode = ""
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// Fetch names one of the panel's independent loads.
type Fetch string

const (
	FetchContext  Fetch = "context"
	FetchUser     Fetch = "user"
	FetchText     Fetch = "text"
	FetchComments Fetch = "comments"
	FetchMetadata Fetch = "metadata"
)

// ViewState is everything the panel renders from. Each field stays at its
// zero value until the load that owns it succeeds.
type ViewState struct {
	ThemeMode    ThemeMode
	AccountID    string
	DisplayName  string
	ResolvedText string
	Comments     []api.Comment
	LastUpdated  string
	SpaceName    string
	PageID       string

	// Failures holds the last error per load. A failed load leaves its fields untouched.
	Failures map[Fetch]string

	requestedSpaces []string
}

// NewViewState returns the state of a freshly mounted panel.
func NewViewState() ViewState {
	return ViewState{SpaceName: DefaultSpaceName}
}

func (s ViewState) spaceRequested(name string) bool {
	for _, requested := range s.requestedSpaces {
		if requested == name {
			return true
		}
	}
	return false
}

func (s ViewState) withSpaceRequested(name string) ViewState {
	spaces := make([]string, len(s.requestedSpaces), len(s.requestedSpaces)+1)
	copy(spaces, s.requestedSpaces)
	s.requestedSpaces = append(spaces, name)
	return s
}

func (s ViewState) withFailure(f Fetch, err error) ViewState {
	failures := make(map[Fetch]string, len(s.Failures)+1)
	for k, v := range s.Failures {
		failures[k] = v
	}
	failures[f] = err.Error()
	s.Failures = failures
	return s
}

func (s ViewState) clearFailure(f Fetch) ViewState {
	if _, ok := s.Failures[f]; !ok {
		return s
	}
	failures := make(map[Fetch]string, len(s.Failures))
	for k, v := range s.Failures {
		if k != f {
			failures[k] = v
		}
	}
	s.Failures = failures
	return s
}

// --- Events ---

// result is the outcome of one load: a value or an error, never both.
type result[T any] struct {
	value T
	err   error
}

func succeeded[T any](value T) result[T] { return result[T]{value: value} }

func failed[T any](err error) result[T] { return result[T]{err: err} }

// contextLoadedMsg carries the product context. accountErr is set when the
// context loaded but its account could not be determined.
type contextLoadedMsg struct {
	res        result[host.ProductContext]
	accountErr error
}

type userLoadedMsg struct {
	accountID string
	res       result[api.UsersLookup]
}

type textResolvedMsg struct {
	space string
	res   result[string]
}

type commentsLoadedMsg struct {
	pageID string
	res    result[[]api.Comment]
}

type metadataLoadedMsg struct {
	pageID string
	res    result[*api.PageMetadata]
}

type refreshMsg struct{}

// --- Effects ---

type effectKind int

const (
	effectLoadContext effectKind = iota
	effectLoadUser
	effectResolveText
	effectLoadComments
	effectLoadMetadata
)

// effect is a load the reducer asks the panel to start.
type effect struct {
	kind effectKind
	arg  string
}

func (e effect) String() string {
	switch e.kind {
	case effectLoadContext:
		return "loadContext"
	case effectLoadUser:
		return fmt.Sprintf("loadUser(%s)", e.arg)
	case effectResolveText:
		return fmt.Sprintf("resolveText(%s)", e.arg)
	case effectLoadComments:
		return fmt.Sprintf("loadComments(%s)", e.arg)
	case effectLoadMetadata:
		return fmt.Sprintf("loadMetadata(%s)", e.arg)
	}
	return "unknown"
}

// mount returns the loads a newly shown panel starts.
func mount(s ViewState) (ViewState, []effect) {
	effects := []effect{{kind: effectLoadContext}}
	if !s.spaceRequested(s.SpaceName) {
		s = s.withSpaceRequested(s.SpaceName)
		effects = append(effects, effect{kind: effectResolveText, arg: s.SpaceName})
	}
	return s, effects
}

// reduce applies one event to the state and returns the loads it triggers.
func reduce(s ViewState, msg any) (ViewState, []effect) {
	switch msg := msg.(type) {
	case contextLoadedMsg:
		return reduceContext(s, msg)

	case userLoadedMsg:
		if msg.accountID != s.AccountID {
			return s, nil
		}
		if msg.res.err != nil {
			return s.withFailure(FetchUser, msg.res.err), nil
		}
		s = s.clearFailure(FetchUser)
		if name, found := msg.res.value.FirstPublicName(); found {
			s.DisplayName = name
		}
		return s, nil

	case textResolvedMsg:
		// A late answer for a space the panel moved away from is dropped.
		if msg.space != s.SpaceName {
			return s, nil
		}
		if msg.res.err != nil {
			return s.withFailure(FetchText, msg.res.err), nil
		}
		s = s.clearFailure(FetchText)
		s.ResolvedText = msg.res.value
		return s, nil

	case commentsLoadedMsg:
		if msg.pageID != s.PageID {
			return s, nil
		}
		if msg.res.err != nil {
			return s.withFailure(FetchComments, msg.res.err), nil
		}
		s = s.clearFailure(FetchComments)
		s.Comments = msg.res.value
		return s, nil

	case metadataLoadedMsg:
		if msg.pageID != s.PageID {
			return s, nil
		}
		if msg.res.err != nil {
			return s.withFailure(FetchMetadata, msg.res.err), nil
		}
		s = s.clearFailure(FetchMetadata)
		s.LastUpdated = ""
		if msg.res.value != nil {
			s.LastUpdated = msg.res.value.LastUpdated()
		}
		return s, nil

	case refreshMsg:
		if s.PageID == "" {
			return s, nil
		}
		return s, pageEffects(s.PageID)
	}

	return s, nil
}

func reduceContext(s ViewState, msg contextLoadedMsg) (ViewState, []effect) {
	if msg.res.err != nil {
		return s.withFailure(FetchContext, msg.res.err), nil
	}
	s = s.clearFailure(FetchContext)
	pc := msg.res.value

	var effects []effect

	s.ThemeMode = themeModeFor(pc.Theme.ColorMode)

	if pc.AccountID != s.AccountID {
		s.AccountID = pc.AccountID
		s.DisplayName = ""
		if s.AccountID != "" {
			effects = append(effects, effect{kind: effectLoadUser, arg: s.AccountID})
		}
	}

	if name := pc.Extension.Space.Name; name != "" {
		s.SpaceName = name
	}
	if !s.spaceRequested(s.SpaceName) {
		s = s.withSpaceRequested(s.SpaceName)
		s.ResolvedText = ""
		effects = append(effects, effect{kind: effectResolveText, arg: s.SpaceName})
	}

	if id := pc.Extension.Content.ID; id != "" && id != s.PageID {
		s.PageID = id
		s.Comments = nil
		s.LastUpdated = ""
		effects = append(effects, pageEffects(id)...)
	}

	if msg.accountErr != nil {
		s = s.withFailure(FetchUser, msg.accountErr)
	}

	return s, effects
}

func pageEffects(pageID string) []effect {
	return []effect{
		{kind: effectLoadComments, arg: pageID},
		{kind: effectLoadMetadata, arg: pageID},
	}
}

func themeModeFor(colorMode string) ThemeMode {
	switch colorMode {
	case "":
		return ThemeUnset
	case string(ThemeDark):
		return ThemeDark
	default:
		return ThemeLight
	}
}
