package bridge

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/pagepanel/internal/resolver"
)

type textPayload struct {
	SpaceName string `json:"spaceName,omitempty"`
}

func newTestBridge() *Bridge {
	return New(resolver.Default(nil).Definitions(), nil)
}

func TestInvokeTextGetText(t *testing.T) {
	b := newTestBridge()

	text, err := b.InvokeText(context.Background(), resolver.GetTextKey, textPayload{SpaceName: "Engineering"})
	require.NoError(t, err)
	assert.Equal(t, "Welcome to the Engineering space!", text)
}

func TestInvokeTextDefaultsWithoutSpace(t *testing.T) {
	b := newTestBridge()

	for _, payload := range []any{nil, textPayload{}, map[string]any{}} {
		text, err := b.InvokeText(context.Background(), resolver.GetTextKey, payload)
		require.NoError(t, err)
		assert.Equal(t, "Welcome to the Default Space space!", text)
	}
}

func TestInvokeTypedNilPayload(t *testing.T) {
	b := newTestBridge()

	var payload *textPayload
	text, err := b.InvokeText(context.Background(), resolver.GetTextKey, payload)
	require.NoError(t, err)
	assert.Equal(t, "Welcome to the Default Space space!", text)
}

func TestInvokeReturnsJSON(t *testing.T) {
	b := newTestBridge()

	raw, err := b.Invoke(context.Background(), resolver.GetTextKey, map[string]any{"spaceName": "Ops"})
	require.NoError(t, err)
	assert.JSONEq(t, `"Welcome to the Ops space!"`, string(raw))
}

func TestInvokeUnknownKey(t *testing.T) {
	b := newTestBridge()

	_, err := b.Invoke(context.Background(), "missing", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, resolver.ErrUnknownFunction))
}

func TestInvokeRejectsUnserializablePayload(t *testing.T) {
	b := newTestBridge()

	_, err := b.Invoke(context.Background(), resolver.GetTextKey, map[string]any{"fn": func() {}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marshal payload")

	_, err = b.Invoke(context.Background(), resolver.GetTextKey, []string{"not", "an", "object"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON object")
}

func TestInvokeCanceledContext(t *testing.T) {
	b := newTestBridge()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.Invoke(ctx, resolver.GetTextKey, nil)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestInvokeTextRejectsNonText(t *testing.T) {
	r := resolver.New(nil)
	r.Define("count", func(context.Context, resolver.Request) (any, error) { return 3, nil })
	b := New(r.Definitions(), nil)

	_, err := b.InvokeText(context.Background(), "count", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not text")
}

func TestWithContextPassesRequestContext(t *testing.T) {
	var got resolver.RequestContext
	r := resolver.New(nil)
	r.Define("who", func(_ context.Context, req resolver.Request) (any, error) {
		got = req.Context
		return "ok", nil
	})
	base := New(r.Definitions(), nil)
	b := base.WithContext(resolver.RequestContext{AccountID: "acc-1", PageID: "42"})

	_, err := b.InvokeText(context.Background(), "who", nil)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", got.AccountID)
	assert.Equal(t, "42", got.PageID)
	assert.Empty(t, base.context.AccountID)
}
