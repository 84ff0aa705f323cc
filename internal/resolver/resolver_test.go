package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefineAndInvoke(t *testing.T) {
	r := New(nil)
	r.Define("echo", func(_ context.Context, req Request) (any, error) {
		return req.Payload["v"], nil
	})

	out, err := r.Definitions().Invoke(context.Background(), "echo", Request{Payload: map[string]any{"v": "hi"}})
	require.NoError(t, err)
	assert.Equal(t, "hi", out)
}

func TestInvokeUnknownFunction(t *testing.T) {
	defs := Default(nil).Definitions()

	_, err := defs.Invoke(context.Background(), "getNothing", Request{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFunction))
	assert.Contains(t, err.Error(), "getNothing")
}

func TestDefineDuplicatePanics(t *testing.T) {
	r := Default(nil)
	assert.Panics(t, func() {
		r.Define(GetTextKey, func(context.Context, Request) (any, error) { return nil, nil })
	})
	assert.Panics(t, func() { r.Define("", func(context.Context, Request) (any, error) { return nil, nil }) })
	assert.Panics(t, func() { r.Define("nil", nil) })
}

func TestDefinitionsAreFrozen(t *testing.T) {
	r := New(nil)
	defs := r.Definitions()
	r.Define("late", func(context.Context, Request) (any, error) { return "late", nil })

	_, err := defs.Invoke(context.Background(), "late", Request{})
	assert.True(t, errors.Is(err, ErrUnknownFunction))
	assert.Equal(t, []string{"late"}, r.Definitions().Keys())
}

func TestGetText(t *testing.T) {
	defs := Default(nil).Definitions()

	tests := []struct {
		name    string
		payload map[string]any
		want    string
	}{
		{name: "space name", payload: map[string]any{"spaceName": "Engineering"}, want: "Welcome to the Engineering space!"},
		{name: "default panel space", payload: map[string]any{"spaceName": "this space"}, want: "Welcome to the this space space!"},
		{name: "empty payload", payload: map[string]any{}, want: "Welcome to the Default Space space!"},
		{name: "nil payload", payload: nil, want: "Welcome to the Default Space space!"},
		{name: "empty string", payload: map[string]any{"spaceName": ""}, want: "Welcome to the Default Space space!"},
		{name: "null", payload: map[string]any{"spaceName": nil}, want: "Welcome to the Default Space space!"},
		{name: "zero", payload: map[string]any{"spaceName": float64(0)}, want: "Welcome to the Default Space space!"},
		{name: "false", payload: map[string]any{"spaceName": false}, want: "Welcome to the Default Space space!"},
		{name: "number", payload: map[string]any{"spaceName": float64(42)}, want: "Welcome to the 42 space!"},
		{name: "fraction", payload: map[string]any{"spaceName": 1.5}, want: "Welcome to the 1.5 space!"},
		{name: "true", payload: map[string]any{"spaceName": true}, want: "Welcome to the true space!"},
		{name: "list", payload: map[string]any{"spaceName": []any{"a", float64(1)}}, want: "Welcome to the a,1 space!"},
		{name: "nested list with null", payload: map[string]any{"spaceName": []any{"a", nil, []any{"b", true}}}, want: "Welcome to the a,,b,true space!"},
		{name: "empty list", payload: map[string]any{"spaceName": []any{}}, want: "Welcome to the  space!"},
		{name: "object", payload: map[string]any{"spaceName": map[string]any{"k": "v"}}, want: "Welcome to the [object Object] space!"},
		{name: "list of objects", payload: map[string]any{"spaceName": []any{map[string]any{}, "x"}}, want: "Welcome to the [object Object],x space!"},
		{name: "unrelated fields", payload: map[string]any{"other": "x"}, want: "Welcome to the Default Space space!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := defs.Invoke(context.Background(), GetTextKey, Request{Payload: tt.payload})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestGetTextLogsSpaceName(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	defs := Default(zap.New(core)).Definitions()

	_, err := defs.Invoke(context.Background(), GetTextKey, Request{Payload: map[string]any{"spaceName": "Ops"}})
	require.NoError(t, err)

	entries := logs.FilterMessage("incoming request for space").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Ops", entries[0].ContextMap()["space"])
}
