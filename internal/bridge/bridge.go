// Package bridge carries named-operation calls from the panel to the
// resolver. Payloads and results cross it as JSON, so only serializable
// values reach a resolver function and only serializable values come back.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/gravitrone/pagepanel/internal/resolver"
)

// Bridge dispatches invocations to a resolver definitions table.
type Bridge struct {
	defs    resolver.Definitions
	context resolver.RequestContext
	logger  *zap.Logger
}

// New builds a bridge over defs.
func New(defs resolver.Definitions, logger *zap.Logger) *Bridge {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bridge{defs: defs, logger: logger}
}

// WithContext returns a copy of the bridge that attaches rc to every request.
func (b *Bridge) WithContext(rc resolver.RequestContext) *Bridge {
	clone := *b
	clone.context = rc
	return &clone
}

// Invoke calls the function registered under key and returns its JSON result.
func (b *Bridge) Invoke(ctx context.Context, key string, payload any) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	decoded, err := encodePayload(payload)
	if err != nil {
		return nil, fmt.Errorf("invoke %s: %w", key, err)
	}

	result, err := b.defs.Invoke(ctx, key, resolver.Request{Payload: decoded, Context: b.context})
	if err != nil {
		b.logger.Warn("resolver invocation failed", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("invoke %s: %w", key, err)
	}

	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("invoke %s: marshal result: %w", key, err)
	}
	return data, nil
}

// InvokeText calls key and decodes its result as a string.
func (b *Bridge) InvokeText(ctx context.Context, key string, payload any) (string, error) {
	raw, err := b.Invoke(ctx, key, payload)
	if err != nil {
		return "", err
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return "", fmt.Errorf("invoke %s: result is not text: %w", key, err)
	}
	return text, nil
}

// encodePayload round-trips payload through JSON. A nil or null payload
// decodes to a nil map; anything other than an object is rejected.
func encodePayload(payload any) (map[string]any, error) {
	if payload == nil {
		return nil, nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, nil
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("payload must be a JSON object: %w", err)
	}
	return decoded, nil
}
