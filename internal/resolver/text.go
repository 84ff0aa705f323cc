package resolver

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// GetTextKey is the key the panel uses to fetch its welcome sentence.
const GetTextKey = "getText"

// objectText is how an object space name reads in the welcome sentence.
const objectText = "[object Object]"

// DefaultSpaceName is used when the payload carries no usable space name.
const DefaultSpaceName = "Default Space"

// TextPayload is the payload the panel sends to getText.
type TextPayload struct {
	SpaceName string `json:"spaceName,omitempty"`
}

// Default returns a resolver with every panel function defined.
func Default(logger *zap.Logger) *Resolver {
	r := New(logger)
	r.Define(GetTextKey, getText(r.logger))
	return r
}

func getText(logger *zap.Logger) Func {
	return func(_ context.Context, req Request) (any, error) {
		spaceName := DefaultSpaceName
		if raw, ok := req.Payload["spaceName"]; ok && truthy(raw) {
			spaceName = textual(raw)
		}

		logger.Info("incoming request for space", zap.String("space", spaceName))

		return WelcomeText(spaceName), nil
	}
}

// WelcomeText formats the sentence returned by getText.
func WelcomeText(spaceName string) string {
	return fmt.Sprintf("Welcome to the %s space!", spaceName)
}

// truthy reports whether a decoded JSON value counts as present: empty
// strings, zero, false and null fall back to the default.
func truthy(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case string:
		return value != ""
	case bool:
		return value
	case float64:
		return value != 0 && !math.IsNaN(value)
	case int:
		return value != 0
	default:
		return true
	}
}

// textual renders a decoded JSON value the way the hosted resolver
// interpolates it: lists read as their comma-joined items, with null items
// left empty, and objects collapse to objectText.
func textual(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	case []any:
		parts := make([]string, len(value))
		for i, item := range value {
			parts[i] = textual(item)
		}
		return strings.Join(parts, ",")
	case map[string]any:
		return objectText
	default:
		return fmt.Sprint(value)
	}
}
