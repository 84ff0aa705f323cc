package ui

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentLoads bounds how many host calls a snapshot runs at once.
const maxConcurrentLoads = 4

// Snapshot runs the panel's loads to completion without a terminal and
// renders the final state once. Failed loads leave their placeholders in
// place exactly as the interactive panel would.
func Snapshot(ctx context.Context, h Host, opts PanelOptions, width int) (string, error) {
	state := drive(ctx, h, opts.Logger)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	elements := Layout(state, opts.Layout)
	if state.ThemeMode == ThemeUnset {
		return LoadingStyle.Render(elements[0].Text), nil
	}
	return renderPanel(elements, paletteFor(state.ThemeMode), width, state.SpaceName), nil
}

// drive feeds every load's event through reduce until no load is pending.
// Loads of one round run concurrently; their events are reduced in the
// order the loads were requested.
func drive(ctx context.Context, h Host, logger *zap.Logger) ViewState {
	if logger == nil {
		logger = zap.NewNop()
	}

	state, pending := mount(NewViewState())
	for len(pending) > 0 {
		events := make([]any, len(pending))

		var g errgroup.Group
		g.SetLimit(maxConcurrentLoads)
		for i, e := range pending {
			i, e := i, e
			g.Go(func() error {
				events[i] = perform(ctx, h, e)
				return nil
			})
		}
		_ = g.Wait()

		pending = nil
		for _, ev := range events {
			logEvent(logger, ev)
			var next []effect
			state, next = reduce(state, ev)
			pending = append(pending, next...)
		}
	}
	return state
}
