package gosnooze

import "context"

// WithDelay returns a context that is canceled once the provided delay
// resolves or the parent context is done, whichever happens first.
// The returned context becomes the delay's single awaiter,
// the delay must not be awaited anywhere else;
// handles remain free to postpone it while the context is live.
func WithDelay(ctx context.Context, d *Delay) context.Context {
	ctx, cancel := context.WithCancel(ctx)
	go func() {
		defer cancel()
		_ = d.Wait(ctx)
	}()
	return ctx
}
