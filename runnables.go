package gosnooze

import "context"

// Runnable defined by typical abstract async func signature.
type Runnable func(context.Context) error

func use(err error) Runnable {
	return func(ctx context.Context) error {
		return err
	}
}

func nope(context.Context) error {
	return nil
}

// Delayed returns a runnable that waits for the provided delay
// to resolve before running the provided runnable.
// The gating delay stays postponable through its handles
// up until the very moment it resolves.
func Delayed(d *Delay, run Runnable) Runnable {
	return func(ctx context.Context) error {
		if err := d.Wait(ctx); err != nil {
			return err
		}
		return run(ctx)
	}
}
