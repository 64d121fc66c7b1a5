package bookstore

import (
	"context"
	"time"
)

//go:generate mockgen -source=pacer.go -destination=mocks/pacer.go -package=mocks

// Pacer decides how long the processor pauses between records that hit the network.
type Pacer interface {
	Wait(ctx context.Context) error
}

// FixedDelay pauses for the same duration every time, returning early if ctx is done.
type FixedDelay time.Duration

func (d FixedDelay) Wait(ctx context.Context) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(time.Duration(d))
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type noDelay struct{}

func (noDelay) Wait(context.Context) error { return nil }

// NoDelay never pauses.
var NoDelay Pacer = noDelay{}
