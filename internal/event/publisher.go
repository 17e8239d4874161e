package event

import "context"

// Publisher delivers activity events to whatever transport is configured.
// Publish failures must never fail the user action that produced the event.
type Publisher interface {
	Publish(ctx context.Context, key string, event any) error
}

// Nop discards all events. Used when no broker is configured and in tests.
type Nop struct{}

func (Nop) Publish(context.Context, string, any) error { return nil }
