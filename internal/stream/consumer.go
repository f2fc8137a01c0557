package stream

import "context"

// StreamConsumer pulls vendor mapping events off a broker and runs each one
// through the validation pipeline. Setup creates broker-side resources (the
// consumer group for Redis Streams) and is safe to call on every start.
type StreamConsumer interface {
	Setup(ctx context.Context) error
	Start(ctx context.Context) error
	Stop() error
}
