package seqstore

import "go.uber.org/zap"

// Option configures a Store.
type Option func(*config)

type config struct {
	logger      *zap.Logger
	numShards   int
	eventBuffer int
}

func defaultConfig() config {
	return config{
		logger:      zap.NewNop(),
		numShards:   8,
		eventBuffer: 64,
	}
}

// WithLogger sets the store's logger.
// Default: zap.NewNop().
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithShards sets how many locks entries are spread across. Values below 1
// are clamped to 1.
// Default: 8.
func WithShards(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.numShards = n
	}
}

// WithEventBuffer sets the event channel's buffer. Events are dropped when
// the buffer is full, so an unbuffered channel (0) only delivers to a ready
// receiver.
// Default: 64.
func WithEventBuffer(n int) Option {
	return func(c *config) {
		if n < 0 {
			n = 0
		}
		c.eventBuffer = n
	}
}
