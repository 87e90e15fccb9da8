package bsonjson

import "go.uber.org/zap"

const defaultMaxDepth = 200

// config collects the options a caller can set via Option values.
type config struct {
	chunkSize   int
	fixedBuffer []byte
	logger      *zap.Logger
	maxDepth    int
}

func newConfig() *config {
	return &config{maxDepth: defaultMaxDepth}
}

// Option configures Transcode or NewChunkedTranscoder.
type Option func(*config)

// WithChunkSize sets the initial output buffer capacity.  In ModeRealloc
// this is only a starting point -- the buffer still grows as needed.  In
// ModePause it is the fixed capacity of the buffer handed to the consumer,
// so every chunk is at most this long.  Zero (the default) means "choose a
// default from the input length".
func WithChunkSize(n int) Option {
	return func(c *config) { c.chunkSize = n }
}

// WithFixedBuffer supplies the backing buffer for the output.  The buffer is
// never resized; a write that doesn't fit fails with the stable "Allocation
// failure" error rather than triggering a reallocation.  Ownership stays
// with the caller.
func WithFixedBuffer(buf []byte) Option {
	return func(c *config) {
		c.fixedBuffer = buf
		c.chunkSize = len(buf)
	}
}

// WithLogger sets the logger consulted at buffer-growth and chunk-handoff
// points.  ISA detection runs at package init and does not log.  The default is a no-op logger, so unconfigured
// callers pay nothing for disabled logging on the hot path.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithMaxDepth overrides the maximum nesting depth of OBJECT/ARRAY
// containers.  The default is 200.
func WithMaxDepth(n int) Option {
	return func(c *config) { c.maxDepth = n }
}
