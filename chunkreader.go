package bsonjson

import (
	"context"
	"io"
)

// ChunkReader is the consumer-facing half of a chunked transcode: a
// producer goroutine walks the BSON input and fills the shared buffer,
// while ChunkReader drains it one chunk at a time.  It plays the role the
// reference implementation gives its napi async iterator, wrapping the same
// mutex/condition-variable handoff in a pull API instead of a callback.
//
// There is no cancellation protocol on the producer side: cancelling the
// context passed to Next only unblocks the caller's wait.  If the producer
// goroutine is itself blocked waiting for a pull that never comes, it leaks
// until the process exits.  Callers that abandon a ChunkReader before EOF
// should keep pulling (discarding the result) or accept that leak.
type ChunkReader struct {
	sink     *outputSink
	finished bool
}

type chunkResult struct {
	chunk []byte
	eof   bool
	err   error
}

// Next blocks until the producer has either filled another chunk or
// finished.  It returns io.EOF once the walk completes with no pending
// chunk and no error, or the walk's TranscodeError if it failed -- an error
// always takes precedence over EOF, so a mid-stream failure is never
// reported as a clean end of stream.
//
// Without WithFixedBuffer the returned slice is a fresh copy and stays
// valid.  With WithFixedBuffer it is a view over the caller-supplied buffer
// and is invalidated the moment Next is called again.
func (r *ChunkReader) Next(ctx context.Context) ([]byte, error) {
	if r.finished {
		return nil, io.EOF
	}

	done := make(chan chunkResult, 1)
	go func() {
		s := r.sink
		s.mu.Lock()
		s.outIdx = 0
		s.cond.Signal()
		for s.outIdx == 0 && !s.producerDone {
			s.cond.Wait()
		}

		var chunk []byte
		if s.outIdx > 0 {
			if s.fixed {
				chunk = s.out[:s.outIdx]
			} else {
				chunk = append([]byte(nil), s.out[:s.outIdx]...)
			}
		}
		res := chunkResult{
			chunk: chunk,
			eof:   s.outIdx == 0 && s.producerDone,
			err:   s.err,
		}
		s.mu.Unlock()
		done <- res
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		if res.err != nil {
			r.finished = true
			return nil, res.err
		}
		if res.eof {
			r.finished = true
			return nil, io.EOF
		}
		return res.chunk, nil
	}
}
