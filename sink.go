package bsonjson

import (
	"sync"

	"go.uber.org/zap"
)

// Mode selects the OutputSink's buffer-exhaustion policy.
type Mode int

const (
	// ModeRealloc grows the output buffer on demand.  Transcode runs
	// synchronously and returns the whole result at once.
	ModeRealloc Mode = iota
	// ModePause hands the buffer to a consumer whenever it fills, then
	// blocks until the consumer has drained it.  Used by
	// NewChunkedTranscoder.
	ModePause
)

// outputSink owns the output buffer and implements the growth/handoff
// policy described by Mode.  In ModePause it is shared between the producer
// goroutine (the transcode walk) and the consumer goroutine (whatever calls
// ChunkReader.Next); a mutex and condition variable protect the handoff, a
// direct translation of the reference implementation's std::mutex and
// std::condition_variable.
type outputSink struct {
	out   []byte
	outIdx int
	mode  Mode
	fixed bool // true when the caller supplied the backing buffer

	err error

	mu           sync.Mutex
	cond         *sync.Cond
	producerDone bool

	logger *zap.Logger
}

func newOutputSink(mode Mode, buf []byte, fixed bool, logger *zap.Logger) *outputSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &outputSink{
		out:    buf,
		mode:   mode,
		fixed:  fixed,
		logger: logger,
	}
	s.cond = sync.NewCond(&s.mu)
	if mode == ModePause {
		// Sentinel: the buffer counts as full (nothing produced yet) until
		// the consumer's first pull resets outIdx to 0.
		s.outIdx = len(buf) + 1
	}
	return s
}

// producerHandshake performs the ModePause initial handshake: the producer
// waits for the consumer's first pull (outIdx reset from the sentinel set by
// newOutputSink) before writing a single byte.  A pull that happens before
// the producer gets here is not lost, since it has already cleared the
// sentinel.  REALLOC mode has no handshake -- the call returns immediately.
func (s *outputSink) producerHandshake() {
	if s.mode != ModePause {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.outIdx != 0 {
		s.cond.Wait()
	}
}

// producerFinish records that the transcode walk is complete (successfully
// or not) and wakes any consumer waiting on the next chunk.
func (s *outputSink) producerFinish(err error) {
	if s.mode != ModePause {
		if err != nil {
			s.err = err
		}
		return
	}
	s.mu.Lock()
	s.producerDone = true
	if err != nil {
		s.err = err
	}
	s.cond.Broadcast()
	s.mu.Unlock()
}

// failed reports whether a sticky error has already been recorded.
func (s *outputSink) failed() bool {
	return s.err != nil
}

// ensureSpace guarantees outIdx+n <= len(out), growing (ModeRealloc) or
// pausing for a consumer pull (ModePause) as needed. offset is the current
// input read position, recorded on the error for diagnosability.  Returns
// true if a fatal error was set (either newly or previously).
func (s *outputSink) ensureSpace(n int, offset int) bool {
	if s.err != nil {
		return true
	}
	if s.outIdx+n <= len(s.out) {
		return false
	}

	switch s.mode {
	case ModeRealloc:
		if s.fixed {
			s.err = newTranscodeError(errAllocationFailure, offset)
			return true
		}
		newCap := len(s.out) * 3 / 2
		if want := s.outIdx + n; want > newCap {
			newCap = want
		}
		grown := make([]byte, newCap)
		copy(grown, s.out[:s.outIdx])
		s.logger.Debug("growing output buffer",
			zap.Int("old_capacity", len(s.out)),
			zap.Int("new_capacity", newCap))
		s.out = grown
		return false

	case ModePause:
		s.mu.Lock()
		chunkLen := s.outIdx
		s.cond.Signal()
		for s.outIdx != 0 {
			s.cond.Wait()
		}
		s.mu.Unlock()
		s.logger.Debug("handed off output chunk", zap.Int("length", chunkLen))

		if n > len(s.out) {
			// Even a fully-drained buffer can't fit this single write; the
			// configured chunk size is smaller than the widest possible
			// element encoding.  This mirrors the reference implementation,
			// which never grows the buffer in PAUSE mode.
			s.mu.Lock()
			s.err = newTranscodeError(errAllocationFailure, offset)
			s.producerDone = true
			s.cond.Broadcast()
			s.mu.Unlock()
			return true
		}
		return false
	}
	return false
}

func (s *outputSink) writeByte(b byte) {
	s.out[s.outIdx] = b
	s.outIdx++
}

func (s *outputSink) writeString(str string) {
	s.outIdx += copy(s.out[s.outIdx:], str)
}

func (s *outputSink) writeBytes(b []byte) {
	s.outIdx += copy(s.out[s.outIdx:], b)
}

// appendVia runs an append-style formatter (appendInt64, appendDouble, ...)
// against the unused tail of the buffer and advances outIdx by however much
// it wrote.  The caller must have already reserved enough room with
// ensureSpace, so the zero-length slice handed to f has at least that
// reserved room as capacity and f's append calls never trigger a
// reallocation of their own.
func (s *outputSink) appendVia(f func(dst []byte) []byte) {
	dst := f(s.out[s.outIdx:s.outIdx])
	s.outIdx += len(dst)
}
