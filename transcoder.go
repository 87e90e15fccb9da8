// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bsonjson

import (
	"math"

	"go.uber.org/zap"
)

// Transcoder holds the state of one BSON-to-JSON walk.  An instance is
// constructed, consumed exactly once by Transcode or the goroutine started
// by NewChunkedTranscoder, then discarded -- mirroring the reference
// implementation's single-use Transcoder object.
type Transcoder struct {
	in    []byte
	inLen int
	inIdx int

	sink *outputSink

	maxDepth int
	curDepth int

	logger *zap.Logger
}

// Transcode converts a single well-formed BSON document to JSON,
// synchronously, growing the output buffer as needed (or failing with the
// stable "Allocation failure" message if a fixed buffer was supplied and
// runs out of room). isArray selects whether the top-level container
// renders as a JSON array or object.
func Transcode(in []byte, isArray bool, opts ...Option) ([]byte, error) {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	buf, fixed := cfg.outputBuffer(len(in))
	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	sink := newOutputSink(ModeRealloc, buf, fixed, logger)
	t := &Transcoder{in: in, inLen: len(in), sink: sink, maxDepth: cfg.maxDepth, logger: logger}

	if err := t.transcodeObject(isArray); err != nil {
		return nil, err
	}
	return sink.out[:sink.outIdx], nil
}

// NewChunkedTranscoder starts a transcode walk on its own goroutine in
// ModePause and returns a ChunkReader that yields the JSON output in
// buffer-sized chunks as the walk produces them.  The goroutine blocks
// between chunks until the returned reader's Next is called, exactly
// mirroring the mutex/condition-variable handoff of the reference
// implementation's asynchronous iterator.
func NewChunkedTranscoder(in []byte, isArray bool, opts ...Option) *ChunkReader {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	buf, fixed := cfg.outputBuffer(len(in))
	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	sink := newOutputSink(ModePause, buf, fixed, logger)
	r := &ChunkReader{sink: sink}

	go func() {
		sink.producerHandshake()
		t := &Transcoder{in: in, inLen: len(in), sink: sink, maxDepth: cfg.maxDepth, logger: logger}
		err := t.transcodeObject(isArray)
		sink.producerFinish(err)
	}()

	return r
}

// outputBuffer resolves the config's chunkSize/fixedBuffer settings into a
// concrete backing buffer.  The 2.5x-input-length default reservation is an
// empirical estimate: mixed data expands roughly 2.3x, null-heavy data up
// to 5x, per the reference implementation's own comment.
func (c *config) outputBuffer(inLen int) (buf []byte, fixed bool) {
	if c.fixedBuffer != nil {
		return c.fixedBuffer, true
	}
	size := c.chunkSize
	if size == 0 {
		size = (inLen * 10) / 4
		if size < 16 {
			size = 16
		}
	}
	return make([]byte, size), false
}

func (t *Transcoder) fail(msg string) error {
	err := newTranscodeError(msg, t.inIdx)
	t.sink.err = err
	return err
}

func (t *Transcoder) failAt(msg string, offset int) error {
	err := newTranscodeError(msg, offset)
	t.sink.err = err
	return err
}

// sinkFailed converts an already-recorded sink error into the return value
// expected by transcodeObject's callers.
func (t *Transcoder) sinkFailed() error {
	return t.sink.err
}

// skipCString advances inIdx past a null-terminated byte string without
// escaping or copying it anywhere -- used to skip the key of an UNDEFINED
// element, which contributes nothing to the JSON output.
func (t *Transcoder) skipCString() {
	for t.in[t.inIdx] != 0 {
		t.inIdx++
	}
	t.inIdx++
}

// transcodeObject walks one BSON container (object or array) starting at
// its length prefix and writes the corresponding JSON container.  It
// recurses for nested OBJECT/ARRAY elements.
func (t *Transcoder) transcodeObject(isArray bool) error {
	t.curDepth++
	if t.curDepth > t.maxDepth {
		t.curDepth--
		return t.fail(errMaxDepthExceeded)
	}
	defer func() { t.curDepth-- }()

	startOffset := t.inIdx
	size := t.readInt32LE()
	if size < 5 {
		return t.failAt(errSizeTooSmall, startOffset)
	}
	if int(size) > t.inLen-startOffset {
		return t.failAt(errSizeExceedsInput, startOffset)
	}
	if t.in[startOffset+int(size)-1] != 0 {
		return t.failAt(errMissingTerminator, startOffset)
	}

	if t.sink.ensureSpace(1, t.inIdx) {
		return t.sinkFailed()
	}
	if isArray {
		t.sink.writeByte('[')
	} else {
		t.sink.writeByte('{')
	}

	var arrIdx int32
	wroteAny := false

	for {
		elementType := t.readByte()
		if elementType == 0 {
			break
		}

		if elementType == bsonUndefined {
			// UNDEFINED produces no output at all, so its key is
			// consumed from the input but never written, and it never
			// sets wroteAny -- the next real element gets its comma
			// decided purely on prior *visible* output.
			if !isArray {
				t.skipCString()
			} else {
				t.inIdx += digitCountOfSmallPositive(arrIdx)
			}
			arrIdx++
			continue
		}

		if wroteAny {
			if t.sink.ensureSpace(1, t.inIdx) {
				return t.sinkFailed()
			}
			t.sink.writeByte(',')
		}

		if !isArray {
			if t.sink.ensureSpace(1, t.inIdx) {
				return t.sinkFailed()
			}
			t.sink.writeByte('"')
			if t.escapeCString() {
				return t.sinkFailed()
			}
			t.inIdx++ // skip key's null terminator
			if t.sink.ensureSpace(2, t.inIdx) {
				return t.sinkFailed()
			}
			t.sink.writeByte('"')
			t.sink.writeByte(':')
		} else {
			t.inIdx += digitCountOfSmallPositive(arrIdx)
		}

		if err := t.transcodeElement(elementType); err != nil {
			return err
		}

		wroteAny = true
		arrIdx++
	}

	if t.sink.ensureSpace(1, t.inIdx) {
		return t.sinkFailed()
	}
	if isArray {
		t.sink.writeByte(']')
	} else {
		t.sink.writeByte('}')
	}
	return nil
}

// transcodeElement dispatches on a single element's type tag and emits its
// JSON value.  The type byte and (for objects) the key have already been
// consumed/written by the caller.
func (t *Transcoder) transcodeElement(elementType byte) error {
	switch elementType {
	case bsonString:
		size := t.readInt32LE()
		if size < 1 || int(size) > t.inLen-t.inIdx || t.in[t.inIdx+int(size)-1] != 0 {
			return t.fail(errBadStringLength)
		}
		if t.sink.ensureSpace(1, t.inIdx) {
			return t.sinkFailed()
		}
		t.sink.writeByte('"')
		if t.escapeBytes(int(size) - 1) {
			return t.sinkFailed()
		}
		t.inIdx++ // skip trailing null
		if t.sink.ensureSpace(1, t.inIdx) {
			return t.sinkFailed()
		}
		t.sink.writeByte('"')

	case bsonObjectID:
		if t.inIdx+12 > t.inLen {
			return t.fail(errObjectIdTruncated)
		}
		if t.sink.ensureSpace(26, t.inIdx) {
			return t.sinkFailed()
		}
		t.sink.writeByte('"')
		id := t.in[t.inIdx : t.inIdx+12]
		t.sink.appendVia(func(dst []byte) []byte { return appendObjectIDHex(dst, id) })
		t.inIdx += 12
		t.sink.writeByte('"')

	case bsonInt:
		v := t.readInt32LE()
		if t.sink.ensureSpace(maxInt32Digits, t.inIdx) {
			return t.sinkFailed()
		}
		t.sink.appendVia(func(dst []byte) []byte { return appendInt32(dst, v) })

	case bsonNumber:
		v := t.readDouble()
		if math.IsNaN(v) || math.IsInf(v, 0) {
			if t.sink.ensureSpace(4, t.inIdx) {
				return t.sinkFailed()
			}
			t.sink.writeString("null")
		} else {
			if t.sink.ensureSpace(maxECMADoubleDigits, t.inIdx) {
				return t.sinkFailed()
			}
			t.sink.appendVia(func(dst []byte) []byte { return appendDouble(dst, v) })
		}

	case bsonDate:
		v := t.readInt64LE()
		if t.sink.ensureSpace(26, t.inIdx) {
			return t.sinkFailed()
		}
		t.sink.writeByte('"')
		t.sink.appendVia(func(dst []byte) []byte { return appendDate(dst, v) })
		t.sink.writeByte('"')

	case bsonBoolean:
		v := t.readByte()
		switch v {
		case 1:
			if t.sink.ensureSpace(4, t.inIdx) {
				return t.sinkFailed()
			}
			t.sink.writeString("true")
		case 0:
			if t.sink.ensureSpace(5, t.inIdx) {
				return t.sinkFailed()
			}
			t.sink.writeString("false")
		default:
			return t.fail(errIllegalBoolean)
		}

	case bsonObject:
		if err := t.transcodeObject(false); err != nil {
			return err
		}

	case bsonArray:
		if err := t.transcodeObject(true); err != nil {
			return err
		}
		if t.in[t.inIdx-1] != 0 {
			return t.fail(errBadArrayTerminator)
		}

	case bsonNull:
		if t.sink.ensureSpace(4, t.inIdx) {
			return t.sinkFailed()
		}
		t.sink.writeString("null")

	case bsonLong:
		v := t.readInt64LE()
		if t.sink.ensureSpace(maxInt64Digits, t.inIdx) {
			return t.sinkFailed()
		}
		t.sink.appendVia(func(dst []byte) []byte { return appendInt64(dst, v) })

	default:
		if incompatibleTypes[elementType] {
			return t.fail(errIncompatibleType)
		}
		return t.fail(errUnknownType)
	}

	return nil
}
