package bsonjson

import (
	"encoding/binary"
	"math"
)

// readInt32LE reads a little-endian int32 from in[inIdx:] and advances
// inIdx by 4.  As with the rest of BsonReader, it is the caller's
// responsibility to have already established that enough bytes remain --
// transcodeObject does this via the structural size checks on containers
// and strings before any element body is read.
func (t *Transcoder) readInt32LE() int32 {
	v := int32(binary.LittleEndian.Uint32(t.in[t.inIdx:]))
	t.inIdx += 4
	return v
}

// readInt64LE reads a little-endian int64 from in[inIdx:] and advances
// inIdx by 8.
func (t *Transcoder) readInt64LE() int64 {
	v := int64(binary.LittleEndian.Uint64(t.in[t.inIdx:]))
	t.inIdx += 8
	return v
}

// readDouble reads an IEEE-754 binary64 little-endian double from
// in[inIdx:] and advances inIdx by 8.
func (t *Transcoder) readDouble() float64 {
	bits := binary.LittleEndian.Uint64(t.in[t.inIdx:])
	t.inIdx += 8
	return math.Float64frombits(bits)
}

// readByte reads a single byte from in[inIdx] and advances inIdx by 1.
func (t *Transcoder) readByte() byte {
	b := t.in[t.inIdx]
	t.inIdx++
	return b
}
