package bsonjson

// escapeChar returns the single-character escape for c (e.g. 'n' for
// newline) per ECMA-404 section 9, or 0 if c has no single-character
// escape (including the case where c needs no escaping at all).
func escapeChar(c byte) byte {
	switch c {
	case 0x08:
		return 'b'
	case 0x09:
		return 't'
	case 0x0A:
		return 'n'
	case 0x0C:
		return 'f'
	case 0x0D:
		return 'r'
	case 0x22, 0x5C:
		return c
	default:
		return 0
	}
}

// writeControlChar writes the six-byte "\u00XX" sequence for a control
// character with no single-character escape.
func (t *Transcoder) writeControlChar(c byte) {
	t.sink.writeByte('\\')
	t.sink.writeByte('u')
	t.sink.writeByte('0')
	t.sink.writeByte('0')
	if c&0xf0 != 0 {
		t.sink.writeByte('1')
	} else {
		t.sink.writeByte('0')
	}
	t.sink.writeByte(hexDigits[c&0x0f])
}

// escapeBytes escapes exactly n bytes starting at in[inIdx] into the output
// sink and advances inIdx by n.  It reserves space for the common case (one
// output byte per input byte) up front and tops up the reservation only
// when it actually hits a byte that expands, so the fast path (no escapes
// in the run) makes exactly one ensureSpace call.
func (t *Transcoder) escapeBytes(n int) bool {
	end := t.inIdx + n
	if t.sink.ensureSpace(n, t.inIdx) {
		return true
	}
	for t.inIdx < end {
		c := t.in[t.inIdx]
		t.inIdx++
		switch {
		case c >= 0x20 && c != 0x22 && c != 0x5C:
			t.sink.writeByte(c)
		case escapeChar(c) != 0:
			if t.sink.ensureSpace(end-t.inIdx+2, t.inIdx) {
				return true
			}
			t.sink.writeByte('\\')
			t.sink.writeByte(escapeChar(c))
		default:
			if t.sink.ensureSpace(end-t.inIdx+6, t.inIdx) {
				return true
			}
			t.writeControlChar(c)
		}
	}
	return false
}

// escapeCString escapes bytes starting at in[inIdx] up to (not including)
// the first zero byte, leaving inIdx positioned at that zero byte.  Used for
// BSON key names, which carry no separate length prefix.
func (t *Transcoder) escapeCString() bool {
	for {
		c := t.in[t.inIdx]
		t.inIdx++
		if c == 0 {
			t.inIdx--
			return false
		}
		switch {
		case c >= 0x20 && c != 0x22 && c != 0x5C:
			if t.sink.ensureSpace(1, t.inIdx) {
				return true
			}
			t.sink.writeByte(c)
		case escapeChar(c) != 0:
			if t.sink.ensureSpace(2, t.inIdx) {
				return true
			}
			t.sink.writeByte('\\')
			t.sink.writeByte(escapeChar(c))
		default:
			if t.sink.ensureSpace(6, t.inIdx) {
				return true
			}
			t.writeControlChar(c)
		}
	}
}
