package bsonjson

// twoDigits is a lookup table of two-character decimal strings for the
// values 00 through 99, concatenated.  Adapted from the digit table in
// fmtlib/fmt (MIT license), via the reference bson-to-json implementation.
const twoDigits = "" +
	"0001020304050607080910111213141516171819" +
	"2021222324252627282930313233343536373839" +
	"4041424344454647484950515253545556575859" +
	"6061626364656667686970717273747576777879" +
	"8081828384858687888990919293949596979899"

// maxInt32Digits and maxInt64Digits bound the decimal text (including an
// optional leading '-') of a 32-bit and 64-bit signed integer.
//
// maxECMADoubleDigits bounds the text an ECMA-262 Number::toString-shaped
// double can produce: a sign, up to 17 significant digits, a decimal point,
// and either up to 5 leading zeros in the fixed-point small-magnitude case
// ("0.000001...") or an exponent like "e+308" in the exponential case --
// the fixed-point case is the wider of the two (25 bytes), with one byte
// to spare.
const (
	maxInt32Digits      = 11
	maxInt64Digits      = 20
	maxECMADoubleDigits = 26
)

// appendInt32 appends the decimal text of v to dst and returns the result.
func appendInt32(dst []byte, v int32) []byte {
	return appendInt64(dst, int64(v))
}

// appendInt64 appends the decimal text of v to dst and returns the result.
// Negative values are prefixed with '-'; zero renders as "0".
func appendInt64(dst []byte, v int64) []byte {
	if v == 0 {
		return append(dst, '0')
	}

	var buf [maxInt64Digits]byte
	p := len(buf)

	neg := v < 0
	u := uint64(v)
	if neg {
		// Two's complement negation avoids overflow at math.MinInt64.
		u = uint64(-v)
	}

	for u >= 100 {
		idx := (u % 100) * 2
		u /= 100
		p -= 2
		buf[p] = twoDigits[idx]
		buf[p+1] = twoDigits[idx+1]
	}

	if u < 10 {
		p--
		buf[p] = byte('0') + byte(u)
	} else {
		idx := u * 2
		p -= 2
		buf[p] = twoDigits[idx]
		buf[p+1] = twoDigits[idx+1]
	}

	if neg {
		p--
		buf[p] = '-'
	}

	return append(dst, buf[p:]...)
}

// digitCountOfSmallPositive returns the on-wire length, in bytes, of the
// decimal-string array index key v (v >= 0) including its null terminator.
// BSON array element keys are the decimal index written in order ("0", "1",
// "2", ...), so the transcoder can skip over one without reading it at all.
//
// The name and the +1 are inherited from the reference implementation this
// package was ported from, which bakes the terminator into the same table
// (nDigits(0) == 2, not 1) rather than making callers add it separately.
func digitCountOfSmallPositive(v int32) int {
	switch {
	case v < 10:
		return 2
	case v < 100:
		return 3
	case v < 1000:
		return 4
	case v < 10000:
		return 5
	case v < 100000:
		return 6
	case v < 1000000:
		return 7
	case v < 10000000:
		return 8
	case v < 100000000:
		return 9
	case v < 1000000000:
		return 10
	default:
		return 11
	}
}
