package bsonjson

import "strconv"

// appendDouble appends the shortest decimal text of f that round-trips
// under IEEE-754 binary64, formatted exactly as ECMAScript's
// Number.prototype.toString would render it (ECMA-262 Number::toString,
// commonly numbered 6.1.6.1.20). f must be finite; NaN and +/-Inf are the
// caller's responsibility (the transcoder emits the JSON literal null for
// those instead of calling this formatter).
//
// strconv.AppendFloat with format 'e' and precision -1 already computes the
// shortest round-tripping digit sequence -- the same guarantee the reference
// implementation gets from double-conversion's ToShortest.  What follows is
// the ECMA fixed/exponential layout decision applied on top of that digit
// sequence; strconv does not itself produce ECMA-shaped output (its 'g'
// format switches between fixed and exponential on a different threshold,
// and never omits the exponent's sign or pads it to the ECMA form).
func appendDouble(dst []byte, f float64) []byte {
	if f == 0 {
		// ECMA: ToString(+0) and ToString(-0) are both "0".
		return append(dst, '0')
	}

	neg := f < 0
	if neg {
		f = -f
	}

	// e.g. "1.2345e+07", "5e+00", "1e-08"
	shortest := strconv.AppendFloat(nil, f, 'e', -1, 64)

	eIdx := 0
	for shortest[eIdx] != 'e' {
		eIdx++
	}
	mantissa := shortest[:eIdx]
	expDigits := shortest[eIdx+2:] // skip 'e' and the sign
	expVal, _ := strconv.Atoi(string(expDigits))
	if shortest[eIdx+1] == '-' {
		expVal = -expVal
	}

	digits := make([]byte, 0, len(mantissa))
	for _, c := range mantissa {
		if c != '.' {
			digits = append(digits, byte(c))
		}
	}
	k := len(digits)
	n := expVal + 1 // position of the decimal point relative to digits[0]

	if neg {
		dst = append(dst, '-')
	}

	switch {
	case k <= n && n <= 21:
		dst = append(dst, digits...)
		for i := 0; i < n-k; i++ {
			dst = append(dst, '0')
		}
	case 0 < n && n <= 21:
		dst = append(dst, digits[:n]...)
		dst = append(dst, '.')
		dst = append(dst, digits[n:]...)
	case -6 < n && n <= 0:
		dst = append(dst, '0', '.')
		for i := 0; i < -n; i++ {
			dst = append(dst, '0')
		}
		dst = append(dst, digits...)
	default:
		dst = append(dst, digits[0])
		if k > 1 {
			dst = append(dst, '.')
			dst = append(dst, digits[1:]...)
		}
		dst = append(dst, 'e')
		e := n - 1
		if e >= 0 {
			dst = append(dst, '+')
		} else {
			dst = append(dst, '-')
			e = -e
		}
		dst = appendInt64(dst, int64(e))
	}

	return dst
}
